package app

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"hbnb_web/internal/dom"
	"hbnb_web/internal/domain"
)

const (
	msgMissingCredentials = "Please enter both email and password"
	msgInvalidCredentials = "Invalid email or password"
	msgLoginUnreachable   = "Unable to connect to server. Please try again."
	labelLogin            = "Login"
	labelSigningIn        = "Signing in..."
)

type LoginController struct {
	cmd *Commands
	log zerolog.Logger
}

func NewLoginController(cmd *Commands, log zerolog.Logger) *LoginController {
	return &LoginController{cmd: cmd, log: log}
}

// Init prepares the login form.
func (c *LoginController) Init(_ context.Context, _ *Auth, doc *dom.Document) Result {
	if _, err := doc.Require(elLoginForm); err != nil {
		c.log.Error().Err(err).Msg("login form not found")
		return Result{Err: err}
	}
	dom.HideMessage(doc.Element(elErrorMessage))
	if btn := doc.Element(elLoginSubmit); btn != nil && btn.Text == "" {
		btn.Text = labelLogin
	}
	return Result{}
}

// Submit exchanges the credentials for a token. On success the token cookie
// is stored and the user goes home; on failure the form is shown again with
// the email kept.
func (c *LoginController) Submit(ctx context.Context, a *Auth, doc *dom.Document, form url.Values) Result {
	if r := c.Init(ctx, a, doc); r.Err != nil {
		return r
	}
	errEl := doc.Element(elErrorMessage)

	creds := domain.Credentials{
		Email:    strings.TrimSpace(form.Get("email")),
		Password: form.Get("password"),
	}
	if el := doc.Element(elEmail); el != nil {
		el.Value = creds.Email
	}
	if err := validateCredentials(creds); err != nil {
		dom.ShowError(errEl, msgMissingCredentials)
		return Result{Status: http.StatusBadRequest, Err: err}
	}

	sub := dom.Begin(doc.Element(elLoginSubmit), labelSigningIn)
	res, err := c.cmd.Login(ctx, creds)
	if err != nil {
		sub.Restore()
		c.log.Error().Err(err).Msg("login request failed")
		dom.ShowError(errEl, msgLoginUnreachable)
		return Result{Status: http.StatusBadGateway, Err: err}
	}

	var body struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
	}
	if err := res.Decode(&body); err != nil {
		c.log.Warn().Err(err).Int("status", res.Status).Msg("login response is not JSON")
	}
	if res.OK() && body.AccessToken != "" {
		a.StoreToken(body.AccessToken)
		c.log.Info().Msg("login successful, token stored")
		return Result{Navigate: "/"}
	}

	sub.Restore()
	dom.ShowError(errEl, orDefault(strings.TrimSpace(body.Error), msgInvalidCredentials))
	status := http.StatusUnauthorized
	if res.Status >= 500 {
		status = http.StatusBadGateway
	}
	return Result{Status: status, Err: &UpstreamError{Status: res.Status, Message: body.Error}}
}
