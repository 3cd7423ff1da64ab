package app

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"hbnb_web/internal/dom"
	"hbnb_web/internal/domain"
)

const (
	msgFillAllFields      = "Please fill in all fields"
	msgReviewUnreachable  = "Unable to submit review. Please try again."
	msgReviewFailedPrefix = "Failed to submit review: "
	labelSubmitReview     = "Submit Review"
	labelSubmitting       = "Submitting..."
)

type ReviewController struct {
	cmd *Commands
	q   *QueryService
	log zerolog.Logger
}

func NewReviewController(cmd *Commands, q *QueryService, log zerolog.Logger) *ReviewController {
	return &ReviewController{cmd: cmd, q: q, log: log}
}

// SetupForm shows the inline review form to authenticated users and a login
// prompt to everyone else.
func (c *ReviewController) SetupForm(a *Auth, doc *dom.Document, placeID string) {
	section, form := doc.Element(elAddReview), doc.Element(elReviewForm)
	if section == nil || form == nil {
		c.log.Error().Str("page", doc.Page).Msg("review form elements not found")
		return
	}
	link := doc.Element(elSeparateReviewLink)
	if link != nil {
		link.Href = addReviewURL(placeID)
	}

	if !a.IsAuthenticated() {
		form.Hidden = true
		if link != nil {
			link.Hidden = true
		}
		section.Append(loginPrompt)
		return
	}
	form.Hidden = false
	form.Href = placeURL(placeID)
	c.prepareForm(doc)
}

// SubmitInline posts the inline form of /place. Success reloads the page.
func (c *ReviewController) SubmitInline(ctx context.Context, a *Auth, doc *dom.Document, form url.Values) Result {
	if !a.IsAuthenticated() {
		return Result{Navigate: a.LoginRedirect()}
	}
	placeID, ok := doc.QueryParam("id")
	if !ok {
		return Result{Status: http.StatusBadRequest, Err: domain.ErrNoPlaceID}
	}
	c.prepareForm(doc)
	if res, ok := c.submit(ctx, a, doc, placeID, elReviewText, form); !ok {
		return res
	}
	return Result{Reload: true, Notice: notice(NoticeReviewSubmitted)}
}

// InitStandalone prepares /add-review. It is reachable only when logged in
// and with a place_id.
func (c *ReviewController) InitStandalone(ctx context.Context, a *Auth, doc *dom.Document) Result {
	placeID, r, ok := c.standaloneGuard(a, doc)
	if !ok {
		return r
	}
	c.prepareForm(doc)
	if el := doc.Element(elReviewForm); el != nil {
		el.Href = addReviewURL(placeID)
	}
	c.showPlaceInfo(ctx, doc.Element(elPlaceInfo), placeID)
	return Result{}
}

// SubmitStandalone posts the /add-review form. Success goes to the place page.
func (c *ReviewController) SubmitStandalone(ctx context.Context, a *Auth, doc *dom.Document, form url.Values) Result {
	placeID, r, ok := c.standaloneGuard(a, doc)
	if !ok {
		return r
	}
	c.prepareForm(doc)
	if el := doc.Element(elReviewForm); el != nil {
		el.Href = addReviewURL(placeID)
	}
	res, ok := c.submit(ctx, a, doc, placeID, elStandaloneReview, form)
	if ok {
		return Result{Navigate: placeURL(placeID), Notice: notice(NoticeReviewSubmitted)}
	}
	c.showPlaceInfo(ctx, doc.Element(elPlaceInfo), placeID)
	return res
}

func (c *ReviewController) standaloneGuard(a *Auth, doc *dom.Document) (string, Result, bool) {
	if !a.IsAuthenticated() {
		c.log.Info().Msg("user not authenticated, redirecting to index")
		return "", Result{Navigate: "/"}, false
	}
	placeID, ok := doc.QueryParam("place_id")
	if !ok {
		return "", Result{Navigate: "/", Notice: notice(NoticeNoPlaceID)}, false
	}
	return placeID, Result{}, true
}

// submit validates the form and posts it. The entered text and rating are
// written back to the document so a failed attempt re-renders them. ok is
// true only when the API accepted the review.
func (c *ReviewController) submit(ctx context.Context, a *Auth, doc *dom.Document, placeID, textID string, form url.Values) (Result, bool) {
	rawText, rawRating := form.Get(textID), strings.TrimSpace(form.Get(elRating))
	if el := doc.Element(textID); el != nil {
		el.Value = rawText
	}
	selectOption(doc.Element(elRating), rawRating)

	rating, _ := strconv.Atoi(rawRating)
	draft := domain.ReviewDraft{Text: strings.TrimSpace(rawText), Rating: rating, PlaceID: placeID}
	if err := validateDraft(draft); err != nil {
		return Result{Notice: errorNotice(msgFillAllFields), Status: http.StatusBadRequest, Err: err}, false
	}

	tok, _ := a.Token()
	sub := dom.Begin(doc.Element(elReviewSubmit), labelSubmitting)
	res, err := c.cmd.SubmitReview(ctx, tok, draft)
	if err != nil {
		sub.Restore()
		c.log.Error().Err(err).Str("place", placeID).Msg("submit review failed")
		return Result{Notice: errorNotice(msgReviewUnreachable), Status: http.StatusBadGateway, Err: err}, false
	}
	if !res.OK() {
		sub.Restore()
		msg := orDefault(res.ErrorMessage(), "Unknown error")
		return Result{
			Notice: errorNotice(msgReviewFailedPrefix + msg),
			Status: failureStatus(res.Status),
			Err:    &UpstreamError{Status: res.Status, Message: msg},
		}, false
	}
	c.log.Info().Str("place", placeID).Msg("review submitted")
	return Result{}, true
}

func (c *ReviewController) prepareForm(doc *dom.Document) {
	if el := doc.Element(elRating); el != nil && len(el.Options) == 0 {
		el.Options = append(el.Options, dom.Option{Value: "", Text: "Select a rating"})
		for _, o := range ratingOptions {
			el.Options = append(el.Options, dom.Option{Value: o.Value, Text: o.Text})
		}
	}
	if btn := doc.Element(elReviewSubmit); btn != nil && btn.Text == "" {
		btn.Text = labelSubmitReview
	}
}

func (c *ReviewController) showPlaceInfo(ctx context.Context, el *dom.Element, placeID string) {
	if el == nil {
		return
	}
	place, err := c.q.GetPlace(ctx, placeID)
	if err != nil {
		c.log.Error().Err(err).Str("place", placeID).Msg("fetch place info failed")
		el.HTML = placeInfoError()
		return
	}
	html, err := render("place-info", place)
	if err != nil {
		el.HTML = placeInfoError()
		return
	}
	el.HTML = html
}

func selectOption(el *dom.Element, value string) {
	if el == nil {
		return
	}
	el.Value = value
	for i := range el.Options {
		el.Options[i].Selected = el.Options[i].Value == value
	}
}

// failureStatus passes client errors through and reports upstream server
// errors as a bad gateway.
func failureStatus(upstream int) int {
	if upstream >= 400 && upstream < 500 {
		return upstream
	}
	return http.StatusBadGateway
}
