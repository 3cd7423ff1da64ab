package httpserver

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"hbnb_web/internal/adapters/cookies"
	"hbnb_web/internal/adapters/observability"
	"hbnb_web/internal/app"
	"hbnb_web/internal/dom"
	"hbnb_web/internal/shared"
)

const (
	noticeParam   = "notice"
	maxFormBytes  = 64 << 10
	elNotifyPanel = "notification"
)

//go:embed templates/*.html
var pageFS embed.FS

var pageTitles = map[app.Page]string{
	app.PageIndex:     "Places",
	app.PageLogin:     "Login",
	app.PagePlace:     "Place Details",
	app.PageAddReview: "Add Review",
	app.PageUnknown:   "Not Found",
}

type Handlers struct {
	ctrl  *app.Controllers
	auth  shared.AuthConfig
	log   zerolog.Logger
	pages map[app.Page]*template.Template
}

// view is what a page template sees.
type view struct {
	Title string
	doc   *dom.Document
}

// El returns the named element; templates only ask for ids their page declares.
func (v view) El(id string) *dom.Element {
	if el := v.doc.Element(id); el != nil {
		return el
	}
	return &dom.Element{ID: id}
}

func NewHandlers(ctrl *app.Controllers, auth shared.AuthConfig, log zerolog.Logger) (*Handlers, error) {
	funcs := template.FuncMap{
		// element HTML is escaped when it is built
		"raw": func(s string) template.HTML { return template.HTML(s) },
	}
	h := &Handlers{ctrl: ctrl, auth: auth, log: log, pages: map[app.Page]*template.Template{}}
	for page := range pageTitles {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(pageFS, "templates/layout.html", "templates/"+string(page)+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s page: %w", page, err)
		}
		h.pages[page] = t
	}
	return h, nil
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	for _, p := range []string{"/", "/index", "/login", "/place", "/add-review"} {
		s.mux.Get(p, h.page)
	}
	for _, p := range []string{"/login", "/place", "/add-review"} {
		s.mux.Post(p, h.action)
	}
	s.mux.Get("/logout", h.logout)
	s.mux.Post("/logout", h.logout)
	s.mux.NotFound(h.page)
}

func (h *Handlers) page(w http.ResponseWriter, r *http.Request) {
	page := app.Resolve(r.URL.Path)
	ctx, a, doc := h.prepare(w, r, page)
	h.finish(w, r, page, doc, h.ctrl.Load(ctx, page, a, doc))
}

func (h *Handlers) action(w http.ResponseWriter, r *http.Request) {
	page := app.Resolve(r.URL.Path)
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.log.Warn().Err(err).Str("page", string(page)).Msg("bad form submission")
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ctx, a, doc := h.prepare(w, r, page)
	h.finish(w, r, page, doc, h.ctrl.Submit(ctx, page, a, doc, r.PostForm))
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	res := app.NewAuth(cookies.New(w, r), h.auth).Logout()
	observability.ObservePage("logout", "redirect")
	http.Redirect(w, r, res.Navigate, http.StatusSeeOther)
}

// prepare scopes the request's auth state to ctx, which is what the API
// client reads its bearer token from.
func (h *Handlers) prepare(w http.ResponseWriter, r *http.Request, page app.Page) (context.Context, *app.Auth, *dom.Document) {
	a := app.NewAuth(cookies.New(w, r), h.auth)
	doc := dom.NewDocument(string(page), r.URL, app.Elements(page)...)
	dom.HideMessage(doc.Element(elNotifyPanel))
	return app.WithAuth(r.Context(), a), a, doc
}

// finish turns a controller result into a redirect or a rendered page.
func (h *Handlers) finish(w http.ResponseWriter, r *http.Request, page app.Page, doc *dom.Document, res app.Result) {
	if res.Err != nil {
		ev := h.log.Warn()
		if res.HTTPStatus() >= 500 {
			ev = h.log.Error()
		}
		ev.Err(res.Err).Str("page", string(page)).Int("status", res.HTTPStatus()).Msg("page action failed")
	}

	if res.Leaves() {
		target := res.Navigate
		if res.Reload {
			target = withoutNotice(r.URL)
		}
		if res.Notice != nil && res.Notice.Code != "" {
			target = withNotice(target, res.Notice.Code)
		}
		observability.ObservePage(string(page), "redirect")
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	n := res.Notice
	if n == nil {
		if carried, ok := app.NoticeFor(r.URL.Query().Get(noticeParam)); ok {
			n = &carried
		}
	}
	if n != nil {
		if n.Level == app.NoticeError {
			dom.ShowError(doc.Element(elNotifyPanel), n.Message)
		} else {
			dom.ShowSuccess(doc.Element(elNotifyPanel), n.Message)
		}
	}

	outcome := "ok"
	if res.Err != nil || res.HTTPStatus() >= 400 {
		outcome = "error"
	}
	observability.ObservePage(string(page), outcome)
	h.render(w, page, doc, res.HTTPStatus())
}

func (h *Handlers) render(w http.ResponseWriter, page app.Page, doc *dom.Document, status int) {
	t, ok := h.pages[page]
	if !ok {
		t = h.pages[app.PageUnknown]
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", view{Title: pageTitles[page], doc: doc}); err != nil {
		h.log.Error().Err(err).Str("page", string(page)).Msg("render page failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.log.Error().Err(err).Msg("write page failed")
	}
}

func withNotice(target, code string) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set(noticeParam, code)
	u.RawQuery = q.Encode()
	return u.String()
}

func withoutNotice(u *url.URL) string {
	cp := *u
	q := cp.Query()
	q.Del(noticeParam)
	cp.RawQuery = q.Encode()
	return cp.RequestURI()
}
