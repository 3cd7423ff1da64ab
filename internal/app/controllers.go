package app

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"hbnb_web/internal/dom"
	"hbnb_web/internal/domain"
)

// Controllers wires the page controllers to one API client and snapshot store.
type Controllers struct {
	Login   *LoginController
	Places  *PlacesController
	Details *PlaceDetailsController
	Reviews *ReviewController
	log     zerolog.Logger
}

func NewControllers(api domain.APIClient, cache domain.Cache, ttl time.Duration, log zerolog.Logger) *Controllers {
	q := NewQueryService(api, cache, ttl, log)
	cmd := NewCommands(api)
	reviews := NewReviewController(cmd, q, log)
	return &Controllers{
		Login:   NewLoginController(cmd, log),
		Places:  NewPlacesController(q, log),
		Details: NewPlaceDetailsController(q, reviews, log),
		Reviews: reviews,
		log:     log,
	}
}

// Load runs the page-load controller of page. The login link is updated on
// every page; an unknown page gets nothing else.
func (c *Controllers) Load(ctx context.Context, page Page, a *Auth, doc *dom.Document) Result {
	a.UpdateLoginLink(doc)
	switch page {
	case PageLogin:
		return c.Login.Init(ctx, a, doc)
	case PageIndex:
		return c.Places.Init(ctx, a, doc)
	case PagePlace:
		return c.Details.Init(ctx, a, doc)
	case PageAddReview:
		return c.Reviews.InitStandalone(ctx, a, doc)
	}
	c.log.Warn().Str("page", string(page)).Msg("no controller for page")
	return Result{Status: http.StatusNotFound}
}

// Submit runs the form action of page.
func (c *Controllers) Submit(ctx context.Context, page Page, a *Auth, doc *dom.Document, form url.Values) Result {
	a.UpdateLoginLink(doc)
	switch page {
	case PageLogin:
		return c.Login.Submit(ctx, a, doc, form)
	case PagePlace:
		return c.Details.Submit(ctx, a, doc, form)
	case PageAddReview:
		return c.Reviews.SubmitStandalone(ctx, a, doc, form)
	}
	c.log.Warn().Str("page", string(page)).Msg("no form action for page")
	return Result{Status: http.StatusMethodNotAllowed}
}
