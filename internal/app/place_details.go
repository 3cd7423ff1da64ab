package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"hbnb_web/internal/dom"
	"hbnb_web/internal/domain"
)

const (
	msgNoPlaceID        = "No place ID provided"
	msgPlaceNotFound    = "Place not found"
	msgPlaceUnreachable = "Unable to load place details. Please try again later."
)

type PlaceDetailsController struct {
	q       *QueryService
	reviews *ReviewController
	log     zerolog.Logger
}

func NewPlaceDetailsController(q *QueryService, reviews *ReviewController, log zerolog.Logger) *PlaceDetailsController {
	return &PlaceDetailsController{q: q, reviews: reviews, log: log}
}

// Init renders the place named by the id query parameter with its reviews,
// then sets up the inline review form. Failures replace the details with an
// error block and leave the reviews empty.
func (c *PlaceDetailsController) Init(ctx context.Context, a *Auth, doc *dom.Document) Result {
	els, err := doc.Require(elPlaceDetails)
	if err != nil {
		c.log.Error().Err(err).Msg("place details container not found")
		return Result{Err: err}
	}

	id, ok := doc.QueryParam("id")
	if !ok {
		c.showError(doc, msgNoPlaceID)
		if el := doc.Element(elAddReview); el != nil {
			el.Hidden = true
		}
		return Result{Status: http.StatusBadRequest, Err: domain.ErrNoPlaceID}
	}

	res := c.render(ctx, els[elPlaceDetails], doc.Element(elReviews), id)
	if res.Err != nil {
		c.showError(doc, res.msg)
	}
	c.reviews.SetupForm(a, doc, id)
	return res.Result
}

// Submit handles the inline review form. A failed submission renders the
// page again with the entered text kept.
func (c *PlaceDetailsController) Submit(ctx context.Context, a *Auth, doc *dom.Document, form url.Values) Result {
	sub := c.reviews.SubmitInline(ctx, a, doc, form)
	if sub.Leaves() {
		return sub
	}
	page := c.Init(ctx, a, doc)
	if sub.Notice == nil {
		return page
	}
	if page.Err != nil {
		sub.Status, sub.Err = page.Status, errors.Join(sub.Err, page.Err)
	}
	return sub
}

type detailsOutcome struct {
	Result
	msg string
}

func (c *PlaceDetailsController) render(ctx context.Context, details, reviews *dom.Element, id string) detailsOutcome {
	place, err := c.q.GetPlace(ctx, id)
	if err != nil {
		var ue *UpstreamError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return detailsOutcome{Result{Status: http.StatusNotFound, Err: err}, msgPlaceNotFound}
		case errors.As(err, &ue):
			return detailsOutcome{Result{Status: http.StatusBadGateway, Err: err}, fmt.Sprintf("Failed to load place: %d", ue.Status)}
		}
		c.log.Error().Err(err).Str("place", id).Msg("fetch place details failed")
		return detailsOutcome{Result{Status: http.StatusBadGateway, Err: err}, msgPlaceUnreachable}
	}

	d, err := render("details", place)
	if err != nil {
		return detailsOutcome{Result{Status: http.StatusInternalServerError, Err: err}, msgPlaceUnreachable}
	}
	r, err := render("reviews", place.Reviews)
	if err != nil {
		return detailsOutcome{Result{Status: http.StatusInternalServerError, Err: err}, msgPlaceUnreachable}
	}
	details.HTML = d
	if reviews != nil {
		reviews.HTML = r
	}
	return detailsOutcome{}
}

func (c *PlaceDetailsController) showError(doc *dom.Document, msg string) {
	if el := doc.Element(elPlaceDetails); el != nil {
		html, err := render("place-error", msg)
		if err != nil {
			html = `<div class="error-message"><p>` + dom.Escape(msg) + `</p></div>`
		}
		el.HTML = html
	}
	if el := doc.Element(elReviews); el != nil {
		el.HTML = ""
	}
}
