package app

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"hbnb_web/internal/dom"
	"hbnb_web/internal/domain"
)

type PlacesController struct {
	q   *QueryService
	log zerolog.Logger
}

func NewPlacesController(q *QueryService, log zerolog.Logger) *PlacesController {
	return &PlacesController{q: q, log: log}
}

// Init renders the place cards. A request carrying view=<id> reuses that
// page view's snapshot; price=<min-max> narrows the cards without touching
// the API again.
func (c *PlacesController) Init(ctx context.Context, _ *Auth, doc *dom.Document) Result {
	els, err := doc.Require(elPlacesList)
	if err != nil {
		c.log.Error().Err(err).Msg("places container not found")
		return Result{Err: err}
	}
	list := els[elPlacesList]

	viewID, _ := doc.QueryParam("view")
	pc, err := c.load(ctx, viewID)
	if err != nil {
		c.log.Error().Err(err).Msg("fetch places failed")
		list.HTML = placesError()
		return Result{Status: http.StatusBadGateway, Err: err}
	}
	if el := doc.Element(elViewID); el != nil {
		el.Value = pc.ViewID
	}

	sel, _ := doc.QueryParam("price")
	places, err := FilterByPrice(&pc, sel)
	if err != nil {
		c.log.Warn().Err(err).Msg("ignoring malformed price filter")
		places, sel = pc.Places, ""
	}
	c.populateFilter(doc.Element(elPriceFilter), sel)
	if sel != "" {
		c.log.Debug().Str("price", sel).Int("count", len(places)).Msg("filtered places")
	}

	html, err := renderCards(places)
	if err != nil {
		list.HTML = placesError()
		return Result{Status: http.StatusInternalServerError, Err: err}
	}
	list.HTML = html
	return Result{}
}

func (c *PlacesController) load(ctx context.Context, viewID string) (domain.PlacesCache, error) {
	if viewID != "" {
		if pc, ok := c.q.Snapshot(ctx, viewID); ok {
			return pc, nil
		}
		c.log.Debug().Str("view", viewID).Msg("places snapshot missing, refetching")
	}
	return c.q.LoadPlaces(ctx)
}

func (c *PlacesController) populateFilter(el *dom.Element, sel string) {
	if el == nil {
		return
	}
	el.Options = el.Options[:0]
	for _, r := range PriceRanges {
		el.Options = append(el.Options, dom.Option{Value: r.Value, Text: r.Text, Selected: r.Value == sel})
	}
	el.Value = sel
}

func renderCards(places []domain.Place) (string, error) {
	if len(places) == 0 {
		return "<p>" + msgNoPlaces + "</p>", nil
	}
	var b strings.Builder
	for _, p := range places {
		card, err := render("card", p)
		if err != nil {
			return "", err
		}
		b.WriteString(card)
	}
	return b.String(), nil
}
