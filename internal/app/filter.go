package app

import (
	"fmt"
	"strconv"
	"strings"

	"hbnb_web/internal/domain"
)

type PriceRange struct {
	Value string
	Text  string
}

// PriceRanges are the options of the price filter, "" first.
var PriceRanges = []PriceRange{
	{Value: "", Text: "All Prices"},
	{Value: "0-50", Text: "Under $50"},
	{Value: "50-100", Text: "$50 - $100"},
	{Value: "100-200", Text: "$100 - $200"},
	{Value: "200-999999", Text: "Over $200"},
}

// ParsePriceRange parses a "min-max" selection.
func ParsePriceRange(sel string) (min, max float64, err error) {
	lo, hi, ok := strings.Cut(sel, "-")
	if !ok {
		return 0, 0, fmt.Errorf("price range %q: want min-max", sel)
	}
	if min, err = strconv.ParseFloat(strings.TrimSpace(lo), 64); err != nil {
		return 0, 0, fmt.Errorf("price range %q: %w", sel, err)
	}
	if max, err = strconv.ParseFloat(strings.TrimSpace(hi), 64); err != nil {
		return 0, 0, fmt.Errorf("price range %q: %w", sel, err)
	}
	return min, max, nil
}

// FilterByPrice returns the cached places with min <= price <= max, keeping
// their order. An empty selection returns the whole cache.
func FilterByPrice(pc *domain.PlacesCache, selection string) ([]domain.Place, error) {
	if pc == nil {
		return nil, nil
	}
	if selection == "" {
		return pc.Places, nil
	}
	min, max, err := ParsePriceRange(selection)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Place, 0, len(pc.Places))
	for _, p := range pc.Places {
		if p.Price >= min && p.Price <= max {
			out = append(out, p)
		}
	}
	return out, nil
}
