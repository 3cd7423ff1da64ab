package app_test

import (
	"testing"

	"hbnb_web/internal/app"
	"hbnb_web/internal/domain"
)

func TestFilterByPrice(t *testing.T) {
	pc := &domain.PlacesCache{Places: []domain.Place{
		{ID: "a", Price: 40},
		{ID: "b", Price: 150},
		{ID: "c", Price: 50},
		{ID: "d"},
	}}
	cases := []struct {
		sel  string
		want []string
	}{
		{"", []string{"a", "b", "c", "d"}},
		{"0-50", []string{"a", "c", "d"}},
		{"50-100", []string{"c"}},
		{"100-200", []string{"b"}},
		{"200-999999", nil},
	}
	for _, tc := range cases {
		got, err := app.FilterByPrice(pc, tc.sel)
		if err != nil {
			t.Fatalf("%q: %v", tc.sel, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%q: got %d places, want %d", tc.sel, len(got), len(tc.want))
		}
		for i, p := range got {
			if p.ID != tc.want[i] {
				t.Fatalf("%q: place %d = %s, want %s", tc.sel, i, p.ID, tc.want[i])
			}
		}
	}
}

func TestFilterByPrice_Malformed(t *testing.T) {
	pc := &domain.PlacesCache{Places: []domain.Place{{ID: "a", Price: 10}}}
	for _, sel := range []string{"cheap", "10-", "-", "a-b"} {
		if _, err := app.FilterByPrice(pc, sel); err == nil {
			t.Fatalf("%q: expected error", sel)
		}
	}
}

func TestPriceRanges_Fixed(t *testing.T) {
	if len(app.PriceRanges) != 5 || app.PriceRanges[0].Value != "" || app.PriceRanges[0].Text != "All Prices" {
		t.Fatalf("unexpected ranges: %+v", app.PriceRanges)
	}
	if app.PriceRanges[4].Value != "200-999999" || app.PriceRanges[4].Text != "Over $200" {
		t.Fatalf("unexpected last range: %+v", app.PriceRanges[4])
	}
}
