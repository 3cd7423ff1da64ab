package app_test

import (
	"context"
	"strings"
	"testing"

	"hbnb_web/internal/app"
)

const twoPlaces = `[{"id":"p1","title":"Cabin","price":40},{"id":"p2","title":"Loft","price":150}]`

func TestPlaces_RendersCardsAndFilter(t *testing.T) {
	api := newFakeAPI().on("GET", "/places", 200, twoPlaces)
	c := newControllers(api)
	a, _ := anonymous()
	doc := newDoc(t, app.PageIndex, "/")

	res := c.Load(context.Background(), app.PageIndex, a, doc)
	if res.Err != nil || res.HTTPStatus() != 200 {
		t.Fatalf("result = %+v", res)
	}
	list := doc.Element("places-list").HTML
	if strings.Count(list, `class="place-card"`) != 2 {
		t.Fatalf("want 2 cards, got %s", list)
	}
	if !strings.Contains(list, `href="/place?id=p1"`) || !strings.Contains(list, "$40.00 / night") {
		t.Fatalf("card content: %s", list)
	}
	if opts := doc.Element("price-filter").Options; len(opts) != 5 || opts[1].Text != "Under $50" {
		t.Fatalf("filter options = %+v", opts)
	}
	if doc.Element("view-id").Value == "" {
		t.Fatalf("view id not set")
	}
}

func TestPlaces_FilterUsesSnapshot(t *testing.T) {
	api := newFakeAPI().on("GET", "/places", 200, twoPlaces)
	c := newControllers(api)
	a, _ := anonymous()

	first := newDoc(t, app.PageIndex, "/")
	c.Load(context.Background(), app.PageIndex, a, first)
	view := first.Element("view-id").Value

	doc := newDoc(t, app.PageIndex, "/?view="+view+"&price=0-50")
	c.Load(context.Background(), app.PageIndex, a, doc)

	list := doc.Element("places-list").HTML
	if strings.Count(list, `class="place-card"`) != 1 || !strings.Contains(list, "Cabin") {
		t.Fatalf("want only the 40-priced place, got %s", list)
	}
	if n := api.count("GET", "/places"); n != 1 {
		t.Fatalf("filtering refetched places: %d calls", n)
	}
	for _, o := range doc.Element("price-filter").Options {
		if o.Selected != (o.Value == "0-50") {
			t.Fatalf("selection not kept: %+v", o)
		}
	}
}

func TestPlaces_UnknownViewRefetches(t *testing.T) {
	api := newFakeAPI().on("GET", "/places", 200, twoPlaces)
	c := newControllers(api)
	a, _ := anonymous()

	doc := newDoc(t, app.PageIndex, "/?view=gone&price=100-200")
	c.Load(context.Background(), app.PageIndex, a, doc)
	if api.count("GET", "/places") != 1 {
		t.Fatalf("expected a fetch on snapshot miss")
	}
	if list := doc.Element("places-list").HTML; !strings.Contains(list, "Loft") || strings.Contains(list, "Cabin") {
		t.Fatalf("filtered list = %s", list)
	}
}

func TestPlaces_EmptyAndMalformedFilter(t *testing.T) {
	api := newFakeAPI().on("GET", "/places", 200, `[]`)
	c := newControllers(api)
	a, _ := anonymous()
	doc := newDoc(t, app.PageIndex, "/?price=bogus")

	c.Load(context.Background(), app.PageIndex, a, doc)
	if got := doc.Element("places-list").HTML; got != "<p>No places available.</p>" {
		t.Fatalf("empty list = %q", got)
	}
	if doc.Element("price-filter").Value != "" {
		t.Fatalf("malformed selection kept")
	}
}

func TestPlaces_FetchFailure(t *testing.T) {
	for _, api := range []*fakeAPI{
		newFakeAPI().on("GET", "/places", 500, `{"error":"boom"}`),
		newFakeAPI().fail("GET", "/places"),
	} {
		c := newControllers(api)
		a, _ := anonymous()
		doc := newDoc(t, app.PageIndex, "/")

		res := c.Load(context.Background(), app.PageIndex, a, doc)
		if res.HTTPStatus() != 502 {
			t.Fatalf("status = %d", res.HTTPStatus())
		}
		want := `<p class="error">Failed to load places. Please try again later.</p>`
		if got := doc.Element("places-list").HTML; got != want {
			t.Fatalf("error block = %q", got)
		}
	}
}

func TestPlaces_EscapesTitles(t *testing.T) {
	api := newFakeAPI().on("GET", "/places", 200, `[{"id":1,"title":"<script>x</script>"}]`)
	c := newControllers(api)
	a, _ := anonymous()
	doc := newDoc(t, app.PageIndex, "/")

	c.Load(context.Background(), app.PageIndex, a, doc)
	list := doc.Element("places-list").HTML
	if strings.Contains(list, "<script>") || !strings.Contains(list, "&lt;script&gt;") {
		t.Fatalf("title not escaped: %s", list)
	}
	if !strings.Contains(list, `href="/place?id=1"`) || !strings.Contains(list, "$0.00 / night") {
		t.Fatalf("numeric id or missing price: %s", list)
	}
}
