package app

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"hbnb_web/internal/dom"
	"hbnb_web/internal/domain"
)

const (
	msgNoPlaces      = "No places available."
	msgPlacesFailed  = "Failed to load places. Please try again later."
	defaultTitle     = "Untitled Place"
	unknownPlace     = "Unknown Place"
	defaultDesc      = "No description available"
	defaultAmenities = "No amenities"
	loginPrompt      = `<p class="login-required">Please <a href="/login">login</a> to add a review.</p>`
)

//go:embed templates/*.tmpl
var fragmentFS embed.FS

// Fragments are built with text/template; every interpolated value goes
// through esc (or a func that escapes) so output matches dom.Escape exactly.
var fragments = template.Must(template.New("fragments").Funcs(template.FuncMap{
	"esc":         dom.Escape,
	"price":       formatPrice,
	"stars":       stars,
	"host":        hostName,
	"amenities":   amenityList,
	"placeURL":    placeURL,
	"title":       func(s string) string { return orDefault(s, defaultTitle) },
	"placeName":   func(s string) string { return orDefault(s, unknownPlace) },
	"description": func(s string) string { return orDefault(s, defaultDesc) },
}).ParseFS(fragmentFS, "templates/*.tmpl"))

func render(name string, data any) (string, error) {
	var b strings.Builder
	if err := fragments.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return b.String(), nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func formatPrice(p float64) string { return fmt.Sprintf("%.2f", p) }

// stars repeats ★ once per rating point, clamped to 0..5.
func stars(n int) string {
	n = max(0, min(n, 5))
	return strings.Repeat("★", n)
}

func hostName(o *domain.Owner) string {
	first, last := "", ""
	if o != nil {
		first, last = o.FirstName, o.LastName
	}
	return strings.TrimSpace(dom.Escape(orDefault(first, "Unknown")) + " " + dom.Escape(last))
}

func amenityList(as []domain.Amenity) string {
	if len(as) == 0 {
		return defaultAmenities
	}
	names := make([]string, 0, len(as))
	for _, a := range as {
		names = append(names, dom.Escape(a.Name))
	}
	return strings.Join(names, ", ")
}

func placesError() string { return `<p class="error">` + msgPlacesFailed + `</p>` }

func placeInfoError() string {
	return `<p class="error-message">Unable to load place information</p>`
}
