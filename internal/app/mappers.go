package app

import (
	"strconv"
	"strings"

	"hbnb_web/internal/domain"
)

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// lookupID accepts string or numeric ids.
func lookupID(m map[string]any, path string) string {
	switch v := lookupAny(m, path).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// getFloatFlexible: number from several paths (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

func objects(v any) []map[string]any {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

/********** place mappers **********/

// mapPlace converts an untyped API payload; a missing price becomes 0.
func mapPlace(p map[string]any) domain.Place {
	pl := domain.Place{
		ID:          lookupID(p, "id"),
		Title:       lookupStr(p, "title"),
		Description: lookupStr(p, "description"),
		Latitude:    getFloatFlexible(p, "latitude", "lat"),
		Longitude:   getFloatFlexible(p, "longitude", "lon", "lng"),
	}
	if f := getFloatFlexible(p, "price"); f != nil {
		pl.Price = *f
	}
	if o, ok := lookupAny(p, "owner").(map[string]any); ok {
		pl.Owner = &domain.Owner{
			ID:        lookupID(o, "id"),
			FirstName: lookupStr(o, "first_name"),
			LastName:  lookupStr(o, "last_name"),
			Email:     lookupStr(o, "email"),
		}
	}
	if raw, ok := lookupAny(p, "amenities").([]any); ok {
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				pl.Amenities = append(pl.Amenities, domain.Amenity{Name: t})
			case map[string]any:
				pl.Amenities = append(pl.Amenities, domain.Amenity{ID: lookupID(t, "id"), Name: lookupStr(t, "name")})
			}
		}
	}
	for _, r := range objects(lookupAny(p, "reviews")) {
		rv := domain.PlaceReview{
			ID:     lookupID(r, "id"),
			Text:   lookupStr(r, "text"),
			UserID: lookupID(r, "user_id"),
		}
		if f := getFloatFlexible(r, "rating"); f != nil {
			rv.Rating = int(*f)
		}
		pl.Reviews = append(pl.Reviews, rv)
	}
	return pl
}

func mapPlaces(in []map[string]any) []domain.Place {
	out := make([]domain.Place, 0, len(in))
	for _, p := range in {
		out = append(out, mapPlace(p))
	}
	return out
}
