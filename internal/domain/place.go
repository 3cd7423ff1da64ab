package domain

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrNoPlaceID = errors.New("no place id provided")
)

type Place struct {
	ID          string        `json:"id"`
	Title       string        `json:"title,omitempty"`
	Price       float64       `json:"price"`
	Description string        `json:"description,omitempty"`
	Latitude    *float64      `json:"latitude,omitempty"`
	Longitude   *float64      `json:"longitude,omitempty"`
	Owner       *Owner        `json:"owner,omitempty"`
	Amenities   []Amenity     `json:"amenities,omitempty"`
	Reviews     []PlaceReview `json:"reviews,omitempty"`
}

type Owner struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

type Amenity struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// PlaceReview is a review as embedded in the place details payload.
type PlaceReview struct {
	ID     string `json:"id,omitempty"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	UserID string `json:"user_id,omitempty"`
}

// PlacesCache is the list-page filter state. It is owned by one page view
// and only replaced by a re-fetch.
type PlacesCache struct {
	ViewID string  `json:"view_id"`
	Places []Place `json:"places"`
}
