package app

import "net/url"

const (
	endpointPlaces  = "/places"
	endpointLogin   = "/auth/login"
	endpointReviews = "/reviews/"
)

func placeEndpoint(id string) string { return endpointPlaces + "/" + url.PathEscape(id) }

func placeURL(id string) string { return "/place?id=" + url.QueryEscape(id) }

func addReviewURL(id string) string { return "/add-review?place_id=" + url.QueryEscape(id) }
