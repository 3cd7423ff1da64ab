package app

const (
	elNotification = "notification"

	elLoginForm    = "login-form"
	elEmail        = "email"
	elPassword     = "password"
	elLoginSubmit  = "login-submit"
	elErrorMessage = "error-message"

	elPlacesList  = "places-list"
	elPriceFilter = "price-filter"
	elViewID      = "view-id"

	elPlaceDetails       = "place-details"
	elReviews            = "reviews"
	elAddReview          = "add-review"
	elReviewForm         = "review-form"
	elReviewText         = "review-text"
	elRating             = "rating"
	elReviewSubmit       = "review-submit"
	elSeparateReviewLink = "separate-review-link"

	elPlaceInfo        = "place-info"
	elStandaloneReview = "review"
)

var common = []string{elLoginLink, elNotification}

// pageElements lists the element ids each page template declares.
var pageElements = map[Page][]string{
	PageIndex: {elPlacesList, elPriceFilter, elViewID},
	PageLogin: {elLoginForm, elEmail, elPassword, elLoginSubmit, elErrorMessage},
	PagePlace: {
		elPlaceDetails, elReviews, elAddReview, elReviewForm,
		elReviewText, elRating, elReviewSubmit, elSeparateReviewLink,
	},
	PageAddReview: {elPlaceInfo, elReviewForm, elStandaloneReview, elRating, elReviewSubmit},
	PageUnknown:   {},
}

// Elements returns the ids a page declares, shared header ones included.
func Elements(p Page) []string {
	ids := append([]string(nil), common...)
	return append(ids, pageElements[p]...)
}

var ratingOptions = []struct{ Value, Text string }{
	{"1", "1 - Poor"},
	{"2", "2 - Fair"},
	{"3", "3 - Good"},
	{"4", "4 - Very Good"},
	{"5", "5 - Excellent"},
}
