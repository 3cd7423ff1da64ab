package app

import "strings"

type Page string

const (
	PageIndex     Page = "index"
	PageLogin     Page = "login"
	PagePlace     Page = "place"
	PageAddReview Page = "add-review"
	PageUnknown   Page = "unknown"
)

// Resolve maps a URL path to the page whose controller handles it.
func Resolve(path string) Page {
	page := strings.TrimPrefix(path, "/")
	switch page {
	case "", "index":
		return PageIndex
	case "login":
		return PageLogin
	case "place":
		return PagePlace
	case "add-review":
		return PageAddReview
	}
	return PageUnknown
}
