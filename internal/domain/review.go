package domain

// ReviewDraft is built locally from the review form before submission.
type ReviewDraft struct {
	Text    string `json:"text" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	PlaceID string `json:"place_id" validate:"required"`
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
