package app

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"hbnb_web/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateCredentials expects the email already trimmed.
func validateCredentials(c domain.Credentials) error { return validate.Struct(c) }

// validateDraft requires non-empty text and a rating in 1..5.
func validateDraft(d domain.ReviewDraft) error { return validate.Struct(d) }
