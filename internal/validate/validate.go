// Package validate holds the booking submission rules. Name and email are
// the only required fields; everything else is stored as given.
package validate

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/askabhijit/clarity-bookings/internal/domain"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Booking checks a submission and returns a *domain.ValidationError with a
// human-readable reason on rejection, nil on acceptance. It has no side
// effects; the request is normalized by Normalize, not here.
func Booking(req *domain.SubmitRequest) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &domain.ValidationError{Reason: "invalid submission"}
	}

	first := verrs[0]
	switch {
	case first.Field() == "Name":
		return &domain.ValidationError{Reason: "Name is required."}
	case first.Field() == "Email" && first.Tag() == "required":
		return &domain.ValidationError{Reason: "Email is required."}
	case first.Field() == "Email":
		return &domain.ValidationError{Reason: "Email address is not valid."}
	default:
		return &domain.ValidationError{Reason: "invalid submission"}
	}
}

// Normalize trims the required fields and lowercases the email so the
// persisted contact matches the notification recipient. Free-form fields
// are left untouched.
func Normalize(req *domain.SubmitRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.DateOfBirth = strings.TrimSpace(req.DateOfBirth)
	req.Gender = strings.TrimSpace(req.Gender)
	req.ContactHandle = strings.TrimSpace(req.ContactHandle)
}
