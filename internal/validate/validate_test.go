package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askabhijit/clarity-bookings/internal/domain"
	"github.com/askabhijit/clarity-bookings/internal/validate"
)

func TestBookingAccepted(t *testing.T) {
	req := &domain.SubmitRequest{Name: "Priya", Email: "p@x.com"}
	require.NoError(t, validate.Booking(req))
}

func TestBookingMissingName(t *testing.T) {
	req := &domain.SubmitRequest{Email: "p@x.com"}
	err := validate.Booking(req)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Name is required.", verr.Reason)
}

func TestBookingWhitespaceNameRejectedAfterNormalize(t *testing.T) {
	req := &domain.SubmitRequest{Name: "   ", Email: "p@x.com"}
	validate.Normalize(req)
	err := validate.Booking(req)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Name is required.", verr.Reason)
}

func TestBookingMissingEmail(t *testing.T) {
	req := &domain.SubmitRequest{Name: "Priya"}
	err := validate.Booking(req)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Email is required.", verr.Reason)
}

func TestBookingMalformedEmail(t *testing.T) {
	req := &domain.SubmitRequest{Name: "Priya", Email: "not-an-email"}
	err := validate.Booking(req)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Email address is not valid.", verr.Reason)
}

func TestOptionalFieldsNotValidated(t *testing.T) {
	req := &domain.SubmitRequest{
		Name:          "Priya",
		Email:         "p@x.com",
		DateOfBirth:   "not a date",
		Gender:        "prefer not to say",
		ContactHandle: "whatever",
	}
	require.NoError(t, validate.Booking(req))
}

func TestNormalize(t *testing.T) {
	req := &domain.SubmitRequest{
		Name:          "  Priya ",
		Email:         " P@X.com ",
		Gender:        " Female ",
		ContactHandle: " @priya ",
		Message:       "  raw message stays  ",
	}
	validate.Normalize(req)

	require.Equal(t, "Priya", req.Name)
	require.Equal(t, "p@x.com", req.Email)
	require.Equal(t, "Female", req.Gender)
	require.Equal(t, "@priya", req.ContactHandle)
	require.Equal(t, "  raw message stays  ", req.Message)
}
