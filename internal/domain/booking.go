package domain

import "time"

// Booking is one submitted request for a Clarity Report. Records are
// immutable once appended to the log; there is no update or delete path.
type Booking struct {
	SubmittedAt   time.Time `json:"submitted_at"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	DateOfBirth   string    `json:"date_of_birth,omitempty"`
	Gender        string    `json:"gender,omitempty"`
	ContactHandle string    `json:"contact_handle,omitempty"`
	Message       string    `json:"message,omitempty"`
}

// SubmitRequest carries the raw form fields of a booking submission.
// ContactHandle holds either an Instagram handle or a phone number
// depending on which page variant posted the form.
type SubmitRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
	ContactHandle string `json:"contact_handle"`
	Message       string `json:"message"`
}

type SubmitStatus string

const (
	SubmitAccepted SubmitStatus = "accepted"
	SubmitRejected SubmitStatus = "rejected"
)
