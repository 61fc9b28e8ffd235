package service

import (
	"context"
	"errors"
	"time"

	"github.com/askabhijit/clarity-bookings/internal/domain"
	"github.com/askabhijit/clarity-bookings/internal/notify"
	"github.com/askabhijit/clarity-bookings/internal/payments"
	"github.com/askabhijit/clarity-bookings/internal/store"
	"github.com/askabhijit/clarity-bookings/internal/validate"
)

// SubmitResult is what the presentation layer renders after a submission.
// Status and Notify are reported independently: a booking can be accepted
// and recorded while its confirmation email was skipped or failed.
type SubmitResult struct {
	Status       domain.SubmitStatus
	Reason       string
	Booking      *domain.Booking
	PaymentLinks payments.Links
	Notify       notify.Result
}

// BookingService runs the submission pipeline: validate, append to the
// log, then best-effort notify. Strictly sequential within one request.
type BookingService struct {
	store    store.BookingStore
	notifier notify.Notifier
	links    *payments.Composer
}

func New(st store.BookingStore, notifier notify.Notifier, links *payments.Composer) *BookingService {
	return &BookingService{store: st, notifier: notifier, links: links}
}

// Submit validates req, persists it, and attempts the confirmation email.
// A rejected submission returns a result with the reason and a nil error;
// only a storage failure returns an error, and the notifier is never
// invoked after one.
func (s *BookingService) Submit(ctx context.Context, req *domain.SubmitRequest) (*SubmitResult, error) {
	validate.Normalize(req)
	if err := validate.Booking(req); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return &SubmitResult{Status: domain.SubmitRejected, Reason: verr.Reason}, nil
		}
		return nil, err
	}

	b := &domain.Booking{
		SubmittedAt:   time.Now(),
		Name:          req.Name,
		Email:         req.Email,
		DateOfBirth:   req.DateOfBirth,
		Gender:        req.Gender,
		ContactHandle: req.ContactHandle,
		Message:       req.Message,
	}

	if err := s.store.Append(ctx, b); err != nil {
		return nil, err
	}

	// Best effort from here on; the record is already durable.
	res := s.notifier.Notify(ctx, b)

	return &SubmitResult{
		Status:       domain.SubmitAccepted,
		Booking:      b,
		PaymentLinks: s.links.Compose(b.Name),
		Notify:       res,
	}, nil
}

// List returns persisted bookings, newest first.
func (s *BookingService) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	all, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	// reverse append order
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}

	if offset >= len(all) {
		return []domain.Booking{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// Links exposes the payment link composer for pages that render CTAs
// without a submission.
func (s *BookingService) Links() *payments.Composer {
	return s.links
}
