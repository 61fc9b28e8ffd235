package notify

import (
	"context"
	"fmt"

	"github.com/askabhijit/clarity-bookings/internal/domain"
)

// Outcome classifies one notification attempt. A skipped or failed email
// never affects the persisted booking; the caller reports it independently.
type Outcome string

const (
	OutcomeSent                 Outcome = "sent"
	OutcomeSkippedMissingConfig Outcome = "skipped_missing_config"
	OutcomeFailedTransport      Outcome = "failed_transport"
)

type Result struct {
	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, b *domain.Booking) Result
}

// Template carries the fixed pieces of the confirmation email.
type Template struct {
	AmountINR int
	Instagram string
	Owner     string
}

func (t Template) Subject() string {
	return "Clarity Report — Booking Confirmed"
}

func (t Template) Body(name string) string {
	return fmt.Sprintf(`Hi %s,

Thank you for booking the Clarity Report (₹%d).

I will review your details and send your personalised guidance report within 24-48 hours.
You may reach out on Instagram DM for clarifications (@%s).

— %s
Relationship Clarity Coaching
`, name, t.AmountINR, t.Instagram, t.Owner)
}
