package notify

import (
	"context"
	"fmt"

	"github.com/askabhijit/clarity-bookings/internal/domain"
	"github.com/askabhijit/clarity-bookings/pkg/logger"
)

// DevNotifier prints the confirmation email to the logs instead of sending it.
type DevNotifier struct {
	tmpl Template
}

func NewDevNotifier(tmpl Template) *DevNotifier {
	return &DevNotifier{tmpl: tmpl}
}

func (d *DevNotifier) Notify(ctx context.Context, b *domain.Booking) Result {
	logger.InfoContext(ctx, "📧 [DEV MAIL] Booking Confirmation",
		"to", b.Email,
		"name", b.Name,
		"subject", d.tmpl.Subject(),
	)

	fmt.Printf("\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"📧 BOOKING CONFIRMATION (DEV MODE)\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"To: %s\n"+
		"Subject: %s\n"+
		"\n"+
		"%s"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n",
		b.Email, d.tmpl.Subject(), d.tmpl.Body(b.Name))

	return Result{Outcome: OutcomeSent}
}

var _ Notifier = (*DevNotifier)(nil)
