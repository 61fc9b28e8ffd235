package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"time"

	"github.com/askabhijit/clarity-bookings/internal/domain"
	"github.com/askabhijit/clarity-bookings/pkg/config"
	"github.com/askabhijit/clarity-bookings/pkg/logger"
)

// SMTPNotifier sends the confirmation over an authenticated mail-submission
// session (STARTTLS when the relay advertises it). Transport errors are
// converted to a FailedTransport result, never raised.
type SMTPNotifier struct {
	cfg  config.SMTPConfig
	tmpl Template
}

func NewSMTPNotifier(cfg config.SMTPConfig, tmpl Template) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, tmpl: tmpl}
}

func (n *SMTPNotifier) Notify(ctx context.Context, b *domain.Booking) Result {
	if !n.cfg.Complete() {
		return Result{Outcome: OutcomeSkippedMissingConfig, Reason: "smtp host, user, pass or from not configured"}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", b.Email)
	fmt.Fprintf(&buf, "Subject: %s\r\n", n.tmpl.Subject())
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n", n.tmpl.Body(b.Name))

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.User, n.cfg.Pass, n.cfg.Host)

	// SendMail upgrades to STARTTLS when the relay advertises it.
	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{b.Email}, buf.Bytes()); err != nil {
		logger.WarnContext(ctx, "confirmation email not sent", "to", b.Email, "error", err)
		return Result{Outcome: OutcomeFailedTransport, Reason: err.Error()}
	}

	logger.InfoContext(ctx, "confirmation email sent", "to", b.Email)
	return Result{Outcome: OutcomeSent}
}

var _ Notifier = (*SMTPNotifier)(nil)
