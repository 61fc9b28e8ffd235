package notify

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"

	"github.com/askabhijit/clarity-bookings/internal/domain"
	"github.com/askabhijit/clarity-bookings/pkg/logger"
)

// MailerSendNotifier delivers the confirmation through the MailerSend API
// instead of a raw SMTP session. Selected when MAILERSEND_API_KEY is set.
type MailerSendNotifier struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	tmpl    Template
	enabled bool
}

func NewMailerSendNotifier(apiKey, fromName, fromEmail string, tmpl Template) *MailerSendNotifier {
	m := &MailerSendNotifier{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
		tmpl: tmpl,
	}
	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}
	return m
}

func (m *MailerSendNotifier) Notify(ctx context.Context, b *domain.Booking) Result {
	if !m.enabled {
		return Result{Outcome: OutcomeSkippedMissingConfig, Reason: "mailersend api key or sender not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: b.Name, Email: b.Email}})
	msg.SetSubject(m.tmpl.Subject())
	msg.SetText(m.tmpl.Body(b.Name))

	res, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		logger.WarnContext(ctx, "confirmation email not sent", "to", b.Email, "error", err)
		return Result{Outcome: OutcomeFailedTransport, Reason: err.Error()}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		reason := fmt.Sprintf("mailersend error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
		logger.WarnContext(ctx, "confirmation email not sent", "to", b.Email, "error", reason)
		return Result{Outcome: OutcomeFailedTransport, Reason: reason}
	}

	logger.InfoContext(ctx, "confirmation email sent", "to", b.Email, "message_id", res.Header.Get("X-Message-Id"))
	return Result{Outcome: OutcomeSent}
}

var _ Notifier = (*MailerSendNotifier)(nil)
