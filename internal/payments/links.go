// Package payments formats the pay-by-reference deep links offered after a
// booking is accepted. The links are static: no gateway call, no callback
// verification, no check of the payee identifier's syntax.
package payments

import (
	"fmt"
	"net/url"

	"github.com/askabhijit/clarity-bookings/pkg/config"
)

const (
	currency = "INR"
	txnNote  = "ClarityReport"
)

// Links is the set of payment actions returned with an accepted booking.
// Checkout URLs are config passthrough and omitted when not configured.
type Links struct {
	UPI      string `json:"upi"`
	Stripe   string `json:"stripe,omitempty"`
	Razorpay string `json:"razorpay,omitempty"`
	PayPal   string `json:"paypal,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

type Composer struct {
	payments config.PaymentsConfig
	social   config.SocialConfig
}

func NewComposer(payments config.PaymentsConfig, social config.SocialConfig) *Composer {
	return &Composer{payments: payments, social: social}
}

// UPILink renders the upi://pay deep link with the fixed pa/pn/am/cu/tn
// parameter order. The payee ID goes in verbatim; UPI IDs are of the form
// handle@bank and UPI apps expect the @ unescaped.
func (c *Composer) UPILink() string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d&cu=%s&tn=%s",
		c.payments.UPIID,
		url.QueryEscape(c.payments.UPIPayeeName),
		c.payments.AmountINR,
		currency,
		txnNote,
	)
}

// WhatsAppLink pre-fills a chat message confirming payment. The link is
// presented to the booker; this system never sends it.
func (c *Composer) WhatsAppLink(name string) string {
	text := fmt.Sprintf("Hi %s, I paid for the Clarity Report. Name: %s.", c.payments.UPIPayeeName, name)
	return fmt.Sprintf("https://wa.me/%s?text=%s", c.social.WhatsAppNumber, url.QueryEscape(text))
}

// Compose returns every link relevant to one accepted booking.
func (c *Composer) Compose(name string) Links {
	return Links{
		UPI:      c.UPILink(),
		Stripe:   c.payments.StripeCheckoutURL,
		Razorpay: c.payments.RazorpayCheckoutURL,
		PayPal:   c.payments.PayPalLink,
		WhatsApp: c.WhatsAppLink(name),
	}
}

// Static returns the links that exist independent of any submission, for
// rendering the landing page CTAs.
func (c *Composer) Static() Links {
	return Links{
		UPI:      c.UPILink(),
		Stripe:   c.payments.StripeCheckoutURL,
		Razorpay: c.payments.RazorpayCheckoutURL,
		PayPal:   c.payments.PayPalLink,
	}
}

// AmountINR exposes the configured price for page rendering.
func (c *Composer) AmountINR() int {
	return c.payments.AmountINR
}
