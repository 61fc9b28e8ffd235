package payments_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askabhijit/clarity-bookings/internal/payments"
	"github.com/askabhijit/clarity-bookings/pkg/config"
)

func newComposer() *payments.Composer {
	return payments.NewComposer(
		config.PaymentsConfig{
			UPIID:        "abhi@bank",
			UPIPayeeName: "Abhijit",
			AmountINR:    500,
		},
		config.SocialConfig{
			InstagramHandle: "ask_abhijit",
			WhatsAppNumber:  "919876543210",
		},
	)
}

func TestUPILink(t *testing.T) {
	got := newComposer().UPILink()
	require.Equal(t, "upi://pay?pa=abhi@bank&pn=Abhijit&am=500&cu=INR&tn=ClarityReport", got)
}

func TestUPILinkParameterOrderFixed(t *testing.T) {
	link := newComposer().UPILink()
	order := []string{"pa=", "pn=", "am=", "cu=", "tn="}

	last := -1
	for _, p := range order {
		idx := strings.Index(link, p)
		require.Greater(t, idx, last, "parameter %s out of order", p)
		last = idx
	}
}

func TestCheckoutURLsPassThrough(t *testing.T) {
	c := payments.NewComposer(
		config.PaymentsConfig{
			UPIID:             "abhi@bank",
			UPIPayeeName:      "Abhijit",
			AmountINR:         500,
			StripeCheckoutURL: "https://buy.stripe.com/abc",
			PayPalLink:        "https://paypal.me/abhijit",
		},
		config.SocialConfig{WhatsAppNumber: "919876543210"},
	)

	links := c.Compose("Priya")
	require.Equal(t, "https://buy.stripe.com/abc", links.Stripe)
	require.Equal(t, "https://paypal.me/abhijit", links.PayPal)
	require.Empty(t, links.Razorpay)
}

func TestWhatsAppLink(t *testing.T) {
	got := newComposer().WhatsAppLink("Priya")
	require.Equal(t, "https://wa.me/919876543210?text=Hi+Abhijit%2C+I+paid+for+the+Clarity+Report.+Name%3A+Priya.", got)
}

func TestStaticLinksHaveNoWhatsApp(t *testing.T) {
	links := newComposer().Static()
	require.NotEmpty(t, links.UPI)
	require.Empty(t, links.WhatsApp)
}
