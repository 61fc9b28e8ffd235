package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askabhijit/clarity-bookings/internal/domain"
	"github.com/askabhijit/clarity-bookings/internal/http/handlers"
	"github.com/askabhijit/clarity-bookings/internal/notify"
	"github.com/askabhijit/clarity-bookings/internal/payments"
	"github.com/askabhijit/clarity-bookings/internal/service"
	"github.com/askabhijit/clarity-bookings/pkg/config"
)

// ---------- Mocks ----------

type mockStore struct {
	appended  []domain.Booking
	appendErr error
}

func (m *mockStore) Append(_ context.Context, b *domain.Booking) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, *b)
	return nil
}

func (m *mockStore) ReadAll(_ context.Context) ([]domain.Booking, error) {
	return append([]domain.Booking{}, m.appended...), nil
}

type mockNotifier struct {
	res notify.Result
}

func (m *mockNotifier) Notify(_ context.Context, _ *domain.Booking) notify.Result {
	return m.res
}

func newServer(st *mockStore, n *mockNotifier) *httptest.Server {
	links := payments.NewComposer(
		config.PaymentsConfig{UPIID: "abhi@bank", UPIPayeeName: "Abhijit", AmountINR: 500, StripeCheckoutURL: "https://buy.stripe.com/abc"},
		config.SocialConfig{InstagramHandle: "ask_abhijit", WhatsAppNumber: "919876543210"},
	)
	svc := service.New(st, n, links)
	h := handlers.NewBookingsHandler(svc)
	return httptest.NewServer(h.Routes())
}

type submitResponse struct {
	Status        string          `json:"status"`
	Reason        string          `json:"reason"`
	Booking       *domain.Booking `json:"booking"`
	PaymentLinks  *payments.Links `json:"payment_links"`
	NotifyOutcome string          `json:"notify_outcome"`
	NotifyReason  string          `json:"notify_reason"`
}

// ---------- Tests ----------

func TestSubmitFormAccepted(t *testing.T) {
	st := &mockStore{}
	srv := newServer(st, &mockNotifier{res: notify.Result{Outcome: notify.OutcomeSkippedMissingConfig}})
	defer srv.Close()

	form := url.Values{
		"name":      {"Priya"},
		"email":     {"p@x.com"},
		"gender":    {"Female"},
		"instagram": {"@priya_ig"},
		"message":   {"need clarity"},
	}
	resp, err := http.Post(srv.URL+"/book-report", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out submitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "accepted", out.Status)
	require.Equal(t, "skipped_missing_config", out.NotifyOutcome)
	require.Equal(t, "@priya_ig", out.Booking.ContactHandle, "instagram field folds into contact_handle")
	require.Equal(t, "upi://pay?pa=abhi@bank&pn=Abhijit&am=500&cu=INR&tn=ClarityReport", out.PaymentLinks.UPI)
	require.NotEmpty(t, out.PaymentLinks.WhatsApp)
	require.Len(t, st.appended, 1)
}

func TestSubmitJSONAccepted(t *testing.T) {
	st := &mockStore{}
	srv := newServer(st, &mockNotifier{res: notify.Result{Outcome: notify.OutcomeSent}})
	defer srv.Close()

	body, _ := json.Marshal(map[string]string{
		"name":           "Priya",
		"email":          "p@x.com",
		"contact_handle": "+91 98765 43210",
	})
	resp, err := http.Post(srv.URL+"/book-report", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out submitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "sent", out.NotifyOutcome)
	require.Equal(t, "+91 98765 43210", out.Booking.ContactHandle)
}

func TestSubmitRejectedMissingName(t *testing.T) {
	st := &mockStore{}
	srv := newServer(st, &mockNotifier{})
	defer srv.Close()

	form := url.Values{"email": {"p@x.com"}}
	resp, err := http.Post(srv.URL+"/book-report", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out submitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "rejected", out.Status)
	require.Equal(t, "Name is required.", out.Reason)
	require.Empty(t, st.appended, "log untouched on rejection")
}

func TestSubmitStorageFailure(t *testing.T) {
	st := &mockStore{appendErr: &domain.StorageError{Path: "bookings.csv", Err: context.DeadlineExceeded}}
	srv := newServer(st, &mockNotifier{})
	defer srv.Close()

	form := url.Values{"name": {"Priya"}, "email": {"p@x.com"}}
	resp, err := http.Post(srv.URL+"/book-report", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "STORAGE_FAILURE", out["code"])
}

func TestSubmitInvalidJSON(t *testing.T) {
	srv := newServer(&mockStore{}, &mockNotifier{})
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/book-report", "application/json", strings.NewReader("{broken"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListBookings(t *testing.T) {
	st := &mockStore{}
	srv := newServer(st, &mockNotifier{res: notify.Result{Outcome: notify.OutcomeSent}})
	defer srv.Close()

	for _, name := range []string{"first", "second"} {
		form := url.Values{"name": {name}, "email": {name + "@x.com"}}
		resp, err := http.Post(srv.URL+"/book-report", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
		require.NoError(t, err)
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/bookings?limit=10")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []domain.Booking
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 2)
	require.Equal(t, "second", out[0].Name, "newest first")
}

func TestPaymentLinksEndpoint(t *testing.T) {
	srv := newServer(&mockStore{}, &mockNotifier{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/payment-links")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		AmountINR    int            `json:"amount_inr"`
		PaymentLinks payments.Links `json:"payment_links"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 500, out.AmountINR)
	require.Equal(t, "upi://pay?pa=abhi@bank&pn=Abhijit&am=500&cu=INR&tn=ClarityReport", out.PaymentLinks.UPI)
	require.Equal(t, "https://buy.stripe.com/abc", out.PaymentLinks.Stripe)
	require.Empty(t, out.PaymentLinks.WhatsApp)
}
