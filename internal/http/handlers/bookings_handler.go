package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/askabhijit/clarity-bookings/internal/domain"
	"github.com/askabhijit/clarity-bookings/internal/http/response"
	"github.com/askabhijit/clarity-bookings/internal/notify"
	"github.com/askabhijit/clarity-bookings/internal/payments"
	"github.com/askabhijit/clarity-bookings/internal/service"
	"github.com/askabhijit/clarity-bookings/pkg/logger"
)

type BookingsHandler struct{ Svc *service.BookingService }

func NewBookingsHandler(svc *service.BookingService) *BookingsHandler {
	return &BookingsHandler{Svc: svc}
}

func (h *BookingsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/book-report", h.submit)
	r.Get("/bookings", h.list)
	r.Get("/payment-links", h.paymentLinks)

	return r
}

type submitResponse struct {
	Status        domain.SubmitStatus `json:"status"`
	Reason        string              `json:"reason,omitempty"`
	Booking       *domain.Booking     `json:"booking,omitempty"`
	PaymentLinks  *payments.Links     `json:"payment_links,omitempty"`
	NotifyOutcome notify.Outcome      `json:"notify_outcome,omitempty"`
	NotifyReason  string              `json:"notify_reason,omitempty"`
}

func (h *BookingsHandler) submit(w http.ResponseWriter, r *http.Request) {
	in, err := decodeSubmit(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	res, err := h.Svc.Submit(r.Context(), in)
	if err != nil {
		var serr *domain.StorageError
		if errors.As(err, &serr) {
			logger.ErrorContext(r.Context(), "booking not recorded", "error", serr)
			response.StorageFailure(w, "Your booking could not be recorded. Please try again.")
			return
		}
		logger.ErrorContext(r.Context(), "submit failed", "error", err)
		response.InternalError(w, "submission failed")
		return
	}

	if res.Status == domain.SubmitRejected {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(submitResponse{Status: res.Status, Reason: res.Reason})
		return
	}

	out := submitResponse{
		Status:        res.Status,
		Booking:       res.Booking,
		PaymentLinks:  &res.PaymentLinks,
		NotifyOutcome: res.Notify.Outcome,
		NotifyReason:  res.Notify.Reason,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(out)
}

// decodeSubmit accepts both the JSON API shape and the original HTML form
// post. The form variants disagree on the contact field name, so instagram
// and phone are folded into contact_handle.
func decodeSubmit(r *http.Request) (*domain.SubmitRequest, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var in domain.SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return nil, errors.New("invalid json")
		}
		return &in, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, errors.New("invalid form")
	}

	contact := r.PostFormValue("contact_handle")
	if contact == "" {
		contact = r.PostFormValue("instagram")
	}
	if contact == "" {
		contact = r.PostFormValue("phone")
	}

	return &domain.SubmitRequest{
		Name:          r.PostFormValue("name"),
		Email:         r.PostFormValue("email"),
		DateOfBirth:   r.PostFormValue("dob"),
		Gender:        r.PostFormValue("gender"),
		ContactHandle: contact,
		Message:       r.PostFormValue("message"),
	}, nil
}

func (h *BookingsHandler) list(w http.ResponseWriter, r *http.Request) {
	limit, offset := 20, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	bs, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		logger.ErrorContext(r.Context(), "listing bookings failed", "error", err)
		response.StorageFailure(w, "could not read bookings")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(bs)
}

func (h *BookingsHandler) paymentLinks(w http.ResponseWriter, r *http.Request) {
	links := h.Svc.Links().Static()
	out := struct {
		AmountINR    int            `json:"amount_inr"`
		PaymentLinks payments.Links `json:"payment_links"`
	}{
		AmountINR:    h.Svc.Links().AmountINR(),
		PaymentLinks: links,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
