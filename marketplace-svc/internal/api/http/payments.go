package httpapi

import (
	"net/http"

	"tiffinbox/marketplace-svc/internal/domain"
)

type checkoutPaymentRequest struct {
	Items []domain.CheckoutLine `json:"orderItems"`
}

type checkoutVerifyRequest struct {
	domain.PaymentProof
	domain.CheckoutRequest
}

type customOrderPaymentRequest struct {
	domain.PaymentProof
	CustomOrderID int `json:"customOrderId"`
}

type tableBookingVerifyRequest struct {
	domain.PaymentProof
	Reservation domain.Reservation `json:"reservation"`
}

func (h *Handler) createCheckoutPayment(w http.ResponseWriter, r *http.Request) {
	var req checkoutPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.Payments.CreateCheckoutPayment(r.Context(), currentUser(r), req.Items)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) verifyCheckoutPayment(w http.ResponseWriter, r *http.Request) {
	var req checkoutVerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	req.CheckoutRequest.UserID = currentUser(r).ID

	parent, err := h.Payments.VerifyCheckoutPayment(r.Context(), req.PaymentProof, req.CheckoutRequest)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, parent)
}

func (h *Handler) createCustomOrderPayment(w http.ResponseWriter, r *http.Request) {
	var req customOrderPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.Payments.CreateCustomOrderPayment(r.Context(), currentUser(r), req.CustomOrderID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) verifyCustomOrderPayment(w http.ResponseWriter, r *http.Request) {
	var req customOrderPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.Payments.VerifyCustomOrderPayment(r.Context(), currentUser(r), req.PaymentProof, req.CustomOrderID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) createTableBookingPayment(w http.ResponseWriter, r *http.Request) {
	var res domain.Reservation
	if err := decodeJSON(r, &res); err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.Payments.CreateTableBookingPayment(r.Context(), currentUser(r), &res)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) verifyTableBookingPayment(w http.ResponseWriter, r *http.Request) {
	var req tableBookingVerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.Payments.VerifyTableBookingPayment(r.Context(), currentUser(r), req.PaymentProof, &req.Reservation)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
