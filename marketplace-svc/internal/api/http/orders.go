package httpapi

import (
	"net/http"

	"tiffinbox/marketplace-svc/internal/domain"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.PaymentMethod == domain.PaymentRazorpay {
		writeMessage(w, http.StatusBadRequest, "online payments must go through /api/payment/razorpay/verify")
		return
	}
	req.UserID = currentUser(r).ID

	parent, err := h.Orders.Checkout(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, parent)
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.MyOrders(r.Context(), currentUser(r).ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) restaurantOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.RestaurantOrders(r.Context(), currentUser(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) deliveryOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.DeliveryOrders(r.Context(), currentUser(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// GET /api/orders/{id} - parent order with its children
func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	parent, err := h.Orders.GetParentOrder(r.Context(), currentUser(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, parent)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body struct {
		Status domain.OrderStatus `json:"orderStatus"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.Orders.UpdateStatus(r.Context(), currentUser(r), id, body.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) orderHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	history, err := h.Orders.History(r.Context(), currentUser(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *Handler) rateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req domain.RatingRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	req.ParentID = id
	req.UserID = currentUser(r).ID

	if err := h.Ratings.Rate(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Ratings submitted")
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	png, err := h.Orders.QRCode(r.Context(), currentUser(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
