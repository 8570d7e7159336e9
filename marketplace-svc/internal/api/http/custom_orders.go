package httpapi

import (
	"net/http"

	"tiffinbox/marketplace-svc/internal/domain"
)

type customOrderRequest struct {
	RestaurantID int      `json:"restaurantId"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

func (h *Handler) createCustomOrder(w http.ResponseWriter, r *http.Request) {
	var req customOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	co := domain.CustomOrder{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	}
	if err := h.CustomOrders.Create(r.Context(), currentUser(r), &co); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, co)
}

func (h *Handler) updateCustomOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "orderId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var upd domain.CustomOrderUpdate
	if err := decodeJSON(r, &upd); err != nil {
		h.writeError(w, r, err)
		return
	}
	co, err := h.CustomOrders.Update(r.Context(), currentUser(r), id, upd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, co)
}

func (h *Handler) myCustomOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.CustomOrders.MyOrders(r.Context(), currentUser(r).ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) restaurantCustomOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.CustomOrders.RestaurantOrders(r.Context(), currentUser(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
