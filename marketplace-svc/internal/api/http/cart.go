package httpapi

import (
	"net/http"

	"tiffinbox/marketplace-svc/internal/domain"
)

type cartItemRequest struct {
	DishID   int `json:"dishId"`
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Cart.View(r.Context(), currentUser(r).ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	cart, err := h.Cart.Add(r.Context(), currentUser(r).ID, req.DishID, req.Quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathInt(r, "itemId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req cartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	cart, err := h.Cart.Update(r.Context(), currentUser(r).ID, dishID, req.Quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathInt(r, "itemId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	cart, err := h.Cart.Remove(r.Context(), currentUser(r).ID, dishID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(r.Context(), currentUser(r).ID); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.Cart{UserID: currentUser(r).ID, Items: []domain.CartItem{}})
}

func (h *Handler) getAddresses(w http.ResponseWriter, r *http.Request) {
	addrs, err := h.Addresses.List(r.Context(), currentUser(r).ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, addrs)
}

func (h *Handler) addAddress(w http.ResponseWriter, r *http.Request) {
	var addr domain.Address
	if err := decodeJSON(r, &addr); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Addresses.Add(r.Context(), currentUser(r).ID, &addr); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, addr)
}
