package httpapi

import (
	"net/http"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/service"
)

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := queryInt(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if restaurantID <= 0 {
		h.writeError(w, r, service.ValidationError{Field: "restaurantId", Message: "is required"})
		return
	}
	tables, err := h.Reservations.ListTables(r.Context(), restaurantID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) tableAvailability(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := queryInt(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	partySize, err := queryInt(r, "partySize")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	at, err := time.Parse(time.RFC3339, r.URL.Query().Get("at"))
	if err != nil {
		h.writeError(w, r, service.ValidationError{Field: "at", Message: "must be an RFC3339 timestamp"})
		return
	}
	tables, err := h.Reservations.Availability(r.Context(), restaurantID, partySize, at)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var table domain.Table
	if err := decodeJSON(r, &table); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Reservations.CreateTable(r.Context(), currentUser(r), &table); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) updateTable(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var upd domain.TableUpdate
	if err := decodeJSON(r, &upd); err != nil {
		h.writeError(w, r, err)
		return
	}
	table, err := h.Reservations.UpdateTable(r.Context(), currentUser(r), id, upd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Reservations.DeleteTable(r.Context(), currentUser(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var res domain.Reservation
	if err := decodeJSON(r, &res); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Reservations.Reserve(r.Context(), currentUser(r), &res); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// GET /api/reservations?restaurantId= lists a restaurant's book for staff;
// without it, the caller's own reservations.
func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := queryInt(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list, err := h.Reservations.Reservations(r.Context(), currentUser(r), restaurantID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.Reservations.GetReservation(r.Context(), currentUser(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var upd domain.ReservationUpdate
	if err := decodeJSON(r, &upd); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.Reservations.UpdateReservation(r.Context(), currentUser(r), id, upd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Reservations.CancelReservation(r.Context(), currentUser(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
