package httpapi

import (
	"net/http"

	"tiffinbox/marketplace-svc/internal/domain"
)

const maxUploadSize = 10 << 20

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := decodeJSON(r, &rest); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.CreateRestaurant(r.Context(), currentUser(r), &rest); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rest, err := h.Catalog.GetRestaurant(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var upd domain.RestaurantUpdate
	if err := decodeJSON(r, &upd); err != nil {
		h.writeError(w, r, err)
		return
	}
	rest, err := h.Catalog.UpdateRestaurant(r.Context(), currentUser(r), id, upd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.DeleteRestaurant(r.Context(), currentUser(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) blockRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body struct {
		Blocked bool `json:"blocked"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.SetRestaurantBlocked(r.Context(), currentUser(r), id, body.Blocked); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "is_blocked": body.Blocked})
}

func (h *Handler) restaurantStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	stats, err := h.Stats.RestaurantStats(r.Context(), currentUser(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) uploadRestaurantImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "File too large")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Error retrieving file")
		return
	}
	defer file.Close()

	url, err := h.Catalog.UploadRestaurantImage(r.Context(), currentUser(r), id,
		header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image_url": url})
}

func (h *Handler) getRestaurantDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathInt(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dishes, err := h.Catalog.ListDishes(r.Context(), restaurantID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathInt(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var dish domain.Dish
	if err := decodeJSON(r, &dish); err != nil {
		h.writeError(w, r, err)
		return
	}
	dish.RestaurantID = restaurantID
	if err := h.Catalog.CreateDish(r.Context(), currentUser(r), &dish); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) dishPath(r *http.Request) (int, int, error) {
	restaurantID, err := pathInt(r, "restaurantId")
	if err != nil {
		return 0, 0, err
	}
	dishID, err := pathInt(r, "dishId")
	if err != nil {
		return 0, 0, err
	}
	return restaurantID, dishID, nil
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, dishID, err := h.dishPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dish, err := h.Catalog.GetDish(r.Context(), restaurantID, dishID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, dishID, err := h.dishPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var upd domain.DishUpdate
	if err := decodeJSON(r, &upd); err != nil {
		h.writeError(w, r, err)
		return
	}
	dish, err := h.Catalog.UpdateDish(r.Context(), currentUser(r), restaurantID, dishID, upd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, dishID, err := h.dishPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.DeleteDish(r.Context(), currentUser(r), restaurantID, dishID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadDishImage(w http.ResponseWriter, r *http.Request) {
	restaurantID, dishID, err := h.dishPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "File too large")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Error retrieving file")
		return
	}
	defer file.Close()

	url, err := h.Catalog.UploadDishImage(r.Context(), currentUser(r), restaurantID, dishID,
		header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": url,
	})
}
