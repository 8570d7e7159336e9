package httpapi

import (
	"io"
	"net/http"

	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/service"

	"github.com/gorilla/mux"
)

// registerApprovalRoutes mounts one onboarding workflow under prefix.
func (h *Handler) registerApprovalRoutes(r *mux.Router, prefix string, wf service.ApprovalServiceInterface) {
	r.Handle(prefix, h.protect(h.submitRequest(wf))).Methods("POST")
	r.Handle(prefix+"/me", h.protect(h.myRequest(wf))).Methods("GET")
	r.Handle(prefix, h.protect(h.listRequests(wf), admin)).Methods("GET")
	r.Handle(prefix+"/{id:[0-9]+}/approve", h.protect(h.approveRequest(wf), admin)).Methods("PUT")
	r.Handle(prefix+"/{id:[0-9]+}/reject", h.protect(h.rejectRequest(wf), admin)).Methods("PUT")
}

func (h *Handler) submitRequest(wf service.ApprovalServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "could not read request body")
			return
		}
		req, err := wf.Submit(r.Context(), currentUser(r), body)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, req)
	}
}

func (h *Handler) myRequest(wf service.ApprovalServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := wf.Mine(r.Context(), currentUser(r).ID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}

func (h *Handler) listRequests(wf service.ApprovalServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := domain.RequestStatus(r.URL.Query().Get("status"))
		reqs, err := wf.List(r.Context(), status)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reqs)
	}
}

func (h *Handler) approveRequest(wf service.ApprovalServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathInt(r, "id")
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		req, err := wf.Approve(r.Context(), currentUser(r), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}

func (h *Handler) rejectRequest(wf service.ApprovalServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathInt(r, "id")
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		var body struct {
			Reason string `json:"reason"`
		}
		// reason is optional, so an empty body is fine
		if r.ContentLength != 0 {
			if err := decodeJSON(r, &body); err != nil {
				h.writeError(w, r, err)
				return
			}
		}
		req, err := wf.Reject(r.Context(), currentUser(r), id, body.Reason)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}
