package httpapi

import (
	"net/http"

	"tableside/order-svc/internal/domain"
)

func (h *Handler) createFeedback(w http.ResponseWriter, r *http.Request) {
	var fb domain.Feedback
	if !decode(w, r, &fb) {
		return
	}
	if err := h.Feedback.Create(r.Context(), &fb); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, fb)
}

func (h *Handler) listFeedback(w http.ResponseWriter, r *http.Request) {
	list, err := h.Feedback.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
