package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"tableside/order-svc/internal/domain"
)

type reservationStatusRequest struct {
	Status      domain.ReservationStatus `json:"status"`
	TableNumber int                      `json:"table"`
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var res domain.Reservation
	if !decode(w, r, &res) {
		return
	}
	if err := h.Reservations.Create(r.Context(), &res); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	list, err := h.Reservations.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	var req reservationStatusRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.Reservations.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status, req.TableNumber)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
