package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"tableside/order-svc/internal/domain"
)

type raiseRequest struct {
	TableNumber int                `json:"table"`
	RequestType domain.RequestType `json:"requestType"`
}

func (h *Handler) raiseServiceRequest(w http.ResponseWriter, r *http.Request) {
	var req raiseRequest
	if !decode(w, r, &req) {
		return
	}
	created, err := h.Requests.Raise(r.Context(), req.TableNumber, req.RequestType)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) listServiceRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.Requests.List(r.Context(), domain.RequestStatus(r.URL.Query().Get("status")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *Handler) completeServiceRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.Requests.Complete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) raiseBillingRequest(w http.ResponseWriter, r *http.Request) {
	var req raiseRequest
	if !decode(w, r, &req) {
		return
	}
	created, err := h.Requests.RaiseBill(r.Context(), req.TableNumber)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) listBillingRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.Requests.ListBills(r.Context(), domain.RequestStatus(r.URL.Query().Get("status")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *Handler) completeBillingRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.Requests.CompleteBill(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
