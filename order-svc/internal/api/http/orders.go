package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/service"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var input service.CreateOrderInput
	if !decode(w, r, &input) {
		return
	}
	order, err := h.Orders.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	table, err := intQuery(r, "table")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	status := domain.OrderStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		h.writeError(w, r, domain.Invalid("unknown order status %q", status))
		return
	}
	orders, err := h.Orders.List(r.Context(), service.OrderFilter{Status: status, TableNumber: table})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var patch service.OrderPatch
	if !decode(w, r, &patch) {
		return
	}
	order, err := h.Orders.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) payOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.MarkPaid(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
