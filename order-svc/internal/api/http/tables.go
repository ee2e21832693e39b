package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/service"
)

type createTableRequest struct {
	Number int                `json:"number"`
	Seats  int                `json:"seats"`
	Status domain.TableStatus `json:"status"`
}

type reserveTableRequest struct {
	CustomerName  string `json:"customerName"`
	ReservedUntil string `json:"reservedUntil"`
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var req createTableRequest
	if !decode(w, r, &req) {
		return
	}
	// A new table starts free; occupancy and holds come from orders and reservations.
	switch req.Status {
	case "", domain.TableAvailable, domain.TableMaintenance:
	default:
		h.writeError(w, r, domain.Invalid("a new table can only be available or in maintenance, got %q", req.Status))
		return
	}
	table, err := h.Tables.Add(r.Context(), req.Number, req.Seats)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Status == domain.TableMaintenance {
		if table, err = h.Tables.SetMaintenance(r.Context(), table.ID); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.Tables.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) getTableByNumber(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(mux.Vars(r)["number"])
	table, err := h.Tables.GetByNumber(r.Context(), number)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) updateTable(w http.ResponseWriter, r *http.Request) {
	var patch service.TablePatch
	if !decode(w, r, &patch) {
		return
	}
	table, err := h.Tables.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request) {
	if err := h.Tables.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reserveTable(w http.ResponseWriter, r *http.Request) {
	var req reserveTableRequest
	if !decode(w, r, &req) {
		return
	}
	if req.CustomerName == "" {
		badRequest(w, "customerName is required")
		return
	}
	table, err := h.Tables.Reserve(r.Context(), mux.Vars(r)["id"], req.CustomerName, req.ReservedUntil)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) freeTable(w http.ResponseWriter, r *http.Request) {
	h.tableAction(w, r, h.Tables.Free)
}

func (h *Handler) setMaintenance(w http.ResponseWriter, r *http.Request) {
	h.tableAction(w, r, h.Tables.SetMaintenance)
}

func (h *Handler) clearMaintenance(w http.ResponseWriter, r *http.Request) {
	h.tableAction(w, r, h.Tables.ClearMaintenance)
}

func (h *Handler) tableAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id string) (*domain.Table, error)) {
	table, err := action(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) tableQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Tables.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
