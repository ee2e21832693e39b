package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

type redeemRequest struct {
	RewardID string `json:"rewardId"`
}

func (h *Handler) getLoyalty(w http.ResponseWriter, r *http.Request) {
	status, err := h.Loyalty.Get(r.Context(), mux.Vars(r)["customerId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) redeemReward(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if !decode(w, r, &req) {
		return
	}
	if req.RewardID == "" {
		badRequest(w, "rewardId is required")
		return
	}
	acc, err := h.Loyalty.Redeem(r.Context(), mux.Vars(r)["customerId"], req.RewardID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

func (h *Handler) listRewards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Loyalty.Rewards())
}
