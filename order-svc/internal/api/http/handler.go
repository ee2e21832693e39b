package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/refresh"
	"tableside/order-svc/internal/service"
)

type Handler struct {
	Menu         service.MenuServiceInterface
	Orders       service.OrderServiceInterface
	Tables       service.TableServiceInterface
	Requests     service.RequestServiceInterface
	Reservations service.ReservationServiceInterface
	Feedback     service.FeedbackServiceInterface
	Loyalty      service.LoyaltyServiceInterface

	Poller    *refresh.Poller
	Limiter   *RateLimiter
	UploadDir string
	Log       *logrus.Entry
}

func (h *Handler) logger() *logrus.Entry {
	if h.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		h.Log = logrus.NewEntry(l)
	}
	return h.Log
}

func (h *Handler) limit(fn http.HandlerFunc) http.HandlerFunc {
	return h.Limiter.Limit(fn)
}

// RegisterRoutes mounts the API under /api and again at the root for clients of the
// unprefixed paths.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	h.mount(r.PathPrefix("/api").Subrouter())
	h.mount(r)
}

func (h *Handler) mount(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/updates", h.streamUpdates).Methods("GET")

	r.HandleFunc("/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/menu/{id}", h.updateMenuItem).Methods("PUT", "PATCH")
	r.HandleFunc("/menu/{id}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/menu/{id}/image", h.uploadMenuImage).Methods("POST")

	r.HandleFunc("/orders", h.limit(h.createOrder)).Methods("POST")
	r.HandleFunc("/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/orders/{id}", h.updateOrder).Methods("PATCH")
	r.HandleFunc("/orders/{id}/pay", h.payOrder).Methods("POST")

	r.HandleFunc("/tables", h.createTable).Methods("POST")
	r.HandleFunc("/tables", h.listTables).Methods("GET")
	r.HandleFunc("/tables/number/{number:[0-9]+}", h.getTableByNumber).Methods("GET")
	r.HandleFunc("/tables/{id}", h.getTable).Methods("GET")
	r.HandleFunc("/tables/{id}", h.updateTable).Methods("PUT", "PATCH")
	r.HandleFunc("/tables/{id}", h.deleteTable).Methods("DELETE")
	r.HandleFunc("/tables/{id}/reserve", h.reserveTable).Methods("POST")
	r.HandleFunc("/tables/{id}/free", h.freeTable).Methods("POST")
	r.HandleFunc("/tables/{id}/maintenance", h.setMaintenance).Methods("POST")
	r.HandleFunc("/tables/{id}/maintenance", h.clearMaintenance).Methods("DELETE")
	r.HandleFunc("/tables/{id}/qrcode", h.tableQRCode).Methods("GET")

	r.HandleFunc("/service-requests", h.limit(h.raiseServiceRequest)).Methods("POST")
	r.HandleFunc("/service-requests", h.listServiceRequests).Methods("GET")
	r.HandleFunc("/service-requests/{id}/complete", h.completeServiceRequest).Methods("POST")

	r.HandleFunc("/billing-requests", h.limit(h.raiseBillingRequest)).Methods("POST")
	r.HandleFunc("/billing-requests", h.listBillingRequests).Methods("GET")
	r.HandleFunc("/billing-requests/{id}/complete", h.completeBillingRequest).Methods("POST")

	r.HandleFunc("/reservations", h.limit(h.createReservation)).Methods("POST")
	r.HandleFunc("/reservations", h.listReservations).Methods("GET")
	r.HandleFunc("/reservations/{id}", h.updateReservation).Methods("PATCH")

	r.HandleFunc("/feedback", h.limit(h.createFeedback)).Methods("POST")
	r.HandleFunc("/feedback", h.listFeedback).Methods("GET")

	r.HandleFunc("/loyalty/{customerId}", h.getLoyalty).Methods("GET")
	r.HandleFunc("/loyalty/{customerId}/redeem", h.redeemReward).Methods("POST")
	r.HandleFunc("/rewards", h.listRewards).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyFinalized),
		errors.Is(err, domain.ErrDuplicateTableNumber),
		errors.Is(err, domain.ErrDuplicateFeedback),
		errors.Is(err, domain.ErrTableNotAvailable),
		errors.Is(err, domain.ErrTableOccupied):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger().WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		badRequest(w, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func intQuery(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.Invalid("%s must be a number", key)
	}
	return n, nil
}
