package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"tableside/report-svc/internal/domain"
	"tableside/report-svc/internal/service"
)

type Handler struct {
	Reports service.ReportInterface
	Log     *logrus.Entry
}

func NewHandler(svc service.ReportInterface, log *logrus.Entry) *Handler {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Handler{Reports: svc, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/reports", h.getReport).Methods("GET")
	r.HandleFunc("/api/reports/export", h.exportReport).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "report-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) (*domain.Report, bool) {
	period, err := domain.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "period must be one of today, week, month, quarter, year"})
		return nil, false
	}

	report, err := h.Reports.Report(r.Context(), period)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidPeriod) {
			status = http.StatusBadRequest
		} else {
			h.Log.WithError(err).WithField("period", period).Error("failed to build report")
		}
		writeJSON(w, status, errorBody{Error: err.Error()})
		return nil, false
	}
	return report, true
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) exportReport(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="report-`+string(report.Period)+"-"+report.To+`.csv"`)
	if err := WriteCSV(w, report); err != nil {
		h.Log.WithError(err).Error("failed to write csv export")
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
