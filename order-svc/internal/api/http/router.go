package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(h *Handler, metrics *Metrics) http.Handler {
	r := mux.NewRouter()
	r.Use(AccessLog(h.logger()))
	if metrics != nil {
		r.Use(metrics.Instrument)
		r.Handle("/metrics", metrics.Handler()).Methods("GET")
	}

	uploadDir := h.UploadDir
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	h.RegisterRoutes(r)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler(r)
}
