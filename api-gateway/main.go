package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"tableside/api-gateway/internal/gateway"
	"tableside/config"
)

func main() {
	config.Execute(config.NewCommand("api-gateway", ":8080", "Single entry point for the restaurant front-end and APIs", run))
}

func run(ctx context.Context, cfg config.Settings, log *logrus.Entry) error {
	gw, err := gateway.NewGateway(gateway.Config{
		OrderSvcURL:  cfg.OrderSvcURL,
		ReportSvcURL: cfg.ReportSvcURL,
		FrontendDir:  cfg.FrontendDir,
	}, &http.Client{Timeout: 30 * time.Second}, log)
	if err != nil {
		return err
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	log.WithFields(logrus.Fields{
		"order_svc":  cfg.OrderSvcURL,
		"report_svc": cfg.ReportSvcURL,
	}).Info("routing api traffic")

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return config.Serve(ctx, srv, log)
}
