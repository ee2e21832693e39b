package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"tableside/config"
	httpapi "tableside/report-svc/internal/api/http"
	"tableside/report-svc/internal/service"
	"tableside/report-svc/internal/storage"
)

func main() {
	config.Execute(config.NewCommand("report-svc", ":8083", "Sales reports from the aggregated order stream", run))
}

func run(ctx context.Context, cfg config.Settings, log *logrus.Entry) error {
	if cfg.RedisAddr == "" && cfg.DatabaseURL == "" {
		return errors.New("report-svc needs REDIS_ADDR, DATABASE_URL or both")
	}

	svc := service.NewReportService(nil, nil, log)
	if cfg.RedisAddr != "" {
		rdb := config.MustInitRedis(cfg.RedisAddr, log)
		defer rdb.Close()
		svc.Aggregates = storage.NewRedisAggregates(rdb)
	}
	if cfg.DatabaseURL != "" {
		db := config.MustInitPostgres(cfg.DatabaseURL, log)
		defer db.Close()
		svc.History = storage.NewPostgresHistory(db)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(httpapi.NewHandler(svc, log)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return config.Serve(ctx, srv, log)
}
