package main

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"tableside/config"
	httpapi "tableside/order-svc/internal/api/http"
	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/refresh"
	"tableside/order-svc/internal/service"
	"tableside/order-svc/internal/storage"
)

const feedbackMarkerTTL = 90 * 24 * time.Hour

func main() {
	config.Execute(config.NewCommand("order-svc", ":8081", "Order, table and service request API", run))
}

func run(ctx context.Context, cfg config.Settings, log *logrus.Entry) error {
	var store service.Store
	if cfg.DatabaseURL != "" {
		db := config.MustInitPostgres(cfg.DatabaseURL, log)
		defer db.Close()
		pg := storage.NewPostgresStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			return err
		}
		store = pg
		log.Info("using postgres store")
	} else {
		store = storage.NewMemoryStore()
		log.Warn("DATABASE_URL not set, using in-memory store")
	}

	var markers service.FeedbackCache = storage.NewMemoryMarkers()
	if cfg.RedisAddr != "" {
		rdb := config.MustInitRedis(cfg.RedisAddr, log)
		defer rdb.Close()
		markers = storage.NewRedisCache(rdb, feedbackMarkerTTL)
	}

	hub := refresh.NewHub()
	opts := []service.Option{service.WithNotifier(hub), service.WithLogger(log)}
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaTopic)
		defer writer.Close()
		opts = append(opts, service.WithPublisher(storage.NewKafkaPublisher(writer)))
		log.WithField("topic", cfg.KafkaTopic).Info("publishing events to kafka")
	}

	loyaltySvc := service.NewLoyaltyService(store)
	menuSvc := service.NewMenuService(store, opts...)
	tableSvc := service.NewTableService(store, service.TableQRGenerator{BaseURL: cfg.PublicBaseURL}, opts...)
	orderSvc := service.NewOrderService(store, loyaltySvc, opts...)
	requestSvc := service.NewRequestService(store, orderSvc, tableSvc, opts...)
	reservationSvc := service.NewReservationService(store, tableSvc, opts...)
	feedbackSvc := service.NewFeedbackService(store, markers, opts...)

	sweeper := service.NewSweeper(requestSvc, cfg.RequestTimeout, log)
	if err := sweeper.Start(ctx); err != nil {
		return err
	}
	defer sweeper.Stop()

	poller := refresh.NewPoller(map[string]refresh.FetchFunc{
		domain.EntityMenu: func(ctx context.Context) (any, error) { return menuSvc.List(ctx, "") },
		domain.EntityOrders: func(ctx context.Context) (any, error) {
			return orderSvc.List(ctx, service.OrderFilter{})
		},
		domain.EntityTables: func(ctx context.Context) (any, error) { return tableSvc.List(ctx) },
		domain.EntityServiceRequests: func(ctx context.Context) (any, error) {
			return requestSvc.List(ctx, domain.RequestPending)
		},
		domain.EntityBillingRequests: func(ctx context.Context) (any, error) {
			return requestSvc.ListBills(ctx, domain.RequestPending)
		},
		domain.EntityReservations: func(ctx context.Context) (any, error) { return reservationSvc.List(ctx) },
		domain.EntityFeedback:     func(ctx context.Context) (any, error) { return feedbackSvc.List(ctx) },
	}, cfg.RefreshInterval, hub, log)

	handler := &httpapi.Handler{
		Menu:         menuSvc,
		Orders:       orderSvc,
		Tables:       tableSvc,
		Requests:     requestSvc,
		Reservations: reservationSvc,
		Feedback:     feedbackSvc,
		Loyalty:      loyaltySvc,
		Poller:       poller,
		Limiter:      httpapi.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log),
		UploadDir:    cfg.UploadDir,
		Log:          log,
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, httpapi.NewMetrics("order-svc")),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return config.Serve(ctx, srv, log)
}
