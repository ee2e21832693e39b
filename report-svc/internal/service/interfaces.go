package service

import (
	"context"
	"time"

	"tableside/report-svc/internal/domain"
	"tableside/report-svc/internal/storage"
)

type AggregateReader interface {
	SummarizeDays(ctx context.Context, days []string) (*domain.Totals, error)
}

type HistoryReader interface {
	SummarizeRange(ctx context.Context, from, to time.Time) (*domain.Totals, error)
}

type ReportInterface interface {
	Report(ctx context.Context, period domain.Period) (*domain.Report, error)
}

var (
	_ ReportInterface = (*ReportService)(nil)
	_ AggregateReader = (*storage.RedisAggregates)(nil)
	_ HistoryReader   = (*storage.PostgresHistory)(nil)
)
