package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"tableside/report-svc/internal/domain"
)

const (
	SourceAggregates = "redis"
	SourceHistory    = "postgres"

	popularItemsLimit = 10
)

// ReportService answers report queries from the Redis aggregates and falls back
// to Postgres when the aggregates are empty or unreachable. Either source may be nil.
type ReportService struct {
	Aggregates AggregateReader
	History    HistoryReader
	Log        *logrus.Entry
	Now        func() time.Time
}

func NewReportService(aggregates AggregateReader, history HistoryReader, log *logrus.Entry) *ReportService {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &ReportService{
		Aggregates: aggregates,
		History:    history,
		Log:        log,
		Now:        time.Now,
	}
}

func (s *ReportService) Report(ctx context.Context, period domain.Period) (*domain.Report, error) {
	period, err := domain.ParsePeriod(string(period))
	if err != nil {
		return nil, err
	}
	days, from, to := period.Range(s.Now())

	totals, source, err := s.totals(ctx, days, from, to)
	if err != nil {
		return nil, err
	}

	report := totals.Report(popularItemsLimit)
	report.Period = period
	report.From = days[0]
	report.To = days[len(days)-1]
	report.Source = source
	return report, nil
}

func (s *ReportService) totals(ctx context.Context, days []string, from, to time.Time) (*domain.Totals, string, error) {
	var aggregated *domain.Totals
	if s.Aggregates != nil {
		totals, err := s.Aggregates.SummarizeDays(ctx, days)
		switch {
		case err != nil:
			s.Log.WithError(err).Warn("sales aggregates unavailable")
		case !totals.Empty() || s.History == nil:
			return totals, SourceAggregates, nil
		default:
			aggregated = totals
		}
	}

	if s.History == nil {
		return nil, "", errors.New("no report source available")
	}
	totals, err := s.History.SummarizeRange(ctx, from, to)
	if err != nil {
		if aggregated != nil {
			s.Log.WithError(err).Warn("history query failed, serving empty aggregates")
			return aggregated, SourceAggregates, nil
		}
		return nil, "", err
	}
	return totals, SourceHistory, nil
}
