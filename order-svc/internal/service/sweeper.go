package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type Expirer interface {
	SweepExpired(ctx context.Context, olderThan time.Duration, now time.Time) (int, error)
}

// Sweeper auto-completes service requests nobody attended to within the timeout.
type Sweeper struct {
	cron    *cron.Cron
	expirer Expirer
	timeout time.Duration
	log     *logrus.Entry
}

func NewSweeper(expirer Expirer, timeout time.Duration, log *logrus.Entry) *Sweeper {
	return &Sweeper{
		cron:    cron.New(cron.WithSeconds()),
		expirer: expirer,
		timeout: timeout,
		log:     log,
	}
}

// Start schedules the sweep every 5 seconds. A zero timeout disables it.
func (s *Sweeper) Start(ctx context.Context) error {
	if s.timeout <= 0 {
		s.log.Info("service request sweeper disabled")
		return nil
	}
	if _, err := s.cron.AddFunc("*/5 * * * * *", func() { s.Run(ctx) }); err != nil {
		return err
	}
	s.cron.Start()
	s.log.WithField("timeout", s.timeout.String()).Info("service request sweeper started")
	return nil
}

func (s *Sweeper) Run(ctx context.Context) {
	n, err := s.expirer.SweepExpired(ctx, s.timeout, time.Now().UTC())
	if err != nil {
		s.log.WithError(err).Error("service request sweep failed")
		return
	}
	if n > 0 {
		s.log.WithField("completed", n).Info("auto-completed expired service requests")
	}
}

func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}
