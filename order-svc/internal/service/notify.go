package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"tableside/order-svc/internal/domain"
)

// changes fans mutations out to the refresh hub and the event stream. Both are optional.
type changes struct {
	notifier  Notifier
	publisher EventPublisher
	log       *logrus.Entry
}

func (c changes) touched(entities ...string) {
	if c.notifier == nil {
		return
	}
	for _, e := range entities {
		c.notifier.Publish(e)
	}
}

func (c changes) emit(ctx context.Context, event domain.Event) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Publish(ctx, event); err != nil && c.log != nil {
		c.log.WithError(err).WithField("event", event.Type).Warn("failed to publish event")
	}
}

// warn logs a failure that the operation tolerates.
func (c changes) warn(err error, msg string, fields logrus.Fields) {
	if c.log == nil {
		return
	}
	c.log.WithError(err).WithFields(fields).Warn(msg)
}

type Option func(*changes)

func WithNotifier(n Notifier) Option {
	return func(c *changes) { c.notifier = n }
}

func WithPublisher(p EventPublisher) Option {
	return func(c *changes) { c.publisher = p }
}

func WithLogger(log *logrus.Entry) Option {
	return func(c *changes) { c.log = log }
}

func newChanges(opts []Option) changes {
	var c changes
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
