package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"tableside/agg-svc/internal/domain"
)

const readBackoff = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Log    *logrus.Entry
}

func NewConsumer(reader MessageReader, store StoreInterface, log *logrus.Entry) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Log:    log,
	}
}

// Start reads until ctx is cancelled. Bad messages and store failures are logged and
// skipped so one poison message cannot stall the topic.
func (c *Consumer) Start(ctx context.Context) error {
	c.Log.Info("aggregation consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.Log.WithError(err).Error("failed to read message")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(readBackoff):
			}
			continue
		}
		c.Handle(ctx, message)
	}
}

func (c *Consumer) Handle(ctx context.Context, message kafka.Message) {
	var ev domain.Event
	if err := json.Unmarshal(message.Value, &ev); err != nil {
		c.Log.WithError(err).WithField("offset", message.Offset).Warn("failed to decode message")
		return
	}
	if err := c.Process(ctx, ev); err != nil {
		c.Log.WithError(err).WithFields(logrus.Fields{
			"type":     ev.Type,
			"order_id": ev.OrderID,
		}).Error("failed to aggregate event")
	}
}

func (c *Consumer) Process(ctx context.Context, ev domain.Event) error {
	switch ev.Type {
	case domain.EventOrderPaid:
		recorded, err := c.Store.RecordSale(ctx, ev)
		if err != nil {
			return err
		}
		c.Log.WithFields(logrus.Fields{
			"order_id": ev.OrderID,
			"total":    ev.TotalAmount.String(),
			"recorded": recorded,
		}).Debug("sale aggregated")
	case domain.EventNewFeedback:
		if ev.Rating < 1 || ev.Rating > 5 {
			c.Log.WithField("rating", ev.Rating).Warn("ignoring feedback with out-of-range rating")
			return nil
		}
		return c.Store.RecordRating(ctx, ev)
	}
	return nil
}
