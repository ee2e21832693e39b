package service

import (
	"context"

	"github.com/segmentio/kafka-go"

	"tableside/agg-svc/internal/domain"
	"tableside/agg-svc/internal/storage"
)

type StoreInterface interface {
	RecordSale(ctx context.Context, ev domain.Event) (bool, error)
	RecordRating(ctx context.Context, ev domain.Event) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	Process(ctx context.Context, ev domain.Event) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
