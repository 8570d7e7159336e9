package service

import (
	"context"

	"tiffinbox/agg-svc/internal/domain"
	"tiffinbox/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, ev domain.Event) error
	RecordCancellation(ctx context.Context, ev domain.Event) error
	RecordDishRating(ctx context.Context, ev domain.Event) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	Process(ctx context.Context, ev domain.Event) error
}

var _ StoreInterface = (*storage.Store)(nil)
var _ ConsumerInterface = (*Consumer)(nil)
