package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"tiffinbox/agg-svc/internal/domain"
)

type Consumer struct {
	Reader       MessageReader
	Store        StoreInterface
	Log          *slog.Logger
	RetryBackoff time.Duration
	MaxBackoff   time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface, log *slog.Logger) *Consumer {
	if log == nil {
		log = slog.Default()
	}
	return &Consumer{
		Reader:       reader,
		Store:        store,
		Log:          log,
		RetryBackoff: 500 * time.Millisecond,
		MaxBackoff:   30 * time.Second,
	}
}

// Start reads until ctx is cancelled. A message that fails to roll up is
// retried in place, so no later offset is committed past it. Undecodable
// messages are committed and skipped.
func (c *Consumer) Start(ctx context.Context) error {
	c.Log.Info("Starting aggregation consumer", "action", "consumer_start")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			c.Log.Error("Error reading message", "action", "fetch_failed", "error", err)
			continue
		}

		var ev domain.Event
		if err := json.Unmarshal(message.Value, &ev); err != nil {
			c.Log.Warn("Skipping malformed message", "action", "decode_failed",
				"offset", message.Offset, "error", err)
		} else if err := c.processWithRetry(ctx, ev, message.Offset); err != nil {
			// cancelled mid-retry; the message is redelivered on restart
			return nil
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			c.Log.Error("Error committing offset", "action", "commit_failed", "offset", message.Offset, "error", err)
		}
	}
}

func (c *Consumer) processWithRetry(ctx context.Context, ev domain.Event, offset int64) error {
	backoff := c.RetryBackoff
	for attempt := 1; ; attempt++ {
		err := c.Process(ctx, ev)
		if err == nil {
			return nil
		}
		c.Log.Error("Error processing event", "action", "process_failed",
			"type", ev.Type, "order_id", ev.OrderID, "offset", offset,
			"attempt", attempt, "retry_in", backoff.String(), "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
		if c.MaxBackoff > 0 && backoff > c.MaxBackoff {
			backoff = c.MaxBackoff
		}
	}
}

func (c *Consumer) Process(ctx context.Context, ev domain.Event) error {
	switch ev.Type {
	case domain.EventOrderPlaced:
		if err := c.Store.RecordOrder(ctx, ev); err != nil {
			return err
		}
		c.Log.Debug("Order rolled up", "action", "order_recorded",
			"order_id", ev.OrderID, "restaurant_id", ev.RestaurantID, "amount", ev.Amount)
	case domain.EventStatusChanged:
		if ev.Status != domain.StatusCancelled {
			return nil
		}
		if err := c.Store.RecordCancellation(ctx, ev); err != nil {
			return err
		}
		c.Log.Debug("Cancellation rolled up", "action", "cancellation_recorded", "order_id", ev.OrderID)
	case domain.EventDishRated:
		if err := c.Store.RecordDishRating(ctx, ev); err != nil {
			return err
		}
		c.Log.Debug("Dish rating cached", "action", "rating_recorded",
			"dish_id", ev.DishID, "restaurant_id", ev.RestaurantID, "rating", ev.Rating)
	default:
		c.Log.Debug("Ignoring event", "type", ev.Type)
	}
	return nil
}
