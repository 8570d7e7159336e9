package tests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"tiffinbox/agg-svc/internal/domain"
	"tiffinbox/agg-svc/internal/mocks"
	"tiffinbox/agg-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var quietLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestConsumer_Process(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		event          domain.Event
		setupMockStore func(*mocks.StoreInterface)
		expectedError  bool
	}{
		{
			name: "order_placed",
			event: domain.Event{
				Type: domain.EventOrderPlaced, OrderID: 7, RestaurantID: 10, Amount: 250,
				Lines: []domain.EventLine{{DishID: 1, Quantity: 2}}, Timestamp: ts,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
					return ev.OrderID == 7 && len(ev.Lines) == 1
				})).Return(nil).Once()
			},
		},
		{
			name: "cancelled_order",
			event: domain.Event{
				Type: domain.EventStatusChanged, OrderID: 7, RestaurantID: 10, Amount: 250,
				Status: domain.StatusCancelled, Timestamp: ts,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordCancellation", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "other_status_change_ignored",
			event: domain.Event{
				Type: domain.EventStatusChanged, OrderID: 7, RestaurantID: 10, Status: "preparing",
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
		{
			name: "dish_rated",
			event: domain.Event{
				Type: domain.EventDishRated, OrderID: 7, RestaurantID: 10, DishID: 1, Rating: 5,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordDishRating", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:           "unknown_type_ignored",
			event:          domain.Event{Type: "new_review"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
		{
			name: "store_error",
			event: domain.Event{
				Type: domain.EventOrderPlaced, OrderID: 8, RestaurantID: 10, Amount: 100,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", mock.Anything, mock.Anything).Return(errors.New("db connection failed")).Once()
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			tt.setupMockStore(mockStore)

			consumer := service.NewConsumer(nil, mockStore, quietLog)
			err := consumer.Process(context.Background(), tt.event)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type fakeReader struct {
	msgs      []kafka.Message
	committed []kafka.Message
	trail     *[]string
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(f.msgs) == 0 {
		f.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	m := f.msgs[0]
	f.msgs = f.msgs[1:]
	return m, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	f.committed = append(f.committed, msgs...)
	if f.trail != nil {
		for _, m := range msgs {
			*f.trail = append(*f.trail, fmt.Sprintf("commit %d", m.Offset))
		}
	}
	return nil
}

func TestConsumer_Start(t *testing.T) {
	placed, _ := json.Marshal(domain.Event{Type: domain.EventOrderPlaced, OrderID: 1, RestaurantID: 10, Amount: 50})
	flaky, _ := json.Marshal(domain.Event{Type: domain.EventOrderPlaced, OrderID: 2, RestaurantID: 10, Amount: 60})
	later, _ := json.Marshal(domain.Event{Type: domain.EventOrderPlaced, OrderID: 3, RestaurantID: 10, Amount: 70})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var trail []string
	reader := &fakeReader{
		msgs: []kafka.Message{
			{Offset: 1, Value: placed},
			{Offset: 2, Value: []byte("bad json")},
			{Offset: 3, Value: flaky},
			{Offset: 4, Value: later},
		},
		trail:  &trail,
		cancel: cancel,
	}
	record := func(args mock.Arguments) {
		trail = append(trail, fmt.Sprintf("record %d", args.Get(1).(domain.Event).OrderID))
	}

	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("RecordOrder", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool { return ev.OrderID == 1 })).
		Run(record).Return(nil).Once()
	mockStore.On("RecordOrder", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool { return ev.OrderID == 2 })).
		Run(record).Return(errors.New("redis down")).Once()
	mockStore.On("RecordOrder", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool { return ev.OrderID == 2 })).
		Run(record).Return(nil).Once()
	mockStore.On("RecordOrder", mock.Anything, mock.MatchedBy(func(ev domain.Event) bool { return ev.OrderID == 3 })).
		Run(record).Return(nil).Once()

	consumer := service.NewConsumer(reader, mockStore, quietLog)
	consumer.RetryBackoff = time.Millisecond
	err := consumer.Start(ctx)

	assert.NoError(t, err)
	// offset 3 is retried until it succeeds before anything after it is committed
	assert.Equal(t, []string{
		"record 1", "commit 1",
		"commit 2",
		"record 2", "record 2", "commit 3",
		"record 3", "commit 4",
	}, trail)
}

func TestConsumer_Start_StopsWhileRetrying(t *testing.T) {
	failing, _ := json.Marshal(domain.Event{Type: domain.EventOrderPlaced, OrderID: 2, RestaurantID: 10, Amount: 60})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		msgs:   []kafka.Message{{Offset: 7, Value: failing}},
		cancel: cancel,
	}

	attempts := 0
	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("RecordOrder", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			attempts++
			if attempts == 3 {
				cancel()
			}
		}).
		Return(errors.New("db connection failed"))

	consumer := service.NewConsumer(reader, mockStore, quietLog)
	consumer.RetryBackoff = time.Millisecond
	err := consumer.Start(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Empty(t, reader.committed)
}
