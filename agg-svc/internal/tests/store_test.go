package tests

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"tiffinbox/agg-svc/internal/domain"
	"tiffinbox/agg-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*storage.Store, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return storage.NewStore(db, rdb), sqlMock, mr
}

func hashFloat(t *testing.T, mr *miniredis.Miniredis, key, field string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(mr.HGet(key, field), 64)
	require.NoError(t, err)
	return v
}

var (
	markProcessedSQL = regexp.QuoteMeta("INSERT INTO processed_events (event_key)")
	orderSalesSQL    = regexp.QuoteMeta("INSERT INTO daily_sales (day, restaurant_id, orders, revenue)")
	cancelSalesSQL   = regexp.QuoteMeta("INSERT INTO daily_sales (day, restaurant_id, cancelled, revenue)")
)

func placedEvent(day time.Time) domain.Event {
	return domain.Event{
		Type:         domain.EventOrderPlaced,
		OrderID:      7,
		RestaurantID: 10,
		Amount:       250,
		Lines:        []domain.EventLine{{DishID: 1, Quantity: 2}, {DishID: 2, Quantity: 1}},
		OrderedAt:    day,
		Timestamp:    day,
	}
}

func TestStore_RecordOrder(t *testing.T) {
	store, sqlMock, mr := newStore(t)
	day := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(markProcessedSQL).WithArgs("order_placed:7:").WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(orderSalesSQL).WithArgs("2024-05-01", 10, 250.0).WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	err := store.RecordOrder(context.Background(), placedEvent(day))
	require.NoError(t, err)

	key := storage.PopularityKey(10, day)
	assert.Equal(t, "analytics:daily:2024-05-01:10", key)

	score, err := mr.ZScore(key, "1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)
	score, err = mr.ZScore(key, "2")
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	assert.Equal(t, 250.0, hashFloat(t, mr, storage.RevenueKey(day), "10"))
	assert.True(t, mr.TTL(key) > 0)
	assert.True(t, mr.TTL(storage.RevenueKey(day)) > 0)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestStore_RecordOrder_RedeliveredAfterPostgresFailure(t *testing.T) {
	store, sqlMock, mr := newStore(t)
	day := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	ev := placedEvent(day)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(markProcessedSQL).WithArgs("order_placed:7:").WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(orderSalesSQL).WillReturnError(errors.New("connection reset"))
	sqlMock.ExpectRollback()

	err := store.RecordOrder(context.Background(), ev)
	require.Error(t, err)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(markProcessedSQL).WithArgs("order_placed:7:").WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(orderSalesSQL).WithArgs("2024-05-01", 10, 250.0).WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	err = store.RecordOrder(context.Background(), ev)
	require.NoError(t, err)

	score, err := mr.ZScore(storage.PopularityKey(10, day), "1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)
	assert.Equal(t, 250.0, hashFloat(t, mr, storage.RevenueKey(day), "10"))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestStore_RecordOrder_AlreadyApplied(t *testing.T) {
	store, sqlMock, mr := newStore(t)
	day := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	ev := placedEvent(day)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(markProcessedSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(orderSalesSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()
	require.NoError(t, store.RecordOrder(context.Background(), ev))

	// second delivery: the marker row already exists so daily_sales is left alone
	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(markProcessedSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectRollback()
	require.NoError(t, store.RecordOrder(context.Background(), ev))

	score, err := mr.ZScore(storage.PopularityKey(10, day), "1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)
	assert.Equal(t, 250.0, hashFloat(t, mr, storage.RevenueKey(day), "10"))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestStore_RecordCancellation(t *testing.T) {
	store, sqlMock, mr := newStore(t)
	placedOn := time.Date(2024, 5, 1, 23, 50, 0, 0, time.UTC)
	cancelledOn := time.Date(2024, 5, 2, 0, 20, 0, 0, time.UTC)
	mr.HSet(storage.RevenueKey(placedOn), "10", "400")

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec(markProcessedSQL).WithArgs("order_status_changed:7:cancelled").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(cancelSalesSQL).WithArgs("2024-05-01", 10, -150.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	err := store.RecordCancellation(context.Background(), domain.Event{
		Type: domain.EventStatusChanged, OrderID: 7, RestaurantID: 10, Amount: 150,
		Status: domain.StatusCancelled, OrderedAt: placedOn, Timestamp: cancelledOn,
	})
	require.NoError(t, err)

	assert.Equal(t, 250.0, hashFloat(t, mr, storage.RevenueKey(placedOn), "10"))
	assert.True(t, mr.TTL(storage.RevenueKey(placedOn)) > 0)
	assert.False(t, mr.Exists(storage.RevenueKey(cancelledOn)))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestStore_RecordDishRating(t *testing.T) {
	store, sqlMock, mr := newStore(t)

	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT rating, num_reviews")).
		WithArgs(3, 10).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "num_reviews"}).AddRow(4.5, 2))

	err := store.RecordDishRating(context.Background(), domain.Event{
		Type: domain.EventDishRated, RestaurantID: 10, DishID: 3, Rating: 5,
	})
	require.NoError(t, err)

	key := storage.DishKey(10, 3)
	assert.Equal(t, "4.5", mr.HGet(key, "avg_rating"))
	assert.Equal(t, "2", mr.HGet(key, "review_count"))

	score, err := mr.ZScore(storage.AllTimeKey(10), "3")
	require.NoError(t, err)
	assert.Equal(t, 4.5, score)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestStore_RecordDishRating_UnknownDish(t *testing.T) {
	store, sqlMock, mr := newStore(t)

	sqlMock.ExpectQuery(regexp.QuoteMeta("SELECT rating, num_reviews")).
		WithArgs(99, 10).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "num_reviews"}))

	err := store.RecordDishRating(context.Background(), domain.Event{
		Type: domain.EventDishRated, RestaurantID: 10, DishID: 99, Rating: 4,
	})
	assert.Error(t, err)
	assert.False(t, mr.Exists(storage.DishKey(10, 99)))
}
