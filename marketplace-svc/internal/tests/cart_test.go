package tests

import (
	"context"
	"testing"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/mocks"
	"tiffinbox/marketplace-svc/internal/service"
	"tiffinbox/marketplace-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb, mr
}

func TestRedisCart(t *testing.T) {
	rdb, mr := newRedis(t)
	cart := storage.NewRedisCart(rdb, time.Hour)
	ctx := context.Background()

	require.NoError(t, cart.Add(ctx, 5, 1, 2))
	require.NoError(t, cart.Add(ctx, 5, 1, 1))
	require.NoError(t, cart.Add(ctx, 5, 3, 1))

	items, err := cart.Items(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 3, 3: 1}, items)
	assert.Equal(t, time.Hour, mr.TTL("cart:5"))

	require.NoError(t, cart.Set(ctx, 5, 3, 4))
	require.NoError(t, cart.Remove(ctx, 5, 1))
	items, err = cart.Items(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{3: 4}, items)

	require.NoError(t, cart.Clear(ctx, 5))
	assert.False(t, mr.Exists("cart:5"))
	items, err = cart.Items(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisStats(t *testing.T) {
	rdb, mr := newRedis(t)
	stats := storage.NewRedisStats(rdb)
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	mr.ZAdd("analytics:daily:2026-03-14:10", 5, "1")
	mr.ZAdd("analytics:daily:2026-03-14:10", 9, "2")
	mr.ZAdd("analytics:daily:2026-03-14:10", 1, "3")
	mr.HSet("analytics:revenue:2026-03-14", "10", "1250.5")

	top, err := stats.TopDishes(context.Background(), 10, day, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.DishMetric{{DishID: 2, Score: 9}, {DishID: 1, Score: 5}}, top)

	revenue, err := stats.Revenue(context.Background(), 10, day)
	require.NoError(t, err)
	assert.Equal(t, 1250.5, revenue)

	revenue, err = stats.Revenue(context.Background(), 11, day)
	require.NoError(t, err)
	assert.Zero(t, revenue)
}

func TestCartService_View_OmitsVanishedDishes(t *testing.T) {
	repo := mocks.NewRepository(t)
	store := mocks.NewCartStore(t)
	svc := service.NewCartService(repo, store)

	store.On("Items", mock.Anything, 5).Return(map[int]int{1: 2, 99: 1}, nil).Once()
	repo.On("GetDishesByIDs", mock.Anything, []int{1, 99}).Return(catalogDishes()[:1], nil).Once()

	cart, err := svc.View(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].DishID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 200.0, cart.Subtotal)
}

func TestCartService_Update(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		prepareMocks func(store *mocks.CartStore)
	}{
		{
			name:     "zero_removes",
			quantity: 0,
			prepareMocks: func(store *mocks.CartStore) {
				store.On("Remove", mock.Anything, 5, 1).Return(nil).Once()
			},
		},
		{
			name:     "negative_removes",
			quantity: -3,
			prepareMocks: func(store *mocks.CartStore) {
				store.On("Remove", mock.Anything, 5, 1).Return(nil).Once()
			},
		},
		{
			name:     "positive_sets",
			quantity: 4,
			prepareMocks: func(store *mocks.CartStore) {
				store.On("Set", mock.Anything, 5, 1, 4).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			store := mocks.NewCartStore(t)
			svc := service.NewCartService(repo, store)

			tt.prepareMocks(store)
			store.On("Items", mock.Anything, 5).Return(map[int]int{}, nil).Once()

			cart, err := svc.Update(context.Background(), 5, 1, tt.quantity)

			require.NoError(t, err)
			assert.Empty(t, cart.Items)
		})
	}
}

func TestCartService_Add_UnknownDish(t *testing.T) {
	repo := mocks.NewRepository(t)
	store := mocks.NewCartStore(t)
	svc := service.NewCartService(repo, store)

	repo.On("GetDish", mock.Anything, 42).Return(nil, service.ErrNotFound).Once()

	_, err := svc.Add(context.Background(), 5, 42, 1)

	assert.ErrorIs(t, err, service.ErrNotFound)
}
