package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"tiffinbox/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	dailyTTL     = 7 * 24 * time.Hour
	dishCacheTTL = 24 * time.Hour
)

// rollupScript applies an event's Redis increments at most once. KEYS are the
// applied marker, the popularity zset and the revenue hash. ARGV is the TTL in
// seconds, the restaurant id, the revenue delta, then dish id/quantity pairs.
var rollupScript = redis.NewScript(`
if not redis.call('SET', KEYS[1], '1', 'NX', 'EX', ARGV[1]) then
	return 0
end
redis.call('HINCRBYFLOAT', KEYS[3], ARGV[2], ARGV[3])
redis.call('EXPIRE', KEYS[3], ARGV[1])
if #ARGV > 3 then
	for i = 4, #ARGV, 2 do
		redis.call('ZINCRBY', KEYS[2], ARGV[i + 1], ARGV[i])
	end
	redis.call('EXPIRE', KEYS[2], ARGV[1])
end
return 1
`)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
	}
}

func PopularityKey(restaurantID int, day time.Time) string {
	return fmt.Sprintf("analytics:daily:%s:%d", day.Format("2006-01-02"), restaurantID)
}

func RevenueKey(day time.Time) string {
	return "analytics:revenue:" + day.Format("2006-01-02")
}

func AllTimeKey(restaurantID int) string {
	return fmt.Sprintf("analytics:alltime:%d", restaurantID)
}

func DishKey(restaurantID, dishID int) string {
	return fmt.Sprintf("dish:%d:%d", restaurantID, dishID)
}

func AppliedKey(ev domain.Event) string {
	return "analytics:applied:" + ev.Key()
}

func (s *Store) applyRedis(ctx context.Context, ev domain.Event, revenue float64) (bool, error) {
	day := ev.OrderDay()
	args := []interface{}{
		int(dailyTTL / time.Second),
		strconv.Itoa(ev.RestaurantID),
		strconv.FormatFloat(revenue, 'f', -1, 64),
	}
	for _, line := range ev.Lines {
		args = append(args, strconv.Itoa(line.DishID), line.Quantity)
	}

	applied, err := rollupScript.Run(ctx, s.rdb,
		[]string{AppliedKey(ev), PopularityKey(ev.RestaurantID, day), RevenueKey(day)},
		args...,
	).Int()
	if err != nil {
		return false, err
	}
	return applied == 1, nil
}

// applyPostgres runs query at most once per event key.
func (s *Store) applyPostgres(ctx context.Context, ev domain.Event, query string, args ...interface{}) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO processed_events (event_key)
		VALUES ($1)
		ON CONFLICT (event_key) DO NOTHING
	`, ev.Key())
	if err != nil {
		return fmt.Errorf("mark event processed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return tx.Commit()
}

// RecordOrder bumps dish popularity by quantity sold, adds the order total to
// the day's revenue and upserts the daily_sales row. Redelivered events are
// not counted twice.
func (s *Store) RecordOrder(ctx context.Context, ev domain.Event) error {
	if _, err := s.applyRedis(ctx, ev, ev.Amount); err != nil {
		return fmt.Errorf("update redis rollups: %w", err)
	}

	return s.applyPostgres(ctx, ev, `
		INSERT INTO daily_sales (day, restaurant_id, orders, revenue)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (day, restaurant_id)
		DO UPDATE SET orders = daily_sales.orders + 1, revenue = daily_sales.revenue + EXCLUDED.revenue
	`, ev.OrderDay().Format("2006-01-02"), ev.RestaurantID, ev.Amount)
}

// RecordCancellation takes a cancelled order's total back out of the day the
// order was placed on.
func (s *Store) RecordCancellation(ctx context.Context, ev domain.Event) error {
	cancelled := ev
	cancelled.Lines = nil
	if _, err := s.applyRedis(ctx, cancelled, -ev.Amount); err != nil {
		return fmt.Errorf("update redis revenue: %w", err)
	}

	return s.applyPostgres(ctx, ev, `
		INSERT INTO daily_sales (day, restaurant_id, cancelled, revenue)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (day, restaurant_id)
		DO UPDATE SET cancelled = daily_sales.cancelled + 1, revenue = daily_sales.revenue + EXCLUDED.revenue
	`, ev.OrderDay().Format("2006-01-02"), ev.RestaurantID, -ev.Amount)
}

// RecordDishRating caches the dish's current aggregate and ranks it on the
// restaurant's all-time leaderboard.
func (s *Store) RecordDishRating(ctx context.Context, ev domain.Event) error {
	var (
		rating     float64
		numReviews int
	)
	if err := s.db.QueryRowContext(ctx, `
		SELECT rating, num_reviews
		FROM dishes
		WHERE id = $1 AND restaurant_id = $2
	`, ev.DishID, ev.RestaurantID).Scan(&rating, &numReviews); err != nil {
		return err
	}

	key := DishKey(ev.RestaurantID, ev.DishID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"avg_rating":   rating,
			"review_count": numReviews,
			"last_updated": time.Now().Unix(),
		})
		pipe.Expire(ctx, key, dishCacheTTL)
		pipe.ZAdd(ctx, AllTimeKey(ev.RestaurantID), redis.Z{
			Score:  rating,
			Member: strconv.Itoa(ev.DishID),
		})
		return nil
	})
	return err
}
