package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCart keeps each cart as a hash of dish id -> quantity.
type RedisCart struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCart(client *redis.Client, ttl time.Duration) *RedisCart {
	return &RedisCart{Client: client, TTL: ttl}
}

func (c *RedisCart) CartKey(userID int) string {
	return "cart:" + strconv.Itoa(userID)
}

func (c *RedisCart) Items(ctx context.Context, userID int) (map[int]int, error) {
	raw, err := c.Client.HGetAll(ctx, c.CartKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	items := make(map[int]int, len(raw))
	for field, value := range raw {
		dishID, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(value)
		if err != nil || qty <= 0 {
			continue
		}
		items[dishID] = qty
	}
	return items, nil
}

func (c *RedisCart) touch(ctx context.Context, pipe redis.Pipeliner, key string) {
	if c.TTL > 0 {
		pipe.Expire(ctx, key, c.TTL)
	}
}

func (c *RedisCart) Add(ctx context.Context, userID, dishID, quantity int) error {
	key := c.CartKey(userID)
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, strconv.Itoa(dishID), int64(quantity))
		c.touch(ctx, pipe, key)
		return nil
	})
	return err
}

func (c *RedisCart) Set(ctx context.Context, userID, dishID, quantity int) error {
	key := c.CartKey(userID)
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, strconv.Itoa(dishID), quantity)
		c.touch(ctx, pipe, key)
		return nil
	})
	return err
}

func (c *RedisCart) Remove(ctx context.Context, userID, dishID int) error {
	return c.Client.HDel(ctx, c.CartKey(userID), strconv.Itoa(dishID)).Err()
}

func (c *RedisCart) Clear(ctx context.Context, userID int) error {
	return c.Client.Del(ctx, c.CartKey(userID)).Err()
}

// Rollup keys shared with agg-svc.
func PopularityKey(restaurantID int, day time.Time) string {
	return fmt.Sprintf("analytics:daily:%s:%d", day.Format("2006-01-02"), restaurantID)
}

func RevenueKey(day time.Time) string {
	return "analytics:revenue:" + day.Format("2006-01-02")
}

// RedisStats reads the rollups agg-svc writes.
type RedisStats struct {
	Client *redis.Client
}

func NewRedisStats(client *redis.Client) *RedisStats {
	return &RedisStats{Client: client}
}

func (s *RedisStats) TopDishes(ctx context.Context, restaurantID int, day time.Time, limit int) ([]domain.DishMetric, error) {
	entries, err := s.Client.ZRevRangeWithScores(ctx, PopularityKey(restaurantID, day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	metrics := make([]domain.DishMetric, 0, len(entries))
	for _, z := range entries {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		dishID, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		metrics = append(metrics, domain.DishMetric{DishID: dishID, Score: z.Score})
	}
	return metrics, nil
}

func (s *RedisStats) Revenue(ctx context.Context, restaurantID int, day time.Time) (float64, error) {
	v, err := s.Client.HGet(ctx, RevenueKey(day), strconv.Itoa(restaurantID)).Float64()
	if err == redis.Nil {
		return 0, nil
	}
	return v, err
}
