package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"cooksync/entity"
)

const mealListKey = "meals:list"

type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{Client: client, TTL: ttl}
}

// LikeMarkerKey records that an identity already liked a meal.
func (c *Cache) LikeMarkerKey(mealID uint, email string) string {
	return "like:" + strconv.FormatUint(uint64(mealID), 10) + ":" + email
}

func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *Cache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", 0).Err()
}

// GetMealList returns the cached unfiltered meal list, if present.
func (c *Cache) GetMealList(ctx context.Context) ([]entity.Meal, bool) {
	raw, err := c.Client.Get(ctx, mealListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var meals []entity.Meal
	if err := json.Unmarshal(raw, &meals); err != nil {
		return nil, false
	}
	return meals, true
}

func (c *Cache) SetMealList(ctx context.Context, meals []entity.Meal) error {
	raw, err := json.Marshal(meals)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, mealListKey, raw, c.TTL).Err()
}

// InvalidateMealList drops the cached list after any meal mutation.
func (c *Cache) InvalidateMealList(ctx context.Context) error {
	return c.Client.Del(ctx, mealListKey).Err()
}
