package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// shiftListTTL bounds staleness if an invalidation is ever missed.
const shiftListTTL = 10 * time.Minute

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// ShiftListKey builds the cache key for one shift-list query. Every
// distinct (organization, week, worksite) filter caches separately.
func ShiftListKey(orgID uint, weekStart, weekEnd string, worksiteID uint) string {
	return fmt.Sprintf("shifts:%d:%s:%s:%d", orgID, weekStart, weekEnd, worksiteID)
}

// GetShiftList returns the cached JSON payload for a key, or "" on miss.
func GetShiftList(key string) string {
	if Client == nil {
		return ""
	}
	val, err := Client.Get(Ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetShiftList caches a shift-list JSON payload.
func SetShiftList(key, payload string) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, key, payload, shiftListTTL)
}

// InvalidateShiftLists drops every cached shift-list for an organization.
// Called after each shift mutation so the next list read refetches from
// the database.
func InvalidateShiftLists(orgID uint) {
	if Client == nil {
		return
	}
	pattern := fmt.Sprintf("shifts:%d:*", orgID)
	iter := Client.Scan(Ctx, 0, pattern, 0).Iterator()
	for iter.Next(Ctx) {
		Client.Del(Ctx, iter.Val())
	}
}
