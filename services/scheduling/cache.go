package scheduling

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"slotbook/models"
	"slotbook/utils"
)

// AvailabilityCache keeps recent day reports in Redis so repeated
// availability queries skip the store. Mutations invalidate the touched day.
// A nil cache (or nil client) disables caching entirely; all methods are
// nil-safe so the service never has to branch.
type AvailabilityCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func availabilityKey(day string) string {
	return "availability:" + day
}

// Get returns the cached report for a local day key, if present. Cache
// failures are logged and treated as misses.
func (c *AvailabilityCache) Get(ctx context.Context, day string) ([]models.Slot, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	data, err := c.Client.Get(ctx, availabilityKey(day)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("availability cache read failed", zap.String("day", day), zap.Error(err))
		}
		return nil, false
	}
	var slots []models.Slot
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		utils.GetLogger().Warn("availability cache entry corrupt", zap.String("day", day), zap.Error(err))
		return nil, false
	}
	return slots, true
}

// Set stores a day report. Failures are logged and otherwise ignored.
func (c *AvailabilityCache) Set(ctx context.Context, day string, slots []models.Slot) {
	if c == nil || c.Client == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		utils.GetLogger().Warn("availability cache marshal failed", zap.String("day", day), zap.Error(err))
		return
	}
	if err := c.Client.Set(ctx, availabilityKey(day), data, c.TTL).Err(); err != nil {
		utils.GetLogger().Warn("availability cache write failed", zap.String("day", day), zap.Error(err))
	}
}

// Invalidate drops the report for a local day key after a mutation.
func (c *AvailabilityCache) Invalidate(ctx context.Context, day string) {
	if c == nil || c.Client == nil {
		return
	}
	if err := c.Client.Del(ctx, availabilityKey(day)).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed", zap.String("day", day), zap.Error(err))
	}
}
