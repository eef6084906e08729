package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/JorgegrDev/medic-action/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyMedList = "med:list:"

// MedicationCache caches per-user medication list results in Redis, one key
// per (user, filter) pair.
type MedicationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewMedicationCache returns a new MedicationCache.
func NewMedicationCache(rdb *redis.Client, ttl time.Duration) *MedicationCache {
	return &MedicationCache{rdb: rdb, ttl: ttl}
}

func listKey(userID int64, filter dom.MedicationFilter) string {
	return keyMedList + strconv.FormatInt(userID, 10) + ":" + string(filter)
}

// GetList returns the cached list for a user and filter, or nil on miss. An
// empty cached list is a hit and comes back as a non-nil empty slice.
func (c *MedicationCache) GetList(ctx context.Context, userID int64, filter dom.MedicationFilter) ([]dom.Medication, error) {
	b, err := c.rdb.Get(ctx, listKey(userID, filter)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeList(b)
}

// SetList stores a list result in cache.
func (c *MedicationCache) SetList(ctx context.Context, userID int64, filter dom.MedicationFilter, list []dom.Medication) error {
	b, err := encodeList(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(userID, filter), b, c.ttl).Err()
}

// encodeList marshals a list result. A nil list (no rows) is stored as an
// empty array so it still reads back as a hit.
func encodeList(list []dom.Medication) ([]byte, error) {
	if list == nil {
		list = []dom.Medication{}
	}
	return json.Marshal(list)
}

func decodeList(b []byte) ([]dom.Medication, error) {
	list := []dom.Medication{}
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// InvalidateAll removes every cached list of a user (cache invalidation on write).
func (c *MedicationCache) InvalidateAll(ctx context.Context, userID int64) error {
	keys := []string{
		listKey(userID, dom.FilterActive),
		listKey(userID, dom.FilterExpired),
		listKey(userID, dom.FilterAll),
	}
	return c.rdb.Del(ctx, keys...).Err()
}
