package notify

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/JorgegrDev/medic-action/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const schedulesKey = "reminder:schedules"

// Schedule is one recurring daily reminder, keyed by the medication id it
// belongs to. Hour and Minute are the UTC firing time.
type Schedule struct {
	Key    int64          `json:"key"`
	UserID int64          `json:"user_id"`
	Title  string         `json:"title"`
	Body   string         `json:"body"`
	Hour   int            `json:"hour"`
	Minute int            `json:"minute"`
	Data   map[string]any `json:"data,omitempty"`
}

// Dispatcher owns scheduling and cancellation of daily reminders. Schedule
// overwrites any existing schedule under the same key and Cancel of an
// unknown key is a no-op, so both are safe to repeat.
type Dispatcher interface {
	Schedule(ctx context.Context, s Schedule) error
	Cancel(ctx context.Context, key int64) error
	CancelAll(ctx context.Context) error
}

// RedisDispatcher keeps schedules in a single Redis hash, one field per
// medication id.
type RedisDispatcher struct {
	rdb *redis.Client
}

// NewRedisDispatcher returns a new RedisDispatcher.
func NewRedisDispatcher(rdb *redis.Client) *RedisDispatcher {
	return &RedisDispatcher{rdb: rdb}
}

func (d *RedisDispatcher) Schedule(ctx context.Context, s Schedule) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := d.rdb.HSet(ctx, schedulesKey, field(s.Key), b).Err(); err != nil {
		return err
	}
	metrics.RemindersScheduled.Inc()
	return nil
}

func (d *RedisDispatcher) Cancel(ctx context.Context, key int64) error {
	if err := d.rdb.HDel(ctx, schedulesKey, field(key)).Err(); err != nil {
		return err
	}
	metrics.RemindersCancelled.Inc()
	return nil
}

func (d *RedisDispatcher) CancelAll(ctx context.Context) error {
	return d.rdb.Del(ctx, schedulesKey).Err()
}

// All returns every stored schedule. Used by the delivery worker.
func (d *RedisDispatcher) All(ctx context.Context) ([]Schedule, error) {
	raw, err := d.rdb.HGetAll(ctx, schedulesKey).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Schedule, 0, len(raw))
	for _, v := range raw {
		var s Schedule
		if err := json.Unmarshal([]byte(v), &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func field(key int64) string {
	return strconv.FormatInt(key, 10)
}
