package notify

import (
	"context"
	"sync"
	"time"

	"github.com/JorgegrDev/medic-action/internal/logging"

	"github.com/jonboulle/clockwork"
)

// ScheduleSource exposes the stored schedules to the worker.
type ScheduleSource interface {
	All(ctx context.Context) ([]Schedule, error)
}

// TokenSource resolves a user's registered push tokens.
// Satisfied by repo.DeviceRepo.
type TokenSource interface {
	ListTokens(ctx context.Context, userID int64) ([]string, error)
}

// Worker delivers due reminders. It ticks on a fixed interval (once a minute
// by default), collects schedules whose hour and minute match the current UTC
// time and pushes them to the owner's devices. A schedule fires at most once
// per calendar minute even when the tick is shorter than a minute.
type Worker struct {
	store  ScheduleSource
	tokens TokenSource
	sender Sender
	clock  clockwork.Clock
	tick   time.Duration

	mu    sync.Mutex
	fired map[int64]time.Time

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewWorker returns a delivery worker. A nil clock means the real clock.
func NewWorker(store ScheduleSource, tokens TokenSource, sender Sender, tick time.Duration, clock clockwork.Clock) *Worker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if tick <= 0 {
		tick = time.Minute
	}
	return &Worker{
		store:  store,
		tokens: tokens,
		sender: sender,
		clock:  clock,
		tick:   tick,
		fired:  make(map[int64]time.Time),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start runs the delivery loop until Stop is called.
func (w *Worker) Start() {
	go w.run()
}

// Stop terminates the loop and waits for it to finish.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	<-w.done
}

func (w *Worker) run() {
	defer close(w.done)
	ticker := w.clock.NewTicker(w.tick)
	defer ticker.Stop()
	for {
		select {
		case <-w.stop:
			return
		case <-ticker.Chan():
			w.Deliver(context.Background())
		}
	}
}

// Deliver pushes every schedule due at the current minute. Exported so tests
// and the loop share one code path.
func (w *Worker) Deliver(ctx context.Context) {
	now := w.clock.Now().UTC()
	schedules, err := w.store.All(ctx)
	if err != nil {
		logging.Logger.Error("load reminder schedules", "err", err)
		return
	}
	minute := now.Truncate(time.Minute)
	for _, s := range schedules {
		if s.Hour != now.Hour() || s.Minute != now.Minute() {
			continue
		}
		if !w.markFired(s.Key, minute) {
			continue
		}
		tokens, err := w.tokens.ListTokens(ctx, s.UserID)
		if err != nil {
			logging.Logger.Error("list push tokens", "err", err, "user_id", s.UserID)
			continue
		}
		if len(tokens) == 0 {
			continue
		}
		if err := w.sender.Send(ctx, tokens, s); err != nil {
			logging.Logger.Error("send reminder", "err", err, "medication_id", s.Key)
		}
	}
	w.pruneFired(minute)
}

// markFired records that key fired at minute. Returns false if it already did.
func (w *Worker) markFired(key int64, minute time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if last, ok := w.fired[key]; ok && last.Equal(minute) {
		return false
	}
	w.fired[key] = minute
	return true
}

func (w *Worker) pruneFired(minute time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for k, last := range w.fired {
		if minute.Sub(last) > time.Hour {
			delete(w.fired, k)
		}
	}
}
