package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleSource struct {
	mu        sync.Mutex
	schedules []Schedule
}

func (f *fakeScheduleSource) All(context.Context) ([]Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Schedule, len(f.schedules))
	copy(out, f.schedules)
	return out, nil
}

type fakeTokenSource struct {
	tokens map[int64][]string
}

func (f *fakeTokenSource) ListTokens(_ context.Context, userID int64) ([]string, error) {
	return f.tokens[userID], nil
}

type sentBatch struct {
	tokens []string
	sched  Schedule
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentBatch
}

func (f *fakeSender) Send(_ context.Context, tokens []string, s Schedule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentBatch{tokens: tokens, sched: s})
	return nil
}

func newTestWorker(at time.Time, schedules []Schedule, tokens map[int64][]string) (*Worker, *fakeSender, clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(at)
	sender := &fakeSender{}
	w := NewWorker(&fakeScheduleSource{schedules: schedules}, &fakeTokenSource{tokens: tokens}, sender, time.Minute, clock)
	return w, sender, clock
}

func TestWorker_DeliversDueSchedule(t *testing.T) {
	at := time.Date(2026, time.March, 1, 8, 0, 10, 0, time.UTC)
	w, sender, _ := newTestWorker(at,
		[]Schedule{{Key: 42, UserID: 1, Title: "Recordatorio de medicamento", Body: "Es hora de tomar Paracetamol - 500mg", Hour: 8, Minute: 0}},
		map[int64][]string{1: {"ExponentPushToken[abc]"}},
	)

	w.Deliver(context.Background())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"ExponentPushToken[abc]"}, sender.sent[0].tokens)
	assert.Equal(t, int64(42), sender.sent[0].sched.Key)
}

func TestWorker_SkipsOffMinuteSchedules(t *testing.T) {
	at := time.Date(2026, time.March, 1, 8, 1, 0, 0, time.UTC)
	w, sender, _ := newTestWorker(at,
		[]Schedule{{Key: 42, UserID: 1, Hour: 8, Minute: 0}},
		map[int64][]string{1: {"tok"}},
	)

	w.Deliver(context.Background())

	assert.Empty(t, sender.sent)
}

func TestWorker_FiresOncePerMinute(t *testing.T) {
	at := time.Date(2026, time.March, 1, 8, 0, 5, 0, time.UTC)
	w, sender, clock := newTestWorker(at,
		[]Schedule{{Key: 42, UserID: 1, Hour: 8, Minute: 0}},
		map[int64][]string{1: {"tok"}},
	)

	// Two deliveries inside the same minute fire once.
	w.Deliver(context.Background())
	clock.Advance(20 * time.Second)
	w.Deliver(context.Background())
	require.Len(t, sender.sent, 1)

	// The next day the same schedule fires again.
	clock.Advance(24 * time.Hour)
	w.Deliver(context.Background())
	assert.Len(t, sender.sent, 2)
}

func TestWorker_SkipsUsersWithoutDevices(t *testing.T) {
	at := time.Date(2026, time.March, 1, 20, 0, 0, 0, time.UTC)
	w, sender, _ := newTestWorker(at,
		[]Schedule{{Key: 7, UserID: 9, Hour: 20, Minute: 0}},
		map[int64][]string{},
	)

	w.Deliver(context.Background())

	assert.Empty(t, sender.sent)
}

func TestWorker_StartStop(t *testing.T) {
	at := time.Date(2026, time.March, 1, 7, 59, 30, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(at)
	sender := &fakeSender{}
	src := &fakeScheduleSource{schedules: []Schedule{{Key: 1, UserID: 1, Hour: 8, Minute: 0}}}
	w := NewWorker(src, &fakeTokenSource{tokens: map[int64][]string{1: {"tok"}}}, sender, time.Minute, clock)

	w.Start()
	// Let the loop reach its ticker before advancing the fake clock.
	clock.BlockUntil(1)
	clock.Advance(time.Minute)

	require.Eventually(t, func() bool {
		sender.mu.Lock()
		defer sender.mu.Unlock()
		return len(sender.sent) == 1
	}, time.Second, 5*time.Millisecond)

	w.Stop()
}
