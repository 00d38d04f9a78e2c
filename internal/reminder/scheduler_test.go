package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	mu      sync.Mutex
	sent    []int64
	failFor map[int64]error
}

func (f *fakeNotifier) Notify(ctx context.Context, userID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[userID]; err != nil {
		return err
	}
	f.sent = append(f.sent, userID)
	return nil
}

func (f *fakeNotifier) delivered() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.sent...)
}

func TestTickDeliversDueAndMarksCompleted(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()

	r, err := svc.Create(ctx, 1, "due now", time.Now().Add(-time.Second))
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, "not yet", time.Now().Add(time.Hour))
	require.NoError(t, err)

	fn := &fakeNotifier{}
	s := &Scheduler{Svc: svc, Notifier: fn, Log: zerolog.Nop()}
	s.tick(ctx)

	assert.Equal(t, []int64{1}, fn.delivered())

	var got Reminder
	require.NoError(t, svc.DB.First(&got, r.ID).Error)
	assert.True(t, got.IsCompleted)

	// already delivered: the next tick has nothing to do
	s.tick(ctx)
	assert.Equal(t, []int64{1}, fn.delivered())
}

func TestTickFailureLeavesReminderDue(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()

	r, err := svc.Create(ctx, 1, "undeliverable", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	fn := &fakeNotifier{failFor: map[int64]error{1: errors.New("blocked by user")}}
	s := &Scheduler{Svc: svc, Notifier: fn, Log: zerolog.Nop()}
	s.tick(ctx)

	var got Reminder
	require.NoError(t, svc.DB.First(&got, r.ID).Error)
	assert.False(t, got.IsCompleted, "must stay due for the next tick")

	// transport recovers: next tick retries and succeeds
	fn.failFor = nil
	s.tick(ctx)

	require.NoError(t, svc.DB.First(&got, r.ID).Error)
	assert.True(t, got.IsCompleted)
}

func TestTickIsolatesPerItemFailures(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "fails", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	ok, err := svc.Create(ctx, 2, "succeeds", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	fn := &fakeNotifier{failFor: map[int64]error{1: errors.New("boom")}}
	s := &Scheduler{Svc: svc, Notifier: fn, Log: zerolog.Nop()}
	s.tick(ctx)

	assert.Equal(t, []int64{2}, fn.delivered(), "one failure must not block the rest")

	var got Reminder
	require.NoError(t, svc.DB.First(&got, ok.ID).Error)
	assert.True(t, got.IsCompleted)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	svc := &Service{DB: testDB(t)}

	s := &Scheduler{Svc: svc, Notifier: &fakeNotifier{}, Interval: time.Millisecond, Log: zerolog.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
