package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Notifier is the outbound side of the chat transport, as much of it as
// the scheduler needs.
type Notifier interface {
	Notify(ctx context.Context, userID int64, text string) error
}

// Scheduler polls for due reminders on a fixed interval and pushes them
// through the Notifier. Delivery is at-least-once: the completion flag is
// set only after a successful send, so a failed send leaves the reminder
// due and it is retried on the next tick.
type Scheduler struct {
	Svc      *Service
	Notifier Notifier
	Interval time.Duration
	Log      zerolog.Logger
}

func (s *Scheduler) Run(ctx context.Context) {
	interval := s.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.Log.Info().Dur("interval", interval).Msg("reminder scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.Log.Info().Msg("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick processes one polling round. Nothing raised inside a tick may kill
// the loop: query errors are logged and the tick is abandoned, per-item
// delivery errors are logged and the remaining items still run.
func (s *Scheduler) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.Log.Error().Interface("panic", r).Msg("reminder tick panicked")
		}
	}()

	due, err := s.Svc.Due(ctx, time.Now())
	if err != nil {
		s.Log.Error().Err(err).Msg("due reminder query failed")
		return
	}
	if len(due) == 0 {
		return
	}

	delivered := 0
	for i := range due {
		if err := s.deliver(ctx, &due[i]); err != nil {
			s.Log.Warn().Err(err).
				Uint64("reminder_id", due[i].ID).
				Int64("user_id", due[i].UserID).
				Msg("reminder delivery failed, retrying next tick")
			continue
		}
		delivered++
	}

	s.Log.Info().Int("due", len(due)).Int("delivered", delivered).Msg("reminder tick done")
}

func (s *Scheduler) deliver(ctx context.Context, r *Reminder) error {
	if err := s.Notifier.Notify(ctx, r.UserID, "⏰ Reminder: "+r.Text); err != nil {
		return err
	}
	if err := s.Svc.MarkDelivered(ctx, r.ID); err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	return nil
}
