package reminder

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var ErrEmptyText = errors.New("empty reminder text")

type Service struct {
	DB *gorm.DB
}

func (s *Service) Create(ctx context.Context, userID int64, text string, remindAt time.Time) (*Reminder, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	r := Reminder{
		UserID:    userID,
		Text:      text,
		RemindAt:  remindAt,
		CreatedAt: time.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ListActive returns the owner's undelivered reminders, soonest first.
func (s *Service) ListActive(ctx context.Context, userID int64) ([]Reminder, error) {
	var rows []Reminder
	if err := s.DB.WithContext(ctx).
		Where("user_id = ? AND is_completed = ?", userID, false).
		Order("remind_at asc, id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Due returns every reminder across all owners whose time has come:
// remind_at <= now and not yet delivered.
func (s *Service) Due(ctx context.Context, now time.Time) ([]Reminder, error) {
	var rows []Reminder
	if err := s.DB.WithContext(ctx).
		Where("is_completed = ? AND remind_at <= ?", false, now).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkDelivered flips the completion flag. Marking an already delivered
// reminder is a no-op, not an error.
func (s *Service) MarkDelivered(ctx context.Context, id uint64) error {
	return s.DB.WithContext(ctx).
		Model(&Reminder{}).
		Where("id = ?", id).
		Update("is_completed", true).Error
}

func (s *Service) Delete(ctx context.Context, id uint64, userID int64) (bool, error) {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Reminder{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Service) CountActive(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&Reminder{}).
		Where("user_id = ? AND is_completed = ?", userID, false).
		Count(&n).Error
	return n, err
}
