package user

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"jot/internal/bookmark"
	"jot/internal/note"
	"jot/internal/reminder"
)

type Service struct {
	DB *gorm.DB
}

// Upsert creates the user on first contact and refreshes the profile and
// last-seen timestamp on every subsequent one.
func (s *Service) Upsert(ctx context.Context, id int64, p Profile) error {
	now := time.Now()

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u User
		err := tx.Where("id = ?", id).First(&u).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			u = User{
				ID:           id,
				Username:     p.Username,
				FirstName:    p.FirstName,
				LastName:     p.LastName,
				LanguageCode: p.LanguageCode,
				JoinedAt:     now,
				LastSeenAt:   now,
			}
			if u.LanguageCode == "" {
				u.LanguageCode = "en"
			}
			return tx.Create(&u).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]any{
			"username":     p.Username,
			"first_name":   p.FirstName,
			"last_name":    p.LastName,
			"last_seen_at": now,
		}
		if p.LanguageCode != "" {
			updates["language_code"] = p.LanguageCode
		}
		return tx.Model(&User{}).Where("id = ?", id).Updates(updates).Error
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	var u User
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Stats counts the user's stored items. Reminders count only the active
// (not yet delivered) ones.
func (s *Service) Stats(ctx context.Context, id int64) (Stats, error) {
	var st Stats
	db := s.DB.WithContext(ctx)

	if err := db.Model(&note.Note{}).Where("user_id = ?", id).Count(&st.Notes).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Model(&bookmark.Bookmark{}).Where("user_id = ?", id).Count(&st.Bookmarks).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Model(&reminder.Reminder{}).
		Where("user_id = ? AND is_completed = ?", id, false).
		Count(&st.ActiveReminders).Error; err != nil {
		return Stats{}, err
	}

	st.Total = st.Notes + st.Bookmarks + st.ActiveReminders
	return st, nil
}
