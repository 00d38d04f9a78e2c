package bookmark

import (
	"context"
	"time"

	"gorm.io/gorm"

	"jot/internal/note"
)

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	Content string
	Kind    Kind
	FileID  string
}

// Create stores a bookmark. Unlike notes, empty content is allowed when
// an attachment handle is present (a bare photo has no caption).
func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (*Bookmark, error) {
	if in.Kind == "" {
		in.Kind = KindText
	}

	b := Bookmark{
		UserID:  userID,
		Content: in.Content,
		Kind:    in.Kind,
		FileID:  in.FileID,
		Tags:    note.JoinTags(note.ExtractTags(in.Content)),
		SavedAt: time.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Service) List(ctx context.Context, userID int64, limit int) ([]Bookmark, error) {
	var rows []Bookmark
	q := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes one bookmark, owner-scoped. Returns false when the row
// does not exist or belongs to someone else.
func (s *Service) Delete(ctx context.Context, id uint64, userID int64) (bool, error) {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Bookmark{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Clear removes all of the owner's bookmarks and reports how many went.
func (s *Service) Clear(ctx context.Context, userID int64) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&Bookmark{})
	return res.RowsAffected, res.Error
}

func (s *Service) Count(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&Bookmark{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
