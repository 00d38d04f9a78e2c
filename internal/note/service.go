package note

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var ErrEmptyContent = errors.New("empty content")
var ErrEmptyQuery = errors.New("empty query")

type Service struct {
	DB *gorm.DB
}

// Create validates and stores a note. Content is kept verbatim (hashtags
// included); the extracted tags go into the denormalized tag column.
func (s *Service) Create(ctx context.Context, userID int64, content string) (*Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	n := Note{
		UserID:    userID,
		Content:   content,
		Tags:      JoinTags(ExtractTags(content)),
		CreatedAt: time.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// ListRecent returns the owner's notes, newest first. Ties on the
// creation timestamp fall back to insertion order.
func (s *Service) ListRecent(ctx context.Context, userID int64, limit int) ([]Note, error) {
	var rows []Note
	q := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchByTag matches whole tags only. The LIKE clause narrows the
// candidate set; the exact comma-split comparison happens here because a
// plain substring match would let "work" hit a note tagged "workshop".
func (s *Service) SearchByTag(ctx context.Context, userID int64, tag string) ([]Note, error) {
	tag = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(tag, "#")))
	if tag == "" {
		return nil, ErrEmptyQuery
	}

	var candidates []Note
	if err := s.DB.WithContext(ctx).
		Where("user_id = ? AND tags LIKE ?", userID, "%"+tag+"%").
		Order("created_at desc, id desc").
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	out := make([]Note, 0, len(candidates))
	for _, n := range candidates {
		if n.HasTag(tag) {
			out = append(out, n)
		}
	}
	return out, nil
}

// SearchByText is a case-insensitive substring match over note content.
func (s *Service) SearchByText(ctx context.Context, userID int64, query string) ([]Note, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	var rows []Note
	if err := s.DB.WithContext(ctx).
		Where("user_id = ? AND lower(content) LIKE ?", userID, "%"+strings.ToLower(query)+"%").
		Order("created_at desc, id desc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) Count(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&Note{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
