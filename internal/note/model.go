package note

import (
	"strings"
	"time"
)

// Note is immutable once written. Tags are denormalized into a
// comma-joined column; TagList splits them back out.
type Note struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    int64     `gorm:"index;not null"`
	Content   string    `gorm:"type:text;not null"`
	Tags      string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"index;not null"`
}

func (n *Note) TagList() []string {
	return SplitTags(n.Tags)
}

// HasTag reports whether tag equals a full delimited element of the tag
// column. "work" must not match a note tagged only "workshop".
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.TagList() {
		if t == tag {
			return true
		}
	}
	return false
}

func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func SplitTags(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
