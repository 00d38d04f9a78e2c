package bookmark

import "time"

// Kind is the message kind a bookmark was captured from.
type Kind string

const (
	KindText     Kind = "text"
	KindPhoto    Kind = "photo"
	KindDocument Kind = "document"
	KindVideo    Kind = "video"
	KindVoice    Kind = "voice"
)

// Bookmark is a saved message. FileID is the platform's opaque attachment
// handle, empty for plain text.
type Bookmark struct {
	ID      uint64    `gorm:"primaryKey"`
	UserID  int64     `gorm:"index;not null"`
	Content string    `gorm:"type:text;not null;default:''"`
	Kind    Kind      `gorm:"type:text;not null;default:'text'"`
	FileID  string    `gorm:"type:text;not null;default:''"`
	Tags    string    `gorm:"type:text;not null;default:''"`
	SavedAt time.Time `gorm:"index;not null"`
}
