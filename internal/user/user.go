package user

import "time"

// User mirrors the chat platform identity. The primary key is the
// platform's numeric user id, not a generated one.
type User struct {
	ID           int64     `gorm:"primaryKey"`
	Username     string    `gorm:"type:text"`
	FirstName    string    `gorm:"type:text"`
	LastName     string    `gorm:"type:text"`
	LanguageCode string    `gorm:"type:text;default:'en'"`
	JoinedAt     time.Time `gorm:"not null"`
	LastSeenAt   time.Time `gorm:"not null"`
}

// Profile carries the mutable fields refreshed on every interaction.
type Profile struct {
	Username     string
	FirstName    string
	LastName     string
	LanguageCode string
}

// Stats is the per-user item summary shown in the bot and the ops API.
type Stats struct {
	Notes           int64 `json:"notes"`
	Bookmarks       int64 `json:"bookmarks"`
	ActiveReminders int64 `json:"active_reminders"`
	Total           int64 `json:"total"`
}
