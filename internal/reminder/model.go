package reminder

import "time"

// Reminder moves through three states: pending (remind_at in the future),
// due (remind_at passed, not completed), delivered (completed, terminal).
// IsCompleted only ever flips false to true.
type Reminder struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      int64     `gorm:"index;not null"`
	Text        string    `gorm:"type:text;not null"`
	RemindAt    time.Time `gorm:"not null"`
	IsCompleted bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
}
