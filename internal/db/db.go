package db

import (
	"fmt"
	"strings"

	"jot/internal/bookmark"
	"jot/internal/note"
	"jot/internal/reminder"
	"jot/internal/user"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect picks the dialect from the DSN: postgres:// URLs go to
// Postgres, anything else is treated as a SQLite file path (the local
// development setup).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&user.User{},
		&note.Note{},
		&bookmark.Bookmark{},
		&reminder.Reminder{},
	); err != nil {
		return err
	}

	stmts := []string{
		`create index if not exists idx_notes_user_created on notes(user_id, created_at desc);`,
		`create index if not exists idx_bookmarks_user_saved on bookmarks(user_id, saved_at desc);`,
		// the scheduler's due-query scans (is_completed, remind_at)
		`create index if not exists idx_reminders_due on reminders(is_completed, remind_at);`,
		`create index if not exists idx_reminders_user_active on reminders(user_id, is_completed);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
