// Package bot wires the Telegram transport to the note, bookmark and
// reminder services behind the subscription gate.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"jot/internal/bookmark"
	"jot/internal/gate"
	"jot/internal/note"
	"jot/internal/reminder"
	"jot/internal/user"
)

type Bot struct {
	api       API
	gate      *gate.Gate
	users     *user.Service
	notes     *note.Service
	bookmarks *bookmark.Service
	reminders *reminder.Service
	sessions  *Sessions
	channel   string
	log       zerolog.Logger
}

type Deps struct {
	API       API
	Gate      *gate.Gate
	Users     *user.Service
	Notes     *note.Service
	Bookmarks *bookmark.Service
	Reminders *reminder.Service
	Channel   string
	Log       zerolog.Logger
}

func New(d Deps) *Bot {
	return &Bot{
		api:       d.API,
		gate:      d.Gate,
		users:     d.Users,
		notes:     d.Notes,
		bookmarks: d.Bookmarks,
		reminders: d.Reminders,
		sessions:  NewSessions(),
		channel:   d.Channel,
		log:       d.Log,
	}
}

// Run drains the update channel until the context is cancelled. Updates
// are handled one at a time, which keeps each user's messages in arrival
// order; the reminder scheduler runs on its own goroutine.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	b.log.Info().Str("channel", b.channel).Msg("bot started")

	for {
		select {
		case <-ctx.Done():
			b.log.Info().Msg("bot stopped")
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, upd)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Interface("panic", r).Msg("update handler panicked")
		}
	}()

	switch {
	case upd.CallbackQuery != nil:
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil:
		b.handleMessage(ctx, upd.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	uid := msg.From.ID
	chatID := msg.Chat.ID

	if err := b.users.Upsert(ctx, uid, user.Profile{
		Username:     msg.From.UserName,
		FirstName:    msg.From.FirstName,
		LastName:     msg.From.LastName,
		LanguageCode: msg.From.LanguageCode,
	}); err != nil {
		b.log.Warn().Err(err).Int64("user_id", uid).Msg("user upsert failed")
	}

	if !b.gate.Allow(ctx, uid) {
		b.sendSubscriptionRequired(chatID)
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.sessions.Clear(uid)
			b.sendStart(chatID)
		default:
			b.send(chatID, "Unknown command. Just write me a note, or use /start.", nil)
		}
		return
	}

	switch sess := b.sessions.Get(uid); sess.State {
	case StateSearching:
		b.sessions.Clear(uid)
		b.handleSearchQuery(ctx, uid, chatID, msg.Text)
	case StateAwaitingReminderText:
		b.handleReminderText(uid, chatID, msg.Text)
	case StateAwaitingReminderTime:
		b.sessions.Clear(uid)
		b.handleReminderTime(ctx, uid, chatID, sess.ReminderText, msg.Text)
	default:
		b.handleIncoming(ctx, uid, chatID, msg)
	}
}

// handleIncoming is the default path: plain text becomes a note,
// anything with an attachment becomes a bookmark.
func (b *Bot) handleIncoming(ctx context.Context, uid, chatID int64, msg *tgbotapi.Message) {
	kind, fileID := attachment(msg)

	if kind == bookmark.KindText {
		n, err := b.notes.Create(ctx, uid, msg.Text)
		if errors.Is(err, note.ErrEmptyContent) {
			b.send(chatID, "💭 I don't keep empty messages. Write something worth remembering!", nil)
			return
		}
		if err != nil {
			b.log.Error().Err(err).Int64("user_id", uid).Msg("note create failed")
			b.sendFailure(chatID)
			return
		}
		b.send(chatID, savedText(n.ID, n.TagList()), ptr(savedKeyboard()))
		return
	}

	bm, err := b.bookmarks.Create(ctx, uid, bookmark.CreateInput{
		Content: msg.Caption,
		Kind:    kind,
		FileID:  fileID,
	})
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", uid).Msg("bookmark create failed")
		b.sendFailure(chatID)
		return
	}
	b.send(chatID, fmt.Sprintf("📌 Bookmarked! (#%d)", bm.ID), ptr(savedKeyboard()))
}

func (b *Bot) handleSearchQuery(ctx context.Context, uid, chatID int64, raw string) {
	tag := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(raw), "#"))
	if tag == "" {
		b.send(chatID, "⚠️ Enter a tag without the # symbol.", ptr(retrySearchKeyboard()))
		return
	}

	results, err := b.notes.SearchByTag(ctx, uid, tag)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", uid).Msg("tag search failed")
		b.sendFailure(chatID)
		return
	}
	if len(results) == 0 {
		b.send(chatID, fmt.Sprintf("📭 No notes tagged #%s.", tag), ptr(searchResultKeyboard()))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔍 Found %d note(s) tagged #%s:\n\n", len(results), tag)
	for i, n := range results {
		if i == 10 {
			fmt.Fprintf(&sb, "\n…and %d more", len(results)-10)
			break
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, preview(n.Content, 80))
	}
	b.send(chatID, sb.String(), ptr(searchResultKeyboard()))
}

func (b *Bot) handleReminderText(uid, chatID int64, text string) {
	if strings.TrimSpace(text) == "" {
		b.send(chatID, "⚠️ The reminder text can't be empty. What should I remind you about?", nil)
		return
	}
	b.sessions.Set(uid, Session{State: StateAwaitingReminderTime, ReminderText: text})
	b.send(chatID,
		"🕐 When should I remind you?\n\n"+
			"For example:\n"+
			"• today at 18:00\n"+
			"• tomorrow at 9:00\n"+
			"• 24.12.2026 14:30",
		ptr(backKeyboard(cbRemindersMenu)))
}

func (b *Bot) handleReminderTime(ctx context.Context, uid, chatID int64, text, rawWhen string) {
	due := reminder.ParseDueTime(time.Now(), rawWhen)

	r, err := b.reminders.Create(ctx, uid, text, due)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", uid).Msg("reminder create failed")
		b.sendFailure(chatID)
		return
	}

	b.send(chatID, fmt.Sprintf(
		"✅ Reminder #%d set!\n\n📝 %s\n🕐 %s\n\nI'll ping you on time.",
		r.ID, r.Text, r.RemindAt.Format("02.01.2006 15:04"),
	), ptr(backKeyboard(cbRemindersMenu)))
}

func attachment(msg *tgbotapi.Message) (bookmark.Kind, string) {
	switch {
	case len(msg.Photo) > 0:
		return bookmark.KindPhoto, msg.Photo[len(msg.Photo)-1].FileID
	case msg.Document != nil:
		return bookmark.KindDocument, msg.Document.FileID
	case msg.Video != nil:
		return bookmark.KindVideo, msg.Video.FileID
	case msg.Voice != nil:
		return bookmark.KindVoice, msg.Voice.FileID
	}
	return bookmark.KindText, ""
}

func savedText(id uint64, tags []string) string {
	out := fmt.Sprintf("✅ Saved! (#%d)", id)
	if len(tags) > 0 {
		out += "\n🏷️ Tags: #" + strings.Join(tags, " #")
	}
	return out
}

// preview truncates for display only; retrieval always returns full
// content.
func preview(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

func ptr[T any](v T) *T { return &v }
