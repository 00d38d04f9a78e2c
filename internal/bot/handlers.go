package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || cb.Message == nil {
		return
	}
	uid := cb.From.ID
	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID

	if cb.Data == cbCheckSub {
		if b.gate.Allow(ctx, uid) {
			b.answerAlert(cb.ID, "✅ Access granted!")
			b.sendStart(chatID)
		} else {
			b.answerAlert(cb.ID, "❌ Subscription not found. Subscribe and try again.")
		}
		return
	}

	if !b.gate.Allow(ctx, uid) {
		b.answerAlert(cb.ID, "🔒 Subscribe to "+b.channel+" to use the bot")
		return
	}

	switch cb.Data {
	case cbSearch:
		b.sessions.Set(uid, Session{State: StateSearching})
		b.editOrSend(chatID, msgID,
			"🔍 Search by tag\n\nEnter a tag without the # symbol, e.g. work or idea:",
			backKeyboard(cbBackToStart))
	case cbHelp:
		b.editOrSend(chatID, msgID, helpText, backKeyboard(cbBackToStart))
	case cbBackToStart:
		b.sessions.Clear(uid)
		b.editOrSend(chatID, msgID, b.startText(), mainMenuKeyboard())
	case cbBookmarksMenu:
		b.editOrSend(chatID, msgID,
			"📌 Bookmarks\n\nForward me any message with a photo, file, video or voice note and I'll keep it here.",
			bookmarksMenuKeyboard())
	case cbBookmarksList:
		b.showBookmarks(ctx, uid, chatID, msgID)
	case cbBookmarksClear:
		b.clearBookmarks(ctx, uid, chatID, msgID)
	case cbRemindersMenu:
		b.sessions.Clear(uid)
		b.editOrSend(chatID, msgID,
			"⏰ Reminders\n\nI'll message you when the time comes.",
			remindersMenuKeyboard())
	case cbRemindersList:
		b.showReminders(ctx, uid, chatID, msgID)
	case cbRemindersAdd:
		b.sessions.Set(uid, Session{State: StateAwaitingReminderText})
		b.editOrSend(chatID, msgID,
			"📝 New reminder\n\nWhat should I remind you about?",
			backKeyboard(cbRemindersMenu))
	case cbStats:
		b.showStats(ctx, uid, chatID, msgID)
	}

	b.answer(cb.ID)
}

func (b *Bot) showBookmarks(ctx context.Context, uid, chatID int64, msgID int) {
	items, err := b.bookmarks.List(ctx, uid, 20)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", uid).Msg("bookmark list failed")
		b.sendFailure(chatID)
		return
	}
	if len(items) == 0 {
		b.editOrSend(chatID, msgID,
			"📭 No bookmarks yet.\n\nForward me any message to save it!",
			backKeyboard(cbBookmarksMenu))
		return
	}

	var sb strings.Builder
	sb.WriteString("📌 Your bookmarks:\n\n")
	for i, bm := range items {
		if i == 10 {
			fmt.Fprintf(&sb, "\n…and %d more", len(items)-10)
			break
		}
		line := preview(bm.Content, 50)
		if line == "" {
			line = "📎 " + string(bm.Kind)
		}
		fmt.Fprintf(&sb, "%d. %s\n", i+1, line)
	}
	b.editOrSend(chatID, msgID, sb.String(), bookmarksMenuKeyboard())
}

func (b *Bot) clearBookmarks(ctx context.Context, uid, chatID int64, msgID int) {
	n, err := b.bookmarks.Clear(ctx, uid)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", uid).Msg("bookmark clear failed")
		b.sendFailure(chatID)
		return
	}
	b.editOrSend(chatID, msgID,
		fmt.Sprintf("🧹 Cleared %d bookmark(s).", n),
		backKeyboard(cbBookmarksMenu))
}

func (b *Bot) showReminders(ctx context.Context, uid, chatID int64, msgID int) {
	items, err := b.reminders.ListActive(ctx, uid)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", uid).Msg("reminder list failed")
		b.sendFailure(chatID)
		return
	}
	if len(items) == 0 {
		b.editOrSend(chatID, msgID,
			"📭 No active reminders.\n\nTap “➕ New reminder” to create one.",
			backKeyboard(cbRemindersMenu))
		return
	}

	var sb strings.Builder
	sb.WriteString("⏰ Your reminders:\n\n")
	for i, r := range items {
		if i == 10 {
			break
		}
		fmt.Fprintf(&sb, "%d. %s\n   🕐 %s\n\n", i+1, preview(r.Text, 60), r.RemindAt.Format("02.01.2006 15:04"))
	}
	b.editOrSend(chatID, msgID, sb.String(), backKeyboard(cbRemindersMenu))
}

func (b *Bot) showStats(ctx context.Context, uid, chatID int64, msgID int) {
	st, err := b.users.Stats(ctx, uid)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", uid).Msg("stats failed")
		b.sendFailure(chatID)
		return
	}
	b.editOrSend(chatID, msgID, fmt.Sprintf(
		"📊 Your stash\n\n📝 Notes: %d\n📌 Bookmarks: %d\n⏰ Active reminders: %d\n\nTotal: %d",
		st.Notes, st.Bookmarks, st.ActiveReminders, st.Total,
	), backKeyboard(cbBackToStart))
}

const helpText = "💡 Help\n\n" +
	"✨ Saving notes:\n" +
	"Just write or forward a message — it is saved automatically.\n\n" +
	"🏷️ Tags:\n" +
	"Use #tags in the text:\n" +
	"Buy milk #list #important\n" +
	"Tags: list, important\n\n" +
	"🔍 Search:\n" +
	"Tap “🔍 Search” and enter a tag without #:\n" +
	"work → shows every note tagged #work"

func (b *Bot) sendStart(chatID int64) {
	b.send(chatID, b.startText(), ptr(mainMenuKeyboard()))
}

func (b *Bot) startText() string {
	hour := time.Now().Hour()
	greeting := "Good evening"
	switch {
	case hour >= 5 && hour < 12:
		greeting = "Good morning"
	case hour >= 12 && hour < 18:
		greeting = "Good afternoon"
	}
	return greeting + "! 👋\n\n" +
		"📝 How it works:\n" +
		"• Write a note — it gets saved\n" +
		"• Add #tags to find it later (#work #idea)\n" +
		"• Tap 🔍 to search by tag"
}

func (b *Bot) sendSubscriptionRequired(chatID int64) {
	b.send(chatID,
		"🔒 Subscription required\n\n"+
			"Subscribe to the channel to use the bot:\n"+b.channel+"\n\n"+
			"Then send /start again.",
		ptr(subscriptionKeyboard(b.channel)))
}

// sendFailure is the generic apology for store/transport failures that
// the user can't fix.
func (b *Bot) sendFailure(chatID int64) {
	b.send(chatID, "😔 Something went wrong on my side. Please try again.", nil)
}

func (b *Bot) send(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	if _, err := b.api.Send(msg); err != nil {
		b.log.Warn().Err(err).Int64("chat_id", chatID).Msg("send failed")
	}
}

// editOrSend tries to edit the menu message in place and falls back to a
// fresh message when the edit is rejected (deleted message, stale id).
func (b *Bot) editOrSend(chatID int64, msgID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, text, kb)
	if _, err := b.api.Send(edit); err != nil {
		b.send(chatID, text, &kb)
	}
}

func (b *Bot) answer(callbackID string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		b.log.Debug().Err(err).Msg("callback answer failed")
	}
}

func (b *Bot) answerAlert(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		b.log.Debug().Err(err).Msg("callback answer failed")
	}
}
