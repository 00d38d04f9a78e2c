package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	cbCheckSub       = "check_sub"
	cbSearch         = "search"
	cbHelp           = "help"
	cbBackToStart    = "back_to_start"
	cbBookmarksMenu  = "bookmarks_menu"
	cbBookmarksList  = "bookmarks_list"
	cbBookmarksClear = "bookmarks_clear"
	cbRemindersMenu  = "reminders_menu"
	cbRemindersList  = "reminders_list"
	cbRemindersAdd   = "reminders_add"
	cbStats          = "stats"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 Search by tag", cbSearch),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📌 Bookmarks", cbBookmarksMenu),
			tgbotapi.NewInlineKeyboardButtonData("⏰ Reminders", cbRemindersMenu),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", cbStats),
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ Help", cbHelp),
		),
	)
}

func savedKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 Search by tag", cbSearch),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ Help", cbHelp),
		),
	)
}

func searchResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 New search", cbSearch),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Menu", cbBackToStart),
		),
	)
}

func retrySearchKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 Retry search", cbSearch),
		),
	)
}

func backKeyboard(target string) tgbotapi.InlineKeyboardMarkup {
	if target == "" {
		target = cbBackToStart
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", target),
		),
	)
}

func bookmarksMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 List", cbBookmarksList),
			tgbotapi.NewInlineKeyboardButtonData("🧹 Clear all", cbBookmarksClear),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Menu", cbBackToStart),
		),
	)
}

func remindersMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 List", cbRemindersList),
			tgbotapi.NewInlineKeyboardButtonData("➕ New reminder", cbRemindersAdd),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Menu", cbBackToStart),
		),
	)
}

func subscriptionKeyboard(channel string) tgbotapi.InlineKeyboardMarkup {
	link := "https://t.me/" + strings.TrimPrefix(channel, "@")
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📺 Open channel", link),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Check subscription", cbCheckSub),
		),
	)
}
