package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"jot/internal/bookmark"
	"jot/internal/bot"
	"jot/internal/config"
	"jot/internal/db"
	"jot/internal/gate"
	"jot/internal/note"
	"jot/internal/ops"
	"jot/internal/reminder"
	"jot/internal/user"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "jot").Logger()

	cfg, _ := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("telegram connect failed")
	}
	log.Info().Str("bot", api.Self.UserName).Str("required_channel", cfg.RequiredChannel).Msg("starting")

	users := &user.Service{DB: gdb}
	notes := &note.Service{DB: gdb}
	bookmarks := &bookmark.Service{DB: gdb}
	reminders := &reminder.Service{DB: gdb}

	g := gate.New(&bot.ChannelChecker{API: api}, cfg.RequiredChannel, log)

	b := bot.New(bot.Deps{
		API:       api,
		Gate:      g,
		Users:     users,
		Notes:     notes,
		Bookmarks: bookmarks,
		Reminders: reminders,
		Channel:   cfg.RequiredChannel,
		Log:       log,
	})

	sched := &reminder.Scheduler{
		Svc:      reminders,
		Notifier: b,
		Interval: cfg.ReminderInterval,
		Log:      log,
	}

	ctx, cancel := context.WithCancel(context.Background())

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := api.GetUpdatesChan(u)

	go b.Run(ctx, updates)
	go sched.Run(ctx)

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: ops.NewRouter(ops.Options{
			Users:                users,
			Token:                cfg.OpsToken,
			CORSAllowedOrigins:   cfg.CORSAllowedOrigins,
			CORSAllowCredentials: cfg.CORSAllowCredentials,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("ops server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ops server failed")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	api.StopReceivingUpdates()
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
