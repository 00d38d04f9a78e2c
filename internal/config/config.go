package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken        string
	RequiredChannel string

	DatabaseURL string

	HTTPAddr             string
	OpsToken             string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	ReminderInterval time.Duration
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BotToken:             mustGetenv("BOT_TOKEN"),
		RequiredChannel:      getenv("REQUIRED_CHANNEL", "@bot_pro_bot_you"),
		DatabaseURL:          getenv("DATABASE_URL", "jot.db"),
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		OpsToken:             getenv("OPS_TOKEN", ""),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		ReminderInterval:     getenvDuration("REMINDER_INTERVAL", 60*time.Second),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
