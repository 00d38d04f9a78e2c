// Package ops exposes a small operational HTTP surface next to the bot:
// a health probe and per-user item counts.
package ops

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"jot/internal/user"
)

type Options struct {
	Users *user.Service

	// Token guards /stats; empty disables the endpoint entirely.
	Token string

	CORSAllowedOrigins   []string
	CORSAllowCredentials bool
}

func NewRouter(opt Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(opt.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opt.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet},
			AllowedHeaders:   []string{"Authorization"},
			AllowCredentials: opt.CORSAllowCredentials,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opt.Token != "" {
		sh := &statsHandler{users: opt.Users, token: opt.Token}
		r.Get("/stats/{userID}", sh.Stats)
	}

	return r
}

type statsHandler struct {
	users *user.Service
	token string
}

func (h *statsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+h.token {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	st, err := h.users.Stats(r.Context(), id)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(st)
}
