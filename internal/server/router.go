package server

import (
	"net/http"

	"daily-idea-job/internal/builder"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter は、ミドルウェアとルーティングを統合した http.Handler を構築します。
func NewRouter(h *builder.AppHandlers) http.Handler {
	r := chi.NewRouter()

	setupCommonMiddleware(r)
	setupRoutes(r, h)

	return r
}

func setupCommonMiddleware(r *chi.Mux) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)
}

func setupRoutes(r chi.Router, h *builder.AppHandlers) {
	r.Get("/healthz", h.Job.Healthz)

	// Cloud Scheduler の起動トリガー。メソッドは問いません。
	r.HandleFunc("/", h.Job.RunDailyIdea)
}
