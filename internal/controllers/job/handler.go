package job

import (
	"context"
	"log/slog"
	"net/http"

	"daily-idea-job/internal/pipeline"
)

// IdeaRunner は実際のジョブロジックを持つインターフェースです。
type IdeaRunner interface {
	Execute(ctx context.Context) pipeline.Result
}

type Handler struct {
	runner IdeaRunner
}

func NewHandler(runner IdeaRunner) *Handler {
	return &Handler{runner: runner}
}

// RunDailyIdea は Cloud Scheduler からの起動リクエストを処理します。
// リクエストボディは読みません。結果はプレーンテキストで返します。
func (h *Handler) RunDailyIdea(w http.ResponseWriter, r *http.Request) {
	res := h.runner.Execute(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(res.Status)
	if _, err := w.Write([]byte(res.Message)); err != nil {
		slog.Error("レスポンスの書き込みに失敗しました", "error", err)
	}
}

// Healthz は Cloud Run 向けの生存確認です。ジョブは実行しません。
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
