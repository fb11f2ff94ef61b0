package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"daily-idea-job/internal/adapters"
	"daily-idea-job/internal/domain"
	"daily-idea-job/internal/prompts"
)

const previewLength = 200

// Result は1回のジョブ実行の結果です。HTTP レスポンスにそのまま変換されます。
type Result struct {
	Status  int
	Message string
}

// IdeaPipeline はアイデア生成からメッセージ送信までを同期的に実行します。
// 実行ごとに状態を持たないため、並行に呼び出しても問題ありません。
type IdeaPipeline struct {
	generator adapters.IdeaGenerator
	relay     adapters.MessageRelay
	notifier  adapters.SlackNotifier
	prompt    string
}

// NewIdeaPipeline は IdeaPipeline を生成します。notifier が nil の場合は通知を行いません。
func NewIdeaPipeline(generator adapters.IdeaGenerator, relay adapters.MessageRelay, notifier adapters.SlackNotifier) *IdeaPipeline {
	return &IdeaPipeline{
		generator: generator,
		relay:     relay,
		notifier:  notifier,
		prompt:    prompts.BrainPrompt,
	}
}

// Execute はジョブを1回実行します。プロバイダーのエラーはすべてここで捕捉され、
// 500 の Result として返されます。
func (p *IdeaPipeline) Execute(ctx context.Context) Result {
	slog.InfoContext(ctx, "Automation process started by HTTP request.", "provider", p.generator.Provider())

	req := domain.NotificationRequest{
		Provider:   p.generator.Provider(),
		Recipient:  p.relay.Recipient(),
		MessageSID: domain.CategoryNotAvailable,
	}

	// 1. アイデア生成
	idea, err := p.runGenerateStep(ctx)
	if err != nil {
		msg := fmt.Sprintf("ERROR: Failed to call %s API: %v", p.generator.Provider(), cause(err))
		return p.fail(ctx, msg, err, req)
	}

	// 2. 切り詰め
	body, truncated := domain.TruncateIdea(idea)
	if truncated {
		slog.InfoContext(ctx, "Idea exceeded the message limit and was truncated", "truncated", true, "limit", domain.MaxIdeaLength)
	}
	req.Preview = domain.Preview(body, previewLength)
	req.Truncated = truncated

	// 3. メッセージ送信
	sid, err := p.runRelayStep(ctx, body)
	if err != nil {
		msg := fmt.Sprintf("ERROR: Failed to send WhatsApp message via Twilio: %v", cause(err))
		return p.fail(ctx, msg, err, req)
	}

	req.MessageSID = sid
	msg := fmt.Sprintf("SUCCESS: Automation complete. Message sent with SID: %s", sid)
	slog.InfoContext(ctx, msg, "sid", sid)

	if p.notifier != nil {
		if notifyErr := p.notifier.Notify(ctx, req); notifyErr != nil {
			slog.ErrorContext(ctx, "Notification failed", "error", notifyErr)
		}
	}

	return Result{Status: http.StatusOK, Message: msg}
}

// --- 内部ステップ群 ---

// runGenerateStep はプロバイダー SDK 内部の panic も GenerationError として返します。
func (p *IdeaPipeline) runGenerateStep(ctx context.Context) (idea string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &domain.GenerationError{Provider: p.generator.Provider(), Err: fmt.Errorf("panic: %v", rec)}
		}
	}()

	idea, err = p.generator.Generate(ctx, p.prompt)
	if err != nil {
		return "", err
	}
	slog.InfoContext(ctx, "Idea generated successfully from AI.", "length", len([]rune(idea)))
	return idea, nil
}

func (p *IdeaPipeline) runRelayStep(ctx context.Context, body string) (sid string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &domain.RelayError{Provider: "Twilio", Err: fmt.Errorf("panic: %v", rec)}
		}
	}()

	return p.relay.Send(ctx, body)
}

func (p *IdeaPipeline) fail(ctx context.Context, msg string, err error, req domain.NotificationRequest) Result {
	slog.ErrorContext(ctx, msg,
		"error", err,
		"retryable", domain.IsTransient(err),
	)

	if p.notifier != nil {
		if notifyErr := p.notifier.NotifyError(ctx, err, req); notifyErr != nil {
			slog.ErrorContext(ctx, "Error notification failed", "error", notifyErr)
		}
	}

	return Result{Status: http.StatusInternalServerError, Message: msg}
}

// cause はプロバイダー名で包まれたエラーから元のエラーを取り出します。
func cause(err error) error {
	var genErr *domain.GenerationError
	if errors.As(err, &genErr) && genErr.Err != nil {
		return genErr.Err
	}
	var relayErr *domain.RelayError
	if errors.As(err, &relayErr) && relayErr.Err != nil {
		return relayErr.Err
	}
	return err
}
