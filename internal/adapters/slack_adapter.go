package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"daily-idea-job/internal/domain"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-notifier/pkg/factory"
)

// --- インターフェース定義 ---

type SlackNotifier interface {
	Notify(ctx context.Context, req domain.NotificationRequest) error
	NotifyError(ctx context.Context, errDetail error, req domain.NotificationRequest) error
}

// slackSender は go-notifier の Slack クライアントのうち、本アダプターが使う操作です。
type slackSender interface {
	SendTextWithHeader(ctx context.Context, header, text string) error
}

// --- 具象アダプター ---

type SlackAdapter struct {
	webhookURL  string
	slackClient slackSender
}

// NewSlackAdapter は Slack アダプターを生成します。webhookURL が空の場合、通知はすべてスキップされます。
func NewSlackAdapter(httpClient httpkit.ClientInterface, webhookURL string) (*SlackAdapter, error) {
	if webhookURL == "" {
		return &SlackAdapter{}, nil
	}
	client, err := factory.GetSlackClient(httpClient)
	if err != nil {
		return nil, fmt.Errorf("Slackクライアントの初期化に失敗しました: %w", err)
	}

	return &SlackAdapter{
		webhookURL:  webhookURL,
		slackClient: client,
	}, nil
}

// Notify はジョブ成功時の Slack 通知を送信します。
func (a *SlackAdapter) Notify(ctx context.Context, req domain.NotificationRequest) error {
	if a.slackClient == nil {
		slog.Info("Slackクライアントが初期化されていないため、通知をスキップします。", "sid", req.MessageSID)
		return nil
	}

	title := "💡 本日のアイデアを送信しました"
	if err := a.slackClient.SendTextWithHeader(ctx, title, buildSlackContent(req)); err != nil {
		return fmt.Errorf("Slackへの投稿に失敗しました: %w", err)
	}

	slog.Info("Slack に完了通知を送信しました。", "sid", req.MessageSID)
	return nil
}

// NotifyError はエラー詳細と実行メタデータを含む Slack エラー通知を送信します。
func (a *SlackAdapter) NotifyError(ctx context.Context, errDetail error, req domain.NotificationRequest) error {
	if a.slackClient == nil {
		slog.Info("Slackクライアントが初期化されていないため、エラー通知をスキップします。", "error", errDetail)
		return nil
	}

	title := "❌ デイリーアイデアの処理中にエラーが発生しました"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*プロバイダー:* `%s`\n", req.Provider))
	sb.WriteString(fmt.Sprintf("*送信先:* `%s`\n\n", req.Recipient))
	sb.WriteString("*エラー内容:*\n")
	sb.WriteString(fmt.Sprintf("```\n%v\n```\n", errDetail))

	if err := a.slackClient.SendTextWithHeader(ctx, title, sb.String()); err != nil {
		return fmt.Errorf("Slackへのエラー通知に失敗しました: %w", err)
	}

	slog.Info("Slack にエラー通知を送信しました。", "error", errDetail)
	return nil
}

// buildSlackContent は通知リクエストから Slack メッセージの本文を生成します。
func buildSlackContent(req domain.NotificationRequest) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**プロバイダー:** `%s`\n", req.Provider))
	sb.WriteString(fmt.Sprintf("**送信先:** `%s`\n", req.Recipient))
	sb.WriteString(fmt.Sprintf("**メッセージSID:** `%s`\n", req.MessageSID))
	if req.Truncated {
		sb.WriteString("✂️ _本文は上限を超えたため切り詰めて送信しました_\n")
	}
	if req.Preview != "" {
		sb.WriteString(fmt.Sprintf("\n>%s", strings.ReplaceAll(req.Preview, "\n", "\n>")))
	}
	return sb.String()
}
