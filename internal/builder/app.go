package builder

import (
	"context"
	"fmt"

	"daily-idea-job/internal/adapters"
	"daily-idea-job/internal/config"

	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// AppContext はアプリケーションの依存関係を保持します。
// 各フィールドをインターフェースで定義することで、モック利用を容易にします。
type AppContext struct {
	Config        *config.Config
	Generator     adapters.IdeaGenerator
	Relay         adapters.MessageRelay
	SlackNotifier adapters.SlackNotifier
	HTTPClient    httpkit.ClientInterface
}

// BuildAppContext は外部サービスのクライアントを初期化し、依存関係を組み立てます。
func BuildAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	// 1. 基盤クライアントの初期化
	httpClient := httpkit.New(config.DefaultHTTPTimeout)

	// 2. テキスト生成プロバイダー (APIキー方式 / Vertex AI)
	generator, err := adapters.NewGeminiAdapter(ctx, adapters.GeminiOptions{
		Backend:   cfg.GenAIBackend,
		APIKey:    cfg.GeminiAPIKey,
		ProjectID: cfg.ProjectID,
		Location:  cfg.LocationID,
		Model:     cfg.GeminiModel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai adapter: %w", err)
	}

	// 3. メッセージリレー
	relay, err := adapters.NewTwilioAdapter(adapters.TwilioOptions{
		AccountSID: cfg.TwilioSID,
		AuthToken:  cfg.TwilioToken,
		From:       cfg.WhatsAppFrom,
		To:         cfg.WhatsAppTo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize twilio adapter: %w", err)
	}

	// 4. 通知
	slack, err := adapters.NewSlackAdapter(httpClient, cfg.SlackWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Slack adapter: %w", err)
	}

	return &AppContext{
		Config:        cfg,
		Generator:     generator,
		Relay:         relay,
		SlackNotifier: slack,
		HTTPClient:    httpClient,
	}, nil
}
