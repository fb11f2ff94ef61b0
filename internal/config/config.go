package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultModel はアイデア生成に使用する固定のモデル識別子です。
	DefaultModel = "gemini-2.5-flash"
	// DefaultVertexProjectID / DefaultVertexLocation は Vertex AI バックエンド用の固定値です。
	DefaultVertexProjectID = "withai-brain"
	DefaultVertexLocation  = "us-central1"
	// DefaultHTTPTimeout は Slack 通知用 HTTP クライアントのタイムアウトです。
	DefaultHTTPTimeout     = 30 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
)

// GenAI バックエンドの種別
const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
)

// Config は環境変数から読み込まれたアプリケーションの全設定を保持します。
type Config struct {
	Port            string
	ShutdownTimeout time.Duration

	// Text generation
	GenAIBackend string // "gemini" (APIキー) または "vertex" (プロジェクト)
	GeminiAPIKey string
	GeminiModel  string
	ProjectID    string
	LocationID   string

	// Messaging relay (Twilio WhatsApp)
	TwilioSID    string
	TwilioToken  string
	WhatsAppFrom string
	WhatsAppTo   string

	// 任意: 実行結果の Slack 通知先
	SlackWebhookURL string
}

// LoadConfig は環境変数から設定を読み込み、Config 構造体を生成します。
// カレントディレクトリに .env があれば先に読み込みます (既存の環境変数は上書きしません)。
func LoadConfig() *Config {
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),

		GenAIBackend: strings.ToLower(getEnv("GENAI_BACKEND", BackendGemini)),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", DefaultModel),
		ProjectID:    getEnv("GCP_PROJECT_ID", DefaultVertexProjectID),
		LocationID:   getEnv("GCP_LOCATION_ID", DefaultVertexLocation),

		TwilioSID:    getEnv("TWILIO_SID", ""),
		TwilioToken:  getEnv("TWILIO_TOKEN", ""),
		WhatsAppFrom: getEnv("WHATSAPP_FROM", ""),
		WhatsAppTo:   getEnv("WHATSAPP_TO", ""),

		SlackWebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),
	}
}
