package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shouni/netarmor/securenet"
)

// getEnv は環境変数を取得し、未設定または空の場合は fallback を返します。
func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// --- バリデーション ---

// MissingConfigError は必須の環境変数が欠けていることを表します。
type MissingConfigError struct {
	Keys []string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("FATAL ERROR: environment variable(s) not set: %s", strings.Join(e.Keys, ", "))
}

// RequiredKeys はバックエンド種別に応じて必須となる環境変数名を返します。
func (c Config) RequiredKeys() []string {
	keys := []string{"TWILIO_SID", "TWILIO_TOKEN", "WHATSAPP_FROM", "WHATSAPP_TO"}
	if c.GenAIBackend != BackendVertex {
		keys = append([]string{"GEMINI_API_KEY"}, keys...)
	}
	return keys
}

func (c Config) valueOf(key string) string {
	switch key {
	case "GEMINI_API_KEY":
		return c.GeminiAPIKey
	case "TWILIO_SID":
		return c.TwilioSID
	case "TWILIO_TOKEN":
		return c.TwilioToken
	case "WHATSAPP_FROM":
		return c.WhatsAppFrom
	case "WHATSAPP_TO":
		return c.WhatsAppTo
	}
	return ""
}

// ValidateEssentialConfig はアプリケーション実行に不可欠な設定を検証します。
// 欠けている環境変数はすべてエラーメッセージに列挙されます。
func ValidateEssentialConfig(cfg *Config) error {
	switch cfg.GenAIBackend {
	case BackendGemini, BackendVertex:
	default:
		return fmt.Errorf("configuration error: GENAI_BACKEND must be %q or %q, got %q", BackendGemini, BackendVertex, cfg.GenAIBackend)
	}

	var missing []string
	for _, key := range cfg.RequiredKeys() {
		if cfg.valueOf(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &MissingConfigError{Keys: missing}
	}

	if cfg.GenAIBackend == BackendVertex && (cfg.ProjectID == "" || cfg.LocationID == "") {
		return fmt.Errorf("configuration error: vertex backend requires a project and location")
	}

	if cfg.SlackWebhookURL != "" && !IsSecureURL(cfg.SlackWebhookURL) {
		return fmt.Errorf("security error: SLACK_WEBHOOK_URL ('%s') must be HTTPS", cfg.SlackWebhookURL)
	}

	return nil
}

// IsSecureURL は指定された URL が HTTPS または localhost であるか判定します。
func IsSecureURL(rawURL string) bool {
	return securenet.IsSecureServiceURL(rawURL)
}
