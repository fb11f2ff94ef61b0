package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"daily-idea-job/internal/config"
	"daily-idea-job/internal/domain"

	"google.golang.org/genai"
)

// IdeaGenerator はプロンプトからアイデア本文を生成する能力を抽象化します。
// 具体的なプロバイダー (APIキー方式 / プロジェクト方式) は実装の詳細です。
type IdeaGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Provider() string
}

// GeminiOptions は GeminiAdapter の初期化パラメータです。
type GeminiOptions struct {
	Backend   string // config.BackendGemini または config.BackendVertex
	APIKey    string
	ProjectID string
	Location  string
	Model     string
	// BaseURL はエンドポイントの上書き用です (テスト用途)。
	BaseURL string
}

// GeminiAdapter は google.golang.org/genai を使用した IdeaGenerator の実装です。
type GeminiAdapter struct {
	models   *genai.Models
	model    string
	provider string
}

// NewGeminiAdapter はバックエンド種別に応じて genai クライアントを初期化します。
func NewGeminiAdapter(ctx context.Context, opts GeminiOptions) (*GeminiAdapter, error) {
	cc := &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{BaseURL: opts.BaseURL},
	}

	var provider string
	switch opts.Backend {
	case config.BackendVertex:
		cc.Backend = genai.BackendVertexAI
		cc.Project = opts.ProjectID
		cc.Location = opts.Location
		provider = "Vertex AI"
	case config.BackendGemini, "":
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = opts.APIKey
		provider = "Google AI"
	default:
		return nil, fmt.Errorf("unsupported genai backend: %s", opts.Backend)
	}

	model := opts.Model
	if model == "" {
		model = config.DefaultModel
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	slog.Info("GenAI client initialized", "provider", provider, "model", model)
	return &GeminiAdapter{
		models:   client.Models,
		model:    model,
		provider: provider,
	}, nil
}

// Provider はログやエラーメッセージに使用するプロバイダー名を返します。
func (a *GeminiAdapter) Provider() string {
	return a.provider
}

// Generate は固定モデルに対してプロンプトを1回送信します。再試行は行いません。
func (a *GeminiAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &domain.GenerationError{Provider: a.provider, Err: wrapAPIError(err)}
	}

	// 本文は加工せずに返す。空白のみの応答は失敗として扱う。
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", &domain.GenerationError{Provider: a.provider, Err: errors.New("response contained no text")}
	}
	return text, nil
}

// apiStatusError は genai.APIError の HTTP ステータスを domain.StatusCoder として公開します。
type apiStatusError struct {
	code int
	err  error
}

func (e *apiStatusError) Error() string   { return e.err.Error() }
func (e *apiStatusError) Unwrap() error   { return e.err }
func (e *apiStatusError) StatusCode() int { return e.code }

func wrapAPIError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &apiStatusError{code: apiErr.Code, err: err}
	}
	return err
}
