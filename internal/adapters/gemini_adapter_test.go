package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"daily-idea-job/internal/config"
	"daily-idea-job/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeGemini は generateContent エンドポイントを模したテストサーバーを返します。
func newFakeGemini(t *testing.T, status int, body any) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func textResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"role":  "model",
				"parts": []map[string]any{{"text": text}},
			},
		}},
	}
}

func newTestGemini(t *testing.T, baseURL string) *GeminiAdapter {
	t.Helper()
	adapter, err := NewGeminiAdapter(context.Background(), GeminiOptions{
		Backend: config.BackendGemini,
		APIKey:  "test-key",
		Model:   "gemini-test",
		BaseURL: baseURL,
	})
	require.NoError(t, err)
	return adapter
}

func TestGeminiAdapter_Generate_ReturnsTextUnmodified(t *testing.T) {
	generated := "\n💡 **Idea Title:** Test\n\nBody.\n"
	srv, paths := newFakeGemini(t, http.StatusOK, textResponse(generated))
	adapter := newTestGemini(t, srv.URL)

	text, err := adapter.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, generated, text)
	assert.Equal(t, "Google AI", adapter.Provider())
	require.Len(t, *paths, 1)
	assert.True(t, strings.HasSuffix((*paths)[0], "models/gemini-test:generateContent"), (*paths)[0])
}

func TestGeminiAdapter_Generate_WhitespaceOnlyIsFailure(t *testing.T) {
	srv, _ := newFakeGemini(t, http.StatusOK, textResponse(" \n\t\n"))
	adapter := newTestGemini(t, srv.URL)

	_, err := adapter.Generate(context.Background(), "prompt")

	var genErr *domain.GenerationError
	assert.ErrorAs(t, err, &genErr)
}

// 生成テキストが切り詰め判定を経てリレーの本文になるまで、空白を含めて変化しないことを確認する。
func TestGeminiAdapter_GeneratedTextReachesRelayBody(t *testing.T) {
	tests := []struct {
		name          string
		generated     string
		wantBody      string
		wantTruncated bool
	}{
		{
			name:      "leading and trailing newlines kept",
			generated: "\n💡 **Idea Title:** Test\n\nBody.\n",
			wantBody:  "\n💡 **Idea Title:** Test\n\nBody.\n",
		},
		{
			name:          "leading spaces count toward the limit",
			generated:     strings.Repeat(" ", 10) + strings.Repeat("x", 1495),
			wantBody:      strings.Repeat(" ", 10) + strings.Repeat("x", 1490) + domain.TruncationNotice,
			wantTruncated: true,
		},
		{
			name:          "1501 characters with leading newline",
			generated:     "\n" + strings.Repeat("x", 1500),
			wantBody:      "\n" + strings.Repeat("x", 1499) + domain.TruncationNotice,
			wantTruncated: true,
		},
		{
			name:      "1500 characters with surrounding spaces",
			generated: " " + strings.Repeat("x", 1498) + " ",
			wantBody:  " " + strings.Repeat("x", 1498) + " ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newFakeGemini(t, http.StatusOK, textResponse(tt.generated))
			generator := newTestGemini(t, srv.URL)
			creator := &fakeMessageCreator{sid: "SM123"}
			relay := newTwilioAdapter(creator, "from", "to")

			idea, err := generator.Generate(context.Background(), "prompt")
			require.NoError(t, err)
			body, truncated := domain.TruncateIdea(idea)
			_, err = relay.Send(context.Background(), body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTruncated, truncated)
			assert.Equal(t, tt.wantBody, *creator.params.Body)
		})
	}
}

func TestGeminiAdapter_Generate_APIError(t *testing.T) {
	srv, _ := newFakeGemini(t, http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"},
	})
	adapter := newTestGemini(t, srv.URL)

	_, err := adapter.Generate(context.Background(), "prompt")

	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "Google AI", genErr.Provider)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.True(t, domain.IsTransient(err))
}

func TestGeminiAdapter_Generate_EmptyText(t *testing.T) {
	srv, _ := newFakeGemini(t, http.StatusOK, map[string]any{"candidates": []any{}})
	adapter := newTestGemini(t, srv.URL)

	_, err := adapter.Generate(context.Background(), "prompt")

	var genErr *domain.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.False(t, domain.IsTransient(err))
}

func TestNewGeminiAdapter_UnsupportedBackend(t *testing.T) {
	_, err := NewGeminiAdapter(context.Background(), GeminiOptions{Backend: "openai"})
	assert.Error(t, err)
}
