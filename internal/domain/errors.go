package domain

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// GenerationError はテキスト生成プロバイダーの呼び出し失敗を表します。
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// RelayError はメッセージリレーへの送信失敗を表します。
type RelayError struct {
	Provider string
	Err      error
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("%s relay failed: %v", e.Provider, e.Err)
}

func (e *RelayError) Unwrap() error { return e.Err }

// StatusCoder はプロバイダーのエラーが HTTP ステータスを持つ場合に実装します。
type StatusCoder interface {
	StatusCode() int
}

// IsTransient はエラーが一時的 (再試行で回復し得る) かどうかを判定します。
// 判定結果はログ出力にのみ使用し、ジョブ自体は再試行しません。
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var sc StatusCoder
	if errors.As(err, &sc) {
		return IsTransientStatus(sc.StatusCode())
	}
	return false
}

// IsTransientStatus は HTTP ステータスコードが一時的な失敗を示すか判定します。
func IsTransientStatus(code int) bool {
	switch {
	case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests:
		return true
	case code >= http.StatusInternalServerError:
		return true
	}
	return false
}
