package domain

import "unicode/utf8"

const (
	// MaxIdeaLength は送信するアイデア本文の最大文字数 (Unicode コードポイント単位) です。
	MaxIdeaLength = 1500
	// TruncationNotice は切り詰めた本文の末尾に付与する固定文言です。
	TruncationNotice = "\n\n[Message truncated]"
)

// TruncateIdea は本文が MaxIdeaLength を超える場合に先頭 MaxIdeaLength 文字へ切り詰め、
// TruncationNotice を付与します。上限以内の本文はそのまま返します。
func TruncateIdea(text string) (string, bool) {
	if utf8.RuneCountInString(text) <= MaxIdeaLength {
		return text, false
	}
	runes := []rune(text)
	return string(runes[:MaxIdeaLength]) + TruncationNotice, true
}

// Preview は通知用に本文の先頭 n 文字を返します。
func Preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n]) + "…"
}
