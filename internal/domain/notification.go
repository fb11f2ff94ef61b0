package domain

const CategoryNotAvailable = "N/A"

// NotificationRequest は Slack 等の通知コンポーネントで共有されるデータ構造です。
// 1回のジョブ実行の結果を通知先に伝えるために使用します。
type NotificationRequest struct {
	// Provider は、アイデア生成に使用したプロバイダー名です。(例: "Google AI", "Vertex AI")
	Provider string `json:"provider"`

	// Recipient は、メッセージの送信先アドレスです。
	Recipient string `json:"recipient"`

	// MessageSID は、メッセージリレーが返したメッセージ識別子です。失敗時は N/A。
	MessageSID string `json:"message_sid"`

	// Preview は、送信したアイデア本文の先頭部分です。
	Preview string `json:"preview"`

	// Truncated は、本文が上限を超えて切り詰められたかどうかです。
	Truncated bool `json:"truncated"`
}
