package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"daily-idea-job/internal/domain"

	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const twilioProvider = "Twilio"

// MessageRelay は本文を固定の宛先へ送信する能力を抽象化します。
type MessageRelay interface {
	Send(ctx context.Context, body string) (string, error)
	Recipient() string
}

// messageCreator は twilio-go の ApiService のうち、本アダプターが使う操作だけを切り出したものです。
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioOptions は TwilioAdapter の初期化パラメータです。
type TwilioOptions struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

// TwilioAdapter は Twilio (WhatsApp) を使用した MessageRelay の実装です。
type TwilioAdapter struct {
	api  messageCreator
	from string
	to   string
}

// NewTwilioAdapter は Twilio REST クライアントを初期化します。
func NewTwilioAdapter(opts TwilioOptions) (*TwilioAdapter, error) {
	if opts.AccountSID == "" || opts.AuthToken == "" {
		return nil, fmt.Errorf("twilio credentials are required")
	}
	if opts.From == "" || opts.To == "" {
		return nil, fmt.Errorf("twilio from/to addresses are required")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: opts.AccountSID,
		Password: opts.AuthToken,
	})
	return newTwilioAdapter(client.Api, opts.From, opts.To), nil
}

func newTwilioAdapter(api messageCreator, from, to string) *TwilioAdapter {
	return &TwilioAdapter{api: api, from: from, to: to}
}

// Recipient は送信先アドレスを返します。
func (a *TwilioAdapter) Recipient() string {
	return a.to
}

// Send は本文を1通のメッセージとして送信し、Twilio のメッセージ SID を返します。
func (a *TwilioAdapter) Send(ctx context.Context, body string) (string, error) {
	// twilio-go の CreateMessage は context を受け取らないため、呼び出し前にキャンセルを確認します。
	if err := ctx.Err(); err != nil {
		return "", &domain.RelayError{Provider: twilioProvider, Err: err}
	}

	msg, err := a.api.CreateMessage(a.buildParams(body))
	if err != nil {
		return "", &domain.RelayError{Provider: twilioProvider, Err: wrapTwilioError(err)}
	}
	if msg == nil || msg.Sid == nil || *msg.Sid == "" {
		return "", &domain.RelayError{Provider: twilioProvider, Err: errors.New("response did not include a message SID")}
	}

	slog.InfoContext(ctx, "Message accepted by Twilio", "sid", *msg.Sid, "to", a.to)
	return *msg.Sid, nil
}

func (a *TwilioAdapter) buildParams(body string) *twilioApi.CreateMessageParams {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(a.from)
	params.SetTo(a.to)
	params.SetBody(body)
	return params
}

type twilioStatusError struct {
	*twclient.TwilioRestError
}

func (e twilioStatusError) Unwrap() error   { return e.TwilioRestError }
func (e twilioStatusError) StatusCode() int { return e.Status }

func wrapTwilioError(err error) error {
	var restErr *twclient.TwilioRestError
	if errors.As(err, &restErr) {
		return twilioStatusError{restErr}
	}
	return err
}
