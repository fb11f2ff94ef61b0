package adapters

import (
	"context"
	"net/http"
	"testing"

	"daily-idea-job/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMessageCreator struct {
	params *twilioApi.CreateMessageParams
	sid    string
	err    error
	calls  int
}

func (f *fakeMessageCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.calls++
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := f.sid
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestTwilioAdapter_Send(t *testing.T) {
	fake := &fakeMessageCreator{sid: "SM123"}
	adapter := newTwilioAdapter(fake, "whatsapp:+14155238886", "whatsapp:+15550001111")

	sid, err := adapter.Send(context.Background(), "short idea")

	require.NoError(t, err)
	assert.Equal(t, "SM123", sid)
	require.NotNil(t, fake.params)
	assert.Equal(t, "whatsapp:+14155238886", *fake.params.From)
	assert.Equal(t, "whatsapp:+15550001111", *fake.params.To)
	assert.Equal(t, "short idea", *fake.params.Body)
	assert.Equal(t, "whatsapp:+15550001111", adapter.Recipient())
}

func TestTwilioAdapter_Send_RestError(t *testing.T) {
	fake := &fakeMessageCreator{err: &twclient.TwilioRestError{
		Code:    63016,
		Message: "outside the allowed window",
		Status:  http.StatusBadRequest,
	}}
	adapter := newTwilioAdapter(fake, "from", "to")

	_, err := adapter.Send(context.Background(), "body")

	var relayErr *domain.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, "Twilio", relayErr.Provider)
	assert.Contains(t, err.Error(), "outside the allowed window")
	assert.False(t, domain.IsTransient(err))
}

func TestTwilioAdapter_Send_ServerErrorIsTransient(t *testing.T) {
	fake := &fakeMessageCreator{err: &twclient.TwilioRestError{Status: http.StatusServiceUnavailable}}
	adapter := newTwilioAdapter(fake, "from", "to")

	_, err := adapter.Send(context.Background(), "body")

	assert.True(t, domain.IsTransient(err))
}

func TestTwilioAdapter_Send_CanceledContext(t *testing.T) {
	fake := &fakeMessageCreator{sid: "SM123"}
	adapter := newTwilioAdapter(fake, "from", "to")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.Send(ctx, "body")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, fake.calls)
}

func TestTwilioAdapter_Send_MissingSID(t *testing.T) {
	fake := &fakeMessageCreator{}
	adapter := newTwilioAdapter(fake, "from", "to")

	_, err := adapter.Send(context.Background(), "body")

	var relayErr *domain.RelayError
	assert.ErrorAs(t, err, &relayErr)
}

func TestNewTwilioAdapter_Validation(t *testing.T) {
	_, err := NewTwilioAdapter(TwilioOptions{From: "a", To: "b"})
	assert.Error(t, err)

	_, err = NewTwilioAdapter(TwilioOptions{AccountSID: "AC1", AuthToken: "t"})
	assert.Error(t, err)

	adapter, err := NewTwilioAdapter(TwilioOptions{AccountSID: "AC1", AuthToken: "t", From: "a", To: "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", adapter.Recipient())
}
