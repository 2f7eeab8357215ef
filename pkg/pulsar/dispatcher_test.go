package pulsar_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/dashboard-auth/pkg/log"
	pkgpulsar "github.com/klwxsrx/dashboard-auth/pkg/pulsar"
)

type testEvent struct {
	EventID uuid.UUID `json:"id"`
	UserID  string    `json:"userID"`
}

func (e testEvent) ID() uuid.UUID { return e.EventID }
func (e testEvent) Type() string  { return "test_happened" }
func (e testEvent) Key() string   { return e.UserID }

type producerStub struct {
	sent    []*pulsar.ProducerMessage
	sendErr error
}

func (p *producerStub) SendAsync(
	_ context.Context,
	msg *pulsar.ProducerMessage,
	callback func(pulsar.MessageID, *pulsar.ProducerMessage, error),
) {
	p.sent = append(p.sent, msg)
	callback(nil, msg, p.sendErr)
}

func TestEventDispatcher_Dispatch(t *testing.T) {
	evt := testEvent{EventID: uuid.New(), UserID: "user-1"}

	tests := []struct {
		name    string
		sendErr error
	}{
		{name: "delivered"},
		{name: "delivery failure is not returned", sendErr: errors.New("broker down")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			producer := &producerStub{sendErr: tt.sendErr}
			dispatcher := pkgpulsar.NewProducerEventDispatcher(producer, log.New(log.LevelDisabled))

			err := dispatcher.Dispatch(context.Background(), evt)
			require.NoError(t, err)
			require.Len(t, producer.sent, 1)

			msg := producer.sent[0]
			require.Equal(t, "user-1", msg.Key)
			require.Equal(t, evt.ID().String(), msg.Properties["event_id"])
			require.Equal(t, "test_happened", msg.Properties["event_type"])

			var payload testEvent
			require.NoError(t, json.Unmarshal(msg.Payload, &payload))
			require.Equal(t, evt, payload)
		})
	}
}
