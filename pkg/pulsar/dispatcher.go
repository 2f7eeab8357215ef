package pulsar

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apache/pulsar-client-go/pulsar"

	"github.com/klwxsrx/dashboard-auth/pkg/event"
	"github.com/klwxsrx/dashboard-auth/pkg/log"
)

const (
	eventIDPropertyName   = "event_id"
	eventTypePropertyName = "event_type"
)

type (
	// Producer is the subset of pulsar.Producer the dispatcher needs.
	Producer interface {
		SendAsync(ctx context.Context, msg *pulsar.ProducerMessage, callback func(pulsar.MessageID, *pulsar.ProducerMessage, error))
	}

	// KeyedEvent events are partitioned by their key.
	KeyedEvent interface {
		event.Event
		Key() string
	}
)

type eventDispatcher struct {
	producer Producer
	logger   log.Logger
}

// NewEventDispatcher sends events asynchronously; delivery failures are logged only.
func NewEventDispatcher(conn Connection, topic string, logger log.Logger) (event.Dispatcher, error) {
	producer, err := conn.Producer(topic)
	if err != nil {
		return nil, err
	}

	return NewProducerEventDispatcher(producer, logger.WithField("topic", topic)), nil
}

func NewProducerEventDispatcher(producer Producer, logger log.Logger) event.Dispatcher {
	return eventDispatcher{
		producer: producer,
		logger:   logger,
	}
}

func (d eventDispatcher) Dispatch(ctx context.Context, events ...event.Event) error {
	ctx = context.WithoutCancel(ctx)
	for _, evt := range events {
		msg, err := d.message(evt)
		if err != nil {
			return err
		}

		evtLogger := d.logger.With(log.Fields{
			"eventID":   evt.ID().String(),
			"eventType": evt.Type(),
		})
		d.producer.SendAsync(ctx, msg, func(_ pulsar.MessageID, _ *pulsar.ProducerMessage, err error) {
			if err != nil {
				evtLogger.WithError(err).Error(ctx, "failed to send event")
				return
			}
			evtLogger.Debug(ctx, "event sent")
		})
	}

	return nil
}

func (d eventDispatcher) message(evt event.Event) (*pulsar.ProducerMessage, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("encode event %s: %w", evt.Type(), err)
	}

	key := evt.ID().String()
	if keyed, ok := evt.(KeyedEvent); ok {
		key = keyed.Key()
	}

	return &pulsar.ProducerMessage{
		Payload: payload,
		Key:     key,
		Properties: map[string]string{
			eventIDPropertyName:   evt.ID().String(),
			eventTypePropertyName: evt.Type(),
		},
	}, nil
}
