package cmd

import (
	"fmt"

	"github.com/klwxsrx/dashboard-auth/pkg/event"
	"github.com/klwxsrx/dashboard-auth/pkg/lazy"
	"github.com/klwxsrx/dashboard-auth/pkg/log"
	"github.com/klwxsrx/dashboard-auth/pkg/pulsar"
)

type (
	// EventDispatchers publishes to the broker when one is configured and only logs events otherwise.
	// Broker failures are logged and never fail the caller.
	EventDispatchers interface {
		MustInit(topic string) event.Dispatcher
	}

	eventDispatchers struct {
		conn   lazy.Loader[pulsar.Connection]
		logger log.Logger
	}
)

func NewEventDispatchers(conn lazy.Loader[pulsar.Connection], logger log.Logger) EventDispatchers {
	return eventDispatchers{conn: conn, logger: logger}
}

func (d eventDispatchers) MustInit(topic string) event.Dispatcher {
	if d.conn == nil {
		return event.NewLoggingDispatcher(d.logger.WithField("topic", topic))
	}

	dispatcher, err := pulsar.NewEventDispatcher(d.conn.MustLoad(), topic, d.logger)
	if err != nil {
		panic(fmt.Errorf("init event dispatcher for topic %s: %w", topic, err))
	}

	return event.NewBestEffortDispatcher(dispatcher, d.logger.WithField("topic", topic))
}
