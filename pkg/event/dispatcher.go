package event

import (
	"context"

	"github.com/klwxsrx/dashboard-auth/pkg/log"
)

type loggingDispatcher struct {
	logger log.Logger
}

// NewLoggingDispatcher is used when no message broker is configured.
func NewLoggingDispatcher(logger log.Logger) Dispatcher {
	return loggingDispatcher{logger: logger}
}

func (d loggingDispatcher) Dispatch(ctx context.Context, events ...Event) error {
	for _, evt := range events {
		d.logger.With(log.Fields{
			"eventID":   evt.ID().String(),
			"eventType": evt.Type(),
		}).Info(ctx, "domain event dispatched")
	}
	return nil
}

type bestEffortDispatcher struct {
	dispatcher Dispatcher
	logger     log.Logger
}

// NewBestEffortDispatcher logs delivery failures instead of returning them,
// so a stored change is never reported as failed because of the broker.
func NewBestEffortDispatcher(dispatcher Dispatcher, logger log.Logger) Dispatcher {
	return bestEffortDispatcher{dispatcher: dispatcher, logger: logger}
}

func (d bestEffortDispatcher) Dispatch(ctx context.Context, events ...Event) error {
	err := d.dispatcher.Dispatch(ctx, events...)
	if err == nil {
		return nil
	}

	for _, evt := range events {
		d.logger.WithError(err).With(log.Fields{
			"eventID":   evt.ID().String(),
			"eventType": evt.Type(),
		}).Error(ctx, "failed to dispatch domain event")
	}
	return nil
}
