//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Dispatcher=Dispatcher"
package event

import (
	"context"

	"github.com/google/uuid"
)

type (
	Event interface {
		ID() uuid.UUID
		Type() string
	}

	// Dispatcher publishes events of a single aggregate in order.
	Dispatcher interface {
		Dispatch(ctx context.Context, events ...Event) error
	}
)
