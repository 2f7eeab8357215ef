package worker

import "context"

type (
	// ContextJob runs until ctx is done or the job completes.
	ContextJob func(context.Context) error
	ErrorJob   func() error
)
