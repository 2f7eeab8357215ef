package worker

import (
	"context"
	"sync"
)

type Group interface {
	Do(ErrorJob)
	Wait() error
}

type group struct {
	ctxCancel context.CancelFunc
	wg        sync.WaitGroup

	errOnce sync.Once
	err     error
}

// NewGroup cancels the returned context after the first job error.
func NewGroup(ctx context.Context) (context.Context, Group) {
	ctx, cancel := context.WithCancel(ctx)
	return ctx, &group{ctxCancel: cancel}
}

func (g *group) Do(job ErrorJob) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		err := job()
		if err == nil {
			return
		}

		g.errOnce.Do(func() {
			g.err = err
			g.ctxCancel()
		})
	}()
}

func (g *group) Wait() error {
	g.wg.Wait()
	g.ctxCancel()
	return g.err
}
