package bgjobs

import (
	"context"
	"sync"

	"github.com/petuhovskiy/chancekit/internal/log"
)

// Register is a registry of all background jobs.
// Has a wait group to wait for all jobs to finish.
type Register struct {
	all sync.WaitGroup
}

func NewRegister() *Register {
	return &Register{}
}

// Go a new background task.
func (r *Register) Go(f func()) {
	r.all.Add(1)

	go func() {
		defer r.all.Done()
		f()
	}()
}

// Group starts n tasks and returns a function waiting for just those tasks.
// The tasks are also tracked by WaitAll.
func (r *Register) Group(n int, f func(i int)) (wait func()) {
	var group sync.WaitGroup
	group.Add(n)
	for i := 0; i < n; i++ {
		r.Go(func() {
			defer group.Done()
			f(i)
		})
	}
	return group.Wait
}

func (r *Register) WaitAll(ctx context.Context) {
	log.Info(ctx, "waiting for all background jobs to finish")
	r.all.Wait()
}
