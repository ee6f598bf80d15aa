package bgjobs

import (
	"sync"
)

// RunLocker keeps one in-memory lock per experiment name, so a periodic
// experiment never overlaps with its own previous run.
type RunLocker struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func NewRunLocker() *RunLocker {
	return &RunLocker{
		m: make(map[string]*sync.Mutex),
	}
}

func (l *RunLocker) get(name string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.m[name]
	if !ok {
		lock = &sync.Mutex{}
		l.m[name] = lock
	}
	return lock
}

// TryLock returns an unlock function, or nil if the experiment is running.
func (l *RunLocker) TryLock(name string) func() {
	lock := l.get(name)
	if !lock.TryLock() {
		return nil
	}
	return lock.Unlock
}
