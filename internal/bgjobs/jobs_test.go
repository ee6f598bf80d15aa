package bgjobs

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Group(t *testing.T) {
	r := NewRegister()

	var sum atomic.Int64
	wait := r.Group(5, func(i int) {
		sum.Add(int64(i))
	})
	wait()
	assert.Equal(t, int64(0+1+2+3+4), sum.Load())

	r.Go(func() { sum.Add(10) })
	r.WaitAll(context.Background())
	assert.Equal(t, int64(20), sum.Load())
}

func TestRunLocker(t *testing.T) {
	l := NewRunLocker()

	unlock := l.TryLock("coin")
	require.NotNil(t, unlock)
	assert.Nil(t, l.TryLock("coin"))

	other := l.TryLock("dice")
	require.NotNil(t, other)
	other()

	unlock()
	again := l.TryLock("coin")
	require.NotNil(t, again)
	assert.Nil(t, l.TryLock("coin"))
	again()
}
