package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLock_SameKeyReturnsSameMutex(t *testing.T) {
	lm := NewLockManager()

	a := lm.GetLock("account-1")
	b := lm.GetLock("account-1")
	c := lm.GetLock("account-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestWithLock_SerializesSameKey(t *testing.T) {
	lm := NewLockManager()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = lm.WithLock("account-1", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestWithLock_ReleasesOnPanic(t *testing.T) {
	lm := NewLockManager()

	func() {
		defer func() { _ = recover() }()
		_ = lm.WithLock("account-1", func() error {
			panic("boom")
		})
	}()

	// Lock must be free again after the panic.
	ran := false
	err := lm.WithLock("account-1", func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}
