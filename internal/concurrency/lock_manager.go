package concurrency

import (
	"sync"
)

// LockManager handles named locks. The farm service keys them by account ID
// so mutations for one account serialize while accounts proceed in parallel.
// Locks are created on demand and never removed; the per-entry cost is one
// mutex, bounded by the number of distinct accounts seen by this process.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the named lock. The lock is released on
// every exit path, including a panic inside fn.
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
