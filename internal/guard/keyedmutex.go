// Package guard provides in-process protection primitives for the serving
// layer: per-owner mutual exclusion for the admission write path and a
// sliding-window rate limiter for the auth endpoints.
package guard

import "sync"

// KeyedMutex serializes critical sections per key. PlaceBet locks the owner
// key for its whole check-then-append sequence so two concurrent wagers
// cannot both pass the daily-cap check.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*ownerLock
}

type ownerLock struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates an empty keyed mutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*ownerLock)}
}

// Lock acquires the mutex for key and returns the matching unlock func.
// Entries are dropped once the last holder releases, so the map does not
// grow with the owner population.
func (km *KeyedMutex) Lock(key string) (unlock func()) {
	km.mu.Lock()
	l, ok := km.locks[key]
	if !ok {
		l = &ownerLock{}
		km.locks[key] = l
	}
	l.refs++
	km.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()
		km.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(km.locks, key)
		}
		km.mu.Unlock()
	}
}
