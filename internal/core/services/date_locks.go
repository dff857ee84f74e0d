package services

import (
	"sync"
)

// dateLocks serializes the read-check-write booking sequence per business
// date. The calendar provider offers no conditional insert, so this is the
// mutual exclusion that closes the race between the availability re-check
// and the event insert. Locks are never removed; the key space is one entry
// per date ever booked, which stays tiny at this scale.
type dateLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newDateLocks() *dateLocks {
	return &dateLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

func (d *dateLocks) forDate(key string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()

	lock, exists := d.locks[key]
	if !exists {
		lock = &sync.Mutex{}
		d.locks[key] = lock
	}
	return lock
}
