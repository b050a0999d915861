// Package lock provides the per-user locks that serialize refresh-token rotation.
package lock

import (
	"context"
	"sync"

	"partnerauth/internal/domain/service"
	"partnerauth/internal/errors"

	"github.com/google/uuid"
)

// localEntry is a one-slot semaphore shared by every waiter on the same key.
type localEntry struct {
	sem  chan struct{}
	refs int
}

// LocalLocker is an in-process keyed mutex. Entries are dropped once no caller holds or waits on them.
type LocalLocker struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*localEntry
}

var _ service.RotationLocker = (*LocalLocker)(nil)

// NewLocalLocker creates an empty LocalLocker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{entries: make(map[uuid.UUID]*localEntry)}
}

// Lock waits for the key or for ctx to end.
func (l *LocalLocker) Lock(ctx context.Context, userID uuid.UUID) (func(), error) {
	entry := l.acquireEntry(userID)

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.releaseEntry(userID, entry)

		return nil, errors.Wrap(ctx.Err(), "waiting for rotation lock")
	}

	var once sync.Once
	unlock := func() {
		once.Do(func() {
			<-entry.sem
			l.releaseEntry(userID, entry)
		})
	}

	return unlock, nil
}

func (l *LocalLocker) acquireEntry(userID uuid.UUID) *localEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[userID]
	if !ok {
		entry = &localEntry{sem: make(chan struct{}, 1)}
		l.entries[userID] = entry
	}
	entry.refs++

	return entry
}

func (l *LocalLocker) releaseEntry(userID uuid.UUID, entry *localEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, userID)
	}
}

// size reports the number of live entries.
func (l *LocalLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}
