package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/chainraise/launchpad-api/internal/trustscore"
)

// entityLocks serializes score recomputation per entity. Recompute is a
// read-modify-write over the entity row; without per-entity locking two
// concurrent triggers could both read the pre-update state and the
// later write would silently win. Locks for different entities are
// independent, so fan-out recomputations still run concurrently.
type entityLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newEntityLocks() *entityLocks {
	return &entityLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for the given entity and returns it; the
// caller must Unlock it when the recomputation completes.
func (l *entityLocks) acquire(kind trustscore.EntityKind, id uuid.UUID) *sync.Mutex {
	key := string(kind) + ":" + id.String()

	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}
