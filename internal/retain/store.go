// Package retain keeps console snapshots alive while their view is torn
// down, for example while the program is suspended, so a rebuilt view can
// pick up where the old one left off.
package retain

import (
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zjrosen/tailconsole/internal/console"
	"github.com/zjrosen/tailconsole/internal/log"
)

const (
	// DefaultTTL bounds how long an unclaimed snapshot is kept.
	DefaultTTL = 24 * time.Hour
	// DefaultCleanupInterval is how often expired snapshots are purged.
	DefaultCleanupInterval = 30 * time.Minute
)

// ErrEmptySession is returned when a snapshot is stored without a session id.
var ErrEmptySession = errors.New("empty session id")

// Store holds encoded snapshots keyed by console session id.
type Store struct {
	cache *gocache.Cache
}

// New creates a store whose entries expire after ttl.
func New(ttl, cleanupInterval time.Duration) *Store {
	return &Store{cache: gocache.New(ttl, cleanupInterval)}
}

// Put retains snap for session, replacing any earlier snapshot.
func (s *Store) Put(session string, snap console.Snapshot) error {
	if session == "" {
		return ErrEmptySession
	}
	data, err := console.EncodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("retaining session %s: %w", session, err)
	}
	s.cache.SetDefault(session, data)
	log.Debug(log.CatState, "retained snapshot", "session", session, "bytes", len(data))
	return nil
}

// Take removes and returns the snapshot for session.
func (s *Store) Take(session string) (console.Snapshot, bool) {
	value, found := s.cache.Get(session)
	if !found {
		return console.Snapshot{}, false
	}
	s.cache.Delete(session)

	data, ok := value.([]byte)
	if !ok {
		log.Error(log.CatState, "wrong type assertion when taking snapshot", "session", session)
		return console.Snapshot{}, false
	}
	snap, err := console.DecodeSnapshot(data)
	if err != nil {
		log.ErrorErr(log.CatState, "discarding unreadable snapshot", err, "session", session)
		return console.Snapshot{}, false
	}
	return snap, true
}

// Discard drops any snapshot for session. Used when the console closes for
// good.
func (s *Store) Discard(session string) {
	s.cache.Delete(session)
}

// Len returns the number of retained snapshots.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
