package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store keeps live sessions in a bounded LRU with idle expiry. Evicted or
// expired sessions simply start over on their next request; no state
// survives beyond the cache.
type Store struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *Session]
}

// NewStore creates a store holding at most maxSessions sessions, each
// expiring after ttl of inactivity.
func NewStore(maxSessions int, ttl time.Duration) *Store {
	return &Store{
		cache: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
	}
}

// GetOrCreate returns the session for id, creating it if absent. An empty
// id allocates a fresh session under a generated UUID.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	if sess, ok := st.cache.Get(id); ok {
		return sess
	}
	sess := &Session{ID: id}
	st.cache.Add(id, sess)
	return sess
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.cache.Len()
}
