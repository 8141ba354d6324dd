package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"zenvy-storefront/internal/models"
)

// Record is the persisted state of one browser session: the commerce API
// bearer token and the cached user snapshot. Both are cleared on logout.
type Record struct {
	Token     string
	User      *models.User
	UpdatedAt time.Time
}

// Store is an injectable persistence backend for session records. The
// production backend is SQLite; tests use the in-memory one.
type Store interface {
	Get(id string) (Record, bool, error)
	Put(id string, rec Record) error
	Delete(id string) error
}

// Session binds a Store to one session id and caches the record so the
// request path never hits the backend for every token lookup. It satisfies
// backend.TokenSource.
type Session struct {
	store Store
	id    string

	mu  sync.RWMutex
	rec Record
}

// Open loads (or initializes) the record for id
func Open(store Store, id string) (*Session, error) {
	rec, _, err := store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	return &Session{store: store, id: id, rec: rec}, nil
}

// ID returns the session id
func (s *Session) ID() string { return s.id }

// Token returns the persisted commerce API token, empty when logged out
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec.Token
}

// User returns the cached user snapshot, nil when logged out
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec.User
}

// SetCredentials persists the token and user snapshot together, as happens
// on every successful login, register, and profile update.
func (s *Session) SetCredentials(token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.Token = token
	s.rec.User = user
	s.rec.UpdatedAt = time.Now()
	return s.store.Put(s.id, s.rec)
}

// SetUser refreshes only the cached snapshot, keeping the token
func (s *Session) SetUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.User = user
	s.rec.UpdatedAt = time.Now()
	return s.store.Put(s.id, s.rec)
}

// Clear wipes the token and snapshot, as happens on logout
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = Record{UpdatedAt: time.Now()}
	return s.store.Put(s.id, s.rec)
}

// encodeUser round-trips the snapshot through JSON for SQL storage
func encodeUser(u *models.User) (string, error) {
	if u == nil {
		return "", nil
	}
	data, err := json.Marshal(u)
	if err != nil {
		return "", fmt.Errorf("failed to encode user snapshot: %w", err)
	}
	return string(data), nil
}

func decodeUser(data string) (*models.User, error) {
	if data == "" {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil, fmt.Errorf("failed to decode user snapshot: %w", err)
	}
	return &u, nil
}
