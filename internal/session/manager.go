package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the browser cookie carrying the signed session id
const CookieName = "zenvy_session"

// Claims is the JWT payload of a gateway session cookie
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager issues and validates signed session cookies and opens the
// matching persisted sessions.
type Manager struct {
	store  Store
	secret []byte
	maxAge time.Duration
}

// NewManager creates a session manager signing cookies with secret
func NewManager(store Store, secret string, maxAge time.Duration) *Manager {
	return &Manager{store: store, secret: []byte(secret), maxAge: maxAge}
}

// Issue mints a new session id and its signed cookie value
func (m *Manager) Issue() (string, string, error) {
	sid := uuid.New().String()

	now := time.Now()
	claims := Claims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign session cookie: %w", err)
	}
	return sid, signed, nil
}

// Resolve validates a cookie value and returns the session id inside it
func (m *Manager) Resolve(cookie string) (string, error) {
	token, err := jwt.ParseWithClaims(cookie, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session cookie: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("invalid session cookie")
	}
	return claims.SessionID, nil
}

// Open loads the persisted session for a resolved id
func (m *Manager) Open(sessionID string) (*Session, error) {
	return Open(m.store, sessionID)
}

// Drop removes a session's persisted record entirely
func (m *Manager) Drop(sessionID string) error {
	return m.store.Delete(sessionID)
}

// MaxAge returns the cookie lifetime in seconds
func (m *Manager) MaxAge() int {
	return int(m.maxAge / time.Second)
}
