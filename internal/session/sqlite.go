package session

import (
	"database/sql"
	"fmt"
	"time"
)

// SQLiteStore persists session records in the gateway's local database so
// an authenticated session survives a gateway restart.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an initialized database connection
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(id string) (Record, bool, error) {
	var token, userJSON string
	var updatedAt time.Time

	query := "SELECT token, user_json, updated_at FROM sessions WHERE id = ?"
	err := s.db.QueryRow(query, id).Scan(&token, &userJSON, &updatedAt)
	if err == sql.ErrNoRows {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to query session: %w", err)
	}

	user, err := decodeUser(userJSON)
	if err != nil {
		// A corrupt snapshot is not fatal; the profile refetch repairs it.
		user = nil
	}
	return Record{Token: token, User: user, UpdatedAt: updatedAt}, true, nil
}

func (s *SQLiteStore) Put(id string, rec Record) error {
	userJSON, err := encodeUser(rec.User)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sessions (id, token, user_json, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			user_json = excluded.user_json,
			updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, id, rec.Token, userJSON, time.Now()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(id string) error {
	if _, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PruneBefore removes sessions idle since cutoff
func (s *SQLiteStore) PruneBefore(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec("DELETE FROM sessions WHERE updated_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
