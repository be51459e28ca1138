// Package session persists the client's current session: the bearer token
// and a cached copy of the user, written and cleared as a pair.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"

	_ "modernc.org/sqlite"

	"github.com/Robertsonwahn/brandmatebackend/internal/models"
)

const (
	keyToken = "authToken"
	keyUser  = "userData"
)

// Store is a sqlite-backed key-value store holding exactly the two session
// keys. Read and write failures degrade to "empty session" rather than
// surfacing to the caller; the orchestrator's revalidation depends on that.
type Store struct {
	db *sql.DB
}

// Open creates or opens the session database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);`); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Set persists the token and cached user as a single transaction. A
// failure is logged and leaves any previous pair intact.
func (s *Store) Set(ctx context.Context, token string, user models.User) {
	userData, err := json.Marshal(user)
	if err != nil {
		log.Printf("session: encode user: %v", err)
		return
	}

	if err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := upsert(ctx, tx, keyToken, []byte(token)); err != nil {
			return err
		}
		return upsert(ctx, tx, keyUser, userData)
	}); err != nil {
		log.Printf("session: persist session: %v", err)
	}
}

// Get returns the stored token and user. ok is false when either half is
// missing, unreadable, or corrupted.
func (s *Store) Get(ctx context.Context) (token string, user models.User, ok bool) {
	tokenData, err := s.get(ctx, keyToken)
	if err != nil || len(tokenData) == 0 {
		return "", models.User{}, false
	}
	userData, err := s.get(ctx, keyUser)
	if err != nil || len(userData) == 0 {
		return "", models.User{}, false
	}
	if err := json.Unmarshal(userData, &user); err != nil {
		log.Printf("session: decode cached user: %v", err)
		return "", models.User{}, false
	}
	return string(tokenData), user, true
}

// Clear removes both session keys in a single transaction.
func (s *Store) Clear(ctx context.Context) {
	if err := s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, keyToken, keyUser)
		return err
	}); err != nil {
		log.Printf("session: clear session: %v", err)
	}
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return value, err
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func upsert(ctx context.Context, tx *sql.Tx, key string, value []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}
