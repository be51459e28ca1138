// Package memory provides in-memory implementations of the storage
// interfaces for tests and local development without a database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Robertsonwahn/brandmatebackend/internal/models"
	"github.com/Robertsonwahn/brandmatebackend/internal/storage"
)

var (
	_ storage.UserStore = (*Store)(nil)
	_ storage.NameStore = (*Store)(nil)
)

// Store keeps users and name records in process memory. Safe for
// concurrent use.
type Store struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
	names map[uuid.UUID]models.NameRecord
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		users: make(map[uuid.UUID]models.User),
		names: make(map[uuid.UUID]models.NameRecord),
	}
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error { return nil }

// DatabaseName identifies the backing medium for health reporting.
func (s *Store) DatabaseName() string { return "memory" }

// CreateUser stores a new user, enforcing the same uniqueness rules the
// Postgres schema does: exact on username, case-insensitive on email.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return models.User{}, storage.ErrEmailTaken
		}
		if existing.Username == user.Username {
			return models.User{}, storage.ErrUsernameTaken
		}
	}
	s.users[user.ID] = user
	return user, nil
}

// FindByID fetches a user by id.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// FindByLoginOrEmail resolves an identifier as exact username or
// case-insensitive email.
func (s *Store) FindByLoginOrEmail(ctx context.Context, identifier string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == identifier || strings.EqualFold(user.Email, identifier) {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// TouchLastLogin records a successful login time.
func (s *Store) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	user.LastLogin = &at
	s.users[id] = user
	return nil
}

// SetActive flips the active flag; used by tests to simulate
// administrative deactivation.
func (s *Store) SetActive(id uuid.UUID, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[id]; ok {
		user.IsActive = active
		s.users[id] = user
	}
}

// SetRole rewrites a user's role; used by tests to promote admins.
func (s *Store) SetRole(id uuid.UUID, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[id]; ok {
		user.Role = role
		s.users[id] = user
	}
}

// CreateName stores a submitted name record.
func (s *Store) CreateName(ctx context.Context, record models.NameRecord) (models.NameRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.names[record.ID] = record
	return record, nil
}

// ListNames returns a page of records ordered newest first, plus the total.
func (s *Store) ListNames(ctx context.Context, limit, offset int) ([]models.NameRecord, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.NameRecord, 0, len(s.names))
	for _, record := range s.names {
		all = append(all, record)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

// FindNameByID fetches a single record.
func (s *Store) FindNameByID(ctx context.Context, id uuid.UUID) (models.NameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.names[id]
	if !ok {
		return models.NameRecord{}, storage.ErrNotFound
	}
	return record, nil
}

// DeleteName removes a record and returns what was deleted.
func (s *Store) DeleteName(ctx context.Context, id uuid.UUID) (models.NameRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.names[id]
	if !ok {
		return models.NameRecord{}, storage.ErrNotFound
	}
	delete(s.names, id)
	return record, nil
}
