package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Robertsonwahn/brandmatebackend/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrUsernameTaken indicates a uniqueness conflict on the username column.
var ErrUsernameTaken = errors.New("username already taken")

// ErrEmailTaken indicates a uniqueness conflict on the email column.
var ErrEmailTaken = errors.New("email already registered")

// UserStore captures user persistence operations needed by handlers.
// Identifier resolution matches the username exactly and the email
// case-insensitively; emails are stored lowercase.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindByLoginOrEmail(ctx context.Context, identifier string) (models.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// NameStore captures persistence for submitted name records.
type NameStore interface {
	CreateName(ctx context.Context, record models.NameRecord) (models.NameRecord, error)
	ListNames(ctx context.Context, limit, offset int) ([]models.NameRecord, int, error)
	FindNameByID(ctx context.Context, id uuid.UUID) (models.NameRecord, error)
	DeleteName(ctx context.Context, id uuid.UUID) (models.NameRecord, error)
}
