package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Robertsonwahn/brandmatebackend/internal/models"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleUser() models.User {
	now := time.Now().UTC().Truncate(time.Second)
	return models.User{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "alice@x.com",
		Role:      models.RoleUser,
		IsActive:  true,
		CreatedAt: now,
	}
}

func TestRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	user := sampleUser()

	store.Set(ctx, "token-1", user)

	token, got, ok := store.Get(ctx)
	require.True(t, ok)
	require.Equal(t, "token-1", token)
	require.Equal(t, user, got)
}

func TestSetOverwritesPair(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	store.Set(ctx, "token-1", sampleUser())

	second := sampleUser()
	second.Username = "bob"
	store.Set(ctx, "token-2", second)

	token, got, ok := store.Get(ctx)
	require.True(t, ok)
	require.Equal(t, "token-2", token)
	require.Equal(t, "bob", got.Username)
}

func TestClearLeavesEmptyStore(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	store.Set(ctx, "token-1", sampleUser())
	store.Clear(ctx)

	_, _, ok := store.Get(ctx)
	require.False(t, ok)
}

func TestGetOnEmptyStore(t *testing.T) {
	store := openStore(t)

	_, _, ok := store.Get(context.Background())
	require.False(t, ok)
}

func TestCorruptedUserDataReadsAsEmpty(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx, `INSERT INTO session (key, value) VALUES (?, ?), (?, ?)`,
		"authToken", []byte("token-1"), "userData", []byte("{not json"))
	require.NoError(t, err)

	_, _, ok := store.Get(ctx)
	require.False(t, ok)
}

func TestClosedDatabaseDegradesToEmpty(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	store.Set(ctx, "token-1", sampleUser())
	require.NoError(t, store.Close())

	// Reads and writes against a broken medium never panic or error out
	// to the caller; the session just looks empty.
	_, _, ok := store.Get(ctx)
	require.False(t, ok)
	store.Set(ctx, "token-2", sampleUser())
	store.Clear(ctx)
}
