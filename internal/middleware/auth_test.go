package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Robertsonwahn/brandmatebackend/internal/auth"
	"github.com/Robertsonwahn/brandmatebackend/internal/models"
	"github.com/Robertsonwahn/brandmatebackend/internal/storage"
	"github.com/Robertsonwahn/brandmatebackend/internal/storage/memory"
)

func newFixture(t *testing.T) (*Verifier, *auth.TokenManager, *memory.Store, models.User) {
	t.Helper()

	store := memory.NewStore()
	tokens := auth.NewTokenManager("0123456789abcdef0123456789abcdef", "brandmate-test")

	user := models.User{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "alice@x.com",
		Role:      models.RoleUser,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	_, err := store.CreateUser(context.Background(), user)
	require.NoError(t, err)

	return NewVerifier(tokens, store), tokens, store, user
}

func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := UserFromContext(r.Context()); ok {
			w.Write([]byte(user.Username))
			return
		}
		w.Write([]byte("anonymous"))
	})
}

func doRequest(handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireAcceptsActiveUser(t *testing.T) {
	verifier, tokens, _, user := newFixture(t)

	token, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	rec := doRequest(verifier.Require(echoIdentity()), token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", rec.Body.String())
}

func TestRequireRejectsMissingToken(t *testing.T) {
	verifier, _, _, _ := newFixture(t)

	rec := doRequest(verifier.Require(echoIdentity()), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Access token required")
}

func TestRequireRejectsCorruptedToken(t *testing.T) {
	verifier, tokens, _, user := newFixture(t)

	token, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	rec := doRequest(verifier.Require(echoIdentity()), token+"corrupt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestRequireRejectsUnknownUser(t *testing.T) {
	verifier, tokens, _, _ := newFixture(t)

	// Validly signed token bound to a user that does not exist.
	token, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	rec := doRequest(verifier.Require(echoIdentity()), token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestRequireRejectsDeactivatedUser(t *testing.T) {
	verifier, tokens, store, user := newFixture(t)

	token, err := tokens.Issue(user.ID)
	require.NoError(t, err)
	store.SetActive(user.ID, false)

	rec := doRequest(verifier.Require(echoIdentity()), token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Your account has been deactivated")
}

func TestOptionalAttachesIdentityWhenValid(t *testing.T) {
	verifier, tokens, _, user := newFixture(t)

	token, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	rec := doRequest(verifier.Optional(echoIdentity()), token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", rec.Body.String())
}

func TestOptionalNeverRejects(t *testing.T) {
	verifier, tokens, store, user := newFixture(t)

	token, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	cases := map[string]string{
		"no token":        "",
		"corrupted token": token + "corrupt",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(verifier.Optional(echoIdentity()), tok)
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, "anonymous", rec.Body.String())
		})
	}

	store.SetActive(user.ID, false)
	rec := doRequest(verifier.Optional(echoIdentity()), token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "anonymous", rec.Body.String())
}

// brokenUserStore simulates a database outage on lookups.
type brokenUserStore struct {
	storage.UserStore
}

func (brokenUserStore) FindByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return models.User{}, errors.New("connection refused")
}

func TestRequireReportsServerErrorOnStoreOutage(t *testing.T) {
	tokens := auth.NewTokenManager("0123456789abcdef0123456789abcdef", "brandmate-test")
	verifier := NewVerifier(tokens, brokenUserStore{})

	token, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	// A store outage is not a bad credential: 500, not 401, so clients
	// do not discard still-valid sessions.
	rec := doRequest(verifier.Require(echoIdentity()), token)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Server error")

	rec = doRequest(verifier.Optional(echoIdentity()), token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "anonymous", rec.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	verifier, tokens, store, user := newFixture(t)

	admin := models.User{
		ID:        uuid.New(),
		Username:  "root",
		Email:     "root@x.com",
		Role:      models.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	_, err := store.CreateUser(context.Background(), admin)
	require.NoError(t, err)

	gate := verifier.Require(RequireAdmin(echoIdentity()))

	userToken, err := tokens.Issue(user.ID)
	require.NoError(t, err)
	rec := doRequest(gate, userToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, err := tokens.Issue(admin.ID)
	require.NoError(t, err)
	rec = doRequest(gate, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "root", rec.Body.String())
}
