package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Robertsonwahn/brandmatebackend/internal/auth"
	"github.com/Robertsonwahn/brandmatebackend/internal/http/respond"
	"github.com/Robertsonwahn/brandmatebackend/internal/models"
	"github.com/Robertsonwahn/brandmatebackend/internal/storage"
)

type ctxKey string

const userKey ctxKey = "authUser"

// UserFromContext returns the authenticated identity attached by the
// verifier, if any.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}

// Verifier resolves bearer tokens to live user identities. One instance
// gates any number of routes in either required or optional mode.
type Verifier struct {
	tokens *auth.TokenManager
	users  storage.UserStore
}

// NewVerifier constructs the gate from the token manager and user store.
func NewVerifier(tokens *auth.TokenManager, users storage.UserStore) *Verifier {
	return &Verifier{tokens: tokens, users: users}
}

// Require rejects any request that does not resolve to an active user.
func (v *Verifier) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respond.Error(w, http.StatusUnauthorized, respond.CategoryUnauthenticated, "Access token required")
			return
		}
		user, err := v.resolve(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, errDeactivated):
				respond.Error(w, http.StatusUnauthorized, respond.CategoryDeactivated, "Your account has been deactivated")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, storage.ErrNotFound):
				respond.Error(w, http.StatusUnauthorized, respond.CategoryUnauthenticated, "Invalid or expired token")
			default:
				// Store outage, not a bad credential.
				log.Printf("verify session error: %v", err)
				respond.Error(w, http.StatusInternalServerError, respond.CategoryServer, "Error verifying access token")
			}
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

// Optional attaches an identity when a valid token is present and proceeds
// anonymously otherwise. It never rejects.
func (v *Verifier) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, ok := bearerToken(r); ok {
			if user, err := v.resolve(r.Context(), token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), userKey, user))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates a route on an authenticated admin identity. Must run
// inside Require.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || !user.IsAdmin() {
			respond.Error(w, http.StatusForbidden, respond.CategoryForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

var errDeactivated = errors.New("account deactivated")

func (v *Verifier) resolve(ctx context.Context, token string) (models.User, error) {
	userID, err := v.tokens.Verify(token)
	if err != nil {
		return models.User{}, err
	}
	user, err := v.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if !user.IsActive {
		return models.User{}, errDeactivated
	}
	return user, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
