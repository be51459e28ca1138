// Package auth coordinates the client's authentication lifecycle: login,
// registration, startup revalidation, and logout, backed by the session
// store and the backend API.
package auth

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/Robertsonwahn/brandmatebackend/internal/client/api"
	"github.com/Robertsonwahn/brandmatebackend/internal/client/session"
	"github.com/Robertsonwahn/brandmatebackend/internal/models"
)

// Result is the outcome of a login or registration attempt. Expected
// failures come back as Success=false with a user-facing message, never
// as an error.
type Result struct {
	Success bool
	Message string
}

// State is a snapshot of the orchestrator's observable authentication
// state. IsLoading is true only until the initial CheckAuthStatus
// resolves.
type State struct {
	IsLoading       bool
	IsAuthenticated bool
	User            *models.User
}

// Manager owns the client session. Its four operations are the only way
// the session store or the in-memory state are mutated.
type Manager struct {
	api   *api.Client
	store *session.Store

	mu      sync.RWMutex
	loading bool
	token   string
	user    *models.User
}

// NewManager constructs a Manager in the loading state; call
// CheckAuthStatus once at startup to resolve it.
func NewManager(apiClient *api.Client, store *session.Store) *Manager {
	return &Manager{api: apiClient, store: store, loading: true}
}

// State returns the current observable state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return State{
		IsLoading:       m.loading,
		IsAuthenticated: m.token != "" && m.user != nil,
		User:            m.user,
	}
}

// Token returns the current bearer token, empty when unauthenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Login authenticates by username or email. On success the token and user
// are persisted and the in-memory state updated; on rejection the server
// message is surfaced and prior session state is left untouched.
func (m *Manager) Login(ctx context.Context, login, password string) Result {
	user, token, message, err := m.api.Login(ctx, login, password)
	if err != nil {
		return failure(err, "Login failed")
	}
	m.adopt(ctx, token, user)
	return Result{Success: true, Message: message}
}

// Register creates an account. The server's duplicate-identity and
// validation messages are surfaced verbatim.
func (m *Manager) Register(ctx context.Context, username, email, password string) Result {
	user, token, message, err := m.api.Register(ctx, username, email, password)
	if err != nil {
		return failure(err, "Registration failed")
	}
	m.adopt(ctx, token, user)
	return Result{Success: true, Message: message}
}

// CheckAuthStatus hydrates the session from persistent storage and, when a
// session exists, revalidates it against the profile endpoint. Any
// verification failure demotes the client to unauthenticated and clears
// the store; this is how server-side deactivation or secret rotation is
// observed. Always resolves the loading state.
func (m *Manager) CheckAuthStatus(ctx context.Context) {
	defer m.setLoaded()

	token, user, ok := m.store.Get(ctx)
	if !ok {
		return
	}

	m.mu.Lock()
	m.token = token
	m.user = &user
	m.mu.Unlock()

	fresh, err := m.api.Profile(ctx, token)
	if err != nil {
		log.Printf("auth: session revalidation failed: %v", err)
		m.reset(ctx)
		return
	}

	m.mu.Lock()
	m.user = &fresh
	m.mu.Unlock()
}

// Logout notifies the server best-effort, then unconditionally clears the
// session store and in-memory state.
func (m *Manager) Logout(ctx context.Context) {
	if token := m.Token(); token != "" {
		if err := m.api.Logout(ctx, token); err != nil {
			log.Printf("auth: logout notification failed: %v", err)
		}
	}
	m.reset(ctx)
}

func (m *Manager) adopt(ctx context.Context, token string, user models.User) {
	m.store.Set(ctx, token, user)
	m.mu.Lock()
	m.token = token
	m.user = &user
	m.mu.Unlock()
}

func (m *Manager) reset(ctx context.Context) {
	m.store.Clear(ctx)
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
}

func (m *Manager) setLoaded() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
}

func failure(err error, fallbackMessage string) Result {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = fallbackMessage
		}
		return Result{Success: false, Message: message}
	}
	return Result{Success: false, Message: "Network error. Please try again."}
}
