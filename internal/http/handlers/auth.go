package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Robertsonwahn/brandmatebackend/internal/auth"
	"github.com/Robertsonwahn/brandmatebackend/internal/http/respond"
	"github.com/Robertsonwahn/brandmatebackend/internal/middleware"
	"github.com/Robertsonwahn/brandmatebackend/internal/models"
	"github.com/Robertsonwahn/brandmatebackend/internal/models/dto"
	"github.com/Robertsonwahn/brandmatebackend/internal/storage"
)

// AuthHandler owns the register/login/profile/logout endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

// Register attaches auth routes to the mux. Profile and logout are wrapped
// by the required-mode verifier.
func (h *AuthHandler) Register(mux *http.ServeMux, verifier *middleware.Verifier) {
	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.Handle("GET /api/auth/profile", verifier.Require(http.HandlerFunc(h.handleProfile)))
	mux.Handle("POST /api/auth/logout", verifier.Require(http.HandlerFunc(h.handleLogout)))
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, "invalid JSON payload")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, err.Error())
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("hash password error: %v", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryServer, "Error creating user account")
		return
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		Role:         models.RoleUser,
		IsActive:     true,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrEmailTaken):
			respond.Error(w, http.StatusConflict, respond.CategoryUserExists, "Email already registered")
		case errors.Is(err, storage.ErrUsernameTaken):
			respond.Error(w, http.StatusConflict, respond.CategoryUserExists, "Username already taken")
		default:
			log.Printf("create user error: %v", err)
			respond.Error(w, http.StatusInternalServerError, respond.CategoryServer, "Error creating user account")
		}
		return
	}

	token, err := h.tokens.Issue(created.ID)
	if err != nil {
		log.Printf("issue token error: %v", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryServer, "Error creating user account")
		return
	}

	respond.OK(w, http.StatusCreated, "User registered successfully", dto.AuthPayload{User: created, Token: token})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, "invalid JSON payload")
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, err.Error())
		return
	}

	user, err := h.store.FindByLoginOrEmail(r.Context(), req.Login)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Same cost and same message as a wrong password.
			auth.BurnComparison(req.Password)
			respond.Error(w, http.StatusUnauthorized, respond.CategoryAuthFailed, "Invalid credentials")
			return
		}
		log.Printf("login lookup error: %v", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryServer, "Error during login")
		return
	}

	if !user.IsActive {
		respond.Error(w, http.StatusUnauthorized, respond.CategoryDeactivated, "Your account has been deactivated")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		respond.Error(w, http.StatusUnauthorized, respond.CategoryAuthFailed, "Invalid credentials")
		return
	}

	now := time.Now().UTC()
	if err := h.store.TouchLastLogin(r.Context(), user.ID, now); err != nil {
		log.Printf("update last login error: %v", err)
	} else {
		user.LastLogin = &now
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("issue token error: %v", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryServer, "Error during login")
		return
	}

	respond.OK(w, http.StatusOK, "Login successful", dto.AuthPayload{User: user, Token: token})
}

func (h *AuthHandler) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, respond.CategoryUnauthenticated, "Access token required")
		return
	}
	respond.OK(w, http.StatusOK, "", dto.ProfilePayload{User: user})
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Tokens are not revoked server-side; logout exists so clients have a
	// uniform endpoint to notify before clearing local state.
	respond.OK(w, http.StatusOK, "Logout successful", nil)
}
