package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Robertsonwahn/brandmatebackend/internal/auth"
	"github.com/Robertsonwahn/brandmatebackend/internal/config"
	"github.com/Robertsonwahn/brandmatebackend/internal/http/handlers"
	"github.com/Robertsonwahn/brandmatebackend/internal/middleware"
	"github.com/Robertsonwahn/brandmatebackend/internal/storage"
)

// Version reported by the root endpoint.
const Version = "1.0.0"

// Store is the full persistence surface the server needs.
type Store interface {
	storage.UserStore
	storage.NameStore
	handlers.Pinger
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store Store) *Server {
	mux := http.NewServeMux()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer)
	verifier := middleware.NewVerifier(tokens, store)

	handlers.NewHealthHandler(store, Version).Register(mux)
	handlers.NewAuthHandler(store, tokens).Register(mux, verifier)
	handlers.NewNamesHandler(store).Register(mux, verifier)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
