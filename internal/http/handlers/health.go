package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Robertsonwahn/brandmatebackend/internal/http/respond"
)

// Pinger is the slice of the store the health endpoint needs.
type Pinger interface {
	Ping(ctx context.Context) error
	DatabaseName() string
}

// HealthHandler reports service and database status.
type HealthHandler struct {
	db      Pinger
	version string
}

// NewHealthHandler creates the health and root endpoint handler.
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Register wires the handler into a ServeMux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", h.handleHealth)
	mux.HandleFunc("GET /{$}", h.handleRoot)
}

func (h *HealthHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "BrandMate Backend API",
		"version": h.version,
		"status":  "running",
	})
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "connected"
	status := http.StatusOK
	overall := "healthy"
	if err := h.db.Ping(ctx); err != nil {
		dbStatus = "disconnected"
		status = http.StatusInternalServerError
		overall = "unhealthy"
	}

	respond.JSON(w, status, map[string]any{
		"status": overall,
		"database": map[string]string{
			"status": dbStatus,
			"name":   h.db.DatabaseName(),
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
