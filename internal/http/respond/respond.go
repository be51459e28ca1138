package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// Success is the standard wrapper for 2xx responses.
type Success struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Failure is the standard wrapper for error responses. Error carries the
// category, Message the human-readable text shown to users.
type Failure struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Error categories matching the API contract.
const (
	CategoryValidation      = "Validation error"
	CategoryUserExists      = "User exists"
	CategoryAuthFailed      = "Authentication failed"
	CategoryDeactivated     = "Account deactivated"
	CategoryUnauthenticated = "Unauthorized"
	CategoryForbidden       = "Forbidden"
	CategoryInvalidID       = "Invalid ID"
	CategoryNotFound        = "Not found"
	CategoryServer          = "Server error"
)

// OK writes a success envelope.
func OK(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Success{Success: true, Message: message, Data: data})
}

// Error writes a failure envelope.
func Error(w http.ResponseWriter, status int, category, message string) {
	write(w, status, Failure{Error: category, Message: message})
}

// JSON writes an arbitrary payload; used by endpoints whose shape predates
// the common envelope (listing, health).
func JSON(w http.ResponseWriter, status int, payload any) {
	write(w, status, payload)
}

func write(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}
