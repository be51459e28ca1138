// Package api is the typed HTTP client for the BrandMate backend.
// Every request runs under the client timeout so callers always reach a
// definite outcome.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Robertsonwahn/brandmatebackend/internal/models"
	"github.com/Robertsonwahn/brandmatebackend/internal/models/dto"
)

// Error is a non-2xx response decoded from the server's failure envelope.
type Error struct {
	Status   int
	Category string
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
}

// Client talks to the backend auth endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client. The timeout is mandatory; a non-positive value
// is replaced with 10 seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type authEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    dto.AuthPayload `json:"data"`
}

type profileEnvelope struct {
	Success bool               `json:"success"`
	Data    dto.ProfilePayload `json:"data"`
}

// Register creates an account and returns the issued token, user, and
// server message.
func (c *Client) Register(ctx context.Context, username, email, password string) (models.User, string, string, error) {
	body := dto.RegisterRequest{Username: username, Email: email, Password: password}
	var out authEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", body, &out); err != nil {
		return models.User{}, "", "", err
	}
	return out.Data.User, out.Data.Token, out.Message, nil
}

// Login authenticates by username or email and returns the issued token,
// user, and server message.
func (c *Client) Login(ctx context.Context, login, password string) (models.User, string, string, error) {
	body := dto.LoginRequest{Login: login, Password: password}
	var out authEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &out); err != nil {
		return models.User{}, "", "", err
	}
	return out.Data.User, out.Data.Token, out.Message, nil
}

// Profile verifies the token against the server and returns the current user.
func (c *Client) Profile(ctx context.Context, token string) (models.User, error) {
	var out profileEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", token, nil, &out); err != nil {
		return models.User{}, err
	}
	return out.Data.User, nil
}

// Logout notifies the server. The caller clears local state regardless of
// the outcome.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(encoded)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode}
		var failure struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&failure); decodeErr == nil {
			apiErr.Category = failure.Error
			apiErr.Message = failure.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
