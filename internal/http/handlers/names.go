package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Robertsonwahn/brandmatebackend/internal/http/respond"
	"github.com/Robertsonwahn/brandmatebackend/internal/middleware"
	"github.com/Robertsonwahn/brandmatebackend/internal/models"
	"github.com/Robertsonwahn/brandmatebackend/internal/models/dto"
	"github.com/Robertsonwahn/brandmatebackend/internal/storage"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// NamesHandler owns the name-record CRUD endpoints.
type NamesHandler struct {
	store storage.NameStore
}

// NewNamesHandler constructs the handler.
func NewNamesHandler(store storage.NameStore) *NamesHandler {
	return &NamesHandler{store: store}
}

// Register attaches name routes. Submission runs under the optional-mode
// verifier so an attached identity is recorded but anonymous submission
// still works; deletion is admin-gated.
func (h *NamesHandler) Register(mux *http.ServeMux, verifier *middleware.Verifier) {
	mux.Handle("POST /api/names", verifier.Optional(http.HandlerFunc(h.handleCreate)))
	mux.HandleFunc("GET /api/names", h.handleList)
	mux.HandleFunc("GET /api/names/{id}", h.handleGet)
	mux.Handle("DELETE /api/names/{id}",
		verifier.Require(middleware.RequireAdmin(http.HandlerFunc(h.handleDelete))))
}

func (h *NamesHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, "invalid JSON payload")
		return
	}
	req.FullName = strings.TrimSpace(req.FullName)
	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryValidation, "Full name is required and cannot be empty")
		return
	}

	now := time.Now().UTC()
	record := models.NameRecord{
		ID:        uuid.New(),
		FullName:  req.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		id := user.ID
		record.CreatedBy = &id
	}

	saved, err := h.store.CreateName(r.Context(), record)
	if err != nil {
		log.Printf("save name error: %v", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryServer, "Error saving the name to database")
		return
	}

	respond.OK(w, http.StatusCreated, "Name saved successfully!", dto.NameCreatedPayload{
		ID:        saved.ID,
		Name:      saved.FullName,
		CreatedAt: saved.CreatedAt,
		Timestamp: saved.CreatedAt.Format(time.RFC3339),
	})
}

func (h *NamesHandler) handleList(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultPageSize)
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}

	records, total, err := h.store.ListNames(r.Context(), limit, (page-1)*limit)
	if err != nil {
		log.Printf("list names error: %v", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryServer, "Error retrieving names from database")
		return
	}

	payloads := make([]dto.NamePayload, 0, len(records))
	for _, record := range records {
		payloads = append(payloads, namePayload(record))
	}

	respond.JSON(w, http.StatusOK, dto.NameListResponse{
		Success:     true,
		Count:       len(records),
		TotalCount:  total,
		CurrentPage: page,
		TotalPages:  (total + limit - 1) / limit,
		Data:        payloads,
	})
}

func (h *NamesHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	record, err := h.store.FindNameByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, respond.CategoryNotFound, "Name not found")
			return
		}
		log.Printf("fetch name error: %v", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryServer, "Error retrieving name from database")
		return
	}
	respond.OK(w, http.StatusOK, "", namePayload(record))
}

func (h *NamesHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	record, err := h.store.DeleteName(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, respond.CategoryNotFound, "Name not found")
			return
		}
		log.Printf("delete name error: %v", err)
		respond.Error(w, http.StatusInternalServerError, respond.CategoryServer, "Error deleting name from database")
		return
	}
	respond.OK(w, http.StatusOK, "Name deleted successfully", namePayload(record))
}

func namePayload(record models.NameRecord) dto.NamePayload {
	return dto.NamePayload{
		ID:        record.ID,
		FullName:  record.FullName,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
		Timestamp: record.CreatedAt.Format(time.RFC3339),
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CategoryInvalidID, "Please provide a valid name ID")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
