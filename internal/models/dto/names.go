package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

type SubmitNameRequest struct {
	FullName string `json:"fullName"`
}

// Validate runs validation rules over the name submission payload.
func (r SubmitNameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 100)),
	)
}

// NameCreatedPayload is the data section returned on submission. The
// create response labels the value `name`; list and detail use `fullName`.
type NameCreatedPayload struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Timestamp string    `json:"timestamp"`
}

// NamePayload is the data section for a single name record.
type NamePayload struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
	Timestamp string    `json:"timestamp"`
}

// NameListResponse is the paginated listing envelope for name records.
type NameListResponse struct {
	Success     bool          `json:"success"`
	Count       int           `json:"count"`
	TotalCount  int           `json:"totalCount"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	Data        []NamePayload `json:"data"`
}
