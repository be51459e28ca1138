package models

import (
	"time"

	"github.com/google/uuid"
)

// NameRecord is a submitted full-name entry. CreatedBy is nil for
// anonymous submissions.
type NameRecord struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"fullName"`
	CreatedBy *uuid.UUID `json:"createdBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
