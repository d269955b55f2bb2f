package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	ImportErrorTypeParse      = "parse_error"
	ImportErrorTypeValidation = "validation_error"
	ImportErrorTypeDatabase   = "database_error"
	ImportErrorTypeSystem     = "system_error"
)

// ImportError is one append-only audit row describing a failure during an
// import run. Rows are never mutated or deleted.
type ImportError struct {
	bun.BaseModel `bun:"table:import_errors,alias:ie"`

	ID          int       `bun:",pk,nullzero" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	ImportLogID int       `bun:",nullzero" json:"import_log_id"`

	// BookIdentifier is the best available of ISBN-13, ISBN-10, or record
	// reference; absent when the failing record carried none.
	BookIdentifier *string `json:"book_identifier,omitempty"`
	ErrorType      string  `bun:",nullzero" json:"error_type"`
	ErrorMessage   string  `bun:",nullzero" json:"error_message"`
	ErrorDetails   *string `json:"error_details,omitempty"`
}
