package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	ImportLogStatusPending    = "pending"
	ImportLogStatusProcessing = "processing"
	ImportLogStatusCompleted  = "completed"
	ImportLogStatusFailed     = "failed"
)

// ImportLog records one import run for one file. ImportedBooks is strictly
// the new-insert count; records matched against an existing catalog row count
// as skipped whether or not the row was overwritten.
type ImportLog struct {
	bun.BaseModel `bun:"table:import_logs,alias:il"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Filename     string `bun:",nullzero" json:"filename"`
	Filepath     string `bun:",nullzero" json:"filepath"`
	Status       string `bun:",nullzero" json:"status"`
	ImportSource string `bun:",nullzero" json:"import_source"`

	TotalBooks    int `json:"total_books"`
	ImportedBooks int `json:"imported_books"`
	SkippedBooks  int `json:"skipped_books"`
	ErrorCount    int `json:"error_count"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
