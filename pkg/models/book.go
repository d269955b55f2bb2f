package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	BookStatusActive = "active"
	BookStatusDraft  = "draft"
)

// CreatedByImport tags catalog rows created by the ONIX import pipeline.
const CreatedByImport = "onix_import"

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// ISBN holds one stored value: the ISBN-13 when known, the ISBN-10
	// otherwise. ExternalID echoes the source record reference.
	ISBN       *string `json:"isbn,omitempty"`
	ExternalID *string `json:"external_id,omitempty"`

	Title           string    `bun:",nullzero" json:"title"`
	Subtitle        *string   `json:"subtitle,omitempty"`
	Author          *string   `json:"author,omitempty"`
	Contributors    []string  `json:"contributors,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Publisher       *string   `json:"publisher,omitempty"`
	Imprint         *string   `json:"imprint,omitempty"`
	PublicationDate *string   `json:"publication_date,omitempty"`
	Price           *string   `json:"price,omitempty"`
	Currency        *string   `json:"currency,omitempty"`
	Genre           *string   `json:"genre,omitempty"`
	Subjects        []string  `json:"subjects,omitempty"`
	Keywords        []string  `json:"keywords,omitempty"`
	PageCount       *int      `json:"page_count,omitempty"`
	ProductForm     *string   `json:"product_form,omitempty"`
	CoverImageURL   *string   `json:"cover_image_url,omitempty"`

	Status    string `bun:",nullzero" json:"status"`
	CreatedBy string `bun:",nullzero" json:"created_by"`
}
