package books

import (
	"context"
	"database/sql"
	"time"

	"github.com/binderyapp/bindery/pkg/errcodes"
	"github.com/binderyapp/bindery/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveBookOptions struct {
	ID         *int
	ISBN       *string
	ExternalID *string
}

type ListBooksOptions struct {
	Limit  *int
	Offset *int
	Status *string
}

type UpdateBookOptions struct {
	// Columns restricts the update to the named columns; empty means the
	// whole row is overwritten.
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateBook(ctx context.Context, book *models.Book) error {
	now := time.Now()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = book.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(book).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) RetrieveBook(ctx context.Context, opts RetrieveBookOptions) (*models.Book, error) {
	book := &models.Book{}

	q := svc.db.
		NewSelect().
		Model(book)

	if opts.ID != nil {
		q = q.Where("b.id = ?", *opts.ID)
	}
	if opts.ISBN != nil {
		q = q.Where("b.isbn = ?", *opts.ISBN)
	}
	if opts.ExternalID != nil {
		q = q.Where("b.external_id = ?", *opts.ExternalID)
	}

	err := q.Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Book")
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return book, nil
}

func (svc *Service) ListBooks(ctx context.Context, opts ListBooksOptions) ([]*models.Book, error) {
	var list []*models.Book

	q := svc.db.
		NewSelect().
		Model(&list).
		Order("b.id ASC")

	if opts.Status != nil {
		q = q.Where("b.status = ?", *opts.Status)
	}
	if opts.Limit != nil {
		q = q.Limit(*opts.Limit)
	}
	if opts.Offset != nil {
		q = q.Offset(*opts.Offset)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return list, nil
}

func (svc *Service) UpdateBook(ctx context.Context, book *models.Book, opts UpdateBookOptions) error {
	book.UpdatedAt = time.Now()

	q := svc.db.
		NewUpdate().
		Model(book).
		WherePK().
		Returning("*")

	if len(opts.Columns) > 0 {
		q = q.Column(append(opts.Columns, "updated_at")...)
	}

	_, err := q.Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
