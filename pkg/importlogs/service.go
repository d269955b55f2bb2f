package importlogs

import (
	"context"
	"database/sql"
	"time"

	"github.com/binderyapp/bindery/pkg/errcodes"
	"github.com/binderyapp/bindery/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveImportLogOptions struct {
	ID *int
}

type ListImportLogsOptions struct {
	Limit    *int
	Offset   *int
	Statuses []string
}

type UpdateImportLogOptions struct {
	Columns []string
}

type ListImportErrorsOptions struct {
	ImportLogID *int
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateImportLog(ctx context.Context, log *models.ImportLog) error {
	now := time.Now()
	if log.CreatedAt.IsZero() {
		log.CreatedAt = now
	}
	log.UpdatedAt = log.CreatedAt
	if log.StartedAt.IsZero() {
		log.StartedAt = now
	}

	_, err := svc.db.
		NewInsert().
		Model(log).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) RetrieveImportLog(ctx context.Context, opts RetrieveImportLogOptions) (*models.ImportLog, error) {
	log := &models.ImportLog{}

	q := svc.db.
		NewSelect().
		Model(log)

	if opts.ID != nil {
		q = q.Where("il.id = ?", *opts.ID)
	}

	err := q.Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Import log")
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return log, nil
}

func (svc *Service) ListImportLogs(ctx context.Context, opts ListImportLogsOptions) ([]*models.ImportLog, error) {
	var list []*models.ImportLog

	q := svc.db.
		NewSelect().
		Model(&list).
		Order("il.id DESC")

	if len(opts.Statuses) > 0 {
		q = q.Where("il.status IN (?)", bun.In(opts.Statuses))
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

func (svc *Service) UpdateImportLog(ctx context.Context, log *models.ImportLog, opts UpdateImportLogOptions) error {
	log.UpdatedAt = time.Now()

	q := svc.db.
		NewUpdate().
		Model(log).
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

// CreateImportError appends one audit row to the log's error trail. Rows are
// append-only; there is no update or delete counterpart on purpose.
func (svc *Service) CreateImportError(ctx context.Context, importError *models.ImportError) error {
	if importError.CreatedAt.IsZero() {
		importError.CreatedAt = time.Now()
	}

	_, err := svc.db.
		NewInsert().
		Model(importError).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (svc *Service) ListImportErrors(ctx context.Context, opts ListImportErrorsOptions) ([]*models.ImportError, error) {
	var list []*models.ImportError

	q := svc.db.
		NewSelect().
		Model(&list).
		Order("ie.id ASC")

	if opts.ImportLogID != nil {
		q = q.Where("ie.import_log_id = ?", *opts.ImportLogID)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return list, nil
}
