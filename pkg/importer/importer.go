package importer

import (
	"context"
	"path/filepath"
	"time"

	"github.com/binderyapp/bindery/pkg/books"
	"github.com/binderyapp/bindery/pkg/config"
	"github.com/binderyapp/bindery/pkg/errcodes"
	"github.com/binderyapp/bindery/pkg/fileutils"
	"github.com/binderyapp/bindery/pkg/importlogs"
	"github.com/binderyapp/bindery/pkg/models"
	"github.com/binderyapp/bindery/pkg/onix"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/robinjoseph08/golib/pointerutil"
	"github.com/segmentio/encoding/json"
	"github.com/uptrace/bun"
)

// Importer runs the ONIX import pipeline: parse one file, reconcile every
// product against the catalog, and leave an audit trail per file and per
// failed record. Processing is strictly sequential; the identity
// lookup-then-upsert pair is not safe to run concurrently for the same book.
type Importer struct {
	config      *config.Config
	bookService *books.Service
	logService  *importlogs.Service
}

func New(cfg *config.Config, db *bun.DB) *Importer {
	return &Importer{
		config:      cfg,
		bookService: books.NewService(db),
		logService:  importlogs.NewService(db),
	}
}

// ProcessFile imports one ONIX file and returns its structured result. All
// failures, from a malformed file down to a single record's insert error, are
// captured in the result and the import log; none of them propagate. The
// source file leaves the incoming directory exactly once, at the end of the
// run, whatever the outcome.
func (imp *Importer) ProcessFile(ctx context.Context, path string) (result *FileResult) {
	start := time.Now()
	filename := filepath.Base(path)
	log := logger.FromContext(ctx).Data(logger.Data{"filename": filename})

	result = &FileResult{Filename: filename}

	importLog := &models.ImportLog{
		Filename:     filename,
		Filepath:     path,
		Status:       models.ImportLogStatusProcessing,
		ImportSource: DetectSource(filename, imp.config.ImportSources),
		StartedAt:    start,
	}
	if err := imp.logService.CreateImportLog(ctx, importLog); err != nil {
		// Without a log row there is nothing to audit against, so this is the
		// one failure that leaves the file in place.
		log.Err(err).Error("failed to create import log")
		result.Errors = append(result.Errors, err.Error())
		result.Duration = time.Since(start)
		return result
	}
	result.ImportLogID = importLog.ID

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := errors.Errorf("unexpected failure: %v", r)
		log.Error("import run panicked", logger.Data{"error": err.Error()})
		imp.recordError(ctx, importLog, "", models.ImportErrorTypeSystem, err.Error(), nil)
		importLog.ErrorCount++
		imp.finalize(ctx, log, importLog, models.ImportLogStatusFailed)
		imp.relocate(ctx, log, importLog)
		imp.fill(result, importLog)
		result.Errors = append(result.Errors, err.Error())
		result.Duration = time.Since(start)
	}()

	parsed, err := onix.ParseFile(path)
	if err != nil {
		errType := models.ImportErrorTypeSystem
		var parseErr *onix.ParseError
		if errors.As(err, &parseErr) {
			errType = models.ImportErrorTypeParse
			if parseErr.Source != "" {
				importLog.ImportSource = parseErr.Source
			}
		}
		log.Err(err).Warn("file could not be parsed")
		imp.recordError(ctx, importLog, "", errType, err.Error(), nil)
		importLog.ErrorCount = 1
		imp.finalize(ctx, log, importLog, models.ImportLogStatusFailed)
		imp.relocate(ctx, log, importLog)
		imp.fill(result, importLog)
		result.Errors = append(result.Errors, err.Error())
		result.Duration = time.Since(start)
		return result
	}

	if parsed.Source != "" {
		importLog.ImportSource = parsed.Source
	}
	importLog.TotalBooks = len(parsed.Books)

	for _, pb := range parsed.Books {
		if err := imp.importBook(ctx, importLog, pb); err != nil {
			log.Err(err).Warn("record failed", logger.Data{"identifier": pb.Identifier()})
			imp.recordBookError(ctx, importLog, pb, err)
			importLog.ErrorCount++
			result.Errors = append(result.Errors, err.Error())
		}
	}

	status := models.ImportLogStatusCompleted
	if importLog.TotalBooks > 0 && importLog.ErrorCount == importLog.TotalBooks {
		status = models.ImportLogStatusFailed
	}
	imp.finalize(ctx, log, importLog, status)
	imp.relocate(ctx, log, importLog)

	imp.fill(result, importLog)
	result.Success = status == models.ImportLogStatusCompleted
	result.Duration = time.Since(start)

	log.Info("finished import file", logger.Data{
		"status":   status,
		"total":    importLog.TotalBooks,
		"imported": importLog.ImportedBooks,
		"skipped":  importLog.SkippedBooks,
		"errors":   importLog.ErrorCount,
	})
	return result
}

// importBook reconciles one parsed record against the catalog: insert when
// its identity is unknown, update (or leave untouched, depending on
// configuration) when it matches an existing row. Either way a matched record
// counts as skipped, never as imported.
func (imp *Importer) importBook(ctx context.Context, importLog *models.ImportLog, pb *onix.ParsedBook) error {
	existing, err := imp.findExisting(ctx, pb)
	if err != nil {
		return err
	}

	if existing == nil {
		book := &models.Book{
			Status:    models.BookStatusActive,
			CreatedBy: models.CreatedByImport,
		}
		applyParsed(book, pb)
		if err := imp.bookService.CreateBook(ctx, book); err != nil {
			return err
		}
		importLog.ImportedBooks++
		return nil
	}

	if imp.updateExisting() {
		applyParsed(existing, pb)
		if err := imp.bookService.UpdateBook(ctx, existing, books.UpdateBookOptions{}); err != nil {
			return err
		}
	}
	importLog.SkippedBooks++
	return nil
}

// findExisting looks the record up by identity priority: ISBN-13, then
// ISBN-10, then record reference. A record with none of the three can never
// match and is always new.
func (imp *Importer) findExisting(ctx context.Context, pb *onix.ParsedBook) (*models.Book, error) {
	var lookups []books.RetrieveBookOptions
	if pb.ISBN13 != "" {
		lookups = append(lookups, books.RetrieveBookOptions{ISBN: pointerutil.String(pb.ISBN13)})
	}
	if pb.ISBN10 != "" {
		lookups = append(lookups, books.RetrieveBookOptions{ISBN: pointerutil.String(pb.ISBN10)})
	}
	if pb.RecordReference != "" {
		lookups = append(lookups, books.RetrieveBookOptions{ExternalID: pointerutil.String(pb.RecordReference)})
	}

	for _, opts := range lookups {
		book, err := imp.bookService.RetrieveBook(ctx, opts)
		if err != nil {
			if errors.Is(err, errcodes.NotFound("Book")) {
				continue
			}
			return nil, err
		}
		return book, nil
	}
	return nil, nil
}

func (imp *Importer) updateExisting() bool {
	return imp.config.ImportUpdateExisting == nil || *imp.config.ImportUpdateExisting
}

// finalize moves the log to its terminal status. CompletedAt is set exactly
// once; a second call (e.g. from the panic handler after a finalized run) is
// a no-op.
func (imp *Importer) finalize(ctx context.Context, log logger.Logger, importLog *models.ImportLog, status string) {
	if importLog.CompletedAt != nil {
		return
	}
	importLog.Status = status
	importLog.CompletedAt = pointerutil.Time(time.Now())
	if err := imp.logService.UpdateImportLog(ctx, importLog, importlogs.UpdateImportLogOptions{}); err != nil {
		log.Err(err).Error("failed to finalize import log")
	}
}

// relocate moves the source file out of the incoming directory: failed runs
// to the failed directory, everything else to processed. A move failure is
// logged but never changes the already-finalized log status.
func (imp *Importer) relocate(ctx context.Context, log logger.Logger, importLog *models.ImportLog) {
	dir := imp.config.ImportProcessedDir
	if importLog.Status == models.ImportLogStatusFailed {
		dir = imp.config.ImportFailedDir
	}
	if _, err := fileutils.MoveToDir(importLog.Filepath, dir); err != nil {
		log.Err(err).Error("failed to move import file", logger.Data{"dir": dir})
	}
}

func (imp *Importer) recordBookError(ctx context.Context, importLog *models.ImportLog, pb *onix.ParsedBook, cause error) {
	details := map[string]string{}
	if pb.Title != "" {
		details["title"] = pb.Title
	}
	if pb.Author != "" {
		details["author"] = pb.Author
	}
	imp.recordError(ctx, importLog, pb.Identifier(), models.ImportErrorTypeDatabase, cause.Error(), details)
}

func (imp *Importer) recordError(ctx context.Context, importLog *models.ImportLog, identifier, errType, message string, details map[string]string) {
	importError := &models.ImportError{
		ImportLogID:  importLog.ID,
		ErrorType:    errType,
		ErrorMessage: message,
	}
	if identifier != "" {
		importError.BookIdentifier = pointerutil.String(identifier)
	}
	if len(details) > 0 {
		if data, err := json.Marshal(details); err == nil {
			importError.ErrorDetails = pointerutil.String(string(data))
		}
	}

	if err := imp.logService.CreateImportError(ctx, importError); err != nil {
		logger.FromContext(ctx).Err(err).Error("failed to record import error")
	}
}

func (imp *Importer) fill(result *FileResult, importLog *models.ImportLog) {
	result.Total = importLog.TotalBooks
	result.Imported = importLog.ImportedBooks
	result.Skipped = importLog.SkippedBooks
	result.Errored = importLog.ErrorCount
}

// applyParsed overwrites the catalog row's imported fields with the parsed
// record. The stored ISBN is the ISBN-13 when known, the ISBN-10 otherwise.
func applyParsed(book *models.Book, pb *onix.ParsedBook) {
	book.ISBN = optional(pb.ISBN13)
	if book.ISBN == nil {
		book.ISBN = optional(pb.ISBN10)
	}
	book.ExternalID = optional(pb.RecordReference)
	book.Title = pb.Title
	book.Subtitle = optional(pb.Subtitle)
	book.Author = optional(pb.Author)
	book.Contributors = pb.Contributors
	book.Description = optional(pb.Description)
	book.Publisher = optional(pb.Publisher)
	book.Imprint = optional(pb.Imprint)
	book.PublicationDate = optional(pb.PublicationDate)
	book.Price = optional(pb.Price)
	book.Currency = optional(pb.Currency)
	book.Genre = optional(pb.Genre)
	book.Subjects = pb.Subjects
	book.Keywords = pb.Keywords
	book.PageCount = pb.PageCount
	book.ProductForm = optional(pb.ProductForm)
	book.CoverImageURL = optional(pb.CoverImageURL)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return pointerutil.String(s)
}
