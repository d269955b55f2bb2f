package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE books (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				isbn TEXT,
				external_id TEXT,
				title TEXT,
				subtitle TEXT,
				author TEXT,
				contributors TEXT,
				description TEXT,
				publisher TEXT,
				imprint TEXT,
				publication_date TEXT,
				price TEXT,
				currency TEXT,
				genre TEXT,
				subjects TEXT,
				keywords TEXT,
				page_count INTEGER,
				product_form TEXT,
				cover_image_url TEXT,
				status TEXT NOT NULL,
				created_by TEXT NOT NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_books_isbn ON books (isbn)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_books_external_id ON books (external_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE import_logs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				filename TEXT NOT NULL,
				filepath TEXT NOT NULL,
				status TEXT NOT NULL,
				import_source TEXT NOT NULL,
				total_books INTEGER NOT NULL DEFAULT 0,
				imported_books INTEGER NOT NULL DEFAULT 0,
				skipped_books INTEGER NOT NULL DEFAULT 0,
				error_count INTEGER NOT NULL DEFAULT 0,
				started_at TIMESTAMPTZ NOT NULL,
				completed_at TIMESTAMPTZ
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_import_logs_status ON import_logs (status)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE import_errors (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				import_log_id INTEGER REFERENCES import_logs (id) NOT NULL,
				book_identifier TEXT,
				error_type TEXT NOT NULL,
				error_message TEXT NOT NULL,
				error_details TEXT
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_import_errors_import_log_id ON import_errors (import_log_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		return nil
	}

	down := func(_ context.Context, db *bun.DB) error {
		for _, table := range []string{"import_errors", "import_logs", "books"} {
			_, err := db.Exec("DROP TABLE IF EXISTS " + table)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}
