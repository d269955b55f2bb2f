package importer

import "time"

// FileResult is the structured outcome of processing one file. Business
// failures never surface as returned errors; they are captured here and in
// the file's import log.
type FileResult struct {
	Filename    string        `json:"filename"`
	ImportLogID int           `json:"import_log_id"`
	Success     bool          `json:"success"`
	Total       int           `json:"total"`
	Imported    int           `json:"imported"`
	Skipped     int           `json:"skipped"`
	Errored     int           `json:"errored"`
	Errors      []string      `json:"errors,omitempty"`
	Duration    time.Duration `json:"duration"`
}
