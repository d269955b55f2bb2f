package importer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
)

// ProcessPending imports every .xml file currently in the incoming directory,
// one at a time. Per-file failures are captured in each file's result; the
// only error that propagates is failing to read the directory itself.
func (imp *Importer) ProcessPending(ctx context.Context) ([]*FileResult, error) {
	start := time.Now()
	batchID := uuid.New().String()
	log := logger.FromContext(ctx).Data(logger.Data{"batch_id": batchID})

	entries, err := os.ReadDir(imp.config.ImportIncomingDir)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var results []*FileResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}
		path := filepath.Join(imp.config.ImportIncomingDir, entry.Name())
		imp.sniff(log, path)
		results = append(results, imp.ProcessFile(log.WithContext(ctx), path))
	}

	imported := 0
	errored := 0
	for _, result := range results {
		imported += result.Imported
		errored += result.Errored
	}
	log.Info("finished import batch", logger.Data{
		"files":    len(results),
		"imported": imported,
		"errors":   errored,
		"duration": time.Since(start).String(),
	})
	return results, nil
}

// sniff warns when a file's content doesn't look like XML. The file is still
// processed; the parser's own error handling decides its fate.
func (imp *Importer) sniff(log logger.Logger, path string) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return
	}
	if !mtype.Is("text/xml") && !mtype.Is("application/xml") {
		log.Warn("file extension is .xml but content is not", logger.Data{
			"filename": filepath.Base(path),
			"detected": mtype.String(),
		})
	}
}
