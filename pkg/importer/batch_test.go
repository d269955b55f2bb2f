package importer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/binderyapp/bindery/pkg/books"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPending(t *testing.T) {
	t.Parallel()
	imp, db, cfg := setupTestImporter(t)
	ctx := context.Background()

	writeIncoming(t, cfg, "example_APONIX.xml", testMessage)
	writeIncoming(t, cfg, "broken.XML", "not xml")
	writeIncoming(t, cfg, "notes.txt", "ignore me")

	results, err := imp.ProcessPending(ctx)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byName := map[string]*FileResult{}
	for _, result := range results {
		byName[result.Filename] = result
	}

	good := byName["example_APONIX.xml"]
	require.NotNil(t, good)
	assert.True(t, good.Success)
	assert.Equal(t, 2, good.Imported)

	bad := byName["broken.XML"]
	require.NotNil(t, bad)
	assert.False(t, bad.Success)

	// The non-xml file stays put.
	assert.FileExists(t, filepath.Join(cfg.ImportIncomingDir, "notes.txt"))
	assert.FileExists(t, filepath.Join(cfg.ImportProcessedDir, "example_APONIX.xml"))
	assert.FileExists(t, filepath.Join(cfg.ImportFailedDir, "broken.XML"))

	list, err := books.NewService(db).ListBooks(ctx, books.ListBooksOptions{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestProcessPending_EmptyDirectory(t *testing.T) {
	t.Parallel()
	imp, _, _ := setupTestImporter(t)

	results, err := imp.ProcessPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProcessPending_MissingDirectory(t *testing.T) {
	t.Parallel()
	imp, _, cfg := setupTestImporter(t)
	cfg.ImportIncomingDir = filepath.Join(cfg.ImportIncomingDir, "does-not-exist")

	_, err := imp.ProcessPending(context.Background())
	require.Error(t, err)
}
