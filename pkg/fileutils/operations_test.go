package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMoveFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeTestFile(t, dir, "feed.xml", "<x/>")
	dst := filepath.Join(dir, "moved.xml")

	require.NoError(t, MoveFile(src, dst))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "<x/>", string(data))
}

func TestMoveToDir(t *testing.T) {
	t.Parallel()

	t.Run("moves into directory keeping base name", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		src := writeTestFile(t, dir, "feed.xml", "a")
		target := filepath.Join(dir, "processed")

		dst, err := MoveToDir(src, target)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(target, "feed.xml"), dst)

		_, err = os.Stat(dst)
		assert.NoError(t, err)
	})

	t.Run("uses numbered name when destination exists", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		target := filepath.Join(dir, "processed")
		require.NoError(t, EnsureDirs(target))
		writeTestFile(t, target, "feed.xml", "old")
		src := writeTestFile(t, dir, "feed.xml", "new")

		dst, err := MoveToDir(src, target)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(target, "feed (1).xml"), dst)

		data, err := os.ReadFile(filepath.Join(target, "feed.xml"))
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
	})
}

func TestUniqueFilepath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "feed.xml", "a")

	unique := UniqueFilepath(path)
	assert.Equal(t, filepath.Join(dir, "feed (1).xml"), unique)

	missing := filepath.Join(dir, "other.xml")
	assert.Equal(t, missing, UniqueFilepath(missing))
}
