package evaluator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadTablesRoundTrip(t *testing.T) {
	_, jt := testTables(t)

	path := filepath.Join(t.TempDir(), "tables.bin")
	require.NoError(t, writeTables(path, jt))

	got, err := readTables(path)
	require.NoError(t, err)

	assert.Equal(t, jt.level5.values, got.level5.values)
	assert.Equal(t, jt.level6.values, got.level6.values)
	assert.Equal(t, jt.level7.values, got.level7.values)
}

func TestReadTablesDetectsCorruption(t *testing.T) {
	_, jt := testTables(t)

	path := filepath.Join(t.TempDir(), "tables.bin")
	require.NoError(t, writeTables(path, jt))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[len(data)-1] ^= 0xFF // flip a body byte without touching the header
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = readTables(path)
	require.ErrorIs(t, err, ErrCorruptTables)
}

func TestReadTablesMissingFile(t *testing.T) {
	_, err := readTables(filepath.Join(t.TempDir(), "missing.bin"))
	require.ErrorIs(t, err, ErrTablesUnavailable)
}

func TestWriteTablesIsAtomic(t *testing.T) {
	_, jt := testTables(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "tables.bin")
	require.NoError(t, writeTables(path, jt))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files should remain after a successful write")
}
