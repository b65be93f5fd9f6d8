package evaluator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Tables bundles everything a runtime Evaluator needs: the primitive
// five-card lookup tables (C3) and the three-level jump table built on
// top of them (C5). It is rebuilt from scratch by Generate, or loaded
// from disk by Load.
type Tables struct {
	primitive *primitiveTables
	jump      *jumpTable
}

// Generate runs the complete table-building pipeline: primitive tables
// first, since the jump table's level 5 depends on them, then the
// jump table itself. This is the expensive path (spec.md §5 puts the
// one-time cost in the tens of seconds to minutes); callers normally
// call it once per deployment and then persist the result with Save.
func Generate(logger *log.Logger) (*Tables, error) {
	if logger == nil {
		logger = log.Default()
	}

	start := time.Now()
	logger.Info("building primitive tables")
	prim := buildPrimitiveTables()

	logger.Info("building jump table", "stage", "level5-7")
	jt, err := buildJumpTable(prim)
	if err != nil {
		return nil, fmt.Errorf("evaluator: generate tables: %w", err)
	}

	logger.Info("tables built",
		"elapsed", time.Since(start),
		"level5_entries", len(jt.level5.values),
		"level6_entries", len(jt.level6.values),
		"level7_entries", len(jt.level7.values),
	)

	return &Tables{primitive: prim, jump: jt}, nil
}

// Save persists t to path using the atomic write described in
// persistence.go. Only the jump table is written: the primitive tables
// are cheap enough (thousands of entries) to rebuild on every load.
func (t *Tables) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("evaluator: create table directory: %w", err)
	}
	return writeTables(path, t.jump)
}

// Load reads a jump table previously written by Save and rebuilds the
// (cheap) primitive tables alongside it.
func Load(path string) (*Tables, error) {
	jt, err := readTables(path)
	if err != nil {
		return nil, err
	}
	return &Tables{primitive: buildPrimitiveTables(), jump: jt}, nil
}

// LoadOrGenerate loads tables from path, generating and persisting a
// fresh copy if none exist yet. A missing, corrupt, or otherwise
// unloadable file gets exactly one regeneration attempt; if that
// generation fails, the returned error wraps ErrTablesUnavailable
// (spec.md §7). A failure to save the regenerated tables is logged, not
// returned.
func LoadOrGenerate(path string, logger *log.Logger) (*Tables, error) {
	if logger == nil {
		logger = log.Default()
	}

	t, err := Load(path)
	switch {
	case err == nil:
		return t, nil
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("no table file found, generating", "path", path)
	default:
		logger.Warn("table file unusable, regenerating once", "path", path, "error", err)
	}

	t, genErr := Generate(logger)
	if genErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrTablesUnavailable, genErr)
	}
	if saveErr := t.Save(path); saveErr != nil {
		logger.Warn("failed to persist generated tables", "path", path, "error", saveErr)
	}
	return t, nil
}
