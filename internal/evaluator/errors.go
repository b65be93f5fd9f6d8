package evaluator

import "errors"

var (
	// ErrTablesUnavailable means no usable table file could be found,
	// loaded, or regenerated. The evaluator singleton latches this
	// error permanently once seen (spec.md §7).
	ErrTablesUnavailable = errors.New("evaluator: tables unavailable")

	// ErrCorruptTables means a table file failed its checksum or
	// structural validation. Load returns it directly; LoadOrGenerate
	// answers it with a single automatic regeneration instead of
	// returning it (spec.md §7).
	ErrCorruptTables = errors.New("evaluator: corrupt table file")
)
