package evaluator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// tablesEnvVar, when set, overrides GeneratorConfig's configured
// directory unconditionally. It exists so operators can relocate table
// storage (to a shared volume, a faster disk) without touching
// checked-in configuration.
const tablesEnvVar = "POKER_TABLES_DIR"

// GeneratorConfig describes where generated tables live and the
// generator's tuning settings. It is read from an HCL file by
// LoadGeneratorConfig: a nested struct decoded with gohcl, defaults
// filled in for anything left unset, then validated. No other function
// in this module takes a GeneratorConfig: Generate, Load, and
// LoadOrGenerate take a path directly, and buildPerfectHash always uses
// the loadFactor constant rather than LoadFactor.
type GeneratorConfig struct {
	Directory  string    `hcl:"directory,optional"`
	LoadFactor float64   `hcl:"load_factor,optional"`
	Log        LogConfig `hcl:"log,block"`
}

// LogConfig is the logging block: a level name in the form
// charmbracelet/log parses.
type LogConfig struct {
	Level string `hcl:"level,optional"`
}

// DefaultGeneratorConfig returns the configuration used when no file is
// supplied.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Directory:  defaultTablesDir(),
		LoadFactor: loadFactor,
		Log: LogConfig{
			Level: "info",
		},
	}
}

func defaultTablesDir() string {
	if dir, ok := os.LookupEnv(tablesEnvVar); ok && dir != "" {
		return dir
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "pokerjump-tables"
	}
	return cacheDir + "/pokerjump/tables"
}

// LoadGeneratorConfig reads and decodes an HCL configuration file,
// filling in defaults for anything the file leaves unset.
func LoadGeneratorConfig(filename string) (GeneratorConfig, error) {
	cfg := DefaultGeneratorConfig()

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return cfg, fmt.Errorf("evaluator: parse %s: %w", filename, diags)
	}

	// The log block is a pointer here so a file without one decodes
	// instead of failing as a missing required block.
	var file struct {
		Directory  string     `hcl:"directory,optional"`
		LoadFactor float64    `hcl:"load_factor,optional"`
		Log        *LogConfig `hcl:"log,block"`
	}
	if diags := gohcl.DecodeBody(f.Body, nil, &file); diags.HasErrors() {
		return cfg, fmt.Errorf("evaluator: decode %s: %w", filename, diags)
	}

	if file.Directory != "" {
		cfg.Directory = file.Directory
	}
	if file.LoadFactor != 0 {
		cfg.LoadFactor = file.LoadFactor
	}
	if file.Log != nil && file.Log.Level != "" {
		cfg.Log.Level = file.Log.Level
	}

	// The environment variable always wins, even over an explicit file
	// setting, so operators can override storage location per-host
	// without editing checked-in config.
	if dir, ok := os.LookupEnv(tablesEnvVar); ok && dir != "" {
		cfg.Directory = dir
	}

	return cfg, cfg.Validate()
}

// Validate reports whether cfg is usable.
func (c GeneratorConfig) Validate() error {
	if c.Directory == "" {
		return fmt.Errorf("evaluator: config: directory must not be empty")
	}
	if c.LoadFactor <= 0 || c.LoadFactor > 1 {
		return fmt.Errorf("evaluator: config: load_factor must be in (0,1], got %v", c.LoadFactor)
	}
	return nil
}

// TablePath returns the path to the jump-table file under c.Directory.
func (c GeneratorConfig) TablePath() string {
	return c.Directory + "/jumptable.bin"
}
