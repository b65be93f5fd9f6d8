// Command pokertables builds, inspects, and benchmarks the poker hand
// evaluation tables. It is a developer tool, not something a player
// ever runs: generating tables is a one-time, minutes-long operation
// done at build or deploy time, then loaded by the library at runtime
// (spec.md §5, §7).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerjump/internal/deck"
	"github.com/lox/pokerjump/internal/evaluator"
)

// CLI is the top-level kong command tree.
type CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info" enum:"debug,info,warn,error"`

	Generate GenerateCmd `cmd:"" help:"Build the evaluation tables from scratch and write them to disk."`
	Stats    StatsCmd    `cmd:"" help:"Print size and timing information about a generated table file."`
	Bench    BenchCmd    `cmd:"" help:"Benchmark evaluation throughput against a generated table file."`
}

// GenerateCmd builds fresh tables and persists them.
type GenerateCmd struct {
	Output string `help:"Path to write the table file to." default:"tables.bin" arg:""`
}

func (c *GenerateCmd) Run(logger *log.Logger) error {
	start := time.Now()
	t, err := evaluator.Generate(logger)
	if err != nil {
		return fmt.Errorf("generate tables: %w", err)
	}
	if err := t.Save(c.Output); err != nil {
		return fmt.Errorf("save tables: %w", err)
	}
	logger.Info("wrote tables", "path", c.Output, "elapsed", time.Since(start))
	return nil
}

// StatsCmd reports on an existing table file.
type StatsCmd struct {
	Path string `help:"Path to a table file written by generate." default:"tables.bin" arg:""`
}

func (c *StatsCmd) Run(logger *log.Logger) error {
	info, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", c.Path, err)
	}
	start := time.Now()
	_, err = evaluator.Load(c.Path)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.Path, err)
	}
	logger.Info("table file",
		"path", c.Path,
		"size_bytes", info.Size(),
		"load_time", time.Since(start),
	)
	return nil
}

// BenchCmd exercises evaluation throughput.
type BenchCmd struct {
	Path string `help:"Path to a table file written by generate." default:"tables.bin" arg:""`
	N    int    `help:"Number of random seven-card hands to evaluate." default:"1000000"`
}

func (c *BenchCmd) Run(logger *log.Logger) error {
	if err := evaluator.InitDefault(c.Path, logger); err != nil {
		return fmt.Errorf("init evaluator: %w", err)
	}
	e := evaluator.Default()

	d := deck.NewDeck()
	start := time.Now()
	for i := 0; i < c.N; i++ {
		if d.CardsRemaining() < 7 {
			d.Reset()
		}
		cards := d.DealN(7)
		var arr [7]deck.Card
		copy(arr[:], cards)
		e.Evaluate7(arr)
	}
	elapsed := time.Since(start)
	logger.Info("bench complete",
		"hands", c.N,
		"elapsed", elapsed,
		"per_hand_ns", elapsed.Nanoseconds()/int64(c.N),
	)
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Name("pokertables"),
		kong.Description("Build and inspect poker hand evaluation tables."))

	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		ctx.FatalIfErrorf(err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, ReportTimestamp: true})

	err = ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
