package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/config"
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/refcheck"
)

// loadConfig reads --config and applies --log-level on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// useColor resolves --color against the output stream.
func useColor(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := cmd.OutOrStdout().(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
	}
}

type palette struct {
	ok, warn, bad, bold *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		ok:   color.New(color.FgGreen, color.Bold),
		warn: color.New(color.FgYellow),
		bad:  color.New(color.FgRed, color.Bold),
		bold: color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.ok, p.warn, p.bad, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// addRunFlags registers the flags that override config file values.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("seed", 0, "corpus seed")
	cmd.Flags().Int("count", 0, "literals per generated family")
	cmd.Flags().Int("workers", 0, "parallel workers")
	cmd.Flags().Uint64("max-ulp", 0, "largest float error still counted as a pass")
	cmd.Flags().Int("max-failures", 0, "mismatches kept in the report")
	cmd.Flags().String("dump", "", "write mismatches to this msgpack file")
}

// applyRunFlags copies the flags the user set onto cfg.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	var err error
	if fs.Changed("seed") {
		if cfg.Seed, err = fs.GetInt64("seed"); err != nil {
			return err
		}
	}
	if fs.Changed("count") {
		if cfg.Count, err = fs.GetInt("count"); err != nil {
			return err
		}
	}
	if fs.Changed("workers") {
		if cfg.Workers, err = fs.GetInt("workers"); err != nil {
			return err
		}
	}
	if fs.Changed("max-ulp") {
		if cfg.MaxULP, err = fs.GetUint64("max-ulp"); err != nil {
			return err
		}
	}
	if fs.Changed("max-failures") {
		if cfg.MaxFailures, err = fs.GetInt("max-failures"); err != nil {
			return err
		}
	}
	if fs.Changed("dump") {
		if cfg.Dump, err = fs.GetString("dump"); err != nil {
			return err
		}
	}
	return cfg.Validate()
}

func generateOptions(cfg config.Config) refcheck.GenerateOptions {
	return refcheck.GenerateOptions{
		Seed:     cfg.Seed,
		Count:    cfg.Count,
		Integers: cfg.Corpus.Integers,
		Shortest: cfg.Corpus.Shortest,
		Full:     cfg.Corpus.Full,
		Halfway:  cfg.Corpus.Halfway,
		Long:     cfg.Corpus.Long,
		Edge:     cfg.Corpus.Edge,
	}
}
