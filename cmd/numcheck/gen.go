package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/refcheck"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a generated corpus, one literal per line",
		Args:  cobra.NoArgs,
		RunE:  runGen,
	}
	cmd.Flags().Int64("seed", 0, "corpus seed")
	cmd.Flags().Int("count", 0, "literals per generated family")
	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	return cmd
}

func runGen(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyRunFlags(cmd, &cfg); err != nil {
		return err
	}
	lits := refcheck.Generate(generateOptions(cfg))

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	for _, lit := range lits {
		if _, err := fmt.Fprintln(w, lit); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	newLogger(cmd.ErrOrStderr(), cfg.Logging.Level).Debug("corpus written", "literals", len(lits), "seed", cfg.Seed)
	return nil
}
