package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/refcheck"
)

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <dump>",
		Short: "Re-check the literals saved in a mismatch dump",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	addRunFlags(cmd)
	addFormatFlag(cmd)
	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	d, err := refcheck.ReadDump(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	// The dump's tolerance applies unless the command line says otherwise.
	cfg.Seed = d.Seed
	cfg.MaxULP = d.MaxULP
	if err := applyRunFlags(cmd, &cfg); err != nil {
		return err
	}
	return runCheck(cmd, cfg, d.Literals())
}
