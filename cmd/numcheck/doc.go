package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/refcheck"
)

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc <file.json>",
		Short: "Check every number in a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE:  runDoc,
	}
	addRunFlags(cmd)
	addFormatFlag(cmd)
	return cmd
}

func runDoc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyRunFlags(cmd, &cfg); err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	lits, err := refcheck.FromDocument(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return runCheck(cmd, cfg, lits)
}
