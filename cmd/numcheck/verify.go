package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/refcheck"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Check literals from a file (- for stdin) or a generated corpus",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runVerify,
	}
	addRunFlags(cmd)
	addFormatFlag(cmd)
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyRunFlags(cmd, &cfg); err != nil {
		return err
	}

	var lits []string
	switch {
	case len(args) == 0:
		lits = refcheck.Generate(generateOptions(cfg))
	case args[0] == "-":
		lits, err = readLiterals(cmd.InOrStdin())
	default:
		lits, err = readLiteralFile(args[0])
	}
	if err != nil {
		return err
	}
	return runCheck(cmd, cfg, lits)
}

func readLiteralFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lits, err := readLiterals(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lits, nil
}
