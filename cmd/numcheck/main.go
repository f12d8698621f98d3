// Command numcheck checks the number parser against a correctly rounded
// reference over generated corpora, JSON documents and saved mismatches.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

// errFailures makes the process exit non-zero without an extra message.
var errFailures = errors.New("numcheck: mismatches found")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "numcheck",
		Short:         "Differential checker for the JSON number parser",
		Long:          `numcheck runs number literals through the fast parser and through encoding/json + strconv, and reports every disagreement.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "path to a numcheck.toml file")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error); overrides the config file")

	root.AddCommand(newGenCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newDocCmd())
	root.AddCommand(newReplayCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailures) {
			fmt.Fprintln(os.Stderr, "numcheck:", err)
		}
		os.Exit(1)
	}
}
