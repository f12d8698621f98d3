package main

import (
	"fmt"
	"runtime"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/number"
)

type versionPayload struct {
	Tool        string `json:"tool"`
	Version     string `json:"version"`
	Go          string `json:"go"`
	Arch        string `json:"arch"`
	Accelerator string `json:"accelerator"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the build version and the selected digit accelerator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			info := versionPayload{
				Tool:        "numcheck",
				Version:     version,
				Go:          runtime.Version(),
				Arch:        runtime.GOARCH,
				Accelerator: number.Accelerator().Name(),
			}
			switch format {
			case "json":
				data, err := sonic.ConfigStd.Marshal(info)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "pretty":
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s/%s, accelerator %s)\n",
					info.Tool, info.Version, info.Go, info.Arch, info.Accelerator)
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
			return nil
		},
	}
	addFormatFlag(cmd)
	return cmd
}
