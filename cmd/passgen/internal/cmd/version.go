package cmd

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// ldflags inserts the version here on release
var version string

func Version() string {
	if version == "" {
		version = "0.0.0-dev"

		info, ok := debug.ReadBuildInfo()
		if !ok {
			slog.Debug("debug.ReadBuildInfo failed")
			return version
		}
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}

	return version
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the passgen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version())
		},
	}
}
