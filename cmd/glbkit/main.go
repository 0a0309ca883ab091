package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glbkit",
		Short: "Tools for inspecting GLB binary glTF containers",
		Long: `glbkit inspects GLB binary glTF containers and computes the CRC32-C
digests the parsing pipeline uses to verify chunk integrity and deduplicate
buffers.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	}

	var checkHardware bool
	rootCmd.Flags().BoolVar(&checkHardware, "check-hardware", false, "Report checksum hardware acceleration support")

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		if checkHardware {
			checkHardwareSupport(cmd.OutOrStdout())
			return
		}
		cmd.Help()
	}

	rootCmd.AddCommand(
		newCrc32cCommand(),
		newInspectCommand(),
	)

	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
