package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fenilsonani/glbkit/internal/crc32c"
	"github.com/spf13/cobra"
)

func newCrc32cCommand() *cobra.Command {
	var useGeneric bool

	cmd := &cobra.Command{
		Use:   "crc32c [file...]",
		Short: "Compute the CRC32-C digest of files or stdin",
		Long:  "Computes the CRC32-C (Castagnoli) digest the parsing pipeline uses for chunk integrity and buffer deduplication",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum := crc32c.Sum
			if useGeneric {
				sum = crc32c.SumGeneric
			}

			if len(args) == 0 {
				digest, err := digestReader(os.Stdin, sum)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%08x  -\n", digest)
				return nil
			}

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%08x  %s\n", sum(data), path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&useGeneric, "generic", false, "Force the portable table-driven backend")

	return cmd
}

func digestReader(r io.Reader, sum func([]byte) uint32) (uint32, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	return sum(data), nil
}
