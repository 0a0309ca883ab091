package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fenilsonani/glbkit/internal/glb"
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	var showExtensions bool

	cmd := &cobra.Command{
		Use:   "inspect <file.glb>",
		Short: "Show header, chunks and digests of a GLB container",
		Long:  "Parses a GLB container and prints its header, chunk layout and per-chunk CRC32-C digests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			c, err := glb.Parse(data)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "glTF version: %d\n", c.Header.Version)
			fmt.Fprintf(out, "container length: %d bytes\n", c.Header.Length)
			fmt.Fprintf(out, "JSON chunk: %d bytes, crc32c %08x\n", len(c.JSON.Data), c.JSON.Digest)
			if bin, ok := c.BIN.Get(); ok {
				fmt.Fprintf(out, "BIN chunk: %d bytes, crc32c %08x\n", len(bin.Data), bin.Digest)
			} else {
				fmt.Fprintln(out, "BIN chunk: absent")
			}

			if showExtensions {
				if err := printExtensions(out, c.JSON.Data); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showExtensions, "extensions", false, "List declared extensions and whether they are recognized")

	return cmd
}

func printExtensions(out io.Writer, jsonChunk []byte) error {
	var doc struct {
		ExtensionsUsed []string `json:"extensionsUsed"`
	}
	if err := json.Unmarshal(jsonChunk, &doc); err != nil {
		return fmt.Errorf("failed to decode JSON chunk: %w", err)
	}

	if len(doc.ExtensionsUsed) == 0 {
		fmt.Fprintln(out, "extensions: none declared")
		return nil
	}

	for _, name := range doc.ExtensionsUsed {
		if _, ok := glb.LookupExtension(name); ok {
			fmt.Fprintf(out, "extension: %s (supported)\n", name)
		} else {
			fmt.Fprintf(out, "extension: %s (unknown)\n", name)
		}
	}
	return nil
}
