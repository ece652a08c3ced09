// Command coreasm assembles a CoreWar-style source file into the raw
// instruction stream the tournament loader expects.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coreforge/corewar/pkg/asm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coreasm <source>",
		Short: "Assemble a CoreWar-style source file into a .bin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return assembleFile(args[0])
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func assembleFile(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer src.Close()

	bin, err := asm.Assemble(src)
	if err != nil {
		return fmt.Errorf("%s:%w", path, err)
	}

	outPath := path + ".bin"
	if err := os.WriteFile(outPath, bin, 0o644); err != nil {
		return fmt.Errorf("%s: %w", outPath, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", outPath, len(bin))
	return nil
}
