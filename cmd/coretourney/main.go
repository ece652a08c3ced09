// Command coretourney runs a CoreWar-style tournament between two
// compiled player programs on a 16x16 grid, rendered live in a terminal
// UI.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coreforge/corewar/pkg/arena"
	"github.com/coreforge/corewar/pkg/view"
)

func main() {
	var cycles int
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "coretourney",
		Short: "Run a CoreWar-style tournament between two player binaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cycles, debug)
		},
	}
	rootCmd.Flags().IntVar(&cycles, "cycles", 1000, "maximum number of ticks; at the cap the player owning more cells wins")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "dump one CPU's state alongside the board")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cycles int, debug bool) error {
	scanner := bufio.NewScanner(os.Stdin)

	p1, err := promptForBinary(scanner, "Player 1")
	if err != nil {
		return err
	}
	p2, err := promptForBinary(scanner, "Player 2")
	if err != nil {
		return err
	}

	g := arena.New()
	g.Seed(p1, p2)

	program := view.New(g, cycles, debug)
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("tournament display: %w", err)
	}

	result, ok := view.Result(finalModel)
	if !ok {
		fmt.Println("stopped before a result was reached")
		return nil
	}
	fmt.Println(result)
	return nil
}

// promptForBinary asks for a player binary's path, re-prompting on read
// failure, matching the original interactive loop's "file not found"
// retry behavior.
func promptForBinary(scanner *bufio.Scanner, label string) ([]byte, error) {
	for {
		fmt.Printf("%s: enter path to compiled program: ", label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("no input for %s", label)
		}
		path := strings.TrimSpace(scanner.Text())
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("could not read %q: %v\n", path, err)
			continue
		}
		return data, nil
	}
}
