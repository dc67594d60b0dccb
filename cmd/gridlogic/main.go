// Command gridlogic solves logic-grid puzzles described in YAML files.
//
// Usage:
//
//	gridlogic solve puzzle.yaml [--link] [--verbose]
//
// The file declares the categories and the declarative clues; see
// internal/puzzle for the schema. The solved assignment is printed as a
// table; --link additionally prints a jsingler.de URL displaying the
// resolved grid.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gridlogic/internal/puzzle"
	"github.com/gitrdm/gridlogic/pkg/gridlogic"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridlogic",
		Short:         "Compile and solve categorical logic-grid puzzles",
		Version:       gridlogic.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSolveCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var showLink bool
	var verbose bool
	cmd := &cobra.Command{
		Use:   "solve <puzzle.yaml>",
		Short: "Solve a puzzle file and print the assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return runSolve(cmd, log, args[0], showLink)
		},
	}
	cmd.Flags().BoolVar(&showLink, "link", false, "print a jsingler.de link for the resolved grid")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runSolve(cmd *cobra.Command, log *slog.Logger, path string, showLink bool) error {
	file, err := puzzle.Load(path)
	if err != nil {
		return err
	}
	log.Debug("puzzle loaded",
		"path", path,
		"categories", len(file.Categories),
		"clues", len(file.Clues))

	prob, err := file.Problem()
	if err != nil {
		return err
	}
	sol, err := prob.Solve()
	if errors.Is(err, gridlogic.ErrUnsatisfiable) {
		return fmt.Errorf("%s: the clues admit no solution", path)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), sol.Table())
	if showLink {
		fmt.Fprintln(cmd.OutOrStdout(), sol.Grid().Link())
	}
	return nil
}
