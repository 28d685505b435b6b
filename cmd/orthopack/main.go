package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nlaurent/orthopack"
)

var (
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	runLocalSearch bool
	hsThrottle     bool
	exhaustive     bool
	orientFlag     string
	sortByFlag     string
	sortRev        bool
)

// rootCmd is the entry point for the thin CLI collaborator described in
// spec.md §6: it owns argument parsing and JSON I/O only, never packing
// logic.
var rootCmd = &cobra.Command{
	Use:   "orthopack",
	Short: "Two-dimensional rectangle bin packing and strip packing",
	Long: `orthopack runs the point-generation construction heuristic, a
2-opt local search, and a strategy hypersearch over a problem described
by a JSON file.`,
}

var solveCmd = &cobra.Command{
	Use:   "solve <problem.json>",
	Short: "Run the constructor once, optionally followed by local search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pf, err := loadProblemFile(args[0])
		if err != nil {
			return err
		}
		p, err := buildProblem(pf)
		if err != nil {
			return err
		}
		p.Logger = logger

		if strat, err := parseStrategy(pf.Strategy); err != nil {
			return err
		} else if strat != nil {
			if err := p.SetStrategy(strat); err != nil {
				return err
			}
		}

		if err := p.Solve(pf.Sequence); err != nil {
			return err
		}
		if runLocalSearch {
			if err := p.LocalSearch(true); err != nil {
				return err
			}
		}
		return printReport(p)
	},
}

var hypersearchCmd = &cobra.Command{
	Use:   "hypersearch <problem.json>",
	Short: "Enumerate point-selection strategies and retain the best solution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pf, err := loadProblemFile(args[0])
		if err != nil {
			return err
		}
		p, err := buildProblem(pf)
		if err != nil {
			return err
		}
		p.Logger = logger

		if err := p.Hypersearch(orientFlag, sortByFlag, sortRev, hsThrottle, exhaustive); err != nil {
			return err
		}
		return printReport(p)
	},
}

func printReport(p *orthopack.Problem) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report(p))
}

func init() {
	solveCmd.Flags().BoolVar(&runLocalSearch, "local-search", false, "run local search after the initial construction")

	hypersearchCmd.Flags().BoolVar(&hsThrottle, "throttle", true, "cap neighbours evaluated per local-search node")
	hypersearchCmd.Flags().BoolVar(&exhaustive, "exhaustive", true, "enumerate all 720 strategy permutations instead of a small pool")
	hypersearchCmd.Flags().StringVar(&orientFlag, "orient", "", "pre-orient items: wide, long, or empty for none")
	hypersearchCmd.Flags().StringVar(&sortByFlag, "sort-by", "", "pre-sort items: area, perimeter, longest_side_ratio, or empty for none")
	hypersearchCmd.Flags().BoolVar(&sortRev, "sort-reverse", false, "reverse the pre-sort order")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(hypersearchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
