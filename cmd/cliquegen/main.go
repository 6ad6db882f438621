// Command cliquegen regenerates the benchmark suite and converts between
// the SNAP and DIMACS edge-list encodings. It is a thin shell around the
// library packages: all algorithmic content lives there, the CLI only
// resolves configuration, creates directories, and writes files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var (
		outDir     string
		format     string
		configPath string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "cliquegen",
		Short: "Generate and convert maximum-clique benchmark graphs",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the benchmark suite (deterministic, seeds fixed in the catalog)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(outDir, format, configPath)
		},
	}
	generateCmd.Flags().StringVar(&outDir, "out", "datasets", "Output directory")
	generateCmd.Flags().StringVar(&format, "format", "snap", "Output format: snap or dimacs")
	generateCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML catalog overriding the default suite")

	convertCmd := &cobra.Command{
		Use:   "convert <input.snap> <output.dimacs>",
		Short: "Convert a SNAP edge list to DIMACS",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], args[1])
		},
	}

	rootCmd.AddCommand(generateCmd, convertCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
