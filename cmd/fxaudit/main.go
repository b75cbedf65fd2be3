// Package main provides the CLI entry point for fxaudit.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fxaudit/fxaudit-go/pkg/fxaudit"
	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/output"
)

var (
	outDir   string
	baseName string
	pretty   bool
	noValues bool
	verbose  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fxaudit [input.xlsx]",
		Short: "Audit spreadsheet formula complexity",
		Long: `fxaudit scans every formula in an Excel workbook, classifies each one as
simple, medium, or complex, and writes JSON, CSV, and Markdown reports.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outDir, "outdir", "o", ".", "Directory for report files")
	rootCmd.Flags().StringVar(&baseName, "base", "", "Base name for report files (default: input name + \"_analysis\")")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON report")
	rootCmd.Flags().BoolVar(&noValues, "no-values", false, "Omit cached cell values from reports")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-formula classification details")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	includeValues := !noValues
	opts := fxaudit.Options{
		IncludeValues: &includeValues,
	}

	state, err := fxaudit.NewAnalyzer(opts, logger).Analyze(inputPath)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	base := baseName
	if base == "" {
		name := filepath.Base(inputPath)
		base = strings.TrimSuffix(name, filepath.Ext(name)) + "_analysis"
	}

	paths, err := output.WriteReports(state, outDir, base, pretty)
	if err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}

	fmt.Printf("Analyzed %d formulas in %s: %d simple, %d medium, %d complex\n",
		state.Total(), state.BookName,
		state.Counts[models.CategorySimple],
		state.Counts[models.CategoryMedium],
		state.Counts[models.CategoryComplex])
	fmt.Printf("Reports written: %s, %s, %s\n", paths.JSON, paths.CSV, paths.Markdown)

	return nil
}
