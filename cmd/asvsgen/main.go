// Package main provides the CLI entry point for asvsgen.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"asvsgen/pkg/asvs"
	"asvsgen/pkg/asvs/fetch"
	"asvsgen/pkg/asvs/parser"
	"asvsgen/pkg/asvs/workbook"
)

var (
	asvsVersion int
	outputPath  string
	timeout     time.Duration
	verbose     bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "asvsgen",
		Short: "Generate an OWASP ASVS compliance tracking workbook",
		Long: `asvsgen downloads an OWASP ASVS requirements catalog (version 4 or 5)
and generates an .xlsx workbook for tracking fulfilment: one worksheet per
chapter with a constrained Fulfilled column, plus a Summary worksheet with
live per-level statistics and a fulfilment chart.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	rootCmd.Flags().IntVarP(&asvsVersion, "asvs-version", "a", int(asvs.DefaultVersion), "ASVS version (4 or 5)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output .xlsx file path (default: per-version file name)")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", fetch.DefaultTimeout, "Catalog download timeout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if outputPath != "" && !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		return fmt.Errorf("output file must have a .xlsx extension")
	}

	version := asvs.Version(asvsVersion)
	src, err := asvs.SourceFor(version)
	if err != nil {
		return err
	}

	path := outputPath
	if path == "" {
		path = src.DefaultOutput
	}

	return generate(cmd.Context(), src, version, path, timeout)
}

// generate runs the pipeline: fetch the catalog CSV, parse it into chapters,
// build the workbook, and write it to path.
func generate(ctx context.Context, src asvs.Source, version asvs.Version, path string, timeout time.Duration) error {
	logger.Info("downloading ASVS catalog",
		zap.Int("version", int(version)),
		zap.String("url", src.CSVURL))
	raw, err := fetch.New(timeout).Fetch(ctx, src.CSVURL)
	if err != nil {
		return err
	}

	logger.Info("parsing catalog")
	catalog, err := parser.Parse(raw, version)
	if err != nil {
		return err
	}
	logger.Debug("catalog parsed",
		zap.Int("chapters", len(catalog.Chapters)),
		zap.Int("requirements", catalog.Total()))

	logger.Info("creating workbook")
	wb, err := workbook.Build(catalog)
	if err != nil {
		return err
	}
	defer wb.Close()

	if err := workbook.Write(wb, path); err != nil {
		return err
	}

	logger.Info("workbook saved", zap.String("path", path))
	return nil
}
