// Package main provides the CLI entry point for pagegrid.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pagegrid/pagegrid"
	"github.com/pagegrid/pagegrid/render"
	"github.com/pagegrid/pagegrid/store"
	"github.com/pagegrid/pagegrid/tables"
)

var (
	headerPatterns []string
	page           int
	bias           string
	transpose      bool
	noMerge        bool
	format         string
	pretty         bool
	outputPath     string
	dbPath         string
	dbTable        string
	verbose        bool
)

func main() {
	// Optional .env for defaults such as PAGEGRID_DB.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "pagegrid [input.pdf]",
		Short: "Reconstruct tabular data from a PDF page",
		Long: `pagegrid locates a table's header row by content patterns, assigns
every positioned text fragment to its header column, and merges rows
that were split by wrapped cell text.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringArrayVarP(&headerPatterns, "header", "H", nil,
		"Header pattern (regular expression), repeat once per column group")
	rootCmd.Flags().IntVarP(&page, "page", "p", 1, "Page to reconstruct (1-indexed)")
	rootCmd.Flags().StringVar(&bias, "bias", "centered", "Heading bias: centered or min")
	rootCmd.Flags().BoolVar(&transpose, "transpose", false, "Reconstruct a transposed (column) table")
	rootCmd.Flags().BoolVar(&noMerge, "no-merge", false, "Keep rows split by wrapped cells separate")
	rootCmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, csv, json, xlsx")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&dbPath, "db", os.Getenv("PAGEGRID_DB"), "SQLite database to persist rows into")
	rootCmd.Flags().StringVar(&dbTable, "db-table", "rows", "Database table name")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	if len(headerPatterns) == 0 {
		return fmt.Errorf("at least one --header pattern is required")
	}

	var headingBias tables.Bias
	switch bias {
	case "centered":
		headingBias = tables.BiasCentered
	case "min":
		headingBias = tables.BiasMin
	default:
		return fmt.Errorf("invalid bias: %s (must be centered or min)", bias)
	}

	extractor := pagegrid.Open(inputPath).
		Page(page).
		Headers(headerPatterns...).
		Bias(headingBias)
	if transpose {
		extractor = extractor.Transpose()
	}
	if noMerge {
		extractor = extractor.NoMerge()
	}

	result, warnings, err := extractor.Table()
	if err != nil {
		return fmt.Errorf("reconstruction failed: %w", err)
	}

	for _, w := range warnings {
		logger.Warn("extraction warning", zap.String("warning", w.String()))
	}
	logger.Debug("table reconstructed",
		zap.Int("page", page),
		zap.Int("columns", len(result.Headers)),
		zap.Int("rows", len(result.Rows)))

	if err := writeOutput(result); err != nil {
		return err
	}

	if dbPath != "" {
		if err := persist(logger, result); err != nil {
			return fmt.Errorf("persisting rows: %w", err)
		}
	}

	return nil
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func writeOutput(result *pagegrid.Table) error {
	if format == "xlsx" {
		if outputPath == "" {
			return fmt.Errorf("xlsx output requires --output")
		}
		return render.XLSX(outputPath, result.Headers, result.Rows)
	}

	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "table":
		render.Table(w, result.Headers, result.Rows)
		return nil
	case "csv":
		return render.CSV(w, result.Headers, result.Rows)
	case "json":
		return render.JSON(w, result.Rows, pretty)
	default:
		return fmt.Errorf("invalid format: %s (must be table, csv, json, or xlsx)", format)
	}
}

func persist(logger *zap.Logger, result *pagegrid.Table) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	ids, err := s.SaveRows(dbTable, result.Headers, result.Rows, store.InsertOptions{})
	if err != nil {
		return err
	}

	logger.Info("rows persisted",
		zap.String("db", dbPath),
		zap.String("table", dbTable),
		zap.Int("count", len(ids)))
	return nil
}
