// Package main provides the CLI entry point for screener-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/screener-go/internal/config"
	"github.com/ukaji3/screener-go/internal/console"
	"github.com/ukaji3/screener-go/pkg/screener"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath      string
	logLevel        string
	quiet           bool
	parquetExport   bool
	sqliteExport    bool
	includeUnlisted bool
	skipEmpty       bool
	showPercentiles bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, console.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "screener",
		Short: "Convert options-screener workbooks to JSON",
		Long: `screener converts an options-screener workbook (.xlsx) into the JSON
files used by the web application: symbols.json, screener_data.json and
metadata.json.`,
		SilenceErrors: true,
	}

	convertCmd := &cobra.Command{
		Use:   "convert <input.xlsx> [output-dir]",
		Short: "Convert a workbook to JSON files",
		Long: `Convert reads the "Symbol List" sheet and every symbol sheet of the
workbook and writes the JSON files to output-dir (default ./public/data).

Examples:
  screener convert screener.xlsx
  screener convert screener.xlsx ./public/data --parquet`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runConvert,
	}
	convertCmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	convertCmd.Flags().StringVar(&logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error")
	convertCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	convertCmd.Flags().BoolVar(&parquetExport, "parquet", false, "Also write "+screener.ParquetFile)
	convertCmd.Flags().BoolVar(&sqliteExport, "sqlite", false, "Also write "+screener.SQLiteFile)
	convertCmd.Flags().BoolVar(&includeUnlisted, "include-unlisted", false, "Add parsed sheets missing from the symbol list to symbols.json")
	convertCmd.Flags().BoolVar(&skipEmpty, "skip-empty", false, "Skip sheets without expiration rows")

	inspectCmd := &cobra.Command{
		Use:   "inspect <input.xlsx> <symbol>",
		Short: "Print the parsed data of one symbol sheet",
		Args:  cobra.ExactArgs(2),
		RunE:  runInspect,
	}
	inspectCmd.Flags().BoolVar(&showPercentiles, "percentiles", false, "Show percentile bands instead of limits")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "screener %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}

	rootCmd.AddCommand(convertCmd, inspectCmd, versionCmd)
	return rootCmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	// Arguments are valid past this point; errors are not usage errors.
	cmd.SilenceUsage = true

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, cfg)

	inputPath := args[0]
	outputDir := cfg.Output.Dir
	if len(args) > 1 {
		outputDir = args[1]
	}

	opts := screener.Options{
		IncludeUnlisted: cfg.Output.IncludeUnlisted,
		SkipEmpty:       cfg.Output.SkipEmpty,
		Parquet:         cfg.Export.Parquet,
		SQLite:          cfg.Export.SQLite,
		Logger:          console.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()),
	}
	if !cfg.Logging.Quiet {
		opts.Reporter = console.NewReporter(cmd.OutOrStdout())
	}

	if _, err := screener.Convert(cmd.Context(), inputPath, outputDir, opts); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	return nil
}

// applyFlags overrides configuration values with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("quiet") {
		cfg.Logging.Quiet = quiet
	}
	if flags.Changed("parquet") {
		cfg.Export.Parquet = parquetExport
	}
	if flags.Changed("sqlite") {
		cfg.Export.SQLite = sqliteExport
	}
	if flags.Changed("include-unlisted") {
		cfg.Output.IncludeUnlisted = includeUnlisted
	}
	if flags.Changed("skip-empty") {
		cfg.Output.SkipEmpty = skipEmpty
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	record, err := screener.InspectSheet(args[0], args[1])
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}
	console.RenderRecord(cmd.OutOrStdout(), record, showPercentiles)
	return nil
}
