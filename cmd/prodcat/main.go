// Package main provides the prodcat command-line entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vegasq/prodcat/internal/config"
	"github.com/vegasq/prodcat/internal/logger"
	"github.com/vegasq/prodcat/internal/pipeline"
	"github.com/vegasq/prodcat/output"
	"github.com/vegasq/prodcat/reader"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Build information (set via ldflags during build)
var (
	version = "dev"
	commit  = "unknown"
)

var errorLabel = color.New(color.FgRed, color.Bold)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs prodcat with args and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	exitCode := ExitSuccess

	rootCmd := &cobra.Command{
		Use:   "prodcat [flags] [file]",
		Short: "Filter and aggregate product tables",
		Long: `prodcat loads products (name, brand, price, rating) from a CSV or
Parquet file, applies an optional filter and an optional aggregate, and
prints the result as a table.

Filters compare one field with a value using <, > or =. Aggregates pick
min, max or avg of a numeric field. The filter always runs first.

Every flag can also be set through a PRODCAT_<FLAG> environment variable.`,
		Example: `  prodcat --file products.csv
  prodcat --file products.csv --filter "price>1000"
  prodcat --file products.csv --filter "brand=apple" --aggregate "rating=max"
  prodcat --file products.parquet --aggregate "price=avg" -f csv
  prodcat --schema`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A positional file is accepted when --file is not given
			if len(args) == 1 && !cmd.Flags().Changed("file") {
				if err := cmd.Flags().Set("file", args[0]); err != nil {
					return err
				}
			}

			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				printError(stderr, "%v", err)
				exitCode = ExitFailure
				return nil
			}
			exitCode = run(cfg, stdout, stderr)
			return nil
		},
	}
	config.RegisterFlags(rootCmd.Flags())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "prodcat %s (commit %s)\n", version, commit)
		},
	})

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		printError(stderr, "%v", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", rootCmd.Name())
		return ExitUsage
	}
	return exitCode
}

// run executes one configured invocation and maps its error to an exit code
func run(cfg *config.Config, stdout, stderr io.Writer) int {
	log := logger.New(cfg.Verbose)
	defer func() { _ = log.Sync() }()

	formatter, err := output.NewFormatter(cfg.Format, stdout)
	if err != nil {
		printError(stderr, "%v", err)
		return ExitFailure
	}
	p := pipeline.New(stdout, formatter, log)

	if cfg.Schema {
		if err := p.Schema(); err != nil {
			printError(stderr, "%v", err)
			return ExitFailure
		}
		return ExitSuccess
	}

	err = p.Run(pipeline.Options{
		File:      cfg.File,
		Filter:    cfg.Filter,
		Aggregate: cfg.Aggregate,
		Limit:     cfg.Limit,
	})
	if err == nil {
		return ExitSuccess
	}
	return reportError(stderr, cfg, err)
}

// reportError prints err for the user.
//
// File access errors always fail the run. Everything else is reported and
// the run still succeeds, unless strict mode is on.
func reportError(stderr io.Writer, cfg *config.Config, err error) int {
	if errors.Is(err, reader.ErrFileAccess) {
		if errors.Is(err, fs.ErrNotExist) {
			printError(stderr, "file '%s' not found", cfg.File)
			fmt.Fprintf(stderr, "Please check the file path and try again.\n")
		} else {
			printError(stderr, "%v", err)
		}
		return ExitFailure
	}

	printError(stderr, "%v", err)
	if cfg.Strict {
		return ExitFailure
	}
	return ExitSuccess
}

func printError(w io.Writer, format string, args ...interface{}) {
	_, _ = errorLabel.Fprint(w, "Error:")
	fmt.Fprintf(w, " "+format+"\n", args...)
}
