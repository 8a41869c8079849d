// Command loess smooths noisy (x, y) samples with robust LOESS and prints
// properties of the kernels it uses.
//
// Usage:
//
//	loess smooth [flags] [file]
//	loess kernels [flags] [kernel-name ...]
//
// Input is CSV with two (x,y) or three (x,y,w) columns. Without a file
// argument, or with "-", samples are read from stdin.
//
// Examples:
//
//	loess smooth -b 0.5 data.csv
//	cat data.csv | loess smooth --format table
//	loess smooth --sort --plot fit.html data.csv
//	loess kernels --size 4097 tricube bisquare
//	loess kernels --list
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	err := newRootCommand(os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds persistent flags shared by all subcommands.
type rootOptions struct {
	verbose    bool
	configPath string
	logger     *slog.Logger
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	ro := &rootOptions{
		logger: newLogger(stderr, false),
	}

	rootCmd := &cobra.Command{
		Use:   "loess",
		Short: "Robust locally weighted scatterplot smoothing",
		Long: `loess fits a robust locally weighted regression to noisy samples.

Commands:
  smooth    Smooth x,y[,w] CSV samples
  kernels   Print properties of the weight kernels`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			ro.logger = newLogger(stderr, ro.verbose)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().BoolVarP(&ro.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&ro.configPath, "config", "", "config file (default .loess.yaml in . or $HOME)")

	rootCmd.AddCommand(newSmoothCommand(ro))
	rootCmd.AddCommand(newKernelsCommand())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "loess %s\n", version)
		},
	}
}
