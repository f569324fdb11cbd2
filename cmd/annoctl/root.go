package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/joshuapare/annoindex/pkg/annoindex"
	"github.com/joshuapare/annoindex/pkg/types"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	yamlOut bool
	strict  bool
)

var rootCmd = &cobra.Command{
	Use:   "annoctl",
	Short: "Inspect annotation index files",
	Long: `annoctl reads annotation index files (versions 2, 3 and 6, plain or
gzip/zstd compressed) and answers which classes carry which annotations.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log decode details to stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&yamlOut, "yaml", false, "Output in YAML format")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Apply strict decode limits for untrusted files")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// logger writes to stderr; Debug records only appear with --verbose.
func logger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openOptions maps the global flags onto loader options.
func openOptions() []annoindex.Option {
	opts := []annoindex.Option{annoindex.WithLogger(logger())}
	if strict {
		opts = append(opts, annoindex.WithLimits(types.StrictLimits()))
	}
	return opts
}

func openIndex(path string) (*annoindex.File, error) {
	f, err := annoindex.Open(path, openOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	return f, nil
}

// structured reports whether output goes through printStructured.
func structured() bool { return jsonOut || yamlOut }

// printStructured writes v as JSON or YAML depending on the flags.
func printStructured(w io.Writer, v any) error {
	if yamlOut {
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printInfo prints unless in quiet mode.
func printInfo(w io.Writer, format string, args ...any) {
	if !quiet {
		fmt.Fprintf(w, format, args...)
	}
}
