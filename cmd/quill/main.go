package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/quill-lang/quill/pkg/types"
)

// Config holds the tool configuration shared by all subcommands.
type Config struct {
	Debug    bool
	Universe string
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "quill",
		Short: "Inspect quill type universes",
		Long: `quill loads a type universe manifest and answers questions about the
type graph: the declared hierarchy, generated-code names, and the
results of subtyping joins.`,
		Example: `  # Dump the built-in universe
  quill dump

  # Dump a custom universe
  quill dump --universe ./universe.toml

  # Validate a manifest
  quill check ./universe.toml

  # Show the join of two types
  quill join Smi HeapNumber`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&cfg.Universe, "universe", "u", "", "Path to a universe manifest (built-in if not set)")

	rootCmd.AddCommand(dumpCmd(&cfg))
	rootCmd.AddCommand(checkCmd(&cfg))
	rootCmd.AddCommand(joinCmd(&cfg))

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func loadUniverse(cfg *Config) (*types.Registry, error) {
	if cfg.Universe != "" {
		return types.LoadUniverse(cfg.Universe)
	}
	return types.NewUniverse()
}
