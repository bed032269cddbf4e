package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/mdnotes"
	"github.com/aretw0/mdnotes/pkg/core"
)

var (
	verbose  bool
	notesDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mdnotes",
	Short: "A simple markdown note manager",
	Long: `mdnotes creates, lists, searches, opens and deletes short markdown
notes stored as individual files in a per-user directory, and reports
aggregate statistics over the collection.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newService wires a note service rooted at the directory from --dir (or
// the usual fallbacks) with the process logger.
func newService() (*core.Service, error) {
	return mdnotes.New(notesDir, mdnotes.WithLogger(slog.Default()))
}

// reportResolution prints NotFound and Ambiguous outcomes as plain user
// messages. Neither is a process failure. Returns true when the error was
// one of the two.
func reportResolution(err error, pattern string) bool {
	if errors.Is(err, core.ErrNotFound) {
		fmt.Printf("Note not found: %s\n", pattern)
		return true
	}
	var ambiguous *core.AmbiguousError
	if errors.As(err, &ambiguous) {
		fmt.Println("Multiple matches found:")
		for _, name := range ambiguous.Matches {
			fmt.Printf("  - %s\n", name)
		}
		return true
	}
	return false
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&notesDir, "dir", "d", "", "Notes directory (defaults to MDNOTES_DIR, the settings file, or ~/.md-notes)")
}
