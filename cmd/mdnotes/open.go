package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/mdnotes"
	"github.com/aretw0/mdnotes/pkg/editor"
)

var openCmd = &cobra.Command{
	Use:   "open [pattern]",
	Short: "Open a note in your editor",
	Long: `Resolve a note by ID, exact filename, or partial filename and open it
in the editor from $EDITOR. If the editor cannot be launched the note
content is printed instead.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := args[0]

		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize store", err)
		}

		info, err := svc.ResolveNote(context.Background(), pattern)
		if err != nil {
			if reportResolution(err, pattern) {
				return
			}
			fatal("Failed to resolve note", err)
		}

		settings, _ := mdnotes.LoadSettings()
		program := editor.Resolve(settings.Editor)
		if err := editor.Open(program, info.Path); err != nil {
			slog.Debug("editor launch failed, printing content", "editor", program, "error", err)
			fmt.Print(info.Raw)
			return
		}
		fmt.Printf("Opened: %s\n", info.File)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
