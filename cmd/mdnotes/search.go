package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchTagOnly bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search notes by content or tags",
	Long:  `Case-insensitive substring search over the full note text, or over the tags header only with --tag-only.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := args[0]

		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize store", err)
		}

		results, err := svc.SearchNotes(context.Background(), query, searchTagOnly)
		if err != nil {
			fatal("Failed to search notes", err)
		}

		if len(results) == 0 {
			fmt.Printf("No notes found for: %q\n", query)
			return
		}

		fmt.Printf("Found %d notes:\n\n", len(results))
		for _, n := range results {
			fmt.Printf("- %s\n", n.Title)
			fmt.Printf("  %s\n\n", n.File)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVarP(&searchTagOnly, "tag-only", "T", false, "Search only in tags")
}
