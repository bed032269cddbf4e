package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/mdnotes"
	"github.com/aretw0/mdnotes/pkg/core"
)

var (
	listTags   string
	listRecent int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Long:  `List notes, most recently modified first, optionally filtered by tags.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize store", err)
		}

		var tags []string
		if listTags != "" {
			for _, t := range strings.Split(listTags, ",") {
				tags = append(tags, strings.TrimSpace(t))
			}
		}

		// An explicit -r, including -r 0 for unlimited, wins over the
		// settings default.
		recent := listRecent
		if !cmd.Flags().Changed("recent") {
			if settings, err := mdnotes.LoadSettings(); err == nil {
				recent = settings.Recent
			}
		}

		notes, err := svc.ListNotes(context.Background(), core.ListOptions{Tags: tags, Recent: recent})
		if err != nil {
			fatal("Failed to list notes", err)
		}

		if len(notes) == 0 {
			fmt.Println("No notes found.")
			return
		}

		fmt.Printf("Found %d notes:\n\n", len(notes))
		for i, n := range notes {
			title := n.Title
			if r := []rune(title); len(r) > 40 {
				title = string(r[:40])
			}
			if n.Tags != "" && n.Tags != core.NoTags {
				fmt.Printf("%2d. %-40s [%s]\n", i+1, title, n.Tags)
			} else {
				fmt.Printf("%2d. %s\n", i+1, title)
			}
			fmt.Printf("    %s\n", n.File)
			fmt.Printf("    %s\n\n", n.Modified.Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listTags, "tags", "t", "", "Filter by tags (comma-separated)")
	listCmd.Flags().IntVarP(&listRecent, "recent", "r", 0, "Show N most recent notes")
}
