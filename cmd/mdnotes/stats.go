package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics about your notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize store", err)
		}

		stats, err := svc.Stats(context.Background())
		if err != nil {
			fatal("Failed to compute statistics", err)
		}

		if stats.TotalNotes == 0 {
			fmt.Println("No notes found.")
			return
		}

		fmt.Println("Notes statistics")
		fmt.Println()
		fmt.Printf("Total notes: %d\n", stats.TotalNotes)
		fmt.Printf("Total size: %.1f KB\n", float64(stats.TotalSize)/1024)
		fmt.Printf("Oldest note: %s (%s)\n", stats.Oldest.File, stats.Oldest.Modified.Format("2006-01-02"))
		fmt.Printf("Newest note: %s (%s)\n", stats.Newest.File, stats.Newest.Modified.Format("2006-01-02"))

		if len(stats.TagCounts) > 0 {
			fmt.Printf("\nTags (%d unique):\n", len(stats.TagCounts))
			for _, tc := range stats.TopTags(10) {
				fmt.Printf("  #%s: %d notes\n", tc.Tag, tc.Count)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
