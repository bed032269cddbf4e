package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var newContent string

var newCmd = &cobra.Command{
	Use:   "new [title]...",
	Short: "Create a new note",
	Long: `Create a note from the title words. Words starting with # become tags
and are stripped from the stored title.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize store", err)
		}

		created, err := svc.CreateNote(context.Background(), strings.Join(args, " "), newContent)
		if err != nil {
			fatal("Failed to create note", err)
		}

		fmt.Printf("Created note: %s\n", created.Filename)
		fmt.Printf("   Location: %s\n", created.Path)
		if len(created.Tags) > 0 {
			fmt.Printf("   Tags: %s\n", strings.Join(created.Tags, ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "Note content")
}
