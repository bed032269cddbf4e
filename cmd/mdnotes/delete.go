package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [pattern]",
	Short: "Delete a note",
	Long:  `Resolve a note by ID, exact filename, or partial filename and remove it permanently.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := args[0]

		if !deleteYes && !confirmDelete() {
			return
		}

		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize store", err)
		}

		info, err := svc.DeleteNote(context.Background(), pattern)
		if err != nil {
			if reportResolution(err, pattern) {
				return
			}
			fatal("Failed to delete note", err)
		}

		fmt.Printf("Deleted: %s\n", info.File)
	},
}

// confirmDelete prompts on an interactive terminal. A non-interactive
// stdin cannot answer, so it requires --yes instead of guessing.
func confirmDelete() bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Refusing to delete without confirmation; pass --yes to proceed.")
		return false
	}

	fmt.Print("Are you sure you want to delete this note? [y/N]: ")
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		fmt.Println("Aborted.")
		return false
	}
	return true
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
