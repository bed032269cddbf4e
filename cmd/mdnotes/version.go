package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/mdnotes"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mdnotes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mdnotes version %s\n", mdnotes.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
