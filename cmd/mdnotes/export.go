package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/mdnotes/pkg/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [pattern]",
	Short: "Export a note as HTML",
	Long:  `Resolve a note and render its markdown to HTML, to stdout or to a file with --output.`,
	Args:  cobra.ExactArgs(1),
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

		html, err := export.HTML([]byte(info.Raw))
		if err != nil {
			fatal("Failed to render note", err)
		}

		if exportOutput == "" {
			os.Stdout.Write(html)
			return
		}
		if err := os.WriteFile(exportOutput, html, 0644); err != nil {
			fatal("Failed to write output file", err)
		}
		fmt.Printf("Exported %s to %s\n", info.File, exportOutput)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write HTML to this file instead of stdout")
}
