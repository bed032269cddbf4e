package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Watch the notes directory for changes",
	Long:  `Stream create/modify/delete events for note files until interrupted. The optional glob pattern defaults to *.md.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := "*.md"
		if len(args) == 1 {
			pattern = args[0]
		}

		svc, err := newService()
		if err != nil {
			fatal("Failed to initialize store", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := svc.Watch(ctx, pattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}
		slog.Debug("watcher started", "pattern", pattern, "state", svc.State())

		fmt.Println("Watching for changes (Ctrl+C to stop)...")
		for e := range events {
			fmt.Printf("%s  %s\n", time.Unix(e.Timestamp, 0).Format("15:04:05"), e)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
