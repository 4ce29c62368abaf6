package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/gitrs"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Stream control directory changes",
	Long: `Watch observes the control directory of the enclosing repository and
prints one line per change event until interrupted. An optional doublestar
pattern restricts which paths are reported (e.g. "refs/**").`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := "**"
		if len(args) == 1 {
			pattern = args[0]
		}

		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		service, err := gitrs.Open(cwd, storeOpts()...)
		if err != nil {
			fatal("Failed to open repository", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		events, err := service.Watch(ctx, pattern)
		if err != nil {
			fatal("Failed to start watching", err)
		}

		fmt.Fprintf(os.Stderr, "Watching %s (pattern %q). Press Ctrl+C to stop.\n", service.Handle().ControlRoot(), pattern)

		for event := range events {
			ts := time.Unix(event.Timestamp, 0).Format(time.RFC3339)
			fmt.Printf("%s %s %s\n", ts, event.Type, event.Path)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
