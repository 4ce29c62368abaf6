package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/gitrs"
	"github.com/spf13/cobra"
)

var globCmd = &cobra.Command{
	Use:   "glob [pattern]",
	Short: "List control paths matching a pattern",
	Long: `Glob prints the control-root-relative paths of stored entries matching
a doublestar pattern (e.g. "refs/**" or "objects/*/*"), one per line.
Without a pattern every entry is listed.`,
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

		matches, err := service.Glob(context.Background(), pattern)
		if err != nil {
			fatal("Failed to glob", err)
		}

		for _, match := range matches {
			fmt.Println(match)
		}
	},
}

func init() {
	rootCmd.AddCommand(globCmd)
}
