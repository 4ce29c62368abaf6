package main

import (
	"context"
	"os"

	"github.com/aretw0/gitrs"
	"github.com/aretw0/gitrs/pkg/core"
	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat [target]",
	Short: "Print stored content",
	Long: `Cat retrieves the payload stored under the given target, decompresses
it, and writes the raw bytes to stdout.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		service, err := gitrs.Open(cwd, storeOpts()...)
		if err != nil {
			fatal("Failed to open repository", err)
		}

		data, err := service.RetrieveFile(context.Background(), core.SplitTarget(args[0])...)
		if err != nil {
			fatal("Failed to retrieve content", err)
		}

		if _, err := os.Stdout.Write(data); err != nil {
			fatal("Failed to write output", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}
