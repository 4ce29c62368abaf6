package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/gitrs"
	"github.com/aretw0/gitrs/pkg/core"
	"github.com/spf13/cobra"
)

var putContent string

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put [target]",
	Short: "Store content under a control path",
	Long: `Put compresses a payload and stores it under the given slash-separated
target inside the control directory, creating missing parent directories.
The payload comes from --content, or from stdin when the flag is absent.
An existing entry at the target is overwritten.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := args[0]

		var payload []byte
		if cmd.Flags().Changed("content") {
			payload = []byte(putContent)
		} else {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			payload = data
		}

		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		service, err := gitrs.Open(cwd, storeOpts()...)
		if err != nil {
			fatal("Failed to open repository", err)
		}

		if _, err := service.UpsertFile(context.Background(), payload, core.SplitTarget(target)...); err != nil {
			fatal("Failed to store content", err)
		}

		fmt.Printf("Stored '%s' (%d bytes).\n", target, len(payload))
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
	putCmd.Flags().StringVar(&putContent, "content", "", "Payload to store (stdin is read when omitted)")
}
