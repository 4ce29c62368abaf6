package main

import (
	"fmt"
	"os"

	"github.com/aretw0/gitrs"
	"github.com/spf13/cobra"
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find [directory]",
	Short: "Print the worktree root of the enclosing repository",
	Long: `Find walks upward from the start directory (the current directory unless
one is given) until it meets a control directory, and prints the worktree
root that owns it. Exits with status 1 when no repository encloses the start.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var start string
		if len(args) == 1 {
			start = args[0]
		} else {
			cwd, err := os.Getwd()
			if err != nil {
				fatal("Failed to get CWD", err)
			}
			start = cwd
		}

		handle, found, err := gitrs.Discover(start, storeOpts()...)
		if err != nil {
			fatal("Failed to search for repository", err)
		}
		if !found {
			fmt.Fprintf(os.Stderr, "not a gitrs repository (or any parent): %s\n", start)
			os.Exit(1)
		}

		fmt.Println(handle.Worktree())
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
