package main

import (
	"fmt"
	"os"

	"github.com/aretw0/gitrs"
	"github.com/spf13/cobra"
)

var (
	initBranch      string
	initDescription string
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize a repository control store",
	Long: `Init creates the control directory skeleton inside the target worktree
(the current directory unless one is given). A missing worktree is created;
a target whose control directory already holds entries is refused.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var worktree string
		if len(args) == 1 {
			worktree = args[0]
		} else {
			cwd, err := os.Getwd()
			if err != nil {
				fatal("Failed to get CWD", err)
			}
			worktree = cwd
		}

		opts := storeOpts()
		if initBranch != "" {
			opts = append(opts, gitrs.WithDefaultBranch(initBranch))
		}
		if initDescription != "" {
			opts = append(opts, gitrs.WithDescription(initDescription))
		}

		store, err := gitrs.Init(worktree, opts...)
		if err != nil {
			fatal("Failed to initialize repository", err)
		}

		fmt.Println("Initialized empty gitrs repository in", store.Handle().ControlRoot())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initBranch, "branch", "b", "", "Initial branch name for HEAD (default \"master\")")
	initCmd.Flags().StringVar(&initDescription, "description", "", "Seed the description file with this text")
}
