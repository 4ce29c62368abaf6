package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/gitrs"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print repository state as JSON",
	Long: `State inspects the enclosing repository and prints its introspection
state (handle, service, persisted configuration) as indented JSON.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		service, err := gitrs.Open(cwd, storeOpts()...)
		if err != nil {
			fatal("Failed to open repository", err)
		}

		config, err := service.Config(context.Background())
		if err != nil {
			fatal("Failed to read repository config", err)
		}

		handle := service.Handle()
		state := map[string]interface{}{
			"handle": map[string]string{
				"worktree":     handle.Worktree(),
				"control_dir":  handle.ControlDir(),
				"control_root": handle.ControlRoot(),
			},
			"service": service.State(),
			"config":  config,
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(state); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
