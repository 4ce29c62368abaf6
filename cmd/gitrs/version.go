package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/gitrs"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gitrs",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gitrs version %s\n", strings.TrimSpace(gitrs.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
