package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/gitrs"
	"github.com/aretw0/gitrs/pkg/core"
	"github.com/spf13/cobra"
)

var (
	pathDir    bool
	pathCreate bool
)

// pathCmd represents the path command
var pathCmd = &cobra.Command{
	Use:   "path [target]",
	Short: "Resolve a path inside the control directory",
	Long: `Path resolves a slash-separated target (e.g. refs/heads/master) against
the control directory of the enclosing repository and prints the absolute
path. By default the target names a file; --dir treats it as a directory.

Without --create the filesystem is never touched: the path is printed and
the exit status reports presence (0) or absence (1). With --create the
directory (or the file's parent chain) is materialized first.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		segments := core.SplitTarget(args[0])

		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		service, err := gitrs.Open(cwd, storeOpts()...)
		if err != nil {
			fatal("Failed to open repository", err)
		}

		ctx := context.Background()

		if pathCreate {
			var p string
			var res core.Resolution
			if pathDir {
				p, res, err = service.EnsureDir(ctx, segments...)
			} else {
				p, res, err = service.EnsureParent(ctx, segments...)
			}
			if err != nil {
				fatal("Failed to resolve path", err)
			}
			fmt.Println(p)
			if verbose {
				fmt.Fprintf(os.Stderr, "resolution: %s\n", res)
			}
			return
		}

		var p string
		var exists bool
		if pathDir {
			p, exists, err = service.PathToDir(ctx, segments...)
		} else {
			p, exists, err = service.PathToFile(ctx, segments...)
		}
		if err != nil {
			fatal("Failed to resolve path", err)
		}

		fmt.Println(p)
		if !exists {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
	pathCmd.Flags().BoolVar(&pathDir, "dir", false, "Treat the target as a directory")
	pathCmd.Flags().BoolVar(&pathCreate, "create", false, "Create the directory (or the file's parents) when missing")
}
