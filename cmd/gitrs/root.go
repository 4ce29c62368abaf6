package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/gitrs"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	controlDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitrs",
	Short: "Manage the on-disk control store of a gitrs repository",
	Long: `gitrs maintains the control directory of a repository.
It materializes the standard skeleton, resolves paths inside the control
directory, and persists zlib-compressed content under arbitrary control paths.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// storeOpts assembles the options every subcommand passes to the library.
func storeOpts() []gitrs.Option {
	opts := []gitrs.Option{gitrs.WithLogger(slog.Default())}
	if controlDir != "" {
		opts = append(opts, gitrs.WithControlDir(controlDir))
	}
	return opts
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&controlDir, "control-dir", "", "Control directory name (default \".gitrs\")")
}
