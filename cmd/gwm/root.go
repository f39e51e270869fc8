package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gwm-cli/gwm/internal/git"
	"github.com/gwm-cli/gwm/internal/log"
	"github.com/gwm-cli/gwm/internal/output"
)

// Global flags
var (
	verbose        bool
	quiet          bool
	dryRun         bool
	configOverride string
)

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "gwm",
	Short: "Git worktree manager with GitHub/GitLab integration",
	Long: `gwm creates, lists and removes git worktrees with configurable name
prefixes and post-creation commands, and can materialize worktrees
directly from GitLab merge requests or GitHub pull requests.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Flags are parsed by now; attach logger and printer here so
		// --verbose/--quiet take effect.
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)

		return git.CheckGit()
	},
}

// Execute runs the root command and converts any unrecovered error into
// a non-zero process exit.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostic output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print what would happen without changing anything")
	rootCmd.PersistentFlags().StringVar(&configOverride, "config", "", "Path to the global config file")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newMrCmd())
	rootCmd.AddCommand(newPrCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCdCmd())
	rootCmd.AddCommand(newConfigCmd())
}
