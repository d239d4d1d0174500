package app

import (
	"github.com/spf13/cobra"

	"github.com/fieldlinehq/fieldline/cmd/fieldline/cmd/create"
	"github.com/fieldlinehq/fieldline/cmd/fieldline/cmd/link"
	"github.com/fieldlinehq/fieldline/cmd/fieldline/cmd/list"
	"github.com/fieldlinehq/fieldline/cmd/fieldline/cmd/reconcile"
	"github.com/fieldlinehq/fieldline/cmd/fieldline/cmd/smoke"
	"github.com/fieldlinehq/fieldline/cmd/fieldline/cmd/standardize"
	"github.com/fieldlinehq/fieldline/cmd/fieldline/cmd/update"
	"github.com/fieldlinehq/fieldline/cmd/fieldline/cmd/upsert"
)

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(reconcile.NewCommand(a))
	rootCmd.AddCommand(link.NewCommand(a))
	rootCmd.AddCommand(standardize.NewCommand(a))
	rootCmd.AddCommand(upsert.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))

	// Record commands
	rootCmd.AddCommand(create.NewCommand(a))
	rootCmd.AddCommand(update.NewCommand(a))
	rootCmd.AddCommand(smoke.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("fieldline %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
