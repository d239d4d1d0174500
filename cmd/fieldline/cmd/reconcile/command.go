// Package reconcile provides the reconcile command for find-or-create flows.
package reconcile

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fieldlinehq/fieldline"
	"github.com/fieldlinehq/fieldline/internal/cmd/output"
	"github.com/fieldlinehq/fieldline/pkg/crm"
)

// AppContext defines the interface that reconcile commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Client() (fieldline.Client, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the reconcile command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reconcile [resource]",
		GroupID: "core",
		Short:   "Find or create records by natural key",
		Long: `Reconcile looks a record up by its natural key and creates it when
it does not exist yet. Matched records are marked as updated, created
records as new, so repeated runs converge on a single record per key.`,
		Example: `  fieldline reconcile account "Acme Corp"    # Find or create the account
  fieldline reconcile account "Acme Corp" -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	// Add subcommands using the app context
	cmd.AddCommand(NewAccountCommand(app))

	return cmd
}

// NewAccountCommand creates the reconcile account subcommand.
func NewAccountCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "account <name>",
		Short:   "Find or create an account by name",
		Aliases: []string{"accounts"},
		Args:    cobra.ExactArgs(1),
		Example: `  fieldline reconcile account "Acme Corp"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			account, err := client.ReconcileAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.FormatRecords(crm.ObjectAccount, []crm.Record{account}, format)
		},
	}
}
