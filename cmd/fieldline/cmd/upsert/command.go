// Package upsert provides the upsert command for name-keyed record writes.
package upsert

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fieldlinehq/fieldline"
	"github.com/fieldlinehq/fieldline/pkg/errors"
)

// AppContext defines the interface that upsert commands need from the app.
type AppContext interface {
	Client() (fieldline.Client, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the upsert command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "upsert [resource]",
		GroupID: "core",
		Short:   "Write record batches keyed by name",
		Long: `Upsert writes batches of records keyed by their names so that
repeated runs converge on the same store state instead of piling up
duplicates.`,
		Example: `  fieldline upsert opportunities --account "Acme Corp" "Renewal" "Expansion"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	// Add subcommands using the app context
	cmd.AddCommand(NewOpportunitiesCommand(app))

	return cmd
}

// NewOpportunitiesCommand creates the upsert opportunities subcommand.
func NewOpportunitiesCommand(app AppContext) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:     "opportunities --account <name> <opp name>...",
		Short:   "Upsert named opportunities under an account",
		Aliases: []string{"opportunity", "opps"},
		Long: `Upsert opportunities writes the named opportunities under the given
account. Names that already exist under the account are left untouched;
missing ones are created at the start of the pipeline with a close date
of today. The account itself is created first if it does not exist.

Running the same names twice adds nothing the second time.`,
		Example: `  fieldline upsert opportunities --account "Acme Corp" "Renewal" "Expansion"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if account == "" {
				return errors.NewValidationError("account", nil, "--account is required")
			}
			if len(args) == 0 {
				return errors.NewValidationError("name", nil, "no opportunity names given")
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			if err := client.UpsertOpportunitiesByName(cmd.Context(), account, args); err != nil {
				return err
			}

			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				fmt.Fprintf(os.Stderr, "Upserted %d opportunities under account %q\n", len(args), account)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&account, "account", "a", "", "account name to upsert the named opportunities under")

	return cmd
}
