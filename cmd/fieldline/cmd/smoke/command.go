// Package smoke provides the smoke command for write-path verification.
package smoke

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fieldlinehq/fieldline"
)

// AppContext defines the interface that smoke commands need from the app.
type AppContext interface {
	Client() (fieldline.Client, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the smoke command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "smoke [resource]",
		GroupID: "records",
		Short:   "Verify the store's write path with transient records",
		Long: `Smoke creates a batch of records and immediately deletes it again,
verifying that create and delete both work against the configured
store. Nothing is left behind on success.`,
		Example: `  fieldline smoke leads Doe Smith Garcia
  fieldline smoke cases --account-id 001 --count 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	// Add subcommands using the app context
	cmd.AddCommand(NewLeadsCommand(app))
	cmd.AddCommand(NewCasesCommand(app))

	return cmd
}

// NewLeadsCommand creates the smoke leads subcommand.
func NewLeadsCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "leads <last-name>...",
		Short:   "Insert and delete a batch of leads",
		Aliases: []string{"lead"},
		Args:    cobra.MinimumNArgs(1),
		Example: `  fieldline smoke leads Doe Smith Garcia`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			if err := client.InsertAndDeleteLeads(cmd.Context(), args); err != nil {
				return err
			}

			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				fmt.Fprintf(os.Stderr, "Inserted and deleted %d leads\n", len(args))
			}
			return nil
		},
	}
}

// NewCasesCommand creates the smoke cases subcommand.
func NewCasesCommand(app AppContext) *cobra.Command {
	var (
		accountID string
		count     int
	)

	cmd := &cobra.Command{
		Use:     "cases",
		Short:   "Create and delete a batch of cases",
		Aliases: []string{"case"},
		Example: `  fieldline smoke cases --count 5
  fieldline smoke cases --account-id 001 --count 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			if err := client.CreateAndDeleteCases(cmd.Context(), accountID, count); err != nil {
				return err
			}

			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				fmt.Fprintf(os.Stderr, "Created and deleted %d cases\n", count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account-id", "", "account to attach the cases to")
	cmd.Flags().IntVar(&count, "count", 1, "number of cases to create")

	return cmd
}
