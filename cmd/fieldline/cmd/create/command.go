// Package create provides the create command for single-record writes.
package create

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fieldlinehq/fieldline"
	"github.com/fieldlinehq/fieldline/internal/cmd/output"
	"github.com/fieldlinehq/fieldline/pkg/crm"
)

// AppContext defines the interface that create commands need from the app.
type AppContext interface {
	Client() (fieldline.Client, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the create command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create [resource]",
		GroupID: "records",
		Short:   "Create a single record",
		Example: `  fieldline create account "Acme Corp" --industry Manufacturing
  fieldline create contact Doe --account-id 001`,
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
	cmd.AddCommand(NewContactCommand(app))

	return cmd
}

// NewAccountCommand creates the create account subcommand.
func NewAccountCommand(app AppContext) *cobra.Command {
	var industry string

	cmd := &cobra.Command{
		Use:     "account <name>",
		Short:   "Create an account",
		Args:    cobra.ExactArgs(1),
		Example: `  fieldline create account "Acme Corp" --industry Manufacturing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			account, err := client.CreateAccount(cmd.Context(), args[0], industry)
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.FormatRecords(crm.ObjectAccount, []crm.Record{account}, format)
		},
	}

	cmd.Flags().StringVar(&industry, "industry", "", "industry segment for the account")

	return cmd
}

// NewContactCommand creates the create contact subcommand.
func NewContactCommand(app AppContext) *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:     "contact <last-name>",
		Short:   "Create a contact",
		Args:    cobra.ExactArgs(1),
		Example: `  fieldline create contact Doe --account-id 001`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			contact, err := client.CreateContact(cmd.Context(), args[0], accountID)
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.FormatRecords(crm.ObjectContact, []crm.Record{contact}, format)
		},
	}

	cmd.Flags().StringVar(&accountID, "account-id", "", "account to link the contact to")

	return cmd
}
