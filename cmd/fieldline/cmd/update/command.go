// Package update provides the update command for single-record field changes.
package update

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fieldlinehq/fieldline"
	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
)

// AppContext defines the interface that update commands need from the app.
type AppContext interface {
	Client() (fieldline.Client, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the update command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update [resource]",
		GroupID: "records",
		Short:   "Update fields on an existing record",
		Long: `Update rewrites fields on a record addressed by its identifier.
The record must exist; a missing identifier is an error.`,
		Example: `  fieldline update contact 003 --last-name "Doe-Nguyen"
  fieldline update opportunity 007 --stage "Closed Won"
  fieldline update account 001 --name "Acme Corp" --industry Manufacturing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	// Add subcommands using the app context
	cmd.AddCommand(NewContactCommand(app))
	cmd.AddCommand(NewOpportunityCommand(app))
	cmd.AddCommand(NewAccountCommand(app))

	return cmd
}

// NewContactCommand creates the update contact subcommand.
func NewContactCommand(app AppContext) *cobra.Command {
	var lastName string

	cmd := &cobra.Command{
		Use:     "contact <id>",
		Short:   "Update a contact's last name",
		Args:    cobra.ExactArgs(1),
		Example: `  fieldline update contact 003 --last-name "Doe-Nguyen"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lastName == "" {
				return errors.NewValidationError(crm.FieldLastName, nil, "--last-name is required")
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			if err := client.UpdateContactLastName(cmd.Context(), args[0], lastName); err != nil {
				return err
			}

			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				fmt.Fprintf(os.Stderr, "Updated contact %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lastName, "last-name", "", "new last name")

	return cmd
}

// NewOpportunityCommand creates the update opportunity subcommand.
func NewOpportunityCommand(app AppContext) *cobra.Command {
	var stage string

	cmd := &cobra.Command{
		Use:     "opportunity <id>",
		Short:   "Update an opportunity's pipeline stage",
		Aliases: []string{"opp"},
		Args:    cobra.ExactArgs(1),
		Example: `  fieldline update opportunity 007 --stage "Closed Won"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stage == "" {
				return errors.NewValidationError(crm.FieldStage, nil, "--stage is required")
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			if err := client.UpdateOpportunityStage(cmd.Context(), args[0], crm.Stage(stage)); err != nil {
				return err
			}

			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				fmt.Fprintf(os.Stderr, "Updated opportunity %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "new pipeline stage")

	return cmd
}

// NewAccountCommand creates the update account subcommand.
func NewAccountCommand(app AppContext) *cobra.Command {
	var (
		name     string
		industry string
	)

	cmd := &cobra.Command{
		Use:     "account <id>",
		Short:   "Update an account's name and industry",
		Args:    cobra.ExactArgs(1),
		Long: `Update account rewrites both the name and the industry of the
account, so both flags are required.`,
		Example: `  fieldline update account 001 --name "Acme Corp" --industry Manufacturing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || industry == "" {
				return errors.NewValidationError(crm.FieldName, nil, "both --name and --industry are required")
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			if err := client.UpdateAccountFields(cmd.Context(), args[0], name, industry); err != nil {
				return err
			}

			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				fmt.Fprintf(os.Stderr, "Updated account %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new account name")
	cmd.Flags().StringVar(&industry, "industry", "", "new industry segment")

	return cmd
}
