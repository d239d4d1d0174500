// Package link provides the link command for batch parent-child linking.
package link

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fieldlinehq/fieldline"
	"github.com/fieldlinehq/fieldline/internal/cmd/output"
	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
)

// AppContext defines the interface that link commands need from the app.
type AppContext interface {
	Client() (fieldline.Client, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the link command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "link [resource]",
		GroupID: "core",
		Short:   "Link child records to their parent accounts",
		Long: `Link attaches batches of child records to parent accounts derived
from a natural key. Missing parents are created on the fly, duplicate
keys within a batch share one parent, and the whole batch is written
in a single call.`,
		Example: `  fieldline link contacts Doe Smith              # Link new contacts by last name
  fieldline link contacts --file contacts.yaml   # Link contacts loaded from a file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	// Add subcommands using the app context
	cmd.AddCommand(NewContactsCommand(app))

	return cmd
}

// NewContactsCommand creates the link contacts subcommand.
func NewContactsCommand(app AppContext) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "contacts [last-name...]",
		Short:   "Link contacts to accounts named after their last names",
		Aliases: []string{"contact"},
		Long: `Link contacts attaches each contact to an account whose name matches
the contact's last name, creating the account when no match exists.
Contacts are given as positional last names or loaded from a YAML file.`,
		Example: `  fieldline link contacts Doe Smith Doe
  fieldline link contacts --file contacts.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := contactsFromArgs(args, file)
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			if err := client.LinkContactsToAccounts(cmd.Context(), contacts); err != nil {
				return err
			}

			records := make([]crm.Record, len(contacts))
			for i, contact := range contacts {
				records[i] = contact
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.FormatRecords(crm.ObjectContact, records, format)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with the contacts to link")

	return cmd
}

// contactsFile is the YAML shape the --file flag accepts.
type contactsFile struct {
	Contacts []*crm.Contact `yaml:"contacts"`
}

// contactsFromArgs builds the contact batch from positional last names or a
// YAML file. Exactly one of the two sources must be given.
func contactsFromArgs(args []string, file string) ([]*crm.Contact, error) {
	switch {
	case file != "" && len(args) > 0:
		return nil, errors.NewValidationError("contacts", file, "give last names or --file, not both")
	case file != "":
		return loadContacts(file)
	case len(args) > 0:
		contacts := make([]*crm.Contact, len(args))
		for i, lastName := range args {
			contacts[i] = &crm.Contact{LastName: lastName}
		}
		return contacts, nil
	default:
		return nil, errors.NewValidationError("contacts", nil, "no contacts given")
	}
}

// loadContacts reads a contact batch from a YAML file.
func loadContacts(path string) ([]*crm.Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var parsed contactsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	if len(parsed.Contacts) == 0 {
		return nil, errors.NewValidationError("contacts", path, "file contains no contacts")
	}

	return parsed.Contacts, nil
}
