// Package list provides the list command for querying store records.
package list

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fieldlinehq/fieldline/internal/cmd/output"
	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

// AppContext defines the interface that list commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Store() (store.Store, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var (
		wheres []string
		limit  int
	)

	cmd := &cobra.Command{
		Use:     "list <object>",
		GroupID: "core",
		Short:   "List records from the store",
		Args:    cobra.ExactArgs(1),
		Long: `List queries records of one object type from the store.

Available objects:
  accounts      - Organizations
  contacts      - People, optionally linked to an account
  opportunities - Deals in the pipeline
  leads         - Unqualified prospects
  cases         - Support cases`,
		Example: `  fieldline list accounts                        # List all accounts
  fieldline list contacts --where last_name=Doe  # Filter by field value
  fieldline list opportunities --where account_id=001 --limit 10
  fieldline list leads -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			object, err := parseObject(args[0])
			if err != nil {
				return err
			}

			filter, err := parseFilter(wheres, limit)
			if err != nil {
				return err
			}

			s, err := app.Store()
			if err != nil {
				return err
			}

			records, err := s.Query(cmd.Context(), object, filter)
			if err != nil {
				return err
			}

			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				fmt.Fprintf(os.Stderr, "Found %d %s records\n", len(records), object)
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.FormatRecords(object, records, format)
		},
	}

	cmd.Flags().StringArrayVar(&wheres, "where", nil, "filter condition as field=value (repeatable)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records to return (0 = no limit)")

	return cmd
}

// parseObject maps a CLI object argument to its object type, accepting
// singular and plural forms.
func parseObject(arg string) (crm.ObjectType, error) {
	name := strings.ToLower(strings.TrimSuffix(arg, "s"))
	switch name {
	case "account":
		return crm.ObjectAccount, nil
	case "contact":
		return crm.ObjectContact, nil
	case "opportunitie", "opportunity", "opp":
		return crm.ObjectOpportunity, nil
	case "lead":
		return crm.ObjectLead, nil
	case "case":
		return crm.ObjectCase, nil
	default:
		return "", errors.NewValidationError("object", arg,
			"unknown object (use accounts, contacts, opportunities, leads, or cases)")
	}
}

// parseFilter builds a store filter from repeated field=value conditions.
func parseFilter(wheres []string, limit int) (store.Filter, error) {
	filter := store.All()
	for _, where := range wheres {
		field, value, found := strings.Cut(where, "=")
		if !found || field == "" {
			return store.Filter{}, errors.NewValidationError("where", where, "expected field=value")
		}
		filter = filter.And(field, value)
	}
	if limit > 0 {
		filter = filter.WithLimit(limit)
	}
	return filter, nil
}
