// Package standardize provides the standardize command for stamping
// pipeline defaults onto opportunity batches.
package standardize

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

// AppContext defines the interface that standardize commands need from the app.
type AppContext interface {
	Client() (fieldline.Client, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the standardize command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "standardize [resource]",
		GroupID: "core",
		Short:   "Overwrite record batches with the standard pipeline defaults",
		Long: `Standardize rewrites every record in a batch with the pipeline's
standard values, whether the record already exists or not, then writes
the whole batch in one upsert.`,
		Example: `  fieldline standardize opportunities --file opps.yaml`,
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

// NewOpportunitiesCommand creates the standardize opportunities subcommand.
func NewOpportunitiesCommand(app AppContext) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "opportunities",
		Short:   "Stamp standard defaults onto an opportunity batch",
		Aliases: []string{"opportunity", "opps"},
		Long: `Standardize opportunities reads a batch from a YAML file and writes
every record with the standard pipeline defaults stamped on: the
Qualification stage, a close date three months out, and the standard
amount. Prior values on the records are overwritten.`,
		Example: `  fieldline standardize opportunities --file opps.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.NewValidationError("file", nil, "--file is required")
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			opportunities, err := loadOpportunities(file)
			if err != nil {
				return err
			}
			if err := client.UpsertOpportunitiesWithDefaults(cmd.Context(), opportunities); err != nil {
				return err
			}

			records := make([]crm.Record, len(opportunities))
			for i, opportunity := range opportunities {
				records[i] = opportunity
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.FormatRecords(crm.ObjectOpportunity, records, format)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with the opportunities to standardize")

	return cmd
}

// opportunitiesFile is the YAML shape the --file flag accepts.
type opportunitiesFile struct {
	Opportunities []*crm.Opportunity `yaml:"opportunities"`
}

// loadOpportunities reads an opportunity batch from a YAML file.
func loadOpportunities(path string) ([]*crm.Opportunity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var parsed opportunitiesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	if len(parsed.Opportunities) == 0 {
		return nil, errors.NewValidationError("opportunities", path, "file contains no opportunities")
	}

	return parsed.Opportunities, nil
}
