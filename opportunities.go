package fieldline

import (
	"context"

	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

// Standard values stamped by UpsertOpportunitiesWithDefaults.
const (
	// DefaultOpportunityAmount is the amount every standardized
	// opportunity carries.
	DefaultOpportunityAmount = 50000

	// defaultCloseDateMonths is how far out standardized close dates land.
	defaultCloseDateMonths = 3
)

// UpsertOpportunitiesWithDefaults overwrites the stage, close date, and
// amount of every opportunity in the list with the standard values,
// regardless of whether the record is new or existing, then submits the
// whole list as one upsert.
func (c *client) UpsertOpportunitiesWithDefaults(ctx context.Context, opps []*crm.Opportunity) error {
	if len(opps) == 0 {
		return nil
	}

	closeDate := c.today().AddMonths(defaultCloseDateMonths)
	records := make([]crm.Record, len(opps))
	for i, opp := range opps {
		if opp == nil {
			return errors.NewBatchError(crm.ObjectOpportunity.String(), store.ModeUpsert.String(), i,
				errors.ErrInvalidInput)
		}
		opp.Stage = crm.StageQualification
		opp.CloseDate = closeDate
		opp.Amount = DefaultOpportunityAmount
		records[i] = opp
	}

	if err := c.store.Submit(ctx, crm.ObjectOpportunity, store.ModeUpsert, records); err != nil {
		return err
	}

	c.logger.Debug().
		Int("batch_size", len(opps)).
		Str("stage", crm.StageQualification.String()).
		Str("close_date", closeDate.String()).
		Msg("Opportunities standardized")
	return nil
}

// UpsertOpportunitiesByName ensures one opportunity per name under the
// named account. The account is resolved bare, created with only its
// name if absent. Each name is matched against existing opportunities
// under that account: a match is queued unmodified, a miss queues a new
// opportunity in the prospecting stage closing today. The queue is
// submitted as one upsert, so repeating a call with the same names adds
// nothing. Duplicate names within a single call are not deduplicated;
// each occurrence queues its own new record, because the membership
// query cannot see queued records that have not been submitted yet.
func (c *client) UpsertOpportunitiesByName(ctx context.Context, accountName string, oppNames []string) error {
	if accountName == "" {
		return errors.NewValidationError("account_name", accountName, "account name is required")
	}

	account, err := c.reconcileAccount(ctx, accountName, false)
	if err != nil {
		return err
	}

	today := c.today()
	queue := make([]crm.Record, 0, len(oppNames))
	for _, name := range oppNames {
		if name == "" {
			return errors.NewValidationError(crm.FieldName, name, "opportunity name is required")
		}

		matches, err := c.store.Query(ctx, crm.ObjectOpportunity,
			store.Where(crm.FieldName, name).And(crm.FieldAccountID, account.RecordID()).WithLimit(1))
		if err != nil {
			return err
		}
		if len(matches) > 0 {
			queue = append(queue, matches[0])
			continue
		}

		queue = append(queue, &crm.Opportunity{
			Name:      name,
			AccountID: account.RecordID(),
			Stage:     crm.StageProspecting,
			CloseDate: today,
		})
	}

	if len(queue) == 0 {
		return nil
	}
	if err := c.store.Submit(ctx, crm.ObjectOpportunity, store.ModeUpsert, queue); err != nil {
		return err
	}

	c.logger.Debug().
		Str("account", accountName).
		Int("batch_size", len(queue)).
		Msg("Opportunities upserted by name")
	return nil
}
