package fieldline

import (
	"context"
	"fmt"

	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

// defaultLeadCompany is stamped on transient leads, whose labels only
// name a person.
const defaultLeadCompany = "Unknown"

// InsertAndDeleteLeads creates one lead per last name in a single
// create call, then deletes the same set in a single delete call. The
// round trip exercises the store's write and delete paths, triggers
// included, without leaving records behind. Nothing is returned; after
// the call a query for the created leads yields an empty set.
func (c *client) InsertAndDeleteLeads(ctx context.Context, lastNames []string) error {
	if len(lastNames) == 0 {
		return nil
	}

	records := make([]crm.Record, len(lastNames))
	for i, lastName := range lastNames {
		if lastName == "" {
			return errors.NewBatchError(crm.ObjectLead.String(), store.ModeCreate.String(), i,
				errors.NewValidationError(crm.FieldLastName, "", "lead last name is required"))
		}
		records[i] = &crm.Lead{LastName: lastName, Company: defaultLeadCompany}
	}

	if err := c.store.Submit(ctx, crm.ObjectLead, store.ModeCreate, records); err != nil {
		return err
	}
	if err := c.store.Submit(ctx, crm.ObjectLead, store.ModeDelete, records); err != nil {
		return err
	}

	c.logger.Debug().
		Int("batch_size", len(records)).
		Msg("Transient leads inserted and deleted")
	return nil
}

// CreateAndDeleteCases creates count cases in a single create call,
// then deletes them in a single delete call. Cases carry numbered
// subjects and, when accountID is set, a link to that account. Like
// InsertAndDeleteLeads, this exercises the write path without residue.
func (c *client) CreateAndDeleteCases(ctx context.Context, accountID string, count int) error {
	if count < 0 {
		return errors.NewValidationError("count", count, "case count cannot be negative")
	}
	if count == 0 {
		return nil
	}

	records := make([]crm.Record, count)
	for i := range records {
		records[i] = &crm.Case{
			Subject:   fmt.Sprintf("Write path check %d", i+1),
			AccountID: accountID,
			Status:    crm.CaseStatusNew,
			Origin:    crm.CaseOriginWeb,
		}
	}

	if err := c.store.Submit(ctx, crm.ObjectCase, store.ModeCreate, records); err != nil {
		return err
	}
	if err := c.store.Submit(ctx, crm.ObjectCase, store.ModeDelete, records); err != nil {
		return err
	}

	c.logger.Debug().
		Int("batch_size", count).
		Str("account_id", accountID).
		Msg("Transient cases created and deleted")
	return nil
}
