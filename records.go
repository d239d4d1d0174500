package fieldline

import (
	"context"

	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

// CreateAccount constructs and creates a single account.
func (c *client) CreateAccount(ctx context.Context, name, industry string) (*crm.Account, error) {
	account := &crm.Account{Name: name, Industry: industry}
	if err := c.store.Submit(ctx, crm.ObjectAccount, store.ModeCreate, []crm.Record{account}); err != nil {
		return nil, err
	}
	return account, nil
}

// CreateContact constructs and creates a single contact linked to an account.
func (c *client) CreateContact(ctx context.Context, lastName, accountID string) (*crm.Contact, error) {
	contact := &crm.Contact{LastName: lastName, AccountID: accountID}
	if err := c.store.Submit(ctx, crm.ObjectContact, store.ModeCreate, []crm.Record{contact}); err != nil {
		return nil, err
	}
	return contact, nil
}

// UpdateContactLastName looks up a contact by identifier and renames it.
func (c *client) UpdateContactLastName(ctx context.Context, contactID, lastName string) error {
	record, err := c.recordByID(ctx, crm.ObjectContact, contactID)
	if err != nil {
		return err
	}

	contact := record.(*crm.Contact)
	contact.LastName = lastName
	return c.store.Submit(ctx, crm.ObjectContact, store.ModeUpdate, []crm.Record{contact})
}

// UpdateOpportunityStage looks up an opportunity by identifier and moves
// it to the given stage.
func (c *client) UpdateOpportunityStage(ctx context.Context, opportunityID string, stage crm.Stage) error {
	record, err := c.recordByID(ctx, crm.ObjectOpportunity, opportunityID)
	if err != nil {
		return err
	}

	opp := record.(*crm.Opportunity)
	opp.Stage = stage
	return c.store.Submit(ctx, crm.ObjectOpportunity, store.ModeUpdate, []crm.Record{opp})
}

// UpdateAccountFields looks up an account by identifier and rewrites its
// name and industry.
func (c *client) UpdateAccountFields(ctx context.Context, accountID, name, industry string) error {
	record, err := c.recordByID(ctx, crm.ObjectAccount, accountID)
	if err != nil {
		return err
	}

	account := record.(*crm.Account)
	account.Name = name
	account.Industry = industry
	return c.store.Submit(ctx, crm.ObjectAccount, store.ModeUpdate, []crm.Record{account})
}

// recordByID fetches one record by identifier. Unlike natural-key
// lookups, absence here is an error: the caller asserted existence by
// passing an identifier.
func (c *client) recordByID(ctx context.Context, object crm.ObjectType, id string) (crm.Record, error) {
	if id == "" {
		return nil, errors.NewValidationError(crm.FieldID, id, "record identifier is required")
	}

	matches, err := c.store.Query(ctx, object, store.ByID(id))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.NewNotFoundError(object.String(), id)
	}
	return matches[0], nil
}
