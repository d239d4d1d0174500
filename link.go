package fieldline

import (
	"context"

	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

// LinkContactsToAccounts derives an account name from each contact's
// last name, reconciles the account, and assigns the contact's
// AccountID before upserting all contacts in one batch. Reconciliation
// results are cached within the call, so a batch of N contacts with M
// distinct last names creates exactly M accounts. No contact is queued
// until its account is resolved; any reconciliation failure aborts the
// whole operation before anything is written.
func (c *client) LinkContactsToAccounts(ctx context.Context, contacts []*crm.Contact) error {
	if len(contacts) == 0 {
		return nil
	}

	accounts := make(map[string]*crm.Account)
	for i, contact := range contacts {
		if contact == nil {
			return errors.NewBatchError(crm.ObjectContact.String(), store.ModeUpsert.String(), i,
				errors.ErrInvalidInput)
		}
		if contact.LastName == "" {
			return errors.NewBatchError(crm.ObjectContact.String(), store.ModeUpsert.String(), i,
				errors.NewValidationError(crm.FieldLastName, "", "contact last name is required"))
		}

		account, ok := accounts[contact.LastName]
		if !ok {
			var err error
			account, err = c.reconcileAccount(ctx, contact.LastName, true)
			if err != nil {
				return err
			}
			accounts[contact.LastName] = account
		}
		contact.AccountID = account.RecordID()
	}

	records := make([]crm.Record, len(contacts))
	for i, contact := range contacts {
		records[i] = contact
	}
	if err := c.store.Submit(ctx, crm.ObjectContact, store.ModeUpsert, records); err != nil {
		return err
	}

	c.logger.Debug().
		Int("batch_size", len(contacts)).
		Int("accounts", len(accounts)).
		Msg("Contacts linked to accounts")
	return nil
}
