package fieldline

import (
	"context"

	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

// Descriptive markers stamped by account reconciliation.
const (
	// NewAccountDescription marks accounts created during reconciliation.
	NewAccountDescription = "New Account"

	// UpdatedAccountDescription marks accounts found and refreshed during
	// reconciliation.
	UpdatedAccountDescription = "Updated Account"
)

// ReconcileAccount resolves one account by its name, the account's
// natural key. An existing account gets the updated marker and is
// persisted; a missing one is created carrying the new-account marker.
// Either way the returned account has an assigned identifier. Name
// matching is exact and case-sensitive; if the store holds duplicates,
// an arbitrary one is taken.
func (c *client) ReconcileAccount(ctx context.Context, name string) (*crm.Account, error) {
	if name == "" {
		return nil, errors.NewValidationError("name", name, "account name is required")
	}
	return c.reconcileAccount(ctx, name, true)
}

// reconcileAccount implements find-or-create for one account name. With
// mark set, both branches stamp the descriptive marker and persist; bare
// resolution leaves a found account untouched and unwritten.
func (c *client) reconcileAccount(ctx context.Context, name string, mark bool) (*crm.Account, error) {
	matches, err := c.store.Query(ctx, crm.ObjectAccount,
		store.Where(crm.FieldName, name).WithLimit(1))
	if err != nil {
		return nil, err
	}

	if len(matches) > 0 {
		account, ok := matches[0].(*crm.Account)
		if !ok {
			return nil, errors.NewValidationError("object", matches[0].ObjectType().String(),
				"store returned a non-account record for an account query")
		}
		if !mark {
			return account, nil
		}

		account.Description = UpdatedAccountDescription
		if err := c.store.Submit(ctx, crm.ObjectAccount, store.ModeUpsert, []crm.Record{account}); err != nil {
			return nil, err
		}

		c.logger.Debug().
			Str("object", crm.ObjectAccount.String()).
			Str("name", name).
			Str("id", account.RecordID()).
			Msg("Existing account reconciled")
		return account, nil
	}

	account := &crm.Account{Name: name}
	if mark {
		account.Description = NewAccountDescription
	}
	if err := c.store.Submit(ctx, crm.ObjectAccount, store.ModeUpsert, []crm.Record{account}); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("object", crm.ObjectAccount.String()).
		Str("name", name).
		Str("id", account.RecordID()).
		Msg("Account created during reconciliation")
	return account, nil
}
