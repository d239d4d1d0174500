// Package fieldline provides record-manipulation operations against a
// multi-tenant CRM record store. Each operation follows the same shape:
// construct or look up records, apply fixed business rules, and persist
// the result as a single blocking submit. The store is an injected
// collaborator, so the same operations run against the remote record API
// or an in-memory store in tests.
package fieldline

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

// Client bundles the record-manipulation operations. Every method runs
// sequentially and blocking: local computation interleaved with store
// round trips, no retries, store failures returned unmodified.
type Client interface {
	// ReconcileAccount finds the account with the given name and marks it
	// updated, or creates it carrying the new-account marker. The returned
	// account always has an assigned identifier.
	ReconcileAccount(ctx context.Context, name string) (*crm.Account, error)

	// LinkContactsToAccounts reconciles an account per contact last name,
	// assigns each contact's AccountID, and upserts the contacts as one batch.
	LinkContactsToAccounts(ctx context.Context, contacts []*crm.Contact) error

	// UpsertOpportunitiesWithDefaults stamps the standard stage, close date,
	// and amount onto every opportunity, then upserts the list as one batch.
	UpsertOpportunitiesWithDefaults(ctx context.Context, opps []*crm.Opportunity) error

	// UpsertOpportunitiesByName ensures one opportunity per name under the
	// named account, creating the account bare if it does not exist.
	UpsertOpportunitiesByName(ctx context.Context, accountName string, oppNames []string) error

	// InsertAndDeleteLeads creates one lead per last name and immediately
	// deletes them, leaving no residue.
	InsertAndDeleteLeads(ctx context.Context, lastNames []string) error

	// CreateAndDeleteCases creates count cases linked to the account and
	// immediately deletes them, leaving no residue.
	CreateAndDeleteCases(ctx context.Context, accountID string, count int) error

	// CreateAccount constructs and creates a single account.
	CreateAccount(ctx context.Context, name, industry string) (*crm.Account, error)

	// CreateContact constructs and creates a single contact linked to an account.
	CreateContact(ctx context.Context, lastName, accountID string) (*crm.Contact, error)

	// UpdateContactLastName looks up a contact by identifier and renames it.
	UpdateContactLastName(ctx context.Context, contactID, lastName string) error

	// UpdateOpportunityStage looks up an opportunity by identifier and moves
	// it to the given stage.
	UpdateOpportunityStage(ctx context.Context, opportunityID string, stage crm.Stage) error

	// UpdateAccountFields looks up an account by identifier and rewrites its
	// name and industry.
	UpdateAccountFields(ctx context.Context, accountID, name, industry string) error
}

// client is the internal implementation of the Client interface.
type client struct {
	store  store.Store
	logger *zerolog.Logger
	now    func() time.Time
}

// Compile-time interface check for client
var _ Client = (*client)(nil)

// New creates a new Client operating against the given record store.
func New(s store.Store, opts ...Option) (Client, error) {
	if s == nil {
		return nil, errors.NewConfigError("fieldline", "record store is required", nil)
	}

	options := defaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	return &client{
		store:  s,
		logger: options.logger,
		now:    options.now,
	}, nil
}

// today returns the current date under the configured clock.
func (c *client) today() crm.Date {
	return crm.DateOf(c.now())
}
