package fieldline

import (
	"context"
	"testing"

	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store/memory"
)

func TestLinkContactsToAccounts(t *testing.T) {
	s := newMemoryStore(t)
	c := newTestClient(t, s)
	ctx := context.Background()

	// Four contacts across two last names, none of the accounts present.
	contacts := []*crm.Contact{
		{FirstName: "Jane", LastName: "Doe"},
		{FirstName: "John", LastName: "Doe"},
		{FirstName: "Ada", LastName: "Smith"},
		{FirstName: "Alan", LastName: "Doe"},
	}
	if err := c.LinkContactsToAccounts(ctx, contacts); err != nil {
		t.Fatalf("Link failed: %v", err)
	}

	// Every contact ends up linked.
	for i, contact := range contacts {
		if contact.AccountID == "" {
			t.Errorf("Contact %d has no account after linking", i)
		}
		if contact.RecordID() == "" {
			t.Errorf("Contact %d was not persisted", i)
		}
	}

	// Distinct last names map to distinct accounts; shared ones share.
	if contacts[0].AccountID != contacts[1].AccountID || contacts[0].AccountID != contacts[3].AccountID {
		t.Error("Contacts sharing a last name should share an account")
	}
	if contacts[0].AccountID == contacts[2].AccountID {
		t.Error("Contacts with different last names should not share an account")
	}

	// Two distinct keys, exactly two accounts created.
	if got := s.Len(crm.ObjectAccount); got != 2 {
		t.Errorf("Expected 2 accounts for 2 distinct last names, got %d", got)
	}
	if got := s.Len(crm.ObjectContact); got != 4 {
		t.Errorf("Expected 4 persisted contacts, got %d", got)
	}
}

func TestLinkContactsReconcilesEachKeyOnce(t *testing.T) {
	base := newMemoryStore(t)
	rec := &recordingStore{Store: base}
	c := newTestClient(t, rec)

	contacts := []*crm.Contact{
		{LastName: "Doe"},
		{LastName: "Doe"},
		{LastName: "Doe"},
	}
	if err := c.LinkContactsToAccounts(context.Background(), contacts); err != nil {
		t.Fatalf("Link failed: %v", err)
	}

	// One reconcile submit for the single distinct key, one contact batch.
	if len(rec.submits) != 2 {
		t.Errorf("Expected 2 submits (1 account, 1 contact batch), got %d", len(rec.submits))
	}
	if got := base.Len(crm.ObjectAccount); got != 1 {
		t.Errorf("Expected a single account for a single distinct key, got %d", got)
	}
}

func TestLinkContactsUsesExistingAccounts(t *testing.T) {
	s := newMemoryStore(t)
	c := newTestClient(t, s)
	ctx := context.Background()

	existing, err := c.ReconcileAccount(ctx, "Doe")
	if err != nil {
		t.Fatalf("Seeding account failed: %v", err)
	}

	contacts := []*crm.Contact{{FirstName: "Jane", LastName: "Doe"}}
	if err := c.LinkContactsToAccounts(ctx, contacts); err != nil {
		t.Fatalf("Link failed: %v", err)
	}

	if contacts[0].AccountID != existing.RecordID() {
		t.Errorf("Expected link to existing account %q, got %q", existing.RecordID(), contacts[0].AccountID)
	}
	if got := s.Len(crm.ObjectAccount); got != 1 {
		t.Errorf("Expected no new account, got %d total", got)
	}
}

func TestLinkContactsEmptyBatch(t *testing.T) {
	c := newTestClient(t, newMemoryStore(t))

	if err := c.LinkContactsToAccounts(context.Background(), nil); err != nil {
		t.Errorf("Empty batch should be a no-op, got %v", err)
	}
}

func TestLinkContactsRequiresLastName(t *testing.T) {
	c := newTestClient(t, newMemoryStore(t))

	err := c.LinkContactsToAccounts(context.Background(), []*crm.Contact{
		{LastName: "Doe"},
		{FirstName: "Nameless"},
	})
	if err == nil {
		t.Fatal("Expected error for contact without last name")
	}

	var batchErr *errors.BatchError
	if !errors.As(err, &batchErr) {
		t.Fatalf("Expected BatchError, got %T", err)
	}
	if batchErr.Index != 1 {
		t.Errorf("Expected failure at record 1, got %d", batchErr.Index)
	}
}

func TestLinkContactsAbortsOnReconcileFailure(t *testing.T) {
	s, err := memory.New(memory.WithReadOnly())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	c := newTestClient(t, s)

	// The account submit inside reconciliation fails, so the operation
	// aborts before any contact is queued or written.
	err = c.LinkContactsToAccounts(context.Background(), []*crm.Contact{{LastName: "Doe"}})
	if err == nil {
		t.Fatal("Expected reconcile failure to abort the operation")
	}
	if !errors.IsReadOnly(err) {
		t.Errorf("Expected the store failure unmodified, got %v", err)
	}
	if got := s.Len(crm.ObjectContact); got != 0 {
		t.Errorf("Expected no contacts written after abort, got %d", got)
	}
}
