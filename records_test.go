package fieldline

import (
	"context"
	"testing"

	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

func TestCreateAccount(t *testing.T) {
	s := newMemoryStore(t)
	c := newTestClient(t, s)

	account, err := c.CreateAccount(context.Background(), "Burlington Textiles", "Manufacturing")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if account.RecordID() == "" {
		t.Error("Expected an assigned identifier")
	}
	if account.Industry != "Manufacturing" {
		t.Errorf("Industry = %q, want Manufacturing", account.Industry)
	}
}

func TestCreateContact(t *testing.T) {
	s := newMemoryStore(t)
	c := newTestClient(t, s)
	ctx := context.Background()

	account, err := c.CreateAccount(ctx, "Burlington Textiles", "")
	if err != nil {
		t.Fatalf("Create account failed: %v", err)
	}

	contact, err := c.CreateContact(ctx, "Doe", account.RecordID())
	if err != nil {
		t.Fatalf("Create contact failed: %v", err)
	}
	if contact.RecordID() == "" {
		t.Error("Expected an assigned identifier")
	}
	if contact.AccountID != account.RecordID() {
		t.Errorf("AccountID = %q, want %q", contact.AccountID, account.RecordID())
	}
}

func TestUpdateContactLastName(t *testing.T) {
	s := newMemoryStore(t)
	c := newTestClient(t, s)
	ctx := context.Background()

	contact, err := c.CreateContact(ctx, "Doe", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := c.UpdateContactLastName(ctx, contact.RecordID(), "Doe-Nguyen"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	results, err := s.Query(ctx, crm.ObjectContact, store.ByID(contact.RecordID()))
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if got := results[0].(*crm.Contact).LastName; got != "Doe-Nguyen" {
		t.Errorf("LastName = %q, want Doe-Nguyen", got)
	}
}

func TestUpdateOpportunityStage(t *testing.T) {
	s := newMemoryStore(t)
	c := newTestClient(t, s)
	ctx := context.Background()

	opp := &crm.Opportunity{
		Name:      "Renewal",
		Stage:     crm.StageProspecting,
		CloseDate: crm.NewDate(2025, 12, 1),
	}
	if err := s.Submit(ctx, crm.ObjectOpportunity, store.ModeCreate, []crm.Record{opp}); err != nil {
		t.Fatalf("Seeding failed: %v", err)
	}

	if err := c.UpdateOpportunityStage(ctx, opp.RecordID(), crm.StageClosedWon); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	results, err := s.Query(ctx, crm.ObjectOpportunity, store.ByID(opp.RecordID()))
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if got := results[0].(*crm.Opportunity).Stage; got != crm.StageClosedWon {
		t.Errorf("Stage = %q, want %q", got, crm.StageClosedWon)
	}
}

func TestUpdateAccountFields(t *testing.T) {
	s := newMemoryStore(t)
	c := newTestClient(t, s)
	ctx := context.Background()

	account, err := c.CreateAccount(ctx, "Old Name", "Retail")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := c.UpdateAccountFields(ctx, account.RecordID(), "New Name", "Logistics"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	results, err := s.Query(ctx, crm.ObjectAccount, store.ByID(account.RecordID()))
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	updated := results[0].(*crm.Account)
	if updated.Name != "New Name" || updated.Industry != "Logistics" {
		t.Errorf("Got %q/%q, want New Name/Logistics", updated.Name, updated.Industry)
	}
}

func TestUpdateMissingRecordIsNotFound(t *testing.T) {
	c := newTestClient(t, newMemoryStore(t))
	ctx := context.Background()

	// Passing an identifier asserts existence, so absence is an error.
	if err := c.UpdateContactLastName(ctx, "missing", "Doe"); !errors.IsNotFound(err) {
		t.Errorf("Expected not-found for contact, got %v", err)
	}
	if err := c.UpdateOpportunityStage(ctx, "missing", crm.StageClosedLost); !errors.IsNotFound(err) {
		t.Errorf("Expected not-found for opportunity, got %v", err)
	}
	if err := c.UpdateAccountFields(ctx, "missing", "X", "Y"); !errors.IsNotFound(err) {
		t.Errorf("Expected not-found for account, got %v", err)
	}
}

func TestUpdateRequiresIdentifier(t *testing.T) {
	c := newTestClient(t, newMemoryStore(t))

	err := c.UpdateContactLastName(context.Background(), "", "Doe")
	if err == nil {
		t.Fatal("Expected error for empty identifier")
	}
	if !errors.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}
