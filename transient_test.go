package fieldline

import (
	"context"
	"testing"

	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

func TestInsertAndDeleteLeads(t *testing.T) {
	base := newMemoryStore(t)
	rec := &recordingStore{Store: base}
	c := newTestClient(t, rec)

	if err := c.InsertAndDeleteLeads(context.Background(), []string{"Doe", "Smith", "Garcia"}); err != nil {
		t.Fatalf("Insert and delete failed: %v", err)
	}

	// No residue: everything created was deleted.
	if got := base.Len(crm.ObjectLead); got != 0 {
		t.Errorf("Expected no leads left in the store, got %d", got)
	}

	// Exactly one create call followed by one delete call.
	want := []store.Mode{store.ModeCreate, store.ModeDelete}
	if len(rec.submits) != len(want) {
		t.Fatalf("Expected %d submits, got %d", len(want), len(rec.submits))
	}
	for i, mode := range want {
		if rec.submits[i] != mode {
			t.Errorf("Submit %d mode = %q, want %q", i, rec.submits[i], mode)
		}
	}
}

func TestInsertAndDeleteLeadsEmptyInput(t *testing.T) {
	base := newMemoryStore(t)
	rec := &recordingStore{Store: base}
	c := newTestClient(t, rec)

	if err := c.InsertAndDeleteLeads(context.Background(), nil); err != nil {
		t.Errorf("Empty input should be a no-op, got %v", err)
	}
	if len(rec.submits) != 0 {
		t.Errorf("Expected no submits for empty input, got %d", len(rec.submits))
	}
}

func TestInsertAndDeleteLeadsRejectsEmptyName(t *testing.T) {
	s := newMemoryStore(t)
	c := newTestClient(t, s)

	err := c.InsertAndDeleteLeads(context.Background(), []string{"Doe", ""})
	if err == nil {
		t.Fatal("Expected error for empty last name")
	}

	var batchErr *errors.BatchError
	if !errors.As(err, &batchErr) {
		t.Fatalf("Expected BatchError, got %T", err)
	}
	if batchErr.Index != 1 {
		t.Errorf("Expected failure at record 1, got %d", batchErr.Index)
	}
	if got := s.Len(crm.ObjectLead); got != 0 {
		t.Errorf("Expected nothing written, got %d leads", got)
	}
}

func TestCreateAndDeleteCases(t *testing.T) {
	base := newMemoryStore(t)
	rec := &recordingStore{Store: base}
	c := newTestClient(t, rec)

	if err := c.CreateAndDeleteCases(context.Background(), "001-acme", 5); err != nil {
		t.Fatalf("Create and delete failed: %v", err)
	}

	if got := base.Len(crm.ObjectCase); got != 0 {
		t.Errorf("Expected no cases left in the store, got %d", got)
	}
	want := []store.Mode{store.ModeCreate, store.ModeDelete}
	if len(rec.submits) != len(want) {
		t.Fatalf("Expected %d submits, got %d", len(want), len(rec.submits))
	}
}

func TestCreateAndDeleteCasesZeroCount(t *testing.T) {
	base := newMemoryStore(t)
	rec := &recordingStore{Store: base}
	c := newTestClient(t, rec)

	if err := c.CreateAndDeleteCases(context.Background(), "", 0); err != nil {
		t.Errorf("Zero count should be a no-op, got %v", err)
	}
	if len(rec.submits) != 0 {
		t.Errorf("Expected no submits for zero count, got %d", len(rec.submits))
	}
}

func TestCreateAndDeleteCasesNegativeCount(t *testing.T) {
	c := newTestClient(t, newMemoryStore(t))

	err := c.CreateAndDeleteCases(context.Background(), "", -1)
	if err == nil {
		t.Fatal("Expected error for negative count")
	}
	if !errors.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestCreateAndDeleteCasesWithoutAccount(t *testing.T) {
	base := newMemoryStore(t)
	c := newTestClient(t, base)

	// Cases without an account link are valid.
	if err := c.CreateAndDeleteCases(context.Background(), "", 2); err != nil {
		t.Fatalf("Create and delete without account failed: %v", err)
	}
	if got := base.Len(crm.ObjectCase); got != 0 {
		t.Errorf("Expected no cases left, got %d", got)
	}
}
