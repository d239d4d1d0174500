package fieldline

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/store"
	"github.com/fieldlinehq/fieldline/pkg/store/memory"
)

// testDate is the fixed clock used across operation tests.
var testDate = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// newTestClient builds a client over the given store with a fixed clock
// and a silent logger.
func newTestClient(t *testing.T, s store.Store) Client {
	t.Helper()
	c, err := New(s,
		WithClock(func() time.Time { return testDate }),
		WithLogger(zerolog.Nop()),
	)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return c
}

// newMemoryStore builds an empty in-memory store.
func newMemoryStore(t *testing.T) *memory.Store {
	t.Helper()
	s, err := memory.New(memory.WithClock(func() time.Time { return testDate }))
	if err != nil {
		t.Fatalf("Failed to create memory store: %v", err)
	}
	return s
}

// newReadOnlyStore builds a store that rejects writes, for failure paths.
func newReadOnlyStore(t *testing.T) store.Store {
	t.Helper()
	s, err := memory.New(memory.WithReadOnly())
	if err != nil {
		t.Fatalf("Failed to create read-only store: %v", err)
	}
	return s
}

// recordingStore wraps a store and records the mode of every submit.
type recordingStore struct {
	store.Store
	submits []store.Mode
}

func (r *recordingStore) Submit(ctx context.Context, object crm.ObjectType, mode store.Mode, records []crm.Record) error {
	r.submits = append(r.submits, mode)
	return r.Store.Submit(ctx, object, mode, records)
}

func TestNewRequiresStore(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("Expected error when creating a client without a store")
	}
}

func TestNewRejectsNilClock(t *testing.T) {
	if _, err := New(newMemoryStore(t), WithClock(nil)); err == nil {
		t.Error("Expected error for nil clock function")
	}
}

func TestOptionsApply(t *testing.T) {
	s := newMemoryStore(t)
	c, err := New(s,
		WithClock(func() time.Time { return testDate }),
		WithLogger(zerolog.Nop()),
	)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	impl := c.(*client)
	if !impl.today().Equal(crm.DateOf(testDate).Time) {
		t.Errorf("Expected today to follow the injected clock, got %s", impl.today())
	}
}
