// Package store defines the client contract for the hosted record store:
// exact-match queries and batch submits over typed records. Implementations
// live in the rest (remote API) and memory (in-process fake) subpackages.
package store

import (
	"context"

	"github.com/fieldlinehq/fieldline/pkg/crm"
)

// Mode selects how a submitted batch is applied.
type Mode string

// Submit modes.
const (
	ModeCreate Mode = "create" // Insert new records; identifiers are assigned
	ModeUpdate Mode = "update" // Rewrite existing records by identifier
	ModeUpsert Mode = "upsert" // Route per record on identifier presence
	ModeDelete Mode = "delete" // Remove existing records by identifier
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	return string(m)
}

// Valid reports whether the mode is one of the four submit modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeCreate, ModeUpdate, ModeUpsert, ModeDelete:
		return true
	}
	return false
}

// Querier provides read access to the record store.
type Querier interface {
	// Query returns the records of the given object type matching the
	// filter. An empty result is not an error.
	Query(ctx context.Context, object crm.ObjectType, filter Filter) ([]crm.Record, error)
}

// Submitter provides batch write access to the record store.
type Submitter interface {
	// Submit applies one batch of records in a single blocking call. All
	// records must be of the given object type. The batch succeeds or fails
	// as a whole; on create and upsert, identifiers and system fields are
	// written back through the record pointers.
	Submit(ctx context.Context, object crm.ObjectType, mode Mode, records []crm.Record) error
}

// Store is the complete client interface to a record store, combining the
// focused interfaces following the Interface Segregation Principle.
type Store interface {
	Querier
	Submitter
}
