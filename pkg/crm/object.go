// Package crm defines the typed records fieldline manipulates: the platform's
// standard objects (accounts, contacts, opportunities, leads, cases), the
// system fields the record store owns, and the field names shared by filters
// and stores.
package crm

import (
	"github.com/agentstation/utc"

	"github.com/fieldlinehq/fieldline/pkg/errors"
)

// ObjectType identifies a standard object in the record store.
type ObjectType string

// Standard object types.
const (
	ObjectAccount     ObjectType = "account"     // Organizations
	ObjectContact     ObjectType = "contact"     // People, optionally linked to an account
	ObjectOpportunity ObjectType = "opportunity" // Deals in the pipeline
	ObjectLead        ObjectType = "lead"        // Unqualified prospects
	ObjectCase        ObjectType = "case"        // Support cases
)

// String returns the string representation of an ObjectType.
func (o ObjectType) String() string {
	return string(o)
}

// Valid reports whether the object type is one of the standard objects.
func (o ObjectType) Valid() bool {
	switch o {
	case ObjectAccount, ObjectContact, ObjectOpportunity, ObjectLead, ObjectCase:
		return true
	}
	return false
}

// ObjectTypes returns all standard object types in a stable order.
func ObjectTypes() []ObjectType {
	return []ObjectType{ObjectAccount, ObjectContact, ObjectOpportunity, ObjectLead, ObjectCase}
}

// Field names shared by filters, stores, and tests. These are the wire names
// of the filterable record fields.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldIndustry    = "industry"
	FieldDescription = "description"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldAccountID   = "account_id"
	FieldStage       = "stage"
	FieldCloseDate   = "close_date"
	FieldAmount      = "amount"
	FieldCompany     = "company"
	FieldSource      = "source"
	FieldSubject     = "subject"
	FieldStatus      = "status"
	FieldOrigin      = "origin"
)

// Record is the interface all typed records implement. Stores accept and
// return Records; the concrete type always matches the object type of the
// call.
type Record interface {
	// ObjectType returns the object type this record belongs to.
	ObjectType() ObjectType

	// RecordID returns the store-assigned identifier, empty until assigned.
	RecordID() string

	// SetRecordID sets the store-assigned identifier.
	SetRecordID(id string)

	// Field returns the canonical string value of a filterable field and
	// whether the field exists on this object type.
	Field(name string) (string, bool)

	// System returns the store-owned system fields for stores to stamp.
	System() *SystemFields

	// Clone returns an independent copy of the record.
	Clone() Record
}

// SystemFields holds the fields the record store owns. It is embedded in
// every record type; identifiers and timestamps are assigned by the store on
// write, never by callers.
type SystemFields struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty"` // Opaque identifier, empty until assigned
	CreatedAt utc.Time `json:"created_at" yaml:"created_at"`     // First persisted
	UpdatedAt utc.Time `json:"updated_at" yaml:"updated_at"`     // Last written
}

// RecordID returns the store-assigned identifier, empty until assigned.
func (s *SystemFields) RecordID() string {
	return s.ID
}

// SetRecordID sets the store-assigned identifier.
func (s *SystemFields) SetRecordID(id string) {
	s.ID = id
}

// System returns the embedded system fields. Through embedding this gives
// stores write access to a record's identifier and timestamps.
func (s *SystemFields) System() *SystemFields {
	return s
}

// Touch stamps the write-audit timestamps. CreatedAt is set only once.
func (s *SystemFields) Touch(at utc.Time) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = at
	}
	s.UpdatedAt = at
}

// New returns an empty record of the given object type. Stores use it to
// decode query results into the right concrete type.
func New(object ObjectType) (Record, error) {
	switch object {
	case ObjectAccount:
		return &Account{}, nil
	case ObjectContact:
		return &Contact{}, nil
	case ObjectOpportunity:
		return &Opportunity{}, nil
	case ObjectLead:
		return &Lead{}, nil
	case ObjectCase:
		return &Case{}, nil
	default:
		return nil, errors.NewValidationError("object", string(object), "unknown object type")
	}
}
