package store

import (
	"strconv"
	"strings"

	"github.com/fieldlinehq/fieldline/pkg/crm"
)

// Condition is one exact-match constraint on a named field. Values compare
// case-sensitively against the record's canonical field string.
type Condition struct {
	Field string
	Value string
}

// Filter is an ordered set of exact-match conditions plus an optional result
// limit. Filters are values; builder methods return modified copies.
//
//	filter := store.Where(crm.FieldName, "Acme").
//	    And(crm.FieldIndustry, "Manufacturing").
//	    WithLimit(1)
type Filter struct {
	conditions []Condition
	limit      int
}

// Where starts a filter with a single condition.
func Where(field, value string) Filter {
	return Filter{conditions: []Condition{{Field: field, Value: value}}}
}

// ByID is shorthand for an identifier lookup.
func ByID(id string) Filter {
	return Where(crm.FieldID, id).WithLimit(1)
}

// All matches every record of the object type.
func All() Filter {
	return Filter{}
}

// And returns a copy of the filter with an additional condition.
func (f Filter) And(field, value string) Filter {
	conditions := make([]Condition, len(f.conditions), len(f.conditions)+1)
	copy(conditions, f.conditions)
	f.conditions = append(conditions, Condition{Field: field, Value: value})
	return f
}

// WithLimit returns a copy of the filter capped at n results. Zero means no
// limit.
func (f Filter) WithLimit(n int) Filter {
	f.limit = n
	return f
}

// Conditions returns the filter's conditions in order.
func (f Filter) Conditions() []Condition {
	return f.conditions
}

// Limit returns the result cap, zero for unlimited.
func (f Filter) Limit() int {
	return f.limit
}

// Empty reports whether the filter has no conditions.
func (f Filter) Empty() bool {
	return len(f.conditions) == 0
}

// Matches evaluates the filter against a record. Every condition must name a
// field the record exposes and equal its canonical value; a condition on an
// unknown field never matches.
func (f Filter) Matches(record crm.Record) bool {
	for _, cond := range f.conditions {
		value, ok := record.Field(cond.Field)
		if !ok || value != cond.Value {
			return false
		}
	}
	return true
}

// String renders the filter for logs and error messages.
func (f Filter) String() string {
	if f.Empty() && f.limit == 0 {
		return "all"
	}

	var b strings.Builder
	for i, cond := range f.conditions {
		if i > 0 {
			b.WriteString(" and ")
		}
		b.WriteString(cond.Field)
		b.WriteString("=")
		b.WriteString(cond.Value)
	}
	if f.limit > 0 {
		if !f.Empty() {
			b.WriteString(" ")
		}
		b.WriteString("limit ")
		b.WriteString(strconv.Itoa(f.limit))
	}
	return b.String()
}
