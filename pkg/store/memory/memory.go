// Package memory provides an in-process record store that fakes the hosted
// platform: identifier assignment, required-field validation, and atomic
// batch submits. It backs tests and embedded use; nothing persists beyond
// the process.
package memory

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/agentstation/utc"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

// validate enforces the platform's required-field rules declared on the
// record types. Field names in validation errors use the wire names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Compile-time interface check for Store
var _ store.Store = (*Store)(nil)

// Store is a mutex-guarded, insertion-ordered record store. The stored
// records are canonical clones; queries hand out fresh clones, and submits
// write identifiers and timestamps back through the caller's records.
type Store struct {
	mu       sync.RWMutex
	objects  map[crm.ObjectType]*collection
	readOnly bool
	now      func() time.Time
}

// collection holds one object type's records in insertion order.
type collection struct {
	order   []string
	records map[string]crm.Record
}

func newCollection() *collection {
	return &collection{records: make(map[string]crm.Record)}
}

// Option is a function that configures a Store.
type Option func(*Store) error

// WithReadOnly makes every submit fail with ErrReadOnly. Queries still work.
func WithReadOnly() Option {
	return func(s *Store) error {
		s.readOnly = true
		return nil
	}
}

// WithClock fixes the store's clock for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) error {
		if now == nil {
			return errors.NewValidationError("now", nil, "clock function cannot be nil")
		}
		s.now = now
		return nil
	}
}

// WithSeed loads records before the store is returned. Seeded records keep a
// pre-set identifier, so tests can refer to them by known IDs; records
// without one are assigned an identifier, written back in place.
func WithSeed(records ...crm.Record) Option {
	return func(s *Store) error {
		for _, record := range records {
			if record == nil {
				return errors.NewValidationError("record", nil, "seed record is nil")
			}
			if err := s.seed(record); err != nil {
				return err
			}
		}
		return nil
	}
}

// New creates an in-memory record store.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		objects: make(map[crm.ObjectType]*collection),
		now:     time.Now,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, errors.NewConfigError("memory store", "applying option", err)
		}
	}
	return s, nil
}

// seed inserts one record outside batch semantics. Used only by WithSeed.
func (s *Store) seed(record crm.Record) error {
	object := record.ObjectType()
	if !object.Valid() {
		return errors.NewValidationError("object", string(object), "unknown object type")
	}
	if err := validate.Struct(record); err != nil {
		return validationError(err)
	}

	id := record.RecordID()
	if id == "" {
		id = uuid.NewString()
		record.SetRecordID(id)
	}

	col := s.collection(object)
	if _, exists := col.records[id]; exists {
		return errors.NewValidationError("id", id, "duplicate identifier in seed")
	}

	record.System().Touch(utc.Time{Time: s.now().UTC()})
	col.records[id] = record.Clone()
	col.order = append(col.order, id)
	return nil
}

// collection returns the named collection, creating it on first use. Callers
// must hold the write lock (or be inside New).
func (s *Store) collection(object crm.ObjectType) *collection {
	col, ok := s.objects[object]
	if !ok {
		col = newCollection()
		s.objects[object] = col
	}
	return col
}

// Query returns clones of the records matching the filter, in insertion
// order. A filter that matches nothing yields an empty result and no error.
func (s *Store) Query(ctx context.Context, object crm.ObjectType, filter store.Filter) ([]crm.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewStoreError("query", object.String(), "", err)
	}
	if !object.Valid() {
		return nil, queryErr(object, errors.NewValidationError("object", string(object), "unknown object type"))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.objects[object]
	if !ok {
		return []crm.Record{}, nil
	}

	limit := filter.Limit()
	results := make([]crm.Record, 0)
	for _, id := range col.order {
		record := col.records[id]
		if !filter.Matches(record) {
			continue
		}
		results = append(results, record.Clone())
		if limit > 0 && len(results) == limit {
			break
		}
	}
	return results, nil
}

// Submit applies one batch atomically. Every record is validated and
// resolved before anything is written, so a rejected record leaves the store
// untouched. On create and upsert the store assigns identifiers and stamps
// timestamps through the caller's record pointers.
func (s *Store) Submit(ctx context.Context, object crm.ObjectType, mode store.Mode, records []crm.Record) error {
	if err := ctx.Err(); err != nil {
		return submitErr(object, mode, "", err)
	}
	if !object.Valid() {
		return submitErr(object, mode, "invalid_input", errors.NewValidationError("object", string(object), "unknown object type"))
	}
	if !mode.Valid() {
		return submitErr(object, mode, "invalid_input", errors.NewValidationError("mode", string(mode), "unknown submit mode"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return submitErr(object, mode, "read_only", errors.ErrReadOnly)
	}

	col := s.collection(object)

	// Phase one: validate and resolve every record against the current
	// state plus the changes staged so far in this batch.
	plan, err := s.stage(col, object, mode, records)
	if err != nil {
		return err
	}

	// Phase two: commit. Nothing below can fail.
	now := utc.Time{Time: s.now().UTC()}
	for _, change := range plan {
		change.apply(col, now)
	}
	return nil
}

// op is a staged change kind.
type op int

const (
	opCreate op = iota
	opUpdate
	opDelete
)

// change is one staged record mutation, resolved and validated.
type change struct {
	op     op
	id     string // pre-assigned for creates
	record crm.Record
}

// apply commits a staged change. The caller's record and the stored clone
// are stamped identically, so the in-memory copy stays canonical.
func (c change) apply(col *collection, now utc.Time) {
	switch c.op {
	case opCreate:
		c.record.SetRecordID(c.id)
		c.record.System().Touch(now)
		col.records[c.id] = c.record.Clone()
		col.order = append(col.order, c.id)
	case opUpdate:
		stored := col.records[c.id]
		sys := c.record.System()
		sys.CreatedAt = stored.System().CreatedAt
		sys.UpdatedAt = now
		col.records[c.id] = c.record.Clone()
	case opDelete:
		delete(col.records, c.id)
		for i, id := range col.order {
			if id == c.id {
				col.order = append(col.order[:i], col.order[i+1:]...)
				break
			}
		}
	}
}

// stage resolves a batch into committed-later changes. Resolution sees the
// batch's own earlier changes: a record deleted earlier in the batch cannot
// be deleted again, and an identifier created earlier in the batch resolves
// for later updates.
func (s *Store) stage(col *collection, object crm.ObjectType, mode store.Mode, records []crm.Record) ([]change, error) {
	plan := make([]change, 0, len(records))
	staged := make(map[string]bool) // id -> exists after staged changes
	exists := func(id string) bool {
		if present, ok := staged[id]; ok {
			return present
		}
		_, ok := col.records[id]
		return ok
	}

	for i, record := range records {
		if record == nil {
			return nil, batchErr(object, mode, i, errors.NewValidationError("record", nil, "record is nil"))
		}
		if record.ObjectType() != object {
			return nil, batchErr(object, mode, i,
				errors.NewValidationError("object", string(record.ObjectType()), "record does not belong to the batch object type"))
		}

		id := record.RecordID()
		switch mode {
		case store.ModeCreate:
			if id != "" {
				return nil, batchErr(object, mode, i, errors.NewValidationError("id", id, "identifier must not be set on create"))
			}
			if err := validate.Struct(record); err != nil {
				return nil, batchErr(object, mode, i, validationError(err))
			}
			newID := uuid.NewString()
			plan = append(plan, change{op: opCreate, id: newID, record: record})
			staged[newID] = true

		case store.ModeUpdate:
			if id == "" {
				return nil, batchErr(object, mode, i, errors.NewValidationError("id", "", "identifier required on update"))
			}
			if !exists(id) {
				return nil, batchErr(object, mode, i, errors.NewNotFoundError(object.String(), id))
			}
			if err := validate.Struct(record); err != nil {
				return nil, batchErr(object, mode, i, validationError(err))
			}
			plan = append(plan, change{op: opUpdate, id: id, record: record})
			staged[id] = true

		case store.ModeUpsert:
			if err := validate.Struct(record); err != nil {
				return nil, batchErr(object, mode, i, validationError(err))
			}
			if id == "" {
				newID := uuid.NewString()
				plan = append(plan, change{op: opCreate, id: newID, record: record})
				staged[newID] = true
				break
			}
			if !exists(id) {
				return nil, batchErr(object, mode, i, errors.NewNotFoundError(object.String(), id))
			}
			plan = append(plan, change{op: opUpdate, id: id, record: record})
			staged[id] = true

		case store.ModeDelete:
			if id == "" {
				return nil, batchErr(object, mode, i, errors.NewValidationError("id", "", "identifier required on delete"))
			}
			if !exists(id) {
				return nil, batchErr(object, mode, i, errors.NewNotFoundError(object.String(), id))
			}
			plan = append(plan, change{op: opDelete, id: id})
			staged[id] = false
		}
	}
	return plan, nil
}

// Len returns the number of stored records of the given object type.
func (s *Store) Len(object crm.ObjectType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	col, ok := s.objects[object]
	if !ok {
		return 0
	}
	return len(col.order)
}

// Reset removes all records from all collections.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = make(map[crm.ObjectType]*collection)
}

// validationError converts a validator result into the package error type,
// keeping the first failed field's wire name.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return errors.NewValidationError(first.Field(), first.Value(), "failed rule "+first.Tag())
	}
	return errors.WrapValidation("", err)
}

func queryErr(object crm.ObjectType, err error) error {
	return errors.NewStoreError("query", object.String(), "", err)
}

func submitErr(object crm.ObjectType, mode store.Mode, code string, err error) error {
	storeErr := errors.NewStoreError("submit", object.String(), mode.String(), err)
	storeErr.Code = code
	return storeErr
}

func batchErr(object crm.ObjectType, mode store.Mode, index int, err error) error {
	code := "validation_failed"
	if errors.IsNotFound(err) {
		code = "not_found"
	}
	return submitErr(object, mode, code, errors.NewBatchError(object.String(), mode.String(), index, err))
}
