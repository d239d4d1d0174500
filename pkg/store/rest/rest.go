// Package rest implements the record store contract against the remote
// record API. Queries become GET requests with filter parameters, and
// submits become a single POST carrying the whole batch; the server's
// response stamps identifiers and timestamps back onto the submitted
// records. Failures surface as StoreError values carrying the API's
// status, code, and message. The store does not retry.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fieldlinehq/fieldline/internal/transport"
	"github.com/fieldlinehq/fieldline/pkg/crm"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

// Config holds the connection settings for a remote record store.
type Config struct {
	BaseURL    string        `json:"base_url" yaml:"base_url"`                           // API root, e.g. https://crm.example.com
	Tenant     string        `json:"tenant" yaml:"tenant"`                               // Tenant addressed by every call
	APIKey     string        `json:"api_key,omitempty" yaml:"api_key,omitempty"`         // Credential applied to each request
	AuthScheme string        `json:"auth_scheme,omitempty" yaml:"auth_scheme,omitempty"` // bearer, basic, header, query, or none
	Timeout    time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`         // Per-request timeout, 0 for the default
}

// Store is a record store backed by the remote record API.
type Store struct {
	transport *transport.Client
	base      string
	tenant    string
}

// Compile-time interface check for Store
var _ store.Store = (*Store)(nil)

// New creates a remote record store from the given configuration.
func New(cfg Config) (*Store, error) {
	if cfg.BaseURL == "" {
		return nil, errors.NewConfigError("rest store", "base URL is required", nil)
	}
	if cfg.Tenant == "" {
		return nil, errors.NewConfigError("rest store", "tenant is required", nil)
	}

	scheme := cfg.AuthScheme
	if scheme == "" {
		scheme = "bearer"
	}
	if scheme != "none" && cfg.APIKey == "" {
		return nil, errors.NewAuthenticationError("api_key", "record store API key is not set", errors.ErrAPIKeyRequired)
	}

	client := transport.New(transport.ForScheme(scheme), cfg.APIKey)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Store{
		transport: client,
		base:      strings.TrimRight(cfg.BaseURL, "/"),
		tenant:    url.PathEscape(cfg.Tenant),
	}, nil
}

// queryResponse is the envelope the API returns for record queries.
type queryResponse struct {
	Records []json.RawMessage `json:"records"`
}

// Query retrieves the records of one object type matching the filter.
func (s *Store) Query(ctx context.Context, object crm.ObjectType, filter store.Filter) ([]crm.Record, error) {
	if !object.Valid() {
		return nil, errors.WrapStore("query", object.String(), "",
			errors.NewValidationError("object", string(object), "unknown object type"))
	}

	resp, err := s.transport.Get(ctx, s.queryURL(object, filter))
	if err != nil {
		return nil, errors.WrapStore("query", object.String(), "", err)
	}

	var result queryResponse
	if err := transport.DecodeResponse(resp, &result); err != nil {
		return nil, s.operationError(err, "query", object, "")
	}

	records := make([]crm.Record, 0, len(result.Records))
	for _, raw := range result.Records {
		record, err := crm.New(object)
		if err != nil {
			return nil, errors.WrapStore("query", object.String(), "", err)
		}
		if err := json.Unmarshal(raw, record); err != nil {
			return nil, errors.WrapStore("query", object.String(), "",
				errors.WrapParse("json", object.String()+" record", err))
		}
		records = append(records, record)
	}

	return records, nil
}

// submitRequest is the envelope the API expects for batch submits.
type submitRequest struct {
	Mode    store.Mode   `json:"mode"`
	Records []crm.Record `json:"records"`
}

// submitResponse mirrors the submitted batch with server-assigned
// identifiers and timestamps filled in.
type submitResponse struct {
	Records []json.RawMessage `json:"records"`
}

// Submit sends one batch of records in a single request. The server
// applies the batch atomically; on success the returned records are
// decoded back into the submitted ones so callers observe assigned
// identifiers and refreshed timestamps.
func (s *Store) Submit(ctx context.Context, object crm.ObjectType, mode store.Mode, records []crm.Record) error {
	if !object.Valid() {
		return errors.WrapStore("submit", object.String(), mode.String(),
			errors.NewValidationError("object", string(object), "unknown object type"))
	}
	if !mode.Valid() {
		return errors.WrapStore("submit", object.String(), mode.String(),
			errors.NewValidationError("mode", string(mode), "unknown submit mode"))
	}
	if len(records) == 0 {
		return nil
	}
	for i, record := range records {
		if record == nil {
			return errors.NewBatchError(object.String(), mode.String(), i, errors.ErrInvalidInput)
		}
		if record.ObjectType() != object {
			return errors.NewBatchError(object.String(), mode.String(), i,
				errors.NewValidationError("object", string(record.ObjectType()),
					fmt.Sprintf("record is not a %s", object)))
		}
	}

	resp, err := s.transport.Post(ctx, s.submitURL(object), submitRequest{Mode: mode, Records: records})
	if err != nil {
		return errors.WrapStore("submit", object.String(), mode.String(), err)
	}

	var result submitResponse
	if err := transport.DecodeResponse(resp, &result); err != nil {
		return s.operationError(err, "submit", object, mode.String())
	}

	// Stamp server-assigned fields back onto the submitted records.
	for i, raw := range result.Records {
		if i >= len(records) {
			break
		}
		if err := json.Unmarshal(raw, records[i]); err != nil {
			return errors.WrapStore("submit", object.String(), mode.String(),
				errors.WrapParse("json", object.String()+" record", err))
		}
	}

	return nil
}

// queryURL builds the records URL for one query, encoding each filter
// condition as filter[<field>]=<value> plus an optional limit.
func (s *Store) queryURL(object crm.ObjectType, filter store.Filter) string {
	base := s.recordsURL(object)

	params := url.Values{}
	for _, cond := range filter.Conditions() {
		params.Set(fmt.Sprintf("filter[%s]", cond.Field), cond.Value)
	}
	if filter.Limit() > 0 {
		params.Set("limit", strconv.Itoa(filter.Limit()))
	}
	if len(params) == 0 {
		return base
	}

	return base + "?" + params.Encode()
}

// submitURL builds the batch submit URL for one object type.
func (s *Store) submitURL(object crm.ObjectType) string {
	return s.recordsURL(object) + ":submit"
}

// recordsURL builds the tenant-scoped records collection URL.
func (s *Store) recordsURL(object crm.ObjectType) string {
	return fmt.Sprintf("%s/v1/tenants/%s/objects/%s/records", s.base, s.tenant, object)
}

// operationError attaches the operation context to a decode failure.
// StoreError values from the transport carry only the HTTP diagnostics.
func (s *Store) operationError(err error, op string, object crm.ObjectType, mode string) error {
	var storeErr *errors.StoreError
	if errors.As(err, &storeErr) {
		storeErr.Op = op
		storeErr.Object = object.String()
		storeErr.Mode = mode
		return storeErr
	}
	return errors.WrapStore(op, object.String(), mode, err)
}
