package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/fieldlinehq/fieldline"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	ClientFunc       func() (fieldline.Client, error)
	StoreFunc        func() (store.Store, error)
	TenantFunc       func() string
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Client returns a client using the mock function or nil.
func (m *Mock) Client() (fieldline.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return nil, nil
}

// Store returns a record store using the mock function or nil.
func (m *Mock) Store() (store.Store, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc()
	}
	return nil, nil
}

// Tenant returns a tenant using the mock function or "test".
func (m *Mock) Tenant() string {
	if m.TenantFunc != nil {
		return m.TenantFunc()
	}
	return "test"
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns a format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
