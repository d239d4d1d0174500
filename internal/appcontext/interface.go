// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/fieldlinehq/fieldline"
	"github.com/fieldlinehq/fieldline/pkg/store"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/fieldline/app automatically implements this interface,
// providing dependency injection for commands while maintaining testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Client returns the default fieldline client, creating it lazily if needed.
	// This is thread-safe and ensures only one instance is created.
	Client() (fieldline.Client, error)

	// Store returns the record store backing the default client, creating it
	// lazily if needed. Use this when a command needs raw query access.
	Store() (store.Store, error)

	// Tenant returns the configured tenant identifier.
	Tenant() string

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
