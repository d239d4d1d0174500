// Package app provides the application context and dependency management
// for the fieldline CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/fieldlinehq/fieldline"
	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/store"
	"github.com/fieldlinehq/fieldline/pkg/store/memory"
	"github.com/fieldlinehq/fieldline/pkg/store/rest"
)

// App represents the fieldline application with all its dependencies.
// It provides a centralized place for configuration, logging, the record
// store, and the client, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Store and client (lazy-initialized, singletons)
	mu     sync.RWMutex
	store  store.Store
	client fieldline.Client
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// that can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Tenant returns the configured tenant identifier.
func (a *App) Tenant() string {
	return a.config.Tenant
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Store returns the record store, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Store() (store.Store, error) {
	a.mu.RLock()
	if a.store != nil {
		s := a.store
		a.mu.RUnlock()
		return s, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.store != nil {
		return a.store, nil
	}

	s, err := a.buildStore()
	if err != nil {
		return nil, err
	}

	a.store = s
	return s, nil
}

// Client returns the fieldline client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (fieldline.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	// Store() takes the same lock, so resolve it first.
	s, err := a.Store()
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	client, err := fieldline.New(s, fieldline.WithLogger(*a.logger))
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to create client", err)
	}

	a.client = client
	return client, nil
}

// buildStore constructs the record store from the app configuration.
// An ephemeral in-memory store can be selected for trying commands
// without a server; otherwise the remote store is used.
func (a *App) buildStore() (store.Store, error) {
	if a.config.UseMemoryStore {
		return memory.New()
	}

	return rest.New(rest.Config{
		BaseURL:    a.config.APIURL,
		Tenant:     a.config.Tenant,
		APIKey:     a.config.APIKey,
		AuthScheme: a.config.AuthScheme,
		Timeout:    a.config.Timeout,
	})
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore sets a custom record store (useful for testing).
func WithStore(s store.Store) Option {
	return func(a *App) error {
		a.store = s
		return nil
	}
}
