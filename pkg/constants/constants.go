// Package constants provides shared constants used throughout the fieldline codebase.
// This includes timeouts, limits, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the record store API
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like API keys (rw-------)
	SecureFilePermissions = 0600
)

// Limit constants define various limits and capacities
const (
	// DefaultQueryLimit is the default maximum number of records returned by a query
	DefaultQueryLimit = 200

	// MaxNameLength is the maximum allowed length for record name fields
	MaxNameLength = 255

	// MaxDescriptionLength is the maximum allowed length for description fields
	MaxDescriptionLength = 4096
)

// Network constants
const (
	// DialTimeout is the timeout for establishing network connections
	DialTimeout = 10 * time.Second

	// KeepAliveInterval is the interval between keep-alive probes
	KeepAliveInterval = 30 * time.Second

	// MaxIdleConnections is the maximum number of idle connections in the pool
	MaxIdleConnections = 100
)

// Path constants
const (
	// DefaultConfigPath is the default path for the configuration file
	DefaultConfigPath = "~/.fieldline.yaml"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// DateFormat is the date-only format used for close dates
	DateFormat = "2006-01-02"
)
