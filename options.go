package fieldline

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/fieldlinehq/fieldline/pkg/logging"
)

// Option is a function that configures a Client instance
type Option func(*options) error

// options holds the configurable collaborators of a Client.
type options struct {
	logger *zerolog.Logger
	now    func() time.Time
}

// defaultOptions returns the options applied before any Option runs.
func defaultOptions() *options {
	return &options{
		logger: logging.Default(),
		now:    time.Now,
	}
}

// WithClock configures the time source operations use for defaulted
// dates. Tests inject a fixed clock to make close dates deterministic.
func WithClock(now func() time.Time) Option {
	return func(o *options) error {
		if now == nil {
			return errors.NewValidationError("clock", nil, "clock function is required")
		}
		o.now = now
		return nil
	}
}

// WithLogger configures the logger operations emit events to.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = &logger
		return nil
	}
}
