package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/fieldlinehq/fieldline/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Object: "account",
			ID:     "001-acme",
		}
		assert.Equal(t, "account with ID 001-acme not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("contact", "003-doe")
		assert.Equal(t, "contact with ID 003-doe not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("opportunity", "006-big-deal")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "name",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field name: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "record is nil",
		}
		assert.Equal(t, "validation failed: record is nil", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("limit", 1000000, "exceeds maximum")
		assert.Contains(t, err.Error(), "limit")
		assert.Contains(t, err.Error(), "exceeds maximum")
	})
}

func TestStoreError(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		err := &pkgerrors.StoreError{
			Op:      "query",
			Object:  "account",
			Message: "malformed filter",
		}
		assert.Equal(t, "store query account failed: malformed filter", err.Error())
	})

	t.Run("submit carries mode", func(t *testing.T) {
		err := &pkgerrors.StoreError{
			Op:      "submit",
			Object:  "contact",
			Mode:    "upsert",
			Message: "required field missing",
		}
		assert.Contains(t, err.Error(), "upsert")
		assert.Contains(t, err.Error(), "contact")
		assert.Contains(t, err.Error(), "required field missing")
	})

	t.Run("status mapping", func(t *testing.T) {
		assert.True(t, errors.Is(&pkgerrors.StoreError{StatusCode: 404}, pkgerrors.ErrNotFound))
		assert.True(t, errors.Is(&pkgerrors.StoreError{StatusCode: 429}, pkgerrors.ErrRateLimited))
		assert.True(t, errors.Is(&pkgerrors.StoreError{StatusCode: 503}, pkgerrors.ErrStoreUnavailable))
		assert.False(t, errors.Is(&pkgerrors.StoreError{StatusCode: 400}, pkgerrors.ErrNotFound))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("connection refused")
		err := pkgerrors.NewStoreError("submit", "lead", "create", baseErr)
		assert.Contains(t, err.Error(), "lead")
		assert.Contains(t, err.Error(), "connection refused")
		assert.Equal(t, baseErr, err.Unwrap())
	})
}

func TestBatchError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.BatchError{
			Object: "contact",
			Mode:   "update",
			Index:  2,
			Err:    pkgerrors.ErrNotFound,
		}
		assert.Contains(t, err.Error(), "update")
		assert.Contains(t, err.Error(), "contact")
		assert.Contains(t, err.Error(), "record 2")
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor and unwrap", func(t *testing.T) {
		base := pkgerrors.NewValidationError("last_name", "", "required")
		err := pkgerrors.NewBatchError("contact", "create", 0, base)
		assert.Equal(t, base, err.Unwrap())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Component: "store",
			Message:   "api_url: invalid format",
		}
		assert.Contains(t, err.Error(), "store")
		assert.Contains(t, err.Error(), "api_url")
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewConfigError("transport", "tenant cannot be empty", nil)
		assert.Contains(t, err.Error(), "transport")
		assert.Contains(t, err.Error(), "tenant")
		assert.Contains(t, err.Error(), "cannot be empty")
	})
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "read",
			Path:      "/tmp/contacts.yaml",
			Message:   "permission denied",
			Err:       errors.New("permission denied"),
		}
		assert.Contains(t, err.Error(), "read")
		assert.Contains(t, err.Error(), "/tmp/contacts.yaml")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "/data/output.txt", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("network error")
		err := pkgerrors.WrapIO("download", "https://example.com/file", baseErr)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "download", ioErr.Operation)
		assert.Equal(t, "https://example.com/file", ioErr.Path)
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "yaml",
			File:    "contacts.yaml",
			Message: "invalid indentation",
		}
		assert.Contains(t, err.Error(), "yaml")
		assert.Contains(t, err.Error(), "contacts.yaml")
		assert.Contains(t, err.Error(), "invalid indentation")
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			Message: "unexpected token",
		}
		assert.Contains(t, err.Error(), "json parse error")
		assert.Contains(t, err.Error(), "unexpected token")
	})

	t.Run("constructor and wrap", func(t *testing.T) {
		baseErr := errors.New("EOF")
		err := pkgerrors.NewParseError("yaml", "opps.yaml", "unexpected end", baseErr)
		assert.Contains(t, err.Error(), "yaml")
		assert.Equal(t, baseErr, err.Unwrap())

		wrapped := pkgerrors.WrapParse("json", "records.json", baseErr)
		parseErr, ok := wrapped.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "json", parseErr.Format)
		assert.Equal(t, "records.json", parseErr.File)
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.AuthenticationError{
			Method:  "api_key",
			Message: "invalid API key format",
		}
		assert.Contains(t, err.Error(), "api_key")
		assert.Contains(t, err.Error(), "invalid API key format")
		assert.True(t, errors.Is(err, pkgerrors.ErrAPIKeyInvalid))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("token expired")
		err := pkgerrors.NewAuthenticationError("bearer", "authentication failed", baseErr)
		assert.Contains(t, err.Error(), "bearer")
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("is API key error", func(t *testing.T) {
		err := &pkgerrors.AuthenticationError{
			Method:  "api_key",
			Message: "missing",
		}
		assert.True(t, pkgerrors.IsAPIKeyError(err))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("IsNotFound", func(t *testing.T) {
		err1 := pkgerrors.NewNotFoundError("account", "001")
		err2 := errors.New("not found")
		err3 := pkgerrors.ErrNotFound

		assert.True(t, pkgerrors.IsNotFound(err1))
		assert.False(t, pkgerrors.IsNotFound(err2))
		assert.True(t, pkgerrors.IsNotFound(err3))
	})

	t.Run("IsAlreadyExists", func(t *testing.T) {
		err1 := pkgerrors.NewBatchError("account", "create", 0, pkgerrors.ErrAlreadyExists)
		err2 := pkgerrors.ErrAlreadyExists

		assert.True(t, pkgerrors.IsAlreadyExists(err1))
		assert.True(t, pkgerrors.IsAlreadyExists(err2))
	})

	t.Run("IsRateLimited", func(t *testing.T) {
		err := pkgerrors.ErrRateLimited
		assert.True(t, pkgerrors.IsRateLimited(err))
	})

	t.Run("IsCanceled", func(t *testing.T) {
		err := pkgerrors.ErrCanceled
		assert.True(t, pkgerrors.IsCanceled(err))
	})

	t.Run("IsStoreUnavailable", func(t *testing.T) {
		err := pkgerrors.ErrStoreUnavailable
		assert.True(t, pkgerrors.IsStoreUnavailable(err))
	})

	t.Run("IsReadOnly", func(t *testing.T) {
		err := pkgerrors.NewStoreError("submit", "case", "delete", pkgerrors.ErrReadOnly)
		assert.True(t, pkgerrors.IsReadOnly(err))
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("WrapValidation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("last_name", errors.New("too short"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "last_name")
		assert.Contains(t, err.Error(), "too short")

		// nil error returns nil
		assert.Nil(t, pkgerrors.WrapValidation("field", nil))
	})

	t.Run("WrapIO", func(t *testing.T) {
		err := pkgerrors.WrapIO("write", "/tmp/file", errors.New("disk full"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "write")
		assert.Contains(t, err.Error(), "/tmp/file")

		assert.Nil(t, pkgerrors.WrapIO("read", "file", nil))
	})

	t.Run("WrapParse", func(t *testing.T) {
		err := pkgerrors.WrapParse("json", "records.json", errors.New("invalid syntax"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "json")
		assert.Contains(t, err.Error(), "records.json")

		assert.Nil(t, pkgerrors.WrapParse("yaml", "file.yaml", nil))
	})

	t.Run("WrapStore", func(t *testing.T) {
		err := pkgerrors.WrapStore("submit", "opportunity", "upsert", errors.New("rejected"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "opportunity")
		assert.Contains(t, err.Error(), "upsert")

		assert.Nil(t, pkgerrors.WrapStore("query", "account", "", nil))
	})
}

func TestErrorChaining(t *testing.T) {
	t.Run("multiple wrapping", func(t *testing.T) {
		baseErr := errors.New("connection refused")
		ioErr := pkgerrors.WrapIO("connect", "api.fieldline.dev", baseErr)
		storeErr := &pkgerrors.StoreError{
			Op:      "submit",
			Object:  "account",
			Mode:    "upsert",
			Message: "failed to connect",
			Err:     ioErr,
		}

		assert.Equal(t, ioErr, storeErr.Unwrap())

		// errors.As should work through the chain
		var targetIOErr *pkgerrors.IOError
		assert.True(t, errors.As(storeErr, &targetIOErr))
		assert.Equal(t, "connect", targetIOErr.Operation)
	})
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", pkgerrors.ErrNotFound},
		{"ErrAlreadyExists", pkgerrors.ErrAlreadyExists},
		{"ErrInvalidInput", pkgerrors.ErrInvalidInput},
		{"ErrAPIKeyRequired", pkgerrors.ErrAPIKeyRequired},
		{"ErrAPIKeyInvalid", pkgerrors.ErrAPIKeyInvalid},
		{"ErrStoreUnavailable", pkgerrors.ErrStoreUnavailable},
		{"ErrRateLimited", pkgerrors.ErrRateLimited},
		{"ErrCanceled", pkgerrors.ErrCanceled},
		{"ErrReadOnly", pkgerrors.ErrReadOnly},
	}

	for _, tc := range sentinels {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotNil(t, tc.err)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}
