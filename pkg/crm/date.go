package crm

import (
	"time"

	"github.com/goccy/go-yaml"

	"github.com/fieldlinehq/fieldline/pkg/constants"
	"github.com/fieldlinehq/fieldline/pkg/errors"
)

// Date is a civil date (no time of day, no zone) used for opportunity close
// dates. The wire format is YYYY-MM-DD; the zero Date marshals as null.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its UTC calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Date{}, errors.NewValidationError("date", s, "expected YYYY-MM-DD")
	}
	return DateOf(t), nil
}

// String returns the date in YYYY-MM-DD form, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(constants.DateFormat)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time.AddDate(0, 0, n))
}

// AddMonths returns the date n months later, normalized the way time.AddDate
// normalizes (Jan 31 + 1 month = Mar 2 or 3).
func (d Date) AddMonths(n int) Date {
	return DateOf(d.Time.AddDate(0, n, 0))
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts null, "", and
// YYYY-MM-DD.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler for goccy/go-yaml.
func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.BytesUnmarshaler for goccy/go-yaml.
func (d *Date) UnmarshalYAML(data []byte) error {
	var s string
	if err := yaml.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
