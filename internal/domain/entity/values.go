package entity

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sex constants
const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Sex is stored and rendered as "male" or "female".
type Sex string

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// UnmarshalJSON accepts the names in any case and the legacy numeric codes
// 0 (male) and 1 (female). Anything else is kept verbatim and fails validation.
func (s *Sex) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = Sex(strings.ToLower(strings.TrimSpace(name)))
		return nil
	}

	code, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("sex must be a string or an integer code, got %s", data)
	}
	switch code {
	case 0:
		*s = SexMale
	case 1:
		*s = SexFemale
	default:
		*s = Sex(strconv.Itoa(code))
	}
	return nil
}

// DateLayout is the wire format of Date.
const DateLayout = "2006-01-02"

var dateLayouts = []string{DateLayout, "2006-01-02T15:04:05", time.RFC3339}

// Date is a calendar date without a time of day.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses s using the wire layout or an ISO timestamp.
func ParseDate(s string) (Date, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewDate(t.Year(), t.Month(), t.Day()), nil
		}
		lastErr = err
	}
	return Date{}, lastErr
}

func (d Date) AsTime() time.Time {
	return d.Time
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = parsed
	return nil
}

// Value returns the date as a driver value, implements driver.Valuer interface
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Scan scan value into Date, implements sql.Scanner interface
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
	default:
		return fmt.Errorf("failed to scan date value: %v", value)
	}
	return nil
}
