package config

import (
	"fmt"
	"time"
)

// TimestampLayout is the only accepted date-time format (yyyy-MM-dd HH:mm:ss).
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is an optional point in time given on the command line.
// Values are interpreted in the host's local time zone.
type Timestamp struct {
	value time.Time
	set   bool
}

// NewTimestamp returns a set Timestamp holding t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{value: t, set: true}
}

// ParseTimestamp parses s using TimestampLayout in local time.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("expected format yyyy-MM-dd HH:mm:ss: %w", err)
	}

	return NewTimestamp(t), nil
}

// FormatTime renders t the way timestamps are accepted, or "unknown" for a zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	return t.In(time.Local).Format(TimestampLayout)
}

// IsSet reports whether a value was supplied.
func (ts Timestamp) IsSet() bool {
	return ts.set
}

// String returns the formatted value, or an empty string when unset.
func (ts Timestamp) String() string {
	if !ts.set {
		return ""
	}

	return FormatTime(ts.value)
}

// Time returns the parsed value.
func (ts Timestamp) Time() time.Time {
	return ts.value
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (ts *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}

	*ts = parsed

	return nil
}
