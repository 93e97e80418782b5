package config_test

import (
	"testing"
	"time"

	"github.com/joe/filetime/internal/config"
	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2025-01-01 12:00:00", false},
		{"1999-12-31 23:59:59", false},
		{"2025-01-01", true},
		{"2025-01-01T12:00:00", true},
		{"2025-13-01 12:00:00", true},
		{"01/02/2025 12:00:00", true},
		{"", true},
	}

	for _, tt := range tests {
		ts, err := config.ParseTimestamp(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimestamp(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}

		if !tt.wantErr && ts.String() != tt.input {
			t.Errorf("ParseTimestamp(%q).String() = %q", tt.input, ts.String())
		}
	}
}

func TestTimestamp_LocalTime(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	ts, err := config.ParseTimestamp("2025-01-02 14:00:00")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(ts.IsSet()).To(BeTrue())
	g.Expect(ts.Time()).To(BeTemporally("==", time.Date(2025, 1, 2, 14, 0, 0, 0, time.Local)))
}

func TestTimestamp_Unset(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var ts config.Timestamp
	g.Expect(ts.IsSet()).To(BeFalse())
	g.Expect(ts.String()).To(BeEmpty())
}

func TestTimestamp_UnmarshalText(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var ts config.Timestamp
	g.Expect(ts.UnmarshalText([]byte("2024-02-29 08:15:30"))).To(Succeed())
	g.Expect(ts.String()).To(Equal("2024-02-29 08:15:30"))

	g.Expect(ts.UnmarshalText([]byte("not a time"))).ToNot(Succeed())
	// A failed parse leaves the previous value in place.
	g.Expect(ts.String()).To(Equal("2024-02-29 08:15:30"))
}

func TestFormatTime(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(config.FormatTime(time.Time{})).To(Equal("unknown"))
	g.Expect(config.FormatTime(time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local))).To(Equal("2025-01-01 12:00:00"))
}
