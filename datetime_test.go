package atom

import (
	"testing"
	"time"
)

func TestParseDateTimeLayouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: "2023-06-01T12:00:00Z",
			want:  time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 offset",
			input: "2023-06-01T12:00:00+02:00",
			want:  time.Date(2023, time.June, 1, 12, 0, 0, 0, time.FixedZone("", 2*3600)),
		},
		{
			name:  "rfc1123",
			input: "Thu, 01 Jun 2023 12:00:00 GMT",
			want:  time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc1123z",
			input: "Thu, 01 Jun 2023 12:00:00 +0200",
			want:  time.Date(2023, time.June, 1, 12, 0, 0, 0, time.FixedZone("", 2*3600)),
		},
		{
			name:  "single digit day",
			input: "Thu, 1 Jun 2023 12:00:00 +0000",
			want:  time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "no offset",
			input: "2023-06-01T12:00:00",
			want:  time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2023-06-01",
			want:  time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseDateTime(tc.input)
			if !ok {
				t.Fatalf("parseDateTime(%q) not parsed", tc.input)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("parseDateTime(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDateTimeRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "not a date", "2023-13-40", "12:00:00"} {
		if _, ok := parseDateTime(input); ok {
			t.Fatalf("parseDateTime(%q) parsed, want failure", input)
		}
	}
}

func TestFormatDateTimeUsesRFC3339(t *testing.T) {
	in := time.Date(2023, time.June, 1, 12, 0, 0, 0, time.FixedZone("", 2*3600))
	if got := formatDateTime(in); got != "2023-06-01T12:00:00+02:00" {
		t.Fatalf("formatDateTime = %q, want 2023-06-01T12:00:00+02:00", got)
	}
}

func TestDefaultDateTime(t *testing.T) {
	if got := defaultDateTime(); !got.Equal(time.Unix(0, 0)) {
		t.Fatalf("defaultDateTime = %v, want Unix epoch", got)
	}
}
