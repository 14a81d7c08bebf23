package atom

import "time"

// defaultDateTime is used wherever a required timestamp is absent from the
// input.
func defaultDateTime() time.Time {
	return time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// dateTimeLayouts are tried in order when a timestamp is not RFC 3339.
// Feeds in the wild carry RFC 822/1123 style dates and offset-less
// variants; offset-less layouts are taken as UTC.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2006-01-02",
}

// parseDateTime parses a timestamp leniently, preserving the UTC offset
// the input carries.
func parseDateTime(value string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatDateTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
