package utils

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts are the ISO 8601 spellings seen in inventory exports.
// OCI returns RFC 3339; the Python SDK's str(datetime) uses a space separator.
// The zone-less layouts below are read as UTC, so such timestamps still take
// part in age checks instead of being skipped.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses an ISO 8601 creation timestamp.
// Timestamps without a zone are taken as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", value)
}

// CalculateElapsedDays returns the number of whole days between since and now
func CalculateElapsedDays(since, now time.Time) int {
	return int(now.Sub(since).Hours() / 24)
}
