package informer

import "time"

// unknownField is substituted for any value that cannot be derived.
const unknownField = "unknown"

const timestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders an instant as a local date and clock time,
// using the zone offset in effect at that instant. A zero instant means
// the platform couldn't supply the timestamp and renders as "unknown".
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return unknownField
	}

	return t.Local().Format(timestampLayout)
}
