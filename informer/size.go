package informer

import "fmt"

const bytesPerTier = 1024

var sizeUnits = []string{
	"bytes",
	"KB",
	"MB",
	"GB",
	"TB",
}

// FormatSize renders a byte count in the largest unit keeping the value below
// 1024, e.g. "1.5 MB". The top tier (TB) is unbounded.
// Note: the bytes tier value is also divided by 1024, so sizes under 1 KB
// render as a fraction of the form "0.5 bytes".
func FormatSize(sizeBytes int64) string {
	value := float64(sizeBytes)
	unitIndex := 0

	for value >= bytesPerTier && unitIndex < len(sizeUnits)-1 {
		value /= bytesPerTier
		unitIndex++
	}

	if unitIndex == 0 {
		value /= bytesPerTier
	}

	return fmt.Sprintf("%v %s", value, sizeUnits[unitIndex])
}
