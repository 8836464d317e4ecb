package informer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_FormatTimestamp_AtEpoch(t *testing.T) {
	epoch := time.Unix(0, 0)

	// the rendered value must use the local offset in effect at the
	// epoch, not the offset in effect today
	expected := epoch.In(time.Local).Format("2006-01-02 15:04:05")
	assert.Equal(t, expected, FormatTimestamp(epoch))
}

func Test_FormatTimestamp_KnownInstant(t *testing.T) {
	instant := time.Date(2021, 6, 15, 12, 30, 45, 0, time.UTC)
	assert.Equal(t,
		instant.Local().Format("2006-01-02 15:04:05"),
		FormatTimestamp(instant))
}

func Test_FormatTimestamp_Unavailable(t *testing.T) {
	assert.Equal(t, "unknown", FormatTimestamp(time.Time{}))
}
