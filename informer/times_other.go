//go:build !linux && !darwin

package informer

import (
	"os"
	"time"
)

// statTimes has no portable source for access or creation times on this
// platform; both fields degrade to "unknown" downstream.
func statTimes(fileInfo os.FileInfo) (accessed, created time.Time) {
	return time.Time{}, time.Time{}
}
