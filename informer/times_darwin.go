//go:build darwin

package informer

import (
	"os"
	"syscall"
	"time"
)

// statTimes pulls the access and birth times out of the platform stat
// structure.
func statTimes(fileInfo os.FileInfo) (accessed, created time.Time) {
	stat, ok := fileInfo.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, time.Time{}
	}

	accessed = time.Unix(stat.Atimespec.Sec, stat.Atimespec.Nsec)
	created = time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)
	return accessed, created
}
