//go:build linux

package informer

import (
	"os"
	"syscall"
	"time"
)

// statTimes pulls the access and creation times out of the platform stat
// structure. Linux has no birth time in stat, so st_ctime (last status
// change) stands in for creation.
func statTimes(fileInfo os.FileInfo) (accessed, created time.Time) {
	stat, ok := fileInfo.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, time.Time{}
	}

	accessed = time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
	created = time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	return accessed, created
}
