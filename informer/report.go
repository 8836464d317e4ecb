package informer

import (
	"os"
	"path/filepath"

	"github.com/jamesrr39/goutil/errorsx"
	"github.com/spf13/afero"
)

// FileDates holds the three pre-formatted timestamps of an entry.
type FileDates struct {
	Created  string
	Modified string
	Accessed string
}

// FileReport is a render-ready description of one filesystem entry.
// Every field is computed when the report is built; nothing is derived
// lazily afterwards.
type FileReport struct {
	Name        string
	Size        string
	Permissions PermissionSet
	Kind        FileKind
	Dates       FileDates
}

// NewFileReport opens and stats path on fs and assembles a FileReport for
// it. It fails when the entry cannot be opened or statted, or when its
// kind cannot be classified.
func NewFileReport(fs afero.Fs, path string) (*FileReport, errorsx.Error) {
	file, err := fs.Open(path)
	if nil != err {
		return nil, errorsx.Wrap(err, "path", path)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if nil != err {
		return nil, errorsx.Wrap(err, "path", path)
	}

	kind, err := ClassifyKind(entryMode(fs, path, fileInfo))
	if nil != err {
		return nil, errorsx.Wrap(err, "path", path)
	}

	accessed, created := statTimes(fileInfo)

	return &FileReport{
		Name:        nameFromPath(path),
		Size:        FormatSize(fileInfo.Size()),
		Permissions: ClassifyPermissions(isReadOnly(fileInfo.Mode()), fileInfo.Mode()),
		Kind:        kind,
		Dates: FileDates{
			Created:  FormatTimestamp(created),
			Modified: FormatTimestamp(fileInfo.ModTime()),
			Accessed: FormatTimestamp(accessed),
		},
	}, nil
}

// entryMode prefers the lstat mode so a symlink classifies as a symlink
// rather than as its target. Filesystems without lstat support fall back
// to the followed mode.
func entryMode(fs afero.Fs, path string, followed os.FileInfo) os.FileMode {
	if lstater, ok := fs.(afero.Lstater); ok {
		lstatInfo, lstatCalled, err := lstater.LstatIfPossible(path)
		if nil == err && lstatCalled {
			return lstatInfo.Mode()
		}
	}
	return followed.Mode()
}

// isReadOnly reports whether no class (owner, group or other) holds a
// write bit.
func isReadOnly(mode os.FileMode) bool {
	return mode.Perm()&0222 == 0
}

// nameFromPath derives the final path component of path. Paths without
// one (root, ".", "..", empty) get the "unknown" sentinel.
func nameFromPath(path string) string {
	base := filepath.Base(path)
	switch base {
	case ".", "..", string(filepath.Separator):
		return unknownField
	}
	return base
}
