package informer

import "os"

// FileKind says what sort of filesystem entry a path points at.
type FileKind int

const (
	KindRegular FileKind = iota
	KindFolder
	KindSymlink
)

var fileKinds = []string{
	"Regular",
	"Folder",
	"Symlink",
}

func (k FileKind) String() string {
	return fileKinds[k]
}

// ClassifyKind maps the file type bits of a mode onto a FileKind.
// Entries that are none of regular/folder/symlink (devices, sockets,
// FIFOs) yield ErrUnclassifiableKind.
func ClassifyKind(mode os.FileMode) (FileKind, error) {
	switch {
	case mode.IsRegular():
		return KindRegular, nil
	case mode.IsDir():
		return KindFolder, nil
	case mode&os.ModeSymlink != 0:
		return KindSymlink, nil
	default:
		return 0, ErrUnclassifiableKind
	}
}
