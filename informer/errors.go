package informer

import (
	"errors"
)

// ErrUnclassifiableKind is an error signifying that an entry's file type bits match none of regular/folder/symlink.
var ErrUnclassifiableKind = errors.New("file kind is none of regular, folder or symlink")
