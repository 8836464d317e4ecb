package informer

import (
	"os"
	"strings"
)

// Permission is one of the 3 permission labels an entry can carry.
type Permission string

const (
	PermissionRead       Permission = "Read"
	PermissionWrite      Permission = "Write"
	PermissionExecutable Permission = "Executable"
)

// PermissionSet holds the permission labels in fixed slot order:
// Read, Write, Executable. An empty string means the slot is absent.
type PermissionSet [3]Permission

// ClassifyPermissions collapses owner/group/other mode bits into a
// single tri-state classification. Read is always granted, Write is
// granted unless the entry is read-only, and Executable is granted when
// any class execute bit is set.
func ClassifyPermissions(readOnly bool, mode os.FileMode) PermissionSet {
	permissions := PermissionSet{PermissionRead, "", ""}

	if !readOnly {
		permissions[1] = PermissionWrite
	}

	if mode&0111 != 0 {
		permissions[2] = PermissionExecutable
	}

	return permissions
}

// String joins the present labels with "+", e.g. "Read+Write".
func (s PermissionSet) String() string {
	var present []string
	for _, permission := range s {
		if "" == permission {
			continue
		}
		present = append(present, string(permission))
	}
	return strings.Join(present, "+")
}
