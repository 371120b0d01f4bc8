package entity

// Access is the capability a user holds on a note. AccessNone must be
// reported to callers as the note not existing, so unauthorized users
// cannot probe which note ids are real.
type Access int

const (
	AccessNone Access = iota
	AccessRead
	AccessEdit
	AccessOwner
)

func (a Access) CanRead() bool {
	return a != AccessNone
}

func (a Access) CanEdit() bool {
	return a == AccessEdit || a == AccessOwner
}

// FromPermission maps a sharing grant's permission to the capability it
// confers. A grant never confers delete or sharing management.
func FromPermission(p Permission) Access {
	if p == PermissionEdit {
		return AccessEdit
	}

	return AccessRead
}
