package types

// Status describes how a dotfile's home-side link relates to its
// repository-side target at the time it was last inspected. It is a
// snapshot, not a live value: any filesystem change outside the dotfile's
// own transition methods invalidates it, and the owning repository must
// reload to get fresh state.
type Status int

const (
	// StatusSynced means a link exists at the dotfile's name and resolves
	// to the same file as its target.
	StatusSynced Status = iota

	// StatusMissing means nothing exists at the dotfile's name, not even
	// a broken link.
	StatusMissing

	// StatusUnsynced means something exists at the dotfile's name but it
	// does not resolve to the target. This covers regular files,
	// directories, links pointing elsewhere, and broken links.
	StatusUnsynced
)

// String returns the lowercase name used in status reports.
func (s Status) String() string {
	switch s {
	case StatusSynced:
		return "synced"
	case StatusMissing:
		return "missing"
	case StatusUnsynced:
		return "unsynced"
	default:
		return "unknown"
	}
}
