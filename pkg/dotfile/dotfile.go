// Package dotfile implements the per-file state machine: one managed
// pairing of a home-side link and a repository-side target, with status
// computation and the sync/add/remove transitions.
package dotfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/linker"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// SyncMode controls what Sync does when something other than the expected
// link already exists at the dotfile's name.
type SyncMode int

const (
	// SyncSkip leaves an unsynced dotfile untouched and reports it. This
	// is the conservative default protecting user data.
	SyncSkip SyncMode = iota

	// SyncOverwrite deletes whatever is at the link path and links anyway.
	SyncOverwrite

	// SyncReAdd treats the file at the link path as authoritative: it
	// replaces the repository copy before linking.
	SyncReAdd
)

func (m SyncMode) String() string {
	switch m {
	case SyncSkip:
		return "skip"
	case SyncOverwrite:
		return "overwrite"
	case SyncReAdd:
		return "re-add"
	default:
		return fmt.Sprintf("SyncMode(%d)", int(m))
	}
}

// ParseSyncMode converts a configuration string into a SyncMode. An
// unrecognized value is a configuration error, never a silent default.
func ParseSyncMode(s string) (SyncMode, error) {
	switch s {
	case "skip":
		return SyncSkip, nil
	case "overwrite":
		return SyncOverwrite, nil
	case "re-add":
		return SyncReAdd, nil
	default:
		return 0, errors.Newf(errors.ErrSyncModeInvalid, "unknown value for handle-existing: %q", s)
	}
}

// Report is a soft, user-facing outcome: the operation did not happen for
// this file and Reason says why. Reports are not errors; the CLI prints
// them and the batch continues.
type Report struct {
	File   string
	Reason string
}

// Dotfile pairs a home-side link path with its repository-side target.
// Status is a snapshot taken at construction and updated only by this
// dotfile's own transitions; the owning collection reloads for fresh state.
type Dotfile struct {
	// Name is the absolute path where the link appears.
	Name string

	// Target is the absolute path to the actual content.
	Target string

	status types.Status
	ln     linker.Linker
}

// New constructs a Dotfile and computes its current status. A relative name
// is anchored in home; the target's trailing separators are stripped so
// comparisons are stable.
func New(name, target, home string, ln linker.Linker) (*Dotfile, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(home, name)
	}
	d := &Dotfile{
		Name:   name,
		Target: paths.TrimTrailingSeparators(target),
		ln:     ln,
	}
	status, err := Compute(d.Name, d.Target)
	if err != nil {
		return nil, err
	}
	d.status = status
	return d, nil
}

// Compute derives a status from current filesystem state. It is a pure
// observation: link existence is checked without dereferencing, so a broken
// link counts as present-but-unsynced rather than an I/O error.
func Compute(name, target string) (types.Status, error) {
	if _, err := os.Lstat(name); err != nil {
		if os.IsNotExist(err) {
			return types.StatusMissing, nil
		}
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", name)
	}

	resolved, err := filepath.EvalSymlinks(name)
	if err != nil {
		// Present but resolves nowhere, i.e. a broken link.
		return types.StatusUnsynced, nil
	}
	if resolved == target {
		return types.StatusSynced, nil
	}

	// Paths can differ while naming the same file (the target itself may
	// contain links), so fall back to an identity comparison.
	nameInfo, err := os.Stat(resolved)
	if err != nil {
		return types.StatusUnsynced, nil
	}
	targetInfo, err := os.Stat(target)
	if err != nil {
		return types.StatusUnsynced, nil
	}
	if os.SameFile(nameInfo, targetInfo) {
		return types.StatusSynced, nil
	}
	return types.StatusUnsynced, nil
}

// Status returns the status observed at construction or after the last
// successful transition.
func (d *Dotfile) Status() types.Status {
	return d.status
}

// Basename returns the final component of the link path, the name users
// know the file by.
func (d *Dotfile) Basename() string {
	return filepath.Base(d.Name)
}

// Sync brings the link into agreement with the target. Already-synced
// dotfiles are a side-effect-free no-op. A nil report means the link was
// made (or already existed); a non-nil report means a soft skip.
func (d *Dotfile) Sync(mode SyncMode) (*Report, error) {
	switch mode {
	case SyncSkip, SyncOverwrite, SyncReAdd:
	default:
		return nil, errors.Newf(errors.ErrSyncModeInvalid, "unknown value for handle-existing: %s", mode)
	}

	logger := logging.GetLogger("dotfile")

	if d.status == types.StatusSynced {
		return nil, nil
	}

	if d.status == types.StatusUnsynced {
		switch mode {
		case SyncSkip:
			return &Report{File: d.Basename(), Reason: "use --force or --re-add to override"}, nil
		case SyncReAdd:
			if err := deletePath(d.Target); err != nil && !os.IsNotExist(err) {
				return nil, errors.Wrapf(err, errors.ErrFileDelete, "cannot delete %s", d.Target)
			}
			if err := os.Rename(d.Name, d.Target); err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileMove, "cannot move %s to %s", d.Name, d.Target)
			}
		case SyncOverwrite:
			if err := deletePath(d.Name); err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileDelete, "cannot delete %s", d.Name)
			}
		}
	}

	if err := d.ln.Create(d.Target, d.Name); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s to %s", d.Name, d.Target)
	}

	logger.Info().Str("link", d.Name).Str("target", d.Target).Msg("linked")

	// Optimistic local update; the collection-level reload stays authoritative.
	d.status = types.StatusSynced
	return nil, nil
}

// Add brings a not-yet-managed file under management: the file moves into
// the repository and a link takes its place.
func (d *Dotfile) Add() (*Report, error) {
	switch d.status {
	case types.StatusMissing:
		return &Report{File: d.Basename(), Reason: "file not found"}, nil
	case types.StatusSynced:
		return &Report{File: d.Basename(), Reason: "already managed"}, nil
	}

	if err := os.Rename(d.Name, d.Target); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileMove, "cannot move %s to %s", d.Name, d.Target)
	}
	if err := d.ln.Create(d.Target, d.Name); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s to %s", d.Name, d.Target)
	}

	logger := logging.GetLogger("dotfile")
	logger.Info().Str("link", d.Name).Str("target", d.Target).Msg("added")

	d.status = types.StatusSynced
	return nil, nil
}

// Remove takes a managed file out of management, restoring a plain file at
// the link path. Only a synced dotfile may be removed; anything else is a
// soft skip naming the actual status, so a half-configured link is never
// deleted by accident.
func (d *Dotfile) Remove() (*Report, error) {
	if d.status != types.StatusSynced {
		return &Report{File: d.Basename(), Reason: fmt.Sprintf("file is %s", d.status)}, nil
	}

	if err := os.Remove(d.Name); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileDelete, "cannot remove link %s", d.Name)
	}
	if err := os.Rename(d.Target, d.Name); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileMove, "cannot move %s to %s", d.Target, d.Name)
	}

	logger := logging.GetLogger("dotfile")
	logger.Info().Str("link", d.Name).Str("target", d.Target).Msg("removed")

	// Status is left stale on purpose; callers reload the collection after
	// batch operations.
	return nil, nil
}

// deletePath removes whatever is at path: recursively for a real directory,
// with a single remove for files and links (including links to directories).
func deletePath(path string) error {
	fi, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}
