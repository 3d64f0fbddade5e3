// Package repo implements the repository-level orchestration: it derives
// the collection of managed dotfiles from the repository directory, ignore
// patterns and external mappings, and applies collection-wide operations.
package repo

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/dotfile"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/linker"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Repository owns the collection of managed dotfiles. The collection is
// derived state: Load rebuilds it from the filesystem, and every mutating
// operation reloads before returning. The symlinks and the repository
// directory tree are the only persisted state.
type Repository struct {
	HomeDir   string
	RepoDir   string
	Prefix    string
	Ignore    []string
	Externals map[string]string

	ln       linker.Linker
	dotfiles []*dotfile.Dotfile
}

// Entry is one row of a status listing.
type Entry struct {
	Name   string
	Status types.Status
}

// New constructs a Repository from resolved configuration and performs the
// initial load.
func New(cfg *config.Config) (*Repository, error) {
	r := &Repository{
		HomeDir:   cfg.HomeDir,
		RepoDir:   cfg.Repository,
		Prefix:    cfg.Prefix,
		Ignore:    cfg.Ignore,
		Externals: cfg.Externals,
		ln:        linker.New(),
	}
	if err := r.Load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Load rebuilds the dotfile collection from the repository directory
// listing, minus ignored entries, plus external mappings. Ordering follows
// the directory listing and is not guaranteed stable; List sorts.
func (r *Repository) Load() error {
	logger := logging.GetLogger("repo")

	entries, err := os.ReadDir(r.RepoDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRepoList, "cannot list repository %s", r.RepoDir)
	}

	dotfiles := make([]*dotfile.Dotfile, 0, len(entries)+len(r.Externals))
	for _, entry := range entries {
		name := entry.Name()
		if r.ignored(name) {
			logger.Debug().Str("entry", name).Msg("ignored by pattern")
			continue
		}
		linkName := "." + strings.TrimPrefix(name, r.Prefix)
		d, err := dotfile.New(linkName, filepath.Join(r.RepoDir, name), r.HomeDir, r.ln)
		if err != nil {
			return err
		}
		dotfiles = append(dotfiles, d)
	}

	for name, target := range r.Externals {
		d, err := dotfile.New(name, paths.ExpandUser(target, r.HomeDir), r.HomeDir, r.ln)
		if err != nil {
			return err
		}
		dotfiles = append(dotfiles, d)
	}

	r.dotfiles = dotfiles
	logger.Debug().Int("count", len(dotfiles)).Str("repository", r.RepoDir).Msg("loaded")
	return nil
}

func (r *Repository) ignored(name string) bool {
	for _, pattern := range r.Ignore {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Dotfiles returns the collection as of the last Load.
func (r *Repository) Dotfiles() []*dotfile.Dotfile {
	return r.dotfiles
}

// List returns entries sorted by link path. With verbose every tracked
// dotfile appears; otherwise only those that are out of sync, which is
// what the check command shows.
func (r *Repository) List(verbose bool) []Entry {
	sorted := make([]*dotfile.Dotfile, len(r.dotfiles))
	copy(sorted, r.dotfiles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var listing []Entry
	for _, d := range sorted {
		if verbose || d.Status() != types.StatusSynced {
			listing = append(listing, Entry{Name: d.Basename(), Status: d.Status()})
		}
	}
	return listing
}

// Sync applies the given mode to every managed dotfile. The sweep is
// best-effort, not transactional: a skip or per-item failure does not stop
// the remaining items, and re-running converges whatever was left.
func (r *Repository) Sync(mode dotfile.SyncMode) ([]dotfile.Report, error) {
	logger := logging.GetLogger("repo")

	var reports []dotfile.Report
	var errs []error
	for _, d := range r.dotfiles {
		report, err := d.Sync(mode)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrSyncModeInvalid) {
				return reports, err
			}
			logger.Error().Err(err).Str("file", d.Basename()).Msg("sync failed")
			errs = append(errs, err)
			continue
		}
		if report != nil {
			reports = append(reports, *report)
		}
	}

	if err := r.Load(); err != nil {
		errs = append(errs, err)
	}
	return reports, stderrors.Join(errs...)
}

// Add brings each given file under management. Paths whose final component
// does not start with a dot are rejected per item, not as a whole batch.
func (r *Repository) Add(files []string) ([]dotfile.Report, error) {
	return r.batch(files, (*dotfile.Dotfile).Add)
}

// Remove takes each given file out of management, restoring plain files.
func (r *Repository) Remove(files []string) ([]dotfile.Report, error) {
	return r.batch(files, (*dotfile.Dotfile).Remove)
}

func (r *Repository) batch(files []string, op func(*dotfile.Dotfile) (*dotfile.Report, error)) ([]dotfile.Report, error) {
	logger := logging.GetLogger("repo")

	var reports []dotfile.Report
	var errs []error
	for _, f := range files {
		f = paths.TrimTrailingSeparators(f)
		if !strings.HasPrefix(filepath.Base(f), ".") {
			reports = append(reports, dotfile.Report{File: f, Reason: "not a dotfile"})
			continue
		}
		d, err := dotfile.New(f, r.fqpn(f), r.HomeDir, r.ln)
		if err != nil {
			logger.Error().Err(err).Str("file", f).Msg("cannot inspect")
			errs = append(errs, err)
			continue
		}
		report, err := op(d)
		if err != nil {
			logger.Error().Err(err).Str("file", f).Msg("operation failed")
			errs = append(errs, err)
			continue
		}
		if report != nil {
			reports = append(reports, *report)
		}
	}

	// Transient dotfiles mutated the filesystem behind the collection's
	// back; reload so subsequent operations see fresh state.
	if err := r.Load(); err != nil {
		errs = append(errs, err)
	}
	return reports, stderrors.Join(errs...)
}

// fqpn maps a home-side dotfile path to its fully qualified repository
// path, re-applying the configured prefix in place of the leading dot.
func (r *Repository) fqpn(path string) string {
	return filepath.Join(r.RepoDir, r.Prefix+strings.TrimPrefix(filepath.Base(path), "."))
}

// Move relocates the repository directory. It aborts before any mutation
// if target already exists. Dotfiles that were synced before the move and
// are unsynced after it only went stale because the target path changed,
// so those are force-relinked; dotfiles broken before the move stay as
// they were.
func (r *Repository) Move(target string) error {
	target = paths.TrimTrailingSeparators(paths.ExpandUser(target, r.HomeDir))

	if _, err := os.Lstat(target); err == nil {
		return errors.Newf(errors.ErrTargetExists, "target already exists: %s", target)
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", target)
	}

	before := make(map[string]types.Status, len(r.dotfiles))
	for _, d := range r.dotfiles {
		before[d.Basename()] = d.Status()
	}

	if err := os.Rename(r.RepoDir, target); err != nil {
		return errors.Wrapf(err, errors.ErrFileMove, "cannot move repository to %s", target)
	}
	r.RepoDir = target

	if err := r.Load(); err != nil {
		return err
	}

	for _, d := range r.dotfiles {
		if before[d.Basename()] == types.StatusSynced && d.Status() == types.StatusUnsynced {
			if _, err := d.Sync(dotfile.SyncOverwrite); err != nil {
				return err
			}
		}
	}

	logger := logging.GetLogger("repo")
	logger.Info().Str("repository", target).Msg("repository moved")
	return nil
}
