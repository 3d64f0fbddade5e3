// Package style renders status listings for the terminal. Color is applied
// only when stdout is a terminal so piped output stays plain.
package style

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/dotlink/pkg/types"
)

var (
	syncedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	missingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	unsyncedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// colorEnabled is resolved once at startup.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// Status returns the status name, colored when stdout is a terminal.
func Status(s types.Status) string {
	if !colorEnabled {
		return s.String()
	}
	switch s {
	case types.StatusSynced:
		return syncedStyle.Render(s.String())
	case types.StatusMissing:
		return missingStyle.Render(s.String())
	case types.StatusUnsynced:
		return unsyncedStyle.Render(s.String())
	default:
		return s.String()
	}
}

// Entry formats one listing row: the file name padded to a fixed column,
// then its status.
func Entry(name string, s types.Status) string {
	return fmt.Sprintf("%-18s %s", name, Status(s))
}
