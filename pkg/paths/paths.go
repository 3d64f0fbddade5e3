// Package paths provides small path helpers shared by the config layer and
// the repository core.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandUser replaces a leading "~" in path with home, mirroring shell
// tilde expansion for the current user only ("~other" is left alone).
func ExpandUser(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) || strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// TrimTrailingSeparators strips trailing path separators so that paths
// compare stably. The root path is left untouched.
func TrimTrailingSeparators(path string) string {
	for len(path) > 1 {
		last := path[len(path)-1]
		if last != '/' && last != os.PathSeparator {
			break
		}
		path = path[:len(path)-1]
	}
	return path
}
