//go:build windows

package linker

import "os"

type platformLinker struct{}

func (platformLinker) Create(target, link string) error {
	// Windows uses different primitives for file and directory links, and
	// the choice is made from the target's type at creation time. Probing
	// the target up front turns a dangling-target mistake into a clear
	// error instead of a file link to a directory.
	if _, err := os.Stat(target); err != nil {
		return err
	}
	return os.Symlink(target, link)
}
