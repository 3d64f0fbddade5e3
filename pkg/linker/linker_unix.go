//go:build !windows

package linker

import "os"

type platformLinker struct{}

func (platformLinker) Create(target, link string) error {
	return os.Symlink(target, link)
}
