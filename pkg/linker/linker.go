// Package linker abstracts the platform symlink primitive. Some platforms
// distinguish file links from directory links; the implementation selected
// at startup resolves that internally so callers only ever see a single
// Create operation.
package linker

// Linker creates symbolic links.
type Linker interface {
	// Create makes link point at target. The parent directory of link must
	// exist; nothing may already exist at link.
	Create(target, link string) error
}

// New returns the Linker for the current platform.
func New() Linker {
	return platformLinker{}
}
