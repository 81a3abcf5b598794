package galena

import (
	"path"
	"path/filepath"
)

// Env maps the source-absolute namespace onto the filesystem.
type Env struct {
	rootDir string
}

// NewEnv makes an env rooted at the given filesystem directory.
func NewEnv(rootDir string) *Env { return &Env{rootDir: rootDir} }

// Root returns the filesystem path of the source root.
func (e *Env) Root() string { return e.rootDir }

// Src returns the filesystem path of a file under the source root.
func (e *Env) Src(ps ...string) string {
	if len(ps) == 0 {
		return e.rootDir
	}
	p := path.Join(ps...)
	return filepath.Join(e.rootDir, filepath.FromSlash(p))
}

// FsPath returns the filesystem path of a source-absolute path.
func (e *Env) FsPath(srcAbs string) string {
	return e.Src(srcRel(srcAbs))
}
