package galena

import (
	"path"
	"strings"
)

// Source-absolute paths start with "//" and name files and directories
// relative to the source root. Directories carry no trailing slash except
// the root itself, which is "//".

func isSrcAbs(p string) bool { return strings.HasPrefix(p, "//") }

// srcRel strips the source-absolute prefix.
func srcRel(p string) string {
	return strings.TrimPrefix(strings.TrimPrefix(p, "//"), "/")
}

// makeSrcPath qualifies f against directory dir. An already
// source-absolute f is only cleaned; a relative f cannot escape the
// source root.
func makeSrcPath(dir, f string) string {
	if isSrcAbs(f) {
		return "/" + path.Clean(path.Join("/", srcRel(f)))
	}
	f = path.Clean(path.Join("/", srcRel(dir), f))
	return "/" + f
}

// srcDirOf returns the source-absolute directory of a source-absolute
// file path.
func srcDirOf(p string) string {
	d := path.Dir(srcRel(p))
	if d == "." {
		return "//"
	}
	return "//" + d
}

// fileNamePart returns the file name with its extension.
func fileNamePart(p string) string { return path.Base(p) }

// namePart returns the file name without its extension.
func namePart(p string) string {
	b := path.Base(p)
	ext := path.Ext(b)
	return strings.TrimSuffix(b, ext)
}

// joinSrcPath joins a source-absolute directory and a relative path.
func joinSrcPath(dir, f string) string {
	rel := srcRel(dir)
	if rel == "" {
		return "//" + path.Clean(f)
	}
	return "//" + path.Join(rel, f)
}
