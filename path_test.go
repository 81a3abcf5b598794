package galena

import (
	"testing"
)

func TestMakeSrcPath(t *testing.T) {
	for _, test := range []struct {
		dir, f, want string
	}{
		{"//foo", "x.c", "//foo/x.c"},
		{"//foo/bar", "sub/x.c", "//foo/bar/sub/x.c"},
		{"//", "x.c", "//x.c"},
		{"//foo", "//bar/y.c", "//bar/y.c"},
		{"//foo", "//bar/../y.c", "//y.c"},
		{"//foo", "../esc.c", "//esc.c"},
		{"//foo", "./x.c", "//foo/x.c"},
		{"//", "//", "//"},
	} {
		if got := makeSrcPath(test.dir, test.f); got != test.want {
			t.Errorf(
				"makeSrcPath(%q, %q) = %q, want %q",
				test.dir, test.f, got, test.want,
			)
		}
	}
}

func TestSrcDirOf(t *testing.T) {
	for _, test := range []struct{ p, want string }{
		{"//foo/x.c", "//foo"},
		{"//foo/bar/x.c", "//foo/bar"},
		{"//x.c", "//"},
	} {
		if got := srcDirOf(test.p); got != test.want {
			t.Errorf("srcDirOf(%q) = %q, want %q", test.p, got, test.want)
		}
	}
}

func TestJoinSrcPath(t *testing.T) {
	for _, test := range []struct{ dir, f, want string }{
		{"//out", "x.o", "//out/x.o"},
		{"//out", "gen/lib", "//out/gen/lib"},
		{"//", "x.o", "//x.o"},
	} {
		if got := joinSrcPath(test.dir, test.f); got != test.want {
			t.Errorf(
				"joinSrcPath(%q, %q) = %q, want %q",
				test.dir, test.f, got, test.want,
			)
		}
	}
}

func TestNameParts(t *testing.T) {
	if got := fileNamePart("//foo/x.c"); got != "x.c" {
		t.Errorf("fileNamePart = %q, want x.c", got)
	}
	if got := namePart("//foo/x.c"); got != "x" {
		t.Errorf("namePart = %q, want x", got)
	}
	if got := namePart("//foo/noext"); got != "noext" {
		t.Errorf("namePart = %q, want noext", got)
	}
}
