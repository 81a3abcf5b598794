package galena

import (
	"errors"
	"testing"
)

func TestResolveLabel(t *testing.T) {
	ctx := &RefContext{
		Dir:       "//foo/bar",
		Root:      "/src/root",
		Toolchain: Label{Dir: "//tc", Name: "gcc"},
	}

	for _, test := range []struct {
		ref  string
		want Label
	}{
		{"//other:baz", Label{
			Dir: "//other", Name: "baz",
			ToolchainDir: "//tc", ToolchainName: "gcc",
		}},
		{"//other", Label{
			Dir: "//other", Name: "other",
			ToolchainDir: "//tc", ToolchainName: "gcc",
		}},
		{"//foo/bar/baz", Label{
			Dir: "//foo/bar/baz", Name: "baz",
			ToolchainDir: "//tc", ToolchainName: "gcc",
		}},
		{":qux", Label{
			Dir: "//foo/bar", Name: "qux",
			ToolchainDir: "//tc", ToolchainName: "gcc",
		}},
		{"qux", Label{
			Dir: "//foo/bar/qux", Name: "qux",
			ToolchainDir: "//tc", ToolchainName: "gcc",
		}},
		{"sub:n", Label{
			Dir: "//foo/bar/sub", Name: "n",
			ToolchainDir: "//tc", ToolchainName: "gcc",
		}},
		{"//other:baz(//tc2:clang)", Label{
			Dir: "//other", Name: "baz",
			ToolchainDir: "//tc2", ToolchainName: "clang",
		}},
		{"/src/root/abs:n", Label{
			Dir: "//abs", Name: "n",
			ToolchainDir: "//tc", ToolchainName: "gcc",
		}},
	} {
		got, err := ResolveLabel(ctx, test.ref, nil)
		if err != nil {
			t.Errorf("ResolveLabel(%q): %v", test.ref, err)
			continue
		}
		if got != test.want {
			t.Errorf(
				"ResolveLabel(%q) = %v, want %v",
				test.ref, got, test.want,
			)
		}
	}
}

func TestResolveLabel_Bad(t *testing.T) {
	ctx := &RefContext{
		Dir:       "//foo",
		Root:      "/src/root",
		Toolchain: Label{Dir: "//tc", Name: "gcc"},
	}

	for _, ref := range []string{
		"",
		"//",
		":",
		"a:b:c",
		"foo)",
		"(//tc:gcc)",
		"//x:na/me",
		"/elsewhere/abs:n",
		"//x:n(//t:c:d)",
	} {
		_, err := ResolveLabel(ctx, ref, nil)
		if err == nil {
			t.Errorf("ResolveLabel(%q): expected error", ref)
			continue
		}
		if !errors.Is(err, ErrBadLabel) {
			t.Errorf("ResolveLabel(%q): got %v, want ErrBadLabel", ref, err)
		}
	}
}

func TestLabelDisplay(t *testing.T) {
	def := Label{Dir: "//tc", Name: "gcc"}
	l := Label{
		Dir: "//foo", Name: "bar",
		ToolchainDir: "//tc", ToolchainName: "gcc",
	}
	if got := l.Display(def); got != "//foo:bar" {
		t.Errorf("Display = %q, want //foo:bar", got)
	}

	l.ToolchainName = "clang"
	if got := l.Display(def); got != "//foo:bar(//tc:clang)" {
		t.Errorf("Display = %q, want //foo:bar(//tc:clang)", got)
	}
}

func TestLabelString_RootDir(t *testing.T) {
	l := Label{Dir: "//", Name: "top"}
	if got := l.String(); got != "//:top" {
		t.Errorf("String = %q, want //:top", got)
	}
}
