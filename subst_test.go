package galena

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseOutputPattern_Bad(t *testing.T) {
	for _, s := range []string{
		"{{source_name_part}.o",
		"{{no_such_token}}.o",
		"{{source",
	} {
		if _, err := ParseOutputPattern(s, nil); !errors.Is(
			err, ErrBadPattern,
		) {
			t.Errorf("ParseOutputPattern(%q): got %v, want ErrBadPattern",
				s, err)
		}
	}
}

func TestPatternExpand(t *testing.T) {
	x := &PatternExpander{Dirs: &BuildDirs{Out: "//out"}}

	for _, test := range []struct {
		pattern string
		sources []string
		want    []string
	}{{
		pattern: "{{source_name_part}}.o",
		sources: []string{"//x.c", "//y.c"},
		want:    []string{"//out/x.o", "//out/y.o"},
	}, {
		pattern: "{{source_gen_dir}}/{{source_name_part}}.c",
		sources: []string{"//lib/x.proto"},
		want:    []string{"//out/gen/lib/x.c"},
	}, {
		pattern: "{{source_out_dir}}/{{source_file_part}}.stamp",
		sources: []string{"//lib/x.c"},
		want:    []string{"//out/obj/lib/x.c.stamp"},
	}, {
		pattern: "copied/{{source}}",
		sources: []string{"//lib/sub/x.c"},
		want:    []string{"//out/copied/lib/sub/x.c"},
	}, {
		pattern: "{{source_dir}}.list",
		sources: []string{"//lib/x.c"},
		want:    []string{"//out/lib.list"},
	}, {
		pattern: "{{source_name_part}}.o",
		sources: nil,
		want:    []string{},
	}} {
		p, err := ParseOutputPattern(test.pattern, nil)
		if err != nil {
			t.Fatalf("ParseOutputPattern(%q): %v", test.pattern, err)
		}
		got, err := x.Expand(p, test.sources)
		if err != nil {
			t.Fatalf("Expand(%q): %v", test.pattern, err)
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf(
				"Expand(%q, %v) = %v, want %v",
				test.pattern, test.sources, got, test.want,
			)
		}
	}
}

func TestPatternRaw(t *testing.T) {
	const s = "{{source_name_part}}.o"
	p, err := ParseOutputPattern(s, nil)
	if err != nil {
		t.Fatalf("ParseOutputPattern: %v", err)
	}
	if p.Raw() != s {
		t.Errorf("Raw = %q, want %q", p.Raw(), s)
	}
}

func TestBuildDirs(t *testing.T) {
	d := &BuildDirs{Out: "//out"}
	if got := d.ObjDir("//lib"); got != "//out/obj/lib" {
		t.Errorf("ObjDir = %q, want //out/obj/lib", got)
	}
	if got := d.GenDir("//"); got != "//out/gen" {
		t.Errorf("GenDir = %q, want //out/gen", got)
	}
}
