package galena

import (
	"errors"
	"testing"
)

func TestDeclareRules(t *testing.T) {
	s := testScope(true)
	errs := declareRules(s, []*ruleEntry{
		{typ: ruleAction, v: &Action{
			Name:    "gen",
			Sources: []string{"x.in"},
			Outputs: []string{"gen.c"},
		}},
		{typ: ruleActionForeach, v: &ActionForeach{
			Name:    "compile",
			Sources: []string{"x.c", "y.c"},
			Output:  "{{source_name_part}}.o",
		}},
		{typ: ruleCopy, v: &Copy{
			Name:    "data",
			Sources: []string{"a.bin"},
			Outputs: []string{"//out/a.bin"},
		}},
		{typ: ruleConfig, v: &Config{Name: "warnings"}},
		{typ: ruleGroup, v: &Group{
			Name: "all",
			Deps: []string{":gen", ":data"},
		}},
		{typ: ruleToolchain, v: &Toolchain{Name: "tc"}},
	})
	if errs != nil {
		t.Fatalf("declareRules: %v", errs)
	}

	items, ok := s.Items()
	if !ok {
		t.Fatal("scope tracks no declarations")
	}
	if len(items) != 6 {
		t.Fatalf("got %d items, want 6", len(items))
	}

	// Relative sources qualify against the file's directory; relative
	// outputs land in its gen directory.
	gen := items[0].AsTarget()
	if gen == nil {
		t.Fatal("first item is not a target")
	}
	if got := gen.Sources()[0]; got != "//lib/x.in" {
		t.Errorf("source = %q, want //lib/x.in", got)
	}

	ret, err := queryOutputs(s, StringVal(":gen", nil))
	if err != nil {
		t.Fatalf("query :gen: %v", err)
	}
	wantStrings(t, ret, []string{"//out/gen/lib/gen.c"})

	ret, err = queryOutputs(s, StringVal(":compile", nil))
	if err != nil {
		t.Fatalf("query :compile: %v", err)
	}
	wantStrings(t, ret, []string{"//out/x.o", "//out/y.o"})

	group := items[4].AsTarget()
	if group == nil || group.Type() != GroupTarget {
		t.Fatal("fifth item is not a group target")
	}
	if got := group.Deps()[0]; got != testLabel("//lib", "gen") {
		t.Errorf("group dep = %v, want //lib:gen", got)
	}
}

func TestDeclareRules_Redeclared(t *testing.T) {
	s := testScope(true)
	errs := declareRules(s, []*ruleEntry{
		{typ: ruleCopy, v: &Copy{
			Name: "data", Outputs: []string{"//out/a"},
		}},
		{typ: ruleCopy, v: &Copy{
			Name: "data", Outputs: []string{"//out/b"},
		}},
	})
	if errs == nil {
		t.Fatal("expected redeclaration errors")
	}

	// The first declaration stays; the second is rejected.
	items, _ := s.Items()
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
}

func TestDeclareRules_Bad(t *testing.T) {
	for _, test := range []struct {
		name string
		r    *ruleEntry
		kind error
	}{
		{"no name", &ruleEntry{
			typ: ruleCopy, v: &Copy{Outputs: []string{"//out/a"}},
		}, ErrBadLabel},
		{"name with colon", &ruleEntry{
			typ: ruleCopy,
			v:   &Copy{Name: "a:b", Outputs: []string{"//out/a"}},
		}, ErrBadLabel},
		{"foreach without pattern", &ruleEntry{
			typ: ruleActionForeach,
			v:   &ActionForeach{Name: "c", Sources: []string{"x.c"}},
		}, ErrBadPattern},
		{"foreach bad pattern", &ruleEntry{
			typ: ruleActionForeach,
			v: &ActionForeach{
				Name: "c", Sources: []string{"x.c"},
				Output: "{{nope}}",
			},
		}, ErrBadPattern},
		{"bad dep", &ruleEntry{
			typ: ruleGroup,
			v:   &Group{Name: "g", Deps: []string{"a:b:c"}},
		}, ErrBadLabel},
		{"unknown type", &ruleEntry{
			typ: "weird", v: struct{}{},
		}, ErrBadValue},
	} {
		s := testScope(true)
		errs := declareRules(s, []*ruleEntry{test.r})
		if len(errs) == 0 {
			t.Errorf("%s: expected errors", test.name)
			continue
		}
		if !errors.Is(errs[0].Err, test.kind) {
			t.Errorf("%s: got %v, want %v",
				test.name, errs[0].Err, test.kind)
		}
	}
}
