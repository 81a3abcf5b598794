// Copyright (C) 2022  Shanhu Tech Inc.
//
// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, either version 3 of the License, or (at your
// option) any later version.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License
// for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package galena

import (
	"strings"

	"shanhu.io/misc/jsonx"
	"shanhu.io/text/lexing"
)

// BuildFileName is the file name of build files.
const BuildFileName = "BUILD.galena"

const (
	ruleAction        = "action"
	ruleActionForeach = "action_foreach"
	ruleCopy          = "copy"
	ruleGeneratedFile = "generated_file"
	ruleGroup         = "group"
	ruleSourceSet     = "source_set"
	ruleConfig        = "config"
	ruleToolchain     = "toolchain"
)

func makeBuildFileNode(t string) interface{} {
	switch t {
	case ruleAction:
		return new(Action)
	case ruleActionForeach:
		return new(ActionForeach)
	case ruleCopy:
		return new(Copy)
	case ruleGeneratedFile:
		return new(GeneratedFile)
	case ruleGroup:
		return new(Group)
	case ruleSourceSet:
		return new(SourceSet)
	case ruleConfig:
		return new(Config)
	case ruleToolchain:
		return new(Toolchain)
	}
	return nil
}

// ruleEntry is one parsed declaration from a build file.
type ruleEntry struct {
	pos *lexing.Pos
	typ string
	v   interface{}
}

// LoadBuildFile reads the build file of the scope's directory and
// declares its items into the scope, in file order.
func LoadBuildFile(e *Env, s *Scope) []*lexing.Error {
	fp := e.Src(srcRel(s.Dir()), BuildFileName)
	rules, errs := jsonx.ReadSeriesFile(fp, makeBuildFileNode)
	if errs != nil {
		return errs
	}

	var entries []*ruleEntry
	for _, r := range rules {
		entries = append(entries, &ruleEntry{
			pos: r.Pos,
			typ: r.Type,
			v:   r.V,
		})
	}
	return declareRules(s, entries)
}

// declareRules converts rule entries into items and declares them in
// order. Redeclared labels are diagnosed here, so queries downstream
// can assume labels in the collector are unique.
func declareRules(s *Scope, entries []*ruleEntry) []*lexing.Error {
	errList := lexing.NewErrorList()
	seen := make(map[Label]*lexing.Pos)

	for _, r := range entries {
		item, err := itemFromRule(s, r)
		if err != nil {
			errList.Add(&lexing.Error{Pos: r.pos, Err: err})
			continue
		}

		label := item.Label()
		if prev, ok := seen[label]; ok {
			errList.Errorf(r.pos, "%s redeclared", label)
			if prev != nil {
				errList.Errorf(prev, "  previously declared here")
			}
			continue
		}
		seen[label] = r.pos
		s.Declare(item)
	}
	return errList.Errs()
}

func (s *Scope) itemLabel(name string, pos *lexing.Pos) (Label, error) {
	if name == "" {
		return Label{}, errAt(pos, ErrBadLabel, "rule has no name")
	}
	if strings.ContainsAny(name, "/:()") {
		return Label{}, errAt(
			pos, ErrBadLabel, "invalid rule name %q", name,
		)
	}
	return Label{
		Dir:           s.dir,
		Name:          name,
		ToolchainDir:  s.toolchain.Dir,
		ToolchainName: s.toolchain.Name,
	}, nil
}

// qualifySources makes every source source-absolute, relative to the
// scope's directory.
func (s *Scope) qualifySources(sources []string) []string {
	var out []string
	for _, src := range sources {
		out = append(out, makeSrcPath(s.dir, src))
	}
	return out
}

// qualifyOutputs makes every declared output source-absolute. Relative
// outputs land in the generated-file directory mirroring the scope's
// directory.
func (s *Scope) qualifyOutputs(outputs []string) []string {
	var out []string
	gen := s.dirs.GenDir(s.dir)
	for _, o := range outputs {
		if isSrcAbs(o) {
			out = append(out, makeSrcPath("//", o))
		} else {
			out = append(out, joinSrcPath(gen, o))
		}
	}
	return out
}

func (s *Scope) depLabels(deps []string, pos *lexing.Pos) (
	[]Label, error,
) {
	var labels []Label
	ctx := s.RefContext()
	for _, d := range deps {
		label, err := ResolveLabel(ctx, d, pos)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, nil
}

func itemFromRule(s *Scope, r *ruleEntry) (Item, error) {
	switch v := r.v.(type) {
	case *Action:
		label, err := s.itemLabel(v.Name, r.pos)
		if err != nil {
			return nil, err
		}
		deps, err := s.depLabels(v.Deps, r.pos)
		if err != nil {
			return nil, err
		}
		t := NewTarget(label, ActionTarget, r.pos)
		t.SetSources(s.qualifySources(v.Sources))
		t.SetOutputs(s.qualifyOutputs(v.Outputs))
		t.SetDeps(deps)
		return t, nil
	case *ActionForeach:
		label, err := s.itemLabel(v.Name, r.pos)
		if err != nil {
			return nil, err
		}
		if v.Output == "" {
			return nil, errAt(
				r.pos, ErrBadPattern,
				"action_foreach %q needs an output pattern", v.Name,
			)
		}
		p, err := ParseOutputPattern(v.Output, r.pos)
		if err != nil {
			return nil, err
		}
		deps, err := s.depLabels(v.Deps, r.pos)
		if err != nil {
			return nil, err
		}
		t := NewTarget(label, ActionForeachTarget, r.pos)
		t.SetSources(s.qualifySources(v.Sources))
		t.SetOutputPattern(p)
		t.SetDeps(deps)
		return t, nil
	case *Copy:
		label, err := s.itemLabel(v.Name, r.pos)
		if err != nil {
			return nil, err
		}
		t := NewTarget(label, CopyTarget, r.pos)
		t.SetSources(s.qualifySources(v.Sources))
		t.SetOutputs(s.qualifyOutputs(v.Outputs))
		return t, nil
	case *GeneratedFile:
		label, err := s.itemLabel(v.Name, r.pos)
		if err != nil {
			return nil, err
		}
		t := NewTarget(label, GeneratedFileTarget, r.pos)
		t.SetOutputs(s.qualifyOutputs(v.Outputs))
		return t, nil
	case *Group:
		label, err := s.itemLabel(v.Name, r.pos)
		if err != nil {
			return nil, err
		}
		deps, err := s.depLabels(v.Deps, r.pos)
		if err != nil {
			return nil, err
		}
		t := NewTarget(label, GroupTarget, r.pos)
		t.SetDeps(deps)
		return t, nil
	case *SourceSet:
		label, err := s.itemLabel(v.Name, r.pos)
		if err != nil {
			return nil, err
		}
		deps, err := s.depLabels(v.Deps, r.pos)
		if err != nil {
			return nil, err
		}
		t := NewTarget(label, SourceSetTarget, r.pos)
		t.SetSources(s.qualifySources(v.Sources))
		t.SetDeps(deps)
		return t, nil
	case *Config:
		label, err := s.itemLabel(v.Name, r.pos)
		if err != nil {
			return nil, err
		}
		c := NewConfigDecl(label, r.pos)
		c.Defines = v.Defines
		c.IncludeDirs = v.IncludeDirs
		return c, nil
	case *Toolchain:
		label, err := s.itemLabel(v.Name, r.pos)
		if err != nil {
			return nil, err
		}
		return NewToolchainDecl(label, r.pos), nil
	}
	return nil, errAt(r.pos, ErrBadValue, "unknown rule type %q", r.typ)
}
