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
	"shanhu.io/text/lexing"
)

const supportedOutputKinds = "action, action_foreach, copy and " +
	"generated_file"

// TargetOutputs computes the ordered, source-absolute output files of a
// target. Static kinds return their stored output list verbatim;
// action_foreach expands its output pattern over the sources, one
// output per source, in source order. The computation is pure and
// recomputed on every call.
func TargetOutputs(t *Target, x SourceExpander, pos *lexing.Pos) (
	[]string, error,
) {
	switch t.typ.policy() {
	case staticOutputs:
		return append([]string(nil), t.outputs...), nil
	case expandedOutputs:
		if t.pattern == nil {
			return nil, nil
		}
		return x.Expand(t.pattern, t.sources)
	}
	return nil, errAt(
		pos, ErrBadTargetType,
		"%s is a %s target", t.label, t.typ,
	).withHelp("only %s targets have queryable outputs",
		supportedOutputKinds)
}

// Call is one builtin function invocation from a build file.
type Call struct {
	Name string
	Args []Value
	Pos  *lexing.Pos
}

// BuiltinFunc runs a builtin query against a scope.
type BuiltinFunc func(s *Scope, c *Call) (Value, error)

var builtins = map[string]BuiltinFunc{
	"get_target_outputs":    runGetTargetOutputs,
	"process_file_template": runProcessFileTemplate,
}

// CallBuiltin dispatches a builtin call by name. The scope is only
// read, never modified; failures abort the call with a positioned
// error and return no partial result.
func CallBuiltin(s *Scope, c *Call) (Value, error) {
	fn, ok := builtins[c.Name]
	if !ok {
		return Value{}, errAt(
			c.Pos, ErrUndefined, "unknown function %q", c.Name,
		)
	}
	return fn(s, c)
}

// runGetTargetOutputs resolves a label against the scope, finds the
// declaration among the items declared so far, and returns the
// target's output files as a list of strings.
func runGetTargetOutputs(s *Scope, c *Call) (Value, error) {
	if len(c.Args) != 1 {
		return Value{}, errAt(
			c.Pos, ErrArgCount,
			"get_target_outputs takes one argument, got %d", len(c.Args),
		)
	}
	arg := c.Args[0]
	if err := arg.checkType(StringValue); err != nil {
		return Value{}, err
	}

	label, err := ResolveLabel(s.RefContext(), arg.Str(), arg.Pos())
	if err != nil {
		return Value{}, err
	}

	// Declarations made so far in this scope sit in the item
	// collector; scan it in declaration order.
	items, ok := s.Items()
	if !ok {
		return Value{}, errAt(
			c.Pos, ErrNoDeclarations,
			"this context tracks no declarations",
		)
	}

	var target *Target
	for _, item := range items {
		if item.Label() != label {
			continue
		}
		t := item.AsTarget()
		if t == nil {
			return Value{}, errAt(
				c.Pos, ErrNotTarget,
				"%s refers to a %s",
				label.Display(s.toolchain), item.KindName(),
			)
		}
		target = t
		break
	}
	if target == nil {
		return Value{}, errAt(
			c.Pos, ErrUndefined,
			"%s not found in this context",
			label.Display(s.toolchain),
		).withHelp("only targets declared earlier in the current " +
			"build file are visible; later declarations and other " +
			"build files are not")
	}

	outs, err := TargetOutputs(target, s.expander, c.Pos)
	if err != nil {
		return Value{}, err
	}
	return StringListVal(outs, c.Pos), nil
}

// runProcessFileTemplate applies output patterns to an explicit source
// list, without a target lookup. The first argument is the list of
// source files; the second is a pattern string or a list of pattern
// strings. Results are source-major: all patterns of the first source,
// then the second, and so on.
func runProcessFileTemplate(s *Scope, c *Call) (Value, error) {
	if len(c.Args) != 2 {
		return Value{}, errAt(
			c.Pos, ErrArgCount,
			"process_file_template takes two arguments, got %d",
			len(c.Args),
		)
	}

	rawSources, err := stringList(c.Args[0])
	if err != nil {
		return Value{}, err
	}
	sources := make([]string, 0, len(rawSources))
	for _, src := range rawSources {
		sources = append(sources, makeSrcPath(s.dir, src))
	}

	var rawPatterns []string
	switch c.Args[1].Type() {
	case StringValue:
		rawPatterns = []string{c.Args[1].Str()}
	case ListValue:
		rawPatterns, err = stringList(c.Args[1])
		if err != nil {
			return Value{}, err
		}
	default:
		return Value{}, errAt(
			c.Args[1].Pos(), ErrBadValue,
			"expected a string or list value, got %s", c.Args[1].Type(),
		)
	}

	patterns := make([]*OutputPattern, 0, len(rawPatterns))
	for _, raw := range rawPatterns {
		p, err := ParseOutputPattern(raw, c.Pos)
		if err != nil {
			return Value{}, err
		}
		patterns = append(patterns, p)
	}

	perPattern := make([][]string, 0, len(patterns))
	for _, p := range patterns {
		outs, err := s.expander.Expand(p, sources)
		if err != nil {
			return Value{}, err
		}
		perPattern = append(perPattern, outs)
	}

	var outs []string
	for i := range sources {
		for _, po := range perPattern {
			outs = append(outs, po[i])
		}
	}
	return StringListVal(outs, c.Pos), nil
}
