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
	"path"
	"strings"

	"shanhu.io/text/lexing"
)

// Label canonically names a declared item. Dir is the source-absolute
// directory, Name the item name within it. ToolchainDir and ToolchainName
// name the toolchain the item is declared under. Two labels name the same
// item exactly when the structs are equal.
type Label struct {
	Dir  string
	Name string

	ToolchainDir  string
	ToolchainName string
}

// Toolchain returns the toolchain part as a label of its own.
func (l Label) Toolchain() Label {
	return Label{Dir: l.ToolchainDir, Name: l.ToolchainName}
}

func joinLabel(dir, name string) string {
	if dir == "//" {
		return "//:" + name
	}
	return dir + ":" + name
}

// String returns the label without its toolchain part.
func (l Label) String() string { return joinLabel(l.Dir, l.Name) }

// Display returns the label, with the toolchain part appended when it
// differs from def.
func (l Label) Display(def Label) string {
	s := l.String()
	if l.ToolchainDir == def.Dir && l.ToolchainName == def.Name {
		return s
	}
	if l.ToolchainDir == "" && l.ToolchainName == "" {
		return s
	}
	return s + "(" + joinLabel(l.ToolchainDir, l.ToolchainName) + ")"
}

// RefContext carries the implicit qualifiers of a label reference: where
// the reference appears and which toolchain is active there.
type RefContext struct {
	Dir       string // current source-absolute directory
	Root      string // filesystem path of the source root
	Toolchain Label  // active toolchain
}

func badLabelf(pos *lexing.Pos, s, reason string) error {
	return errAt(pos, ErrBadLabel, "%q: %s", s, reason)
}

// ResolveLabel qualifies a textual label reference into a canonical
// label. Accepted forms are "//dir:name", "//dir" (the last directory
// component doubles as the name), ":name" (current directory), and
// relative "dir" or "dir:name", each optionally followed by an explicit
// toolchain suffix "(//tc:name)". Without a suffix the context's
// toolchain is inherited.
func ResolveLabel(ctx *RefContext, s string, pos *lexing.Pos) (
	Label, error,
) {
	ref := s
	if ref == "" {
		return Label{}, badLabelf(pos, s, "empty label")
	}

	tc := ctx.Toolchain
	if strings.HasSuffix(ref, ")") {
		open := strings.LastIndex(ref, "(")
		if open < 0 {
			return Label{}, badLabelf(pos, s, "unmatched ')'")
		}
		inner := ref[open+1 : len(ref)-1]
		ref = ref[:open]
		if ref == "" {
			return Label{}, badLabelf(pos, s, "toolchain without a label")
		}
		tcCtx := &RefContext{Dir: ctx.Dir, Root: ctx.Root}
		resolved, err := ResolveLabel(tcCtx, inner, pos)
		if err != nil {
			return Label{}, badLabelf(pos, s, "bad toolchain suffix")
		}
		tc = Label{Dir: resolved.Dir, Name: resolved.Name}
	}

	if strings.HasPrefix(ref, "/") && !isSrcAbs(ref) {
		// A filesystem-absolute reference must live under the source
		// root to have a source-absolute form.
		root := strings.TrimSuffix(ctx.Root, "/")
		if root == "" || !strings.HasPrefix(ref, root+"/") {
			return Label{}, badLabelf(pos, s, "outside the source root")
		}
		ref = "//" + strings.TrimPrefix(ref, root+"/")
	}

	dirPart, name := ref, ""
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		dirPart, name = ref[:i], ref[i+1:]
	}
	if strings.Contains(dirPart, ":") {
		return Label{}, badLabelf(pos, s, "more than one ':'")
	}

	var dir string
	switch {
	case dirPart == "":
		if name == "" {
			return Label{}, badLabelf(pos, s, "empty label")
		}
		dir = ctx.Dir
	default:
		dir = makeSrcPath(ctx.Dir, dirPart)
	}

	if name == "" {
		name = path.Base(srcRel(dir))
		if name == "." || name == "/" || name == "" {
			return Label{}, badLabelf(pos, s, "no name part")
		}
	}
	if strings.ContainsAny(name, "/:()") {
		return Label{}, badLabelf(pos, s, "invalid name part")
	}

	return Label{
		Dir:           dir,
		Name:          name,
		ToolchainDir:  tc.Dir,
		ToolchainName: tc.Name,
	}, nil
}
