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

	"shanhu.io/text/lexing"
)

// BuildDirs locates the build output tree inside the source-absolute
// namespace.
type BuildDirs struct {
	Out string // build output directory, e.g. "//out"
}

// ObjDir returns the object directory mirroring a source directory.
func (d *BuildDirs) ObjDir(srcDir string) string {
	return joinSrcPath(d.Out, "obj/"+srcRel(srcDir))
}

// GenDir returns the generated-file directory mirroring a source
// directory.
func (d *BuildDirs) GenDir(srcDir string) string {
	return joinSrcPath(d.Out, "gen/"+srcRel(srcDir))
}

type subToken int

const (
	subNone subToken = iota
	subSource
	subSourceFilePart
	subSourceNamePart
	subSourceDir
	subSourceOutDir
	subSourceGenDir
)

var subTokens = map[string]subToken{
	"source":           subSource,
	"source_file_part": subSourceFilePart,
	"source_name_part": subSourceNamePart,
	"source_dir":       subSourceDir,
	"source_out_dir":   subSourceOutDir,
	"source_gen_dir":   subSourceGenDir,
}

type patternSeg struct {
	lit string
	sub subToken
}

// OutputPattern is a parsed output pattern: literal text with
// "{{source...}}" placeholders that expand per source file.
type OutputPattern struct {
	raw  string
	segs []patternSeg
}

// Raw returns the pattern text as written.
func (p *OutputPattern) Raw() string { return p.raw }

// ParseOutputPattern parses a pattern string. Unknown placeholders and
// unterminated braces are errors.
func ParseOutputPattern(s string, pos *lexing.Pos) (
	*OutputPattern, error,
) {
	p := &OutputPattern{raw: s}
	rest := s
	for rest != "" {
		open := strings.Index(rest, "{{")
		if open < 0 {
			p.segs = append(p.segs, patternSeg{lit: rest})
			break
		}
		if open > 0 {
			p.segs = append(p.segs, patternSeg{lit: rest[:open]})
		}
		rest = rest[open+2:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			return nil, errAt(
				pos, ErrBadPattern, "%q: unterminated placeholder", s,
			)
		}
		name := rest[:end]
		rest = rest[end+2:]
		tok, ok := subTokens[name]
		if !ok {
			return nil, errAt(
				pos, ErrBadPattern, "%q: unknown placeholder %q", s, name,
			)
		}
		p.segs = append(p.segs, patternSeg{sub: tok})
	}
	return p, nil
}

// SourceExpander expands an output pattern over an ordered source list,
// producing one source-absolute output path per source, in source
// order. Implementations must be pure: same inputs, same outputs, no
// side effects.
type SourceExpander interface {
	Expand(p *OutputPattern, sources []string) ([]string, error)
}

// PatternExpander is the default SourceExpander. A result that does not
// come out source-absolute is anchored at the build output directory.
type PatternExpander struct {
	Dirs *BuildDirs
}

func (x *PatternExpander) expandOne(p *OutputPattern, src string) string {
	dir := srcDirOf(src)
	var b strings.Builder
	for _, seg := range p.segs {
		switch seg.sub {
		case subNone:
			b.WriteString(seg.lit)
		case subSource:
			b.WriteString(srcRel(src))
		case subSourceFilePart:
			b.WriteString(fileNamePart(src))
		case subSourceNamePart:
			b.WriteString(namePart(src))
		case subSourceDir:
			b.WriteString(srcRel(dir))
		case subSourceOutDir:
			b.WriteString(x.Dirs.ObjDir(dir))
		case subSourceGenDir:
			b.WriteString(x.Dirs.GenDir(dir))
		}
	}
	out := b.String()
	if !isSrcAbs(out) {
		out = joinSrcPath(x.Dirs.Out, out)
	}
	return out
}

// Expand applies the pattern to every source, in order.
func (x *PatternExpander) Expand(
	p *OutputPattern, sources []string,
) ([]string, error) {
	outs := make([]string, 0, len(sources))
	for _, src := range sources {
		outs = append(outs, x.expandOne(p, src))
	}
	return outs, nil
}
