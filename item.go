package galena

import (
	"shanhu.io/text/lexing"
)

// Item is a named declaration recorded while a build file runs: a
// target, a config or a toolchain. The declaring scope owns the items;
// queries only read them.
type Item interface {
	// Label returns the item's canonical label.
	Label() Label

	// KindName returns the declaration kind for diagnostics.
	KindName() string

	// Pos returns where the item was declared. May be nil.
	Pos() *lexing.Pos

	// AsTarget narrows the item to a target, or returns nil.
	AsTarget() *Target
}

// ConfigDecl is a config declaration. It carries compile settings for
// other targets and produces no output files.
type ConfigDecl struct {
	label Label
	pos   *lexing.Pos

	Defines     []string
	IncludeDirs []string
}

// NewConfigDecl makes a config declaration.
func NewConfigDecl(label Label, pos *lexing.Pos) *ConfigDecl {
	return &ConfigDecl{label: label, pos: pos}
}

// Label returns the config's label.
func (c *ConfigDecl) Label() Label { return c.label }

// KindName returns "config".
func (c *ConfigDecl) KindName() string { return "config" }

// Pos returns the declaration position.
func (c *ConfigDecl) Pos() *lexing.Pos { return c.pos }

// AsTarget returns nil; a config is not a target.
func (c *ConfigDecl) AsTarget() *Target { return nil }

// ToolchainDecl is a toolchain declaration.
type ToolchainDecl struct {
	label Label
	pos   *lexing.Pos
}

// NewToolchainDecl makes a toolchain declaration.
func NewToolchainDecl(label Label, pos *lexing.Pos) *ToolchainDecl {
	return &ToolchainDecl{label: label, pos: pos}
}

// Label returns the toolchain's label.
func (t *ToolchainDecl) Label() Label { return t.label }

// KindName returns "toolchain".
func (t *ToolchainDecl) KindName() string { return "toolchain" }

// Pos returns the declaration position.
func (t *ToolchainDecl) Pos() *lexing.Pos { return t.pos }

// AsTarget returns nil; a toolchain is not a target.
func (t *ToolchainDecl) AsTarget() *Target { return nil }
