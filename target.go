package galena

import (
	"shanhu.io/text/lexing"
)

// TargetType is the closed set of target kinds.
type TargetType int

// Target kinds.
const (
	UnknownTarget TargetType = iota
	GroupTarget
	SourceSetTarget
	ExecutableTarget
	StaticLibraryTarget
	SharedLibraryTarget
	CopyTarget
	ActionTarget
	ActionForeachTarget
	GeneratedFileTarget
)

func (t TargetType) String() string {
	switch t {
	case GroupTarget:
		return "group"
	case SourceSetTarget:
		return "source_set"
	case ExecutableTarget:
		return "executable"
	case StaticLibraryTarget:
		return "static_library"
	case SharedLibraryTarget:
		return "shared_library"
	case CopyTarget:
		return "copy"
	case ActionTarget:
		return "action"
	case ActionForeachTarget:
		return "action_foreach"
	case GeneratedFileTarget:
		return "generated_file"
	}
	return "unknown"
}

// Target is a declared unit of build work. Action-like kinds carry
// either a static output list or an output pattern expanded over the
// source list.
type Target struct {
	label Label
	typ   TargetType
	pos   *lexing.Pos

	// Source files, source-absolute, in declaration order.
	sources []string

	// Static outputs, source-absolute, in declaration order. Used by
	// action, copy and generated_file targets.
	outputs []string

	// Output pattern for action_foreach targets.
	pattern *OutputPattern

	// Labels of direct dependencies. Not used by output queries.
	deps []Label
}

// NewTarget makes a target of the given kind.
func NewTarget(label Label, typ TargetType, pos *lexing.Pos) *Target {
	return &Target{label: label, typ: typ, pos: pos}
}

// Label returns the target's label.
func (t *Target) Label() Label { return t.label }

// KindName returns the target kind name.
func (t *Target) KindName() string { return t.typ.String() }

// Pos returns the declaration position.
func (t *Target) Pos() *lexing.Pos { return t.pos }

// AsTarget returns the target itself.
func (t *Target) AsTarget() *Target { return t }

// Type returns the target kind.
func (t *Target) Type() TargetType { return t.typ }

// SetSources sets the source list.
func (t *Target) SetSources(sources []string) { t.sources = sources }

// Sources returns the source list.
func (t *Target) Sources() []string { return t.sources }

// SetOutputs sets the static output list.
func (t *Target) SetOutputs(outputs []string) { t.outputs = outputs }

// SetOutputPattern sets the per-source output pattern.
func (t *Target) SetOutputPattern(p *OutputPattern) { t.pattern = p }

// SetDeps sets the dependency labels.
func (t *Target) SetDeps(deps []Label) { t.deps = deps }

// Deps returns the dependency labels.
func (t *Target) Deps() []Label { return t.deps }

// outputPolicy classifies how a target kind produces its outputs.
type outputPolicy int

const (
	staticOutputs   outputPolicy = iota // stored outputs, verbatim
	expandedOutputs                     // pattern applied per source
	noOutputs                           // kind has no queryable outputs
)

// policy returns the output policy of a target kind. The switch is
// exhaustive over the kind set so that new kinds must pick a policy
// here before they parse.
func (t TargetType) policy() outputPolicy {
	switch t {
	case ActionTarget, CopyTarget, GeneratedFileTarget:
		return staticOutputs
	case ActionForeachTarget:
		return expandedOutputs
	case GroupTarget, SourceSetTarget:
		// Grouping kinds have no output files of their own.
		return noOutputs
	case ExecutableTarget, StaticLibraryTarget, SharedLibraryTarget:
		// Binary output names depend on toolchain definitions that are
		// not guaranteed loaded while build files still run.
		return noOutputs
	}
	return noOutputs
}
