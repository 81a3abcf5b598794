package galena

// Action declares a single-shot build action. Its outputs are listed
// literally.
type Action struct {
	Name string

	// Script to run for this action.
	Script string `json:",omitempty"`

	// Input source files.
	Sources []string `json:",omitempty"`

	// Files the action writes.
	Outputs []string `json:",omitempty"`

	// Other rule labels this action depends on.
	Deps []string `json:",omitempty"`
}

// ActionForeach declares a build action that runs once per source file.
// Output is a pattern expanded for each source.
type ActionForeach struct {
	Name string

	Script  string   `json:",omitempty"`
	Sources []string `json:",omitempty"`

	// Output pattern, e.g. "{{source_gen_dir}}/{{source_name_part}}.c".
	Output string

	Deps []string `json:",omitempty"`
}

// Copy declares a rule that copies its sources to the listed outputs.
type Copy struct {
	Name string

	Sources []string `json:",omitempty"`
	Outputs []string
}

// GeneratedFile declares a file written at build-graph generation time.
type GeneratedFile struct {
	Name string

	// Contents written into the outputs.
	Contents string `json:",omitempty"`

	Outputs []string
}

// Group declares a pass-through grouping of other rules. A group has no
// build action and no output files; it just bundles rules together.
type Group struct {
	Name string

	Deps []string `json:",omitempty"`
}

// SourceSet declares a source aggregation. Like a group, it produces no
// output files of its own.
type SourceSet struct {
	Name string

	Sources []string `json:",omitempty"`
	Deps    []string `json:",omitempty"`
}

// Config declares compile settings that other targets can import. A
// config is not a target.
type Config struct {
	Name string

	Defines     []string `json:",omitempty"`
	IncludeDirs []string `json:",omitempty"`
}

// Toolchain declares a toolchain. A toolchain is not a target.
type Toolchain struct {
	Name string
}
