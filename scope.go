package galena

// DefaultOutDir is the build output directory used when a scope does
// not set its own.
const DefaultOutDir = "//out"

// ScopeConfig configures a new evaluation scope.
type ScopeConfig struct {
	Dir       string // current source-absolute directory
	Root      string // filesystem path of the source root
	Toolchain Label  // active toolchain

	Dirs     *BuildDirs     // nil means DefaultOutDir
	Expander SourceExpander // nil means the default pattern expander

	// TrackItems turns on the declaration collector. A scope without a
	// collector can still resolve labels but answers every declaration
	// query with ErrNoDeclarations.
	TrackItems bool
}

// Scope is the evaluation context of one build file: where it runs,
// which toolchain is active, and the declarations it has accumulated so
// far, in declaration order.
type Scope struct {
	dir       string
	root      string
	toolchain Label

	dirs     *BuildDirs
	expander SourceExpander

	items      []Item
	trackItems bool
}

// NewScope makes a scope from a config.
func NewScope(config *ScopeConfig) *Scope {
	dirs := config.Dirs
	if dirs == nil {
		dirs = &BuildDirs{Out: DefaultOutDir}
	}
	x := config.Expander
	if x == nil {
		x = &PatternExpander{Dirs: dirs}
	}
	return &Scope{
		dir:        config.Dir,
		root:       config.Root,
		toolchain:  config.Toolchain,
		dirs:       dirs,
		expander:   x,
		trackItems: config.TrackItems,
	}
}

// Dir returns the scope's current source directory.
func (s *Scope) Dir() string { return s.dir }

// Toolchain returns the scope's active toolchain label.
func (s *Scope) Toolchain() Label { return s.toolchain }

// Dirs returns the scope's build directories.
func (s *Scope) Dirs() *BuildDirs { return s.dirs }

// RefContext returns the label-resolution context of this scope.
func (s *Scope) RefContext() *RefContext {
	return &RefContext{
		Dir:       s.dir,
		Root:      s.root,
		Toolchain: s.toolchain,
	}
}

// Declare appends an item to the scope's collector. Declarations are
// strictly sequential within a build file; there is no concurrent
// writer. Declaring into a non-tracking scope is a no-op.
func (s *Scope) Declare(item Item) {
	if !s.trackItems {
		return
	}
	s.items = append(s.items, item)
}

// Items returns a read-only view of the declarations so far, in
// declaration order. ok is false when the scope has no collector;
// callers must not hold the slice across further declarations.
func (s *Scope) Items() (items []Item, ok bool) {
	if !s.trackItems {
		return nil, false
	}
	return s.items, true
}
