package galena

import (
	"os"

	"gopkg.in/yaml.v3"
	"shanhu.io/misc/errcode"
)

// WorkspaceFile is the workspace config file at the source root.
const WorkspaceFile = "WORKSPACE.galena"

// Workspace configures a source tree for build queries.
type Workspace struct {
	// OutDir is the source-absolute build output directory.
	OutDir string `yaml:"out_dir"`

	// Toolchain is the default toolchain label.
	Toolchain string `yaml:"toolchain"`
}

// DefaultWorkspace returns the workspace used when no workspace file
// exists.
func DefaultWorkspace() *Workspace {
	return &Workspace{
		OutDir:    DefaultOutDir,
		Toolchain: "//toolchains:default",
	}
}

// ReadWorkspace reads the workspace file under env's root. A missing
// file yields the default workspace.
func ReadWorkspace(e *Env) (*Workspace, error) {
	bs, err := os.ReadFile(e.Src(WorkspaceFile))
	if os.IsNotExist(err) {
		return DefaultWorkspace(), nil
	}
	if err != nil {
		return nil, errcode.Annotate(err, "read workspace")
	}

	ws := DefaultWorkspace()
	if err := yaml.Unmarshal(bs, ws); err != nil {
		return nil, errcode.Annotate(err, "parse workspace")
	}
	if ws.OutDir == "" {
		ws.OutDir = DefaultOutDir
	}
	return ws, nil
}

// FileScope makes the evaluation scope for one build file directory.
// dir may be source-absolute or relative to the source root.
func (w *Workspace) FileScope(e *Env, dir string) (*Scope, error) {
	tcCtx := &RefContext{Dir: "//", Root: e.Root()}
	tc, err := ResolveLabel(tcCtx, w.Toolchain, nil)
	if err != nil {
		return nil, err
	}
	return NewScope(&ScopeConfig{
		Dir:        makeSrcPath("//", dir),
		Root:       e.Root(),
		Toolchain:  Label{Dir: tc.Dir, Name: tc.Name},
		Dirs:       &BuildDirs{Out: w.OutDir},
		TrackItems: true,
	}), nil
}
