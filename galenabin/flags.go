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

package galenabin

import (
	"os"

	"shanhu.io/galena"
	"shanhu.io/misc/errcode"
	"shanhu.io/misc/flagutil"
	"shanhu.io/misc/osutil"
	"shanhu.io/text/lexing"
)

var cmdFlags = flagutil.NewFactory("galena")

type workDirFlags struct {
	root string
	dir  string
}

func declareWorkDirFlags(flags *flagutil.FlagSet, f *workDirFlags) {
	flags.StringVar(&f.root, "root", ".", "source root directory")
	flags.StringVar(
		&f.dir, "dir", "",
		"build file directory, relative to the root",
	)
}

// loadFileScope reads the workspace and loads the build file of the
// flagged directory into a fresh scope.
func loadFileScope(f *workDirFlags) (*galena.Env, *galena.Scope, error) {
	env := galena.NewEnv(f.root)

	bf := env.Src(f.dir, galena.BuildFileName)
	isFile, err := osutil.IsRegular(bf)
	if err != nil {
		return nil, nil, errcode.Annotatef(err, "check %q", bf)
	}
	if !isFile {
		return nil, nil, errcode.NotFoundf(
			"no %s under %q", galena.BuildFileName, f.dir,
		)
	}
	ws, err := galena.ReadWorkspace(env)
	if err != nil {
		return nil, nil, errcode.Annotate(err, "read workspace")
	}
	scope, err := ws.FileScope(env, f.dir)
	if err != nil {
		return nil, nil, errcode.Annotate(err, "make scope")
	}
	if errs := galena.LoadBuildFile(env, scope); errs != nil {
		lexing.FprintErrs(os.Stderr, errs, f.root)
		return nil, nil, errcode.InvalidArgf(
			"loading build file got %d errors", len(errs),
		)
	}
	return env, scope, nil
}
