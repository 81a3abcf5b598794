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
	"fmt"
	"os"

	"shanhu.io/galena"
	"shanhu.io/misc/errcode"
	"shanhu.io/text/lexing"
)

func cmdExpand(args []string) error {
	flags := cmdFlags.New()
	wd := new(workDirFlags)
	declareWorkDirFlags(flags, wd)
	var pattern string
	flags.StringVar(
		&pattern, "pattern",
		"{{source_gen_dir}}/{{source_name_part}}.c",
		"output pattern to apply",
	)
	args = flags.ParseArgs(args)

	if len(args) == 0 {
		return errcode.InvalidArgf("expects source files")
	}

	// Expansion needs no declarations, so the build file is not
	// loaded here.
	env := galena.NewEnv(wd.root)
	ws, err := galena.ReadWorkspace(env)
	if err != nil {
		return errcode.Annotate(err, "read workspace")
	}
	scope, err := ws.FileScope(env, wd.dir)
	if err != nil {
		return errcode.Annotate(err, "make scope")
	}

	sources := make([]galena.Value, 0, len(args))
	for _, src := range args {
		sources = append(sources, galena.StringVal(src, nil))
	}
	call := &galena.Call{
		Name: "process_file_template",
		Args: []galena.Value{
			galena.ListVal(sources, nil),
			galena.StringVal(pattern, nil),
		},
	}
	ret, err := galena.CallBuiltin(scope, call)
	if err != nil {
		lexing.FprintErrs(os.Stderr, galena.LexingErrs(err), wd.root)
		return errcode.InvalidArgf("expand failed")
	}
	for _, v := range ret.List() {
		fmt.Println(v.Str())
	}
	return nil
}
