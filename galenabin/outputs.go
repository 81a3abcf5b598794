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

func cmdOutputs(args []string) error {
	flags := cmdFlags.New()
	wd := new(workDirFlags)
	declareWorkDirFlags(flags, wd)
	var fsPaths bool
	flags.BoolVar(&fsPaths, "fs", false, "print filesystem paths")
	args = flags.ParseArgs(args)

	if len(args) == 0 {
		return errcode.InvalidArgf("expects target labels")
	}

	env, scope, err := loadFileScope(wd)
	if err != nil {
		return err
	}

	for _, label := range args {
		call := &galena.Call{
			Name: "get_target_outputs",
			Args: []galena.Value{galena.StringVal(label, nil)},
		}
		ret, err := galena.CallBuiltin(scope, call)
		if err != nil {
			lexing.FprintErrs(os.Stderr, galena.LexingErrs(err), wd.root)
			return errcode.InvalidArgf("query %q failed", label)
		}
		for _, v := range ret.List() {
			p := v.Str()
			if fsPaths {
				p = env.FsPath(p)
			}
			fmt.Println(p)
		}
	}
	return nil
}
