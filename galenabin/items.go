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

	"shanhu.io/misc/errcode"
)

func cmdItems(args []string) error {
	flags := cmdFlags.New()
	wd := new(workDirFlags)
	declareWorkDirFlags(flags, wd)
	args = flags.ParseArgs(args)

	if len(args) != 0 {
		return errcode.InvalidArgf("expects no arguments")
	}

	_, scope, err := loadFileScope(wd)
	if err != nil {
		return err
	}

	items, ok := scope.Items()
	if !ok {
		return errcode.Internalf("scope tracks no declarations")
	}
	for _, item := range items {
		fmt.Printf(
			"%s %s\n",
			item.KindName(), item.Label().Display(scope.Toolchain()),
		)
	}
	return nil
}
