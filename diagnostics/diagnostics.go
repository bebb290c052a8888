// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package diagnostics dumps a Graphviz rendering of a live struct graph when
// the Scheduler hits an emuerr.ErrUnreachable (§7): the same
// state-graph-on-fatal idiom the teacher's own test suite uses memviz for,
// here triggered by a broken invariant instead of a parser test case.
package diagnostics

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Dump walks root's struct graph and writes a .dot rendering to w. root is
// typically the *emulation.Machine itself, passed as an interface{} so this
// package never imports emulation (which would be a cycle).
func Dump(w io.Writer, root interface{}) {
	memviz.Map(w, root)
}
