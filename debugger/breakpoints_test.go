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

package debugger_test

import (
	"testing"

	"github.com/sixfour/c64core/debugger"
	"github.com/sixfour/c64core/test"
)

func TestHardBreakpointHaltsRepeatedly(t *testing.T) {
	bp := debugger.NewBreakpoints()
	bp.Set(0xc000, debugger.Hard)

	test.ExpectSuccess(t, bp.Check(0xc000))
	test.ExpectSuccess(t, bp.Check(0xc000))
	test.Equate(t, bp.Get(0xc000), debugger.Hard)
}

func TestSoftBreakpointConsumedOnFirstHit(t *testing.T) {
	bp := debugger.NewBreakpoints()
	bp.Set(0xc000, debugger.Soft)

	test.ExpectFailure(t, bp.Check(0xc000))
	test.Equate(t, bp.Get(0xc000), debugger.None)
	test.ExpectFailure(t, bp.Check(0xc000))
}

func TestUntaggedAddressNeverHalts(t *testing.T) {
	bp := debugger.NewBreakpoints()
	test.ExpectFailure(t, bp.Check(0xc000))
}

func TestClearingWithNoneRemovesTag(t *testing.T) {
	bp := debugger.NewBreakpoints()
	bp.Set(0xc000, debugger.Hard)
	bp.Set(0xc000, debugger.None)
	test.Equate(t, bp.Get(0xc000), debugger.None)
	test.ExpectFailure(t, bp.Check(0xc000))
}
