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

package romloader_test

import (
	"testing"

	"github.com/sixfour/c64core/emuerr"
	"github.com/sixfour/c64core/romloader"
	"github.com/sixfour/c64core/test"
)

func TestWrongLengthRejected(t *testing.T) {
	err := romloader.Verify(romloader.Image{Kind: romloader.BASIC, Data: make([]byte, 100)})
	test.ExpectSuccess(t, emuerr.Is(err, emuerr.ErrInvalidInput))
}

func TestCorrectLengthAccepted(t *testing.T) {
	err := romloader.Verify(romloader.Image{Kind: romloader.CHAR, Data: make([]byte, 4096)})
	test.ExpectSuccess(t, err == nil)
}

func TestPinnedHashMismatchRejected(t *testing.T) {
	err := romloader.Verify(romloader.Image{Kind: romloader.KERNAL, Data: make([]byte, 8192), WantSHA1: "0000000000000000000000000000000000000a"})
	test.ExpectSuccess(t, emuerr.Is(err, emuerr.ErrInvalidInput))
}

func TestMissingReportsOutstandingImagesOnly(t *testing.T) {
	s := romloader.NewSet()
	test.ExpectFailure(t, s.Ready())

	test.ExpectSuccess(t, s.Add(romloader.Image{Kind: romloader.BASIC, Data: make([]byte, 8192)}) == nil)
	test.ExpectSuccess(t, s.Add(romloader.Image{Kind: romloader.CHAR, Data: make([]byte, 4096)}) == nil)
	test.ExpectEquality(t, s.Missing(), []romloader.ROMKind{romloader.KERNAL})
	test.ExpectFailure(t, s.Ready())

	test.ExpectSuccess(t, s.Add(romloader.Image{Kind: romloader.KERNAL, Data: make([]byte, 8192)}) == nil)
	test.ExpectSuccess(t, s.Ready())
}

func TestVC1541AbsenceDoesNotBlockReady(t *testing.T) {
	s := romloader.NewSet()
	_ = s.Add(romloader.Image{Kind: romloader.BASIC, Data: make([]byte, 8192)})
	_ = s.Add(romloader.Image{Kind: romloader.CHAR, Data: make([]byte, 4096)})
	_ = s.Add(romloader.Image{Kind: romloader.KERNAL, Data: make([]byte, 8192)})
	test.ExpectSuccess(t, s.Ready())

	_, ok := s.Get(romloader.VC1541)
	test.ExpectFailure(t, ok)
}
