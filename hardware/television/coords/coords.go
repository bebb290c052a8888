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

// Package coords describes the raster position of the television signal: the
// frame number, the scanline within the frame, and the clock (cycle) within
// the scanline.
package coords

import "fmt"

// FrameIsUndefined can be used in place of a real frame number to indicate
// that the frame field should not be compared by Equal.
const FrameIsUndefined = -1

// TelevisionCoords identifies a single point in the raster: which frame,
// which scanline within that frame, and which clock within that scanline.
type TelevisionCoords struct {
	Frame    int
	Scanline int
	Clock    int
}

// String implements the fmt.Stringer interface.
func (c TelevisionCoords) String() string {
	return fmt.Sprintf("frame: %d, scanline: %d, clock: %d", c.Frame, c.Scanline, c.Clock)
}

// Equal compares two TelevisionCoords values. If either value's Frame field
// is FrameIsUndefined then the Frame field is excluded from the comparison.
func Equal(a, b TelevisionCoords) bool {
	if a.Clock != b.Clock {
		return false
	}
	if a.Scanline != b.Scanline {
		return false
	}
	if a.Frame == FrameIsUndefined || b.Frame == FrameIsUndefined {
		return true
	}
	return a.Frame == b.Frame
}
