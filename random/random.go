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

// Package random supplies the pseudo-randomisation used to initialise RAM
// and registers whose power-up content is, on real hardware, undefined. The
// seed is derived from the current raster position so that, for a given
// sequence of emulated cycles, the values produced are themselves
// deterministic and therefore reproducible in regression tests.
package random

import (
	"math/rand"

	"github.com/sixfour/c64core/hardware/television/coords"
)

// TV is the minimum interface random needs from the television/raster
// source in order to derive a seed.
type TV interface {
	GetCoords() coords.TelevisionCoords
}

// Random produces deterministic-per-seed pseudo-random byte streams.
type Random struct {
	tv TV

	// ZeroSeed forces the seed to zero regardless of the current raster
	// position. Used by regression tests that require bit-exact
	// repeatability of "undefined" power-up content.
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(tv TV) *Random {
	return &Random{tv: tv}
}

func (r *Random) seed() int64 {
	if r.ZeroSeed {
		return 0
	}
	c := r.tv.GetCoords()
	return int64(c.Frame)*1000000 + int64(c.Scanline)*1000 + int64(c.Clock)
}

// Rewindable returns a value that is a deterministic function of the current
// seed and of i: calling it twice with the same seed and the same i always
// produces the same result, which is what makes rewinding/resetting the
// emulation reproducible.
func (r *Random) Rewindable(i int) uint8 {
	src := rand.New(rand.NewSource(r.seed() + int64(i)))
	return uint8(src.Intn(256))
}

// NoRewind returns a genuinely time-varying random value in [0, max], for
// situations where bit-exact reproducibility is not required (interactive
// play, as opposed to regression testing).
func (r *Random) NoRewind(max int) int {
	return rand.Intn(max + 1)
}
