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

// Package instance defines those parts of the emulation that might change
// from instance to instance of the machine, but are not the machine itself.
//
// Particularly useful when running more than one instance of the emulation
// in parallel (for example, a host comparing several runs of the same
// program side by side).
package instance

import (
	"github.com/sixfour/c64core/prefs"
	"github.com/sixfour/c64core/random"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the machine, but are not the machine itself.
type Instance struct {
	Prefs  *prefs.Preferences
	Random *random.Random
}

// NewInstance is the preferred method of initialisation for the Instance
// type. tv supplies the current raster position to seed the instance's
// Random.
func NewInstance(tv random.TV) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(tv),
	}

	var err error

	ins.Prefs, err = prefs.NewPreferences()
	if err != nil {
		return nil, err
	}

	return ins, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// regression testing where the initial state must be the same for every run
// of the test.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}
