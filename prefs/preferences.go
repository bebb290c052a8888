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

package prefs

// TVStandard names the two supported television standards.
type TVStandard string

const (
	PAL  TVStandard = "PAL"
	NTSC TVStandard = "NTSC"
)

// Preferences holds the small set of settings an emulation instance needs:
// nothing here is required for correctness of any single tick, only for the
// policy decisions a host makes around the core (which TV standard, whether
// to randomise power-up state, warp defaults, how often to auto-snapshot).
type Preferences struct {
	TV TVStandard

	// RandomState controls whether uninitialised RAM and registers are
	// randomised (true, matching real hardware's unpredictable power-up
	// state) or zeroed (false, useful for reproducible regression tests).
	RandomState Bool

	// AlwaysWarp disables wall-clock pacing entirely.
	AlwaysWarp Bool

	// AutoSnapshotIntervalFrames is the number of frames between automatic
	// snapshots taken at end-of-frame; zero disables auto-snapshotting.
	AutoSnapshotIntervalFrames Int
}

// NewPreferences returns a Preferences with the system defaults.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()
	return p, nil
}

// SetDefaults resets every field to its default value.
func (p *Preferences) SetDefaults() {
	p.TV = PAL
	p.RandomState.Set(true)
	p.AlwaysWarp.Set(false)
	p.AutoSnapshotIntervalFrames.Set(0)
}
