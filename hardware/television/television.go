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

// Package television tracks the raster position the rest of the emulation
// is seeded and synchronised from, and publishes each completed frame as an
// RGBA pixel buffer behind a double-buffer swap so the host GUI can read the
// front buffer concurrently with the worker filling the back one (§6).
package television

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/sixfour/c64core/hardware/television/coords"
	"github.com/sixfour/c64core/hardware/television/limiter"
)

// Width and Height are the C64's visible display area in pixels.
const (
	Width  = 320
	Height = 200
)

// Palette is the sixteen VIC-II colours, indexed by the 4-bit colour codes
// stored in the VIC's pixel buffer, as RGBA (alpha always opaque). These are
// the commonly published "Pepto" VIC-II RGB values.
var Palette = [16][4]uint8{
	{0x00, 0x00, 0x00, 0xff}, // black
	{0xff, 0xff, 0xff, 0xff}, // white
	{0x68, 0x37, 0x2b, 0xff}, // red
	{0x70, 0xa4, 0xb2, 0xff}, // cyan
	{0x6f, 0x3d, 0x86, 0xff}, // purple
	{0x58, 0x8d, 0x43, 0xff}, // green
	{0x35, 0x28, 0x79, 0xff}, // blue
	{0xb8, 0xc7, 0x6f, 0xff}, // yellow
	{0x6f, 0x4f, 0x25, 0xff}, // orange
	{0x43, 0x39, 0x00, 0xff}, // brown
	{0x9a, 0x67, 0x59, 0xff}, // light red
	{0x44, 0x44, 0x44, 0xff}, // dark grey
	{0x6c, 0x6c, 0x6c, 0xff}, // grey
	{0x9a, 0xd2, 0x84, 0xff}, // light green
	{0x6c, 0x5e, 0xb5, 0xff}, // light blue
	{0x95, 0x95, 0x95, 0xff}, // light grey
}

// Television tracks the current raster position and exposes it via
// GetCoords (satisfying random.TV) and publishes completed frames as RGBA
// pixel buffers for the host to read.
type Television struct {
	Limiter *limiter.Limiter

	mu     sync.Mutex
	coords coords.TelevisionCoords

	front []uint8
	back  []uint8
}

// NewTelevision creates a Television with empty front/back buffers and an
// unconfigured (no-op) limiter; the caller sets the refresh rate once the
// TV standard is known.
func NewTelevision() *Television {
	return &Television{
		Limiter: limiter.NewLimiter(),
		front:   make([]uint8, Width*Height*4),
		back:    make([]uint8, Width*Height*4),
	}
}

// SetCoords updates the tracked raster position. Called once per master
// cycle by the Scheduler.
func (tv *Television) SetCoords(frame uint64, line int, cycle int) {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	tv.coords = coords.TelevisionCoords{Frame: int(frame), Scanline: line, Clock: cycle}
}

// GetCoords implements random.TV.
func (tv *Television) GetCoords() coords.TelevisionCoords {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return tv.coords
}

// PublishFrame palette-maps a VIC colour-index frame buffer into the back
// RGBA buffer and swaps it to the front, exactly matching end-of-frame in
// §4.5 and the double-buffered pixel port of §6.
func (tv *Television) PublishFrame(colorIndices []uint8) {
	for i, c := range colorIndices {
		rgba := Palette[c&0x0f]
		tv.back[i*4+0] = rgba[0]
		tv.back[i*4+1] = rgba[1]
		tv.back[i*4+2] = rgba[2]
		tv.back[i*4+3] = rgba[3]
	}

	tv.mu.Lock()
	tv.front, tv.back = tv.back, tv.front
	tv.mu.Unlock()
}

// Front returns the most recently published RGBA frame. Safe to call
// concurrently with the worker, since only the buffer pointers are swapped
// under lock, never mutated in place.
func (tv *Television) Front() []uint8 {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return tv.front
}

// Hash implements digest.Digest: a hex-encoded SHA-256 of the most recently
// published frame, for bit-exact regression comparison across runs.
func (tv *Television) Hash() string {
	sum := sha256.Sum256(tv.Front())
	return hex.EncodeToString(sum[:])
}

// ResetDigest implements digest.Digest. The hash is derived fresh from the
// front buffer on every call to Hash, so there is no running state to clear.
func (tv *Television) ResetDigest() {}
