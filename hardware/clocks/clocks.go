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

// Package clocks defines the constant values that define the speed of the
// master clock in the C64, and the raster geometry that the master clock
// drives.
package clocks

// MHz of the master (phi2) clock for each television standard.
const (
	PAL  = 0.985248
	NTSC = 1.022727
)

// Raster geometry: cycles per scanline and scanlines per frame.
const (
	PAL_CyclesPerLine = 63
	PAL_LinesPerFrame = 312

	NTSC_CyclesPerLine = 65
	NTSC_LinesPerFrame = 263
)

// FirstVisibleLine and LastVisibleLine bound the portion of the raster that
// is copied into the pixel port; lines outside this range are border/blank.
const (
	PAL_FirstVisibleLine = 16
	PAL_LastVisibleLine  = 298

	NTSC_FirstVisibleLine = 16
	NTSC_LastVisibleLine  = 242
)

// FrameDurationNS returns the target wall-clock duration of one frame, in
// nanoseconds, given the clock speed in MHz and the raster geometry.
func FrameDurationNS(mhz float64, cyclesPerLine, linesPerFrame int) float64 {
	cyclesPerFrame := float64(cyclesPerLine * linesPerFrame)
	// cyclesPerFrame/mhz is in microseconds (cycles / (cycles/microsecond));
	// scale to nanoseconds.
	return cyclesPerFrame / mhz * 1000
}

// RefreshRateHz returns the frame rate in Hz implied by the clock speed and
// raster geometry, for use with television/limiter.Limiter.SetRefreshRate.
func RefreshRateHz(mhz float64, cyclesPerLine, linesPerFrame int) float32 {
	return float32(1e9 / FrameDurationNS(mhz, cyclesPerLine, linesPerFrame))
}
