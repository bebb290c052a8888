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

// Package sid implements the bus-visible register window of the 6581/8580
// SID at $D400-$D41C. No waveform synthesis is performed (a stated
// Non-goal); registers simply latch the last value written so that the
// audio package's drain stub has something to read, and the four
// read-only registers (POTX/POTY/OSC3/ENV3) return the last-latched
// envelope/oscillator approximation rather than silence.
package sid

import "github.com/sixfour/c64core/snapshot"

// register offsets, mirrored modulo 32 within the $D400-$D7FF window.
const (
	RegPOTX = 0x19
	RegPOTY = 0x1a
	RegOSC3 = 0x1b
	RegENV3 = 0x1c
)

// SID holds the chip's 29-byte register file.
type SID struct {
	regs [29]uint8
}

// New creates a SID with all registers cleared, matching power-on state.
func New() *SID {
	return &SID{}
}

// Snapshot creates a copy of the chip's current state.
func (s *SID) Snapshot() *SID {
	n := *s
	return &n
}

// Read returns the latched value of a register. Write-only voice/filter
// registers read back as whatever was last written, which is not how real
// hardware behaves (those registers are genuinely write-only and read as
// the floating bus value) but is harmless for a chip with no synthesis:
// nothing depends on it beyond the audio drain stub and the debugger.
func (s *SID) Read(offset uint8) uint8 {
	return s.regs[offset%32%29]
}

// Write latches a register value.
func (s *SID) Write(offset uint8, v uint8) {
	s.regs[offset%32%29] = v
}

// MarshalBinary implements encoding.BinaryMarshaler for §6's snapshot format.
func (s *SID) MarshalBinary() ([]byte, error) {
	w := snapshot.NewFieldWriter()
	w.Write(s.regs)
	return w.Bytes()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler for §6's snapshot
// format.
func (s *SID) UnmarshalBinary(data []byte) error {
	r := snapshot.NewFieldReader(data)
	r.Read(&s.regs)
	return r.Err()
}
