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

// Package cpuport implements the 6510's built-in 6-bit I/O port at $00/$01:
// the data direction register and data register that select the CPU's
// memory banking configuration (LORAM, HIRAM, CHAREN) and drive the
// datasette motor/sense/write lines. It has no bearing on CPU opcode
// execution; it is just another bus-visible pair of addresses.
package cpuport

import (
	"github.com/sixfour/c64core/hardware/memory/memorymap"
	"github.com/sixfour/c64core/snapshot"
)

// bit positions within the port.
const (
	bitLORAM     = 1 << 0
	bitHIRAM     = 1 << 1
	bitCHAREN    = 1 << 2
	bitCassWrite = 1 << 3
	bitCassSense = 1 << 4 // input only
	bitCassMotor = 1 << 5
)

// Port models the $00/$01 processor port. $00 is the data direction
// register (1 = output); $01 is the data register, read back masked by
// direction (input-direction bits float high on real hardware except the
// cassette sense line, which reflects the datasette's switch).
type Port struct {
	ddr  uint8
	data uint8

	// CassetteSenseIn is the external cassette switch state sampled when bit
	// 4 of the port is read as an input (true = button not pressed).
	CassetteSenseIn bool
}

// NewPort creates a Port in its power-on state: DDR $2F, data $37, matching
// the C64's default bank configuration (RAM/BASIC/KERNAL all banked in,
// datasette motor off).
func NewPort() *Port {
	p := &Port{
		ddr:             0x2f,
		data:            0x37,
		CassetteSenseIn: true,
	}
	return p
}

// Snapshot creates a copy of the port in its current state.
func (p *Port) Snapshot() *Port {
	n := *p
	return &n
}

// Read returns the current data register value, as the CPU would see it:
// bits configured as inputs float high except for the cassette sense line.
func (p *Port) Read() uint8 {
	v := (p.data & p.ddr) | (^p.ddr)
	if p.ddr&bitCassSense == 0 {
		if p.CassetteSenseIn {
			v |= bitCassSense
		} else {
			v &^= bitCassSense
		}
	}
	return v
}

// WriteData writes the $01 data register.
func (p *Port) WriteData(v uint8) {
	p.data = v
}

// WriteDDR writes the $00 data direction register.
func (p *Port) WriteDDR(v uint8) {
	p.ddr = v
}

// Bits returns the memorymap.Bits for the current bank-selecting lines
// (LORAM, HIRAM, CHAREN), combined by the caller with the cartridge's
// GAME/EXROM lines to resolve the active bank configuration.
func (p *Port) Bits() memorymap.Bits {
	v := p.Read()
	return memorymap.Bits{
		LORAM:  v&bitLORAM != 0,
		HIRAM:  v&bitHIRAM != 0,
		CHAREN: v&bitCHAREN != 0,
	}
}

// MotorOn reports whether the datasette motor control line is asserted.
func (p *Port) MotorOn() bool {
	return p.Read()&bitCassMotor == 0
}

// WriteLine reports the state of the datasette write line.
func (p *Port) WriteLine() bool {
	return p.Read()&bitCassWrite != 0
}

// MarshalBinary implements encoding.BinaryMarshaler for §6's snapshot format.
func (p *Port) MarshalBinary() ([]byte, error) {
	w := snapshot.NewFieldWriter()
	w.Write(p.ddr)
	w.Write(p.data)
	w.Write(p.CassetteSenseIn)
	return w.Bytes()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler for §6's snapshot
// format.
func (p *Port) UnmarshalBinary(data []byte) error {
	r := snapshot.NewFieldReader(data)
	r.Read(&p.ddr)
	r.Read(&p.data)
	r.Read(&p.CassetteSenseIn)
	return r.Err()
}
