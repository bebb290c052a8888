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

// Package addresses collects the canonical register names for the C64's
// memory-mapped chips, indexed both by normalised (within-chip) address and
// by symbol.
package addresses

// Reset is the address where the reset vector is stored.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt vector is stored.
const IRQ = uint16(0xfffe)

// NMI is the address where the non-maskable interrupt vector is stored.
const NMI = uint16(0xfffa)

// VICSymbols indexes all 47 VIC-II register symbols by normalised address
// ($D000-$D02E; the chip only decodes 6 address lines so $D02F-$D03F mirror
// $D000-$D00F. etc, so only the base 64-byte block is listed here).
var VICSymbols = map[uint16]string{
	0x00: "M0X", 0x01: "M0Y", 0x02: "M1X", 0x03: "M1Y",
	0x04: "M2X", 0x05: "M2Y", 0x06: "M3X", 0x07: "M3Y",
	0x08: "M4X", 0x09: "M4Y", 0x0a: "M5X", 0x0b: "M5Y",
	0x0c: "M6X", 0x0d: "M6Y", 0x0e: "M7X", 0x0f: "M7Y",
	0x10: "MSIGX",
	0x11: "SCROLY",
	0x12: "RASTER",
	0x13: "LPENX",
	0x14: "LPENY",
	0x15: "SPENA",
	0x16: "SCROLX",
	0x17: "YXPAND",
	0x18: "VMCSB",
	0x19: "VICIRQ",
	0x1a: "IRQMASK",
	0x1b: "SPBGPR",
	0x1c: "SPMC",
	0x1d: "XXPAND",
	0x1e: "SPSPCL",
	0x1f: "SPBGCL",
	0x20: "EXTCOL",
	0x21: "BGCOL0",
	0x22: "BGCOL1",
	0x23: "BGCOL2",
	0x24: "BGCOL3",
	0x25: "SPMC0",
	0x26: "SPMC1",
	0x27: "COL0", 0x28: "COL1", 0x29: "COL2", 0x2a: "COL3",
	0x2b: "COL4", 0x2c: "COL5", 0x2d: "COL6", 0x2e: "COL7",
}

// SIDSymbols indexes the SID register file by normalised address
// ($D400-$D41C); writes are latched for the audio drain stub but no
// waveform synthesis occurs.
var SIDSymbols = map[uint16]string{
	0x00: "FREQLO1", 0x01: "FREQHI1", 0x02: "PWLO1", 0x03: "PWHI1",
	0x04: "VCREG1", 0x05: "ATDCY1", 0x06: "SUREL1",
	0x07: "FREQLO2", 0x08: "FREQHI2", 0x09: "PWLO2", 0x0a: "PWHI2",
	0x0b: "VCREG2", 0x0c: "ATDCY2", 0x0d: "SUREL2",
	0x0e: "FREQLO3", 0x0f: "FREQHI3", 0x10: "PWLO3", 0x11: "PWHI3",
	0x12: "VCREG3", 0x13: "ATDCY3", 0x14: "SUREL3",
	0x15: "CUTLO", 0x16: "CUTHI", 0x17: "RESON", 0x18: "SIGVOL",
	0x19: "POTX", 0x1a: "POTY", 0x1b: "RANDOM", 0x1c: "ENV3",
}

// CIASymbols indexes the shared CIA1/CIA2 register layout by normalised
// address ($xC00-$xC0F); the same offsets apply to both chips.
var CIASymbols = map[uint16]string{
	0x00: "PRA", 0x01: "PRB", 0x02: "DDRA", 0x03: "DDRB",
	0x04: "TALO", 0x05: "TAHI", 0x06: "TBLO", 0x07: "TBHI",
	0x08: "TODTEN", 0x09: "TODSEC", 0x0a: "TODMIN", 0x0b: "TODHR",
	0x0c: "SDR", 0x0d: "ICR", 0x0e: "CRA", 0x0f: "CRB",
}

// ReadSymbols indexes all chip-register read symbols by full 16 bit address.
var ReadSymbols = map[uint16]string{}

// WriteSymbols indexes all chip-register write symbols by full 16 bit address.
var WriteSymbols = map[uint16]string{}

// ReadAddress indexes all chip-register read addresses by canonical symbol.
var ReadAddress = map[string]uint16{}

// WriteAddress indexes all chip-register write addresses by canonical symbol.
var WriteAddress = map[string]uint16{}

const (
	vicBase  = 0xd000
	sidBase  = 0xd400
	cia1Base = 0xdc00
	cia2Base = 0xdd00
)

// this init() function builds the full-address symbol maps from the
// per-chip normalised maps. VIC/SID/CIA registers are readable and writable
// at the same offsets, so both Read and Write maps are populated identically
// from each source map.
func init() {
	merge := func(base uint16, src map[uint16]string) {
		for offset, symbol := range src {
			addr := base + offset
			ReadSymbols[addr] = symbol
			WriteSymbols[addr] = symbol
			ReadAddress[symbol] = addr
			WriteAddress[symbol] = addr
		}
	}

	merge(vicBase, VICSymbols)
	merge(sidBase, SIDSymbols)
	merge(cia1Base, CIASymbols)
	merge(cia2Base, CIASymbols)
}

// Symbol returns the canonical register name for a full 16 bit address, and
// whether one was found.
func Symbol(address uint16) (string, bool) {
	if s, ok := ReadSymbols[address]; ok {
		return s, true
	}
	if s, ok := WriteSymbols[address]; ok {
		return s, true
	}
	return "", false
}
