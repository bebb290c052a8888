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

// Package memorymap resolves the C64's PLA bank-switching logic: which of
// RAM, BASIC, KERNAL, CHAR ROM, the I/O window, or cartridge ROM is visible
// in each region of the CPU's address space, given the processor port bits
// (LORAM, HIRAM, CHAREN) and the cartridge's GAME/EXROM lines.
package memorymap

// Selector identifies which resource answers a CPU read in a given region
// of the address space for the current bank configuration.
type Selector int

const (
	RAM Selector = iota
	BASIC
	KERNAL
	CHAR
	IO
	CartLo
	CartHi
	Open
)

func (s Selector) String() string {
	switch s {
	case RAM:
		return "RAM"
	case BASIC:
		return "BASIC"
	case KERNAL:
		return "KERNAL"
	case CHAR:
		return "CHAR"
	case IO:
		return "IO"
	case CartLo:
		return "CART_LO"
	case CartHi:
		return "CART_HI"
	default:
		return "OPEN"
	}
}

// Config is the resolved bank configuration for one combination of
// LORAM/HIRAM/CHAREN/GAME/EXROM: which resource is visible in each region of
// the 16 bit address space.
type Config struct {
	// Lo is the selector for $8000-$9FFF.
	Lo Selector

	// Hi is the selector for $A000-$BFFF.
	Hi Selector

	// CharIO is the selector for $D000-$DFFF: either CHAR (CHAREN low) or IO
	// (CHAREN high, meaning the bus decodes VIC/SID/colour-RAM/CIA1/CIA2
	// further by 4 KiB; that finer decode is the Bus's job, not this
	// package's).
	CharIO Selector

	// HiROM is the selector for $E000-$FFFF.
	HiROM Selector
}

// Bits packs the five lines that select a bank configuration.
type Bits struct {
	LORAM  bool
	HIRAM  bool
	CHAREN bool
	GAME   bool
	EXROM  bool
}

// index packs the five bits into a 0-31 table index in LORAM/HIRAM/CHAREN/
// GAME/EXROM order (LORAM is the least significant bit).
func (b Bits) index() int {
	i := 0
	if b.LORAM {
		i |= 1 << 0
	}
	if b.HIRAM {
		i |= 1 << 1
	}
	if b.CHAREN {
		i |= 1 << 2
	}
	if b.GAME {
		i |= 1 << 3
	}
	if b.EXROM {
		i |= 1 << 4
	}
	return i
}

// Ultimax reports whether the lines describe ultimax mode: the cartridge
// configuration that hides most RAM and every ROM except a small window and
// the cartridge itself. The canonical source of the flag is GAME=0, EXROM=1;
// it is derived here rather than stored anywhere as an independent field.
func (b Bits) Ultimax() bool {
	return !b.GAME && b.EXROM
}

// table is built once at init() time, indexed by Bits.index(), mirroring the
// teacher's sparse-array-built-from-canonical-source idiom used throughout
// this module (see hardware/memory/addresses).
var table [32]Config

func init() {
	for i := 0; i < 32; i++ {
		b := Bits{
			LORAM:  i&(1<<0) != 0,
			HIRAM:  i&(1<<1) != 0,
			CHAREN: i&(1<<2) != 0,
			GAME:   i&(1<<3) != 0,
			EXROM:  i&(1<<4) != 0,
		}
		table[i] = resolve(b)
	}
}

// resolve computes the bank configuration for one combination of lines,
// following the standard C64 PLA decode rules.
func resolve(b Bits) Config {
	cart16k := !b.GAME && !b.EXROM
	cart8k := b.GAME && !b.EXROM
	ultimax := b.Ultimax()

	cfg := Config{}

	switch {
	case ultimax:
		cfg.Lo = CartLo
		cfg.Hi = Open
		cfg.HiROM = CartHi
	case cart8k, cart16k:
		if b.LORAM && b.HIRAM {
			cfg.Lo = CartLo
		} else {
			cfg.Lo = RAM
		}
		switch {
		case cart16k:
			cfg.Hi = CartHi
		case b.HIRAM:
			cfg.Hi = BASIC
		default:
			cfg.Hi = RAM
		}
	default:
		cfg.Lo = RAM
		switch {
		case b.LORAM && b.HIRAM:
			cfg.Hi = BASIC
		default:
			cfg.Hi = RAM
		}
	}

	if b.CHAREN && (b.HIRAM || b.LORAM) {
		cfg.CharIO = IO
	} else {
		cfg.CharIO = CHAR
	}

	switch {
	case ultimax:
		cfg.HiROM = CartHi
	case b.HIRAM:
		cfg.HiROM = KERNAL
	default:
		cfg.HiROM = RAM
	}

	return cfg
}

// Resolve returns the bank configuration for a given combination of
// LORAM/HIRAM/CHAREN/GAME/EXROM lines.
func Resolve(b Bits) Config {
	return table[b.index()]
}
