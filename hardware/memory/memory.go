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

// Package memory implements the C64's composite memory map: the concrete
// Bus that the CPU, VIC-II, and debugger all see memory through. It routes
// every address to RAM, one of the three ROM images, color RAM, the VIC/
// SID/CIA1/CIA2 register windows, or cartridge ROM/IO according to the bank
// configuration resolved by the memorymap package from the processor
// port's LORAM/HIRAM/CHAREN lines and the cartridge's GAME/EXROM lines.
package memory

import (
	"fmt"

	"github.com/sixfour/c64core/hardware/cpuport"
	"github.com/sixfour/c64core/hardware/memory/bus"
	"github.com/sixfour/c64core/hardware/memory/memorymap"
	"github.com/sixfour/c64core/snapshot"
)

// VICChip is the subset of hardware/vic.VIC the Bus needs: CPU-visible
// register access, mirrored every 64 bytes across the $D000-$D3FF window.
type VICChip interface {
	PeekRegister(i uint8) uint8
	PokeRegister(i uint8, v uint8)
}

// CIAChip is the subset of hardware/cia.CIA the Bus needs. CIA.Read/Write/
// Peek already take a register offset mirrored modulo 16, matching this
// interface exactly.
type CIAChip interface {
	Read(offset uint8) uint8
	Write(offset uint8, v uint8)
	Peek(offset uint8) uint8
}

// SIDChip is the subset of hardware/sid.SID the Bus needs.
type SIDChip interface {
	Read(offset uint8) uint8
	Write(offset uint8, v uint8)
}

// Cartridge is the bus-visible state of an attached cartridge: its ROM
// images and the GAME/EXROM lines that select the bank configuration.
// Archive-format parsing (CRT files, bank-switching mapper logic beyond
// plain 8K/16K carts) is out of scope; this is just the bytes and lines the
// Bus decodes against.
type Cartridge struct {
	// Lo is mapped at $8000-$9FFF when the bank configuration selects
	// CartLo; Hi is mapped at $A000-$BFFF or $E000-$FFFF (ultimax)
	// depending on which quarter the bank configuration selects CartHi for.
	Lo []uint8
	Hi []uint8

	GAME  bool
	EXROM bool
}

func (c *Cartridge) bits() (game, exrom bool) {
	if c == nil {
		// no cartridge attached: GAME/EXROM both high, the same lines an
		// empty cartridge port presents.
		return true, true
	}
	return c.GAME, c.EXROM
}

func (c *Cartridge) readLo(addr uint16) uint8 {
	if c == nil || len(c.Lo) == 0 {
		return 0xff
	}
	return c.Lo[int(addr-0x8000)%len(c.Lo)]
}

func (c *Cartridge) readHi(addr uint16, base uint16) uint8 {
	if c == nil || len(c.Hi) == 0 {
		return 0xff
	}
	return c.Hi[int(addr-base)%len(c.Hi)]
}

// ROMs bundles the three fixed-content ROM images a Bus needs: BASIC,
// KERNAL, and the character generator. Accepting them as opaque byte
// slices (rather than parsing any on-disk format) is the romloader
// package's contract (§6), not this package's.
type ROMs struct {
	BASIC  [8192]uint8
	KERNAL [8192]uint8
	CHAR   [4096]uint8
}

// Bus is the concrete address decoder wiring RAM, ROM, color RAM, and the
// chip register windows together. It implements bus.Memory (the CPU's
// view), bus.DebugBus (the debugger's side-effect-free view), and directly
// exposes VIC-as-bus-master DMA reads.
type Bus struct {
	RAM [65536]uint8
	ROM ROMs

	ColorRAM [1024]uint8

	Port *cpuport.Port
	Cart *Cartridge

	VIC  VICChip
	SID  SIDChip
	CIA1 CIAChip
	CIA2 CIAChip

	// lastBusValue is the most recent byte to have crossed the data bus,
	// returned for reads of "open" I/O addresses that nothing answers -
	// the real machine's floating-bus behaviour.
	lastBusValue uint8
}

// NewBus creates a Bus with RAM, ROM, and color RAM all zeroed; the caller
// must set ROM images (via the romloader package) and wire VIC/SID/CIA1/
// CIA2 before use.
func NewBus(port *cpuport.Port) *Bus {
	return &Bus{Port: port}
}

func (b *Bus) config() memorymap.Config {
	bits := b.Port.Bits()
	game, exrom := b.Cart.bits()
	bits.GAME = game
	bits.EXROM = exrom
	return memorymap.Resolve(bits)
}

// Read implements bus.Memory.
func (b *Bus) Read(address uint16) (uint8, error) {
	v, err := b.access(address, 0, false)
	b.lastBusValue = v
	return v, err
}

// Write implements bus.Memory.
func (b *Bus) Write(address uint16, data uint8) error {
	b.lastBusValue = data
	_, err := b.access(address, data, true)
	return err
}

// Peek implements bus.DebugBus: a read with no chip side effects.
func (b *Bus) Peek(address uint16) (uint8, error) {
	return b.peekOrPoke(address, 0, false, true)
}

// Poke implements bus.DebugBus: a write with no chip side effects beyond
// updating the underlying storage.
func (b *Bus) Poke(address uint16, value uint8) error {
	_, err := b.peekOrPoke(address, value, true, true)
	return err
}

// access performs a CPU read or write, routing to RAM, ROM, or a chip
// register window and triggering the addressed chip's side effects.
func (b *Bus) access(address uint16, data uint8, write bool) (uint8, error) {
	return b.dispatch(address, data, write, false)
}

func (b *Bus) peekOrPoke(address uint16, data uint8, write bool, debug bool) (uint8, error) {
	return b.dispatch(address, data, write, debug)
}

func (b *Bus) dispatch(address uint16, data uint8, write bool, debug bool) (uint8, error) {
	// $0000/$0001 are decoded ahead of the bank configuration: the
	// processor port registers are always visible regardless of LORAM/
	// HIRAM/CHAREN, since they are what select those very lines.
	if address == 0x0000 {
		if write {
			b.Port.WriteDDR(data)
			return 0, nil
		}
		return b.Port.Read(), nil
	}
	if address == 0x0001 {
		if write {
			b.Port.WriteData(data)
			return 0, nil
		}
		return b.Port.Read(), nil
	}

	cfg := b.config()

	switch {
	case address < 0x8000:
		// RAM writes always land regardless of what is read-visible at the
		// same address (BASIC/KERNAL ROM shadow a RAM cell, never replace
		// it); this is the real C64's RAM-write-through property.
		if write {
			b.RAM[address] = data
			return 0, nil
		}
		return b.RAM[address], nil

	case address < 0xa000:
		sel := cfg.Lo
		if write {
			b.RAM[address] = data
			if sel != memorymap.CartLo {
				return 0, nil
			}
		}
		switch sel {
		case memorymap.CartLo:
			return b.Cart.readLo(address), nil
		default:
			return b.RAM[address], nil
		}

	case address < 0xc000:
		sel := cfg.Hi
		if write {
			b.RAM[address] = data
			return 0, nil
		}
		switch sel {
		case memorymap.BASIC:
			return b.ROM.BASIC[address-0xa000], nil
		case memorymap.CartHi:
			return b.Cart.readHi(address, 0xa000), nil
		case memorymap.Open:
			return b.lastBusValue, nil
		default:
			return b.RAM[address], nil
		}

	case address < 0xd000:
		if write {
			b.RAM[address] = data
			return 0, nil
		}
		return b.RAM[address], nil

	case address < 0xe000:
		if cfg.CharIO == memorymap.CHAR {
			if write {
				// CHAR ROM is read-only; underlying RAM still updates.
				b.RAM[address] = data
				return 0, nil
			}
			return b.ROM.CHAR[address-0xd000], nil
		}
		return b.dispatchIO(address, data, write, debug)

	default: // 0xe000-0xffff
		sel := cfg.HiROM
		if write {
			b.RAM[address] = data
			if sel != memorymap.CartHi {
				return 0, nil
			}
		}
		switch sel {
		case memorymap.KERNAL:
			return b.ROM.KERNAL[address-0xe000], nil
		case memorymap.CartHi:
			return b.Cart.readHi(address, 0xe000), nil
		default:
			return b.RAM[address], nil
		}
	}
}

// dispatchIO further decodes the $D000-$DFFF window by 4 KiB once CHAREN
// has selected I/O rather than the character generator.
func (b *Bus) dispatchIO(address uint16, data uint8, write bool, debug bool) (uint8, error) {
	switch {
	case address < 0xd400: // VIC-II, mirrored every 64 bytes
		reg := uint8((address - 0xd000) % 64)
		if b.VIC == nil {
			return b.lastBusValue, nil
		}
		if write {
			if !debug {
				b.VIC.PokeRegister(reg, data)
			}
			return 0, nil
		}
		return b.VIC.PeekRegister(reg), nil

	case address < 0xd800: // SID, mirrored every 32 bytes
		reg := uint8((address - 0xd400) % 32)
		if b.SID == nil {
			return b.lastBusValue, nil
		}
		if write {
			b.SID.Write(reg, data)
			return 0, nil
		}
		return b.SID.Read(reg), nil

	case address < 0xdc00: // color RAM, low nibble only
		idx := address - 0xd800
		if write {
			b.ColorRAM[idx] = data & 0x0f
			return 0, nil
		}
		return b.ColorRAM[idx] & 0x0f, nil

	case address < 0xdd00: // CIA1, mirrored every 16 bytes
		reg := uint8((address - 0xdc00) % 16)
		if b.CIA1 == nil {
			return b.lastBusValue, nil
		}
		if debug {
			if write {
				return 0, nil
			}
			return b.CIA1.Peek(reg), nil
		}
		if write {
			b.CIA1.Write(reg, data)
			return 0, nil
		}
		return b.CIA1.Read(reg), nil

	case address < 0xde00: // CIA2, mirrored every 16 bytes
		reg := uint8((address - 0xdd00) % 16)
		if b.CIA2 == nil {
			return b.lastBusValue, nil
		}
		if debug {
			if write {
				return 0, nil
			}
			return b.CIA2.Peek(reg), nil
		}
		if write {
			b.CIA2.Write(reg, data)
			return 0, nil
		}
		return b.CIA2.Read(reg), nil

	default: // $DE00-$DFFF: cartridge I/O, open bus with no cartridge attached
		return b.lastBusValue, nil
	}
}

// VICBank returns the 16 KiB bank of the full 64 KiB address space the VIC
// reads through for its own DMA accesses, selected by CIA2 port A bits 0-1
// (inverted: 00 selects the highest bank). VIC DMA reads always see RAM
// (or the CHAR ROM shadow at $1000-$1FFF/$9000-$9FFF within that bank)
// regardless of the CPU's own bank configuration.
func (b *Bus) VICBank(ciaPortA uint8) uint16 {
	switch ciaPortA & 0x03 {
	case 0x03:
		return 0x0000
	case 0x02:
		return 0x4000
	case 0x01:
		return 0x8000
	default:
		return 0xc000
	}
}

// VICRead performs a VIC DMA read: address is relative to the bank VICBank
// returned. It never disturbs CPU-visible I/O chip state (VIC fetches are
// always "peeks" from the CPU's point of view) and always sees the CHAR ROM
// shadow at the fixed offsets regardless of CPU banking.
func (b *Bus) VICRead(bank uint16, offset uint16) uint8 {
	addr := bank + offset
	if (bank == 0x0000 || bank == 0x8000) && offset >= 0x1000 && offset < 0x2000 {
		return b.ROM.CHAR[offset-0x1000]
	}
	return b.RAM[addr]
}

// String implements fmt.Stringer, reporting the Bus's current bank
// configuration for logging.
func (b *Bus) String() string {
	cfg := b.config()
	return fmt.Sprintf("lo=%s hi=%s charIO=%s hiROM=%s", cfg.Lo, cfg.Hi, cfg.CharIO, cfg.HiROM)
}

// MarshalBinary implements encoding.BinaryMarshaler for §6's snapshot
// format. ROM images are not included: they are immutable after load and
// the Scheduler re-supplies them from the romloader.Set on restore. Port,
// Cart, VIC, SID, CIA1, CIA2 are separate components with their own blocks.
func (b *Bus) MarshalBinary() ([]byte, error) {
	w := snapshot.NewFieldWriter()
	w.Write(b.RAM)
	w.Write(b.ColorRAM)
	w.Write(b.lastBusValue)
	return w.Bytes()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler for §6's snapshot
// format.
func (b *Bus) UnmarshalBinary(data []byte) error {
	r := snapshot.NewFieldReader(data)
	r.Read(&b.RAM)
	r.Read(&b.ColorRAM)
	r.Read(&b.lastBusValue)
	return r.Err()
}

var _ bus.Memory = (*Bus)(nil)
var _ bus.DebugBus = (*Bus)(nil)
