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

// Package debugger implements the per-address breakpoint side-table the CPU
// consults before fetching each opcode, and a thin symbol-aware wrapper
// around the bus's Peek/Poke entry points. Unlike the teacher's debugger
// (a full interactive terminal with its own command language, target
// expressions, and disassembly-driven toggles), this is just the data side
// of §4.2/§9's breakpoint contract: a tag per address plus the information a
// host-side UI would need to display it, grounded on the original source's
// CPU_NO_BREAKPOINT/CPU_HARD_BREAKPOINT/CPU_SOFT_BREAKPOINT enum.
package debugger

// Tag is the breakpoint state of a single address.
type Tag int

// The three breakpoint tags a CPU address can carry.
const (
	None Tag = iota
	Hard
	Soft
)

// Breakpoints is the per-address tag table the Machine's run loop queries
// before each instruction.
type Breakpoints struct {
	tags map[uint16]Tag
}

// NewBreakpoints creates an empty breakpoint table.
func NewBreakpoints() *Breakpoints {
	return &Breakpoints{tags: make(map[uint16]Tag)}
}

// Set tags address with tag. Setting None removes the address from the
// table entirely.
func (b *Breakpoints) Set(address uint16, tag Tag) {
	if tag == None {
		delete(b.tags, address)
		return
	}
	b.tags[address] = tag
}

// Get returns the current tag of address (None if untagged).
func (b *Breakpoints) Get(address uint16) Tag {
	return b.tags[address]
}

// Clear removes every breakpoint.
func (b *Breakpoints) Clear() {
	b.tags = make(map[uint16]Tag)
}

// Check is called before every opcode fetch. A Hard tag halts the run loop
// on every hit. A Soft tag is consumed: the tag is cleared and execution
// continues, matching §4.2: before each instruction the run loop queries
// this table; on HARD the run loop is paused; on SOFT the tag is cleared
// before continuing.
func (b *Breakpoints) Check(address uint16) (halt bool) {
	switch b.tags[address] {
	case Hard:
		return true
	case Soft:
		delete(b.tags, address)
		return false
	default:
		return false
	}
}
