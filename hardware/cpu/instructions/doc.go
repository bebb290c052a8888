// Package instructions defines the 6510 instruction set: the addressing
// modes, the operators each opcode dispatches to, and the 256-entry table
// returned by GetDefinitions that ties the two together with the byte count
// and base cycle count of every opcode.
//
// Every one of the 256 possible opcode values is defined: the 6510 is built
// from a PLA that decodes every bit pattern one way or another, so there is
// no such thing as a truly illegal opcode, only documented and undocumented
// behaviour. Entries for the unstable undocumented opcodes (AHX, SHX, SHY,
// TAS, LAS, XAA) implement one commonly observed behaviour rather than the
// full envelope of real-hardware variance; see SPEC_FULL.md.
package instructions
