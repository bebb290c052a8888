// Code generated from the 6502/6510 opcode map; see doc.go for provenance.
package instructions

// GetDefinitions returns a fresh 256-entry opcode table, indexed by opcode
// value. Every entry is populated: there is no such thing as an "illegal"
// opcode on real hardware, only documented and undocumented ones, and the
// 6510 executes the undocumented ones just as mechanically as the rest.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)

	defs[0x00] = &Definition{OpCode: 0x00, Mnemonic: "BRK", Operator: Brk, Bytes: 1, Cycles: 7, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt}
	defs[0x01] = &Definition{OpCode: 0x01, Mnemonic: "ORA IndexedIndirect", Operator: Ora, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read}
	defs[0x02] = &Definition{OpCode: 0x02, Mnemonic: "KIL", Operator: KIL, Bytes: 1, Cycles: 1, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x03] = &Definition{OpCode: 0x03, Mnemonic: "SLO IndexedIndirect", Operator: SLO, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW}
	defs[0x04] = &Definition{OpCode: 0x04, Mnemonic: "NOP zpg", Operator: NOP, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0x05] = &Definition{OpCode: 0x05, Mnemonic: "ORA ZeroPage", Operator: Ora, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0x06] = &Definition{OpCode: 0x06, Mnemonic: "ASL zpg", Operator: Asl, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW}
	defs[0x07] = &Definition{OpCode: 0x07, Mnemonic: "SLO ZeroPage", Operator: SLO, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW}
	defs[0x08] = &Definition{OpCode: 0x08, Mnemonic: "PHP", Operator: Php, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write}
	defs[0x09] = &Definition{OpCode: 0x09, Mnemonic: "ORA Immediate", Operator: Ora, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0x0a] = &Definition{OpCode: 0x0a, Mnemonic: "ASL A", Operator: Asl, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x0b] = &Definition{OpCode: 0x0b, Mnemonic: "ANC #", Operator: ANC, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0x0c] = &Definition{OpCode: 0x0c, Mnemonic: "NOP abs", Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0x0d] = &Definition{OpCode: 0x0d, Mnemonic: "ORA Absolute", Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0x0e] = &Definition{OpCode: 0x0e, Mnemonic: "ASL abs", Operator: Asl, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW}
	defs[0x0f] = &Definition{OpCode: 0x0f, Mnemonic: "SLO Absolute", Operator: SLO, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW}
	defs[0x10] = &Definition{OpCode: 0x10, Mnemonic: "BPL", Operator: Bpl, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow}
	defs[0x11] = &Definition{OpCode: 0x11, Mnemonic: "ORA IndirectIndexed", Operator: Ora, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read}
	defs[0x12] = &Definition{OpCode: 0x12, Mnemonic: "KIL", Operator: KIL, Bytes: 1, Cycles: 1, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x13] = &Definition{OpCode: 0x13, Mnemonic: "SLO IndirectIndexed", Operator: SLO, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW}
	defs[0x14] = &Definition{OpCode: 0x14, Mnemonic: "NOP zpg,x", Operator: NOP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0x15] = &Definition{OpCode: 0x15, Mnemonic: "ORA ZeroPageIndexedX", Operator: Ora, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0x16] = &Definition{OpCode: 0x16, Mnemonic: "ASL zpg,x", Operator: Asl, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x17] = &Definition{OpCode: 0x17, Mnemonic: "SLO ZeroPageIndexedX", Operator: SLO, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x18] = &Definition{OpCode: 0x18, Mnemonic: "CLC", Operator: Clc, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x19] = &Definition{OpCode: 0x19, Mnemonic: "ORA AbsoluteIndexedY", Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read}
	defs[0x1a] = &Definition{OpCode: 0x1a, Mnemonic: "NOP", Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x1b] = &Definition{OpCode: 0x1b, Mnemonic: "SLO AbsoluteIndexedY", Operator: SLO, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW}
	defs[0x1c] = &Definition{OpCode: 0x1c, Mnemonic: "NOP abs,x", Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0x1d] = &Definition{OpCode: 0x1d, Mnemonic: "ORA AbsoluteIndexedX", Operator: Ora, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0x1e] = &Definition{OpCode: 0x1e, Mnemonic: "ASL abs,x", Operator: Asl, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x1f] = &Definition{OpCode: 0x1f, Mnemonic: "SLO AbsoluteIndexedX", Operator: SLO, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x20] = &Definition{OpCode: 0x20, Mnemonic: "JSR abs", Operator: Jsr, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: Subroutine}
	defs[0x21] = &Definition{OpCode: 0x21, Mnemonic: "AND IndexedIndirect", Operator: And, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read}
	defs[0x22] = &Definition{OpCode: 0x22, Mnemonic: "KIL", Operator: KIL, Bytes: 1, Cycles: 1, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x23] = &Definition{OpCode: 0x23, Mnemonic: "RLA IndexedIndirect", Operator: RLA, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW}
	defs[0x24] = &Definition{OpCode: 0x24, Mnemonic: "BIT", Operator: Bit, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0x25] = &Definition{OpCode: 0x25, Mnemonic: "AND ZeroPage", Operator: And, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0x26] = &Definition{OpCode: 0x26, Mnemonic: "ROL zpg", Operator: Rol, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW}
	defs[0x27] = &Definition{OpCode: 0x27, Mnemonic: "RLA ZeroPage", Operator: RLA, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW}
	defs[0x28] = &Definition{OpCode: 0x28, Mnemonic: "PLP", Operator: Plp, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x29] = &Definition{OpCode: 0x29, Mnemonic: "AND Immediate", Operator: And, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0x2a] = &Definition{OpCode: 0x2a, Mnemonic: "ROL A", Operator: Rol, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x2b] = &Definition{OpCode: 0x2b, Mnemonic: "ANC #", Operator: ANC, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0x2c] = &Definition{OpCode: 0x2c, Mnemonic: "BIT", Operator: Bit, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0x2d] = &Definition{OpCode: 0x2d, Mnemonic: "AND Absolute", Operator: And, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0x2e] = &Definition{OpCode: 0x2e, Mnemonic: "ROL abs", Operator: Rol, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW}
	defs[0x2f] = &Definition{OpCode: 0x2f, Mnemonic: "RLA Absolute", Operator: RLA, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW}
	defs[0x30] = &Definition{OpCode: 0x30, Mnemonic: "BMI", Operator: Bmi, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow}
	defs[0x31] = &Definition{OpCode: 0x31, Mnemonic: "AND IndirectIndexed", Operator: And, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read}
	defs[0x32] = &Definition{OpCode: 0x32, Mnemonic: "KIL", Operator: KIL, Bytes: 1, Cycles: 1, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x33] = &Definition{OpCode: 0x33, Mnemonic: "RLA IndirectIndexed", Operator: RLA, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW}
	defs[0x34] = &Definition{OpCode: 0x34, Mnemonic: "NOP zpg,x", Operator: NOP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0x35] = &Definition{OpCode: 0x35, Mnemonic: "AND ZeroPageIndexedX", Operator: And, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0x36] = &Definition{OpCode: 0x36, Mnemonic: "ROL zpg,x", Operator: Rol, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x37] = &Definition{OpCode: 0x37, Mnemonic: "RLA ZeroPageIndexedX", Operator: RLA, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x38] = &Definition{OpCode: 0x38, Mnemonic: "SEC", Operator: Sec, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x39] = &Definition{OpCode: 0x39, Mnemonic: "AND AbsoluteIndexedY", Operator: And, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read}
	defs[0x3a] = &Definition{OpCode: 0x3a, Mnemonic: "NOP", Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x3b] = &Definition{OpCode: 0x3b, Mnemonic: "RLA AbsoluteIndexedY", Operator: RLA, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW}
	defs[0x3c] = &Definition{OpCode: 0x3c, Mnemonic: "NOP abs,x", Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0x3d] = &Definition{OpCode: 0x3d, Mnemonic: "AND AbsoluteIndexedX", Operator: And, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0x3e] = &Definition{OpCode: 0x3e, Mnemonic: "ROL abs,x", Operator: Rol, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x3f] = &Definition{OpCode: 0x3f, Mnemonic: "RLA AbsoluteIndexedX", Operator: RLA, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x40] = &Definition{OpCode: 0x40, Mnemonic: "RTI", Operator: Rti, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt}
	defs[0x41] = &Definition{OpCode: 0x41, Mnemonic: "EOR IndexedIndirect", Operator: Eor, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read}
	defs[0x42] = &Definition{OpCode: 0x42, Mnemonic: "KIL", Operator: KIL, Bytes: 1, Cycles: 1, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x43] = &Definition{OpCode: 0x43, Mnemonic: "SRE IndexedIndirect", Operator: SRE, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW}
	defs[0x44] = &Definition{OpCode: 0x44, Mnemonic: "NOP zpg", Operator: NOP, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0x45] = &Definition{OpCode: 0x45, Mnemonic: "EOR ZeroPage", Operator: Eor, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0x46] = &Definition{OpCode: 0x46, Mnemonic: "LSR zpg", Operator: Lsr, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW}
	defs[0x47] = &Definition{OpCode: 0x47, Mnemonic: "SRE ZeroPage", Operator: SRE, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW}
	defs[0x48] = &Definition{OpCode: 0x48, Mnemonic: "PHA", Operator: Pha, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write}
	defs[0x49] = &Definition{OpCode: 0x49, Mnemonic: "EOR Immediate", Operator: Eor, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0x4a] = &Definition{OpCode: 0x4a, Mnemonic: "LSR A", Operator: Lsr, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x4b] = &Definition{OpCode: 0x4b, Mnemonic: "ASR #", Operator: ASR, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0x4c] = &Definition{OpCode: 0x4c, Mnemonic: "JMP abs", Operator: Jmp, Bytes: 3, Cycles: 3, AddressingMode: Absolute, PageSensitive: false, Effect: Flow}
	defs[0x4d] = &Definition{OpCode: 0x4d, Mnemonic: "EOR Absolute", Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0x4e] = &Definition{OpCode: 0x4e, Mnemonic: "LSR abs", Operator: Lsr, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW}
	defs[0x4f] = &Definition{OpCode: 0x4f, Mnemonic: "SRE Absolute", Operator: SRE, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW}
	defs[0x50] = &Definition{OpCode: 0x50, Mnemonic: "BVC", Operator: Bvc, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow}
	defs[0x51] = &Definition{OpCode: 0x51, Mnemonic: "EOR IndirectIndexed", Operator: Eor, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read}
	defs[0x52] = &Definition{OpCode: 0x52, Mnemonic: "KIL", Operator: KIL, Bytes: 1, Cycles: 1, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x53] = &Definition{OpCode: 0x53, Mnemonic: "SRE IndirectIndexed", Operator: SRE, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW}
	defs[0x54] = &Definition{OpCode: 0x54, Mnemonic: "NOP zpg,x", Operator: NOP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0x55] = &Definition{OpCode: 0x55, Mnemonic: "EOR ZeroPageIndexedX", Operator: Eor, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0x56] = &Definition{OpCode: 0x56, Mnemonic: "LSR zpg,x", Operator: Lsr, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x57] = &Definition{OpCode: 0x57, Mnemonic: "SRE ZeroPageIndexedX", Operator: SRE, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x58] = &Definition{OpCode: 0x58, Mnemonic: "CLI", Operator: Cli, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x59] = &Definition{OpCode: 0x59, Mnemonic: "EOR AbsoluteIndexedY", Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read}
	defs[0x5a] = &Definition{OpCode: 0x5a, Mnemonic: "NOP", Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x5b] = &Definition{OpCode: 0x5b, Mnemonic: "SRE AbsoluteIndexedY", Operator: SRE, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW}
	defs[0x5c] = &Definition{OpCode: 0x5c, Mnemonic: "NOP abs,x", Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0x5d] = &Definition{OpCode: 0x5d, Mnemonic: "EOR AbsoluteIndexedX", Operator: Eor, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0x5e] = &Definition{OpCode: 0x5e, Mnemonic: "LSR abs,x", Operator: Lsr, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x5f] = &Definition{OpCode: 0x5f, Mnemonic: "SRE AbsoluteIndexedX", Operator: SRE, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x60] = &Definition{OpCode: 0x60, Mnemonic: "RTS", Operator: Rts, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Subroutine}
	defs[0x61] = &Definition{OpCode: 0x61, Mnemonic: "ADC IndexedIndirect", Operator: Adc, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read}
	defs[0x62] = &Definition{OpCode: 0x62, Mnemonic: "KIL", Operator: KIL, Bytes: 1, Cycles: 1, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x63] = &Definition{OpCode: 0x63, Mnemonic: "RRA IndexedIndirect", Operator: RRA, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW}
	defs[0x64] = &Definition{OpCode: 0x64, Mnemonic: "NOP zpg", Operator: NOP, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0x65] = &Definition{OpCode: 0x65, Mnemonic: "ADC ZeroPage", Operator: Adc, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0x66] = &Definition{OpCode: 0x66, Mnemonic: "ROR zpg", Operator: Ror, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW}
	defs[0x67] = &Definition{OpCode: 0x67, Mnemonic: "RRA ZeroPage", Operator: RRA, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW}
	defs[0x68] = &Definition{OpCode: 0x68, Mnemonic: "PLA", Operator: Pla, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x69] = &Definition{OpCode: 0x69, Mnemonic: "ADC Immediate", Operator: Adc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0x6a] = &Definition{OpCode: 0x6a, Mnemonic: "ROR A", Operator: Ror, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x6b] = &Definition{OpCode: 0x6b, Mnemonic: "ARR #", Operator: ARR, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0x6c] = &Definition{OpCode: 0x6c, Mnemonic: "JMP ind", Operator: Jmp, Bytes: 3, Cycles: 5, AddressingMode: Indirect, PageSensitive: false, Effect: Flow}
	defs[0x6d] = &Definition{OpCode: 0x6d, Mnemonic: "ADC Absolute", Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0x6e] = &Definition{OpCode: 0x6e, Mnemonic: "ROR abs", Operator: Ror, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW}
	defs[0x6f] = &Definition{OpCode: 0x6f, Mnemonic: "RRA Absolute", Operator: RRA, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW}
	defs[0x70] = &Definition{OpCode: 0x70, Mnemonic: "BVS", Operator: Bvs, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow}
	defs[0x71] = &Definition{OpCode: 0x71, Mnemonic: "ADC IndirectIndexed", Operator: Adc, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read}
	defs[0x72] = &Definition{OpCode: 0x72, Mnemonic: "KIL", Operator: KIL, Bytes: 1, Cycles: 1, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x73] = &Definition{OpCode: 0x73, Mnemonic: "RRA IndirectIndexed", Operator: RRA, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW}
	defs[0x74] = &Definition{OpCode: 0x74, Mnemonic: "NOP zpg,x", Operator: NOP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0x75] = &Definition{OpCode: 0x75, Mnemonic: "ADC ZeroPageIndexedX", Operator: Adc, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0x76] = &Definition{OpCode: 0x76, Mnemonic: "ROR zpg,x", Operator: Ror, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x77] = &Definition{OpCode: 0x77, Mnemonic: "RRA ZeroPageIndexedX", Operator: RRA, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x78] = &Definition{OpCode: 0x78, Mnemonic: "SEI", Operator: Sei, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x79] = &Definition{OpCode: 0x79, Mnemonic: "ADC AbsoluteIndexedY", Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read}
	defs[0x7a] = &Definition{OpCode: 0x7a, Mnemonic: "NOP", Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x7b] = &Definition{OpCode: 0x7b, Mnemonic: "RRA AbsoluteIndexedY", Operator: RRA, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW}
	defs[0x7c] = &Definition{OpCode: 0x7c, Mnemonic: "NOP abs,x", Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0x7d] = &Definition{OpCode: 0x7d, Mnemonic: "ADC AbsoluteIndexedX", Operator: Adc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0x7e] = &Definition{OpCode: 0x7e, Mnemonic: "ROR abs,x", Operator: Ror, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x7f] = &Definition{OpCode: 0x7f, Mnemonic: "RRA AbsoluteIndexedX", Operator: RRA, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW}
	defs[0x80] = &Definition{OpCode: 0x80, Mnemonic: "NOP #", Operator: NOP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0x81] = &Definition{OpCode: 0x81, Mnemonic: "STA", Operator: Sta, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write}
	defs[0x82] = &Definition{OpCode: 0x82, Mnemonic: "NOP #", Operator: NOP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0x83] = &Definition{OpCode: 0x83, Mnemonic: "SAX (ind,x)", Operator: SAX, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write}
	defs[0x84] = &Definition{OpCode: 0x84, Mnemonic: "STY", Operator: Sty, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write}
	defs[0x85] = &Definition{OpCode: 0x85, Mnemonic: "STA", Operator: Sta, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write}
	defs[0x86] = &Definition{OpCode: 0x86, Mnemonic: "STX", Operator: Stx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write}
	defs[0x87] = &Definition{OpCode: 0x87, Mnemonic: "SAX zpg", Operator: SAX, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write}
	defs[0x88] = &Definition{OpCode: 0x88, Mnemonic: "DEY", Operator: Dey, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x89] = &Definition{OpCode: 0x89, Mnemonic: "NOP #", Operator: NOP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0x8a] = &Definition{OpCode: 0x8a, Mnemonic: "TXA", Operator: Txa, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x8b] = &Definition{OpCode: 0x8b, Mnemonic: "XAA #", Operator: XAA, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0x8c] = &Definition{OpCode: 0x8c, Mnemonic: "STY", Operator: Sty, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write}
	defs[0x8d] = &Definition{OpCode: 0x8d, Mnemonic: "STA", Operator: Sta, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write}
	defs[0x8e] = &Definition{OpCode: 0x8e, Mnemonic: "STX", Operator: Stx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write}
	defs[0x8f] = &Definition{OpCode: 0x8f, Mnemonic: "SAX abs", Operator: SAX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write}
	defs[0x90] = &Definition{OpCode: 0x90, Mnemonic: "BCC", Operator: Bcc, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow}
	defs[0x91] = &Definition{OpCode: 0x91, Mnemonic: "STA", Operator: Sta, Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write}
	defs[0x92] = &Definition{OpCode: 0x92, Mnemonic: "KIL", Operator: KIL, Bytes: 1, Cycles: 1, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x93] = &Definition{OpCode: 0x93, Mnemonic: "AHX (ind),y", Operator: AHX, Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write}
	defs[0x94] = &Definition{OpCode: 0x94, Mnemonic: "STY", Operator: Sty, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write}
	defs[0x95] = &Definition{OpCode: 0x95, Mnemonic: "STA", Operator: Sta, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write}
	defs[0x96] = &Definition{OpCode: 0x96, Mnemonic: "STX", Operator: Stx, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write}
	defs[0x97] = &Definition{OpCode: 0x97, Mnemonic: "SAX zpg,y", Operator: SAX, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write}
	defs[0x98] = &Definition{OpCode: 0x98, Mnemonic: "TYA", Operator: Tya, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x99] = &Definition{OpCode: 0x99, Mnemonic: "STA", Operator: Sta, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write}
	defs[0x9a] = &Definition{OpCode: 0x9a, Mnemonic: "TXS", Operator: Txs, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0x9b] = &Definition{OpCode: 0x9b, Mnemonic: "TAS abs,y", Operator: TAS, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write}
	defs[0x9c] = &Definition{OpCode: 0x9c, Mnemonic: "SHY abs,x", Operator: SHY, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write}
	defs[0x9d] = &Definition{OpCode: 0x9d, Mnemonic: "STA", Operator: Sta, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write}
	defs[0x9e] = &Definition{OpCode: 0x9e, Mnemonic: "SHX abs,y", Operator: SHX, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write}
	defs[0x9f] = &Definition{OpCode: 0x9f, Mnemonic: "AHX abs,y", Operator: AHX, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write}
	defs[0xa0] = &Definition{OpCode: 0xa0, Mnemonic: "LDY", Operator: Ldy, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0xa1] = &Definition{OpCode: 0xa1, Mnemonic: "LDA IndexedIndirect", Operator: Lda, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read}
	defs[0xa2] = &Definition{OpCode: 0xa2, Mnemonic: "LDX", Operator: Ldx, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0xa3] = &Definition{OpCode: 0xa3, Mnemonic: "LAX (ind,x)", Operator: LAX, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read}
	defs[0xa4] = &Definition{OpCode: 0xa4, Mnemonic: "LDY", Operator: Ldy, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0xa5] = &Definition{OpCode: 0xa5, Mnemonic: "LDA ZeroPage", Operator: Lda, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0xa6] = &Definition{OpCode: 0xa6, Mnemonic: "LDX", Operator: Ldx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0xa7] = &Definition{OpCode: 0xa7, Mnemonic: "LAX zpg", Operator: LAX, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0xa8] = &Definition{OpCode: 0xa8, Mnemonic: "TAY", Operator: Tay, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xa9] = &Definition{OpCode: 0xa9, Mnemonic: "LDA Immediate", Operator: Lda, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0xaa] = &Definition{OpCode: 0xaa, Mnemonic: "TAX", Operator: Tax, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xab] = &Definition{OpCode: 0xab, Mnemonic: "LAX #", Operator: LAX, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0xac] = &Definition{OpCode: 0xac, Mnemonic: "LDY", Operator: Ldy, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0xad] = &Definition{OpCode: 0xad, Mnemonic: "LDA Absolute", Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0xae] = &Definition{OpCode: 0xae, Mnemonic: "LDX", Operator: Ldx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0xaf] = &Definition{OpCode: 0xaf, Mnemonic: "LAX abs", Operator: LAX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0xb0] = &Definition{OpCode: 0xb0, Mnemonic: "BCS", Operator: Bcs, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow}
	defs[0xb1] = &Definition{OpCode: 0xb1, Mnemonic: "LDA IndirectIndexed", Operator: Lda, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read}
	defs[0xb2] = &Definition{OpCode: 0xb2, Mnemonic: "KIL", Operator: KIL, Bytes: 1, Cycles: 1, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xb3] = &Definition{OpCode: 0xb3, Mnemonic: "LAX (ind),y", Operator: LAX, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read}
	defs[0xb4] = &Definition{OpCode: 0xb4, Mnemonic: "LDY", Operator: Ldy, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0xb5] = &Definition{OpCode: 0xb5, Mnemonic: "LDA ZeroPageIndexedX", Operator: Lda, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0xb6] = &Definition{OpCode: 0xb6, Mnemonic: "LDX", Operator: Ldx, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read}
	defs[0xb7] = &Definition{OpCode: 0xb7, Mnemonic: "LAX zpg,y", Operator: LAX, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read}
	defs[0xb8] = &Definition{OpCode: 0xb8, Mnemonic: "CLV", Operator: Clv, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xb9] = &Definition{OpCode: 0xb9, Mnemonic: "LDA AbsoluteIndexedY", Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read}
	defs[0xba] = &Definition{OpCode: 0xba, Mnemonic: "TSX", Operator: Tsx, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xbb] = &Definition{OpCode: 0xbb, Mnemonic: "LAS abs,y", Operator: LAS, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read}
	defs[0xbc] = &Definition{OpCode: 0xbc, Mnemonic: "LDY", Operator: Ldy, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0xbd] = &Definition{OpCode: 0xbd, Mnemonic: "LDA AbsoluteIndexedX", Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0xbe] = &Definition{OpCode: 0xbe, Mnemonic: "LDX", Operator: Ldx, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read}
	defs[0xbf] = &Definition{OpCode: 0xbf, Mnemonic: "LAX abs,y", Operator: LAX, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read}
	defs[0xc0] = &Definition{OpCode: 0xc0, Mnemonic: "CPY", Operator: Cpy, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0xc1] = &Definition{OpCode: 0xc1, Mnemonic: "CMP IndexedIndirect", Operator: Cmp, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read}
	defs[0xc2] = &Definition{OpCode: 0xc2, Mnemonic: "NOP #", Operator: NOP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0xc3] = &Definition{OpCode: 0xc3, Mnemonic: "DCP IndexedIndirect", Operator: DCP, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW}
	defs[0xc4] = &Definition{OpCode: 0xc4, Mnemonic: "CPY", Operator: Cpy, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0xc5] = &Definition{OpCode: 0xc5, Mnemonic: "CMP ZeroPage", Operator: Cmp, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0xc6] = &Definition{OpCode: 0xc6, Mnemonic: "DEC zpg", Operator: Dec, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW}
	defs[0xc7] = &Definition{OpCode: 0xc7, Mnemonic: "DCP ZeroPage", Operator: DCP, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW}
	defs[0xc8] = &Definition{OpCode: 0xc8, Mnemonic: "INY", Operator: Iny, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xc9] = &Definition{OpCode: 0xc9, Mnemonic: "CMP Immediate", Operator: Cmp, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0xca] = &Definition{OpCode: 0xca, Mnemonic: "DEX", Operator: Dex, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xcb] = &Definition{OpCode: 0xcb, Mnemonic: "AXS #", Operator: AXS, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0xcc] = &Definition{OpCode: 0xcc, Mnemonic: "CPY", Operator: Cpy, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0xcd] = &Definition{OpCode: 0xcd, Mnemonic: "CMP Absolute", Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0xce] = &Definition{OpCode: 0xce, Mnemonic: "DEC abs", Operator: Dec, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW}
	defs[0xcf] = &Definition{OpCode: 0xcf, Mnemonic: "DCP Absolute", Operator: DCP, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW}
	defs[0xd0] = &Definition{OpCode: 0xd0, Mnemonic: "BNE", Operator: Bne, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow}
	defs[0xd1] = &Definition{OpCode: 0xd1, Mnemonic: "CMP IndirectIndexed", Operator: Cmp, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read}
	defs[0xd2] = &Definition{OpCode: 0xd2, Mnemonic: "KIL", Operator: KIL, Bytes: 1, Cycles: 1, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xd3] = &Definition{OpCode: 0xd3, Mnemonic: "DCP IndirectIndexed", Operator: DCP, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW}
	defs[0xd4] = &Definition{OpCode: 0xd4, Mnemonic: "NOP zpg,x", Operator: NOP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0xd5] = &Definition{OpCode: 0xd5, Mnemonic: "CMP ZeroPageIndexedX", Operator: Cmp, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0xd6] = &Definition{OpCode: 0xd6, Mnemonic: "DEC zpg,x", Operator: Dec, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW}
	defs[0xd7] = &Definition{OpCode: 0xd7, Mnemonic: "DCP ZeroPageIndexedX", Operator: DCP, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW}
	defs[0xd8] = &Definition{OpCode: 0xd8, Mnemonic: "CLD", Operator: Cld, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xd9] = &Definition{OpCode: 0xd9, Mnemonic: "CMP AbsoluteIndexedY", Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read}
	defs[0xda] = &Definition{OpCode: 0xda, Mnemonic: "NOP", Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xdb] = &Definition{OpCode: 0xdb, Mnemonic: "DCP AbsoluteIndexedY", Operator: DCP, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW}
	defs[0xdc] = &Definition{OpCode: 0xdc, Mnemonic: "NOP abs,x", Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0xdd] = &Definition{OpCode: 0xdd, Mnemonic: "CMP AbsoluteIndexedX", Operator: Cmp, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0xde] = &Definition{OpCode: 0xde, Mnemonic: "DEC abs,x", Operator: Dec, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW}
	defs[0xdf] = &Definition{OpCode: 0xdf, Mnemonic: "DCP AbsoluteIndexedX", Operator: DCP, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW}
	defs[0xe0] = &Definition{OpCode: 0xe0, Mnemonic: "CPX", Operator: Cpx, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0xe1] = &Definition{OpCode: 0xe1, Mnemonic: "SBC IndexedIndirect", Operator: Sbc, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read}
	defs[0xe2] = &Definition{OpCode: 0xe2, Mnemonic: "NOP #", Operator: NOP, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0xe3] = &Definition{OpCode: 0xe3, Mnemonic: "ISC IndexedIndirect", Operator: ISC, Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: RMW}
	defs[0xe4] = &Definition{OpCode: 0xe4, Mnemonic: "CPX", Operator: Cpx, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0xe5] = &Definition{OpCode: 0xe5, Mnemonic: "SBC ZeroPage", Operator: Sbc, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read}
	defs[0xe6] = &Definition{OpCode: 0xe6, Mnemonic: "INC zpg", Operator: Inc, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW}
	defs[0xe7] = &Definition{OpCode: 0xe7, Mnemonic: "ISC ZeroPage", Operator: ISC, Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW}
	defs[0xe8] = &Definition{OpCode: 0xe8, Mnemonic: "INX", Operator: Inx, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xe9] = &Definition{OpCode: 0xe9, Mnemonic: "SBC Immediate", Operator: Sbc, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0xea] = &Definition{OpCode: 0xea, Mnemonic: "NOP", Operator: Nop, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xeb] = &Definition{OpCode: 0xeb, Mnemonic: "SBC #", Operator: SBC, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read}
	defs[0xec] = &Definition{OpCode: 0xec, Mnemonic: "CPX", Operator: Cpx, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0xed] = &Definition{OpCode: 0xed, Mnemonic: "SBC Absolute", Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read}
	defs[0xee] = &Definition{OpCode: 0xee, Mnemonic: "INC abs", Operator: Inc, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW}
	defs[0xef] = &Definition{OpCode: 0xef, Mnemonic: "ISC Absolute", Operator: ISC, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW}
	defs[0xf0] = &Definition{OpCode: 0xf0, Mnemonic: "BEQ", Operator: Beq, Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: true, Effect: Flow}
	defs[0xf1] = &Definition{OpCode: 0xf1, Mnemonic: "SBC IndirectIndexed", Operator: Sbc, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read}
	defs[0xf2] = &Definition{OpCode: 0xf2, Mnemonic: "KIL", Operator: KIL, Bytes: 1, Cycles: 1, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xf3] = &Definition{OpCode: 0xf3, Mnemonic: "ISC IndirectIndexed", Operator: ISC, Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: RMW}
	defs[0xf4] = &Definition{OpCode: 0xf4, Mnemonic: "NOP zpg,x", Operator: NOP, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0xf5] = &Definition{OpCode: 0xf5, Mnemonic: "SBC ZeroPageIndexedX", Operator: Sbc, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read}
	defs[0xf6] = &Definition{OpCode: 0xf6, Mnemonic: "INC zpg,x", Operator: Inc, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW}
	defs[0xf7] = &Definition{OpCode: 0xf7, Mnemonic: "ISC ZeroPageIndexedX", Operator: ISC, Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW}
	defs[0xf8] = &Definition{OpCode: 0xf8, Mnemonic: "SED", Operator: Sed, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xf9] = &Definition{OpCode: 0xf9, Mnemonic: "SBC AbsoluteIndexedY", Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read}
	defs[0xfa] = &Definition{OpCode: 0xfa, Mnemonic: "NOP", Operator: NOP, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read}
	defs[0xfb] = &Definition{OpCode: 0xfb, Mnemonic: "ISC AbsoluteIndexedY", Operator: ISC, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: RMW}
	defs[0xfc] = &Definition{OpCode: 0xfc, Mnemonic: "NOP abs,x", Operator: NOP, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0xfd] = &Definition{OpCode: 0xfd, Mnemonic: "SBC AbsoluteIndexedX", Operator: Sbc, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read}
	defs[0xfe] = &Definition{OpCode: 0xfe, Mnemonic: "INC abs,x", Operator: Inc, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW}
	defs[0xff] = &Definition{OpCode: 0xff, Mnemonic: "ISC AbsoluteIndexedX", Operator: ISC, Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW}

	return defs
}
