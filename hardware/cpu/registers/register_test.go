package registers_test

import (
	"testing"

	"github.com/sixfour/c64core/hardware/cpu/registers"
	"github.com/sixfour/c64core/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.Equate(t, r8.IsZero(), true)
	test.Equate(t, r8.Value(), uint8(0))

	// loading & addition
	r8.Load(127)
	test.Equate(t, r8.Value(), uint8(127))
	r8.Add(2, false)
	test.Equate(t, r8.Value(), uint8(129))

	// addition boundary
	r8.Load(255)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)
	test.Equate(t, r8.Value(), uint8(0))

	// addition boundary with carry
	r8.Load(254)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)
	test.Equate(t, r8.Value(), uint8(0))

	// addition boundary with carry
	r8.Load(255)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), false)
	test.Equate(t, r8.Value(), uint8(1))

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.Equate(t, r8.Value(), uint8(10))

	r8.Load(12)
	r8.Subtract(1, false)
	test.Equate(t, r8.Value(), uint8(10))

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.Equate(t, r8.Value(), uint8(0xFA))

	// subtract on boundary
	r8.Load(0)
	r8.Subtract(1, true)
	test.Equate(t, r8.Value(), uint8(255))
	r8.Load(1)
	r8.Subtract(1, false)
	test.Equate(t, r8.Value(), uint8(255))
	r8.Load(1)
	r8.Subtract(2, true)
	test.Equate(t, r8.Value(), uint8(255))

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.Equate(t, r8.Value(), uint8(0x01))
	r8.EOR(0xFF)
	test.Equate(t, r8.Value(), uint8(0xFE))
	r8.ORA(0x1)
	test.Equate(t, r8.Value(), uint8(0xFF))

	// shifts
	carry = r8.ASL()
	test.Equate(t, r8.Value(), uint8(0xFE))
	test.Equate(t, carry, true)
	carry = r8.LSR()
	test.Equate(t, r8.Value(), uint8(0x7F))
	test.Equate(t, carry, false)
	carry = r8.LSR()
	test.Equate(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.Equate(t, r8.Value(), uint8(0xfe))
	test.Equate(t, carry, true)
	carry = r8.ROR(true)
	test.Equate(t, r8.Value(), uint8(0xff))
	test.Equate(t, carry, false)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xff)
	test.Equate(t, sp.Address(), uint16(0x01ff))
	sp.Load(0x00)
	test.Equate(t, sp.Address(), uint16(0x0100))
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.Sign = true
	sr.Carry = true
	v := sr.Value()

	var sr2 registers.StatusRegister
	sr2.Load(v)
	test.Equate(t, sr2.Sign, true)
	test.Equate(t, sr2.Carry, true)
	test.Equate(t, sr2.Break, true)
}
