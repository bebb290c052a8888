package registers_test

import (
	"testing"

	"github.com/sixfour/c64core/hardware/cpu/registers"
	"github.com/sixfour/c64core/test"
)

func TestProgramCounter(t *testing.T) {
	// initialisation
	pc := registers.NewProgramCounter(0)
	test.Equate(t, pc.Address(), uint16(0))

	// loading & addition
	pc.Load(127)
	test.Equate(t, pc.Value(), uint16(127))
	pc.Add(2)
	test.Equate(t, pc.Value(), uint16(129))

	// wraps within 16 bits
	pc.Load(0xffff)
	carry, overflow := pc.Add(1)
	test.Equate(t, pc.Value(), uint16(0))
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
}
