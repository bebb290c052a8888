package execution_test

import (
	"testing"

	"github.com/sixfour/c64core/hardware/cpu/execution"
	"github.com/sixfour/c64core/hardware/cpu/instructions"
	"github.com/sixfour/c64core/test"
)

func TestIsValid(t *testing.T) {
	defs := instructions.GetDefinitions()

	r := execution.Result{
		Defn:      defs[0xEA], // NOP, implied, 2 cycles
		ByteCount: 1,
		Cycles:    2,
		Final:     true,
	}
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 3
	test.ExpectFailure(t, r.IsValid())
}

func TestIsValidBranchTolerance(t *testing.T) {
	defs := instructions.GetDefinitions()
	defn := defs[0xD0] // BNE, 2 base cycles, up to +2 on a taken page-crossing branch

	for _, cycles := range []int{2, 3, 4} {
		r := execution.Result{Defn: defn, ByteCount: 2, Cycles: cycles, Final: true}
		test.ExpectSuccess(t, r.IsValid())
	}

	r := execution.Result{Defn: defn, ByteCount: 2, Cycles: 5, Final: true}
	test.ExpectFailure(t, r.IsValid())
}

func TestIsValidUnfinalised(t *testing.T) {
	var r execution.Result
	test.ExpectFailure(t, r.IsValid())
}

func TestReset(t *testing.T) {
	defs := instructions.GetDefinitions()
	r := execution.Result{Defn: defs[0xEA], ByteCount: 1, Cycles: 2, Final: true}
	r.Reset()
	test.Equate(t, r.Defn == nil, true)
	test.Equate(t, r.Final, false)
}
