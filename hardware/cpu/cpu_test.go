package cpu_test

import (
	"testing"

	"github.com/sixfour/c64core/hardware/cpu"
	"github.com/sixfour/c64core/test"
)

// flatRAM is a minimal bus.Memory backed by a single 64k array, enough to
// drive the CPU through a sequence of opcodes without any bank-switching or
// chip decoding getting in the way.
type flatRAM [65536]uint8

func (r *flatRAM) Read(address uint16) (uint8, error) {
	return r[address], nil
}

func (r *flatRAM) Write(address uint16, data uint8) error {
	r[address] = data
	return nil
}

func newTestCPU(program []uint8) (*cpu.CPU, *flatRAM) {
	mem := &flatRAM{}
	copy(mem[0x1000:], program)

	mc := cpu.NewCPU(nil, mem)
	mc.Reset()
	mc.LoadPC(0x1000)

	return mc, mem
}

func run(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
}

func TestResetState(t *testing.T) {
	mc, _ := newTestCPU(nil)
	test.Equate(t, mc.A.Value(), uint8(0))
	test.Equate(t, mc.X.Value(), uint8(0))
	test.Equate(t, mc.Y.Value(), uint8(0))
	test.Equate(t, mc.SP.Value(), uint8(0xff))
	test.ExpectSuccess(t, mc.HasReset())
}

func TestLDAImmediateSetsZeroFlag(t *testing.T) {
	mc, _ := newTestCPU([]uint8{0xa9, 0x00}) // LDA #$00
	run(t, mc)
	test.Equate(t, mc.A.Value(), uint8(0))
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)
}

func TestLDAImmediateSetsSignFlag(t *testing.T) {
	mc, _ := newTestCPU([]uint8{0xa9, 0x80}) // LDA #$80
	run(t, mc)
	test.Equate(t, mc.A.Value(), uint8(0x80))
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Zero)
}

func TestADCWithCarry(t *testing.T) {
	mc, _ := newTestCPU([]uint8{
		0xa9, 0x01, // LDA #$01
		0x69, 0x01, // ADC #$01
	})
	run(t, mc)
	run(t, mc)
	test.Equate(t, mc.A.Value(), uint8(2))
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestADCOverflow(t *testing.T) {
	mc, _ := newTestCPU([]uint8{
		0xa9, 0x7f, // LDA #$7f
		0x69, 0x01, // ADC #$01
	})
	run(t, mc)
	run(t, mc)
	test.Equate(t, mc.A.Value(), uint8(0x80))
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectSuccess(t, mc.Status.Sign)
}

func TestTransferRegisters(t *testing.T) {
	mc, _ := newTestCPU([]uint8{
		0xa9, 0x42, // LDA #$42
		0xaa,       // TAX
		0xa8,       // TAY
	})
	run(t, mc)
	run(t, mc)
	run(t, mc)
	test.Equate(t, mc.X.Value(), uint8(0x42))
	test.Equate(t, mc.Y.Value(), uint8(0x42))
}

func TestStoreAndLoadZeroPage(t *testing.T) {
	mc, mem := newTestCPU([]uint8{
		0xa9, 0x37, // LDA #$37
		0x85, 0x10, // STA $10
		0xa9, 0x00, // LDA #$00
		0xa5, 0x10, // LDA $10
	})
	run(t, mc)
	run(t, mc)
	run(t, mc)
	run(t, mc)
	test.Equate(t, mem[0x0010], uint8(0x37))
	test.Equate(t, mc.A.Value(), uint8(0x37))
}

func TestBranchTaken(t *testing.T) {
	mc, _ := newTestCPU([]uint8{
		0xa9, 0x00, // LDA #$00
		0xf0, 0x02, // BEQ +2
		0xa9, 0xff, // LDA #$ff (skipped)
		0xa9, 0x11, // LDA #$11
	})
	run(t, mc)
	run(t, mc)
	run(t, mc)
	test.Equate(t, mc.A.Value(), uint8(0x11))
}

func TestJSRandRTS(t *testing.T) {
	mc, _ := newTestCPU([]uint8{
		0x20, 0x00, 0x20, // JSR $2000
		0xa9, 0x99, // LDA #$99 (return point)
	})
	mc.Plumb(nil)

	mem := &flatRAM{}
	copy(mem[0x1000:], []uint8{0x20, 0x00, 0x20, 0xa9, 0x99})
	copy(mem[0x2000:], []uint8{0x60}) // RTS

	mc2 := cpu.NewCPU(nil, mem)
	mc2.Reset()
	mc2.LoadPC(0x1000)

	run(t, mc2)
	test.Equate(t, mc2.PC.Address(), uint16(0x2000))

	run(t, mc2)
	test.Equate(t, mc2.PC.Address(), uint16(0x1003))

	run(t, mc2)
	test.Equate(t, mc2.A.Value(), uint8(0x99))

	_ = mc // silence unused warning from the first scratch cpu
}

func TestIncrementDecrement(t *testing.T) {
	mc, _ := newTestCPU([]uint8{
		0xa2, 0xff, // LDX #$ff
		0xe8,       // INX (wraps to 0)
	})
	run(t, mc)
	run(t, mc)
	test.Equate(t, mc.X.Value(), uint8(0))
	test.ExpectSuccess(t, mc.Status.Zero)
}

func TestIRQServicedWhenUnmasked(t *testing.T) {
	mem := &flatRAM{}
	copy(mem[0x1000:], []uint8{0xa9, 0x00}) // LDA #$00, leaves I clear
	copy(mem[0xfffe:], []uint8{0x00, 0x90}) // IRQ vector -> $9000

	mc := cpu.NewCPU(nil, mem)
	mc.Reset()
	mc.LoadPC(0x1000)
	run(t, mc) // LDA #$00, I flag still clear

	mc.SetIRQLine(true)
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectSuccess(t, err)
	test.Equate(t, mc.PC.Address(), uint16(0x9000))
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
}

func TestIRQMaskedByInterruptDisable(t *testing.T) {
	mem := &flatRAM{}
	copy(mem[0x1000:], []uint8{0x78, 0xea}) // SEI, NOP
	copy(mem[0xfffe:], []uint8{0x00, 0x90})

	mc := cpu.NewCPU(nil, mem)
	mc.Reset()
	mc.LoadPC(0x1000)
	run(t, mc) // SEI sets I

	mc.SetIRQLine(true)
	pcBefore := mc.PC.Address()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, mc.PC.Address(), uint16(0x9000))
	_ = pcBefore
}

func TestNMIServicedOnFallingEdge(t *testing.T) {
	mem := &flatRAM{}
	copy(mem[0x1000:], []uint8{0xea}) // NOP
	copy(mem[0xfffa:], []uint8{0x00, 0x80})

	mc := cpu.NewCPU(nil, mem)
	mc.Reset()
	mc.LoadPC(0x1000)

	mc.SetNMILine(true)
	run(t, mc) // NOP; the edge hasn't fallen yet so no service this call

	mc.SetNMILine(false) // falling edge latches a pending NMI
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectSuccess(t, err)
	test.Equate(t, mc.PC.Address(), uint16(0x8000))
}

func TestKilHaltsUntilReset(t *testing.T) {
	mc, _ := newTestCPU([]uint8{0x02}) // JAM/KIL
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, mc.Killed)

	mc.Reset()
	test.ExpectFailure(t, mc.Killed)
}
