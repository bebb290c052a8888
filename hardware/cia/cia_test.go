package cia_test

import (
	"testing"

	"github.com/sixfour/c64core/hardware/cia"
	"github.com/sixfour/c64core/test"
)

func TestTimerAUnderflowRaisesICR(t *testing.T) {
	c := cia.New()
	c.Write(cia.RegTALO, 0x02)
	c.Write(cia.RegTAHI, 0x00)
	c.Write(cia.RegICR, cia.ICRSetClr|cia.ICRTimerA)
	c.Write(cia.RegCRA, 0x01) // start, continuous, phi2

	// counter 2 -> 1 -> 0 (underflow, reload) takes 3 ticks from $0002.
	for i := 0; i < 2; i++ {
		c.Tick()
	}
	out := c.Tick()
	// the flag goes pending the cycle of underflow; the IRQ line is
	// asserted one cycle later, so fetch it on the following tick.
	out = out || c.Tick()
	test.ExpectSuccess(t, out)

	icr := c.Read(cia.RegICR)
	test.Equate(t, icr&cia.ICRTimerA, uint8(cia.ICRTimerA))
}

func TestICRReadClearsPendingFlags(t *testing.T) {
	c := cia.New()
	c.Write(cia.RegTALO, 0x01)
	c.Write(cia.RegTAHI, 0x00)
	c.Write(cia.RegICR, cia.ICRSetClr|cia.ICRTimerA)
	c.Write(cia.RegCRA, 0x01)

	for i := 0; i < 3; i++ {
		c.Tick()
	}

	_ = c.Read(cia.RegICR)
	test.Equate(t, c.Peek(cia.RegICR), uint8(0))
}

func TestICRMaskGatesOutput(t *testing.T) {
	c := cia.New()
	c.Write(cia.RegTALO, 0x01)
	c.Write(cia.RegTAHI, 0x00)
	c.Write(cia.RegCRA, 0x01)
	// no ICRSetClr write, so mask stays zero: ICR flag latches but IRQ
	// line must never assert.
	var asserted bool
	for i := 0; i < 4; i++ {
		if c.Tick() {
			asserted = true
		}
	}
	test.ExpectFailure(t, asserted)
}

func TestTimerOneShotStopsAfterUnderflow(t *testing.T) {
	c := cia.New()
	c.Write(cia.RegTALO, 0x01)
	c.Write(cia.RegTAHI, 0x00)
	c.Write(cia.RegCRA, 0x01|0x08) // start, one-shot

	for i := 0; i < 3; i++ {
		c.Tick()
	}
	test.Equate(t, c.Read(cia.RegCRA)&0x01, uint8(0))
}

func TestTimerBCascadesOnTimerAUnderflow(t *testing.T) {
	c := cia.New()
	c.Write(cia.RegTALO, 0x01)
	c.Write(cia.RegTAHI, 0x00)
	c.Write(cia.RegCRA, 0x01)

	c.Write(cia.RegTBLO, 0x01)
	c.Write(cia.RegTBHI, 0x00)
	c.Write(cia.RegCRB, 0x01|0x40|0x20|0x08) // start, cascade on TA, one-shot

	// TA (latch 1) underflows on ticks 2 and 4; TB counts only on those
	// ticks, so it reaches 0 on tick 2 and underflows (stopping) on tick 4.
	for i := 0; i < 3; i++ {
		c.Tick()
	}
	test.Equate(t, c.Read(cia.RegCRB)&0x01, uint8(1))
	c.Tick()
	test.Equate(t, c.Read(cia.RegCRB)&0x01, uint8(0))
}

func TestTODHourLatchHoldsUntilTenthsRead(t *testing.T) {
	c := cia.New()
	c.Write(cia.RegCRB, crbAlarmClear)
	c.Write(cia.RegTODHR, 0x12)
	c.Write(cia.RegTODMIN, 0x00)
	c.Write(cia.RegTODSEC, 0x00)
	c.Write(cia.RegTODTEN, 0x00)

	_ = c.Read(cia.RegTODHR) // latches the clock

	for i := 0; i < 20; i++ {
		c.Tick()
	}

	latched := c.Read(cia.RegTODSEC)
	test.Equate(t, latched, uint8(0x00))

	_ = c.Read(cia.RegTODTEN) // unlatches
	test.ExpectInequality(t, c.Peek(cia.RegTODSEC), uint8(0x00))
}

func TestIdleWhenBothTimersStopped(t *testing.T) {
	c := cia.New()
	test.ExpectSuccess(t, c.Idle())
	c.Write(cia.RegTALO, 0x10)
	c.Write(cia.RegCRA, 0x01)
	test.ExpectFailure(t, c.Idle())
}

// crbAlarmClear writes CRB with the alarm-select bit clear so that TOD
// register writes set the running clock rather than the alarm.
const crbAlarmClear = 0x00
