package emulation

import (
	"testing"

	"github.com/sixfour/c64core/test"
)

// TestKeyboardScanMatchesScenario mirrors §8 scenario 5 verbatim: hold
// (col=0, row=0) pressed, write $FE to $DC00 (selecting column 0), and
// expect $DC01 to read back $FE.
func TestKeyboardScanMatchesScenario(t *testing.T) {
	m := &Machine{}
	m.SetKey(0, 0, true)
	test.ExpectEquality(t, m.readKeyboardRows(0xfe), uint8(0xfe))
}

func TestKeyboardScanNoKeysPressed(t *testing.T) {
	m := &Machine{}
	test.ExpectEquality(t, m.readKeyboardRows(0x00), uint8(0xff))
}

func TestKeyboardScanMultipleColumnsSelected(t *testing.T) {
	m := &Machine{}
	m.SetKey(0, 3, true)
	m.SetKey(1, 5, true)
	// both columns 0 and 1 selected (active low): either pressed row shows up
	got := m.readKeyboardRows(0xfc)
	test.ExpectEquality(t, got&(1<<3), uint8(0))
	test.ExpectEquality(t, got&(1<<5), uint8(0))
}

func TestSetKeyOutOfRangeIgnored(t *testing.T) {
	m := &Machine{}
	m.SetKey(8, 0, true) // column out of range, must not panic or alter state
	test.ExpectEquality(t, m.readKeyboardRows(0x00), uint8(0xff))
}

func TestJoystickBits(t *testing.T) {
	j := Joystick{Up: true, Fire: true}
	test.ExpectEquality(t, j.bits(), uint8(0xff&^(1<<0)&^(1<<4)))
}
