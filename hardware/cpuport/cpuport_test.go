package cpuport_test

import (
	"testing"

	"github.com/sixfour/c64core/hardware/cpuport"
	"github.com/sixfour/c64core/test"
)

func TestDefaultBankBits(t *testing.T) {
	p := cpuport.NewPort()
	b := p.Bits()
	test.ExpectSuccess(t, b.LORAM)
	test.ExpectSuccess(t, b.HIRAM)
	test.ExpectSuccess(t, b.CHAREN)
}

func TestWriteChangesBankBits(t *testing.T) {
	p := cpuport.NewPort()
	p.WriteData(0x30) // clear LORAM/HIRAM/CHAREN (bits 4/5 set; with DDR $2F bit 5 is an output, bit 4 an input)
	b := p.Bits()
	test.ExpectFailure(t, b.LORAM)
	test.ExpectFailure(t, b.HIRAM)
	test.ExpectFailure(t, b.CHAREN)
}

func TestInputBitsFloatHigh(t *testing.T) {
	p := cpuport.NewPort()
	p.WriteDDR(0x00) // every bit an input
	test.Equate(t, p.Read(), uint8(0xff))
}

func TestCassetteSenseReflectsSwitch(t *testing.T) {
	p := cpuport.NewPort()
	p.WriteDDR(0x2f) // bit 4 (sense) remains an input
	p.CassetteSenseIn = false
	test.Equate(t, p.Read()&0x10, uint8(0))
}
