package sid_test

import (
	"testing"

	"github.com/sixfour/c64core/hardware/sid"
	"github.com/sixfour/c64core/test"
)

func TestWriteThenReadLatchesValue(t *testing.T) {
	s := sid.New()
	s.Write(0x18, 0x0f) // mode/volume register
	test.ExpectEquality(t, s.Read(0x18), uint8(0x0f))
}

func TestRegisterMirrorsModulo32(t *testing.T) {
	s := sid.New()
	s.Write(0x00, 0x55)
	test.ExpectEquality(t, s.Read(0x20), uint8(0x55)) // 0x20 % 32 == 0
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	s := sid.New()
	s.Write(sid.RegPOTX, 0x11)
	s.Write(sid.RegENV3, 0x22)
	s.Write(0x18, 0x0a)

	data, err := s.MarshalBinary()
	test.ExpectSuccess(t, err)

	restored := sid.New()
	test.ExpectSuccess(t, restored.UnmarshalBinary(data))

	test.ExpectEquality(t, restored.Read(sid.RegPOTX), s.Read(sid.RegPOTX))
	test.ExpectEquality(t, restored.Read(sid.RegENV3), s.Read(sid.RegENV3))
	test.ExpectEquality(t, restored.Read(0x18), s.Read(0x18))
}
