package television_test

import (
	"testing"

	"github.com/sixfour/c64core/digest"
	"github.com/sixfour/c64core/hardware/television"
	"github.com/sixfour/c64core/test"
)

// compile-time check that Television satisfies digest.Digest, per the
// digest package's regression/playback-verification role.
var _ digest.Digest = (*television.Television)(nil)

func TestHashChangesOnPublishedFrame(t *testing.T) {
	tv := television.NewTelevision()
	before := tv.Hash()

	frame := make([]uint8, television.Width*television.Height)
	frame[0] = 1 // colour index 1 (white), distinct from the zeroed buffer
	tv.PublishFrame(frame)

	after := tv.Hash()
	test.ExpectInequality(t, before, after)
}

func TestHashStableForIdenticalFrames(t *testing.T) {
	tv := television.NewTelevision()
	frame := make([]uint8, television.Width*television.Height)
	for i := range frame {
		frame[i] = uint8(i % 16)
	}

	tv.PublishFrame(frame)
	first := tv.Hash()
	tv.ResetDigest()
	second := tv.Hash()

	test.ExpectEquality(t, first, second)
}

func TestCoordsRoundTrip(t *testing.T) {
	tv := television.NewTelevision()
	tv.SetCoords(3, 100, 20)
	c := tv.GetCoords()
	test.ExpectEquality(t, c.Frame, 3)
	test.ExpectEquality(t, c.Scanline, 100)
	test.ExpectEquality(t, c.Clock, 20)
}
