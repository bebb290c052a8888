package emulation

import (
	"testing"

	"github.com/sixfour/c64core/assert"
	"github.com/sixfour/c64core/test"
)

// TestGoRoutineIDStableOnCallingGoroutine checks that
// assert.GetGoRoutineID reports the same identity on every one of 1000
// calls made from the test's own goroutine. It exercises the helper only;
// it does not call Run or tick.
func TestGoRoutineIDStableOnCallingGoroutine(t *testing.T) {
	callerID := assert.GetGoRoutineID()

	for i := 0; i < 1000; i++ {
		if id := assert.GetGoRoutineID(); id != callerID {
			t.Fatalf("iteration %d ran on goroutine %d, want %d", i, id, callerID)
		}
	}

	test.ExpectEquality(t, assert.GetGoRoutineID(), callerID)
}
