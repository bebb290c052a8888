// Package emuerr defines the error taxonomy the emulation core reports to
// its host: not error types to be switched on, but four kinds of condition,
// distinguished with errors.Is over wrapped sentinel values.
//
// There is no retry anywhere in the core: the simulated machine is
// deterministic and cannot "fail" in the operational sense. Every
// recoverable condition surfaces as one of these kinds in a message to the
// host; Unreachable is the one kind that is never recoverable.
package emuerr

import (
	"errors"
	"fmt"
)

// The four kinds of condition the core ever reports.
var (
	// ErrInvalidInput: unrecognised ROM, malformed snapshot, wrong file
	// length. Rejected at the port; the core remains in its prior state.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDebugStop: breakpoint hit, or CPU jam. The loop halts but state is
	// coherent; the host may step or resume.
	ErrDebugStop = errors.New("debug stop")

	// ErrHostHalt: host-requested halt. Identical externally to a
	// breakpoint.
	ErrHostHalt = errors.New("host halt")

	// ErrUnreachable: an internal invariant was broken (e.g. a decoded
	// opcode fell outside the dispatch table). Aborts the worker; indicates
	// an implementation bug.
	ErrUnreachable = errors.New("unreachable")
)

// InvalidInput wraps a formatted message as an Invalid input condition.
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidInput}, args...)...)
}

// DebugStop wraps a formatted message as a Debug stop condition.
func DebugStop(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrDebugStop}, args...)...)
}

// HostHalt wraps a message as a Host-requested halt condition.
func HostHalt(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrHostHalt}, args...)...)
}

// Unreachable wraps a message as an Unreachable (fatal, implementation-bug)
// condition.
func Unreachable(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrUnreachable}, args...)...)
}

// Is reports whether err belongs to the given kind (one of the four
// sentinels above), looking through any wrapping.
func Is(err error, kind error) bool {
	return errors.Is(err, kind)
}
