// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter paces the Scheduler's master loop to real wall-clock time:
// one CheckFrame call per emitted frame blocks until the next frame's target
// time has arrived, and MeasureActual reports the rate actually achieved.
// Unlike the teacher's GUI-coupled frame/scanline/colorclock throttle (which
// hooks into a PixelRenderer to change granularity at very low rates), the
// Scheduler only ever calls this at frame granularity, so that complexity is
// dropped; the wall-clock pacing and running-rate measurement idiom is kept.
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter paces frame emission to a target refresh rate and measures the
// rate actually achieved.
type Limiter struct {
	hz   float32
	dur  time.Duration
	next time.Time

	// Measured holds the most recently computed actual rate, as a float32,
	// stored via atomic.Value so it can be read concurrently with the
	// scheduler's own goroutine (see §5 of the design: the stats package
	// samples this from its own HTTP handler goroutine).
	Measured atomic.Value

	windowStart time.Time
	windowCount int
}

// NewLimiter creates a Limiter with no configured refresh rate; CheckFrame
// is a no-op until SetRefreshRate is called.
func NewLimiter() *Limiter {
	l := &Limiter{}
	l.Measured.Store(float32(0))
	return l
}

// SetRefreshRate configures the target frames-per-second and resets the
// measurement window.
func (l *Limiter) SetRefreshRate(hz float32) {
	l.hz = hz
	if hz > 0 {
		l.dur = time.Duration(float64(time.Second) / float64(hz))
	} else {
		l.dur = 0
	}
	l.next = time.Time{}
	l.windowStart = time.Time{}
	l.windowCount = 0
}

// CheckFrame blocks, if necessary, until the target time for the next frame
// has arrived. Call once per emitted frame.
func (l *Limiter) CheckFrame() {
	if l.dur <= 0 {
		return
	}
	now := time.Now()
	if l.next.IsZero() {
		l.next = now.Add(l.dur)
		return
	}
	if wait := l.next.Sub(now); wait > 0 {
		time.Sleep(wait)
	}
	l.next = l.next.Add(l.dur)
}

// MeasureActual recomputes the Measured rate from a rolling one-second
// window of frame counts. Call once per emitted frame, after CheckFrame.
func (l *Limiter) MeasureActual() {
	now := time.Now()
	if l.windowStart.IsZero() {
		l.windowStart = now
		l.windowCount = 0
		return
	}
	l.windowCount++

	elapsed := now.Sub(l.windowStart)
	if elapsed >= time.Second {
		rate := float32(l.windowCount) / float32(elapsed.Seconds())
		l.Measured.Store(rate)
		l.windowStart = now
		l.windowCount = 0
	}
}
