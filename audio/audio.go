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

// Package audio implements §4.9's drain port onto the SID register file. No
// oscillator, filter or envelope math is performed (SID synthesis is a
// stated Non-goal); Drain instead resamples the chip's master volume nibble
// ($D418 bits 0-3) to a flat DC-level signal, giving callers something to
// pull at a fixed sample rate without pretending to model the analog path.
package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/sixfour/c64core/hardware/sid"
)

// modeVolumeRegister is $D418 relative to the SID's $D400 base: the
// mode/filter select register, whose low nibble is the master volume.
const modeVolumeRegister = 0x18

// Port drains placeholder PCM from a SID's register file.
type Port struct {
	sid        *sid.SID
	sampleRate int
}

// NewPort creates a Port reading s at the given sample rate.
func NewPort(s *sid.SID, sampleRate int) *Port {
	return &Port{sid: s, sampleRate: sampleRate}
}

// SampleRate reports the configured sample rate.
func (p *Port) SampleRate() int {
	return p.sampleRate
}

// Drain returns n samples of 16-bit PCM at the configured sample rate, all
// at the amplitude implied by the SID's current master volume nibble.
func (p *Port) Drain(n int) []int16 {
	level := p.sid.Read(modeVolumeRegister) & 0x0f
	amplitude := int16(level) * (32767 / 15)

	samples := make([]int16, n)
	for i := range samples {
		samples[i] = amplitude
	}
	return samples
}

// WAVRecorder captures a drained stream to a fixture file, the way the
// teacher's own test suite uses go-audio/wav to write reference captures.
// It is test-only tooling, not part of the emulation's runtime path.
type WAVRecorder struct {
	enc *wav.Encoder
}

// NewWAVRecorder opens a mono 16-bit PCM WAV encoder over w.
func NewWAVRecorder(w io.WriteSeeker, sampleRate int) *WAVRecorder {
	return &WAVRecorder{enc: wav.NewEncoder(w, sampleRate, 16, 1, 1)}
}

// Write appends samples to the recording.
func (r *WAVRecorder) Write(samples []int16) error {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: r.enc.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	return r.enc.Write(buf)
}

// Close finalises the WAV file's headers.
func (r *WAVRecorder) Close() error {
	return r.enc.Close()
}
