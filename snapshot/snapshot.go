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

// Package snapshot implements the versioned binary container described in
// §6: a magic header followed by (major, minor, sub), then a sequence of
// named component blocks in a canonical order, each framed by a 4-byte
// length prefix and closed with a sentinel value so a truncated block is
// detectable on read. Cycle counters and the random seed travel as blocks
// like any other component (§3's "Snapshot save captures the full tuple").
//
// Component packages (cia, vic, sid, cpuport, memory, cpu) each implement
// encoding.BinaryMarshaler/BinaryUnmarshaler using the FieldWriter/
// FieldReader helpers below; emulation.Machine composes their blocks into
// one snapshot in Save/Restore.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/sixfour/c64core/emuerr"
)

// Magic identifies a byte stream as a snapshot of this format.
const Magic = "C64SNAP1"

const sentinel uint32 = 0xc64b10c2

// Version is the snapshot format's version triple. A reader rejects a
// mismatched major version as Invalid input (§9: migration across minor
// versions is out of scope; the writer always emits CurrentVersion).
type Version struct {
	Major, Minor, Sub uint8
}

// CurrentVersion is the version this package writes.
var CurrentVersion = Version{Major: 1, Minor: 0, Sub: 0}

// Block is one named, self-contained component snapshot.
type Block struct {
	Name string
	Data []byte
}

// Write emits the magic header, version, and blocks in the order given.
func Write(w io.Writer, blocks []Block) error {
	if _, err := io.WriteString(w, Magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, CurrentVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(blocks))); err != nil {
		return err
	}
	for _, b := range blocks {
		if err := writeBlock(w, b); err != nil {
			return err
		}
	}
	return nil
}

func writeBlock(w io.Writer, b Block) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(b.Name))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, b.Name); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(b.Data))); err != nil {
		return err
	}
	if _, err := w.Write(b.Data); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, sentinel)
}

// Read parses a snapshot written by Write, returning its blocks in order.
// A major-version mismatch, truncated block, or missing sentinel is
// reported as emuerr.ErrInvalidInput.
func Read(r io.Reader) ([]Block, error) {
	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, emuerr.InvalidInput("snapshot: could not read magic header: %v", err)
	}
	if string(magic) != Magic {
		return nil, emuerr.InvalidInput("snapshot: bad magic header %q", magic)
	}

	var v Version
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return nil, emuerr.InvalidInput("snapshot: could not read version: %v", err)
	}
	if v.Major != CurrentVersion.Major {
		return nil, emuerr.InvalidInput("snapshot: major version %d unsupported (want %d)", v.Major, CurrentVersion.Major)
	}

	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, emuerr.InvalidInput("snapshot: could not read block count: %v", err)
	}

	blocks := make([]Block, 0, count)
	for i := uint32(0); i < count; i++ {
		b, err := readBlock(r)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func readBlock(r io.Reader) (Block, error) {
	var nameLen uint32
	if err := binary.Read(r, binary.BigEndian, &nameLen); err != nil {
		return Block{}, emuerr.InvalidInput("snapshot: could not read block name length: %v", err)
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return Block{}, emuerr.InvalidInput("snapshot: could not read block name: %v", err)
	}

	var dataLen uint32
	if err := binary.Read(r, binary.BigEndian, &dataLen); err != nil {
		return Block{}, emuerr.InvalidInput("snapshot: could not read block %q length: %v", name, err)
	}
	data := make([]byte, dataLen)
	if _, err := io.ReadFull(r, data); err != nil {
		return Block{}, emuerr.InvalidInput("snapshot: truncated block %q: %v", name, err)
	}

	var sent uint32
	if err := binary.Read(r, binary.BigEndian, &sent); err != nil || sent != sentinel {
		return Block{}, emuerr.InvalidInput("snapshot: missing sentinel after block %q", name)
	}

	return Block{Name: string(name), Data: data}, nil
}

// FieldWriter sequentially encodes fixed-size fields into a byte buffer,
// sticking on the first error so call sites don't need to check one after
// every field.
type FieldWriter struct {
	buf *bytes.Buffer
	err error
}

// NewFieldWriter creates an empty FieldWriter.
func NewFieldWriter() *FieldWriter {
	return &FieldWriter{buf: new(bytes.Buffer)}
}

// Write encodes v in big-endian order, a no-op once a prior Write failed.
func (w *FieldWriter) Write(v interface{}) {
	if w.err != nil {
		return
	}
	w.err = binary.Write(w.buf, binary.BigEndian, v)
}

// Bytes returns the accumulated bytes and the first error encountered, if
// any.
func (w *FieldWriter) Bytes() ([]byte, error) {
	return w.buf.Bytes(), w.err
}

// FieldReader sequentially decodes fixed-size fields from a byte slice,
// mirroring FieldWriter's sticky-error behaviour.
type FieldReader struct {
	r   *bytes.Reader
	err error
}

// NewFieldReader wraps data for sequential decoding.
func NewFieldReader(data []byte) *FieldReader {
	return &FieldReader{r: bytes.NewReader(data)}
}

// Read decodes into v (which must be a pointer), a no-op once a prior Read
// failed.
func (r *FieldReader) Read(v interface{}) {
	if r.err != nil {
		return
	}
	r.err = binary.Read(r.r, binary.BigEndian, v)
}

// Err returns the first error encountered, if any.
func (r *FieldReader) Err() error {
	return r.err
}
