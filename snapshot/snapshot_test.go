package snapshot_test

import (
	"bytes"
	"testing"

	"github.com/sixfour/c64core/emuerr"
	"github.com/sixfour/c64core/snapshot"
	"github.com/sixfour/c64core/test"
)

func TestWriteReadRoundTrip(t *testing.T) {
	blocks := []snapshot.Block{
		{Name: "cpu", Data: []byte{1, 2, 3}},
		{Name: "bus", Data: []byte{}},
		{Name: "vic", Data: []byte{0xff, 0x00, 0xaa}},
	}

	var buf bytes.Buffer
	test.ExpectSuccess(t, snapshot.Write(&buf, blocks))

	got, err := snapshot.Read(&buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(got), len(blocks))
	for i, b := range blocks {
		test.ExpectEquality(t, got[i].Name, b.Name)
		test.Equate(t, bytes.Equal(got[i].Data, b.Data), true)
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, err := snapshot.Read(bytes.NewReader([]byte("NOTASNAP")))
	test.ExpectSuccess(t, emuerr.Is(err, emuerr.ErrInvalidInput))
}

func TestReadRejectsMajorVersionMismatch(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(snapshot.Magic)
	buf.Write([]byte{99, 0, 0}) // major, minor, sub
	buf.Write([]byte{0, 0, 0, 0}) // block count

	_, err := snapshot.Read(&buf)
	test.ExpectSuccess(t, emuerr.Is(err, emuerr.ErrInvalidInput))
}

func TestReadRejectsTruncatedBlock(t *testing.T) {
	var buf bytes.Buffer
	test.ExpectSuccess(t, snapshot.Write(&buf, []snapshot.Block{{Name: "cpu", Data: []byte{1, 2, 3, 4}}}))

	truncated := buf.Bytes()[:buf.Len()-2]
	_, err := snapshot.Read(bytes.NewReader(truncated))
	test.ExpectSuccess(t, emuerr.Is(err, emuerr.ErrInvalidInput))
}

func TestFieldWriterReaderRoundTrip(t *testing.T) {
	w := snapshot.NewFieldWriter()
	w.Write(uint8(0x42))
	w.Write(uint16(0xbeef))
	w.Write(int32(-7))
	w.Write(true)

	data, err := w.Bytes()
	test.ExpectSuccess(t, err)

	r := snapshot.NewFieldReader(data)
	var a uint8
	var b uint16
	var c int32
	var d bool
	r.Read(&a)
	r.Read(&b)
	r.Read(&c)
	r.Read(&d)
	test.ExpectSuccess(t, r.Err())

	test.ExpectEquality(t, a, uint8(0x42))
	test.ExpectEquality(t, b, uint16(0xbeef))
	test.ExpectEquality(t, c, int32(-7))
	test.ExpectEquality(t, d, true)
}

func TestFieldReaderStaysStuckAfterFirstError(t *testing.T) {
	r := snapshot.NewFieldReader([]byte{0x01})
	var a, b uint32
	r.Read(&a) // not enough bytes for a uint32
	r.Read(&b) // must be a no-op, not a panic
	test.ExpectFailure(t, r.Err())
}
