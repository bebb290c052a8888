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

// Package romloader accepts the opaque byte images the Bus needs (BASIC,
// CHAR, KERNAL, and the optional VC1541 drive ROM) and validates them by
// exact length and, optionally, a pinned SHA-1 hash — content-addressed
// identity in the same spirit as the teacher's cartridgeloader.Loader
// (Name/Filename plus a HashSHA1 checked at load time), simplified here to
// opaque byte slices since no archive container format is in scope (§1).
package romloader

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/sixfour/c64core/emuerr"
)

// ROMKind identifies which fixed-content image a byte slice is claimed to be.
type ROMKind int

// The four ROM images the core ever loads.
const (
	BASIC ROMKind = iota
	CHAR
	KERNAL
	VC1541
)

func (k ROMKind) String() string {
	switch k {
	case BASIC:
		return "BASIC"
	case CHAR:
		return "CHAR"
	case KERNAL:
		return "KERNAL"
	case VC1541:
		return "VC1541"
	default:
		return "unknown"
	}
}

// expectedLength is the exact byte length every image of this kind must
// have; there is no bank-switched or variable-length ROM in scope.
func (k ROMKind) expectedLength() int {
	switch k {
	case BASIC, KERNAL:
		return 8192
	case CHAR:
		return 4096
	case VC1541:
		return 16384
	default:
		return 0
	}
}

// Image is one loaded ROM: its kind, its bytes, and the SHA-1 the caller
// pinned for it (empty if the caller doesn't care to validate identity
// beyond length).
type Image struct {
	Kind     ROMKind
	Data     []byte
	WantSHA1 string
}

// Sum returns the lowercase hex SHA-1 of the image's bytes.
func (img Image) Sum() string {
	h := sha1.Sum(img.Data)
	return hex.EncodeToString(h[:])
}

// Verify checks the image's length against its kind, and its hash against
// WantSHA1 if one was pinned. Returns an emuerr.ErrInvalidInput on mismatch.
func Verify(img Image) error {
	want := img.Kind.expectedLength()
	if len(img.Data) != want {
		return emuerr.InvalidInput("%s ROM: expected %d bytes, got %d", img.Kind, want, len(img.Data))
	}
	if img.WantSHA1 != "" && img.Sum() != img.WantSHA1 {
		return emuerr.InvalidInput("%s ROM: SHA-1 mismatch (want %s, got %s)", img.Kind, img.WantSHA1, img.Sum())
	}
	return nil
}

// Set accumulates the images supplied so far and reports which are still
// outstanding.
type Set struct {
	images map[ROMKind][]byte
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{images: make(map[ROMKind][]byte)}
}

// Add validates img and, on success, records it in the set.
func (s *Set) Add(img Image) error {
	if err := Verify(img); err != nil {
		return err
	}
	s.images[img.Kind] = img.Data
	return nil
}

// Get returns the bytes loaded for kind, and whether they have been
// supplied yet.
func (s *Set) Get(kind ROMKind) ([]byte, bool) {
	d, ok := s.images[kind]
	return d, ok
}

// Missing reports which of BASIC/CHAR/KERNAL have not yet been supplied.
// VC1541 is optional (§4.7): its absence is never reported here.
func (s *Set) Missing() []ROMKind {
	var missing []ROMKind
	for _, k := range []ROMKind{BASIC, CHAR, KERNAL} {
		if _, ok := s.images[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// Ready reports whether BASIC, CHAR, and KERNAL have all been supplied;
// emulation.NewMachine refuses to build a machine until this is true.
func (s *Set) Ready() bool {
	return len(s.Missing()) == 0
}

func (s *Set) String() string {
	if s.Ready() {
		return "all required ROMs loaded"
	}
	return fmt.Sprintf("missing: %v", s.Missing())
}
