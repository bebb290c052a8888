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

// Package prefs implements a small disk-backed key/value settings store, and
// the typed value wrappers (Bool, Int, Float, String, Generic) that are
// registered against it.
package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// WarningBoilerPlate is written as the first line of every saved preferences
// file.
const WarningBoilerPlate = "// this file is written and read by the emulator. hand-editing is possible but not advised."

// Value is the type used to pass values into and out of the typed
// preference wrappers below.
type Value interface{}

// entry is satisfied by every typed wrapper (Bool, Int, Float, String,
// Generic) and is what Disk requires in order to load/save a registered
// preference.
type entry interface {
	Set(v Value) error
	String() string
}

// Bool is a preference value that holds a boolean.
type Bool bool

// Set accepts a bool directly, or a string which is true if and only if it
// case-insensitively equals "true" (any other string, without error, means
// false — preferences files should never fail to load because of a stray
// hand-edit).
func (b *Bool) Set(v Value) error {
	switch o := v.(type) {
	case bool:
		*b = Bool(o)
	case Bool:
		*b = o
	case string:
		*b = Bool(strings.EqualFold(o, "true"))
	default:
		*b = false
	}
	return nil
}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Int is a preference value that holds an integer.
type Int int

// Set accepts an int directly, or a string parseable as an integer.
func (i *Int) Set(v Value) error {
	switch o := v.(type) {
	case int:
		*i = Int(o)
	case string:
		n, err := strconv.Atoi(o)
		if err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		*i = Int(n)
	default:
		return fmt.Errorf("prefs: unsupported value type for Int: %T", v)
	}
	return nil
}

func (i Int) String() string {
	return strconv.Itoa(int(i))
}

// Float is a preference value that holds a float64.
type Float float64

// Set accepts a float64 directly, or a string parseable as a float.
func (f *Float) Set(v Value) error {
	switch o := v.(type) {
	case float64:
		*f = Float(o)
	case string:
		n, err := strconv.ParseFloat(o, 64)
		if err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		*f = Float(n)
	default:
		return fmt.Errorf("prefs: unsupported value type for Float: %T", v)
	}
	return nil
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// String is a preference value that holds a string, optionally truncated to
// a maximum length.
type String struct {
	v      string
	maxLen int
}

// Set accepts any value and stores its string representation, truncated to
// the configured maximum length if one has been set.
func (s *String) Set(v Value) error {
	str := fmt.Sprint(v)
	if s.maxLen > 0 && len(str) > s.maxLen {
		str = str[:s.maxLen]
	}
	s.v = str
	return nil
}

// SetMaxLen sets the maximum length of the string, cropping the existing
// value immediately if necessary. A value of zero removes the limit (without
// restoring any previously cropped content).
func (s *String) SetMaxLen(n int) {
	s.maxLen = n
	if n > 0 && len(s.v) > n {
		s.v = s.v[:n]
	}
}

func (s *String) String() string {
	return s.v
}

// Generic wraps an arbitrary get/set pair of functions as a preference
// value, for settings whose on-disk representation doesn't fit one of the
// concrete types above.
type Generic struct {
	set func(Value) error
	get func() Value
}

// NewGeneric creates a Generic preference value from a set and get function.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{set: set, get: get}
}

func (g *Generic) Set(v Value) error {
	return g.set(v)
}

func (g *Generic) String() string {
	return fmt.Sprint(g.get())
}

// Disk is a collection of named preference values backed by a single file
// on disk. Unknown keys already present in the file are preserved across
// Save, so that multiple independent Disk instances (e.g. for unrelated
// subsystems) can share one file without clobbering each other.
type Disk struct {
	filename string
	order    []string
	values   map[string]entry
	raw      map[string]string
}

// NewDisk creates a Disk backed by filename, loading any existing content.
// It is not an error for the file not to exist yet.
func NewDisk(filename string) (*Disk, error) {
	d := &Disk{
		filename: filename,
		values:   make(map[string]entry),
		raw:      make(map[string]string),
	}
	if err := d.readRaw(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return d, nil
}

func (d *Disk) readRaw() error {
	f, err := os.Open(d.filename)
	if err != nil {
		return err
	}
	defer f.Close()

	raw := make(map[string]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		parts := strings.SplitN(line, " :: ", 2)
		if len(parts) != 2 {
			continue
		}
		raw[parts[0]] = parts[1]
	}
	if err := sc.Err(); err != nil {
		return err
	}
	d.raw = raw
	return nil
}

// Add registers a named preference value. If the file already held a value
// for name, it is applied immediately.
func (d *Disk) Add(name string, v entry) error {
	d.values[name] = v
	d.order = append(d.order, name)
	if raw, ok := d.raw[name]; ok {
		return v.Set(raw)
	}
	return nil
}

// Save writes every registered value, merged with any unregistered values
// already present on disk, sorted by key.
func (d *Disk) Save() error {
	for name, v := range d.values {
		d.raw[name] = v.String()
	}

	keys := make([]string, 0, len(d.raw))
	for k := range d.raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	buf.WriteString(WarningBoilerPlate)
	buf.WriteString("\n")
	for _, k := range keys {
		fmt.Fprintf(&buf, "%s :: %s\n", k, d.raw[k])
	}

	return os.WriteFile(d.filename, []byte(buf.String()), 0o600)
}

// Load re-reads the file and applies the values of any keys that match a
// registered preference.
func (d *Disk) Load() error {
	if err := d.readRaw(); err != nil {
		return err
	}
	for name, v := range d.values {
		if raw, ok := d.raw[name]; ok {
			if err := v.Set(raw); err != nil {
				return err
			}
		}
	}
	return nil
}
