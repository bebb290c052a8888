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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// commandLineGroup is one "--prefs" style override string, normalised
// (trimmed, sorted by key, invalid "key::value" pairs dropped) and indexed
// for lookup.
type commandLineGroup struct {
	raw string
	kv  map[string]string
}

func parseCommandLineGroup(s string) commandLineGroup {
	kv := make(map[string]string)
	for _, p := range strings.Split(s, ";") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts := strings.SplitN(p, "::", 2)
		if len(parts) != 2 {
			continue
		}
		k := strings.TrimSpace(parts[0])
		v := strings.TrimSpace(parts[1])
		if k == "" {
			continue
		}
		kv[k] = v
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s::%s", k, kv[k]))
	}

	return commandLineGroup{raw: strings.Join(pairs, "; "), kv: kv}
}

var commandLineStack []commandLineGroup

// PushCommandLineStack parses and normalises a "--prefs" style override
// string ("key::value; key::value; ...") and pushes it onto the stack of
// active override groups.
func PushCommandLineStack(s string) {
	commandLineStack = append(commandLineStack, parseCommandLineGroup(s))
}

// PopCommandLineStack removes and returns the normalised form of the most
// recently pushed override group, or the empty string if the stack is
// empty.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}
	g := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return g.raw
}

// GetCommandLinePref looks up key in the override groups currently on the
// stack, most recently pushed first.
func GetCommandLinePref(key string) (bool, string) {
	for i := len(commandLineStack) - 1; i >= 0; i-- {
		if v, ok := commandLineStack[i].kv[key]; ok {
			return true, v
		}
	}
	return false, ""
}
