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

package debugger

import (
	"fmt"

	"github.com/sixfour/c64core/hardware/memory/addresses"
	"github.com/sixfour/c64core/hardware/memory/bus"
)

// AddressInfo carries everything a host UI would want to display about a
// single address: its symbolic name, if any, and the value peeked there.
type AddressInfo struct {
	Address uint16
	Symbol  string
	Data    uint8
}

func (ai AddressInfo) String() string {
	if ai.Symbol != "" {
		return fmt.Sprintf("$%04x (%s) -> $%02x", ai.Address, ai.Symbol, ai.Data)
	}
	return fmt.Sprintf("$%04x -> $%02x", ai.Address, ai.Data)
}

// Mem is a symbol-aware, side-effect-free front end onto the bus, for use
// by a host debugger: Peek/Poke never trigger chip side effects (see
// bus.DebugBus), unlike the CPU's own Read/Write path.
type Mem struct {
	Bus bus.DebugBus
}

// Peek reads address without triggering chip side effects, annotating the
// result with the address's symbolic name, if any.
func (m Mem) Peek(address uint16) (AddressInfo, error) {
	v, err := m.Bus.Peek(address)
	if err != nil {
		return AddressInfo{}, err
	}
	sym, _ := addresses.Symbol(address)
	return AddressInfo{Address: address, Symbol: sym, Data: v}, nil
}

// Poke writes value to address without triggering chip side effects.
func (m Mem) Poke(address uint16, value uint8) (AddressInfo, error) {
	if err := m.Bus.Poke(address, value); err != nil {
		return AddressInfo{}, err
	}
	sym, _ := addresses.Symbol(address)
	return AddressInfo{Address: address, Symbol: sym, Data: value}, nil
}
