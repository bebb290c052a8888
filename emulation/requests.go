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

package emulation

import "github.com/sixfour/c64core/debugger"

// CommandKind identifies the shape of Command.Data, the way the teacher's
// FeatureReq/FeatureReqData pair identified a GUI feature request's payload
// type. Here the consumer is the Scheduler's own command channel rather than
// a GUI, per §5's inbound command channel.
type CommandKind string

// The commands a host may send on a Machine's Commands channel. Argument
// must be of the type noted against each constant.
const (
	CmdSuspend   CommandKind = "suspend"   // no argument
	CmdResume    CommandKind = "resume"    // no argument
	CmdPoke      CommandKind = "poke"      // PokeArgs
	CmdBreakpoint CommandKind = "breakpoint" // BreakpointArgs
	CmdSnapshot  CommandKind = "snapshot"  // chan<- []byte (reply)
	CmdRestore   CommandKind = "restore"   // []byte
	CmdReset     CommandKind = "reset"     // no argument
	CmdStep      CommandKind = "step"      // no argument
)

// Command is one inbound request on a Machine's Commands channel.
type Command struct {
	Kind CommandKind
	Data interface{}
}

// PokeArgs is the argument type for CmdPoke.
type PokeArgs struct {
	Address uint16
	Value   uint8
}

// BreakpointArgs is the argument type for CmdBreakpoint.
type BreakpointArgs struct {
	Address uint16
	Tag     debugger.Tag
}
