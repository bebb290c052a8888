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

import (
	"bytes"
	"encoding"
	"errors"
	"os"

	"github.com/sixfour/c64core/audio"
	"github.com/sixfour/c64core/debugger"
	"github.com/sixfour/c64core/diagnostics"
	"github.com/sixfour/c64core/emuerr"
	"github.com/sixfour/c64core/hardware/cia"
	"github.com/sixfour/c64core/hardware/clocks"
	"github.com/sixfour/c64core/hardware/cpu"
	"github.com/sixfour/c64core/hardware/cpuport"
	"github.com/sixfour/c64core/hardware/instance"
	"github.com/sixfour/c64core/hardware/memory"
	"github.com/sixfour/c64core/hardware/memory/bus"
	"github.com/sixfour/c64core/hardware/sid"
	"github.com/sixfour/c64core/hardware/television"
	"github.com/sixfour/c64core/hardware/vic"
	"github.com/sixfour/c64core/prefs"
	"github.com/sixfour/c64core/romloader"
	"github.com/sixfour/c64core/snapshot"
	"github.com/sixfour/c64core/stats"
)

// defaultSampleRate is the rate audio.Port.Drain resamples the SID register
// file's DC-level stub at.
const defaultSampleRate = 44100

// Joystick is one digital joystick's instantaneous state. A C64 joystick
// port carries five active-low lines; Machine inverts and packs them into
// the byte shape CIA ports expect.
type Joystick struct {
	Up, Down, Left, Right, Fire bool
}

func (j Joystick) bits() uint8 {
	var v uint8 = 0xff
	if j.Up {
		v &^= 1 << 0
	}
	if j.Down {
		v &^= 1 << 1
	}
	if j.Left {
		v &^= 1 << 2
	}
	if j.Right {
		v &^= 1 << 3
	}
	if j.Fire {
		v &^= 1 << 4
	}
	return v
}

// Machine is the Scheduler described in §4.5: the single-threaded owner of
// every chip, advancing them one master cycle at a time from inside
// cpu.CPU.ExecuteInstruction's cycleCallback, and the boundary the host
// talks to via Messages (outbound) and Commands (inbound), per §5/§6.
type Machine struct {
	instance *instance.Instance
	bus      *memory.Bus
	cpu      *cpu.CPU
	vic      *vic.VIC
	cia1     *cia.CIA
	cia2     *cia.CIA
	sid      *sid.SID
	port     *cpuport.Port
	tv       *television.Television

	breakpoints *debugger.Breakpoints

	// Messages carries outbound status events to the host; a full channel
	// drops the oldest pending message rather than blocking the run loop
	// (§5's back-pressure policy).
	Messages chan Message

	// Commands carries inbound suspend/resume/poke/breakpoint/snapshot/
	// restore/reset/step requests from the host.
	Commands chan Command

	state        State
	suspendCount int
	warp         bool

	keyMatrix [8]uint8 // keyMatrix[col] bit r set == key at (col, row r) is pressed
	joystick1 uint8    // active-low, as read back on CIA1 port A
	joystick2 uint8    // active-low, as read back on CIA1 port B

	frame        uint64
	autoSnapshot []byte

	audio     *audio.Port
	dashboard *stats.Dashboard
}

// NewMachine builds a Machine from a fully loaded romloader.Set and starts
// it at the reset vector. standard selects the CIA TOD tick rate (§4.4);
// VIC raster geometry is fixed at PAL regardless, matching vic.VIC's own
// scope (NTSC raster timing is not modeled there).
func NewMachine(roms *romloader.Set, standard prefs.TVStandard) (*Machine, error) {
	if !roms.Ready() {
		return nil, emuerr.InvalidInput("cannot start machine: %s", roms)
	}

	tv := television.NewTelevision()

	ins, err := instance.NewInstance(tv)
	if err != nil {
		return nil, err
	}
	ins.Prefs.TV = standard

	port := cpuport.NewPort()
	mb := memory.NewBus(port)

	if basic, ok := roms.Get(romloader.BASIC); ok {
		copy(mb.ROM.BASIC[:], basic)
	}
	if char, ok := roms.Get(romloader.CHAR); ok {
		copy(mb.ROM.CHAR[:], char)
	}
	if kernal, ok := roms.Get(romloader.KERNAL); ok {
		copy(mb.ROM.KERNAL[:], kernal)
	}

	vicChip := vic.New(mb, &mb.ColorRAM)
	cia1 := cia.New()
	cia2 := cia.New()
	sidChip := sid.New()

	mb.VIC = vicChip
	mb.SID = sidChip
	mb.CIA1 = cia1
	mb.CIA2 = cia2

	mc := cpu.NewCPU(ins, mb)

	m := &Machine{
		instance:    ins,
		bus:         mb,
		cpu:         mc,
		vic:         vicChip,
		cia1:        cia1,
		cia2:        cia2,
		sid:         sidChip,
		port:        port,
		tv:          tv,
		breakpoints: debugger.NewBreakpoints(),
		Messages:    make(chan Message, 64),
		Commands:    make(chan Command, 16),
		joystick1:   0xff,
		joystick2:   0xff,
		audio:       audio.NewPort(sidChip, defaultSampleRate),
	}

	cia1.PortARead = func(uint8) uint8 { return m.joystick1 }
	cia1.PortBRead = func(uint8) uint8 {
		rows := m.readKeyboardRows(m.cia1.Peek(cia.RegPRA))
		return rows & m.joystick2
	}

	m.applyTVStandard(standard)
	m.reset()

	return m, nil
}

func (m *Machine) applyTVStandard(standard prefs.TVStandard) {
	mhz := clocks.PAL
	cyclesPerLine := clocks.PAL_CyclesPerLine
	linesPerFrame := clocks.PAL_LinesPerFrame
	if standard == prefs.NTSC {
		mhz = clocks.NTSC
		cyclesPerLine = clocks.NTSC_CyclesPerLine
		linesPerFrame = clocks.NTSC_LinesPerFrame
	}

	divisor := int(mhz*1e6/10 + 0.5)
	m.cia1.SetTODTickDivisor(divisor)
	m.cia2.SetTODTickDivisor(divisor)

	m.tv.Limiter.SetRefreshRate(clocks.RefreshRateHz(mhz, cyclesPerLine, linesPerFrame))
}

func (m *Machine) reset() {
	m.cpu.Reset()
	_ = m.cpu.LoadPCIndirect(bus.Reset)
	m.state = Running
}

// readKeyboardRows returns the row byte CIA1 port B reads for the given
// (active-low) column select, verified against §8 scenario 5: holding
// (col=0, row=0) pressed and writing $FE to $DC00 reads back $FE on $DC01.
func (m *Machine) readKeyboardRows(colSelect uint8) uint8 {
	var pressedRows uint8
	for col := 0; col < 8; col++ {
		if colSelect&(1<<uint(col)) == 0 {
			pressedRows |= m.keyMatrix[col]
		}
	}
	return ^pressedRows
}

// SetKey updates one position in the 8x8 keyboard matrix.
func (m *Machine) SetKey(col, row int, pressed bool) {
	if col < 0 || col >= 8 || row < 0 || row >= 8 {
		return
	}
	if pressed {
		m.keyMatrix[col] |= 1 << uint(row)
	} else {
		m.keyMatrix[col] &^= 1 << uint(row)
	}
}

// SetJoystick updates the state of joystick port 1 or 2 (port must be 1 or
// 2; any other value is ignored).
func (m *Machine) SetJoystick(port int, j Joystick) {
	switch port {
	case 1:
		m.joystick1 = j.bits()
	case 2:
		m.joystick2 = j.bits()
	}
}

// SetWarp disables (true) or restores (false) wall-clock frame pacing.
func (m *Machine) SetWarp(warp bool) {
	m.warp = warp
}

// Audio returns the §4.9 drain port onto this Machine's SID register file.
func (m *Machine) Audio() *audio.Port {
	return m.audio
}

// EnableStats starts a stats.Dashboard serving statsview's charts at
// chartAddr and this package's JSON summary at summaryAddr, and begins
// feeding it frame/idle-skip counts from the run loop.
func (m *Machine) EnableStats(chartAddr, summaryAddr string) {
	m.dashboard = stats.New(chartAddr, summaryAddr)
	m.dashboard.Start()
}

// publish delivers msg, dropping the oldest queued message if the channel
// is full rather than blocking the run loop (§5).
func (m *Machine) publish(msg Message) {
	select {
	case m.Messages <- msg:
		return
	default:
	}
	select {
	case <-m.Messages:
	default:
	}
	select {
	case m.Messages <- msg:
	default:
	}
}

// tick is the cycleCallback passed to cpu.CPU.ExecuteInstruction: one call
// per master cycle, advancing VIC, then CIA1 (unless idle), then CIA2
// (unless idle), in that order (§4.5), before updating the lines the CPU
// reads on its next cycle.
func (m *Machine) tick() error {
	if err := m.vic.Tick(); err != nil {
		return err
	}

	irq1 := m.cia1.IRQOut()
	if !m.cia1.Idle() {
		irq1 = m.cia1.Tick()
	} else if m.dashboard != nil {
		m.dashboard.RecordIdleSkip()
	}

	nmi := m.cia2.IRQOut()
	if !m.cia2.Idle() {
		nmi = m.cia2.Tick()
	} else if m.dashboard != nil {
		m.dashboard.RecordIdleSkip()
	}

	m.vic.SetCIAPortA(m.cia2.Peek(cia.RegPRA))
	m.cpu.SetIRQLine(irq1 || m.vic.IRQ())
	// the NMI wire is active-low: CIA2 asserting its output pulls it low,
	// which is the falling edge the CPU latches.
	m.cpu.SetNMILine(!nmi)
	m.cpu.SetRDYLine(m.vic.RDY())

	m.tv.SetCoords(m.vic.Coords())

	if m.vic.FrameReady() {
		m.tv.PublishFrame(m.vic.Pixels())
		if !m.warp {
			m.tv.Limiter.CheckFrame()
		}
		m.tv.Limiter.MeasureActual()
		m.frame++
		if m.dashboard != nil {
			m.dashboard.RecordFrame()
		}
		m.publish(Message{Event: EventFrame, Data: m.frame})
		m.maybeAutoSnapshot()
	}

	return nil
}

func (m *Machine) maybeAutoSnapshot() {
	interval := int(m.instance.Prefs.AutoSnapshotIntervalFrames)
	if interval <= 0 || m.frame%uint64(interval) != 0 {
		return
	}
	if data, err := m.Save(); err == nil {
		m.autoSnapshot = data
	}
}

// LastAutoSnapshot returns the bytes of the most recent automatic snapshot,
// or nil if none has been taken yet.
func (m *Machine) LastAutoSnapshot() []byte {
	return m.autoSnapshot
}

// Run is the Scheduler's master loop. It blocks until the host closes
// Commands or an unrecoverable error occurs; the host runs it in its own
// goroutine and communicates exclusively via Messages/Commands.
func (m *Machine) Run() error {
	m.publish(Message{Event: EventReadyToRun})
	m.publish(Message{Event: EventRun})

	for {
		if m.suspendCount > 0 || m.state == Paused || m.state == Ending {
			cmd, ok := <-m.Commands
			if !ok {
				return nil
			}
			if stop, err := m.handleCommand(cmd); stop || err != nil {
				return err
			}
			continue
		}

		select {
		case cmd, ok := <-m.Commands:
			if !ok {
				return nil
			}
			if stop, err := m.handleCommand(cmd); stop || err != nil {
				return err
			}
			continue
		default:
		}

		if m.cpu.Killed {
			m.state = Paused
			m.publish(Message{Event: EventCPUJam})
			continue
		}

		if m.breakpoints.Check(m.cpu.PC.Value()) {
			m.state = Paused
			m.publish(Message{Event: EventBreakpoint, Data: m.cpu.PC.Value()})
			continue
		}

		if err := m.cpu.ExecuteInstruction(m.tick); err != nil {
			m.dumpDiagnostics(err)
			return err
		}
	}
}

// dumpDiagnostics writes a Graphviz .dot rendering of the Machine's struct
// graph alongside an emuerr.ErrUnreachable, the same state-graph-on-fatal
// idiom the teacher uses for its own debugging aids (§7).
func (m *Machine) dumpDiagnostics(err error) {
	if !errors.Is(err, emuerr.ErrUnreachable) {
		return
	}
	f, ferr := os.Create("diagnostics.dot")
	if ferr != nil {
		return
	}
	defer f.Close()
	diagnostics.Dump(f, m)
}

// handleCommand applies one inbound Command, returning stop=true if the run
// loop should return.
func (m *Machine) handleCommand(cmd Command) (stop bool, err error) {
	switch cmd.Kind {
	case CmdSuspend:
		m.suspendCount++
		m.publish(Message{Event: EventHalt})

	case CmdResume:
		if m.suspendCount > 0 {
			m.suspendCount--
		}
		if m.suspendCount == 0 && m.state == Paused {
			m.state = Running
		}
		if m.suspendCount == 0 {
			m.publish(Message{Event: EventRun})
		}

	case CmdPoke:
		if args, ok := cmd.Data.(PokeArgs); ok {
			_ = m.bus.Poke(args.Address, args.Value)
		}

	case CmdBreakpoint:
		if args, ok := cmd.Data.(BreakpointArgs); ok {
			m.breakpoints.Set(args.Address, args.Tag)
		}

	case CmdSnapshot:
		if reply, ok := cmd.Data.(chan<- []byte); ok {
			data, serr := m.Save()
			if serr != nil {
				data = nil
			}
			reply <- data
		}

	case CmdRestore:
		if data, ok := cmd.Data.([]byte); ok {
			err = m.Restore(data)
		}

	case CmdReset:
		m.reset()
		m.publish(Message{Event: EventReset})

	case CmdStep:
		if m.breakpoints.Check(m.cpu.PC.Value()) {
			m.publish(Message{Event: EventBreakpoint, Data: m.cpu.PC.Value()})
			break
		}
		err = m.cpu.ExecuteInstruction(m.tick)
	}

	return false, err
}

// Save serialises every chip's state into the §6 snapshot format. Only
// called between instructions (from the run loop's command handling), so
// cpu.CPU's in-flight decode state never needs capturing.
func (m *Machine) Save() ([]byte, error) {
	type named struct {
		name string
		m    encoding.BinaryMarshaler
	}
	components := []named{
		{"bus", m.bus},
		{"cpu", m.cpu},
		{"vic", m.vic},
		{"cia1", m.cia1},
		{"cia2", m.cia2},
		{"sid", m.sid},
	}

	blocks := make([]snapshot.Block, 0, len(components))
	for _, c := range components {
		data, err := c.m.MarshalBinary()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, snapshot.Block{Name: c.name, Data: data})
	}

	var buf bytes.Buffer
	if err := snapshot.Write(&buf, blocks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Restore reconstructs chip state from data written by Save. CIA1's
// PortARead/PortBRead closures and the VIC's bus/colorRAM references are
// fixed at construction time and are not disturbed, since UnmarshalBinary
// only touches the fields listed in each component's MarshalBinary.
func (m *Machine) Restore(data []byte) error {
	blocks, err := snapshot.Read(bytes.NewReader(data))
	if err != nil {
		return err
	}

	byName := make(map[string][]byte, len(blocks))
	for _, b := range blocks {
		byName[b.Name] = b.Data
	}

	apply := func(name string, u encoding.BinaryUnmarshaler) error {
		data, ok := byName[name]
		if !ok {
			return emuerr.InvalidInput("snapshot: missing block %q", name)
		}
		return u.UnmarshalBinary(data)
	}

	if err := apply("bus", m.bus); err != nil {
		return err
	}
	if err := apply("cpu", m.cpu); err != nil {
		return err
	}
	if err := apply("vic", m.vic); err != nil {
		return err
	}
	if err := apply("cia1", m.cia1); err != nil {
		return err
	}
	if err := apply("cia2", m.cia2); err != nil {
		return err
	}
	if err := apply("sid", m.sid); err != nil {
		return err
	}

	return nil
}
