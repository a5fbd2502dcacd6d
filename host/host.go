// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host allows you to create a "host" that emulates a system with a
// 2A03 CPU, 64K of memory, a built-in debugger, and other useful tools.
//
// Within the host it is possible to load machine code into memory, debug
// and step through machine code, trace execution, measure the number of CPU
// cycles elapsed, set address and data breakpoints, raise interrupts, dump
// and disassemble the contents of memory, manipulate CPU registers and
// memory, evaluate arbitrary expressions, and drive the system from Lua
// scripts.
package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/beevik/cmd"
	"github.com/pkg/errors"

	"github.com/beevik/go2a03/cpu"
	"github.com/beevik/go2a03/disasm"
)

var errQuit = errors.New("quit requested")

type displayFlags uint8

const (
	displayRegisters displayFlags = 1 << iota
	displayCycles
	displayAnnotations

	displayAll = displayRegisters | displayCycles | displayAnnotations
)

type state byte

const (
	stateProcessingCommands state = iota
	stateRunning
	stateBreakpoint
	stateStepOverBreakpoint
	stateFault
	stateInterrupted
)

// A selection is a command looked up in the command tree, together with
// the arguments that followed it on the command line.
type selection struct {
	Command *cmd.Command
	Args    []string
}

// A Host represents a fully emulated 2A03 system, 64K of memory, a
// built-in debugger, and other useful tools.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	mem         *cpu.FlatMemory
	cpu         *cpu.CPU
	debugger    *cpu.Debugger
	lastCmd     *selection
	state       state
	exprParser  *exprParser
	settings    *settings
	annotations map[uint16]string
	lastErr     error // last error returned by the CPU
	running     atomic.Bool
	breakReq    atomic.Bool
}

// New creates a new host environment for a CPU of the requested
// architecture. Output goes to stdout until RunCommands supplies a writer.
func New(arch cpu.Architecture) *Host {
	h := &Host{
		output:      bufio.NewWriter(os.Stdout),
		state:       stateProcessingCommands,
		exprParser:  newExprParser(),
		settings:    newSettings(),
		annotations: make(map[uint16]string),
	}

	// Create the emulated CPU and memory.
	h.mem = cpu.NewFlatMemory()
	h.cpu = cpu.NewCPU(arch)

	// Create a CPU debugger and attach it to the CPU.
	h.debugger = cpu.NewDebugger(newDebugHandler(h))
	h.cpu.AttachDebugger(h.debugger)

	h.onSettingsUpdate()
	return h
}

// CPU returns the host's emulated CPU.
func (h *Host) CPU() *cpu.CPU {
	return h.cpu
}

// Memory returns the host's 64K memory bus.
func (h *Host) Memory() *cpu.FlatMemory {
	return h.mem
}

// AllowUnstable selects whether the CPU executes the unstable unofficial
// opcodes.
func (h *Host) AllowUnstable(allow bool) {
	h.settings.Unstable = allow
	h.onSettingsUpdate()
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the the next command to be entered. It returns true
// if a quit command was processed.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) (quit bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	if interactive {
		h.println()
	}

	h.displayPC()

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		if err := h.execLine(line, true); err == errQuit {
			return true
		}
	}

	h.flush()
	return false
}

// Execute a single command line. An empty line repeats the previous
// command when repeat is set.
func (h *Host) execLine(line string, repeat bool) error {
	var c selection
	switch {
	case strings.TrimSpace(line) != "":
		n, args, err := cmds.Lookup(line)
		switch {
		case errors.Is(err, cmd.ErrNotFound):
			h.println("Command not found.")
			return nil
		case errors.Is(err, cmd.ErrAmbiguous):
			h.println("Command is ambiguous.")
			return nil
		case err != nil:
			h.printf("ERROR: %v.\n", err)
			return nil
		}

		switch n := n.(type) {
		case *cmd.Tree:
			n.DisplayHelp(h.output)
			h.flush()
			return nil
		case *cmd.Command:
			c = selection{Command: n, Args: args}
		}

	case repeat && h.lastCmd != nil:
		c = *h.lastCmd
	}

	if c.Command == nil {
		return nil
	}
	h.lastCmd = &c

	handler := c.Command.Data.(func(*Host, selection) error)
	return handler(h, c)
}

// Break asks a running CPU to stop after its current instruction. It may
// be called from another goroutine, such as a signal handler. It does
// nothing while the host is waiting for commands.
func (h *Host) Break() {
	if h.running.Load() {
		h.breakReq.Store(true)
	}
}

func (h *Host) startRunning() {
	h.breakReq.Store(false)
	h.state = stateRunning
	h.running.Store(true)
}

func (h *Host) stopRunning() {
	h.running.Store(false)
	h.state = stateProcessingCommands
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
	}
}

func (h *Host) displayPC() {
	if h.interactive {
		d, _ := h.disassemble(h.cpu.Reg.PC, displayAll)
		h.println(d)
	}
}

func (h *Host) cmdHelp(c selection) error {
	if err := cmds.GetHelp(h.output, c.Args); err != nil {
		h.printf("%v.\n", err)
	}
	h.flush()
	return nil
}

func (h *Host) cmdAnnotate(c selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	annotation := strings.Join(c.Args[1:], " ")
	if annotation == "" {
		delete(h.annotations, addr)
		h.printf("Annotation removed at $%04X.\n", addr)
	} else {
		h.annotations[addr] = annotation
		h.printf("Annotation added at $%04X.\n", addr)
	}
	return nil
}

func (h *Host) cmdBreakpointList(c selection) error {
	h.println("Addr  Enabled")
	h.println("----- -------")
	for _, b := range h.debugger.GetBreakpoints() {
		h.printf("$%04X %v\n", b.Address, !b.Disabled)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c selection) error {
	addr, ok := h.addrArg(c)
	if !ok {
		return nil
	}

	h.debugger.AddBreakpoint(addr)
	h.printf("Breakpoint added at $%04X.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointRemove(c selection) error {
	addr, ok := h.addrArg(c)
	if !ok {
		return nil
	}

	if h.debugger.GetBreakpoint(addr) == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveBreakpoint(addr)
	h.printf("Breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointEnable(c selection) error {
	return h.enableBreakpoint(c, true)
}

func (h *Host) cmdBreakpointDisable(c selection) error {
	return h.enableBreakpoint(c, false)
}

func (h *Host) enableBreakpoint(c selection, enable bool) error {
	addr, ok := h.addrArg(c)
	if !ok {
		return nil
	}

	b := h.debugger.GetBreakpoint(addr)
	if b == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = !enable
	h.printf("Breakpoint at $%04X %s.\n", addr, enabledString(enable))
	return nil
}

func (h *Host) cmdDataBreakpointList(c selection) error {
	h.println("Addr  Enabled  Value")
	h.println("----- -------  -----")
	for _, b := range h.debugger.GetDataBreakpoints() {
		if b.Conditional {
			h.printf("$%04X %-5v    $%02X\n", b.Address, !b.Disabled, b.Value)
		} else {
			h.printf("$%04X %-5v    <none>\n", b.Address, !b.Disabled)
		}
	}
	return nil
}

func (h *Host) cmdDataBreakpointAdd(c selection) error {
	addr, ok := h.addrArg(c)
	if !ok {
		return nil
	}

	if len(c.Args) > 1 {
		value, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.debugger.AddConditionalDataBreakpoint(addr, byte(value))
		h.printf("Conditional data breakpoint added at $%04X for value $%02X.\n", addr, byte(value))
	} else {
		h.debugger.AddDataBreakpoint(addr)
		h.printf("Data breakpoint added at $%04X.\n", addr)
	}
	return nil
}

func (h *Host) cmdDataBreakpointRemove(c selection) error {
	addr, ok := h.addrArg(c)
	if !ok {
		return nil
	}

	if h.debugger.GetDataBreakpoint(addr) == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveDataBreakpoint(addr)
	h.printf("Data breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdDataBreakpointEnable(c selection) error {
	return h.enableDataBreakpoint(c, true)
}

func (h *Host) cmdDataBreakpointDisable(c selection) error {
	return h.enableDataBreakpoint(c, false)
}

func (h *Host) enableDataBreakpoint(c selection, enable bool) error {
	addr, ok := h.addrArg(c)
	if !ok {
		return nil
	}

	b := h.debugger.GetDataBreakpoint(addr)
	if b == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = !enable
	h.printf("Data breakpoint at $%04X %s.\n", addr, enabledString(enable))
	return nil
}

func (h *Host) cmdDisassemble(c selection) error {
	var addr uint16
	switch {
	case len(c.Args) == 0 || c.Args[0] == "$":
		addr = h.settings.NextDisasmAddr
		if addr == 0 {
			addr = h.cpu.Reg.PC
		}
	default:
		a, err := h.parseAddr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	lines := h.settings.DisasmLines
	if len(c.Args) > 1 {
		n, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		lines = int(n)
	}

	for range lines {
		d, next := h.disassemble(addr, displayAnnotations)
		h.println(d)
		addr = next
	}

	h.settings.NextDisasmAddr = addr
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", lines)}
	return nil
}

func (h *Host) cmdEvaluate(c selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	v, err := h.parseExpr(strings.Join(c.Args, " "))
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("$%04X (%d)\n", uint16(v), v)
	return nil
}

func (h *Host) cmdExecute(c selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	file, err := os.Open(c.Args[0])
	if err != nil {
		h.printf("%v\n", errors.Wrapf(err, "execute '%s'", filepath.Base(c.Args[0])))
		return nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := h.execLine(scanner.Text(), false); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) cmdInterruptNMI(c selection) error {
	h.cpu.NMI()
	h.println("NMI pending.")
	return nil
}

func (h *Host) cmdInterruptIRQ(c selection) error {
	h.cpu.IRQ()
	h.println("IRQ pending.")
	return nil
}

func (h *Host) cmdLoad(c selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseAddr(c.Args[1])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if err := h.Load(c.Args[0], addr); err != nil {
		h.printf("%v\n", err)
	}
	return nil
}

// Load copies the contents of a raw binary file into memory at addr and
// sets the program counter to addr.
func (h *Host) Load(filename string, addr uint16) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to load '%s'", filepath.Base(filename))
	}
	if len(b) == 0 {
		return errors.Errorf("'%s' is empty", filepath.Base(filename))
	}
	if len(b) > 0x10000 {
		return errors.Errorf("'%s' is larger than 64K", filepath.Base(filename))
	}

	h.mem.StoreBytes(addr, b)
	h.cpu.SetPC(addr)
	h.settings.NextDisasmAddr = addr

	h.printf("Loaded '%s' to $%04X..$%04X.\n", filepath.Base(filename), addr, addr+uint16(len(b)-1))
	return nil
}

func (h *Host) cmdMemoryDump(c selection) error {
	var addr uint16
	switch {
	case len(c.Args) == 0 || c.Args[0] == "$":
		addr = h.settings.NextMemDumpAddr
	default:
		a, err := h.parseAddr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	bytes := h.settings.MemDumpBytes
	if len(c.Args) >= 2 {
		n, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		bytes = int(n)
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + uint16(bytes)
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", bytes)}
	return nil
}

func (h *Host) cmdMemorySet(c selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := make([]byte, 0, len(c.Args)-1)
	for _, arg := range c.Args[1:] {
		v, err := h.parseExpr(arg)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		if v < -128 || v > 0xff {
			h.printf("Value '%s' does not fit in a byte.\n", arg)
			return nil
		}
		b = append(b, byte(v))
	}

	h.mem.StoreBytes(addr, b)
	h.printf("Stored %d byte(s) at $%04X.\n", len(b), addr)
	return nil
}

func (h *Host) cmdMemoryCopy(c selection) error {
	if len(c.Args) < 3 {
		h.displayUsage(c.Command)
		return nil
	}

	var addr [3]uint16
	for i := range addr {
		a, err := h.parseAddr(c.Args[i])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr[i] = a
	}

	dst, begin, end := addr[0], addr[1], addr[2]
	if end < begin {
		h.println("Source end address precedes begin address.")
		return nil
	}

	b := make([]byte, int(end-begin)+1)
	h.mem.LoadBytes(begin, b)
	h.mem.StoreBytes(dst, b)
	h.printf("Copied $%04X..$%04X to $%04X.\n", begin, end, dst)
	return nil
}

func (h *Host) cmdQuit(c selection) error {
	return errQuit
}

func (h *Host) cmdRegisters(c selection) error {
	d, _ := h.disassemble(h.cpu.Reg.PC, displayAll)
	h.println(d)
	return nil
}

func (h *Host) cmdReset(c selection) error {
	h.cpu.Reset(h.mem)
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	h.printf("CPU reset. PC=$%04X.\n", h.cpu.Reg.PC)
	return nil
}

func (h *Host) cmdRun(c selection) error {
	if len(c.Args) > 0 {
		pc, err := h.parseAddr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.SetPC(pc)
	}

	h.printf("Running from $%04X. Press ctrl-C to break.\n", h.cpu.Reg.PC)
	h.run(0)

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

func (h *Host) cmdScript(c selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	// Commands run by the script replace the last command; restore it so
	// an empty line repeats the script.
	saved := h.lastCmd
	defer func() { h.lastCmd = saved }()

	if err := h.RunScript(c.Args[0]); err != nil {
		h.printf("%v\n", err)
	}
	return nil
}

func (h *Host) cmdSet(c selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()
		return nil
	case 1:
		h.displayUsage(c.Command)
		return nil
	}

	key, value := c.Args[0], strings.Join(c.Args[1:], " ")

	if ok, err := h.setRegister(key, value); ok {
		if err != nil {
			h.printf("%v\n", err)
		}
		return nil
	}

	if err := h.settings.Set(key, value, h.parseExpr); err != nil {
		h.printf("%v\n", err)
		return nil
	}

	name, _ := h.settings.Lookup(key)
	h.printf("Setting %s updated.\n", name)
	h.onSettingsUpdate()
	return nil
}

// Set a register or status flag named by key. It returns false if key
// names neither.
func (h *Host) setRegister(key, value string) (bool, error) {
	key = strings.ToLower(key)

	if f, ok := flagByName[key]; ok {
		b, err := stringToBool(value)
		if err != nil {
			return true, err
		}
		h.cpu.Reg.P.Set(f, b)
		h.printf("Flag %s set to %v.\n", strings.ToUpper(key), b)
		return true, nil
	}

	reg := &h.cpu.Reg
	var r8 *byte
	switch key {
	case "a":
		r8 = &reg.A
	case "x":
		r8 = &reg.X
	case "y":
		r8 = &reg.Y
	case "sp":
		r8 = &reg.SP
	case "p":
	case "pc", ".":
	default:
		return false, nil
	}

	v, err := h.parseExpr(value)
	if err != nil {
		return true, err
	}

	switch {
	case r8 != nil:
		*r8 = byte(v)
		h.printf("Register %s set to $%02X.\n", strings.ToUpper(key), byte(v))
	case key == "p":
		reg.P.SetByte(byte(v))
		h.printf("Register P set to $%02X.\n", reg.P.Byte())
	default:
		reg.PC = uint16(v)
		h.settings.NextDisasmAddr = reg.PC
		h.printf("Register PC set to $%04X.\n", reg.PC)
	}
	return true, nil
}

var flagByName = map[string]cpu.Status{
	"n":                cpu.Negative,
	"negative":         cpu.Negative,
	"v":                cpu.Overflow,
	"overflow":         cpu.Overflow,
	"d":                cpu.Decimal,
	"decimal":          cpu.Decimal,
	"i":                cpu.InterruptDisable,
	"interruptdisable": cpu.InterruptDisable,
	"z":                cpu.Zero,
	"zero":             cpu.Zero,
	"c":                cpu.Carry,
	"carry":            cpu.Carry,
}

func (h *Host) cmdStepIn(c selection) error {
	return h.stepCount(c, func(h *Host) { h.step() })
}

func (h *Host) cmdStepOver(c selection) error {
	return h.stepCount(c, (*Host).stepOver)
}

func (h *Host) stepCount(c selection, fn func(h *Host)) error {
	count := 1
	if len(c.Args) > 0 {
		n, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		count = int(n)
	}

	h.startRunning()
	for i := count - 1; i >= 0 && h.state == stateRunning; i-- {
		fn(h)
		switch {
		case i == h.settings.MaxStepLines:
			h.println("...")
		case i < h.settings.MaxStepLines:
			h.displayPC()
		}
	}
	h.stopRunning()

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

// Step the CPU by one instruction, reporting any CPU error and stopping
// the current run loop when one occurs.
func (h *Host) step() uint32 {
	if h.settings.Trace {
		h.println(disasm.Trace(h.cpu, h.mem))
	}

	cycles, err := h.cpu.Step(h.mem)
	if err != nil {
		h.state = stateFault
		h.lastErr = err
		h.reportCPUError(err)
	}

	if h.breakReq.Swap(false) && h.state == stateRunning {
		h.state = stateInterrupted
		h.printf("Interrupted at $%04X.\n", h.cpu.Reg.PC)
		h.displayPC()
	}
	return cycles
}

func (h *Host) reportCPUError(err error) {
	var (
		unimpl *cpu.UnimplementedError
		halt   *cpu.HaltError
	)
	switch {
	case errors.As(err, &unimpl):
		h.printf("Unimplemented opcode $%02X (%s) at $%04X. Set PC to skip it, or set Unstable true.\n",
			unimpl.Opcode, unimpl.Name, unimpl.Addr)
	case errors.As(err, &halt):
		// The KIL opcode itself.
		h.printf("%v.\n", halt)
	case errors.Is(err, cpu.ErrHalted):
		// Any step after the KIL.
		h.println("CPU is halted. Use reset to restart it.")
	default:
		h.printf("%v.\n", err)
	}
}

// Run the CPU until the state leaves stateRunning. A positive limit caps
// the number of instructions executed. It returns the number of
// instructions stepped.
func (h *Host) run(limit int) int {
	n := 0
	h.startRunning()
	for h.state == stateRunning && (limit <= 0 || n < limit) {
		h.step()
		n++
	}
	h.stopRunning()
	return n
}

func (h *Host) stepOver() {
	cpu := h.cpu

	// JSR instructions need to be handled specially.
	inst := cpu.GetInstruction(h.mem, cpu.Reg.PC)
	if inst.Name != "JSR" {
		h.step()
		return
	}

	// Place a step-over breakpoint on the instruction following the JSR.
	// Either modify an already existing breakpoint on that instruction, or
	// create a temporary one.
	next := cpu.NextAddr(h.mem, cpu.Reg.PC)
	tmpBreakpointCreated := false
	b := h.debugger.GetBreakpoint(next)
	if b == nil {
		b = h.debugger.AddBreakpoint(next)
		tmpBreakpointCreated = true
	}
	b.StepOver = true

	// Run until interrupted.
	for h.state == stateRunning {
		h.step()
	}
	b.StepOver = false

	// If we were interrupted by the temporary step-over breakpoint,
	// then continue as normal.
	if h.state == stateStepOverBreakpoint {
		h.state = stateRunning
	}

	if tmpBreakpointCreated {
		h.debugger.RemoveBreakpoint(next)
	}
}

func (h *Host) onSettingsUpdate() {
	h.exprParser.hexMode = h.settings.HexMode
	h.cpu.AllowUnstable(h.settings.Unstable)
}

func (h *Host) parseExpr(expr string) (int64, error) {
	return h.exprParser.Parse(expr, h)
}

func (h *Host) parseAddr(expr string) (uint16, error) {
	v, err := h.parseExpr(expr)
	if err != nil {
		return 0, err
	}
	if v < -0x8000 || v > 0xffff {
		return 0, errors.Errorf("address '%s' out of range", expr)
	}
	return uint16(v), nil
}

// Parse the first argument of a command as an address, displaying usage
// or an error when it is missing or invalid.
func (h *Host) addrArg(c selection) (uint16, bool) {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return 0, false
	}

	addr, err := h.parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return 0, false
	}
	return addr, true
}

func (h *Host) disassemble(addr uint16, flags displayFlags) (str string, next uint16) {
	c := h.cpu

	line, next := disasm.Disassemble(h.mem, c.InstSet, addr)
	if c.InstSet.Lookup(h.mem.Read(addr)).Unofficial() {
		line = "*" + line
	} else {
		line = " " + line
	}

	str = fmt.Sprintf("%04X-   %-8s   %-15s", addr, disasm.CodeString(h.mem, addr, next), line)

	if (flags & displayRegisters) != 0 {
		str += " " + disasm.GetRegisterString(&c.Reg)
	}

	if (flags & displayCycles) != 0 {
		str += fmt.Sprintf(" C=%d", c.Cycles)
	}

	if (flags & displayAnnotations) != 0 {
		if anno, ok := h.annotations[addr]; ok {
			str += " ; " + anno
		}
	}

	return str, next
}

func (h *Host) dumpMemory(addr0 uint16, bytes int) {
	if bytes <= 0 {
		return
	}

	addr1 := addr0 + uint16(bytes-1)
	if addr1 < addr0 || bytes > 0x10000 {
		addr1 = 0xffff
	}

	buf := []byte("    -" + strings.Repeat(" ", 35))

	// Don't align display for short dumps.
	if addr1-addr0 < 8 {
		addrToBuf(addr0, buf[0:4])
		for a, c1, c2 := uint32(addr0), 6, 32; a <= uint32(addr1); a, c1, c2 = a+1, c1+3, c2+1 {
			m := h.mem.Read(uint16(a))
			byteToBuf(m, buf[c1:c1+2])
			buf[c2] = toPrintableChar(m)
		}
		h.println(string(buf))
		return
	}

	// Align addr0 and addr1 to 8-byte boundaries.
	start := uint32(addr0) & 0xfff8
	stop := min((uint32(addr1)+8)&0xffff8, 0x10000)

	for r := start; r < stop; r += 8 {
		addrToBuf(uint16(r), buf[0:4])
		for i, c1, c2 := uint32(0), 6, 32; i < 8; i, c1, c2 = i+1, c1+3, c2+1 {
			a := r + i
			if a >= uint32(addr0) && a <= uint32(addr1) {
				m := h.mem.Read(uint16(a))
				byteToBuf(m, buf[c1:c1+2])
				buf[c2] = toPrintableChar(m)
			} else {
				buf[c1], buf[c1+1], buf[c2] = ' ', ' ', ' '
			}
		}
		h.println(string(buf))
	}
}

func (h *Host) displayUsage(c *cmd.Command) {
	c.DisplayUsage(h.output)
	h.flush()
}

func (h *Host) resolveIdentifier(s string) (int64, error) {
	reg := &h.cpu.Reg
	switch strings.ToLower(s) {
	case "a":
		return int64(reg.A), nil
	case "x":
		return int64(reg.X), nil
	case "y":
		return int64(reg.Y), nil
	case "sp":
		return int64(reg.SP), nil
	case "p":
		return int64(reg.P.Byte()), nil
	case ".", "pc":
		return int64(reg.PC), nil
	}
	return 0, errors.Errorf("identifier '%s' not found", s)
}

func enabledString(enable bool) string {
	if enable {
		return "enabled"
	}
	return "disabled"
}
