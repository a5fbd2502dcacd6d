// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements the instruction set of the Ricoh 2A03, the 6502
// variant used by the NES, along with an emulator for it.
package cpu

// Architecture selects the CPU chip variant.
type Architecture byte

const (
	// Ricoh2A03 is the NES CPU. The decimal flag exists but ADC and SBC
	// always perform binary arithmetic.
	Ricoh2A03 Architecture = iota

	// NMOS is the original MOS 6502 with decimal mode arithmetic.
	NMOS
)

func (a Architecture) String() string {
	switch a {
	case Ricoh2A03:
		return "2A03"
	case NMOS:
		return "NMOS"
	default:
		return "unknown"
	}
}

// CPU represents a single 2A03 CPU. The bus is not owned by the CPU; it
// is supplied on every call that touches memory.
type CPU struct {
	Arch        Architecture    // CPU architecture
	Reg         Registers       // CPU registers
	Cycles      uint64          // total executed CPU cycles
	LastPC      uint16          // address of the last executed instruction
	InstSet     *InstructionSet // Instruction set used by the CPU
	bus         Bus             // bus for the step in progress
	halted      bool
	nmiPending  bool
	irqPending  bool
	pageCrossed bool
	deltaCycles int8
	debugger    *Debugger
}

// Interrupt vectors
const (
	vectorNMI   = 0xfffa
	vectorReset = 0xfffc
	vectorIRQ   = 0xfffe
	vectorBRK   = 0xfffe
)

// Cycles consumed by reset and by interrupt entry.
const interruptCycles = 7

// NewCPU creates an emulated CPU with power-up register values. Call
// Reset to load the program counter from the reset vector.
func NewCPU(arch Architecture) *CPU {
	cpu := &CPU{
		Arch:    arch,
		InstSet: GetInstructionSet(arch),
	}

	cpu.Reg.Init()
	return cpu
}

// AllowUnstable selects whether the unstable unofficial opcodes (XAA, LXA,
// AHX, SHX, SHY, TAS) are executed. When disallowed, stepping one of them
// returns an UnimplementedError.
func (cpu *CPU) AllowUnstable(allow bool) {
	if allow {
		cpu.InstSet = GetInstructionSet(cpu.Arch)
	} else {
		cpu.InstSet = GetStableInstructionSet(cpu.Arch)
	}
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// Halted returns true if the CPU executed a KIL opcode and has not been
// reset since.
func (cpu *CPU) Halted() bool {
	return cpu.halted
}

// GetInstruction returns the instruction at the requested address.
func (cpu *CPU) GetInstruction(bus Bus, addr uint16) *Instruction {
	opcode := bus.Read(addr)
	return cpu.InstSet.Lookup(opcode)
}

// NextAddr returns the address of the next instruction following the
// instruction at addr.
func (cpu *CPU) NextAddr(bus Bus, addr uint16) uint16 {
	inst := cpu.GetInstruction(bus, addr)
	return addr + uint16(inst.Length)
}

// Reset restores the power-up register values, clears the halt state and
// any pending interrupts, and loads the program counter from the reset
// vector.
func (cpu *CPU) Reset(bus Bus) {
	cpu.Reg.Init()
	cpu.Reg.PC = ReadAddress(bus, vectorReset)
	cpu.halted = false
	cpu.nmiPending = false
	cpu.irqPending = false
	cpu.Cycles += interruptCycles
}

// NMI requests a non-maskable interrupt. It is serviced at the start of
// the next step.
func (cpu *CPU) NMI() {
	cpu.nmiPending = true
}

// IRQ requests a maskable interrupt. It stays pending until a step finds
// the InterruptDisable flag clear.
func (cpu *CPU) IRQ() {
	cpu.irqPending = true
}

// Step executes one instruction, or services one pending interrupt, and
// returns the number of cycles consumed.
//
// A KIL opcode halts the CPU and returns a *HaltError. Once halted, Step
// returns ErrHalted until Reset is called. An opcode without a handler
// returns an *UnimplementedError and leaves the CPU unchanged.
func (cpu *CPU) Step(bus Bus) (uint32, error) {
	if cpu.halted {
		return 0, ErrHalted
	}
	cpu.bus = bus

	switch {
	case cpu.nmiPending:
		cpu.nmiPending = false
		return cpu.serviceInterrupt(vectorNMI), nil
	case cpu.irqPending && !cpu.Reg.P.Contains(InterruptDisable):
		cpu.irqPending = false
		return cpu.serviceInterrupt(vectorIRQ), nil
	}

	// Grab the next opcode at the current PC and look up its instruction.
	addr := cpu.Reg.PC
	inst := cpu.InstSet.Lookup(bus.Read(addr))
	if inst.fn == nil {
		return 0, &UnimplementedError{Opcode: inst.Opcode, Addr: addr, Name: inst.Name}
	}

	// Fetch the operand (if any), advancing the PC past the instruction.
	var buf [2]byte
	operand := buf[:inst.Length-1]
	cpu.Reg.PC++
	for i := range operand {
		operand[i] = bus.Read(cpu.Reg.PC)
		cpu.Reg.PC++
	}
	cpu.LastPC = addr

	op, pageCrossed := Resolve(inst.Mode, &cpu.Reg, operand, bus)

	// Execute the instruction
	cpu.pageCrossed = pageCrossed
	cpu.deltaCycles = 0
	inst.fn(cpu, inst, op)

	// Only instructions that read through an indexed address pay for
	// a page crossing; their BPCycles is nonzero.
	cycles := uint32(int32(inst.Cycles) + int32(cpu.deltaCycles))
	if cpu.pageCrossed {
		cycles += uint32(inst.BPCycles)
	}
	cpu.Cycles += uint64(cycles)

	if cpu.halted {
		return cycles, &HaltError{Opcode: inst.Opcode, Addr: addr}
	}

	if cpu.debugger != nil {
		cpu.debugger.onUpdatePC(cpu, cpu.Reg.PC)
	}
	return cycles, nil
}

// Execute runs a raw instruction stream. The program is copied to address
// $0000 of a private 64K memory, the program counter is set to $0000, and
// instructions are stepped until the program counter leaves the program
// or reaches a BRK opcode. All other registers keep their values, so
// callers may preset flags. Execute returns the first error from Step.
func (cpu *CPU) Execute(program []byte) error {
	mem := NewFlatMemory()
	mem.StoreBytes(0, program)
	cpu.Reg.PC = 0

	for int(cpu.Reg.PC) < len(program) {
		if mem.Read(cpu.Reg.PC) == 0x00 {
			return nil
		}
		if _, err := cpu.Step(mem); err != nil {
			return err
		}
	}
	return nil
}

// AttachDebugger attaches a debugger to the CPU. The debugger receives
// notifications whenever the CPU executes an instruction or stores a byte
// to memory.
func (cpu *CPU) AttachDebugger(debugger *Debugger) {
	cpu.debugger = debugger
}

// DetachDebugger detaches the currently attached debugger from the CPU.
func (cpu *CPU) DetachDebugger() {
	cpu.debugger = nil
}

// Load a byte value from the resolved operand.
func (cpu *CPU) load(op Operand) byte {
	switch op.Kind {
	case OperandImmediate:
		return op.Value
	case OperandAccumulator:
		return cpu.Reg.A
	case OperandAddress:
		return cpu.bus.Read(op.Addr)
	default:
		return 0
	}
}

// Store a byte value to the resolved operand.
func (cpu *CPU) store(op Operand, v byte) {
	switch op.Kind {
	case OperandAccumulator:
		cpu.Reg.A = v
	case OperandAddress:
		cpu.write(op.Addr, v)
	}
}

// Store the byte value 'v' at the address 'addr'.
func (cpu *CPU) write(addr uint16, v byte) {
	if cpu.debugger != nil {
		cpu.debugger.onDataStore(cpu, addr, v)
	}
	cpu.bus.Write(addr, v)
}

// Take a branch to the resolved target if cond is true. A taken branch
// costs one cycle, plus BPCycles when the target is on another page.
func (cpu *CPU) branch(op Operand, cond bool) {
	if !cond {
		cpu.pageCrossed = false
		return
	}
	cpu.Reg.PC = op.Addr
	cpu.deltaCycles++
}

// Push a value 'v' onto the stack.
func (cpu *CPU) push(v byte) {
	cpu.write(stackAddress(cpu.Reg.SP), v)
	cpu.Reg.SP--
}

// Push the address 'addr' onto the stack.
func (cpu *CPU) pushAddress(addr uint16) {
	cpu.push(byte(addr >> 8))
	cpu.push(byte(addr))
}

// Pop a value from the stack and return it.
func (cpu *CPU) pop() byte {
	cpu.Reg.SP++
	return cpu.bus.Read(stackAddress(cpu.Reg.SP))
}

// Pop a 16-bit address off the stack.
func (cpu *CPU) popAddress() uint16 {
	lo := cpu.pop()
	hi := cpu.pop()
	return uint16(lo) | (uint16(hi) << 8)
}

// Restore the status flags from a byte pulled off the stack. The break
// flag is not stored in the register, so it keeps its value.
func (cpu *CPU) restoreStatus(v byte) {
	brk := cpu.Reg.P.Contains(Break)
	cpu.Reg.P.SetByte(v)
	cpu.Reg.P.Set(Break, brk)
}

// Handle an interrupt by storing the program counter and status flags on
// the stack. Then switch the program counter to the requested vector.
func (cpu *CPU) handleInterrupt(brk bool, vector uint16) {
	cpu.pushAddress(cpu.Reg.PC)

	ps := Status(cpu.Reg.P.Byte())
	ps.Set(Break, brk)
	cpu.push(byte(ps))

	cpu.Reg.P.Set(InterruptDisable, true)
	cpu.Reg.PC = ReadAddress(cpu.bus, vector)
}

func (cpu *CPU) serviceInterrupt(vector uint16) uint32 {
	cpu.LastPC = cpu.Reg.PC
	cpu.handleInterrupt(false, vector)
	cpu.Cycles += interruptCycles

	if cpu.debugger != nil {
		cpu.debugger.onUpdatePC(cpu, cpu.Reg.PC)
	}
	return interruptCycles
}
