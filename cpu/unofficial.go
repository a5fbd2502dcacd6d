// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Values ORed into the accumulator by XAA and LXA. Real chips vary.
const (
	xaaMagic = 0xee
	lxaMagic = 0xff
)

// Store v ANDed with the high byte of the unindexed address plus one. When
// indexing crossed a page, the stored value also replaces the high byte of
// the target address.
func (cpu *CPU) storeHigh(op Operand, v byte) {
	v &= byte(op.Base>>8) + 1
	addr := op.Addr
	if cpu.pageCrossed {
		addr = uint16(v)<<8 | addr&0x00ff
	}
	cpu.write(addr, v)
}

// Store A & X & (H+1)
func (cpu *CPU) ahx(inst *Instruction, op Operand) {
	cpu.storeHigh(op, cpu.Reg.A&cpu.Reg.X)
}

// AND immediate, then LSR A
func (cpu *CPU) alr(inst *Instruction, op Operand) {
	cpu.Reg.A = cpu.shiftRight(cpu.Reg.A & cpu.load(op))
}

// AND immediate, copying bit 7 of the result into carry
func (cpu *CPU) anc(inst *Instruction, op Operand) {
	cpu.Reg.A &= cpu.load(op)
	cpu.Reg.updateNZ(cpu.Reg.A)
	cpu.Reg.P.Set(Carry, cpu.Reg.A&0x80 != 0)
}

// AND immediate, then ROR A. Carry comes from bit 6 and overflow from
// bit 6 XOR bit 5 of the result.
func (cpu *CPU) arr(inst *Instruction, op Operand) {
	c := boolToByte(cpu.Reg.P.Contains(Carry))
	cpu.Reg.A = (cpu.Reg.A&cpu.load(op))>>1 | c<<7
	cpu.Reg.updateNZ(cpu.Reg.A)
	cpu.Reg.P.Set(Carry, cpu.Reg.A&0x40 != 0)
	cpu.Reg.P.Set(Overflow, (cpu.Reg.A>>6^cpu.Reg.A>>5)&1 != 0)
}

// X = (A & X) - immediate, without borrow
func (cpu *CPU) axs(inst *Instruction, op Operand) {
	t := cpu.Reg.A & cpu.Reg.X
	v := cpu.load(op)
	cpu.Reg.X = t - v
	cpu.Reg.P.Set(Carry, t >= v)
	cpu.Reg.updateNZ(cpu.Reg.X)
}

// DEC memory, then CMP
func (cpu *CPU) dcp(inst *Instruction, op Operand) {
	v := cpu.load(op) - 1
	cpu.store(op, v)
	cpu.compare(cpu.Reg.A, v)
}

// INC memory, then SBC
func (cpu *CPU) isc(inst *Instruction, op Operand) {
	v := cpu.load(op) + 1
	cpu.store(op, v)
	cpu.sub(v)
}

// Halt the processor. The program counter stays on the opcode.
func (cpu *CPU) kil(inst *Instruction, op Operand) {
	cpu.halted = true
	cpu.Reg.PC = cpu.LastPC
}

// A, X and SP = memory & SP
func (cpu *CPU) las(inst *Instruction, op Operand) {
	v := cpu.load(op) & cpu.Reg.SP
	cpu.Reg.A, cpu.Reg.X, cpu.Reg.SP = v, v, v
	cpu.Reg.updateNZ(v)
}

// LDA and LDX
func (cpu *CPU) lax(inst *Instruction, op Operand) {
	v := cpu.load(op)
	cpu.Reg.A, cpu.Reg.X = v, v
	cpu.Reg.updateNZ(v)
}

// A and X = (A | magic) & immediate
func (cpu *CPU) lxa(inst *Instruction, op Operand) {
	v := (cpu.Reg.A | lxaMagic) & cpu.load(op)
	cpu.Reg.A, cpu.Reg.X = v, v
	cpu.Reg.updateNZ(v)
}

// ROL memory, then AND
func (cpu *CPU) rla(inst *Instruction, op Operand) {
	v := cpu.rotateLeft(cpu.load(op))
	cpu.store(op, v)
	cpu.Reg.A &= v
	cpu.Reg.updateNZ(cpu.Reg.A)
}

// ROR memory, then ADC
func (cpu *CPU) rra(inst *Instruction, op Operand) {
	v := cpu.rotateRight(cpu.load(op))
	cpu.store(op, v)
	cpu.add(v)
}

// Store A & X
func (cpu *CPU) sax(inst *Instruction, op Operand) {
	cpu.store(op, cpu.Reg.A&cpu.Reg.X)
}

// Store X & (H+1)
func (cpu *CPU) shx(inst *Instruction, op Operand) {
	cpu.storeHigh(op, cpu.Reg.X)
}

// Store Y & (H+1)
func (cpu *CPU) shy(inst *Instruction, op Operand) {
	cpu.storeHigh(op, cpu.Reg.Y)
}

// ASL memory, then ORA
func (cpu *CPU) slo(inst *Instruction, op Operand) {
	v := cpu.shiftLeft(cpu.load(op))
	cpu.store(op, v)
	cpu.Reg.A |= v
	cpu.Reg.updateNZ(cpu.Reg.A)
}

// LSR memory, then EOR
func (cpu *CPU) sre(inst *Instruction, op Operand) {
	v := cpu.shiftRight(cpu.load(op))
	cpu.store(op, v)
	cpu.Reg.A ^= v
	cpu.Reg.updateNZ(cpu.Reg.A)
}

// SP = A & X, then store SP & (H+1)
func (cpu *CPU) tas(inst *Instruction, op Operand) {
	cpu.Reg.SP = cpu.Reg.A & cpu.Reg.X
	cpu.storeHigh(op, cpu.Reg.SP)
}

// A = (A | magic) & X & immediate
func (cpu *CPU) xaa(inst *Instruction, op Operand) {
	cpu.Reg.A = (cpu.Reg.A | xaaMagic) & cpu.Reg.X & cpu.load(op)
	cpu.Reg.updateNZ(cpu.Reg.A)
}
