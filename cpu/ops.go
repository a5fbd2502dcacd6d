// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Add v and the carry to the accumulator.
func (cpu *CPU) add(v byte) {
	if cpu.Arch == NMOS && cpu.Reg.P.Contains(Decimal) {
		cpu.addDecimal(v)
		return
	}

	acc := uint32(cpu.Reg.A)
	add := uint32(v)
	carry := uint32(boolToByte(cpu.Reg.P.Contains(Carry)))

	sum := acc + add + carry
	cpu.Reg.P.Set(Carry, sum >= 0x100)
	cpu.Reg.P.Set(Overflow, (acc^sum)&(add^sum)&0x80 != 0)
	cpu.Reg.A = byte(sum)
	cpu.Reg.updateNZ(cpu.Reg.A)
}

// Subtract v and the borrow (inverted carry) from the accumulator.
func (cpu *CPU) sub(v byte) {
	if cpu.Arch == NMOS && cpu.Reg.P.Contains(Decimal) {
		cpu.subDecimal(v)
		return
	}
	cpu.add(^v)
}

// Decimal add with carry (NMOS)
func (cpu *CPU) addDecimal(v byte) {
	acc := uint32(cpu.Reg.A)
	add := uint32(v)
	carry := uint32(boolToByte(cpu.Reg.P.Contains(Carry)))

	lo := (acc & 0x0f) + (add & 0x0f) + carry

	var carrylo uint32
	if lo >= 0x0a {
		carrylo = 0x10
		lo -= 0x0a
	}

	hi := (acc & 0xf0) + (add & 0xf0) + carrylo

	if hi >= 0xa0 {
		cpu.Reg.P.Set(Carry, true)
		hi -= 0xa0
	} else {
		cpu.Reg.P.Set(Carry, false)
	}

	r := hi | lo
	cpu.Reg.P.Set(Overflow, ((acc^r)&0x80) != 0 && ((acc^add)&0x80) == 0)
	cpu.Reg.A = byte(r)
	cpu.Reg.updateNZ(cpu.Reg.A)
}

// Decimal subtract with carry (NMOS)
func (cpu *CPU) subDecimal(v byte) {
	acc := uint32(cpu.Reg.A)
	sub := uint32(v)
	carry := uint32(boolToByte(cpu.Reg.P.Contains(Carry)))

	lo := 0x0f + (acc & 0x0f) - (sub & 0x0f) + carry

	var carrylo uint32
	if lo < 0x10 {
		lo -= 0x06
	} else {
		lo -= 0x10
		carrylo = 0x10
	}

	hi := 0xf0 + (acc & 0xf0) - (sub & 0xf0) + carrylo

	if hi < 0x100 {
		cpu.Reg.P.Set(Carry, false)
		hi -= 0x60
	} else {
		cpu.Reg.P.Set(Carry, true)
		hi -= 0x100
	}

	r := hi | lo
	cpu.Reg.P.Set(Overflow, ((acc^r)&0x80) != 0 && ((acc^sub)&0x80) != 0)
	cpu.Reg.A = byte(r)
	cpu.Reg.updateNZ(cpu.Reg.A)
}

// Compare a register with v.
func (cpu *CPU) compare(reg, v byte) {
	cpu.Reg.P.Set(Carry, reg >= v)
	cpu.Reg.updateNZ(reg - v)
}

func (cpu *CPU) shiftLeft(v byte) byte {
	cpu.Reg.P.Set(Carry, v&0x80 != 0)
	v <<= 1
	cpu.Reg.updateNZ(v)
	return v
}

func (cpu *CPU) shiftRight(v byte) byte {
	cpu.Reg.P.Set(Carry, v&1 != 0)
	v >>= 1
	cpu.Reg.updateNZ(v)
	return v
}

func (cpu *CPU) rotateLeft(v byte) byte {
	c := boolToByte(cpu.Reg.P.Contains(Carry))
	cpu.Reg.P.Set(Carry, v&0x80 != 0)
	v = v<<1 | c
	cpu.Reg.updateNZ(v)
	return v
}

func (cpu *CPU) rotateRight(v byte) byte {
	c := boolToByte(cpu.Reg.P.Contains(Carry))
	cpu.Reg.P.Set(Carry, v&1 != 0)
	v = v>>1 | c<<7
	cpu.Reg.updateNZ(v)
	return v
}

// Add with carry
func (cpu *CPU) adc(inst *Instruction, op Operand) {
	cpu.add(cpu.load(op))
}

// Boolean AND
func (cpu *CPU) and(inst *Instruction, op Operand) {
	cpu.Reg.A &= cpu.load(op)
	cpu.Reg.updateNZ(cpu.Reg.A)
}

// Arithmetic Shift Left
func (cpu *CPU) asl(inst *Instruction, op Operand) {
	cpu.store(op, cpu.shiftLeft(cpu.load(op)))
}

// Branch if Carry Clear
func (cpu *CPU) bcc(inst *Instruction, op Operand) {
	cpu.branch(op, !cpu.Reg.P.Contains(Carry))
}

// Branch if Carry Set
func (cpu *CPU) bcs(inst *Instruction, op Operand) {
	cpu.branch(op, cpu.Reg.P.Contains(Carry))
}

// Branch if EQual (to zero)
func (cpu *CPU) beq(inst *Instruction, op Operand) {
	cpu.branch(op, cpu.Reg.P.Contains(Zero))
}

// Bit Test
func (cpu *CPU) bit(inst *Instruction, op Operand) {
	v := cpu.load(op)
	cpu.Reg.P.Set(Zero, v&cpu.Reg.A == 0)
	cpu.Reg.P.Set(Negative, v&0x80 != 0)
	cpu.Reg.P.Set(Overflow, v&0x40 != 0)
}

// Branch if MInus (negative)
func (cpu *CPU) bmi(inst *Instruction, op Operand) {
	cpu.branch(op, cpu.Reg.P.Contains(Negative))
}

// Branch if Not Equal (not zero)
func (cpu *CPU) bne(inst *Instruction, op Operand) {
	cpu.branch(op, !cpu.Reg.P.Contains(Zero))
}

// Branch if PLus (positive)
func (cpu *CPU) bpl(inst *Instruction, op Operand) {
	cpu.branch(op, !cpu.Reg.P.Contains(Negative))
}

// Break. The byte after the opcode is skipped.
func (cpu *CPU) brk(inst *Instruction, op Operand) {
	cpu.Reg.PC++
	cpu.handleInterrupt(true, vectorBRK)
}

// Branch if oVerflow Clear
func (cpu *CPU) bvc(inst *Instruction, op Operand) {
	cpu.branch(op, !cpu.Reg.P.Contains(Overflow))
}

// Branch if oVerflow Set
func (cpu *CPU) bvs(inst *Instruction, op Operand) {
	cpu.branch(op, cpu.Reg.P.Contains(Overflow))
}

// Clear Carry flag
func (cpu *CPU) clc(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(Carry, false)
}

// Clear Decimal flag
func (cpu *CPU) cld(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(Decimal, false)
}

// Clear InterruptDisable flag
func (cpu *CPU) cli(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(InterruptDisable, false)
}

// Clear oVerflow flag
func (cpu *CPU) clv(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(Overflow, false)
}

// Compare to accumulator
func (cpu *CPU) cmp(inst *Instruction, op Operand) {
	cpu.compare(cpu.Reg.A, cpu.load(op))
}

// Compare to X register
func (cpu *CPU) cpx(inst *Instruction, op Operand) {
	cpu.compare(cpu.Reg.X, cpu.load(op))
}

// Compare to Y register
func (cpu *CPU) cpy(inst *Instruction, op Operand) {
	cpu.compare(cpu.Reg.Y, cpu.load(op))
}

// Decrement memory value
func (cpu *CPU) dec(inst *Instruction, op Operand) {
	v := cpu.load(op) - 1
	cpu.Reg.updateNZ(v)
	cpu.store(op, v)
}

// Decrement X register
func (cpu *CPU) dex(inst *Instruction, op Operand) {
	cpu.Reg.X--
	cpu.Reg.updateNZ(cpu.Reg.X)
}

// Decrement Y register
func (cpu *CPU) dey(inst *Instruction, op Operand) {
	cpu.Reg.Y--
	cpu.Reg.updateNZ(cpu.Reg.Y)
}

// Boolean XOR
func (cpu *CPU) eor(inst *Instruction, op Operand) {
	cpu.Reg.A ^= cpu.load(op)
	cpu.Reg.updateNZ(cpu.Reg.A)
}

// Increment memory value
func (cpu *CPU) inc(inst *Instruction, op Operand) {
	v := cpu.load(op) + 1
	cpu.Reg.updateNZ(v)
	cpu.store(op, v)
}

// Increment X register
func (cpu *CPU) inx(inst *Instruction, op Operand) {
	cpu.Reg.X++
	cpu.Reg.updateNZ(cpu.Reg.X)
}

// Increment Y register
func (cpu *CPU) iny(inst *Instruction, op Operand) {
	cpu.Reg.Y++
	cpu.Reg.updateNZ(cpu.Reg.Y)
}

// Jump to memory address. The indirect form has already been resolved
// with the page-wrap bug.
func (cpu *CPU) jmp(inst *Instruction, op Operand) {
	cpu.Reg.PC = op.Addr
}

// Jump to subroutine
func (cpu *CPU) jsr(inst *Instruction, op Operand) {
	cpu.pushAddress(cpu.Reg.PC - 1)
	cpu.Reg.PC = op.Addr
}

// load Accumulator
func (cpu *CPU) lda(inst *Instruction, op Operand) {
	cpu.Reg.A = cpu.load(op)
	cpu.Reg.updateNZ(cpu.Reg.A)
}

// load the X register
func (cpu *CPU) ldx(inst *Instruction, op Operand) {
	cpu.Reg.X = cpu.load(op)
	cpu.Reg.updateNZ(cpu.Reg.X)
}

// load the Y register
func (cpu *CPU) ldy(inst *Instruction, op Operand) {
	cpu.Reg.Y = cpu.load(op)
	cpu.Reg.updateNZ(cpu.Reg.Y)
}

// Logical Shift Right
func (cpu *CPU) lsr(inst *Instruction, op Operand) {
	cpu.store(op, cpu.shiftRight(cpu.load(op)))
}

// No-operation. Unofficial variants with a memory operand still read it.
func (cpu *CPU) nop(inst *Instruction, op Operand) {
	if op.Kind == OperandAddress {
		cpu.load(op)
	}
}

// Boolean OR
func (cpu *CPU) ora(inst *Instruction, op Operand) {
	cpu.Reg.A |= cpu.load(op)
	cpu.Reg.updateNZ(cpu.Reg.A)
}

// Push Accumulator
func (cpu *CPU) pha(inst *Instruction, op Operand) {
	cpu.push(cpu.Reg.A)
}

// Push Processor flags, with the break bit set.
func (cpu *CPU) php(inst *Instruction, op Operand) {
	cpu.push(cpu.Reg.P.Byte() | byte(Break))
}

// Pull (pop) Accumulator
func (cpu *CPU) pla(inst *Instruction, op Operand) {
	cpu.Reg.A = cpu.pop()
	cpu.Reg.updateNZ(cpu.Reg.A)
}

// Pull (pop) Processor flags
func (cpu *CPU) plp(inst *Instruction, op Operand) {
	cpu.restoreStatus(cpu.pop())
}

// Rotate Left
func (cpu *CPU) rol(inst *Instruction, op Operand) {
	cpu.store(op, cpu.rotateLeft(cpu.load(op)))
}

// Rotate Right
func (cpu *CPU) ror(inst *Instruction, op Operand) {
	cpu.store(op, cpu.rotateRight(cpu.load(op)))
}

// Return from Interrupt
func (cpu *CPU) rti(inst *Instruction, op Operand) {
	cpu.restoreStatus(cpu.pop())
	cpu.Reg.PC = cpu.popAddress()
}

// Return from Subroutine
func (cpu *CPU) rts(inst *Instruction, op Operand) {
	cpu.Reg.PC = cpu.popAddress() + 1
}

// Subtract with Carry
func (cpu *CPU) sbc(inst *Instruction, op Operand) {
	cpu.sub(cpu.load(op))
}

// Set Carry flag
func (cpu *CPU) sec(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(Carry, true)
}

// Set Decimal flag
func (cpu *CPU) sed(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(Decimal, true)
}

// Set InterruptDisable flag
func (cpu *CPU) sei(inst *Instruction, op Operand) {
	cpu.Reg.P.Set(InterruptDisable, true)
}

// Store Accumulator
func (cpu *CPU) sta(inst *Instruction, op Operand) {
	cpu.store(op, cpu.Reg.A)
}

// Store X register
func (cpu *CPU) stx(inst *Instruction, op Operand) {
	cpu.store(op, cpu.Reg.X)
}

// Store Y register
func (cpu *CPU) sty(inst *Instruction, op Operand) {
	cpu.store(op, cpu.Reg.Y)
}

// Transfer Accumulator to X register
func (cpu *CPU) tax(inst *Instruction, op Operand) {
	cpu.Reg.X = cpu.Reg.A
	cpu.Reg.updateNZ(cpu.Reg.X)
}

// Transfer Accumulator to Y register
func (cpu *CPU) tay(inst *Instruction, op Operand) {
	cpu.Reg.Y = cpu.Reg.A
	cpu.Reg.updateNZ(cpu.Reg.Y)
}

// Transfer stack pointer to X register
func (cpu *CPU) tsx(inst *Instruction, op Operand) {
	cpu.Reg.X = cpu.Reg.SP
	cpu.Reg.updateNZ(cpu.Reg.X)
}

// Transfer X register to Accumulator
func (cpu *CPU) txa(inst *Instruction, op Operand) {
	cpu.Reg.A = cpu.Reg.X
	cpu.Reg.updateNZ(cpu.Reg.A)
}

// Transfer X register to the stack pointer
func (cpu *CPU) txs(inst *Instruction, op Operand) {
	cpu.Reg.SP = cpu.Reg.X
}

// Transfer Y register to the Accumulator
func (cpu *CPU) tya(inst *Instruction, op Operand) {
	cpu.Reg.A = cpu.Reg.Y
	cpu.Reg.updateNZ(cpu.Reg.A)
}
