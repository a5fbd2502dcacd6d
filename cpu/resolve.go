// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// OperandKind identifies what an Operand refers to.
type OperandKind byte

// Operand kinds
const (
	OperandNone        OperandKind = iota // implied
	OperandImmediate                      // Value holds the operand
	OperandAddress                        // Addr holds the effective address
	OperandAccumulator                    // the accumulator register
)

// An Operand is the effective operand of an instruction after its
// addressing mode has been resolved.
type Operand struct {
	Kind  OperandKind
	Addr  uint16 // effective address
	Base  uint16 // address before indexing (ABX, ABY, IDY)
	Value byte   // immediate value
}

// Resolve computes the effective operand of an instruction using the
// addressing mode, the operand bytes following the opcode, and the current
// register values. The program counter must already point past the
// instruction. Pointer bytes for the indirect modes are read from the bus;
// the operand itself is not. The returned bool reports whether indexing
// (or a relative branch) crossed a page boundary.
func Resolve(mode Mode, reg *Registers, operand []byte, bus Bus) (op Operand, pageCrossed bool) {
	switch mode {
	case IMM:
		return Operand{Kind: OperandImmediate, Value: operand[0]}, false

	case ZPG:
		return addressOperand(uint16(operand[0])), false

	case ZPX:
		return addressOperand(offsetZeroPage(operand[0], reg.X)), false

	case ZPY:
		return addressOperand(offsetZeroPage(operand[0], reg.Y)), false

	case ABS:
		return addressOperand(operandToAddress(operand)), false

	case ABX:
		return indexed(operandToAddress(operand), reg.X)

	case ABY:
		return indexed(operandToAddress(operand), reg.Y)

	case IND:
		ptr := operandToAddress(operand)
		return addressOperand(readAddressPageWrapped(bus, ptr)), false

	case IDX:
		ptr := offsetZeroPage(operand[0], reg.X)
		return addressOperand(readAddressPageWrapped(bus, ptr)), false

	case IDY:
		base := readAddressPageWrapped(bus, uint16(operand[0]))
		return indexed(base, reg.Y)

	case REL:
		target := reg.PC + uint16(int8(operand[0]))
		op = addressOperand(target)
		op.Base = reg.PC
		return op, (target & 0xff00) != (reg.PC & 0xff00)

	case ACC:
		return Operand{Kind: OperandAccumulator}, false

	default:
		return Operand{Kind: OperandNone}, false
	}
}

func addressOperand(addr uint16) Operand {
	return Operand{Kind: OperandAddress, Addr: addr, Base: addr}
}

func indexed(base uint16, index byte) (Operand, bool) {
	addr, pageCrossed := offsetAddress(base, index)
	return Operand{Kind: OperandAddress, Addr: addr, Base: base}, pageCrossed
}
