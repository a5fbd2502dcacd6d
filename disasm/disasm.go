// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 2A03 instruction set disassembler and an
// execution trace formatter.
package disasm

import (
	"fmt"
	"strings"

	"github.com/beevik/go2a03/cpu"
)

// Disassembler formatting for addressing modes
var modeFormat = []string{
	"#$%s",    // IMM
	"%s",      // IMP
	"$%s",     // REL
	"$%s",     // ZPG
	"$%s,X",   // ZPX
	"$%s,Y",   // ZPY
	"$%s",     // ABS
	"$%s,X",   // ABX
	"$%s,Y",   // ABY
	"($%s)",   // IND
	"($%s,X)", // IDX
	"($%s),Y", // IDY
	"A%s",     // ACC
}

var hex = "0123456789ABCDEF"

// Return a big-endian hexadecimal string representation of the
// little-endian operand bytes.
func hexString(b []byte) string {
	hexlen := len(b) * 2
	hexbuf := make([]byte, hexlen)
	j := hexlen - 1
	for _, n := range b {
		hexbuf[j] = hex[n&0xf]
		hexbuf[j-1] = hex[n>>4]
		j -= 2
	}
	return string(hexbuf)
}

// Disassemble the machine code on the bus at address 'addr' using the
// instruction set 'set'. Return a 'line' string representing the
// disassembled instruction and a 'next' address that starts the following
// line of machine code. Branch targets are shown as absolute addresses.
func Disassemble(bus cpu.Bus, set *cpu.InstructionSet, addr uint16) (line string, next uint16) {
	inst := set.Lookup(bus.Read(addr))

	operand := make([]byte, inst.Length-1)
	for i := range operand {
		operand[i] = bus.Read(addr + 1 + uint16(i))
	}

	if inst.Mode == cpu.REL {
		target := addr + uint16(inst.Length) + uint16(int8(operand[0]))
		operand = []byte{byte(target), byte(target >> 8)}
	}

	line = inst.Name
	if arg := fmt.Sprintf(modeFormat[inst.Mode], hexString(operand)); arg != "" {
		line += " " + arg
	}
	next = addr + uint16(inst.Length)
	return line, next
}

// CodeString returns the instruction bytes at addr as space-separated
// hexadecimal pairs.
func CodeString(bus cpu.Bus, addr, next uint16) string {
	var sb strings.Builder
	for a := addr; a != next; a++ {
		if a != addr {
			sb.WriteByte(' ')
		}
		v := bus.Read(a)
		sb.WriteByte(hex[v>>4])
		sb.WriteByte(hex[v&0xf])
	}
	return sb.String()
}

// GetRegisterString returns a string describing the contents of the 2A03
// registers.
func GetRegisterString(r *cpu.Registers) string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X PS=[%s] SP=%02X PC=%04X",
		r.A, r.X, r.Y, r.P.String(), r.SP, r.PC)
}

// Trace returns a nestest-format log line for the instruction about to
// execute at the CPU's program counter:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
//
// Unofficial instructions are marked with a '*' before the mnemonic.
func Trace(c *cpu.CPU, bus cpu.Bus) string {
	pc := c.Reg.PC
	line, next := Disassemble(bus, c.InstSet, pc)

	mark := " "
	if c.InstSet.Lookup(bus.Read(pc)).Unofficial() {
		mark = "*"
	}

	return fmt.Sprintf("%04X  %-8s %s%-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		pc, CodeString(bus, pc, next), mark, line,
		c.Reg.A, c.Reg.X, c.Reg.Y, c.Reg.P.Byte(), c.Reg.SP, c.Cycles)
}
