// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/beevik/go2a03/cpu"
)

var canonicalNames = [256]string{
	"BRK", "ORA", "KIL", "SLO", "NOP", "ORA", "ASL", "SLO",
	"PHP", "ORA", "ASL", "ANC", "NOP", "ORA", "ASL", "SLO",
	"BPL", "ORA", "KIL", "SLO", "NOP", "ORA", "ASL", "SLO",
	"CLC", "ORA", "NOP", "SLO", "NOP", "ORA", "ASL", "SLO",
	"JSR", "AND", "KIL", "RLA", "BIT", "AND", "ROL", "RLA",
	"PLP", "AND", "ROL", "ANC", "BIT", "AND", "ROL", "RLA",
	"BMI", "AND", "KIL", "RLA", "NOP", "AND", "ROL", "RLA",
	"SEC", "AND", "NOP", "RLA", "NOP", "AND", "ROL", "RLA",
	"RTI", "EOR", "KIL", "SRE", "NOP", "EOR", "LSR", "SRE",
	"PHA", "EOR", "LSR", "ALR", "JMP", "EOR", "LSR", "SRE",
	"BVC", "EOR", "KIL", "SRE", "NOP", "EOR", "LSR", "SRE",
	"CLI", "EOR", "NOP", "SRE", "NOP", "EOR", "LSR", "SRE",
	"RTS", "ADC", "KIL", "RRA", "NOP", "ADC", "ROR", "RRA",
	"PLA", "ADC", "ROR", "ARR", "JMP", "ADC", "ROR", "RRA",
	"BVS", "ADC", "KIL", "RRA", "NOP", "ADC", "ROR", "RRA",
	"SEI", "ADC", "NOP", "RRA", "NOP", "ADC", "ROR", "RRA",
	"NOP", "STA", "NOP", "SAX", "STY", "STA", "STX", "SAX",
	"DEY", "NOP", "TXA", "XAA", "STY", "STA", "STX", "SAX",
	"BCC", "STA", "KIL", "AHX", "STY", "STA", "STX", "SAX",
	"TYA", "STA", "TXS", "TAS", "SHY", "STA", "SHX", "AHX",
	"LDY", "LDA", "LDX", "LAX", "LDY", "LDA", "LDX", "LAX",
	"TAY", "LDA", "TAX", "LXA", "LDY", "LDA", "LDX", "LAX",
	"BCS", "LDA", "KIL", "LAX", "LDY", "LDA", "LDX", "LAX",
	"CLV", "LDA", "TSX", "LAS", "LDY", "LDA", "LDX", "LAX",
	"CPY", "CMP", "NOP", "DCP", "CPY", "CMP", "DEC", "DCP",
	"INY", "CMP", "DEX", "AXS", "CPY", "CMP", "DEC", "DCP",
	"BNE", "CMP", "KIL", "DCP", "NOP", "CMP", "DEC", "DCP",
	"CLD", "CMP", "NOP", "DCP", "NOP", "CMP", "DEC", "DCP",
	"CPX", "SBC", "NOP", "ISC", "CPX", "SBC", "INC", "ISC",
	"INX", "SBC", "NOP", "SBC", "CPX", "SBC", "INC", "ISC",
	"BEQ", "SBC", "KIL", "ISC", "NOP", "SBC", "INC", "ISC",
	"SED", "SBC", "NOP", "ISC", "NOP", "SBC", "INC", "ISC",
}

var canonicalModes = [256]cpu.Mode{
	cpu.IMP, cpu.IDX, cpu.IMP, cpu.IDX, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.IMP, cpu.IMM, cpu.ACC, cpu.IMM, cpu.ABS, cpu.ABS, cpu.ABS, cpu.ABS,
	cpu.REL, cpu.IDY, cpu.IMP, cpu.IDY, cpu.ZPX, cpu.ZPX, cpu.ZPX, cpu.ZPX, cpu.IMP, cpu.ABY, cpu.IMP, cpu.ABY, cpu.ABX, cpu.ABX, cpu.ABX, cpu.ABX,
	cpu.ABS, cpu.IDX, cpu.IMP, cpu.IDX, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.IMP, cpu.IMM, cpu.ACC, cpu.IMM, cpu.ABS, cpu.ABS, cpu.ABS, cpu.ABS,
	cpu.REL, cpu.IDY, cpu.IMP, cpu.IDY, cpu.ZPX, cpu.ZPX, cpu.ZPX, cpu.ZPX, cpu.IMP, cpu.ABY, cpu.IMP, cpu.ABY, cpu.ABX, cpu.ABX, cpu.ABX, cpu.ABX,
	cpu.IMP, cpu.IDX, cpu.IMP, cpu.IDX, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.IMP, cpu.IMM, cpu.ACC, cpu.IMM, cpu.ABS, cpu.ABS, cpu.ABS, cpu.ABS,
	cpu.REL, cpu.IDY, cpu.IMP, cpu.IDY, cpu.ZPX, cpu.ZPX, cpu.ZPX, cpu.ZPX, cpu.IMP, cpu.ABY, cpu.IMP, cpu.ABY, cpu.ABX, cpu.ABX, cpu.ABX, cpu.ABX,
	cpu.IMP, cpu.IDX, cpu.IMP, cpu.IDX, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.IMP, cpu.IMM, cpu.ACC, cpu.IMM, cpu.IND, cpu.ABS, cpu.ABS, cpu.ABS,
	cpu.REL, cpu.IDY, cpu.IMP, cpu.IDY, cpu.ZPX, cpu.ZPX, cpu.ZPX, cpu.ZPX, cpu.IMP, cpu.ABY, cpu.IMP, cpu.ABY, cpu.ABX, cpu.ABX, cpu.ABX, cpu.ABX,
	cpu.IMM, cpu.IDX, cpu.IMM, cpu.IDX, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.IMP, cpu.IMM, cpu.IMP, cpu.IMM, cpu.ABS, cpu.ABS, cpu.ABS, cpu.ABS,
	cpu.REL, cpu.IDY, cpu.IMP, cpu.IDY, cpu.ZPX, cpu.ZPX, cpu.ZPY, cpu.ZPY, cpu.IMP, cpu.ABY, cpu.IMP, cpu.ABY, cpu.ABX, cpu.ABX, cpu.ABY, cpu.ABY,
	cpu.IMM, cpu.IDX, cpu.IMM, cpu.IDX, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.IMP, cpu.IMM, cpu.IMP, cpu.IMM, cpu.ABS, cpu.ABS, cpu.ABS, cpu.ABS,
	cpu.REL, cpu.IDY, cpu.IMP, cpu.IDY, cpu.ZPX, cpu.ZPX, cpu.ZPY, cpu.ZPY, cpu.IMP, cpu.ABY, cpu.IMP, cpu.ABY, cpu.ABX, cpu.ABX, cpu.ABY, cpu.ABY,
	cpu.IMM, cpu.IDX, cpu.IMM, cpu.IDX, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.IMP, cpu.IMM, cpu.IMP, cpu.IMM, cpu.ABS, cpu.ABS, cpu.ABS, cpu.ABS,
	cpu.REL, cpu.IDY, cpu.IMP, cpu.IDY, cpu.ZPX, cpu.ZPX, cpu.ZPX, cpu.ZPX, cpu.IMP, cpu.ABY, cpu.IMP, cpu.ABY, cpu.ABX, cpu.ABX, cpu.ABX, cpu.ABX,
	cpu.IMM, cpu.IDX, cpu.IMM, cpu.IDX, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.ZPG, cpu.IMP, cpu.IMM, cpu.IMP, cpu.IMM, cpu.ABS, cpu.ABS, cpu.ABS, cpu.ABS,
	cpu.REL, cpu.IDY, cpu.IMP, cpu.IDY, cpu.ZPX, cpu.ZPX, cpu.ZPX, cpu.ZPX, cpu.IMP, cpu.ABY, cpu.IMP, cpu.ABY, cpu.ABX, cpu.ABX, cpu.ABX, cpu.ABX,
}

var canonicalLengths = [256]byte{
	1, 2, 1, 2, 2, 2, 2, 2, 1, 2, 1, 2, 3, 3, 3, 3,
	2, 2, 1, 2, 2, 2, 2, 2, 1, 3, 1, 3, 3, 3, 3, 3,
	3, 2, 1, 2, 2, 2, 2, 2, 1, 2, 1, 2, 3, 3, 3, 3,
	2, 2, 1, 2, 2, 2, 2, 2, 1, 3, 1, 3, 3, 3, 3, 3,
	1, 2, 1, 2, 2, 2, 2, 2, 1, 2, 1, 2, 3, 3, 3, 3,
	2, 2, 1, 2, 2, 2, 2, 2, 1, 3, 1, 3, 3, 3, 3, 3,
	1, 2, 1, 2, 2, 2, 2, 2, 1, 2, 1, 2, 3, 3, 3, 3,
	2, 2, 1, 2, 2, 2, 2, 2, 1, 3, 1, 3, 3, 3, 3, 3,
	2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 1, 2, 3, 3, 3, 3,
	2, 2, 1, 2, 2, 2, 2, 2, 1, 3, 1, 3, 3, 3, 3, 3,
	2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 1, 2, 3, 3, 3, 3,
	2, 2, 1, 2, 2, 2, 2, 2, 1, 3, 1, 3, 3, 3, 3, 3,
	2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 1, 2, 3, 3, 3, 3,
	2, 2, 1, 2, 2, 2, 2, 2, 1, 3, 1, 3, 3, 3, 3, 3,
	2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 1, 2, 3, 3, 3, 3,
	2, 2, 1, 2, 2, 2, 2, 2, 1, 3, 1, 3, 3, 3, 3, 3,
}

var canonicalCycles = [256]byte{
	7, 6, 2, 8, 3, 3, 5, 5, 3, 2, 2, 2, 4, 4, 6, 6,
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 4, 4, 6, 6,
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	6, 6, 2, 8, 3, 3, 5, 5, 3, 2, 2, 2, 3, 4, 6, 6,
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 5, 4, 6, 6,
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4,
	2, 6, 2, 6, 4, 4, 4, 4, 2, 5, 2, 5, 5, 5, 5, 5,
	2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4,
	2, 5, 2, 5, 4, 4, 4, 4, 2, 4, 2, 4, 4, 4, 4, 4,
	2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6,
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6,
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
}

var canonicalPageCycles = [256]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 1,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0,
}

func TestInstructionTable(t *testing.T) {
	for _, arch := range []cpu.Architecture{cpu.Ricoh2A03, cpu.NMOS} {
		set := cpu.GetInstructionSet(arch)
		for i := 0; i < 256; i++ {
			inst := set.Lookup(byte(i))
			if inst == nil || inst.Name == "" {
				t.Fatalf("%v: missing instruction for opcode $%02X", arch, i)
			}
			if inst.Opcode != byte(i) {
				t.Errorf("%v: opcode incorrect. exp: $%02X, got: $%02X", arch, i, inst.Opcode)
			}
			if inst.Name != canonicalNames[i] {
				t.Errorf("$%02X: name incorrect. exp: %s, got: %s", i, canonicalNames[i], inst.Name)
			}
			if inst.Mode != canonicalModes[i] {
				t.Errorf("$%02X: mode incorrect. exp: %v, got: %v", i, canonicalModes[i], inst.Mode)
			}
			if inst.Length != canonicalLengths[i] {
				t.Errorf("$%02X: length incorrect. exp: %d, got: %d", i, canonicalLengths[i], inst.Length)
			}
			if inst.Cycles != canonicalCycles[i] {
				t.Errorf("$%02X: cycles incorrect. exp: %d, got: %d", i, canonicalCycles[i], inst.Cycles)
			}
			if inst.BPCycles != canonicalPageCycles[i] {
				t.Errorf("$%02X: page cycles incorrect. exp: %d, got: %d", i, canonicalPageCycles[i], inst.BPCycles)
			}
			if !inst.Implemented() {
				t.Errorf("$%02X: no handler", i)
			}
		}
	}
}

func TestHaltOpcodes(t *testing.T) {
	halts := map[byte]bool{
		0x02: true, 0x12: true, 0x22: true, 0x32: true, 0x42: true, 0x52: true,
		0x62: true, 0x72: true, 0x92: true, 0xb2: true, 0xd2: true, 0xf2: true,
	}

	set := cpu.GetInstructionSet(cpu.Ricoh2A03)
	for i := 0; i < 256; i++ {
		inst := set.Lookup(byte(i))
		if inst.Halts() != halts[byte(i)] {
			t.Errorf("$%02X: halt flag incorrect. exp: %v, got: %v", i, halts[byte(i)], inst.Halts())
		}
		if inst.Halts() && !inst.Unofficial() {
			t.Errorf("$%02X: halt opcode not marked unofficial", i)
		}
	}
}

func TestUnofficialCount(t *testing.T) {
	set := cpu.GetInstructionSet(cpu.Ricoh2A03)

	official := 0
	for i := 0; i < 256; i++ {
		if !set.Lookup(byte(i)).Unofficial() {
			official++
		}
	}
	if official != 151 {
		t.Errorf("official opcode count incorrect. exp: 151, got: %d", official)
	}

	if !set.Lookup(0xeb).Unofficial() || set.Lookup(0xe9).Unofficial() {
		t.Error("SBC $EB should be the only unofficial SBC")
	}
	if set.Lookup(0xea).Unofficial() || !set.Lookup(0x1a).Unofficial() {
		t.Error("NOP $EA should be the only official NOP")
	}
}

func TestStableInstructionSet(t *testing.T) {
	unstable := []byte{0x8b, 0xab, 0x93, 0x9f, 0x9b, 0x9c, 0x9e}

	set := cpu.GetStableInstructionSet(cpu.Ricoh2A03)
	for _, op := range unstable {
		inst := set.Lookup(op)
		if inst.Implemented() {
			t.Errorf("$%02X: unstable opcode has a handler", op)
		}
		if inst.Flags&cpu.Unstable == 0 {
			t.Errorf("$%02X: unstable flag missing", op)
		}
	}

	implemented := 0
	for i := 0; i < 256; i++ {
		if set.Lookup(byte(i)).Implemented() {
			implemented++
		}
	}
	if implemented != 256-len(unstable) {
		t.Errorf("implemented count incorrect. exp: %d, got: %d", 256-len(unstable), implemented)
	}
}

func TestGetInstructions(t *testing.T) {
	set := cpu.GetInstructionSet(cpu.Ricoh2A03)

	tests := []struct {
		name  string
		count int
	}{
		{"lda", 8},
		{"STA", 7},
		{"JMP", 2},
		{"kil", 12},
		{"NOP", 28},
		{"SBC", 9},
		{"XYZ", 0},
	}

	for _, test := range tests {
		got := len(set.GetInstructions(test.name))
		if got != test.count {
			t.Errorf("%s variants incorrect. exp: %d, got: %d", test.name, test.count, got)
		}
	}
}
