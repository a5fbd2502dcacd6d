// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/beevik/go2a03/cpu"
)

func TestLAX(t *testing.T) {
	c, mem := loadCPU(cpu.Ricoh2A03, origin, 0xa7, 0x10)
	mem.Write(0x0010, 0x8f)
	cycles := stepCPU(t, c, mem, 1)
	expectACC(t, c, 0x8f)
	expectX(t, c, 0x8f)
	expectFlag(t, c, cpu.Negative, "Negative", true)
	expectCycles(t, cycles, 3)
}

func TestSAX(t *testing.T) {
	c, mem := loadCPU(cpu.Ricoh2A03, origin, 0x87, 0x10)
	c.Reg.A, c.Reg.X = 0xf0, 0x3c
	p := c.Reg.P
	stepCPU(t, c, mem, 1)
	expectMem(t, mem, 0x0010, 0x30)
	if c.Reg.P != p {
		t.Errorf("SAX changed flags: %v", c.Reg.P)
	}
}

func TestReadModifyWriteCombined(t *testing.T) {
	tests := []struct {
		name    string
		opcode  byte
		a       byte
		carryIn bool
		m       byte
		wantM   byte
		wantA   byte
		carry   bool
	}{
		{"SLO", 0x07, 0x04, false, 0x81, 0x02, 0x06, true},
		{"RLA", 0x27, 0xff, false, 0x81, 0x02, 0x02, true},
		{"SRE", 0x47, 0x10, false, 0x03, 0x01, 0x11, true},
		{"RRA", 0x67, 0x10, true, 0x03, 0x81, 0x92, false},
		{"DCP", 0xc7, 0x40, false, 0x41, 0x40, 0x40, true},
		{"ISC", 0xe7, 0x20, true, 0x0f, 0x10, 0x10, true},
	}

	for _, test := range tests {
		c, mem := loadCPU(cpu.Ricoh2A03, origin, test.opcode, 0x10)
		mem.Write(0x0010, test.m)
		c.Reg.A = test.a
		c.Reg.P.Set(cpu.Carry, test.carryIn)

		cycles := stepCPU(t, c, mem, 1)
		if got := mem.Read(0x0010); got != test.wantM {
			t.Errorf("%s: memory incorrect. exp: $%02X, got: $%02X", test.name, test.wantM, got)
		}
		if c.Reg.A != test.wantA {
			t.Errorf("%s: accumulator incorrect. exp: $%02X, got: $%02X", test.name, test.wantA, c.Reg.A)
		}
		if c.Reg.P.Contains(cpu.Carry) != test.carry {
			t.Errorf("%s: carry incorrect. exp: %v", test.name, test.carry)
		}
		if cycles != 5 {
			t.Errorf("%s: cycles incorrect. exp: 5, got: %d", test.name, cycles)
		}
	}
}

func TestCombinedNoPagePenalty(t *testing.T) {
	// SLO $20F0,Y crossing a page still takes the base cycle count.
	c, mem := loadCPU(cpu.Ricoh2A03, origin, 0x1b, 0xf0, 0x20)
	c.Reg.Y = 0x20
	cycles := stepCPU(t, c, mem, 1)
	expectCycles(t, cycles, 7)
}

func TestImmediateCombined(t *testing.T) {
	tests := []struct {
		name     string
		code     []byte
		a, x     byte
		carryIn  bool
		wantA    byte
		wantX    byte
		carry    bool
		overflow bool
	}{
		{"ANC", []byte{0x0b, 0x80}, 0xff, 0, false, 0x80, 0, true, false},
		{"ANC alias", []byte{0x2b, 0x7f}, 0xff, 0, true, 0x7f, 0, false, false},
		{"ALR", []byte{0x4b, 0x03}, 0xff, 0, false, 0x01, 0, true, false},
		{"ARR carry", []byte{0x6b, 0xc0}, 0xff, 0, true, 0xe0, 0, true, false},
		{"ARR overflow", []byte{0x6b, 0x40}, 0xff, 0, false, 0x20, 0, false, true},
		{"AXS", []byte{0xcb, 0x02}, 0x0f, 0x0c, false, 0x0f, 0x0a, true, false},
		{"AXS borrow", []byte{0xcb, 0x02}, 0x00, 0xff, true, 0x00, 0xfe, false, false},
		{"SBC alias", []byte{0xeb, 0x03}, 0x05, 0, true, 0x02, 0, true, false},
		{"XAA", []byte{0x8b, 0xff}, 0x00, 0xff, false, 0xee, 0xff, false, false},
		{"LXA", []byte{0xab, 0x0f}, 0x00, 0x00, false, 0x0f, 0x0f, false, false},
	}

	for _, test := range tests {
		c, mem := loadCPU(cpu.Ricoh2A03, origin, test.code...)
		c.Reg.A, c.Reg.X = test.a, test.x
		c.Reg.P.Set(cpu.Carry, test.carryIn)

		cycles := stepCPU(t, c, mem, 1)
		if c.Reg.A != test.wantA {
			t.Errorf("%s: accumulator incorrect. exp: $%02X, got: $%02X", test.name, test.wantA, c.Reg.A)
		}
		if c.Reg.X != test.wantX {
			t.Errorf("%s: X incorrect. exp: $%02X, got: $%02X", test.name, test.wantX, c.Reg.X)
		}
		if c.Reg.P.Contains(cpu.Carry) != test.carry {
			t.Errorf("%s: carry incorrect. exp: %v", test.name, test.carry)
		}
		if c.Reg.P.Contains(cpu.Overflow) != test.overflow {
			t.Errorf("%s: overflow incorrect. exp: %v", test.name, test.overflow)
		}
		if cycles != 2 {
			t.Errorf("%s: cycles incorrect. exp: 2, got: %d", test.name, cycles)
		}
	}
}

func TestLAS(t *testing.T) {
	c, mem := loadCPU(cpu.Ricoh2A03, origin, 0xbb, 0x00, 0x20)
	mem.Write(0x2000, 0xf3)
	cycles := stepCPU(t, c, mem, 1)
	expectACC(t, c, 0xf1)
	expectX(t, c, 0xf1)
	expectSP(t, c, 0xf1)
	expectCycles(t, cycles, 4)
}

func TestStoreHigh(t *testing.T) {
	tests := []struct {
		name    string
		code    []byte
		a, x, y byte
		addr    uint16
		v       byte
		sp      byte
	}{
		{"SHX", []byte{0x9e, 0x00, 0x20}, 0, 0xff, 0x10, 0x2010, 0x21, 0xfd},
		{"SHX page cross", []byte{0x9e, 0xf0, 0x12}, 0, 0x05, 0x20, 0x0110, 0x01, 0xfd},
		{"SHY", []byte{0x9c, 0x00, 0x20}, 0, 0x10, 0xff, 0x2010, 0x21, 0xfd},
		{"AHX abs,Y", []byte{0x9f, 0x00, 0x20}, 0xf3, 0x7f, 0x10, 0x2010, 0x21, 0xfd},
		{"AHX (zp),Y", []byte{0x93, 0x30}, 0xf3, 0x7f, 0x10, 0x2010, 0x21, 0xfd},
		{"TAS", []byte{0x9b, 0x00, 0x20}, 0xf3, 0x7f, 0x10, 0x2010, 0x21, 0x73},
	}

	for _, test := range tests {
		c, mem := loadCPU(cpu.Ricoh2A03, origin, test.code...)
		mem.StoreAddress(0x0030, 0x2000)
		c.Reg.A, c.Reg.X, c.Reg.Y = test.a, test.x, test.y

		stepCPU(t, c, mem, 1)
		if got := mem.Read(test.addr); got != test.v {
			t.Errorf("%s: memory at $%04X incorrect. exp: $%02X, got: $%02X", test.name, test.addr, test.v, got)
		}
		if c.Reg.SP != test.sp {
			t.Errorf("%s: SP incorrect. exp: $%02X, got: $%02X", test.name, test.sp, c.Reg.SP)
		}
	}
}

func TestUnofficialNOP(t *testing.T) {
	tests := []struct {
		name   string
		code   []byte
		x      byte
		length uint16
		cycles uint32
	}{
		{"NOP", []byte{0x1a}, 0, 1, 2},
		{"NOP #imm", []byte{0x80, 0xff}, 0, 2, 2},
		{"NOP zp", []byte{0x04, 0x10}, 0, 2, 3},
		{"NOP zp,X", []byte{0x14, 0x10}, 0, 2, 4},
		{"NOP abs", []byte{0x0c, 0x00, 0x20}, 0, 3, 4},
		{"NOP abs,X", []byte{0x1c, 0xf0, 0x20}, 0x01, 3, 4},
		{"NOP abs,X cross", []byte{0x1c, 0xf0, 0x20}, 0x20, 3, 5},
	}

	for _, test := range tests {
		c, mem := loadCPU(cpu.Ricoh2A03, origin, test.code...)
		c.Reg.X = test.x
		reg := c.Reg

		cycles := stepCPU(t, c, mem, 1)
		if c.Reg.PC != origin+test.length {
			t.Errorf("%s: PC incorrect. exp: $%04X, got: $%04X", test.name, origin+test.length, c.Reg.PC)
		}
		if cycles != test.cycles {
			t.Errorf("%s: cycles incorrect. exp: %d, got: %d", test.name, test.cycles, cycles)
		}
		reg.PC = c.Reg.PC
		if c.Reg != reg {
			t.Errorf("%s: registers changed: %+v", test.name, c.Reg)
		}
	}
}
