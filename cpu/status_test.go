// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/beevik/go2a03/cpu"
)

var allFlags = []cpu.Status{
	cpu.Carry, cpu.Zero, cpu.InterruptDisable, cpu.Decimal,
	cpu.Break, cpu.Reserved, cpu.Overflow, cpu.Negative,
}

func TestStatusSet(t *testing.T) {
	for _, f := range allFlags {
		var p cpu.Status
		p.Set(f, true)
		if !p.Contains(f) {
			t.Errorf("flag $%02X not set", byte(f))
		}
		for _, g := range allFlags {
			if g != f && p.Contains(g) {
				t.Errorf("setting $%02X also set $%02X", byte(f), byte(g))
			}
		}
		p.Set(f, false)
		if p != 0 {
			t.Errorf("flag $%02X not cleared, got $%02X", byte(f), byte(p))
		}
	}
}

func TestStatusByte(t *testing.T) {
	var p cpu.Status
	if p.Byte() != 0x20 {
		t.Errorf("Byte incorrect. exp: $20, got: $%02X", p.Byte())
	}

	p.Set(cpu.Carry, true)
	p.Set(cpu.Negative, true)
	if p.Byte() != 0xa1 {
		t.Errorf("Byte incorrect. exp: $A1, got: $%02X", p.Byte())
	}
}

func TestStatusSetByte(t *testing.T) {
	for v := 0; v < 256; v++ {
		var p cpu.Status
		p.SetByte(byte(v))
		if !p.Contains(cpu.Reserved) {
			t.Errorf("reserved bit clear after SetByte($%02X)", v)
		}
		if p.Byte() != byte(v)|0x20 {
			t.Errorf("round trip incorrect. exp: $%02X, got: $%02X", byte(v)|0x20, p.Byte())
		}
	}
}

func TestStatusString(t *testing.T) {
	var p cpu.Status
	p.SetByte(0xc3)
	if s := p.String(); s != "NV-bdiZC" {
		t.Errorf("String incorrect. exp: NV-bdiZC, got: %s", s)
	}

	p.SetByte(0x00)
	if s := p.String(); s != "nv-bdizc" {
		t.Errorf("String incorrect. exp: nv-bdizc, got: %s", s)
	}
}
