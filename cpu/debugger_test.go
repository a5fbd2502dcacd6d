// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/beevik/go2a03/cpu"
)

type recorder struct {
	breaks     []uint16
	dataBreaks []uint16
}

func (r *recorder) OnBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	r.breaks = append(r.breaks, b.Address)
}

func (r *recorder) OnDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	r.dataBreaks = append(r.dataBreaks, b.Address)
}

func TestBreakpoint(t *testing.T) {
	// NOP; NOP; NOP
	c, mem := loadCPU(cpu.Ricoh2A03, origin, 0xea, 0xea, 0xea)
	r := &recorder{}
	d := cpu.NewDebugger(r)
	c.AttachDebugger(d)

	d.AddBreakpoint(0x8002)
	d.AddBreakpoint(0x8001).Disabled = true

	stepCPU(t, c, mem, 3)
	if len(r.breaks) != 1 || r.breaks[0] != 0x8002 {
		t.Errorf("breakpoints incorrect: %v", r.breaks)
	}

	d.RemoveBreakpoint(0x8002)
	if d.GetBreakpoint(0x8002) != nil {
		t.Error("breakpoint not removed")
	}

	c.DetachDebugger()
	c.SetPC(origin)
	d.AddBreakpoint(0x8001)
	stepCPU(t, c, mem, 1)
	if len(r.breaks) != 1 {
		t.Errorf("detached debugger still notified: %v", r.breaks)
	}
}

func TestDataBreakpoint(t *testing.T) {
	// LDA #$01; STA $10; LDA #$02; STA $10; STA $11
	c, mem := loadCPU(cpu.Ricoh2A03, origin, 0xa9, 0x01, 0x85, 0x10, 0xa9, 0x02, 0x85, 0x10, 0x85, 0x11)
	r := &recorder{}
	d := cpu.NewDebugger(r)
	c.AttachDebugger(d)

	d.AddConditionalDataBreakpoint(0x0010, 0x02)
	d.AddDataBreakpoint(0x0011).Disabled = true

	stepCPU(t, c, mem, 2)
	if len(r.dataBreaks) != 0 {
		t.Errorf("conditional data breakpoint triggered early: %v", r.dataBreaks)
	}

	stepCPU(t, c, mem, 3)
	if len(r.dataBreaks) != 1 || r.dataBreaks[0] != 0x0010 {
		t.Errorf("data breakpoints incorrect: %v", r.dataBreaks)
	}
	expectMem(t, mem, 0x0011, 0x02)
}

func TestGetBreakpointsSorted(t *testing.T) {
	d := cpu.NewDebugger(nil)
	for _, addr := range []uint16{0x9000, 0x1000, 0x5000} {
		d.AddBreakpoint(addr)
		d.AddDataBreakpoint(addr + 1)
	}

	bps := d.GetBreakpoints()
	if len(bps) != 3 || bps[0].Address != 0x1000 || bps[1].Address != 0x5000 || bps[2].Address != 0x9000 {
		t.Errorf("breakpoints not sorted")
	}

	dbps := d.GetDataBreakpoints()
	if len(dbps) != 3 || dbps[0].Address != 0x1001 || dbps[2].Address != 0x9001 {
		t.Errorf("data breakpoints not sorted")
	}
}

func TestInterruptBreakpoint(t *testing.T) {
	c, mem := loadCPU(cpu.Ricoh2A03, origin, 0xea)
	mem.StoreAddress(0xfffa, 0x9100)
	r := &recorder{}
	d := cpu.NewDebugger(r)
	c.AttachDebugger(d)
	d.AddBreakpoint(0x9100)

	c.NMI()
	stepCPU(t, c, mem, 1)
	if len(r.breaks) != 1 || r.breaks[0] != 0x9100 {
		t.Errorf("interrupt entry did not trigger breakpoint: %v", r.breaks)
	}
}

func TestStepOverBreakpointIgnoresDisabled(t *testing.T) {
	// NOP; NOP
	c, mem := loadCPU(cpu.Ricoh2A03, origin, 0xea, 0xea)
	r := &recorder{}
	d := cpu.NewDebugger(r)
	c.AttachDebugger(d)

	b := d.AddBreakpoint(0x8001)
	b.Disabled = true
	b.StepOver = true

	stepCPU(t, c, mem, 1)
	if len(r.breaks) != 1 || r.breaks[0] != 0x8001 {
		t.Errorf("step-over breakpoint on a disabled breakpoint did not fire: %v", r.breaks)
	}
}

func TestInterruptPushDataBreakpoint(t *testing.T) {
	c, mem := loadCPU(cpu.Ricoh2A03, origin, 0xea)
	mem.StoreAddress(0xfffa, 0x9100)
	r := &recorder{}
	d := cpu.NewDebugger(r)
	c.AttachDebugger(d)

	// NMI entry pushes PCH to $01FD, PCL to $01FC and P to $01FB.
	d.AddDataBreakpoint(0x01fb)

	c.NMI()
	stepCPU(t, c, mem, 1)
	if len(r.dataBreaks) != 1 || r.dataBreaks[0] != 0x01fb {
		t.Errorf("interrupt push did not trigger data breakpoint: %v", r.dataBreaks)
	}
}
