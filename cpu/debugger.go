// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"cmp"
	"maps"
	"slices"
)

// A Debugger is attached to a CPU with AttachDebugger. After every Step it
// is shown the new program counter, and before every bus write it is shown
// the target address and value. Hits are forwarded to a BreakpointHandler.
type Debugger struct {
	breakpointHandler BreakpointHandler
	breakpoints       map[uint16]*Breakpoint
	dataBreakpoints   map[uint16]*DataBreakpoint
}

// A BreakpointHandler receives breakpoint hits. Handlers run inside Step:
// an execution hit arrives once the instruction (or interrupt entry) has
// completed, a data hit arrives before the byte reaches the bus.
type BreakpointHandler interface {
	OnBreakpoint(cpu *CPU, b *Breakpoint)
	OnDataBreakpoint(cpu *CPU, b *DataBreakpoint)
}

// A Breakpoint fires when a step leaves the program counter on Address.
// This includes the vector target of a serviced NMI or IRQ.
type Breakpoint struct {
	Address  uint16
	Disabled bool // ignored unless StepOver is set
	StepOver bool // owned by the host's step-over; fires even when Disabled
}

// A DataBreakpoint fires on CPU writes to Address. Every write counts:
// stores, read-modify-write results, stack pushes from JSR, PHA, PHP,
// BRK and interrupt entry, and the unofficial SAX/SHX/SHY/AHX/TAS stores.
type DataBreakpoint struct {
	Address     uint16
	Disabled    bool
	Conditional bool // fire only when Value is written
	Value       byte
}

// NewDebugger creates a debugger reporting to breakpointHandler.
func NewDebugger(breakpointHandler BreakpointHandler) *Debugger {
	return &Debugger{
		breakpointHandler: breakpointHandler,
		breakpoints:       make(map[uint16]*Breakpoint),
		dataBreakpoints:   make(map[uint16]*DataBreakpoint),
	}
}

// GetBreakpoint returns the breakpoint at addr, or nil.
func (d *Debugger) GetBreakpoint(addr uint16) *Breakpoint {
	return d.breakpoints[addr]
}

// GetBreakpoints returns all breakpoints in address order.
func (d *Debugger) GetBreakpoints() []*Breakpoint {
	return slices.SortedFunc(maps.Values(d.breakpoints), func(a, b *Breakpoint) int {
		return cmp.Compare(a.Address, b.Address)
	})
}

// AddBreakpoint sets an enabled breakpoint at addr, replacing any
// breakpoint already there.
func (d *Debugger) AddBreakpoint(addr uint16) *Breakpoint {
	b := &Breakpoint{Address: addr}
	d.breakpoints[addr] = b
	return b
}

func (d *Debugger) RemoveBreakpoint(addr uint16) {
	delete(d.breakpoints, addr)
}

// GetDataBreakpoint returns the data breakpoint at addr, or nil.
func (d *Debugger) GetDataBreakpoint(addr uint16) *DataBreakpoint {
	return d.dataBreakpoints[addr]
}

// GetDataBreakpoints returns all data breakpoints in address order.
func (d *Debugger) GetDataBreakpoints() []*DataBreakpoint {
	return slices.SortedFunc(maps.Values(d.dataBreakpoints), func(a, b *DataBreakpoint) int {
		return cmp.Compare(a.Address, b.Address)
	})
}

// AddDataBreakpoint watches every write to addr.
func (d *Debugger) AddDataBreakpoint(addr uint16) *DataBreakpoint {
	b := &DataBreakpoint{Address: addr}
	d.dataBreakpoints[addr] = b
	return b
}

// AddConditionalDataBreakpoint watches writes of value to addr.
func (d *Debugger) AddConditionalDataBreakpoint(addr uint16, value byte) *DataBreakpoint {
	b := &DataBreakpoint{Address: addr, Conditional: true, Value: value}
	d.dataBreakpoints[addr] = b
	return b
}

func (d *Debugger) RemoveDataBreakpoint(addr uint16) {
	delete(d.dataBreakpoints, addr)
}

func (d *Debugger) onUpdatePC(cpu *CPU, addr uint16) {
	if d.breakpointHandler == nil {
		return
	}
	b, ok := d.breakpoints[addr]
	if ok && (!b.Disabled || b.StepOver) {
		d.breakpointHandler.OnBreakpoint(cpu, b)
	}
}

func (d *Debugger) onDataStore(cpu *CPU, addr uint16, v byte) {
	if d.breakpointHandler == nil {
		return
	}
	b, ok := d.dataBreakpoints[addr]
	if ok && !b.Disabled && (!b.Conditional || b.Value == v) {
		d.breakpointHandler.OnDataBreakpoint(cpu, b)
	}
}
