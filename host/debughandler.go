// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/go2a03/cpu"

// The debugHandler receives breakpoint notifications from the cpu debugger
// and stops the host's run loop.
type debugHandler struct {
	host *Host
}

func newDebugHandler(h *Host) *debugHandler {
	return &debugHandler{host: h}
}

func (d *debugHandler) OnBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	h := d.host
	if b.StepOver {
		h.state = stateStepOverBreakpoint
		return
	}

	h.state = stateBreakpoint
	h.printf("Breakpoint hit at $%04X.\n", b.Address)
	h.displayPC()
}

func (d *debugHandler) OnDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	h := d.host
	h.printf("Data breakpoint hit on address $%04X.\n", b.Address)
	h.state = stateBreakpoint

	// The store happens mid-instruction, so show the instruction that
	// triggered it along with the next one.
	if c.LastPC != c.Reg.PC && h.interactive {
		line, _ := h.disassemble(c.LastPC, displayAll)
		h.println(line)
	}
	h.displayPC()
}
