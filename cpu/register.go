// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Registers contains the state of all 2A03 registers.
type Registers struct {
	A  byte   // accumulator
	X  byte   // X indexing register
	Y  byte   // Y indexing register
	SP byte   // stack pointer ($100 + SP = stack memory location)
	PC uint16 // program counter
	P  Status // processor status
}

// Init sets the power-up register values. A, X, Y = 0. SP = $FD.
// PC = 0. Interrupts are disabled.
func (r *Registers) Init() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.SP = 0xfd
	r.PC = 0
	r.P = Reserved | InterruptDisable
}

// Update the Zero and Negative flags based on the value of 'v'.
func (r *Registers) updateNZ(v byte) {
	r.P.Set(Zero, v == 0)
	r.P.Set(Negative, v&0x80 != 0)
}
