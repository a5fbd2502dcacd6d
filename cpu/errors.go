// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrHalted is returned by Step when the CPU was halted by a KIL opcode
// and has not been reset since.
var ErrHalted = errors.New("cpu halted")

// A HaltError is returned by the step that executes a KIL opcode. It
// unwraps to ErrHalted.
type HaltError struct {
	Opcode byte   // the halting opcode
	Addr   uint16 // address of the opcode
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("cpu halted by opcode $%02X at $%04X", e.Opcode, e.Addr)
}

func (e *HaltError) Unwrap() error {
	return ErrHalted
}

// An UnimplementedError is returned by Step when the opcode at the program
// counter has no handler in the CPU's instruction set. The CPU state is
// left unchanged, so the caller may skip the instruction, substitute its
// own behavior or stop.
type UnimplementedError struct {
	Opcode byte   // the unhandled opcode
	Addr   uint16 // address of the opcode
	Name   string // instruction name
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("unimplemented opcode $%02X (%s) at $%04X", e.Opcode, e.Name, e.Addr)
}
