// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Status holds the processor status flags. Each flag occupies the bit it
// has in the status byte pushed to the stack.
type Status byte

// Processor status flags
const (
	Carry            Status = 1 << iota // carry out of bit 7
	Zero                                // result was zero
	InterruptDisable                    // IRQ masked
	Decimal                             // decimal mode (no effect on 2A03)
	Break                               // set in bytes pushed by BRK and PHP
	Reserved                            // always 1
	Overflow                            // signed overflow
	Negative                            // bit 7 of result
)

// Set sets or clears the flag f.
func (p *Status) Set(f Status, on bool) {
	if on {
		*p |= f
	} else {
		*p &^= f
	}
}

// Contains returns true if the flag f is set.
func (p Status) Contains(f Status) bool {
	return p&f != 0
}

// Byte packs the status into a byte with the reserved bit set.
func (p Status) Byte() byte {
	return byte(p | Reserved)
}

// SetByte unpacks all flags from v. The reserved bit is set regardless of
// its value in v.
func (p *Status) SetByte(v byte) {
	*p = Status(v) | Reserved
}

const statusChars = "czidb-vn"

// String returns the flags in NV-BDIZC order, upper case when set.
func (p Status) String() string {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		c := statusChars[7-i]
		if p.Byte()&(0x80>>i) != 0 && c != '-' {
			c -= 'a' - 'A'
		}
		buf[i] = c
	}
	return string(buf[:])
}

func boolToByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
