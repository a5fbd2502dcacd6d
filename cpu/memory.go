// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// The Bus interface presents an interface to the CPU through which all
// memory accesses occur. Reads and writes must be defined for every
// 16-bit address; mirroring and mapping are the bus's concern.
type Bus interface {
	// Read loads a single byte from the address and returns it.
	Read(addr uint16) byte

	// Write stores a byte to the requested address.
	Write(addr uint16, v byte)
}

// FlatMemory represents an entire 16-bit address space as a singular
// 64K buffer.
type FlatMemory struct {
	b [64 * 1024]byte
}

// NewFlatMemory creates a new 16-bit memory space.
func NewFlatMemory() *FlatMemory {
	return &FlatMemory{}
}

// Read loads a single byte from the address and returns it.
func (m *FlatMemory) Read(addr uint16) byte {
	return m.b[addr]
}

// Write stores a byte at the requested address.
func (m *FlatMemory) Write(addr uint16, v byte) {
	m.b[addr] = v
}

// LoadBytes loads multiple bytes from the address into b. Reads past the
// end of the address space wrap to $0000.
func (m *FlatMemory) LoadBytes(addr uint16, b []byte) {
	for i := range b {
		b[i] = m.b[addr+uint16(i)]
	}
}

// StoreBytes stores multiple bytes to the requested address, wrapping
// at the end of the address space.
func (m *FlatMemory) StoreBytes(addr uint16, b []byte) {
	for i, v := range b {
		m.b[addr+uint16(i)] = v
	}
}

// StoreAddress stores a little-endian 16-bit value at addr and addr+1.
func (m *FlatMemory) StoreAddress(addr uint16, v uint16) {
	m.b[addr] = byte(v)
	m.b[addr+1] = byte(v >> 8)
}

// ReadAddress reads a little-endian 16-bit value from addr and addr+1.
func ReadAddress(bus Bus, addr uint16) uint16 {
	return uint16(bus.Read(addr)) | uint16(bus.Read(addr+1))<<8
}

// Read a 16-bit value whose high byte comes from the same page as the low
// byte. JMP ($12FF) reads its target from $12FF and $1200.
func readAddressPageWrapped(bus Bus, addr uint16) uint16 {
	hiAddr := (addr & 0xff00) | ((addr + 1) & 0x00ff)
	return uint16(bus.Read(addr)) | uint16(bus.Read(hiAddr))<<8
}

// Return the offset address 'addr' + 'offset'. If the offset
// crossed a page boundary, return 'pageCrossed' as true.
func offsetAddress(addr uint16, offset byte) (newAddr uint16, pageCrossed bool) {
	newAddr = addr + uint16(offset)
	pageCrossed = ((newAddr & 0xff00) != (addr & 0xff00))
	return newAddr, pageCrossed
}

// Offset a zero-page address 'addr' by 'offset'. The result stays in
// page zero.
func offsetZeroPage(addr byte, offset byte) uint16 {
	return uint16(addr + offset)
}

// Convert a 1- or 2-byte operand into an address.
func operandToAddress(operand []byte) uint16 {
	switch {
	case len(operand) == 1:
		return uint16(operand[0])
	case len(operand) == 2:
		return uint16(operand[0]) | uint16(operand[1])<<8
	}
	return 0
}

// Given a 1-byte stack pointer register, return the stack
// corresponding memory address.
func stackAddress(offset byte) uint16 {
	return uint16(0x100) + uint16(offset)
}
