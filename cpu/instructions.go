// Copyright 2014-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "strings"

// An opsym is an internal symbol used to associate an opcode's data
// with its instructions.
type opsym byte

const (
	symADC opsym = iota
	symAND
	symASL
	symBCC
	symBCS
	symBEQ
	symBIT
	symBMI
	symBNE
	symBPL
	symBRK
	symBVC
	symBVS
	symCLC
	symCLD
	symCLI
	symCLV
	symCMP
	symCPX
	symCPY
	symDEC
	symDEX
	symDEY
	symEOR
	symINC
	symINX
	symINY
	symJMP
	symJSR
	symLDA
	symLDX
	symLDY
	symLSR
	symNOP
	symORA
	symPHA
	symPHP
	symPLA
	symPLP
	symROL
	symROR
	symRTI
	symRTS
	symSBC
	symSEC
	symSED
	symSEI
	symSTA
	symSTX
	symSTY
	symTAX
	symTAY
	symTSX
	symTXA
	symTXS
	symTYA

	// unofficial
	symAHX
	symALR
	symANC
	symARR
	symAXS
	symDCP
	symISC
	symKIL
	symLAS
	symLAX
	symLXA
	symRLA
	symRRA
	symSAX
	symSHX
	symSHY
	symSLO
	symSRE
	symTAS
	symXAA
)

type instfunc func(c *CPU, inst *Instruction, op Operand)

// Emulator implementation for each opcode symbol. Architectures share
// handlers; decimal-mode arithmetic is selected inside adc and sbc.
type opcodeImpl struct {
	sym  opsym
	name string
	fn   instfunc
}

var impl = []opcodeImpl{
	{symADC, "ADC", (*CPU).adc},
	{symAND, "AND", (*CPU).and},
	{symASL, "ASL", (*CPU).asl},
	{symBCC, "BCC", (*CPU).bcc},
	{symBCS, "BCS", (*CPU).bcs},
	{symBEQ, "BEQ", (*CPU).beq},
	{symBIT, "BIT", (*CPU).bit},
	{symBMI, "BMI", (*CPU).bmi},
	{symBNE, "BNE", (*CPU).bne},
	{symBPL, "BPL", (*CPU).bpl},
	{symBRK, "BRK", (*CPU).brk},
	{symBVC, "BVC", (*CPU).bvc},
	{symBVS, "BVS", (*CPU).bvs},
	{symCLC, "CLC", (*CPU).clc},
	{symCLD, "CLD", (*CPU).cld},
	{symCLI, "CLI", (*CPU).cli},
	{symCLV, "CLV", (*CPU).clv},
	{symCMP, "CMP", (*CPU).cmp},
	{symCPX, "CPX", (*CPU).cpx},
	{symCPY, "CPY", (*CPU).cpy},
	{symDEC, "DEC", (*CPU).dec},
	{symDEX, "DEX", (*CPU).dex},
	{symDEY, "DEY", (*CPU).dey},
	{symEOR, "EOR", (*CPU).eor},
	{symINC, "INC", (*CPU).inc},
	{symINX, "INX", (*CPU).inx},
	{symINY, "INY", (*CPU).iny},
	{symJMP, "JMP", (*CPU).jmp},
	{symJSR, "JSR", (*CPU).jsr},
	{symLDA, "LDA", (*CPU).lda},
	{symLDX, "LDX", (*CPU).ldx},
	{symLDY, "LDY", (*CPU).ldy},
	{symLSR, "LSR", (*CPU).lsr},
	{symNOP, "NOP", (*CPU).nop},
	{symORA, "ORA", (*CPU).ora},
	{symPHA, "PHA", (*CPU).pha},
	{symPHP, "PHP", (*CPU).php},
	{symPLA, "PLA", (*CPU).pla},
	{symPLP, "PLP", (*CPU).plp},
	{symROL, "ROL", (*CPU).rol},
	{symROR, "ROR", (*CPU).ror},
	{symRTI, "RTI", (*CPU).rti},
	{symRTS, "RTS", (*CPU).rts},
	{symSBC, "SBC", (*CPU).sbc},
	{symSEC, "SEC", (*CPU).sec},
	{symSED, "SED", (*CPU).sed},
	{symSEI, "SEI", (*CPU).sei},
	{symSTA, "STA", (*CPU).sta},
	{symSTX, "STX", (*CPU).stx},
	{symSTY, "STY", (*CPU).sty},
	{symTAX, "TAX", (*CPU).tax},
	{symTAY, "TAY", (*CPU).tay},
	{symTSX, "TSX", (*CPU).tsx},
	{symTXA, "TXA", (*CPU).txa},
	{symTXS, "TXS", (*CPU).txs},
	{symTYA, "TYA", (*CPU).tya},

	{symAHX, "AHX", (*CPU).ahx},
	{symALR, "ALR", (*CPU).alr},
	{symANC, "ANC", (*CPU).anc},
	{symARR, "ARR", (*CPU).arr},
	{symAXS, "AXS", (*CPU).axs},
	{symDCP, "DCP", (*CPU).dcp},
	{symISC, "ISC", (*CPU).isc},
	{symKIL, "KIL", (*CPU).kil},
	{symLAS, "LAS", (*CPU).las},
	{symLAX, "LAX", (*CPU).lax},
	{symLXA, "LXA", (*CPU).lxa},
	{symRLA, "RLA", (*CPU).rla},
	{symRRA, "RRA", (*CPU).rra},
	{symSAX, "SAX", (*CPU).sax},
	{symSHX, "SHX", (*CPU).shx},
	{symSHY, "SHY", (*CPU).shy},
	{symSLO, "SLO", (*CPU).slo},
	{symSRE, "SRE", (*CPU).sre},
	{symTAS, "TAS", (*CPU).tas},
	{symXAA, "XAA", (*CPU).xaa},
}

// Mode describes a memory addressing mode.
type Mode byte

// All possible memory addressing modes
const (
	IMM Mode = iota // Immediate
	IMP             // Implied (no operand)
	REL             // Relative
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect)
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
	ACC             // Accumulator (no operand)
)

// Combined size of opcode and operand for each addressing mode.
var modeLength = [...]byte{
	IMM: 2,
	IMP: 1,
	REL: 2,
	ZPG: 2,
	ZPX: 2,
	ZPY: 2,
	ABS: 3,
	ABX: 3,
	ABY: 3,
	IND: 3,
	IDX: 2,
	IDY: 2,
	ACC: 1,
}

var modeName = [...]string{
	IMM: "Immediate",
	IMP: "Implied",
	REL: "Relative",
	ZPG: "ZeroPage",
	ZPX: "ZeroPageX",
	ZPY: "ZeroPageY",
	ABS: "Absolute",
	ABX: "AbsoluteX",
	ABY: "AbsoluteY",
	IND: "Indirect",
	IDX: "IndirectX",
	IDY: "IndirectY",
	ACC: "Accumulator",
}

func (m Mode) String() string {
	if int(m) < len(modeName) {
		return modeName[m]
	}
	return "Mode(?)"
}

// InstFlags describe properties of an opcode beyond its mode and timing.
type InstFlags byte

const (
	// Unofficial opcodes are undocumented by the manufacturer.
	Unofficial InstFlags = 1 << iota

	// Halt opcodes (KIL/JAM) stop the processor until it is reset.
	Halt

	// Unstable opcodes produce results that depend on analog effects of
	// the chip. They are only executed when the CPU allows them.
	Unstable
)

// Opcode data for an (opcode, mode) pair
type opcodeData struct {
	sym      opsym     // internal opcode symbol
	mode     Mode      // addressing mode
	opcode   byte      // opcode hex value
	cycles   byte      // number of CPU cycles to execute command
	bpcycles byte      // additional CPU cycles if command crosses page boundary
	flags    InstFlags // unofficial, halt, unstable
}

// All 256 (opcode, mode) pairs
var data = []opcodeData{
	{symADC, IDX, 0x61, 6, 0, 0},
	{symADC, ZPG, 0x65, 3, 0, 0},
	{symADC, IMM, 0x69, 2, 0, 0},
	{symADC, ABS, 0x6d, 4, 0, 0},
	{symADC, IDY, 0x71, 5, 1, 0},
	{symADC, ZPX, 0x75, 4, 0, 0},
	{symADC, ABY, 0x79, 4, 1, 0},
	{symADC, ABX, 0x7d, 4, 1, 0},

	{symAND, IDX, 0x21, 6, 0, 0},
	{symAND, ZPG, 0x25, 3, 0, 0},
	{symAND, IMM, 0x29, 2, 0, 0},
	{symAND, ABS, 0x2d, 4, 0, 0},
	{symAND, IDY, 0x31, 5, 1, 0},
	{symAND, ZPX, 0x35, 4, 0, 0},
	{symAND, ABY, 0x39, 4, 1, 0},
	{symAND, ABX, 0x3d, 4, 1, 0},

	{symASL, ZPG, 0x06, 5, 0, 0},
	{symASL, ACC, 0x0a, 2, 0, 0},
	{symASL, ABS, 0x0e, 6, 0, 0},
	{symASL, ZPX, 0x16, 6, 0, 0},
	{symASL, ABX, 0x1e, 7, 0, 0},

	{symBCC, REL, 0x90, 2, 1, 0},

	{symBCS, REL, 0xb0, 2, 1, 0},

	{symBEQ, REL, 0xf0, 2, 1, 0},

	{symBIT, ZPG, 0x24, 3, 0, 0},
	{symBIT, ABS, 0x2c, 4, 0, 0},

	{symBMI, REL, 0x30, 2, 1, 0},

	{symBNE, REL, 0xd0, 2, 1, 0},

	{symBPL, REL, 0x10, 2, 1, 0},

	{symBRK, IMP, 0x00, 7, 0, 0},

	{symBVC, REL, 0x50, 2, 1, 0},

	{symBVS, REL, 0x70, 2, 1, 0},

	{symCLC, IMP, 0x18, 2, 0, 0},

	{symCLD, IMP, 0xd8, 2, 0, 0},

	{symCLI, IMP, 0x58, 2, 0, 0},

	{symCLV, IMP, 0xb8, 2, 0, 0},

	{symCMP, IDX, 0xc1, 6, 0, 0},
	{symCMP, ZPG, 0xc5, 3, 0, 0},
	{symCMP, IMM, 0xc9, 2, 0, 0},
	{symCMP, ABS, 0xcd, 4, 0, 0},
	{symCMP, IDY, 0xd1, 5, 1, 0},
	{symCMP, ZPX, 0xd5, 4, 0, 0},
	{symCMP, ABY, 0xd9, 4, 1, 0},
	{symCMP, ABX, 0xdd, 4, 1, 0},

	{symCPX, IMM, 0xe0, 2, 0, 0},
	{symCPX, ZPG, 0xe4, 3, 0, 0},
	{symCPX, ABS, 0xec, 4, 0, 0},

	{symCPY, IMM, 0xc0, 2, 0, 0},
	{symCPY, ZPG, 0xc4, 3, 0, 0},
	{symCPY, ABS, 0xcc, 4, 0, 0},

	{symDEC, ZPG, 0xc6, 5, 0, 0},
	{symDEC, ABS, 0xce, 6, 0, 0},
	{symDEC, ZPX, 0xd6, 6, 0, 0},
	{symDEC, ABX, 0xde, 7, 0, 0},

	{symDEX, IMP, 0xca, 2, 0, 0},

	{symDEY, IMP, 0x88, 2, 0, 0},

	{symEOR, IDX, 0x41, 6, 0, 0},
	{symEOR, ZPG, 0x45, 3, 0, 0},
	{symEOR, IMM, 0x49, 2, 0, 0},
	{symEOR, ABS, 0x4d, 4, 0, 0},
	{symEOR, IDY, 0x51, 5, 1, 0},
	{symEOR, ZPX, 0x55, 4, 0, 0},
	{symEOR, ABY, 0x59, 4, 1, 0},
	{symEOR, ABX, 0x5d, 4, 1, 0},

	{symINC, ZPG, 0xe6, 5, 0, 0},
	{symINC, ABS, 0xee, 6, 0, 0},
	{symINC, ZPX, 0xf6, 6, 0, 0},
	{symINC, ABX, 0xfe, 7, 0, 0},

	{symINX, IMP, 0xe8, 2, 0, 0},

	{symINY, IMP, 0xc8, 2, 0, 0},

	{symJMP, ABS, 0x4c, 3, 0, 0},
	{symJMP, IND, 0x6c, 5, 0, 0},

	{symJSR, ABS, 0x20, 6, 0, 0},

	{symLDA, IDX, 0xa1, 6, 0, 0},
	{symLDA, ZPG, 0xa5, 3, 0, 0},
	{symLDA, IMM, 0xa9, 2, 0, 0},
	{symLDA, ABS, 0xad, 4, 0, 0},
	{symLDA, IDY, 0xb1, 5, 1, 0},
	{symLDA, ZPX, 0xb5, 4, 0, 0},
	{symLDA, ABY, 0xb9, 4, 1, 0},
	{symLDA, ABX, 0xbd, 4, 1, 0},

	{symLDX, IMM, 0xa2, 2, 0, 0},
	{symLDX, ZPG, 0xa6, 3, 0, 0},
	{symLDX, ABS, 0xae, 4, 0, 0},
	{symLDX, ZPY, 0xb6, 4, 0, 0},
	{symLDX, ABY, 0xbe, 4, 1, 0},

	{symLDY, IMM, 0xa0, 2, 0, 0},
	{symLDY, ZPG, 0xa4, 3, 0, 0},
	{symLDY, ABS, 0xac, 4, 0, 0},
	{symLDY, ZPX, 0xb4, 4, 0, 0},
	{symLDY, ABX, 0xbc, 4, 1, 0},

	{symLSR, ZPG, 0x46, 5, 0, 0},
	{symLSR, ACC, 0x4a, 2, 0, 0},
	{symLSR, ABS, 0x4e, 6, 0, 0},
	{symLSR, ZPX, 0x56, 6, 0, 0},
	{symLSR, ABX, 0x5e, 7, 0, 0},

	{symNOP, ZPG, 0x04, 3, 0, Unofficial},
	{symNOP, ABS, 0x0c, 4, 0, Unofficial},
	{symNOP, ZPX, 0x14, 4, 0, Unofficial},
	{symNOP, IMP, 0x1a, 2, 0, Unofficial},
	{symNOP, ABX, 0x1c, 4, 1, Unofficial},
	{symNOP, ZPX, 0x34, 4, 0, Unofficial},
	{symNOP, IMP, 0x3a, 2, 0, Unofficial},
	{symNOP, ABX, 0x3c, 4, 1, Unofficial},
	{symNOP, ZPG, 0x44, 3, 0, Unofficial},
	{symNOP, ZPX, 0x54, 4, 0, Unofficial},
	{symNOP, IMP, 0x5a, 2, 0, Unofficial},
	{symNOP, ABX, 0x5c, 4, 1, Unofficial},
	{symNOP, ZPG, 0x64, 3, 0, Unofficial},
	{symNOP, ZPX, 0x74, 4, 0, Unofficial},
	{symNOP, IMP, 0x7a, 2, 0, Unofficial},
	{symNOP, ABX, 0x7c, 4, 1, Unofficial},
	{symNOP, IMM, 0x80, 2, 0, Unofficial},
	{symNOP, IMM, 0x82, 2, 0, Unofficial},
	{symNOP, IMM, 0x89, 2, 0, Unofficial},
	{symNOP, IMM, 0xc2, 2, 0, Unofficial},
	{symNOP, ZPX, 0xd4, 4, 0, Unofficial},
	{symNOP, IMP, 0xda, 2, 0, Unofficial},
	{symNOP, ABX, 0xdc, 4, 1, Unofficial},
	{symNOP, IMM, 0xe2, 2, 0, Unofficial},
	{symNOP, IMP, 0xea, 2, 0, 0},
	{symNOP, ZPX, 0xf4, 4, 0, Unofficial},
	{symNOP, IMP, 0xfa, 2, 0, Unofficial},
	{symNOP, ABX, 0xfc, 4, 1, Unofficial},

	{symORA, IDX, 0x01, 6, 0, 0},
	{symORA, ZPG, 0x05, 3, 0, 0},
	{symORA, IMM, 0x09, 2, 0, 0},
	{symORA, ABS, 0x0d, 4, 0, 0},
	{symORA, IDY, 0x11, 5, 1, 0},
	{symORA, ZPX, 0x15, 4, 0, 0},
	{symORA, ABY, 0x19, 4, 1, 0},
	{symORA, ABX, 0x1d, 4, 1, 0},

	{symPHA, IMP, 0x48, 3, 0, 0},

	{symPHP, IMP, 0x08, 3, 0, 0},

	{symPLA, IMP, 0x68, 4, 0, 0},

	{symPLP, IMP, 0x28, 4, 0, 0},

	{symROL, ZPG, 0x26, 5, 0, 0},
	{symROL, ACC, 0x2a, 2, 0, 0},
	{symROL, ABS, 0x2e, 6, 0, 0},
	{symROL, ZPX, 0x36, 6, 0, 0},
	{symROL, ABX, 0x3e, 7, 0, 0},

	{symROR, ZPG, 0x66, 5, 0, 0},
	{symROR, ACC, 0x6a, 2, 0, 0},
	{symROR, ABS, 0x6e, 6, 0, 0},
	{symROR, ZPX, 0x76, 6, 0, 0},
	{symROR, ABX, 0x7e, 7, 0, 0},

	{symRTI, IMP, 0x40, 6, 0, 0},

	{symRTS, IMP, 0x60, 6, 0, 0},

	{symSBC, IDX, 0xe1, 6, 0, 0},
	{symSBC, ZPG, 0xe5, 3, 0, 0},
	{symSBC, IMM, 0xe9, 2, 0, 0},
	{symSBC, IMM, 0xeb, 2, 0, Unofficial},
	{symSBC, ABS, 0xed, 4, 0, 0},
	{symSBC, IDY, 0xf1, 5, 1, 0},
	{symSBC, ZPX, 0xf5, 4, 0, 0},
	{symSBC, ABY, 0xf9, 4, 1, 0},
	{symSBC, ABX, 0xfd, 4, 1, 0},

	{symSEC, IMP, 0x38, 2, 0, 0},

	{symSED, IMP, 0xf8, 2, 0, 0},

	{symSEI, IMP, 0x78, 2, 0, 0},

	{symSTA, IDX, 0x81, 6, 0, 0},
	{symSTA, ZPG, 0x85, 3, 0, 0},
	{symSTA, ABS, 0x8d, 4, 0, 0},
	{symSTA, IDY, 0x91, 6, 0, 0},
	{symSTA, ZPX, 0x95, 4, 0, 0},
	{symSTA, ABY, 0x99, 5, 0, 0},
	{symSTA, ABX, 0x9d, 5, 0, 0},

	{symSTX, ZPG, 0x86, 3, 0, 0},
	{symSTX, ABS, 0x8e, 4, 0, 0},
	{symSTX, ZPY, 0x96, 4, 0, 0},

	{symSTY, ZPG, 0x84, 3, 0, 0},
	{symSTY, ABS, 0x8c, 4, 0, 0},
	{symSTY, ZPX, 0x94, 4, 0, 0},

	{symTAX, IMP, 0xaa, 2, 0, 0},

	{symTAY, IMP, 0xa8, 2, 0, 0},

	{symTSX, IMP, 0xba, 2, 0, 0},

	{symTXA, IMP, 0x8a, 2, 0, 0},

	{symTXS, IMP, 0x9a, 2, 0, 0},

	{symTYA, IMP, 0x98, 2, 0, 0},

	{symAHX, IDY, 0x93, 6, 0, Unofficial | Unstable},
	{symAHX, ABY, 0x9f, 5, 0, Unofficial | Unstable},

	{symALR, IMM, 0x4b, 2, 0, Unofficial},

	{symANC, IMM, 0x0b, 2, 0, Unofficial},
	{symANC, IMM, 0x2b, 2, 0, Unofficial},

	{symARR, IMM, 0x6b, 2, 0, Unofficial},

	{symAXS, IMM, 0xcb, 2, 0, Unofficial},

	{symDCP, IDX, 0xc3, 8, 0, Unofficial},
	{symDCP, ZPG, 0xc7, 5, 0, Unofficial},
	{symDCP, ABS, 0xcf, 6, 0, Unofficial},
	{symDCP, IDY, 0xd3, 8, 0, Unofficial},
	{symDCP, ZPX, 0xd7, 6, 0, Unofficial},
	{symDCP, ABY, 0xdb, 7, 0, Unofficial},
	{symDCP, ABX, 0xdf, 7, 0, Unofficial},

	{symISC, IDX, 0xe3, 8, 0, Unofficial},
	{symISC, ZPG, 0xe7, 5, 0, Unofficial},
	{symISC, ABS, 0xef, 6, 0, Unofficial},
	{symISC, IDY, 0xf3, 8, 0, Unofficial},
	{symISC, ZPX, 0xf7, 6, 0, Unofficial},
	{symISC, ABY, 0xfb, 7, 0, Unofficial},
	{symISC, ABX, 0xff, 7, 0, Unofficial},

	{symKIL, IMP, 0x02, 2, 0, Unofficial | Halt},
	{symKIL, IMP, 0x12, 2, 0, Unofficial | Halt},
	{symKIL, IMP, 0x22, 2, 0, Unofficial | Halt},
	{symKIL, IMP, 0x32, 2, 0, Unofficial | Halt},
	{symKIL, IMP, 0x42, 2, 0, Unofficial | Halt},
	{symKIL, IMP, 0x52, 2, 0, Unofficial | Halt},
	{symKIL, IMP, 0x62, 2, 0, Unofficial | Halt},
	{symKIL, IMP, 0x72, 2, 0, Unofficial | Halt},
	{symKIL, IMP, 0x92, 2, 0, Unofficial | Halt},
	{symKIL, IMP, 0xb2, 2, 0, Unofficial | Halt},
	{symKIL, IMP, 0xd2, 2, 0, Unofficial | Halt},
	{symKIL, IMP, 0xf2, 2, 0, Unofficial | Halt},

	{symLAS, ABY, 0xbb, 4, 1, Unofficial},

	{symLAX, IDX, 0xa3, 6, 0, Unofficial},
	{symLAX, ZPG, 0xa7, 3, 0, Unofficial},
	{symLAX, ABS, 0xaf, 4, 0, Unofficial},
	{symLAX, IDY, 0xb3, 5, 1, Unofficial},
	{symLAX, ZPY, 0xb7, 4, 0, Unofficial},
	{symLAX, ABY, 0xbf, 4, 1, Unofficial},

	{symLXA, IMM, 0xab, 2, 0, Unofficial | Unstable},

	{symRLA, IDX, 0x23, 8, 0, Unofficial},
	{symRLA, ZPG, 0x27, 5, 0, Unofficial},
	{symRLA, ABS, 0x2f, 6, 0, Unofficial},
	{symRLA, IDY, 0x33, 8, 0, Unofficial},
	{symRLA, ZPX, 0x37, 6, 0, Unofficial},
	{symRLA, ABY, 0x3b, 7, 0, Unofficial},
	{symRLA, ABX, 0x3f, 7, 0, Unofficial},

	{symRRA, IDX, 0x63, 8, 0, Unofficial},
	{symRRA, ZPG, 0x67, 5, 0, Unofficial},
	{symRRA, ABS, 0x6f, 6, 0, Unofficial},
	{symRRA, IDY, 0x73, 8, 0, Unofficial},
	{symRRA, ZPX, 0x77, 6, 0, Unofficial},
	{symRRA, ABY, 0x7b, 7, 0, Unofficial},
	{symRRA, ABX, 0x7f, 7, 0, Unofficial},

	{symSAX, IDX, 0x83, 6, 0, Unofficial},
	{symSAX, ZPG, 0x87, 3, 0, Unofficial},
	{symSAX, ABS, 0x8f, 4, 0, Unofficial},
	{symSAX, ZPY, 0x97, 4, 0, Unofficial},

	{symSHX, ABY, 0x9e, 5, 0, Unofficial | Unstable},

	{symSHY, ABX, 0x9c, 5, 0, Unofficial | Unstable},

	{symSLO, IDX, 0x03, 8, 0, Unofficial},
	{symSLO, ZPG, 0x07, 5, 0, Unofficial},
	{symSLO, ABS, 0x0f, 6, 0, Unofficial},
	{symSLO, IDY, 0x13, 8, 0, Unofficial},
	{symSLO, ZPX, 0x17, 6, 0, Unofficial},
	{symSLO, ABY, 0x1b, 7, 0, Unofficial},
	{symSLO, ABX, 0x1f, 7, 0, Unofficial},

	{symSRE, IDX, 0x43, 8, 0, Unofficial},
	{symSRE, ZPG, 0x47, 5, 0, Unofficial},
	{symSRE, ABS, 0x4f, 6, 0, Unofficial},
	{symSRE, IDY, 0x53, 8, 0, Unofficial},
	{symSRE, ZPX, 0x57, 6, 0, Unofficial},
	{symSRE, ABY, 0x5b, 7, 0, Unofficial},
	{symSRE, ABX, 0x5f, 7, 0, Unofficial},

	{symTAS, ABY, 0x9b, 5, 0, Unofficial | Unstable},

	{symXAA, IMM, 0x8b, 2, 0, Unofficial | Unstable},
}

// An Instruction describes a CPU instruction, including its name,
// its addressing mode, its opcode value, its operand size, and its CPU cycle
// cost.
type Instruction struct {
	Name     string    // all-caps name of the instruction
	Mode     Mode      // addressing mode
	Opcode   byte      // hexadecimal opcode value
	Length   byte      // combined size of opcode and operand, in bytes
	Cycles   byte      // number of CPU cycles to execute the instruction
	BPCycles byte      // additional cycles required if boundary page crossed
	Flags    InstFlags // unofficial, halt, unstable
	fn       instfunc  // emulator implementation of the function
}

// Unofficial returns true if the instruction is undocumented.
func (inst *Instruction) Unofficial() bool {
	return inst.Flags&Unofficial != 0
}

// Halts returns true if executing the instruction halts the CPU.
func (inst *Instruction) Halts() bool {
	return inst.Flags&Halt != 0
}

// Implemented returns true if the instruction set carries a handler for
// the instruction.
func (inst *Instruction) Implemented() bool {
	return inst.fn != nil
}

// An InstructionSet defines the set of all possible instructions that
// can run on the emulated CPU.
type InstructionSet struct {
	Arch         Architecture
	Unstable     bool                      // unstable opcodes have handlers
	instructions [256]Instruction          // all instructions by opcode
	variants     map[string][]*Instruction // variants of each instruction
}

// Lookup retrieves a CPU instruction corresponding to the requested opcode.
// Every opcode value has an instruction.
func (s *InstructionSet) Lookup(opcode byte) *Instruction {
	return &s.instructions[opcode]
}

// GetInstructions returns all CPU instructions whose name matches the
// provided string.
func (s *InstructionSet) GetInstructions(name string) []*Instruction {
	return s.variants[strings.ToUpper(name)]
}

// Create an instruction set for a CPU architecture.
func newInstructionSet(arch Architecture, unstable bool) *InstructionSet {
	set := &InstructionSet{Arch: arch, Unstable: unstable}

	// Create a map from symbol to implementation for fast lookups.
	symToImpl := make(map[opsym]*opcodeImpl, len(impl))
	for i := range impl {
		symToImpl[impl[i].sym] = &impl[i]
	}

	set.variants = make(map[string][]*Instruction)

	for _, d := range data {
		inst := &set.instructions[d.opcode]
		if inst.Name != "" {
			panic("duplicate instruction")
		}

		impl := symToImpl[d.sym]
		inst.Name = impl.name
		inst.Mode = d.mode
		inst.Opcode = d.opcode
		inst.Length = modeLength[d.mode]
		inst.Cycles = d.cycles
		inst.BPCycles = d.bpcycles
		inst.Flags = d.flags
		if unstable || d.flags&Unstable == 0 {
			inst.fn = impl.fn
		}

		set.variants[inst.Name] = append(set.variants[inst.Name], inst)
	}

	for i := 0; i < 256; i++ {
		if set.instructions[i].Name == "" {
			panic("missing instruction")
		}
	}
	return set
}

var instructionSets [2][2]*InstructionSet

func init() {
	for _, arch := range []Architecture{Ricoh2A03, NMOS} {
		instructionSets[arch][0] = newInstructionSet(arch, false)
		instructionSets[arch][1] = newInstructionSet(arch, true)
	}
}

// GetInstructionSet returns the instruction set for the requested CPU
// architecture. Unstable unofficial opcodes are implemented.
func GetInstructionSet(arch Architecture) *InstructionSet {
	return instructionSets[arch][1]
}

// GetStableInstructionSet returns the instruction set for the requested
// CPU architecture without handlers for the unstable unofficial opcodes.
func GetStableInstructionSet(arch Architecture) *InstructionSet {
	return instructionSets[arch][0]
}
