// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "go2a03"})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Host).cmdHelp,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "annotate",
		Brief: "Annotate an address",
		Description: "Attach a comment to an address. The disassemble" +
			" command prints it after the instruction at that address." +
			" With no text, the comment is removed.",
		Usage: "annotate <address> [<string>]",
		Data:  (*Host).cmdAnnotate,
	})

	// Breakpoint commands
	bp := root.AddSubtree(cmd.TreeDescriptor{Name: "breakpoint", Brief: "Breakpoint commands"})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List breakpoints",
		Description: "List execution breakpoints in address order with their enabled state.",
		Usage:       "breakpoint list",
		Data:        (*Host).cmdBreakpointList,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:  "add",
		Brief: "Add a breakpoint",
		Description: "Stop run and step when an instruction finishes with" +
			" the program counter at the address. Interrupt entry counts, so" +
			" a breakpoint on the NMI or IRQ handler stops on arrival.",
		Usage: "breakpoint add <address>",
		Data:  (*Host).cmdBreakpointAdd,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Remove a breakpoint",
		Description: "Delete the execution breakpoint at the address.",
		Usage:       "breakpoint remove <address>",
		Data:        (*Host).cmdBreakpointRemove,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a breakpoint",
		Description: "Re-arm a disabled execution breakpoint.",
		Usage:       "breakpoint enable <address>",
		Data:        (*Host).cmdBreakpointEnable,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:  "disable",
		Brief: "Disable a breakpoint",
		Description: "Keep the breakpoint but stop reacting to it." +
			" step over still returns to a disabled breakpoint's address.",
		Usage: "breakpoint disable <address>",
		Data:  (*Host).cmdBreakpointDisable,
	})

	// Data breakpoint commands
	db := root.AddSubtree(cmd.TreeDescriptor{Name: "databreakpoint", Brief: "Data breakpoint commands"})
	db.AddCommand(cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List data breakpoints",
		Description: "List data breakpoints with their enabled state and trigger value.",
		Usage:       "databreakpoint list",
		Data:        (*Host).cmdDataBreakpointList,
	})
	db.AddCommand(cmd.CommandDescriptor{
		Name:  "add",
		Brief: "Add a data breakpoint",
		Description: "Stop the CPU when it writes to the address. Every" +
			" bus write counts: stores, read-modify-write results, the" +
			" unofficial SAX/SHX/SHY/AHX/TAS stores, and stack pushes made" +
			" by JSR, PHA, PHP, BRK, NMI and IRQ. With a value, only a write" +
			" of that byte stops the CPU. The instruction finishes first.",
		Usage: "databreakpoint add <address> [<value>]",
		Data:  (*Host).cmdDataBreakpointAdd,
	})
	db.AddCommand(cmd.CommandDescriptor{
		Name:  "remove",
		Brief: "Remove a data breakpoint",
		Description: "Delete the data breakpoint at the address.",
		Usage: "databreakpoint remove <address>",
		Data:  (*Host).cmdDataBreakpointRemove,
	})
	db.AddCommand(cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a data breakpoint",
		Description: "Re-arm a disabled data breakpoint.",
		Usage:       "databreakpoint enable <address>",
		Data:        (*Host).cmdDataBreakpointEnable,
	})
	db.AddCommand(cmd.CommandDescriptor{
		Name:        "disable",
		Brief:       "Disable a data breakpoint",
		Description: "Keep the data breakpoint but stop reacting to it.",
		Usage:       "databreakpoint disable <address>",
		Data:        (*Host).cmdDataBreakpointDisable,
	})

	root.AddCommand(cmd.CommandDescriptor{
		Name:  "disassemble",
		Brief: "Disassemble code",
		Description: "Decode instructions with the CPU's current" +
			" instruction set. Without an address, decoding resumes where" +
			" the previous listing stopped. Unofficial opcodes carry a" +
			" leading asterisk; relative branches show their target address.",
		Usage: "disassemble [<address>] [<lines>]",
		Data:  (*Host).cmdDisassemble,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "evaluate",
		Brief: "Evaluate an expression",
		Description: "Evaluate an integer expression and print it in hex" +
			" and decimal. Operands may be numbers ($hex, %binary, 'c')" +
			" or register names (A, X, Y, SP, PC, P, and . for PC). In hex" +
			" mode a register name wins over hex digits, so write $A for ten.",
		Usage: "evaluate <expression>",
		Data:  (*Host).cmdEvaluate,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "execute",
		Brief: "Execute a command script file",
		Description: "Run monitor commands from a text file, one per line.",
		Usage: "execute <filename>",
		Data:  (*Host).cmdExecute,
	})

	// Interrupt commands
	in := root.AddSubtree(cmd.TreeDescriptor{Name: "interrupt", Brief: "Interrupt commands"})
	in.AddCommand(cmd.CommandDescriptor{
		Name:  "nmi",
		Brief: "Signal a non-maskable interrupt",
		Description: "Signal a non-maskable interrupt. The CPU services it" +
			" before executing the next instruction.",
		Usage: "interrupt nmi",
		Data:  (*Host).cmdInterruptNMI,
	})
	in.AddCommand(cmd.CommandDescriptor{
		Name:  "irq",
		Brief: "Signal a maskable interrupt",
		Description: "Signal a maskable interrupt request. The CPU services" +
			" it before the next instruction executed while the" +
			" InterruptDisable flag is clear.",
		Usage: "interrupt irq",
		Data:  (*Host).cmdInterruptIRQ,
	})

	root.AddCommand(cmd.CommandDescriptor{
		Name:  "load",
		Brief: "Load a binary file",
		Description: "Copy a raw binary image into memory at the address" +
			" and point PC there. The reset vector is left alone.",
		Usage: "load <filename> <address>",
		Data:  (*Host).cmdLoad,
	})

	// Memory commands
	me := root.AddSubtree(cmd.TreeDescriptor{Name: "memory", Brief: "Memory commands"})
	me.AddCommand(cmd.CommandDescriptor{
		Name:  "dump",
		Brief: "Dump memory at address",
		Description: "Print bytes as hex and ASCII, eight per row." +
			" Without an address, the dump resumes after the previous one.",
		Usage: "memory dump [<address>] [<bytes>]",
		Data:  (*Host).cmdMemoryDump,
	})
	me.AddCommand(cmd.CommandDescriptor{
		Name:  "set",
		Brief: "Set memory at address",
		Description: "Write bytes starting at the address. Each byte is an" +
			" expression and must fit in eight bits. Writes bypass data" +
			" breakpoints.",
		Usage: "memory set <address> <byte> [<byte> ...]",
		Data:  (*Host).cmdMemorySet,
	})
	me.AddCommand(cmd.CommandDescriptor{
		Name:  "copy",
		Brief: "Copy memory",
		Description: "Copy the inclusive source range to the destination.",
		Usage: "memory copy <dst addr> <src addr begin> <src addr end>",
		Data:  (*Host).cmdMemoryCopy,
	})

	root.AddCommand(cmd.CommandDescriptor{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Host).cmdQuit,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "registers",
		Brief: "Display register contents",
		Description: "Show the instruction at PC with A, X, Y, P, SP and" +
			" the cycle count.",
		Usage: "registers",
		Data:  (*Host).cmdRegisters,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "reset",
		Brief: "Reset the CPU",
		Description: "Reset the CPU. The registers return to their power-up" +
			" values, a halted CPU resumes, and the program counter is loaded" +
			" from the reset vector at $FFFC.",
		Usage: "reset",
		Data:  (*Host).cmdReset,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "run",
		Brief: "Run the CPU",
		Description: "Step continuously from PC, or from the given address." +
			" The run ends at a breakpoint, on a KIL opcode, on an opcode" +
			" the current instruction set leaves unimplemented, or on Ctrl-C.",
		Usage: "run [<address>]",
		Data:  (*Host).cmdRun,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "script",
		Brief: "Run a Lua script",
		Description: "Run a Lua script against the emulated system. Scripts" +
			" may call step, run, reg, setreg, peek, poke, flag, reset and" +
			" exec.",
		Usage: "script <filename>",
		Data:  (*Host).cmdScript,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "set",
		Brief: "Set a register or configuration variable",
		Description: "Assign a register (A, X, Y, SP, PC, P), a status flag" +
			" (N, V, D, I, Z, C) or a setting. Settings may be abbreviated." +
			" With no arguments, list the settings.",
		Usage: "set [<var> <value>]",
		Data:  (*Host).cmdSet,
	})

	// Step commands
	st := root.AddSubtree(cmd.TreeDescriptor{Name: "step", Brief: "Step the debugger"})
	st.AddCommand(cmd.CommandDescriptor{
		Name:  "in",
		Brief: "Step into next instruction",
		Description: "Execute count instructions (default one), following" +
			" JSR into the subroutine. A pending interrupt is serviced as one step.",
		Usage: "step in [<count>]",
		Data:  (*Host).cmdStepIn,
	})
	st.AddCommand(cmd.CommandDescriptor{
		Name:  "over",
		Brief: "Step over next instruction",
		Description: "Like step in, but a JSR runs until control returns" +
			" to the following instruction.",
		Usage: "step over [<count>]",
		Data:  (*Host).cmdStepOver,
	})

	// Add command shortcuts.
	root.AddShortcut("?", "help")
	root.AddShortcut("ba", "breakpoint add")
	root.AddShortcut("bd", "breakpoint disable")
	root.AddShortcut("be", "breakpoint enable")
	root.AddShortcut("bl", "breakpoint list")
	root.AddShortcut("bp", "breakpoint add")
	root.AddShortcut("br", "breakpoint remove")
	root.AddShortcut("d", "disassemble")
	root.AddShortcut("dba", "databreakpoint add")
	root.AddShortcut("dbd", "databreakpoint disable")
	root.AddShortcut("dbe", "databreakpoint enable")
	root.AddShortcut("dbl", "databreakpoint list")
	root.AddShortcut("dbr", "databreakpoint remove")
	root.AddShortcut("e", "evaluate")
	root.AddShortcut("m", "memory dump")
	root.AddShortcut("mc", "memory copy")
	root.AddShortcut("ms", "memory set")
	root.AddShortcut("n", "step over")
	root.AddShortcut("r", "registers")
	root.AddShortcut("s", "step in")
	root.AddShortcut("si", "step in")
	root.AddShortcut("so", "step over")

	cmds = root
}
