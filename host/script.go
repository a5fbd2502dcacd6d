// Copyright 2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// RunScript runs a Lua script file against the host. The script sees the
// following global functions:
//
//	step([n])           step n instructions (default 1); returns cycles used
//	                    and, after a CPU error, its message
//	run([limit])        run until a breakpoint, a fault or limit steps
//	reg(name)           read a register (a x y sp pc p cycles)
//	setreg(name, v)     write a register
//	peek(addr)          read a byte from memory
//	poke(addr, v)       write a byte to memory
//	flag(name [, on])   read, or set, a status flag (n v d i z c)
//	reset()             reset the CPU
//	exec(line)          run a monitor command line
//
// Lua's print writes to the host output.
func (h *Host) RunScript(filename string) error {
	L := lua.NewState()
	defer L.Close()

	h.registerScriptFuncs(L)

	if err := L.DoFile(filename); err != nil {
		return errors.Wrapf(err, "script '%s' failed", filepath.Base(filename))
	}
	return nil
}

// RunScriptString runs Lua source against the host.
func (h *Host) RunScriptString(src string) error {
	L := lua.NewState()
	defer L.Close()

	h.registerScriptFuncs(L)

	if err := L.DoString(src); err != nil {
		return errors.Wrap(err, "script failed")
	}
	return nil
}

func (h *Host) registerScriptFuncs(L *lua.LState) {
	funcs := map[string]lua.LGFunction{
		"print":  h.luaPrint,
		"step":   h.luaStep,
		"run":    h.luaRun,
		"reg":    h.luaReg,
		"setreg": h.luaSetReg,
		"peek":   h.luaPeek,
		"poke":   h.luaPoke,
		"flag":   h.luaFlag,
		"reset":  h.luaReset,
		"exec":   h.luaExec,
	}
	for name, fn := range funcs {
		L.SetGlobal(name, L.NewFunction(fn))
	}
}

func (h *Host) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	args := make([]string, n)
	for i := 1; i <= n; i++ {
		args[i-1] = L.Get(i).String()
	}
	h.println(strings.Join(args, "\t"))
	return 0
}

func (h *Host) luaStep(L *lua.LState) int {
	n := L.OptInt(1, 1)

	var cycles uint32
	h.startRunning()
	for i := 0; i < n && h.state == stateRunning; i++ {
		cycles += h.step()
	}
	fault := h.state == stateFault
	h.stopRunning()

	L.Push(lua.LNumber(cycles))
	if fault {
		L.Push(lua.LString(h.lastErr.Error()))
		return 2
	}
	return 1
}

func (h *Host) luaRun(L *lua.LState) int {
	limit := L.OptInt(1, 0)
	L.Push(lua.LNumber(h.run(limit)))
	return 1
}

func (h *Host) luaReg(L *lua.LState) int {
	name := strings.ToLower(L.CheckString(1))
	reg := &h.cpu.Reg

	var v float64
	switch name {
	case "a":
		v = float64(reg.A)
	case "x":
		v = float64(reg.X)
	case "y":
		v = float64(reg.Y)
	case "sp":
		v = float64(reg.SP)
	case "p":
		v = float64(reg.P.Byte())
	case "pc":
		v = float64(reg.PC)
	case "cycles":
		v = float64(h.cpu.Cycles)
	default:
		L.ArgError(1, "unknown register '"+name+"'")
		return 0
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (h *Host) luaSetReg(L *lua.LState) int {
	name := strings.ToLower(L.CheckString(1))
	v := L.CheckInt(2)
	reg := &h.cpu.Reg

	switch name {
	case "a":
		reg.A = byte(v)
	case "x":
		reg.X = byte(v)
	case "y":
		reg.Y = byte(v)
	case "sp":
		reg.SP = byte(v)
	case "p":
		reg.P.SetByte(byte(v))
	case "pc":
		reg.PC = uint16(v)
	default:
		L.ArgError(1, "unknown register '"+name+"'")
	}
	return 0
}

func (h *Host) luaPeek(L *lua.LState) int {
	addr := L.CheckInt(1)
	L.Push(lua.LNumber(h.mem.Read(uint16(addr))))
	return 1
}

func (h *Host) luaPoke(L *lua.LState) int {
	addr := L.CheckInt(1)
	v := L.CheckInt(2)
	h.mem.Write(uint16(addr), byte(v))
	return 0
}

func (h *Host) luaFlag(L *lua.LState) int {
	name := strings.ToLower(L.CheckString(1))
	f, ok := flagByName[name]
	if !ok {
		L.ArgError(1, "unknown flag '"+name+"'")
		return 0
	}

	if L.GetTop() >= 2 {
		h.cpu.Reg.P.Set(f, L.CheckBool(2))
		return 0
	}

	L.Push(lua.LBool(h.cpu.Reg.P.Contains(f)))
	return 1
}

func (h *Host) luaReset(L *lua.LState) int {
	h.cpu.Reset(h.mem)
	return 0
}

func (h *Host) luaExec(L *lua.LState) int {
	line := L.CheckString(1)
	if err := h.execLine(line, false); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}
