// Copyright 2018-2026 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/beevik/term"
	"github.com/pkg/errors"

	"github.com/beevik/go2a03/cpu"
	"github.com/beevik/go2a03/host"
)

var (
	arch     string
	unstable bool
	load     string
	loadAddr string
	script   string
)

func init() {
	flag.StringVar(&arch, "arch", "2a03", "CPU architecture (2a03 or nmos)")
	flag.BoolVar(&unstable, "unstable", true, "execute unstable unofficial opcodes")
	flag.StringVar(&load, "load", "", "raw binary file to load")
	flag.StringVar(&loadAddr, "addr", "$8000", "address at which to load the binary")
	flag.StringVar(&script, "script", "", "Lua script to run before accepting commands")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: go2a03 [options] [cmdfile] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	var a cpu.Architecture
	switch strings.ToLower(arch) {
	case "2a03", "ricoh", "nes":
		a = cpu.Ricoh2A03
	case "nmos", "6502":
		a = cpu.NMOS
	default:
		exitOnError(errors.Errorf("unknown architecture '%s'", arch))
	}

	h := host.New(a)
	h.AllowUnstable(unstable)

	if load != "" {
		addr, err := parseAddr(loadAddr)
		if err != nil {
			exitOnError(err)
		}
		if err := h.Load(load, addr); err != nil {
			exitOnError(err)
		}
	}

	if script != "" {
		if err := h.RunScript(script); err != nil {
			exitOnError(err)
		}
	}

	// Run commands contained in command-line files.
	for _, filename := range flag.Args() {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		quit := h.RunCommands(file, os.Stdout, false)
		file.Close()
		if quit {
			return
		}
	}

	// Break on Ctrl-C.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(h, c)

	// Run commands interactively when stdin is a terminal.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	h.RunCommands(os.Stdin, os.Stdout, interactive)
}

func parseAddr(s string) (uint16, error) {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x"):
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, errors.Errorf("invalid address '%s'", loadAddr)
	}
	return uint16(v), nil
}

func handleInterrupt(h *host.Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
