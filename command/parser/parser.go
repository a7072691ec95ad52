/*
 * i8080 - Command parser.
 *
 * Copyright 2026, i8080 core contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 *
 */

// Package parser implements the debug console's command language: a
// small set of abbreviation-matched commands (step, continue, run,
// break, clear, regs, mem, port, quit) that drive a machine.Machine.
package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rcornwell/i8080/machine"
	"github.com/rcornwell/i8080/machine/decoder"
	"github.com/rcornwell/i8080/machine/disassembler"
)

type cmd struct {
	name    string // Command name.
	min     int    // Minimum abbreviation length that still matches.
	process func(args []string, m *machine.Machine) (bool, error)
}

var cmdList = []cmd{
	{name: "step", min: 1, process: step},
	{name: "continue", min: 1, process: cont},
	{name: "run", min: 2, process: run},
	{name: "break", min: 3, process: setBreak},
	{name: "clear", min: 1, process: clearBreak},
	{name: "regs", min: 1, process: regs},
	{name: "mem", min: 1, process: mem},
	{name: "port", min: 1, process: port},
	{name: "quit", min: 1, process: quit},
}

// breakpoint holds the single pending breakpoint address, or -1 if
// none is set. The console only ever needs one at a time.
var breakpoint = -1

// ProcessCommand parses and executes one command line against m. It
// returns true when the console should exit.
func ProcessCommand(commandLine string, m *machine.Machine) (bool, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return false, nil
	}

	name := strings.ToLower(fields[0])
	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}

	return match[0].process(fields[1:], m)
}

// CompleteCmd returns every command name matching the in-progress word
// in commandLine, for line-editing completion.
func CompleteCmd(commandLine string) []string {
	fields := strings.Fields(commandLine)
	prefix := ""
	if len(fields) > 0 && !strings.HasSuffix(commandLine, " ") {
		prefix = strings.ToLower(fields[0])
	}

	var names []string
	for _, m := range matchList(prefix) {
		names = append(names, m.name)
	}
	return names
}

// matchCommand reports whether command is a valid abbreviation of
// match.name: every character of command must agree with match.name,
// and there must be at least match.min of them.
func matchCommand(match cmd, command string) bool {
	if len(command) < match.min || len(command) > len(match.name) {
		return false
	}
	return match.name[:len(command)] == command
}

func matchList(command string) []cmd {
	if command == "" {
		return nil
	}
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, command) {
			match = append(match, m)
		}
	}
	return match
}

func step(_ []string, m *machine.Machine) (bool, error) {
	cycles, err := m.Step()
	if err != nil {
		return false, err
	}
	m.Sched.Accumulate(uint16(cycles))
	pc := m.CPU.PC.Get()
	buf := m.Memory.Read(pc, 3)
	inst, decErr := decoder.Decode(buf)
	if decErr == nil {
		fmt.Println(disassembler.Format(pc, inst, buf))
	}
	return false, nil
}

func cont(_ []string, m *machine.Machine) (bool, error) {
	for {
		if breakpoint >= 0 && m.CPU.PC.Get() == uint16(breakpoint) {
			fmt.Printf("stopped at breakpoint %04x\n", breakpoint)
			return false, nil
		}
		cycles, err := m.Step()
		if err != nil {
			return false, err
		}
		m.Sched.Accumulate(uint16(cycles))
		if m.Halted {
			return false, nil
		}
	}
}

func run(args []string, m *machine.Machine) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("run requires exactly one cycle count argument")
	}
	count, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return false, errors.New("run count must be a number: " + args[0])
	}
	var total uint64
	for total < count {
		cycles, err := m.Step()
		if err != nil {
			return false, err
		}
		m.Sched.Accumulate(uint16(cycles))
		total += uint64(cycles)
	}
	return false, nil
}

func setBreak(args []string, _ *machine.Machine) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("break requires an address argument")
	}
	addr, err := strconv.ParseUint(args[0], 16, 16)
	if err != nil {
		return false, errors.New("break address must be hex: " + args[0])
	}
	breakpoint = int(addr)
	slog.Info("breakpoint set", "address", fmt.Sprintf("%04x", addr))
	return false, nil
}

func clearBreak(_ []string, _ *machine.Machine) (bool, error) {
	breakpoint = -1
	return false, nil
}

func regs(_ []string, m *machine.Machine) (bool, error) {
	fmt.Printf("PC=%04x SP=%04x BC=%04x DE=%04x HL=%04x A=%02x\n",
		m.CPU.PC.Get(), m.CPU.SP.Get(), m.CPU.BC.Get(), m.CPU.DE.Get(), m.CPU.HL.Get(), m.CPU.PSW.A)
	fmt.Printf("flags: C=%v Z=%v S=%v P=%v IE=%v\n",
		m.CPU.Carry(), m.CPU.Zero(), m.CPU.Sign(), m.CPU.Parity(), m.CPU.InterruptsEnabled)
	return false, nil
}

func mem(args []string, m *machine.Machine) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("mem requires an address argument")
	}
	addr, err := strconv.ParseUint(args[0], 16, 16)
	if err != nil {
		return false, errors.New("mem address must be hex: " + args[0])
	}
	bytes := m.Memory.Read(uint16(addr), 16)
	fmt.Printf("%04x: % 02x\n", addr, bytes)
	return false, nil
}

func port(args []string, m *machine.Machine) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("port requires a port number argument")
	}
	number, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return false, errors.New("port number must be decimal: " + args[0])
	}
	value, err := m.Ports.Read(uint8(number))
	if err != nil {
		return false, err
	}
	fmt.Printf("port %d = %02x\n", number, value)
	return false, nil
}

func quit(_ []string, _ *machine.Machine) (bool, error) {
	return true, nil
}
