/*
 * i8080 - Main process.
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

package main

import (
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/i8080/command/reader"
	"github.com/rcornwell/i8080/machine"
	"github.com/rcornwell/i8080/machine/decoder"
	"github.com/rcornwell/i8080/machine/disassembler"
	"github.com/rcornwell/i8080/util/logger"
)

var Logger *slog.Logger

func main() {
	optROM := getopt.StringLong("rom", 'r', "", "ROM image to load")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optTrace := getopt.BoolLong("trace", 't', "Print a disassembler trace line for every executed instruction")
	optDebug := getopt.BoolLong("debug", 'd', "Enter the interactive debug console instead of free-running")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if optLogFile != nil && *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, *optDebug))
	slog.SetDefault(Logger)

	Logger.Info("i8080 core started")

	if optROM == nil || *optROM == "" {
		Logger.Error("please specify a ROM image with --rom")
		os.Exit(1)
	}

	data, err := os.ReadFile(*optROM)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	m := machine.New()
	if err := m.LoadROM(data); err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	if *optDebug {
		reader.ConsoleReader(m)
		return
	}

	if *optTrace {
		err = runTraced(m)
	} else {
		err = m.Run()
	}
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
}

// runTraced free-runs m exactly like Machine.Run, but prints a
// disassembler line for each instruction before it executes.
func runTraced(m *machine.Machine) error {
	for {
		pc := m.CPU.PC.Get()
		buf := m.Memory.Read(pc, 3)
		if inst, err := decoder.Decode(buf); err == nil {
			fmt.Println(disassembler.Format(pc, inst, buf[:inst.Length]))
		}
		cycles, err := m.Step()
		if err != nil {
			return err
		}
		m.Sched.Accumulate(uint16(cycles))
		if m.Halted {
			return nil
		}
	}
}
