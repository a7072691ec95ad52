/*
   i8080 core - machine assembly

   Copyright (c) 2026, i8080 core contributors

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
*/

// Package machine wires together the register file, memory image, I/O
// port bank, and interrupt scheduler into the runnable emulator, and
// drives the fetch/decode/execute loop.
package machine

import (
	"fmt"

	"github.com/rcornwell/i8080/machine/cpu"
	"github.com/rcornwell/i8080/machine/decoder"
	"github.com/rcornwell/i8080/machine/interrupt"
	"github.com/rcornwell/i8080/machine/memory"
	"github.com/rcornwell/i8080/machine/ports"
)

// maxROMSize is the largest image LoadROM will accept: the cabinet's
// four 2K ROM sockets, 8192 bytes combined.
const maxROMSize = 0x2000

// Machine is the complete emulated system: CPU registers, memory image,
// I/O port bank, and interrupt scheduler, plus the halted latch HLT
// sets.
type Machine struct {
	CPU    *cpu.State
	Memory *memory.Memory
	Ports  *ports.Bank
	Sched  *interrupt.Scheduler
	Halted bool
}

// New returns a machine in its power-on state.
func New() *Machine {
	return &Machine{
		CPU:    cpu.New(),
		Memory: memory.New(),
		Ports:  ports.New(),
		Sched:  interrupt.New(),
	}
}

// LoadROM copies data into the bottom of the address space. data must
// fit within the ROM region; a larger image is rejected rather than
// silently truncated or wrapped into work RAM.
func (m *Machine) LoadROM(data []byte) error {
	if len(data) > maxROMSize {
		return fmt.Errorf("machine: ROM image of %d bytes exceeds %d-byte ROM region", len(data), maxROMSize)
	}
	m.Memory.Write(0, data)
	return nil
}

// Step executes one instruction cycle: deliver a pending interrupt if
// one is latched and the CPU has interrupts enabled, otherwise fetch
// and execute the instruction at PC. It returns the number of cycles
// consumed, which the caller feeds back into Sched.Accumulate.
//
// A HLT instruction halts the CPU; Step becomes a no-op (returning 4
// cycles, matching the real part's idle bus cycles) until an enabled
// interrupt restarts it.
func (m *Machine) Step() (int, error) {
	if m.Sched.Interrupt {
		deliver := m.CPU.InterruptsEnabled
		number := m.Sched.Number
		m.Sched.Acknowledge() // A disabled interrupt is dropped, not queued.
		if deliver {
			m.CPU.InterruptsEnabled = false
			m.Halted = false
			opcode := 0b11000111 | (number << 3)
			inst, err := decoder.Decode([]byte{opcode})
			if err != nil {
				return 0, fmt.Errorf("machine: pc=%04x: synthesizing interrupt vector: %w", m.CPU.PC.Get(), err)
			}
			return m.execute(inst)
		}
	}

	if m.Halted {
		return 4, nil
	}

	pc := m.CPU.PC.Get()
	buf := m.Memory.Read(pc, 3)
	inst, err := decoder.Decode(buf)
	if err != nil {
		return 0, fmt.Errorf("pc=%04x: %s", pc, err)
	}
	// RST pushes the PC of the RST opcode itself, not the following
	// byte: unlike every other instruction, it is responsible for its
	// own PC movement, so the generic advance is skipped here.
	if inst.Op != decoder.OpRst {
		m.CPU.PC.Add(uint16(inst.Length))
	}
	cycles, err := m.execute(inst)
	if err != nil {
		return 0, fmt.Errorf("pc=%04x: %s", pc, err)
	}
	return cycles, nil
}

// Run steps the machine until it executes a HLT, returning nil, or
// until an instruction returns an error, typically an unimplemented
// opcode. Each step's cycle count is fed to the interrupt scheduler so
// the vblank sources keep ticking.
func (m *Machine) Run() error {
	for {
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

// getReg reads an 8-bit register by selector code, routing RegM
// through memory at the address in HL.
func (m *Machine) getReg(code uint8) uint8 {
	if code == cpu.RegM {
		return m.Memory.Read8(m.CPU.HL.Get())
	}
	return m.regRef(code)
}

// setReg writes an 8-bit register by selector code, routing RegM
// through memory at the address in HL.
func (m *Machine) setReg(code uint8, value uint8) {
	if code == cpu.RegM {
		m.Memory.Write8(m.CPU.HL.Get(), value)
		return
	}
	m.setRegRef(code, value)
}

// regRef reads one of the direct (non-M) registers.
func (m *Machine) regRef(code uint8) uint8 {
	switch code {
	case cpu.RegB:
		return m.CPU.BC.Rh
	case cpu.RegC:
		return m.CPU.BC.Rl
	case cpu.RegD:
		return m.CPU.DE.Rh
	case cpu.RegE:
		return m.CPU.DE.Rl
	case cpu.RegH:
		return m.CPU.HL.Rh
	case cpu.RegL:
		return m.CPU.HL.Rl
	case cpu.RegA:
		return m.CPU.PSW.A
	default:
		panic("machine: invalid register code")
	}
}

func (m *Machine) setRegRef(code uint8, value uint8) {
	switch code {
	case cpu.RegB:
		m.CPU.BC.Rh = value
	case cpu.RegC:
		m.CPU.BC.Rl = value
	case cpu.RegD:
		m.CPU.DE.Rh = value
	case cpu.RegE:
		m.CPU.DE.Rl = value
	case cpu.RegH:
		m.CPU.HL.Rh = value
	case cpu.RegL:
		m.CPU.HL.Rl = value
	case cpu.RegA:
		m.CPU.PSW.A = value
	default:
		panic("machine: invalid register code")
	}
}

// push stores value on the stack, predecrementing SP by two and writing
// it little-endian at the new SP -- the stack grows downward, as on the
// real part.
func (m *Machine) push(value uint16) {
	m.CPU.SP.Sub(2)
	m.Memory.Write16(m.CPU.SP.Get(), value)
}

// pop loads a value off the stack and postincrements SP by two.
func (m *Machine) pop() uint16 {
	value := m.Memory.Read16(m.CPU.SP.Get())
	m.CPU.SP.Add(2)
	return value
}

// condition evaluates one of the eight condition codes against the
// current flags.
func (m *Machine) condition(code uint8) bool {
	switch code {
	case decoder.CondNZ:
		return !m.CPU.Zero()
	case decoder.CondZ:
		return m.CPU.Zero()
	case decoder.CondNC:
		return !m.CPU.Carry()
	case decoder.CondC:
		return m.CPU.Carry()
	case decoder.CondPO:
		return !m.CPU.Parity()
	case decoder.CondPE:
		return m.CPU.Parity()
	case decoder.CondP:
		return !m.CPU.Sign()
	case decoder.CondM:
		return m.CPU.Sign()
	default:
		panic("machine: invalid condition code")
	}
}
