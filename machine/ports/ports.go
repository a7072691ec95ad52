/*
   i8080 core - I/O port bank

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

// Package ports implements the cabinet's port-mapped I/O peripheral:
// three input latches, four output latches, and the 16-bit hardware bit
// shifter fed by port 4 and read back through port 3.
package ports

import "fmt"

// Bank holds the input/output latches and the shift register. The host
// (keyboard/joystick sampler, sound driver) writes Input0/Input1/Input2
// directly; Read/Write implement the processor-visible port contract.
type Bank struct {
	Input0 uint8
	Input1 uint8
	Input2 uint8

	shiftAmount uint8
	sound1      uint8
	sound2      uint8
	watchdog    uint8
	shiftReg    uint16
}

// New returns a bank with the cabinet strap bits preloaded into port 0.
func New() *Bank {
	return &Bank{Input0: 0b0000_1110}
}

// Read returns the value presented on port.
func (b *Bank) Read(port uint8) (uint8, error) {
	switch port {
	case 0:
		return b.Input0, nil
	case 1:
		return b.Input1, nil
	case 2:
		return b.Input2, nil
	case 3:
		return uint8(b.shiftReg >> (8 - b.shiftAmount)), nil
	default:
		return 0, fmt.Errorf("ports: invalid read port %d", port)
	}
}

// Write stores value on port.
func (b *Bank) Write(port uint8, value uint8) error {
	switch port {
	case 2:
		b.shiftAmount = value & 0b111
	case 3:
		b.sound1 = value
	case 4:
		b.shiftReg = (b.shiftReg >> 8) | (uint16(value) << 8)
	case 5:
		b.sound2 = value
	case 6:
		b.watchdog = value
	default:
		return fmt.Errorf("ports: invalid write port %d", port)
	}
	return nil
}

// Sound1, Sound2, Watchdog, ShiftAmount expose the output latches for
// host collaborators (audio driver, watchdog monitor, debug console).
func (b *Bank) Sound1() uint8         { return b.sound1 }
func (b *Bank) Sound2() uint8         { return b.sound2 }
func (b *Bank) Watchdog() uint8       { return b.watchdog }
func (b *Bank) ShiftAmount() uint8    { return b.shiftAmount }
func (b *Bank) ShiftRegister() uint16 { return b.shiftReg }
