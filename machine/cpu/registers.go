/*
   i8080 core - register file

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

package cpu

// RegisterPair is a pair of 8-bit cells with a big-endian 16-bit view.
// The 16-bit value is always derived from rh/rl; it is never stored
// separately.
type RegisterPair struct {
	Rh uint8 // High byte (B, D, H).
	Rl uint8 // Low byte (C, E, L).
}

// Get returns the 16-bit view (Rh<<8 | Rl).
func (r RegisterPair) Get() uint16 {
	return uint16(r.Rh)<<8 | uint16(r.Rl)
}

// Set stores value into Rh/Rl, high byte first.
func (r *RegisterPair) Set(value uint16) {
	r.Rh = uint8(value >> 8)
	r.Rl = uint8(value)
}

// PointerRegister is a single 16-bit cell with wrapping add/subtract,
// used for the program counter and the stack pointer.
type PointerRegister struct {
	value uint16
}

// Get returns the current 16-bit value.
func (p PointerRegister) Get() uint16 {
	return p.value
}

// Set stores value directly.
func (p *PointerRegister) Set(value uint16) {
	p.value = value
}

// Add adds delta, wrapping modulo 2^16.
func (p *PointerRegister) Add(delta uint16) {
	p.value += delta
}

// Sub subtracts delta, wrapping modulo 2^16.
func (p *PointerRegister) Sub(delta uint16) {
	p.value -= delta
}
