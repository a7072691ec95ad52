/*
   i8080 core - program status word

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

import "math/bits"

// Flag bit positions within the flags byte.
const (
	FlagCarry  uint8 = 1 << 0
	FlagParity uint8 = 1 << 2
	FlagZero   uint8 = 1 << 6
	FlagSign   uint8 = 1 << 7
)

// PSW is the accumulator plus the flags byte. Only the four named flag
// bits are ever written by core logic; bit 1 is fixed at 1 from
// initialization onward.
type PSW struct {
	A     uint8
	flags uint8
}

// NewPSW returns a PSW with the reserved bit-1 set and A cleared,
// matching power-on state.
func NewPSW() PSW {
	return PSW{flags: 0b0000_0010}
}

// Get returns the packed 16-bit view (flags<<8 | A), the value pushed by
// PUSH PSW.
func (p PSW) Get() uint16 {
	return uint16(p.flags)<<8 | uint16(p.A)
}

// Set restores the accumulator and the four named flags from a packed
// 16-bit value, as used by POP PSW. The other bits of the flags byte are
// not taken from value: bit 1 stays set and the rest stay clear.
func (p *PSW) Set(value uint16) {
	p.flags = uint8(value>>8)&(FlagCarry|FlagParity|FlagZero|FlagSign) | 0b0000_0010
	p.A = uint8(value)
}

func (p *PSW) setFlag(flag uint8, set bool) {
	if set {
		p.flags |= flag
	} else {
		p.flags &^= flag
	}
}

func (p PSW) flagSet(flag uint8) bool {
	return p.flags&flag != 0
}

// Carry, Parity, Zero, Sign report the current value of each named flag.
func (p PSW) Carry() bool  { return p.flagSet(FlagCarry) }
func (p PSW) Parity() bool { return p.flagSet(FlagParity) }
func (p PSW) Zero() bool   { return p.flagSet(FlagZero) }
func (p PSW) Sign() bool   { return p.flagSet(FlagSign) }

// SetCarry sets or clears the carry flag directly from a boolean carry
// token (a raw overflow/borrow bit, not a result byte).
func (p *PSW) SetCarry(carry bool) {
	p.setFlag(FlagCarry, carry)
}

// SetFromResult updates parity, zero, and sign from the 8-bit result of
// an arithmetic or logical instruction. Carry is not touched here;
// callers set it separately from the carry/borrow token because several
// families (ANA/XRA/ORA, INR/DCR) do not derive it from the result.
func (p *PSW) SetFromResult(result uint8) {
	p.setFlag(FlagParity, bits.OnesCount8(result)%2 == 0)
	p.setFlag(FlagZero, result == 0)
	p.setFlag(FlagSign, result&0x80 != 0)
}
