/*
   i8080 core - CPU state

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

// Register pair selectors, shared by every family that takes a 2-bit rp
// field. PUSH/POP/stack-family decoders remap 0b11 to PairPSW instead of
// PairSP before this code ever sees it; the executor always works with a
// uniform 5-entry space.
const (
	PairBC uint8 = iota
	PairDE
	PairHL
	PairSP
	PairPSW
)

// Register selectors for the 3-bit reg field. RegM is a pseudo-register:
// memory at the address held in HL.
const (
	RegB uint8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegM
	RegA
)

// State is the complete register file of the simulated processor: three
// register pairs, the PSW, the program counter, the stack pointer, and
// the interrupt-enable latch. It holds no memory or I/O state -- those
// belong to their own packages and are threaded together by package
// machine.
type State struct {
	BC RegisterPair
	DE RegisterPair
	HL RegisterPair
	PSW
	PC PointerRegister
	SP PointerRegister

	InterruptsEnabled bool
}

// New returns a CPU state matching power-on reset: all registers zero,
// PC and SP zero, interrupts disabled, and the PSW's reserved bit set.
func New() *State {
	return &State{PSW: NewPSW()}
}

// Pair returns the 16-bit value of the register pair selected by code,
// using the BC/DE/HL/SP mapping (rp 0b11 = SP). Most instruction
// families -- LXI, INX, DCX, DAD, LDAX/STAX -- use this mapping.
func (s *State) Pair(code uint8) uint16 {
	switch code {
	case PairBC:
		return s.BC.Get()
	case PairDE:
		return s.DE.Get()
	case PairHL:
		return s.HL.Get()
	case PairSP:
		return s.SP.Get()
	default:
		panic("cpu: invalid register pair code")
	}
}

// SetPair stores value into the register pair selected by code, using
// the BC/DE/HL/SP mapping.
func (s *State) SetPair(code uint8, value uint16) {
	switch code {
	case PairBC:
		s.BC.Set(value)
	case PairDE:
		s.DE.Set(value)
	case PairHL:
		s.HL.Set(value)
	case PairSP:
		s.SP.Set(value)
	default:
		panic("cpu: invalid register pair code")
	}
}

// StackPair returns the 16-bit value of the register pair selected by
// code, using the BC/DE/HL/PSW mapping that PUSH and POP use (rp 0b11 =
// PSW, never SP).
func (s *State) StackPair(code uint8) uint16 {
	switch code {
	case PairBC:
		return s.BC.Get()
	case PairDE:
		return s.DE.Get()
	case PairHL:
		return s.HL.Get()
	case PairPSW:
		return s.PSW.Get()
	default:
		panic("cpu: invalid stack pair code")
	}
}

// SetStackPair stores value into the register pair selected by code,
// using the BC/DE/HL/PSW mapping.
func (s *State) SetStackPair(code uint8, value uint16) {
	switch code {
	case PairBC:
		s.BC.Set(value)
	case PairDE:
		s.DE.Set(value)
	case PairHL:
		s.HL.Set(value)
	case PairPSW:
		s.PSW.Set(value)
	default:
		panic("cpu: invalid stack pair code")
	}
}
