/*
   i8080 core - instruction decoder

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

// Package decoder turns a raw opcode byte (plus up to two trailing
// operand bytes) into a typed Instruction descriptor. Decode is a pure
// function: it holds no state and has no side effects.
package decoder

import "fmt"

// Op tags which instruction an Instruction describes. The tag set
// mirrors the 8080 mnemonic table one-for-one so that executor code can
// exhaustively switch over it and catch a missing opcode at review time.
type Op int

const (
	OpNop Op = iota
	OpLxi
	OpStax
	OpInx
	OpInr
	OpDcr
	OpMvi
	OpRlc
	OpRrc
	OpRal
	OpRar
	OpDad
	OpLdax
	OpDcx
	OpShld
	OpLhld
	OpSta
	OpLda
	OpDaa
	OpCma
	OpStc
	OpCmc
	OpMov
	OpHlt
	OpAdd
	OpAdc
	OpSub
	OpSbb
	OpAna
	OpXra
	OpOra
	OpCmp
	OpRet
	OpRcc
	OpPop
	OpJmp
	OpJcc
	OpCall
	OpCcc
	OpPush
	OpAdi
	OpAci
	OpSui
	OpSbi
	OpAni
	OpXri
	OpOri
	OpCpi
	OpRst
	OpOut
	OpIn
	OpXthl
	OpPchl
	OpXchg
	OpDi
	OpEi
	OpSphl
)

// Condition codes used by the Rcc/Jcc/Ccc families, encoded the same
// way the opcode's bits 5..3 do: NZ,Z,NC,C,PO,PE,P,M.
const (
	CondNZ uint8 = iota
	CondZ
	CondNC
	CondC
	CondPO
	CondPE
	CondP
	CondM
)

// Instruction is the decoded form of one opcode. Only the fields that
// apply to Op are meaningful; the rest are zero. Length is the number
// of bytes consumed from memory (1, 2, or 3).
type Instruction struct {
	Op     Op
	Reg    uint8 // 3-bit register selector (INR/DCR/MOV/MVI/arith/CMP).
	Reg2   uint8 // Second 3-bit register selector (MOV src).
	Pair   uint8 // 2-bit register-pair selector, already remapped to
	             // PSW for the PUSH/POP family (cpu.PairPSW).
	Cond   uint8 // Condition code for Rcc/Jcc/Ccc.
	Imm8   uint8
	Imm16  uint16
	Length int
}

// ErrShortInput is returned when the supplied byte slice is too short
// to hold the operands a multi-byte opcode requires.
type ErrShortInput struct {
	Opcode byte
	Need   int
	Got    int
}

func (e *ErrShortInput) Error() string {
	return fmt.Sprintf("decoder: opcode %#02x needs %d bytes, got %d", e.Opcode, e.Need, e.Got)
}

// ErrUnimplemented is returned for opcodes this core deliberately does
// not implement (DAA; see spec's open question).
type ErrUnimplemented struct {
	Opcode byte
	Why    string
}

func (e *ErrUnimplemented) Error() string {
	return fmt.Sprintf("decoder: opcode %#02x unimplemented: %s", e.Opcode, e.Why)
}

// need checks that buf has at least n bytes, returning ErrShortInput
// for the given opcode otherwise.
func need(buf []byte, opcode byte, n int) error {
	if len(buf) < n {
		return &ErrShortInput{Opcode: opcode, Need: n, Got: len(buf)}
	}
	return nil
}

func imm16(buf []byte) uint16 {
	return uint16(buf[1]) | uint16(buf[2])<<8
}

// Decode maps the opcode at buf[0] (plus any trailing operand bytes in
// buf) to an Instruction descriptor, or returns an error if buf is too
// short or the opcode is one this core does not implement.
func Decode(buf []byte) (Instruction, error) {
	if len(buf) == 0 {
		return Instruction{}, &ErrShortInput{Need: 1, Got: 0}
	}
	opcode := buf[0]

	switch opcode {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		return Instruction{Op: OpNop, Length: 1}, nil

	case 0x01, 0x11, 0x21, 0x31:
		if err := need(buf, opcode, 3); err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: OpLxi, Pair: (opcode >> 4) & 0b11, Imm16: imm16(buf), Length: 3}, nil

	case 0x02, 0x12:
		return Instruction{Op: OpStax, Pair: (opcode >> 4) & 0b1, Length: 1}, nil

	case 0x03, 0x13, 0x23, 0x33:
		return Instruction{Op: OpInx, Pair: (opcode >> 4) & 0b11, Length: 1}, nil

	case 0x09, 0x19, 0x29, 0x39:
		return Instruction{Op: OpDad, Pair: (opcode >> 4) & 0b11, Length: 1}, nil

	case 0x0a, 0x1a:
		return Instruction{Op: OpLdax, Pair: (opcode >> 4) & 0b1, Length: 1}, nil

	case 0x0b, 0x1b, 0x2b, 0x3b:
		return Instruction{Op: OpDcx, Pair: (opcode >> 4) & 0b11, Length: 1}, nil

	case 0x07, 0x0f, 0x17, 0x1f:
		switch (opcode >> 3) & 0b11 {
		case 0b00:
			return Instruction{Op: OpRlc, Length: 1}, nil
		case 0b01:
			return Instruction{Op: OpRrc, Length: 1}, nil
		case 0b10:
			return Instruction{Op: OpRal, Length: 1}, nil
		default:
			return Instruction{Op: OpRar, Length: 1}, nil
		}

	case 0x22, 0x2a, 0x32, 0x3a:
		if err := need(buf, opcode, 3); err != nil {
			return Instruction{}, err
		}
		addr := imm16(buf)
		switch (opcode >> 3) & 0b11 {
		case 0b00:
			return Instruction{Op: OpShld, Imm16: addr, Length: 3}, nil
		case 0b01:
			return Instruction{Op: OpLhld, Imm16: addr, Length: 3}, nil
		case 0b10:
			return Instruction{Op: OpSta, Imm16: addr, Length: 3}, nil
		default:
			return Instruction{Op: OpLda, Imm16: addr, Length: 3}, nil
		}

	case 0x27:
		return Instruction{}, &ErrUnimplemented{Opcode: opcode, Why: "decimal adjust accumulator not modeled"}

	case 0x2f:
		return Instruction{Op: OpCma, Length: 1}, nil

	case 0x37, 0x3f:
		if opcode == 0x37 {
			return Instruction{Op: OpStc, Length: 1}, nil
		}
		return Instruction{Op: OpCmc, Length: 1}, nil

	case 0x76:
		return Instruction{Op: OpHlt, Length: 1}, nil

	case 0xc9, 0xd9: // 0xd9 is the undocumented duplicate of RET.
		return Instruction{Op: OpRet, Length: 1}, nil

	case 0xc3, 0xcb:
		if err := need(buf, opcode, 3); err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: OpJmp, Imm16: imm16(buf), Length: 3}, nil

	case 0xcd, 0xdd, 0xed, 0xfd:
		if err := need(buf, opcode, 3); err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: OpCall, Imm16: imm16(buf), Length: 3}, nil

	case 0xe3:
		return Instruction{Op: OpXthl, Length: 1}, nil
	case 0xe9:
		return Instruction{Op: OpPchl, Length: 1}, nil
	case 0xeb:
		return Instruction{Op: OpXchg, Length: 1}, nil
	case 0xf9:
		return Instruction{Op: OpSphl, Length: 1}, nil

	case 0xf3, 0xfb:
		if opcode == 0xf3 {
			return Instruction{Op: OpDi, Length: 1}, nil
		}
		return Instruction{Op: OpEi, Length: 1}, nil

	case 0xd3, 0xdb:
		if err := need(buf, opcode, 2); err != nil {
			return Instruction{}, err
		}
		if opcode == 0xd3 {
			return Instruction{Op: OpOut, Imm8: buf[1], Length: 2}, nil
		}
		return Instruction{Op: OpIn, Imm8: buf[1], Length: 2}, nil
	}

	switch {
	case opcode>>6 == 0b00 && opcode&0b111 == 0b100:
		return Instruction{Op: OpInr, Reg: (opcode >> 3) & 0b111, Length: 1}, nil

	case opcode>>6 == 0b00 && opcode&0b111 == 0b101:
		return Instruction{Op: OpDcr, Reg: (opcode >> 3) & 0b111, Length: 1}, nil

	case opcode>>6 == 0b00 && opcode&0b111 == 0b110:
		if err := need(buf, opcode, 2); err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: OpMvi, Reg: (opcode >> 3) & 0b111, Imm8: buf[1], Length: 2}, nil

	case opcode >= 0x40 && opcode <= 0x7f:
		return Instruction{Op: OpMov, Reg: (opcode >> 3) & 0b111, Reg2: opcode & 0b111, Length: 1}, nil

	case opcode >= 0x80 && opcode <= 0xbf:
		reg := opcode & 0b111
		switch (opcode >> 3) & 0b111 {
		case 0b000:
			return Instruction{Op: OpAdd, Reg: reg, Length: 1}, nil
		case 0b001:
			return Instruction{Op: OpAdc, Reg: reg, Length: 1}, nil
		case 0b010:
			return Instruction{Op: OpSub, Reg: reg, Length: 1}, nil
		case 0b011:
			return Instruction{Op: OpSbb, Reg: reg, Length: 1}, nil
		case 0b100:
			return Instruction{Op: OpAna, Reg: reg, Length: 1}, nil
		case 0b101:
			return Instruction{Op: OpXra, Reg: reg, Length: 1}, nil
		case 0b110:
			return Instruction{Op: OpOra, Reg: reg, Length: 1}, nil
		default:
			return Instruction{Op: OpCmp, Reg: reg, Length: 1}, nil
		}

	case opcode&0b11000111 == 0b11000000:
		return Instruction{Op: OpRcc, Cond: (opcode >> 3) & 0b111, Length: 1}, nil

	case opcode&0b11001111 == 0b11000001:
		pair := (opcode >> 4) & 0b11
		if pair == 0b11 {
			pair = 4 // PSW, not SP.
		}
		return Instruction{Op: OpPop, Pair: pair, Length: 1}, nil

	case opcode&0b11001111 == 0b11000101:
		pair := (opcode >> 4) & 0b11
		if pair == 0b11 {
			pair = 4 // PSW, not SP.
		}
		return Instruction{Op: OpPush, Pair: pair, Length: 1}, nil

	case opcode&0b11000111 == 0b11000010:
		if err := need(buf, opcode, 3); err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: OpJcc, Cond: (opcode >> 3) & 0b111, Imm16: imm16(buf), Length: 3}, nil

	case opcode&0b11000111 == 0b11000100:
		if err := need(buf, opcode, 3); err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: OpCcc, Cond: (opcode >> 3) & 0b111, Imm16: imm16(buf), Length: 3}, nil

	case opcode&0b11000111 == 0b11000110:
		if err := need(buf, opcode, 2); err != nil {
			return Instruction{}, err
		}
		data := buf[1]
		switch (opcode >> 3) & 0b111 {
		case 0b000:
			return Instruction{Op: OpAdi, Imm8: data, Length: 2}, nil
		case 0b001:
			return Instruction{Op: OpAci, Imm8: data, Length: 2}, nil
		case 0b010:
			return Instruction{Op: OpSui, Imm8: data, Length: 2}, nil
		case 0b011:
			return Instruction{Op: OpSbi, Imm8: data, Length: 2}, nil
		case 0b100:
			return Instruction{Op: OpAni, Imm8: data, Length: 2}, nil
		case 0b101:
			return Instruction{Op: OpXri, Imm8: data, Length: 2}, nil
		case 0b110:
			return Instruction{Op: OpOri, Imm8: data, Length: 2}, nil
		default:
			return Instruction{Op: OpCpi, Imm8: data, Length: 2}, nil
		}

	case opcode&0b11000111 == 0b11000111:
		return Instruction{Op: OpRst, Imm8: (opcode >> 3) & 0b111, Length: 1}, nil
	}

	return Instruction{}, fmt.Errorf("decoder: invalid opcode %#02x", opcode)
}
