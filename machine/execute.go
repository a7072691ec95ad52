/*
   i8080 core - instruction execution

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

package machine

import (
	"fmt"

	"github.com/rcornwell/i8080/machine/cpu"
	"github.com/rcornwell/i8080/machine/decoder"
)

// execute carries out inst against the machine's current state,
// returning the number of cycles it consumed. The switch is exhaustive
// over decoder.Op so a new opcode added to the decoder without a
// matching case here fails loudly instead of silently doing nothing.
func (m *Machine) execute(inst decoder.Instruction) (int, error) {
	switch inst.Op {
	case decoder.OpNop:
		return 4, nil

	case decoder.OpLxi:
		m.CPU.SetPair(inst.Pair, inst.Imm16)
		return 10, nil

	case decoder.OpStax:
		m.Memory.Write8(m.CPU.Pair(inst.Pair), m.CPU.PSW.A)
		return 7, nil

	case decoder.OpLdax:
		m.CPU.PSW.A = m.Memory.Read8(m.CPU.Pair(inst.Pair))
		return 7, nil

	case decoder.OpInx:
		m.CPU.SetPair(inst.Pair, m.CPU.Pair(inst.Pair)+1)
		return 5, nil

	case decoder.OpDcx:
		m.CPU.SetPair(inst.Pair, m.CPU.Pair(inst.Pair)-1)
		return 5, nil

	case decoder.OpInr:
		result := m.getReg(inst.Reg) + 1
		m.setReg(inst.Reg, result)
		m.CPU.SetFromResult(result)
		if inst.Reg == cpu.RegM {
			return 10, nil
		}
		return 5, nil

	case decoder.OpDcr:
		result := m.getReg(inst.Reg) - 1
		m.setReg(inst.Reg, result)
		m.CPU.SetFromResult(result)
		if inst.Reg == cpu.RegM {
			return 10, nil
		}
		return 5, nil

	case decoder.OpMvi:
		m.setReg(inst.Reg, inst.Imm8)
		if inst.Reg == cpu.RegM {
			return 10, nil
		}
		return 7, nil

	case decoder.OpRlc:
		carry := m.CPU.PSW.A&0x80 != 0
		m.CPU.PSW.A = m.CPU.PSW.A<<1 | boolToBit(carry)
		m.CPU.SetCarry(carry)
		return 4, nil

	case decoder.OpRrc:
		carry := m.CPU.PSW.A&0x01 != 0
		m.CPU.PSW.A = m.CPU.PSW.A>>1 | boolToBit(carry)<<7
		m.CPU.SetCarry(carry)
		return 4, nil

	case decoder.OpRal:
		oldCarry := boolToBit(m.CPU.Carry())
		newCarry := m.CPU.PSW.A&0x80 != 0
		m.CPU.PSW.A = m.CPU.PSW.A<<1 | oldCarry
		m.CPU.SetCarry(newCarry)
		return 4, nil

	case decoder.OpRar:
		oldCarry := boolToBit(m.CPU.Carry())
		newCarry := m.CPU.PSW.A&0x01 != 0
		m.CPU.PSW.A = m.CPU.PSW.A>>1 | oldCarry<<7
		m.CPU.SetCarry(newCarry)
		return 4, nil

	case decoder.OpDad:
		sum := uint32(m.CPU.HL.Get()) + uint32(m.CPU.Pair(inst.Pair))
		m.CPU.HL.Set(uint16(sum))
		m.CPU.SetCarry(sum > 0xFFFF)
		return 10, nil

	case decoder.OpShld:
		m.Memory.Write16(inst.Imm16, m.CPU.HL.Get())
		return 16, nil

	case decoder.OpLhld:
		m.CPU.HL.Set(m.Memory.Read16(inst.Imm16))
		return 16, nil

	case decoder.OpSta:
		m.Memory.Write8(inst.Imm16, m.CPU.PSW.A)
		return 13, nil

	case decoder.OpLda:
		m.CPU.PSW.A = m.Memory.Read8(inst.Imm16)
		return 13, nil

	case decoder.OpDaa:
		return 0, fmt.Errorf("decimal adjust accumulator not implemented")

	case decoder.OpCma:
		m.CPU.PSW.A = ^m.CPU.PSW.A
		return 4, nil

	case decoder.OpStc:
		m.CPU.SetCarry(true)
		return 4, nil

	case decoder.OpCmc:
		m.CPU.SetCarry(!m.CPU.Carry())
		return 4, nil

	case decoder.OpMov:
		value := m.getReg(inst.Reg2)
		m.setReg(inst.Reg, value)
		if inst.Reg == cpu.RegM || inst.Reg2 == cpu.RegM {
			return 7, nil
		}
		return 5, nil

	case decoder.OpHlt:
		m.Halted = true
		return 7, nil

	case decoder.OpAdd:
		m.add(m.getReg(inst.Reg), false)
		return aluCycles(inst.Reg), nil
	case decoder.OpAdc:
		m.add(m.getReg(inst.Reg), true)
		return aluCycles(inst.Reg), nil
	case decoder.OpSub:
		m.sub(m.getReg(inst.Reg), false)
		return aluCycles(inst.Reg), nil
	case decoder.OpSbb:
		m.sub(m.getReg(inst.Reg), true)
		return aluCycles(inst.Reg), nil
	case decoder.OpAna:
		m.logic(m.CPU.PSW.A & m.getReg(inst.Reg))
		return aluCycles(inst.Reg), nil
	case decoder.OpXra:
		m.logic(m.CPU.PSW.A ^ m.getReg(inst.Reg))
		return aluCycles(inst.Reg), nil
	case decoder.OpOra:
		m.logic(m.CPU.PSW.A | m.getReg(inst.Reg))
		return aluCycles(inst.Reg), nil
	case decoder.OpCmp:
		m.compare(m.getReg(inst.Reg))
		return aluCycles(inst.Reg), nil

	case decoder.OpAdi:
		m.add(inst.Imm8, false)
		return 7, nil
	case decoder.OpAci:
		m.add(inst.Imm8, true)
		return 7, nil
	case decoder.OpSui:
		m.sub(inst.Imm8, false)
		return 7, nil
	case decoder.OpSbi:
		m.sub(inst.Imm8, true)
		return 7, nil
	case decoder.OpAni:
		m.logic(m.CPU.PSW.A & inst.Imm8)
		return 7, nil
	case decoder.OpXri:
		m.logic(m.CPU.PSW.A ^ inst.Imm8)
		return 7, nil
	case decoder.OpOri:
		m.logic(m.CPU.PSW.A | inst.Imm8)
		return 7, nil
	case decoder.OpCpi:
		m.compare(inst.Imm8)
		return 7, nil

	case decoder.OpRet:
		m.CPU.PC.Set(m.pop())
		return 10, nil

	case decoder.OpRcc:
		if m.condition(inst.Cond) {
			m.CPU.PC.Set(m.pop())
			return 11, nil
		}
		return 5, nil

	case decoder.OpPop:
		m.CPU.SetStackPair(inst.Pair, m.pop())
		return 10, nil

	case decoder.OpPush:
		m.push(m.CPU.StackPair(inst.Pair))
		return 11, nil

	case decoder.OpJmp:
		m.CPU.PC.Set(inst.Imm16)
		return 10, nil

	case decoder.OpJcc:
		if m.condition(inst.Cond) {
			m.CPU.PC.Set(inst.Imm16)
		}
		return 10, nil

	case decoder.OpCall:
		m.push(m.CPU.PC.Get())
		m.CPU.PC.Set(inst.Imm16)
		return 17, nil

	case decoder.OpCcc:
		if m.condition(inst.Cond) {
			m.push(m.CPU.PC.Get())
			m.CPU.PC.Set(inst.Imm16)
			return 17, nil
		}
		return 11, nil

	case decoder.OpRst:
		m.push(m.CPU.PC.Get())
		m.CPU.PC.Set(uint16(inst.Imm8) * 8)
		return 11, nil

	case decoder.OpOut:
		if err := m.Ports.Write(inst.Imm8, m.CPU.PSW.A); err != nil {
			return 0, err
		}
		return 10, nil

	case decoder.OpIn:
		value, err := m.Ports.Read(inst.Imm8)
		if err != nil {
			return 0, err
		}
		m.CPU.PSW.A = value
		return 10, nil

	case decoder.OpXthl:
		top := m.Memory.Read16(m.CPU.SP.Get())
		m.Memory.Write16(m.CPU.SP.Get(), m.CPU.HL.Get())
		m.CPU.HL.Set(top)
		return 18, nil

	case decoder.OpPchl:
		m.CPU.PC.Set(m.CPU.HL.Get())
		return 5, nil

	case decoder.OpXchg:
		m.CPU.DE, m.CPU.HL = m.CPU.HL, m.CPU.DE
		return 4, nil

	case decoder.OpDi:
		m.CPU.InterruptsEnabled = false
		return 4, nil

	case decoder.OpEi:
		m.CPU.InterruptsEnabled = true
		return 4, nil

	case decoder.OpSphl:
		m.CPU.SP.Set(m.CPU.HL.Get())
		return 5, nil

	default:
		return 0, fmt.Errorf("execute: unhandled opcode tag %d", inst.Op)
	}
}

// aluCycles is 7 when the ALU family's operand is memory through HL,
// 4 otherwise.
func aluCycles(reg uint8) int {
	if reg == cpu.RegM {
		return 7
	}
	return 4
}

func boolToBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// add performs A = A + operand (+ carry-in, if withCarry), updating
// all four flags from the 9-bit result.
func (m *Machine) add(operand uint8, withCarry bool) {
	carryIn := uint16(0)
	if withCarry && m.CPU.Carry() {
		carryIn = 1
	}
	sum := uint16(m.CPU.PSW.A) + uint16(operand) + carryIn
	m.CPU.PSW.A = uint8(sum)
	m.CPU.SetCarry(sum > 0xFF)
	m.CPU.SetFromResult(m.CPU.PSW.A)
}

// sub performs A = A - operand (- borrow-in, if withBorrow), with the
// carry flag left set to mean "a borrow occurred", as the real part
// does.
func (m *Machine) sub(operand uint8, withBorrow bool) {
	borrowIn := uint16(0)
	if withBorrow && m.CPU.Carry() {
		borrowIn = 1
	}
	subtrahend := uint16(operand) + borrowIn
	minuend := uint16(m.CPU.PSW.A)
	m.CPU.PSW.A = uint8(minuend - subtrahend)
	m.CPU.SetCarry(minuend < subtrahend)
	m.CPU.SetFromResult(m.CPU.PSW.A)
}

// logic stores result into A, clears carry, and updates Z/S/P -- the
// shared tail of ANA/XRA/ORA and their immediate forms.
func (m *Machine) logic(result uint8) {
	m.CPU.PSW.A = result
	m.CPU.SetCarry(false)
	m.CPU.SetFromResult(result)
}

// compare performs A - operand for flags only, leaving A unmodified.
func (m *Machine) compare(operand uint8) {
	minuend := uint16(m.CPU.PSW.A)
	subtrahend := uint16(operand)
	result := uint8(minuend - subtrahend)
	m.CPU.SetCarry(minuend < subtrahend)
	m.CPU.SetFromResult(result)
}
