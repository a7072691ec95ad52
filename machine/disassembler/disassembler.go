/*
   i8080 core - instruction disassembler

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

// Package disassembler formats decoded instructions as text, for the
// debug console and trace logging.
package disassembler

import (
	"fmt"

	"github.com/rcornwell/i8080/machine/decoder"
)

// mnemonic names every Op; families that carry an operand (register,
// register pair, condition, or immediate) fill it in at format time.
var mnemonic = map[decoder.Op]string{
	decoder.OpNop:  "NOP",
	decoder.OpLxi:  "LXI",
	decoder.OpStax: "STAX",
	decoder.OpInx:  "INX",
	decoder.OpInr:  "INR",
	decoder.OpDcr:  "DCR",
	decoder.OpMvi:  "MVI",
	decoder.OpRlc:  "RLC",
	decoder.OpRrc:  "RRC",
	decoder.OpRal:  "RAL",
	decoder.OpRar:  "RAR",
	decoder.OpDad:  "DAD",
	decoder.OpLdax: "LDAX",
	decoder.OpDcx:  "DCX",
	decoder.OpShld: "SHLD",
	decoder.OpLhld: "LHLD",
	decoder.OpSta:  "STA",
	decoder.OpLda:  "LDA",
	decoder.OpDaa:  "DAA",
	decoder.OpCma:  "CMA",
	decoder.OpStc:  "STC",
	decoder.OpCmc:  "CMC",
	decoder.OpMov:  "MOV",
	decoder.OpHlt:  "HLT",
	decoder.OpAdd:  "ADD",
	decoder.OpAdc:  "ADC",
	decoder.OpSub:  "SUB",
	decoder.OpSbb:  "SBB",
	decoder.OpAna:  "ANA",
	decoder.OpXra:  "XRA",
	decoder.OpOra:  "ORA",
	decoder.OpCmp:  "CMP",
	decoder.OpRet:  "RET",
	decoder.OpRcc:  "R",
	decoder.OpPop:  "POP",
	decoder.OpJmp:  "JMP",
	decoder.OpJcc:  "J",
	decoder.OpCall: "CALL",
	decoder.OpCcc:  "C",
	decoder.OpPush: "PUSH",
	decoder.OpAdi:  "ADI",
	decoder.OpAci:  "ACI",
	decoder.OpSui:  "SUI",
	decoder.OpSbi:  "SBI",
	decoder.OpAni:  "ANI",
	decoder.OpXri:  "XRI",
	decoder.OpOri:  "ORI",
	decoder.OpCpi:  "CPI",
	decoder.OpRst:  "RST",
	decoder.OpOut:  "OUT",
	decoder.OpIn:   "IN",
	decoder.OpXthl: "XTHL",
	decoder.OpPchl: "PCHL",
	decoder.OpXchg: "XCHG",
	decoder.OpDi:   "DI",
	decoder.OpEi:   "EI",
	decoder.OpSphl: "SPHL",
}

var regName = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}
var pairName = [5]string{"B", "D", "H", "SP", "PSW"}
var condName = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

// opcodeBytes renders the instruction's raw bytes as space-separated hex,
// left-justified to a fixed column width so the mnemonic that follows
// lines up regardless of instruction length -- matching the original
// disassembler's print_opcodes helper.
func opcodeBytes(buf []byte, length int) string {
	var hex string
	for i := 0; i < length && i < len(buf); i++ {
		hex += fmt.Sprintf("%02x ", buf[i])
	}
	return fmt.Sprintf("%-10s", hex)
}

// Format renders the instruction at pc, whose raw bytes are buf (at
// least inst.Length bytes), as a trace line: the address, the raw
// opcode bytes in hex, and the mnemonic with operands. It returns an
// error string in place of a mnemonic when inst itself carries no
// decode failure but the Op is outside the known table, which should
// never happen for an Instruction produced by decoder.Decode.
func Format(pc uint16, inst decoder.Instruction, buf []byte) string {
	name, ok := mnemonic[inst.Op]
	if !ok {
		return fmt.Sprintf("%04x  %s???", pc, opcodeBytes(buf, inst.Length))
	}

	var body string
	switch inst.Op {
	case decoder.OpLxi:
		body = fmt.Sprintf("%s %s,%04x", name, pairName[inst.Pair], inst.Imm16)
	case decoder.OpStax, decoder.OpLdax:
		body = fmt.Sprintf("%s %s", name, pairName[inst.Pair])
	case decoder.OpInx, decoder.OpDcx, decoder.OpDad:
		body = fmt.Sprintf("%s %s", name, pairName[inst.Pair])
	case decoder.OpInr, decoder.OpDcr:
		body = fmt.Sprintf("%s %s", name, regName[inst.Reg])
	case decoder.OpMvi:
		body = fmt.Sprintf("%s %s,%02x", name, regName[inst.Reg], inst.Imm8)
	case decoder.OpShld, decoder.OpLhld, decoder.OpSta, decoder.OpLda:
		body = fmt.Sprintf("%s %04x", name, inst.Imm16)
	case decoder.OpMov:
		body = fmt.Sprintf("%s %s,%s", name, regName[inst.Reg], regName[inst.Reg2])
	case decoder.OpAdd, decoder.OpAdc, decoder.OpSub, decoder.OpSbb,
		decoder.OpAna, decoder.OpXra, decoder.OpOra, decoder.OpCmp:
		body = fmt.Sprintf("%s %s", name, regName[inst.Reg])
	case decoder.OpRcc:
		body = fmt.Sprintf("%s%s", name, condName[inst.Cond])
	case decoder.OpPop, decoder.OpPush:
		body = fmt.Sprintf("%s %s", name, pairName[inst.Pair])
	case decoder.OpJmp, decoder.OpCall:
		body = fmt.Sprintf("%s %04x", name, inst.Imm16)
	case decoder.OpJcc, decoder.OpCcc:
		body = fmt.Sprintf("%s%s %04x", name, condName[inst.Cond], inst.Imm16)
	case decoder.OpAdi, decoder.OpAci, decoder.OpSui, decoder.OpSbi,
		decoder.OpAni, decoder.OpXri, decoder.OpOri, decoder.OpCpi:
		body = fmt.Sprintf("%s %02x", name, inst.Imm8)
	case decoder.OpRst:
		body = fmt.Sprintf("%s %d", name, inst.Imm8)
	case decoder.OpOut, decoder.OpIn:
		body = fmt.Sprintf("%s %02x", name, inst.Imm8)
	default:
		body = name
	}

	return fmt.Sprintf("%04x  %s%s", pc, opcodeBytes(buf, inst.Length), body)
}
