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

import "testing"

// TestInstructionCycleCounts enforces the per-instruction cycle costs
// spec.md treats as authoritative: at least one case per distinct cost
// bucket (register vs. memory operand, condition taken vs. not taken).
func TestInstructionCycleCounts(t *testing.T) {
	cases := []struct {
		name    string
		program []byte
		setup   func(m *Machine)
		want    int
	}{
		{"NOP", []byte{0x00}, nil, 4},
		{"LXI", []byte{0x01, 0x00, 0x20}, nil, 10},
		{"STAX B", []byte{0x02}, func(m *Machine) { m.CPU.BC.Set(0x2000) }, 7},
		{"LDAX B", []byte{0x0a}, func(m *Machine) { m.CPU.BC.Set(0x2000) }, 7},
		{"INX B", []byte{0x03}, nil, 5},
		{"DCX B", []byte{0x0b}, nil, 5},
		{"INR B (reg)", []byte{0x04}, nil, 5},
		{"INR M (memory)", []byte{0x34}, func(m *Machine) { m.CPU.HL.Set(0x2000) }, 10},
		{"DCR B (reg)", []byte{0x05}, nil, 5},
		{"DCR M (memory)", []byte{0x35}, func(m *Machine) { m.CPU.HL.Set(0x2000) }, 10},
		{"MVI B (reg)", []byte{0x06, 0x05}, nil, 7},
		{"MVI M (memory)", []byte{0x36, 0x05}, func(m *Machine) { m.CPU.HL.Set(0x2000) }, 10},
		{"RLC", []byte{0x07}, nil, 4},
		{"RRC", []byte{0x0f}, nil, 4},
		{"RAL", []byte{0x17}, nil, 4},
		{"RAR", []byte{0x1f}, nil, 4},
		{"DAD B", []byte{0x09}, nil, 10},
		{"SHLD", []byte{0x22, 0x00, 0x20}, nil, 16},
		{"LHLD", []byte{0x2a, 0x00, 0x20}, nil, 16},
		{"STA", []byte{0x32, 0x00, 0x20}, nil, 13},
		{"LDA", []byte{0x3a, 0x00, 0x20}, nil, 13},
		{"CMA", []byte{0x2f}, nil, 4},
		{"STC", []byte{0x37}, nil, 4},
		{"CMC", []byte{0x3f}, nil, 4},
		{"MOV B,C (reg-reg)", []byte{0x41}, nil, 5},
		{"MOV B,M (memory)", []byte{0x46}, func(m *Machine) { m.CPU.HL.Set(0x2000) }, 7},
		{"HLT", []byte{0x76}, nil, 7},
		{"ADD B (reg)", []byte{0x80}, nil, 4},
		{"ADD M (memory)", []byte{0x86}, func(m *Machine) { m.CPU.HL.Set(0x2000) }, 7},
		{"ADI (immediate)", []byte{0xc6, 0x01}, nil, 7},
		{
			"RET", []byte{0xc9},
			func(m *Machine) {
				m.CPU.SP.Set(0x2400)
				m.Memory.Write16(0x2400, 0x1234)
			},
			10,
		},
		{
			"RNZ taken", []byte{0xc0},
			func(m *Machine) {
				m.CPU.SP.Set(0x2400)
				m.Memory.Write16(0x2400, 0x1234)
			},
			11,
		},
		{"RZ not taken", []byte{0xc8}, func(m *Machine) { m.CPU.SP.Set(0x2400) }, 5},
		{
			"POP B", []byte{0xc1},
			func(m *Machine) {
				m.CPU.SP.Set(0x2400)
				m.Memory.Write16(0x2400, 0xbead)
			},
			10,
		},
		{"PUSH B", []byte{0xc5}, func(m *Machine) { m.CPU.SP.Set(0x2400) }, 11},
		{"JMP", []byte{0xc3, 0x00, 0x20}, nil, 10},
		{"JNZ (taken)", []byte{0xc2, 0x00, 0x20}, nil, 10},
		{"CALL", []byte{0xcd, 0x00, 0x20}, func(m *Machine) { m.CPU.SP.Set(0x2400) }, 17},
		{"CNZ taken", []byte{0xc4, 0x00, 0x20}, func(m *Machine) { m.CPU.SP.Set(0x2400) }, 17},
		{"CZ not taken", []byte{0xcc, 0x00, 0x20}, func(m *Machine) { m.CPU.SP.Set(0x2400) }, 11},
		{"OUT", []byte{0xd3, 0x03}, nil, 10},
		{"IN", []byte{0xdb, 0x01}, nil, 10},
		{
			"XTHL", []byte{0xe3},
			func(m *Machine) {
				m.CPU.SP.Set(0x2400)
				m.Memory.Write16(0x2400, 0x1234)
				m.CPU.HL.Set(0x5678)
			},
			18,
		},
		{"PCHL", []byte{0xe9}, func(m *Machine) { m.CPU.HL.Set(0x1234) }, 5},
		{"XCHG", []byte{0xeb}, nil, 4},
		{"DI", []byte{0xf3}, nil, 4},
		{"EI", []byte{0xfb}, nil, 4},
		{"SPHL", []byte{0xf9}, func(m *Machine) { m.CPU.HL.Set(0x1234) }, 5},
	}

	for _, c := range cases {
		m := New()
		if c.setup != nil {
			c.setup(m)
		}
		if err := m.LoadROM(c.program); err != nil {
			t.Fatalf("%s: LoadROM: %v", c.name, err)
		}
		cycles, err := m.Step()
		if err != nil {
			t.Fatalf("%s: Step: %v", c.name, err)
		}
		if cycles != c.want {
			t.Errorf("%s: cycles = %d, want %d", c.name, cycles, c.want)
		}
	}
}
