/*
   i8080 core - flat memory image

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

// Package memory implements the flat 20480-byte address space shared by
// the ROM, work RAM, and video RAM regions of the arcade board.
package memory

// Size is the fixed capacity of the address space: 0x5000 bytes.
const Size = 0x5000

// Memory is a contiguous byte array addressed modulo Size. Read and
// Write (and their 8/16-bit helpers) are the only mutators.
type Memory struct {
	bytes [Size]byte
}

// New returns a zeroed memory image.
func New() *Memory {
	return &Memory{}
}

// Read returns a copy of length bytes starting at addr. addr is taken
// modulo Size; out-of-range access beyond that point is a programming
// error and is not specially handled.
func (m *Memory) Read(addr uint16, length int) []byte {
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = m.bytes[(int(addr)+i)%Size]
	}
	return out
}

// Read8 returns the byte at addr.
func (m *Memory) Read8(addr uint16) uint8 {
	return m.bytes[int(addr)%Size]
}

// Read16 returns the little-endian word at addr, addr+1.
func (m *Memory) Read16(addr uint16) uint16 {
	lo := m.Read8(addr)
	hi := m.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write stores data starting at addr.
func (m *Memory) Write(addr uint16, data []byte) {
	for i, b := range data {
		m.bytes[(int(addr)+i)%Size] = b
	}
}

// Write8 stores a single byte at addr.
func (m *Memory) Write8(addr uint16, data uint8) {
	m.bytes[int(addr)%Size] = data
}

// Write16 stores a little-endian word at addr, addr+1.
func (m *Memory) Write16(addr uint16, data uint16) {
	m.Write8(addr, uint8(data))
	m.Write8(addr+1, uint8(data>>8))
}
