/*
   i8080 core - vblank interrupt scheduler

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

// Package interrupt implements the cabinet's pair of periodic interrupt
// sources, driven purely by the cycle counts the executor reports after
// each instruction.
package interrupt

// period is the number of cycles between successive interrupts from a
// single source; 33,334 cycles at 2 MHz is one 60 Hz vblank period.
const period = 33334

// source is one periodic counter.
type source struct {
	number  uint8
	cycles  uint16
	pending bool
}

// Scheduler is the ordered pair of interrupt sources plus the latched
// aggregate state the executor consults before every fetch.
type Scheduler struct {
	sources   [2]source
	Interrupt bool  // Latched: an interrupt is pending delivery.
	Number    uint8 // Vector of the last source that tripped.
}

// New returns a scheduler in its initial state: source 1 preloaded to
// half a period so the two sources fire staggered, source 2 starting
// from zero.
func New() *Scheduler {
	return &Scheduler{
		sources: [2]source{
			{number: 1, cycles: period / 2},
			{number: 2, cycles: 0},
		},
	}
}

// Accumulate advances both sources by delta cycles. Each source that
// crosses the period boundary has its accumulator reduced modulo the
// period and is marked pending; the aggregate Interrupt/Number reflect
// whichever source tripped last during this call, overwriting any
// earlier trip from the same call.
func (s *Scheduler) Accumulate(delta uint16) {
	for i := range s.sources {
		src := &s.sources[i]
		src.cycles += delta
		if src.cycles >= period {
			src.cycles -= period
			src.pending = true
		}
		if src.pending {
			s.Interrupt = true
			s.Number = src.number
			src.pending = false
		}
	}
}

// Acknowledge clears the latched interrupt, called once the executor
// has synthesized the RST for it (or dropped it because interrupts were
// disabled).
func (s *Scheduler) Acknowledge() {
	s.Interrupt = false
}
