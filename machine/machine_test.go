package machine

import "testing"

func TestLoadROMRejectsOversizedImage(t *testing.T) {
	m := New()
	data := make([]byte, maxROMSize+1)
	if err := m.LoadROM(data); err == nil {
		t.Error("LoadROM should reject an image larger than the ROM region")
	}
}

func TestLoadROMAndFetch(t *testing.T) {
	m := New()
	if err := m.LoadROM([]byte{0x00, 0x76}); err != nil { // NOP; HLT
		t.Fatalf("LoadROM: %v", err)
	}
	if _, err := m.Step(); err != nil {
		t.Fatalf("Step (NOP): %v", err)
	}
	if m.CPU.PC.Get() != 1 {
		t.Errorf("PC = %#04x, want 1", m.CPU.PC.Get())
	}
	if _, err := m.Step(); err != nil {
		t.Fatalf("Step (HLT): %v", err)
	}
	if !m.Halted {
		t.Error("HLT should set Halted")
	}
}

func TestMviAdiHlt(t *testing.T) {
	m := New()
	// MVI A,05 ; ADI 03 ; HLT
	program := []byte{0x3e, 0x05, 0xc6, 0x03, 0x76}
	if err := m.LoadROM(program); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := m.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if m.CPU.PSW.A != 0x08 {
		t.Errorf("A = %#02x, want 0x08", m.CPU.PSW.A)
	}
	if !m.Halted {
		t.Error("expected machine halted after HLT")
	}
}

func TestAdditionCarryFlag(t *testing.T) {
	m := New()
	program := []byte{0x3e, 0xff, 0xc6, 0x01} // MVI A,FF ; ADI 01
	if err := m.LoadROM(program); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	_, _ = m.Step()
	_, _ = m.Step()
	if m.CPU.PSW.A != 0x00 {
		t.Errorf("A = %#02x, want 0x00", m.CPU.PSW.A)
	}
	if !m.CPU.Carry() {
		t.Error("0xff + 1 should set carry")
	}
	if !m.CPU.Zero() {
		t.Error("0xff + 1 wrapping to 0 should set zero")
	}
}

func TestSubtractionBorrow(t *testing.T) {
	m := New()
	program := []byte{0x3e, 0x01, 0xd6, 0x02} // MVI A,01 ; SUI 02
	if err := m.LoadROM(program); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	_, _ = m.Step()
	_, _ = m.Step()
	if m.CPU.PSW.A != 0xff {
		t.Errorf("A = %#02x, want 0xff", m.CPU.PSW.A)
	}
	if !m.CPU.Carry() {
		t.Error("1 - 2 should set carry (borrow occurred)")
	}
}

func TestInrDcrPreserveCarry(t *testing.T) {
	m := New()
	program := []byte{0x37, 0x3c} // STC ; INR A
	if err := m.LoadROM(program); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	_, _ = m.Step()
	_, _ = m.Step()
	if !m.CPU.Carry() {
		t.Error("INR must not clear a carry set by a prior instruction")
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	m := New()
	m.CPU.SP.Set(0x2400)
	m.CPU.BC.Set(0xbead)
	program := []byte{0xc5, 0xd1} // PUSH B ; POP D
	if err := m.LoadROM(program); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	_, _ = m.Step()
	_, _ = m.Step()
	if m.CPU.DE.Get() != 0xbead {
		t.Errorf("DE = %#04x, want 0xbead", m.CPU.DE.Get())
	}
	if m.CPU.SP.Get() != 0x2400 {
		t.Errorf("SP = %#04x, want 0x2400 after matched push/pop", m.CPU.SP.Get())
	}
}

func TestCallRetRoundTrip(t *testing.T) {
	m := New()
	m.CPU.SP.Set(0x2400)
	// At 0000: CALL 0010 ; at 0010: RET
	m.Memory.Write(0x0000, []byte{0xcd, 0x10, 0x00})
	m.Memory.Write8(0x0010, 0xc9)
	if _, err := m.Step(); err != nil {
		t.Fatalf("Step (CALL): %v", err)
	}
	if m.CPU.PC.Get() != 0x0010 {
		t.Errorf("PC = %#04x, want 0x0010 after CALL", m.CPU.PC.Get())
	}
	if _, err := m.Step(); err != nil {
		t.Fatalf("Step (RET): %v", err)
	}
	if m.CPU.PC.Get() != 0x0003 {
		t.Errorf("PC = %#04x, want 0x0003 after RET", m.CPU.PC.Get())
	}
}

func TestProgrammaticRstPushesUnadvancedPC(t *testing.T) {
	m := New()
	m.CPU.SP.Set(0x2400)
	// RST 1 at 0x0050: the pushed return address must point at the RST
	// opcode itself (0x0050), not past it -- unlike every other
	// instruction, RST does not get the generic pre-execute PC advance.
	m.Memory.Write8(0x0050, 0xcf)
	m.CPU.PC.Set(0x0050)

	if _, err := m.Step(); err != nil {
		t.Fatalf("Step (RST 1): %v", err)
	}
	if m.CPU.PC.Get() != 0x0008 {
		t.Errorf("PC = %#04x, want 0x0008 (RST 1 vector)", m.CPU.PC.Get())
	}
	pushed := m.pop()
	if pushed != 0x0050 {
		t.Errorf("pushed return address = %#04x, want 0x0050 (the RST opcode's own address)", pushed)
	}
}

func TestOutInRoundTrip(t *testing.T) {
	m := New()
	program := []byte{0x3e, 0x5a, 0xd3, 0x03, 0x3e, 0x00, 0xdb, 0x01}
	if err := m.LoadROM(program); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	m.Ports.Input1 = 0x99
	for i := 0; i < 4; i++ {
		if _, err := m.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if m.CPU.PSW.A != 0x99 {
		t.Errorf("A = %#02x, want 0x99 read back from port 1", m.CPU.PSW.A)
	}
	if m.Ports.Sound1() != 0x5a {
		t.Errorf("Sound1() = %#02x, want 0x5a", m.Ports.Sound1())
	}
}

func TestInterruptDeliveryWhenEnabled(t *testing.T) {
	m := New()
	m.CPU.SP.Set(0x2400)
	m.CPU.InterruptsEnabled = true
	m.Sched.Interrupt = true
	m.Sched.Number = 2

	cycles, err := m.Step()
	if err != nil {
		t.Fatalf("Step (interrupt delivery): %v", err)
	}
	if cycles != 11 {
		t.Errorf("interrupt delivery cost %d cycles, want 11 (RST cost)", cycles)
	}
	if m.CPU.PC.Get() != 0x0010 {
		t.Errorf("PC = %#04x, want 0x0010 (RST 2 vector)", m.CPU.PC.Get())
	}
	if m.CPU.InterruptsEnabled {
		t.Error("interrupt delivery should clear the enable latch")
	}
	if m.Sched.Interrupt {
		t.Error("interrupt delivery should acknowledge the scheduler")
	}
}

func TestInterruptDroppedWhenDisabled(t *testing.T) {
	m := New()
	if err := m.LoadROM([]byte{0x00}); err != nil { // NOP at 0000
		t.Fatalf("LoadROM: %v", err)
	}
	m.CPU.InterruptsEnabled = false
	m.Sched.Interrupt = true
	m.Sched.Number = 1

	if _, err := m.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.CPU.PC.Get() != 1 {
		t.Error("a disabled interrupt should not divert execution; PC should just advance past the NOP")
	}
}
