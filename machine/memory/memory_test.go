package memory

import "testing"

func TestReadWrite8(t *testing.T) {
	m := New()
	m.Write8(0x1234, 0x42)
	if got := m.Read8(0x1234); got != 0x42 {
		t.Errorf("Read8(0x1234) = %#02x, want 0x42", got)
	}
}

func TestReadWrite16LittleEndian(t *testing.T) {
	m := New()
	m.Write16(0x10, 0xbeef)
	if got := m.Read8(0x10); got != 0xef {
		t.Errorf("low byte = %#02x, want 0xef", got)
	}
	if got := m.Read8(0x11); got != 0xbe {
		t.Errorf("high byte = %#02x, want 0xbe", got)
	}
	if got := m.Read16(0x10); got != 0xbeef {
		t.Errorf("Read16(0x10) = %#04x, want 0xbeef", got)
	}
}

func TestReadWriteSlice(t *testing.T) {
	m := New()
	data := []byte{1, 2, 3, 4}
	m.Write(0x100, data)
	got := m.Read(0x100, len(data))
	for i, b := range data {
		if got[i] != b {
			t.Errorf("byte %d = %#02x, want %#02x", i, got[i], b)
		}
	}
}

func TestAddressWrapsModuloSize(t *testing.T) {
	m := New()
	m.Write8(Size, 0x55)
	if got := m.Read8(0); got != 0x55 {
		t.Errorf("write at Size should wrap to address 0, got %#02x", got)
	}
}
