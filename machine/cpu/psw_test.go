package cpu

import "testing"

func TestNewPSWReservedBit(t *testing.T) {
	psw := NewPSW()
	if psw.Get()&0x0200 == 0 {
		t.Errorf("reserved bit 1 should be set on a fresh PSW, got %#04x", psw.Get())
	}
	if psw.A != 0 {
		t.Errorf("accumulator should start zero, got %#02x", psw.A)
	}
}

func TestSetFromResultParity(t *testing.T) {
	cases := []struct {
		result uint8
		parity bool
		zero   bool
		sign   bool
	}{
		{0x00, true, true, false},
		{0x01, false, false, false},
		{0x03, true, false, false},
		{0x80, false, false, true},
		{0xff, true, false, true},
	}
	for _, c := range cases {
		psw := NewPSW()
		psw.SetFromResult(c.result)
		if psw.Parity() != c.parity {
			t.Errorf("result %#02x: parity = %v, want %v", c.result, psw.Parity(), c.parity)
		}
		if psw.Zero() != c.zero {
			t.Errorf("result %#02x: zero = %v, want %v", c.result, psw.Zero(), c.zero)
		}
		if psw.Sign() != c.sign {
			t.Errorf("result %#02x: sign = %v, want %v", c.result, psw.Sign(), c.sign)
		}
	}
}

func TestSetFromResultPreservesCarry(t *testing.T) {
	psw := NewPSW()
	psw.SetCarry(true)
	psw.SetFromResult(0x00)
	if !psw.Carry() {
		t.Error("SetFromResult must not clear the carry flag")
	}
}

func TestPSWGetSetRoundTrip(t *testing.T) {
	psw := NewPSW()
	psw.A = 0x5a
	psw.SetCarry(true)
	psw.SetFromResult(0x00)
	packed := psw.Get()

	var other PSW
	other.Set(packed)
	if other != psw {
		t.Errorf("round trip through Get/Set: got %+v, want %+v", other, psw)
	}
}
