package controller

import "testing"

func TestShiftsOutButtonsInOrder(t *testing.T) {
	var j Joypad
	j.SetButtons(1<<BitA | 1<<BitStart)
	j.Write(0x01)
	j.Write(0x00) // strobe high then low: latch

	want := []uint8{0, 0, 0, 0, 1, 0, 0, 1} // right,left,up,down,A,B,select,start
	for i, w := range want {
		if got := j.Read(); got != w {
			t.Fatalf("bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestReadsOnesAfterEighthBit(t *testing.T) {
	var j Joypad
	j.SetButtons(0xFF)
	j.Write(0x01)
	j.Write(0x00)

	for i := 0; i < 8; i++ {
		j.Read()
	}
	for i := 0; i < 3; i++ {
		if got := j.Read(); got != 1 {
			t.Errorf("read past bit 8 = %d, want 1", got)
		}
	}
}

func TestStrobeHighContinuouslyReloads(t *testing.T) {
	var j Joypad
	j.Write(0x01) // strobe high
	j.SetButtons(1 << BitRight)

	if got := j.Read(); got != 1 {
		t.Errorf("first bit while strobing = %d, want 1 (Right pressed)", got)
	}
	// Still strobing: every read should keep reflecting bit 0 of the
	// live state, not advance the shift register.
	if got := j.Read(); got != 1 {
		t.Errorf("second read while strobing = %d, want 1 (strobe holds the register at bit 0)", got)
	}
}
