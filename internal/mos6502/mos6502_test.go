package mos6502

import "testing"

// testBus is a flat 64 KiB memory implementing Bus, used the way the
// teacher's mem test double is: directly addressable and easy to seed
// with a tiny program before stepping the CPU.
type testBus struct {
	mem [0x10000]uint8
}

func (b *testBus) Read(addr uint16) uint8      { return b.mem[addr] }
func (b *testBus) Write(addr uint16, v uint8)  { b.mem[addr] = v }

func (b *testBus) load(addr uint16, bytes ...uint8) {
	for i, v := range bytes {
		b.mem[int(addr)+i] = v
	}
}

func newTestCPU(resetVector uint16, bytes ...uint8) (*CPU, *testBus) {
	bus := &testBus{}
	bus.load(resetVector, bytes...)
	bus.mem[VectorReset] = uint8(resetVector)
	bus.mem[VectorReset+1] = uint8(resetVector >> 8)

	c := New(bus, 1)
	c.Step() // service the initial reset
	return c, bus
}

func TestPowerOnState(t *testing.T) {
	c, _ := newTestCPU(0xC000)

	if c.SP != 0xFD-3 {
		t.Errorf("SP = %#02x, want %#02x (three decrements for reset's phantom pushes)", c.SP, 0xFD-3)
	}
	if c.P&FlagIRQOff == 0 {
		t.Errorf("P&FlagIRQOff = 0, want set after reset")
	}
	if c.P&FlagUnused == 0 {
		t.Errorf("P&FlagUnused = 0, want always set")
	}
	if c.PC != 0xC000 {
		t.Errorf("PC = %#04x, want %#04x", c.PC, 0xC000)
	}
}

func TestADCOverflow(t *testing.T) {
	tests := []struct {
		name         string
		a, m, carry  uint8
		wantA        uint8
		wantC, wantV bool
	}{
		{"80+FF overflow and carry", 0x80, 0xFF, 0, 0x7F, true, true},
		{"7F+01 overflow", 0x7F, 0x01, 0, 0x80, false, true},
		{"80+80 overflow and carry", 0x80, 0x80, 0, 0x00, true, true},
		{"01+01 plain", 0x01, 0x01, 0, 0x02, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, bus := newTestCPU(0xC000, 0x69, tt.m) // ADC #imm
			c.A = tt.a
			c.setFlag(FlagCarry, tt.carry != 0)
			_ = bus
			c.Step()

			if c.A != tt.wantA {
				t.Errorf("A = %#02x, want %#02x", c.A, tt.wantA)
			}
			if (c.P&FlagCarry != 0) != tt.wantC {
				t.Errorf("carry = %v, want %v", c.P&FlagCarry != 0, tt.wantC)
			}
			if (c.P&FlagOverflow != 0) != tt.wantV {
				t.Errorf("overflow = %v, want %v", c.P&FlagOverflow != 0, tt.wantV)
			}
		})
	}
}

func TestSBCIsAdcOfComplement(t *testing.T) {
	c, _ := newTestCPU(0xC000, 0xE9, 0x01) // SBC #$01
	c.A = 0x05
	c.flagsOn(FlagCarry) // carry set means "no borrow"
	c.Step()

	if c.A != 0x04 {
		t.Errorf("A = %#02x, want 0x04", c.A)
	}
	if c.P&FlagCarry == 0 {
		t.Errorf("carry clear, want set (no borrow occurred)")
	}
}

func TestCMPCarrySetWhenRegGTEOperand(t *testing.T) {
	tests := []struct {
		reg, m uint8
		wantC  bool
	}{
		{0x10, 0x10, true},
		{0x20, 0x10, true},
		{0x05, 0x10, false},
	}

	for _, tt := range tests {
		c, _ := newTestCPU(0xC000, 0xC9, tt.m) // CMP #imm
		c.A = tt.reg
		c.Step()
		if (c.P&FlagCarry != 0) != tt.wantC {
			t.Errorf("CMP %#02x,%#02x: carry = %v, want %v", tt.reg, tt.m, c.P&FlagCarry != 0, tt.wantC)
		}
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, bus := newTestCPU(0xC000, 0x6C, 0xFF, 0x30) // JMP ($30FF)
	bus.load(0x30FF, 0x40)
	bus.load(0x3000, 0x80) // high byte is (mis)read from 0x3000, not 0x3100
	bus.load(0x3100, 0xFF) // if the bug were absent, this would be read instead

	c.Step()

	if c.PC != 0x8040 {
		t.Errorf("PC = %#04x, want %#04x (indirect JMP page-wrap bug)", c.PC, 0x8040)
	}
}

func TestJMPIndirectNoWrap(t *testing.T) {
	c, bus := newTestCPU(0xC000, 0x6C, 0x00, 0x30) // JMP ($3000)
	bus.load(0x3000, 0x34, 0x12)

	c.Step()

	if c.PC != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234", c.PC)
	}
}

func TestZeroPageIndexedWraps(t *testing.T) {
	c, bus := newTestCPU(0xC000, 0xB5, 0xFF) // LDA $FF,X
	c.X = 2
	bus.load(0x0001, 0x42) // (0xFF+2) wraps to 0x01 within the zero page

	c.Step()

	if c.A != 0x42 {
		t.Errorf("A = %#02x, want 0x42", c.A)
	}
}

func TestPHPSetsBreakAndUnused(t *testing.T) {
	c, bus := newTestCPU(0xC000, 0x08) // PHP
	c.P = FlagCarry | FlagUnused

	c.Step()

	pushed := bus.mem[0x0100+int(c.SP)+1]
	if pushed&FlagBreak == 0 || pushed&FlagUnused == 0 {
		t.Errorf("pushed status = %#02x, want bits 4 and 5 both set", pushed)
	}
}

func TestPLPPreservesBreakAndUnusedInRegister(t *testing.T) {
	c, bus := newTestCPU(0xC000, 0x28) // PLP
	c.SP = 0xFC
	bus.load(0x01FD, 0x00) // all flags clear, including bits 4/5, on the stack
	wantB := c.P & FlagBreak // set since power-on

	c.Step()

	if c.P&FlagUnused == 0 {
		t.Errorf("P&FlagUnused clear after PLP, want always set")
	}
	if c.P&FlagBreak != wantB {
		t.Errorf("P&FlagBreak = %#02x after PLP, want %#02x (B in the live register is kept, not loaded from the stack)", c.P&FlagBreak, wantB)
	}
}

func TestNMITakesPriorityOverIRQ(t *testing.T) {
	c, bus := newTestCPU(0xC000, 0xEA) // NOP, so if neither interrupt fired we'd just see PC advance
	bus.mem[VectorNMI] = 0x00
	bus.mem[VectorNMI+1] = 0x40
	bus.mem[VectorIRQ] = 0x00
	bus.mem[VectorIRQ+1] = 0x50

	c.flagsOff(FlagIRQOff)
	c.RaiseIRQ()
	c.RaiseNMI()
	c.Step()

	if c.PC != 0x4000 {
		t.Errorf("PC = %#04x, want 0x4000 (NMI vector; NMI must preempt a pending IRQ)", c.PC)
	}
}

func TestIRQMaskedByInterruptDisable(t *testing.T) {
	c, bus := newTestCPU(0xC000, 0xEA)
	bus.mem[VectorIRQ] = 0x00
	bus.mem[VectorIRQ+1] = 0x50

	c.flagsOn(FlagIRQOff)
	c.RaiseIRQ()
	c.Step()

	if c.PC == 0x5000 {
		t.Errorf("IRQ serviced despite FlagIRQOff being set")
	}
}

func TestBRKPushesReturnAddressPast2Bytes(t *testing.T) {
	c, bus := newTestCPU(0xC000, 0x00, 0xFF) // BRK, padding byte
	bus.mem[VectorBRK] = 0x00
	bus.mem[VectorBRK+1] = 0x40

	startSP := c.SP
	c.Step()

	if c.PC != 0x4000 {
		t.Errorf("PC = %#04x, want 0x4000", c.PC)
	}
	ret := uint16(bus.mem[0x0100+int(startSP)-1]) | uint16(bus.mem[0x0100+int(startSP)])<<8
	if ret != 0xC002 {
		t.Errorf("pushed return addr = %#04x, want 0xc002", ret)
	}
}

func TestPageCrossingAddsCycle(t *testing.T) {
	c, bus := newTestCPU(0xC000, 0xBD, 0xFF, 0x20) // LDA $20FF,X
	c.X = 1                                        // crosses into $2100
	bus.load(0x2100, 0x77)

	c.execute()
	if c.cyclesLeft != 4 {
		t.Errorf("cyclesLeft after dispatch = %d, want 4 (base 4 - 1 already charged + 1 crossing)", c.cyclesLeft)
	}
}

func TestDispatchTableIsTotal(t *testing.T) {
	for i := 0; i < 256; i++ {
		if dispatch[i].exec == nil {
			t.Fatalf("dispatch[%#02x] has a nil handler", i)
		}
	}
}

func TestLAXLoadsBothRegisters(t *testing.T) {
	c, bus := newTestCPU(0xC000, 0xA7, 0x10) // LAX $10
	bus.load(0x0010, 0x99)

	c.Step()
	if c.A != 0x99 || c.X != 0x99 {
		t.Errorf("A,X = %#02x,%#02x, want 0x99,0x99", c.A, c.X)
	}
}

func TestKILHaltsTheCPU(t *testing.T) {
	c, _ := newTestCPU(0xC000, 0x02) // KIL
	c.Step()
	if !c.Halted() {
		t.Errorf("Halted() = false after KIL")
	}

	pc := c.PC
	c.Step()
	if c.PC != pc {
		t.Errorf("PC advanced after halt: %#04x -> %#04x", pc, c.PC)
	}
}
