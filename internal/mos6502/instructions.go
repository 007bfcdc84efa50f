package mos6502

import "math/bits"

// The instruction implementations below follow the signature dispatch
// requires: func(*CPU, mode uint8). Each resolves its own operand
// address (when it has one) and is responsible for its own flag
// updates, per the semantics tables in spec.md §4.3.2.

func adc(c *CPU, mode uint8) {
	m := c.read(c.operandAddr(mode, true))
	addWithCarry(c, m)
}

// addWithCarry implements the shared ADC/SBC arithmetic: SBC feeds in
// the ones' complement of its operand and reuses this exact formula,
// which is also how the carry/overflow outcome ends up identical to two
// independent NES emulator implementations' ADC a+b+c.
func addWithCarry(c *CPU, m uint8) {
	carryIn := uint16(c.P & FlagCarry)
	sum := uint16(c.A) + uint16(m) + carryIn
	result := uint8(sum)

	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (^(c.A^m))&(c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func and(c *CPU, mode uint8) {
	c.A &= c.read(c.operandAddr(mode, true))
	c.setZN(c.A)
}

func asl(c *CPU, mode uint8) {
	old, newV := rmw(c, mode, func(v uint8) uint8 { return v << 1 })
	c.setFlag(FlagCarry, old&0x80 != 0)
	c.setZN(newV)
}

func bcc(c *CPU, mode uint8) { c.branch(c.P&FlagCarry == 0) }
func bcs(c *CPU, mode uint8) { c.branch(c.P&FlagCarry != 0) }
func beq(c *CPU, mode uint8) { c.branch(c.P&FlagZero != 0) }
func bne(c *CPU, mode uint8) { c.branch(c.P&FlagZero == 0) }
func bmi(c *CPU, mode uint8) { c.branch(c.P&FlagNegative != 0) }
func bpl(c *CPU, mode uint8) { c.branch(c.P&FlagNegative == 0) }
func bvc(c *CPU, mode uint8) { c.branch(c.P&FlagOverflow == 0) }
func bvs(c *CPU, mode uint8) { c.branch(c.P&FlagOverflow != 0) }

func bit(c *CPU, mode uint8) {
	m := c.read(c.operandAddr(mode, false))
	c.setFlag(FlagZero, c.A&m == 0)
	c.setFlag(FlagNegative, m&FlagNegative != 0)
	c.setFlag(FlagOverflow, m&FlagOverflow != 0)
}

func brk(c *CPU, mode uint8) {
	c.PC++ // BRK's operand byte is a padding/signature byte, always skipped
	c.pushAddr(c.PC)
	c.push(c.P | FlagBreak | FlagUnused)
	c.flagsOn(FlagIRQOff)
	c.PC = c.read16(VectorBRK)
	c.branched = true
}

func clc(c *CPU, mode uint8) { c.flagsOff(FlagCarry) }
func cld(c *CPU, mode uint8) { c.flagsOff(FlagDecimal) }
func cli(c *CPU, mode uint8) { c.flagsOff(FlagIRQOff) }
func clv(c *CPU, mode uint8) { c.flagsOff(FlagOverflow) }

func compare(c *CPU, reg uint8, mode uint8) {
	m := c.read(c.operandAddr(mode, true))
	c.setFlag(FlagCarry, reg >= m)
	c.setZN(reg - m)
}

func cmp(c *CPU, mode uint8) { compare(c, c.A, mode) }
func cpx(c *CPU, mode uint8) { compare(c, c.X, mode) }
func cpy(c *CPU, mode uint8) { compare(c, c.Y, mode) }

// rmw is the shared read-modify-write shape for ASL/LSR/ROL/ROR/
// INC/DEC: it reads the operand (accumulator or memory), applies f,
// writes the result back, and returns (old, new) so the caller can set
// flags that depend on either.
func rmw(c *CPU, mode uint8, f func(uint8) uint8) (old, newV uint8) {
	if mode == Accumulator {
		old = c.A
		newV = f(old)
		c.A = newV
		return
	}
	addr := c.operandAddr(mode, false)
	old = c.read(addr)
	newV = f(old)
	c.write(addr, newV)
	return
}

func dec(c *CPU, mode uint8) {
	_, newV := rmw(c, mode, func(v uint8) uint8 { return v - 1 })
	c.setZN(newV)
}

func dex(c *CPU, mode uint8) { c.X--; c.setZN(c.X) }
func dey(c *CPU, mode uint8) { c.Y--; c.setZN(c.Y) }

func eor(c *CPU, mode uint8) {
	c.A ^= c.read(c.operandAddr(mode, true))
	c.setZN(c.A)
}

func inc(c *CPU, mode uint8) {
	_, newV := rmw(c, mode, func(v uint8) uint8 { return v + 1 })
	c.setZN(newV)
}

func inx(c *CPU, mode uint8) { c.X++; c.setZN(c.X) }
func iny(c *CPU, mode uint8) { c.Y++; c.setZN(c.Y) }

func jmp(c *CPU, mode uint8) {
	c.PC = c.operandAddr(mode, false)
	c.branched = true
}

func jsr(c *CPU, mode uint8) {
	// The pushed return address is the last byte of JSR's own
	// operand, not the next instruction; RTS accounts for that by
	// adding 1 back on return.
	c.pushAddr(c.PC + 1)
	c.PC = c.operandAddr(mode, false)
	c.branched = true
}

func lda(c *CPU, mode uint8) { c.A = c.read(c.operandAddr(mode, true)); c.setZN(c.A) }
func ldx(c *CPU, mode uint8) { c.X = c.read(c.operandAddr(mode, true)); c.setZN(c.X) }
func ldy(c *CPU, mode uint8) { c.Y = c.read(c.operandAddr(mode, true)); c.setZN(c.Y) }

func lsr(c *CPU, mode uint8) {
	old, newV := rmw(c, mode, func(v uint8) uint8 { return v >> 1 })
	c.setFlag(FlagCarry, old&0x01 != 0)
	c.setZN(newV)
}

func nop(c *CPU, mode uint8) {}

func ora(c *CPU, mode uint8) {
	c.A |= c.read(c.operandAddr(mode, true))
	c.setZN(c.A)
}

func pha(c *CPU, mode uint8) { c.push(c.A) }
func php(c *CPU, mode uint8) { c.push(c.P | FlagBreak | FlagUnused) }

func pla(c *CPU, mode uint8) { c.A = c.pop(); c.setZN(c.A) }

func plp(c *CPU, mode uint8) {
	// Bits 4-5 of the pulled byte are discarded: bit 5 always reads
	// 1 and bit 4 (B) keeps whatever the live register already held,
	// since B is only meaningful in the pushed stack image.
	c.P = c.pop()&^(FlagBreak|FlagUnused) | c.P&FlagBreak | FlagUnused
}

func rol(c *CPU, mode uint8) {
	carryIn := c.P & FlagCarry
	old, newV := rmw(c, mode, func(v uint8) uint8 {
		return bits.RotateLeft8(v, 1)&^0x01 | carryIn
	})
	c.setFlag(FlagCarry, old&0x80 != 0)
	c.setZN(newV)
}

func ror(c *CPU, mode uint8) {
	carryIn := c.P & FlagCarry
	old, newV := rmw(c, mode, func(v uint8) uint8 {
		return bits.RotateLeft8(v, -1)&^0x80 | (carryIn << 7)
	})
	c.setFlag(FlagCarry, old&0x01 != 0)
	c.setZN(newV)
}

func rti(c *CPU, mode uint8) {
	c.P = c.pop()&^(FlagBreak|FlagUnused) | c.P&FlagBreak | FlagUnused
	c.PC = c.popAddr()
	c.branched = true
}

func rts(c *CPU, mode uint8) {
	c.PC = c.popAddr() + 1
	c.branched = true
}

func sbc(c *CPU, mode uint8) {
	m := c.read(c.operandAddr(mode, true))
	addWithCarry(c, ^m)
}

func sec(c *CPU, mode uint8) { c.flagsOn(FlagCarry) }
func sed(c *CPU, mode uint8) { c.flagsOn(FlagDecimal) }
func sei(c *CPU, mode uint8) { c.flagsOn(FlagIRQOff) }

func sta(c *CPU, mode uint8) { c.write(c.operandAddr(mode, false), c.A) }
func stx(c *CPU, mode uint8) { c.write(c.operandAddr(mode, false), c.X) }
func sty(c *CPU, mode uint8) { c.write(c.operandAddr(mode, false), c.Y) }

func tax(c *CPU, mode uint8) { c.X = c.A; c.setZN(c.X) }
func tay(c *CPU, mode uint8) { c.Y = c.A; c.setZN(c.Y) }
func tsx(c *CPU, mode uint8) { c.X = c.SP; c.setZN(c.X) }
func txa(c *CPU, mode uint8) { c.A = c.X; c.setZN(c.A) }
func txs(c *CPU, mode uint8) { c.SP = c.X }
func tya(c *CPU, mode uint8) { c.A = c.Y; c.setZN(c.A) }

func kil(c *CPU, mode uint8) {}
