package mos6502

import "fmt"

// CurrentInstruction disassembles the opcode at PC without altering any
// CPU state, for use by the debug CLI and tests.
func (c *CPU) CurrentInstruction() string {
	entry := dispatch[c.read(c.PC)]
	operand := ""
	for i := uint8(1); i < entry.bytes; i++ {
		operand += fmt.Sprintf(" %02x", c.read(c.PC+uint16(i)))
	}
	return fmt.Sprintf("%04x: %s%s", c.PC, entry.name, operand)
}

// CurrentInstructionLen returns the byte length (1-3) of the
// instruction at PC, for callers walking a disassembly forward without
// executing it.
func (c *CPU) CurrentInstructionLen() uint8 {
	return dispatch[c.read(c.PC)].bytes
}

// StackBytes returns the n bytes above SP (closest to top of stack
// first), stopping early at the bottom of the stack page ($01FF).
func (c *CPU) StackBytes(n int) []uint8 {
	out := make([]uint8, 0, n)
	for i := 0; i < n; i++ {
		addr := c.stackAddr() + uint16(i) + 1
		if addr > 0x01FF {
			break
		}
		out = append(out, c.read(addr))
	}
	return out
}
