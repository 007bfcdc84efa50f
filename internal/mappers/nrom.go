package mappers

import "github.com/bdwalton/gones6502/internal/cartridge"

// NROM (mapper 0) maps PRG ROM statically into [0x8000, 0xFFFF]. A
// 16 KiB cartridge (the common case for NROM-128 boards) is mirrored
// into both the low and high halves of that window; a 32 KiB cartridge
// (NROM-256) fills it directly. CHR is always a single fixed 8 KiB bank,
// RAM-backed when the cartridge declares no CHR ROM.

func (m *Mapper) nromCPURead(addr uint16) uint8 {
	if addr < 0x8000 {
		return 0 // no SRAM modelled for NROM
	}

	off := int(addr - 0x8000)
	if m.img.PRGBanks() == 1 {
		off %= cartridge.PRGBankSize
	}
	if off >= len(m.img.PRG) {
		return 0
	}
	return m.img.PRG[off]
}

func (m *Mapper) nromPPURead(addr uint16) uint8 {
	if len(m.chr) > 0 {
		return m.chr[int(addr)%len(m.chr)]
	}
	if len(m.img.CHR) == 0 {
		return 0
	}
	return m.img.CHR[int(addr)%len(m.img.CHR)]
}

func (m *Mapper) nromPPUWrite(addr uint16, val uint8) {
	if len(m.chr) > 0 {
		m.chr[int(addr)%len(m.chr)] = val
	}
}
