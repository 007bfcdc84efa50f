// Package mappers implements the cartridge mapper port: the
// CPU-side/PPU-side address translation a ROM's board performs between
// the bus and its PRG/CHR storage.
//
// spec.md's design notes steer away from a generic interface toward a
// tagged sum, since only two variants exist in-tree (NROM and the
// partial MMC1); Mapper is that sum type, with Kind as the tag and the
// per-variant state kept in unexported fields rather than behind a
// second layer of dynamic dispatch.
package mappers

import (
	"errors"
	"fmt"

	"github.com/bdwalton/gones6502/internal/cartridge"
)

// Kind tags which mapper variant a Mapper holds.
type Kind uint16

const (
	KindNROM Kind = 0
	KindMMC1 Kind = 1
)

// ErrUnmappedMapper is wrapped into the error New returns when a ROM
// names a mapper number this module has no variant for.
var ErrUnmappedMapper = errors.New("unmapped mapper number")

func (k Kind) String() string {
	switch k {
	case KindNROM:
		return "NROM"
	case KindMMC1:
		return "MMC1"
	default:
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
}

// Mapper is the cartridge's address-translation port. It owns the
// cartridge's PRG/CHR storage (and, for boards with CHR RAM, a writable
// CHR buffer) and exposes the four operations the bus/PPU drive it
// through.
type Mapper struct {
	kind Kind
	img  *cartridge.Image
	chr  []uint8 // writable CHR RAM when the cartridge has no CHR ROM

	mmc1 mmc1State
}

// New builds the Mapper variant named by img's header mapper number.
func New(img *cartridge.Image) (*Mapper, error) {
	id := img.MapperNum()

	m := &Mapper{img: img}
	if img.CHRBanks() == 0 {
		m.chr = make([]uint8, cartridge.CHRBankSize*2)
	}

	switch id {
	case uint16(KindNROM):
		m.kind = KindNROM
	case uint16(KindMMC1):
		m.kind = KindMMC1
		m.mmc1 = newMMC1State(img)
	default:
		return nil, fmt.Errorf("mappers: id %d: %w", id, ErrUnmappedMapper)
	}

	return m, nil
}

// Kind reports which mapper variant this Mapper holds.
func (m *Mapper) Kind() Kind {
	return m.kind
}

// MirroringMode reports the name-table mirroring the cartridge (or, for
// MMC1, the mapper's own mirroring control register) selects.
func (m *Mapper) MirroringMode() uint8 {
	if m.kind == KindMMC1 {
		return m.mmc1.mirroringMode()
	}
	return m.img.MirroringMode()
}

// HasSaveRAM reports whether the cartridge exposes battery-backed PRG
// RAM at $6000-$7FFF.
func (m *Mapper) HasSaveRAM() bool {
	return m.img.HasSaveRAM()
}

// CPURead services a CPU-side read in [0x6000, 0xFFFF].
func (m *Mapper) CPURead(addr uint16) uint8 {
	switch m.kind {
	case KindMMC1:
		return m.mmc1.cpuRead(m.img, addr)
	default:
		return m.nromCPURead(addr)
	}
}

// CPUWrite services a CPU-side write in [0x6000, 0xFFFF]. For NROM this
// is a no-op (PRG ROM is read-only and there's no SRAM modelled); for
// MMC1 most writes feed the serial shift register.
func (m *Mapper) CPUWrite(addr uint16, val uint8) {
	if m.kind == KindMMC1 {
		m.mmc1.cpuWrite(addr, val)
	}
}

// PPURead services a pattern-table read in [0x0000, 0x1FFF].
func (m *Mapper) PPURead(addr uint16) uint8 {
	switch m.kind {
	case KindMMC1:
		return m.mmc1.ppuRead(m.img, m.chr, addr)
	default:
		return m.nromPPURead(addr)
	}
}

// PPUWrite services a pattern-table write in [0x0000, 0x1FFF]. Only
// meaningful when the cartridge uses CHR RAM.
func (m *Mapper) PPUWrite(addr uint16, val uint8) {
	switch m.kind {
	case KindMMC1:
		m.mmc1.ppuWrite(m.chr, addr, val)
	default:
		m.nromPPUWrite(addr, val)
	}
}
