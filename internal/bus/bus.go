// Package bus wires the CPU's 16-bit address space together: internal
// RAM, the PPU register window, the APU/input register file, and the
// cartridge mapper, plus the OAM DMA side channel at $4014.
package bus

import (
	"github.com/bdwalton/gones6502/internal/apu"
	"github.com/bdwalton/gones6502/internal/controller"
	"github.com/bdwalton/gones6502/internal/mappers"
	"github.com/bdwalton/gones6502/internal/ppu"
)

const (
	ramSize    = 0x0800
	ramMirrors = 0x2000
	ppuWindow  = 0x4000
	ioWindow   = 0x4018

	regOAMDMA    = 0x4014
	regJoypad1   = 0x4016
	regJoypad2   = 0x4017
)

// Bus implements mos6502.Bus and satisfies ppu.Bus on the mapper's
// behalf, routing every CPU and PPU memory access to the right owner.
type Bus struct {
	ram     [ramSize]uint8
	mapper  *mappers.Mapper
	ppu     *ppu.PPU
	apu     *apu.APU
	pad1    *controller.Joypad
	pad2    *controller.Joypad

	dmaPending bool
	dmaPage    uint8

	nmiCallback func()
}

func New(mapper *mappers.Mapper, apuUnit *apu.APU, pad1, pad2 *controller.Joypad) *Bus {
	return &Bus{mapper: mapper, apu: apuUnit, pad1: pad1, pad2: pad2}
}

// AttachPPU completes the wiring cycle: the PPU needs a Bus to reach
// CHR data and raise NMI, and the bus needs the PPU to route $2000-
// $3FFF CPU accesses, so whichever is built second attaches the other.
func (b *Bus) AttachPPU(p *ppu.PPU) {
	b.ppu = p
}

// Read services a CPU read.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < ramMirrors:
		return b.ram[addr%ramSize]
	case addr < ppuWindow:
		return b.ppu.ReadReg(0x2000 + addr%8)
	case addr == regJoypad1:
		return b.pad1.Read()
	case addr == regJoypad2:
		return b.pad2.Read()
	case addr < ioWindow:
		return b.apu.Read(addr)
	default:
		return b.mapper.CPURead(addr)
	}
}

// Write services a CPU write.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr < ramMirrors:
		b.ram[addr%ramSize] = val
	case addr < ppuWindow:
		b.ppu.WriteReg(0x2000+addr%8, val)
	case addr == regOAMDMA:
		b.dmaPending = true
		b.dmaPage = val
	case addr == regJoypad1:
		b.pad1.Write(val)
		b.pad2.Write(val) // both pads latch off the same strobe line
	case addr < ioWindow:
		b.apu.Write(addr, val)
	default:
		b.mapper.CPUWrite(addr, val)
	}
}

// ChrRead/ChrWrite implement ppu.Bus's pattern-table passthrough to the
// mapper.
func (b *Bus) ChrRead(addr uint16) uint8     { return b.mapper.PPURead(addr) }
func (b *Bus) ChrWrite(addr uint16, v uint8) { b.mapper.PPUWrite(addr, v) }

// RaiseNMI is called by the PPU; Bus forwards it straight to the
// callback Machine registered (the CPU's RaiseNMI), keeping no state
// of its own.
func (b *Bus) RaiseNMI() {
	if b.nmiCallback != nil {
		b.nmiCallback()
	}
}

// SetNMICallback registers the function Machine uses to raise NMI on
// the CPU whenever the PPU does. Bus takes a plain closure rather than
// importing the CPU package directly, keeping the dependency direction
// machine -> bus -> {ppu,apu,mappers,controller}.
func (b *Bus) SetNMICallback(f func()) {
	b.nmiCallback = f
}

// DrainDMA reports and clears a pending OAM DMA request, returning the
// source page and whether one was requested this tick. Machine performs
// the actual 256-byte copy and charges the CPU's stolen cycles.
func (b *Bus) DrainDMA() (page uint8, pending bool) {
	if !b.dmaPending {
		return 0, false
	}
	b.dmaPending = false
	return b.dmaPage, true
}

// WriteOAM forwards a single OAM DMA byte to the PPU.
func (b *Bus) WriteOAM(val uint8) {
	b.ppu.WriteOAM(val)
}
