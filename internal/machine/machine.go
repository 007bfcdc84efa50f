// Package machine orchestrates a complete NES: CPU, bus, picture unit,
// audio unit, cartridge mapper and controllers, driven one master-clock
// tick at a time.
package machine

import (
	"fmt"
	"log"

	"github.com/bdwalton/gones6502/internal/apu"
	"github.com/bdwalton/gones6502/internal/bus"
	"github.com/bdwalton/gones6502/internal/cartridge"
	"github.com/bdwalton/gones6502/internal/controller"
	"github.com/bdwalton/gones6502/internal/mappers"
	"github.com/bdwalton/gones6502/internal/mos6502"
	"github.com/bdwalton/gones6502/internal/ppu"
	"github.com/bdwalton/gones6502/internal/tracelog"
)

// Master-clock dividers: the CPU advances one cycle every divider
// master ticks, the PPU every 4 (NTSC) or 5 (PAL) master ticks, and
// the master clock itself runs at a region-specific rate.
// NTSC: 21.477272 MHz master / 12 = 1.789773 MHz CPU, /4 = PPU dot rate.
// PAL:  26.601712 MHz master / 16 = 1.662607 MHz CPU, /5 = PPU dot rate.
const (
	cpuDividerNTSC = 12
	cpuDividerPAL  = 16
	ppuDividerNTSC = 4
	ppuDividerPAL  = 5
	apuDivider     = 2 // APU frame sequencer runs at half the CPU rate

	masterTicksPerFrameNTSC = 357954
	masterTicksPerFramePAL  = 532034
)

// ConstructionError wraps any failure building a Machine from ROM
// bytes: a bad container, an unimplemented mapper, or a malformed
// header.
type ConstructionError struct {
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("machine: construction failed: %v", e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// ErrUnmappedMapper is returned (wrapped in a ConstructionError) when
// the cartridge names a mapper this core doesn't implement.
var ErrUnmappedMapper = mappers.ErrUnmappedMapper

// Option configures a Machine at construction time.
type Option func(*options)

type options struct {
	region *uint8
	logger *log.Logger
}

// WithRegion overrides the TV system the cartridge header declares.
// Pass cartridge.RegionNTSC or cartridge.RegionPAL.
func WithRegion(region uint8) Option {
	return func(o *options) { o.region = &region }
}

// WithLogger supplies the logger that receives the per-instruction
// trace in builds with the gonestrace tag. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Machine is a fully wired NES: one CPU core, one bus, one picture
// unit, one audio unit, two controller ports and a cartridge mapper.
type Machine struct {
	cpu  *mos6502.CPU
	bus  *bus.Bus
	ppu  *ppu.PPU
	apu  *apu.APU
	pad1 *controller.Joypad
	pad2 *controller.Joypad

	region      uint8
	masterTicks int
	cpuDivider  int
	ppuDivider  int
	log         *log.Logger
}

// New parses romBytes as an iNES/NES 2.0 image, builds its mapper, and
// wires a complete machine around it.
func New(romBytes []byte, opts ...Option) (*Machine, error) {
	cfg := options{logger: log.Default()}
	for _, o := range opts {
		o(&cfg)
	}

	img, err := cartridge.New(romBytes)
	if err != nil {
		return nil, &ConstructionError{Err: err}
	}

	mapper, err := mappers.New(img)
	if err != nil {
		return nil, &ConstructionError{Err: err}
	}

	region := img.Region()
	if cfg.region != nil {
		region = *cfg.region
	}

	pad1 := &controller.Joypad{}
	pad2 := &controller.Joypad{}
	audioUnit := apu.New()

	b := bus.New(mapper, audioUnit, pad1, pad2)
	videoUnit := ppu.New(b, mapper.MirroringMode())
	b.AttachPPU(videoUnit)

	cpuDivider := cpuDividerNTSC
	ppuDiv := ppuDividerNTSC
	if region == cartridge.RegionPAL {
		cpuDivider = cpuDividerPAL
		ppuDiv = ppuDividerPAL
	}

	cpu := mos6502.New(b, uint8(cpuDivider))
	b.SetNMICallback(cpu.RaiseNMI)

	if tracelog.Enabled {
		tr := tracelog.New(cfg.logger)
		cpu.SetTraceHook(tr.Line)
	}

	return &Machine{
		cpu:        cpu,
		bus:        b,
		ppu:        videoUnit,
		apu:        audioUnit,
		pad1:       pad1,
		pad2:       pad2,
		region:     region,
		cpuDivider: cpuDivider,
		ppuDivider: ppuDiv,
		log:        cfg.logger,
	}, nil
}

// Halted reports whether the CPU has executed a KIL/JAM opcode and
// stopped making forward progress.
func (m *Machine) Halted() bool {
	return m.cpu.Halted()
}

// RunFrame advances the machine by exactly one video frame's worth of
// master clock ticks, writing the rendered frame into videoOut (which
// must be at least ppu.Width*ppu.Height*4 bytes) and setting the
// joypad 1 state from joypad1Bits (bit layout per controller.Bit*).
// audioOut is accepted for interface symmetry with a real front end but
// is never written to, since sample synthesis is not implemented.
// A halted CPU is not an error: the frame still runs to completion
// with the CPU idle, and Halted reports the condition.
func (m *Machine) RunFrame(videoOut []byte, audioOut []int16, joypad1Bits, joypad2Bits uint8) error {
	m.pad1.SetButtons(joypad1Bits)
	m.pad2.SetButtons(joypad2Bits)

	ticksPerFrame := masterTicksPerFrameNTSC
	if m.region == cartridge.RegionPAL {
		ticksPerFrame = masterTicksPerFramePAL
	}

	for i := 0; i < ticksPerFrame; i++ {
		// CPU.Tick applies its own prescaler (cpuDivider master
		// ticks per CPU cycle) so it's driven every master tick;
		// the DMA drain and APU stepping below only need to happen
		// once per CPU cycle, which i%m.cpuDivider==0 approximates.
		m.cpu.Tick()
		if i%m.ppuDivider == 0 {
			m.ppu.Tick()
		}
		if i%m.cpuDivider == 0 {
			if page, pending := m.bus.DrainDMA(); pending {
				m.runOAMDMA(page)
			}
			if i%(m.cpuDivider*apuDivider) == 0 {
				if m.apu.Tick() {
					m.cpu.RaiseIRQ()
				}
			}
		}
	}

	copy(videoOut, m.ppu.Frame())
	return nil
}

// runOAMDMA performs the 256-byte copy from page*0x100 in CPU address
// space into OAM, and charges the CPU a flat 513 stolen cycles (the
// extra cycle real hardware adds when DMA starts on an odd CPU cycle
// is not modelled).
func (m *Machine) runOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		m.bus.WriteOAM(m.bus.Read(base + uint16(i)))
	}
	m.cpu.AddDMACycles(513)
}
