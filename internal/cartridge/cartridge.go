package cartridge

import (
	"errors"
	"fmt"
)

const (
	TrainerSize  = 512
	PRGBankSize  = 16384
	CHRBankSize  = 8192
	pcInstSize   = 8192
	pcPROMSize   = 32
	headerSize   = 16
)

// ErrBadMagic is wrapped into the error New returns when the first four
// bytes of the file are not the iNES magic "NES\x1A".
var ErrBadMagic = errors.New("not an iNES image")

// ErrShortRead is wrapped into the error New returns when the file ends
// before a section the header promised is fully read.
var ErrShortRead = errors.New("truncated ROM image")

// Image is a parsed iNES (or NES 2.0) ROM container: the header fields
// callers need plus the raw PRG/CHR banks a mapper builds itself from.
// Image never retains a reference to the source bytes beyond this point
// and performs no further I/O.
type Image struct {
	h       *header
	Trainer []byte // TrainerSize bytes, only if header says so
	PRG     []byte // PRGBankSize * h.prgSize bytes
	CHR     []byte // CHRBankSize * h.chrSize bytes; empty means CHR RAM
}

// New parses raw iNES bytes (as read from a .nes file) into an Image.
func New(raw []byte) (*Image, error) {
	if len(raw) < headerSize {
		return nil, fmt.Errorf("cartridge: %w", ErrShortRead)
	}

	h, err := parseHeader(raw[:headerSize])
	if err != nil {
		return nil, err
	}

	img := &Image{h: h}
	off := headerSize

	if h.hasTrainer() {
		if len(raw) < off+TrainerSize {
			return nil, fmt.Errorf("cartridge: trainer: %w", ErrShortRead)
		}
		img.Trainer = append([]byte(nil), raw[off:off+TrainerSize]...)
		off += TrainerSize
	}

	prgLen := PRGBankSize * int(h.prgSize)
	if len(raw) < off+prgLen {
		return nil, fmt.Errorf("cartridge: PRG ROM: %w", ErrShortRead)
	}
	img.PRG = append([]byte(nil), raw[off:off+prgLen]...)
	off += prgLen

	chrLen := CHRBankSize * int(h.chrSize)
	if len(raw) < off+chrLen {
		return nil, fmt.Errorf("cartridge: CHR ROM: %w", ErrShortRead)
	}
	img.CHR = append([]byte(nil), raw[off:off+chrLen]...)
	off += chrLen

	if h.hasPlayChoice() {
		if len(raw) >= off+pcInstSize+pcPROMSize {
			off += pcInstSize + pcPROMSize
		}
		// Some old dumps omit the trailing PlayChoice PROM; that's
		// not fatal since we don't use PlayChoice data.
	}

	return img, nil
}

func (i *Image) String() string {
	return i.h.String()
}

// MapperNum returns the combined mapper number assembled from the
// header's flags6/flags7 nibbles.
func (i *Image) MapperNum() uint16 {
	return i.h.mapperNum()
}

// MirroringMode returns MirrorHorizontal, MirrorVertical or
// MirrorFourScreen.
func (i *Image) MirroringMode() uint8 {
	return i.h.mirroringMode()
}

// HasSaveRAM reports whether the cartridge exposes battery-backed PRG
// RAM at $6000-$7FFF.
func (i *Image) HasSaveRAM() bool {
	return i.h.hasPrgRAM()
}

// Region reports the TV system (RegionNTSC/RegionPAL) the header
// declares.
func (i *Image) Region() uint8 {
	return i.h.region()
}

// PRGBanks returns the number of 16 KiB PRG-ROM banks present.
func (i *Image) PRGBanks() int {
	return len(i.PRG) / PRGBankSize
}

// CHRBanks returns the number of 8 KiB CHR-ROM banks present; zero means
// the board uses CHR RAM instead.
func (i *Image) CHRBanks() int {
	return len(i.CHR) / CHRBankSize
}
