package cartridge

import (
	"bytes"
	"errors"
	"testing"
)

func makeHeader(prg, chr, flags6, flags7 uint8) []byte {
	h := make([]byte, headerSize)
	copy(h[0:4], []byte("NES\x1A"))
	h[4] = prg
	h[5] = chr
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestNewRejectsBadMagic(t *testing.T) {
	raw := makeHeader(1, 1, 0, 0)
	raw[0] = 'X'

	if _, err := New(raw); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("New() err = %v, want ErrBadMagic", err)
	}
}

func TestNewRejectsTruncatedPRG(t *testing.T) {
	raw := makeHeader(2, 0, 0, 0) // promises 2 PRG banks, supplies none
	if _, err := New(raw); !errors.Is(err, ErrShortRead) {
		t.Fatalf("New() err = %v, want ErrShortRead", err)
	}
}

func TestNewParsesBanks(t *testing.T) {
	raw := makeHeader(1, 1, 0, 0)
	prg := bytes.Repeat([]byte{0xEA}, PRGBankSize)
	chr := bytes.Repeat([]byte{0x11}, CHRBankSize)
	raw = append(raw, prg...)
	raw = append(raw, chr...)

	img, err := New(raw)
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	if img.PRGBanks() != 1 || img.CHRBanks() != 1 {
		t.Fatalf("banks = (%d,%d), want (1,1)", img.PRGBanks(), img.CHRBanks())
	}
	if !bytes.Equal(img.PRG, prg) || !bytes.Equal(img.CHR, chr) {
		t.Fatalf("PRG/CHR contents did not round-trip")
	}
}

func TestMapperNum(t *testing.T) {
	tests := []struct {
		name           string
		flags6, flags7 uint8
		unused         [5]byte
		want           uint16
	}{
		{"NROM", 0x00, 0x00, [5]byte{}, 0},
		{"MMC1 low nibble only", 0x10, 0x00, [5]byte{}, 1},
		{"combined nibbles", 0x10, 0x20, [5]byte{}, 0x21},
		{"DiskDude garbage ignored", 0x40, 0x40, [5]byte{'D', 'i', 's', 'k', 0}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := makeHeader(1, 1, tt.flags6, tt.flags7)
			copy(raw[11:16], tt.unused[:])
			raw = append(raw, bytes.Repeat([]byte{0}, PRGBankSize+CHRBankSize)...)

			img, err := New(raw)
			if err != nil {
				t.Fatalf("New() err = %v", err)
			}
			if got := img.MapperNum(); got != tt.want {
				t.Errorf("MapperNum() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMirroringMode(t *testing.T) {
	tests := []struct {
		name   string
		flags6 uint8
		want   uint8
	}{
		{"horizontal", 0x00, MirrorHorizontal},
		{"vertical", 0x01, MirrorVertical},
		{"four screen overrides vertical", 0x09, MirrorFourScreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := makeHeader(1, 1, tt.flags6, 0)
			raw = append(raw, bytes.Repeat([]byte{0}, PRGBankSize+CHRBankSize)...)

			img, err := New(raw)
			if err != nil {
				t.Fatalf("New() err = %v", err)
			}
			if got := img.MirroringMode(); got != tt.want {
				t.Errorf("MirroringMode() = %d, want %d", got, tt.want)
			}
		})
	}
}
