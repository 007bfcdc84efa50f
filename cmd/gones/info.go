package main

import (
	"fmt"
	"os"

	"github.com/bdwalton/gones6502/internal/cartridge"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <rom.nes>",
		Short: "Print a cartridge's header metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			img, err := cartridge.New(raw)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			fmt.Printf("file:      %s\n", args[0])
			fmt.Printf("mapper:    %d\n", img.MapperNum())
			fmt.Printf("PRG banks: %d (%d KiB)\n", img.PRGBanks(), img.PRGBanks()*cartridge.PRGBankSize/1024)
			fmt.Printf("CHR banks: %d (%d KiB)\n", img.CHRBanks(), img.CHRBanks()*cartridge.CHRBankSize/1024)
			fmt.Printf("mirroring: %s\n", mirrorName(img.MirroringMode()))
			fmt.Printf("save RAM:  %v\n", img.HasSaveRAM())
			fmt.Printf("region:    %s\n", regionName(img.Region()))

			return nil
		},
	}
}

func mirrorName(m uint8) string {
	switch m {
	case cartridge.MirrorHorizontal:
		return "horizontal"
	case cartridge.MirrorVertical:
		return "vertical"
	default:
		return "four-screen"
	}
}

func regionName(r uint8) string {
	if r == cartridge.RegionPAL {
		return "PAL"
	}
	return "NTSC"
}
