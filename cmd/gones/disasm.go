package main

import (
	"fmt"
	"os"

	"github.com/bdwalton/gones6502/internal/cartridge"
	"github.com/bdwalton/gones6502/internal/mappers"
	"github.com/bdwalton/gones6502/internal/mos6502"
	"github.com/spf13/cobra"
)

// prgOnlyBus lets the disassembler walk PRG ROM through the real mapper
// address decode without a PPU, APU or controllers attached; nothing a
// static disassembly touches reads or writes outside $8000-$FFFF.
type prgOnlyBus struct {
	mapper *mappers.Mapper
}

func (b *prgOnlyBus) Read(addr uint16) uint8     { return b.mapper.CPURead(addr) }
func (b *prgOnlyBus) Write(addr uint16, v uint8) {}

func newDisasmCmd() *cobra.Command {
	var start uint16
	var count int

	cmd := &cobra.Command{
		Use:   "disasm <rom.nes>",
		Short: "Statically disassemble a cartridge's PRG ROM",
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

			mapper, err := mappers.New(img)
			if err != nil {
				return fmt.Errorf("building mapper: %w", err)
			}

			cpu := mos6502.New(&prgOnlyBus{mapper: mapper}, 1)
			cpu.PC = start
			if start == 0 {
				cpu.Step() // service initial reset, landing PC at the reset vector
			}

			for i := 0; i < count; i++ {
				fmt.Println(cpu.CurrentInstruction())
				cpu.PC += uint16(cpu.CurrentInstructionLen())
			}

			return nil
		},
	}

	cmd.Flags().Uint16Var(&start, "start", 0, "Address to start disassembling at (default: the reset vector)")
	cmd.Flags().IntVar(&count, "count", 32, "Number of instructions to print")

	return cmd
}
