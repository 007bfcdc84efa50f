package main

import (
	"fmt"
	"os"

	"github.com/bdwalton/gones6502/internal/controller"
	"github.com/bdwalton/gones6502/internal/machine"
	"github.com/bdwalton/gones6502/internal/ppu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
)

// keymap pairs an ebiten key with the joypad bit it drives.
var keymap = []struct {
	key ebiten.Key
	bit uint8
}{
	{ebiten.KeyArrowRight, controller.BitRight},
	{ebiten.KeyArrowLeft, controller.BitLeft},
	{ebiten.KeyArrowUp, controller.BitUp},
	{ebiten.KeyArrowDown, controller.BitDown},
	{ebiten.KeyZ, controller.BitA},
	{ebiten.KeyX, controller.BitB},
	{ebiten.KeyShiftLeft, controller.BitSelect},
	{ebiten.KeyEnter, controller.BitStart},
}

// game adapts a Machine to the ebiten.Game interface, driving one
// emulated frame per Update call.
type game struct {
	m     *machine.Machine
	video []byte
}

func newGame(m *machine.Machine) *game {
	return &game{m: m, video: make([]byte, ppu.Width*ppu.Height*4)}
}

func (g *game) Update() error {
	var buttons uint8
	for _, k := range keymap {
		if ebiten.IsKeyPressed(k.key) || inpututil.IsKeyJustPressed(k.key) {
			buttons |= 1 << k.bit
		}
	}
	return g.m.RunFrame(g.video, nil, buttons, 0)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.video)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.Width, ppu.Height
}

func newRunCmd() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "run <rom.nes>",
		Short: "Run a cartridge in a windowed front end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			opts := []machine.Option{}
			switch region {
			case "ntsc":
				opts = append(opts, machine.WithRegion(0))
			case "pal":
				opts = append(opts, machine.WithRegion(1))
			case "":
			default:
				return fmt.Errorf("unknown --region %q, want ntsc or pal", region)
			}

			m, err := machine.New(raw, opts...)
			if err != nil {
				return fmt.Errorf("building machine: %w", err)
			}

			ebiten.SetWindowSize(ppu.Width*2, ppu.Height*2)
			ebiten.SetWindowTitle("gones")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			return ebiten.RunGame(newGame(m))
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "TV system override: ntsc or pal (default: from the cartridge header)")

	return cmd
}
