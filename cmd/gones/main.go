// Command gones is the debug/front-end CLI for the NES core: it can run
// a cartridge in a windowed front end, print its header metadata, or
// statically disassemble its PRG ROM.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gones",
		Short: "A cycle-driven 6502/NES core",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newDisasmCmd())

	return root
}
