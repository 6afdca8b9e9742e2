package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rjpeters/chipforge/internal/asm"
	"github.com/spf13/cobra"
)

var (
	asmOutpath     string
	asmSkipParsing bool
)

// asmCmd compiles a .c8s source file into a .ch8 ROM.
var asmCmd = &cobra.Command{
	Use:   "asm `path/to/source.c8s`",
	Short: "assemble a .c8s source file into a CHIP-8 ROM",
	Args:  cobra.ExactArgs(1),
	Run:   runAsm,
}

func init() {
	asmCmd.Flags().StringVar(&asmOutpath, "outpath", "", "output ROM path (default: input path with .ch8 extension)")
	asmCmd.Flags().BoolVar(&asmSkipParsing, "skip-parsing", false, "lex only, emit nothing")
}

func runAsm(cmd *cobra.Command, args []string) {
	path := args[0]
	if !strings.HasSuffix(path, ".c8s") {
		fmt.Fprintf(os.Stderr, "%s: must have a .c8s extension\n", path)
		os.Exit(1)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		os.Exit(1)
	}

	if asmSkipParsing {
		asm.LexOnly(source)
		return
	}

	rom, err := asm.Assemble(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out := asmOutpath
	if out == "" {
		out = strings.TrimSuffix(path, ".c8s") + ".ch8"
	}

	if err := os.WriteFile(out, rom, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", out, err)
		os.Exit(1)
	}
}
