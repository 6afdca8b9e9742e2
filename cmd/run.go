package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rjpeters/chipforge/internal/audio"
	"github.com/rjpeters/chipforge/internal/chip8"
	"github.com/rjpeters/chipforge/internal/pixelhost"
)

const audioAssetPath = "assets/beep.mp3"

// runCmd runs the chipforge emulator against a ROM until the window closes.
// Invoked from within pixelgl.Run (see main.go), since pixelgl requires the
// OS main thread for window/GL calls.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chipforge emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChipforge,
}

func runChipforge(cmd *cobra.Command, args []string) {
	runEmulator(args[0])
}

func runEmulator(pathToROM string) {
	rom, err := os.ReadFile(pathToROM)
	if err != nil {
		fmt.Printf("\nerror reading ROM %q: %v\n", pathToROM, err)
		os.Exit(1)
	}

	cpu := chip8.NewCPU()
	if err := cpu.LoadROM(rom); err != nil {
		fmt.Printf("\nerror loading ROM: %v\n", err)
		os.Exit(1)
	}

	win, err := pixelhost.New()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	dbg := pixelhost.NewDebugger(cpu)

	done := make(chan struct{})
	player, err := audio.NewPlayer(audioAssetPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	go player.Run()
	go audio.WatchSoundTimer(func() byte { return cpu.Registers.ST }, done, player)
	defer close(done)
	defer player.Close()

	ticker := pixelhost.FrameTicker(60)
	defer ticker.Stop()

	for range ticker.C {
		cpu.Input.Refresh(win)
		if cpu.Input.ShouldQuit() {
			fmt.Println("exit signal detected, gracefully shutting down...")
			return
		}
		if cpu.Input.IsFreeKeyJustPressed(pixelhost.DebugToggleKey) {
			dbg.Toggle()
		}

		cpu.Tick()
		win.Render(cpu.Display)
		dbg.Draw(win)
		win.Update()
	}
}
