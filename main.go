package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/rjpeters/chipforge/cmd"
)

func main() {
	// pixelgl claims the OS main thread for the lifetime of the process,
	// so every subcommand runs inside pixelgl.Run even though only `run`
	// actually opens a window.
	pixelgl.Run(cmd.Execute)
}
