// Package input translates SDL2 events into engine commands.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/pixelforge/internal/engine"
)

// Input polls SDL and collects the commands for one frame.
type Input struct {
	zoomStep float64
	commands []engine.Command
	quit     bool
}

// New creates an input handler. zoomStep is the factor applied per
// zoom-in step; zooming out divides by it.
func New(zoomStep float64) *Input {
	return &Input{
		zoomStep: zoomStep,
		commands: make([]engine.Command, 0, 16),
	}
}

// Update polls SDL events and converts them to engine commands.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.commands = i.commands[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.quit = true

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.key(e.Keysym.Sym)
			}

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
				i.commands = append(i.commands, engine.Inspect(float64(e.X), float64(e.Y)))
			}

		case *sdl.MouseWheelEvent:
			switch {
			case e.Y > 0:
				i.commands = append(i.commands, engine.Zoom(i.zoomStep))
			case e.Y < 0:
				i.commands = append(i.commands, engine.Zoom(1/i.zoomStep))
			}
		}
	}

	return i.quit
}

func (i *Input) key(sym sdl.Keycode) {
	switch sym {
	case sdl.K_ESCAPE:
		i.quit = true
	case sdl.K_LEFT:
		i.commands = append(i.commands, engine.Pan(-1, 0))
	case sdl.K_RIGHT:
		i.commands = append(i.commands, engine.Pan(1, 0))
	case sdl.K_UP:
		i.commands = append(i.commands, engine.Pan(0, -1))
	case sdl.K_DOWN:
		i.commands = append(i.commands, engine.Pan(0, 1))
	case sdl.K_EQUALS, sdl.K_PLUS, sdl.K_KP_PLUS:
		i.commands = append(i.commands, engine.Zoom(i.zoomStep))
	case sdl.K_MINUS, sdl.K_KP_MINUS:
		i.commands = append(i.commands, engine.Zoom(1/i.zoomStep))
	case sdl.K_n:
		i.commands = append(i.commands, engine.Command{Kind: engine.CmdAddLayer})
	}
}

// Commands returns the commands collected by the last Update.
func (i *Input) Commands() []engine.Command {
	return i.commands
}
