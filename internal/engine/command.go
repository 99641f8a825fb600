package engine

import "fmt"

// CommandKind selects the engine operation a Command performs.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdRender
	CmdSetPaletteColor
	CmdPan
	CmdZoom
	CmdAddLayer
	CmdInspect
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "none"
	case CmdRender:
		return "render"
	case CmdSetPaletteColor:
		return "set_palette_color"
	case CmdPan:
		return "pan"
	case CmdZoom:
		return "zoom"
	case CmdAddLayer:
		return "add_layer"
	case CmdInspect:
		return "inspect"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is a host request expressed as plain numbers, as produced by an
// input adapter.
type Command struct {
	Kind    CommandKind
	DX, DY  int     // CmdPan
	Factor  float64 // CmdZoom
	Index   int     // CmdSetPaletteColor
	R, G, B uint8
	SX, SY  float64 // CmdInspect, host coordinates
}

// Pan returns a pan command.
func Pan(dx, dy int) Command { return Command{Kind: CmdPan, DX: dx, DY: dy} }

// Zoom returns a zoom command.
func Zoom(factor float64) Command { return Command{Kind: CmdZoom, Factor: factor} }

// SetColor returns a palette command.
func SetColor(index int, r, g, b uint8) Command {
	return Command{Kind: CmdSetPaletteColor, Index: index, R: r, G: g, B: b}
}

// Inspect returns a command that reports the pixel under a host position.
func Inspect(sx, sy float64) Command { return Command{Kind: CmdInspect, SX: sx, SY: sy} }

// Apply executes a single command.
func (e *Engine) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdNone:
		return nil
	case CmdRender:
		return e.Render()
	case CmdSetPaletteColor:
		return e.SetPaletteColor(cmd.Index, cmd.R, cmd.G, cmd.B)
	case CmdPan:
		e.Pan(cmd.DX, cmd.DY)
		return nil
	case CmdZoom:
		return e.Zoom(cmd.Factor)
	case CmdAddLayer:
		e.AddLayer()
		return nil
	case CmdInspect:
		_, _, err := e.Inspect(cmd.SX, cmd.SY)
		return err
	default:
		return fmt.Errorf("unknown command %v", cmd.Kind)
	}
}

// ApplyAll executes commands in order and stops at the first error.
func (e *Engine) ApplyAll(cmds []Command) error {
	for i, cmd := range cmds {
		if err := e.Apply(cmd); err != nil {
			return fmt.Errorf("command %d (%v): %w", i, cmd.Kind, err)
		}
	}
	return nil
}
