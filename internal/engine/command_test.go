package engine

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/pixelforge/internal/logger"
	"github.com/Faultbox/pixelforge/pkg/palette"
	"github.com/Faultbox/pixelforge/pkg/render"
	"github.com/Faultbox/pixelforge/pkg/viewport"
)

func TestApply(t *testing.T) {
	e, rec := newEngine(t, 2, 1)

	cmds := []Command{
		SetColor(0, 10, 20, 30),
		Pan(1, 0),
		Zoom(2),
		{Kind: CmdAddLayer},
		{Kind: CmdNone},
		{Kind: CmdRender},
	}
	if err := e.ApplyAll(cmds); err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}

	if c, _ := e.Palette().Lookup(0); c != (palette.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("palette[0] = %v", c)
	}
	if v := e.Viewport(); v.OffsetX != 1 || v.Zoom != 2 {
		t.Errorf("viewport = %+v", v)
	}
	if e.Layers().Len() != 2 {
		t.Errorf("layers = %d, want 2", e.Layers().Len())
	}
	if len(rec.Commands) != 2 {
		t.Errorf("render emitted %d commands, want 2", len(rec.Commands))
	}
}

func TestApplyAllStopsOnError(t *testing.T) {
	e, _ := newEngine(t, 1, 1)

	err := e.ApplyAll([]Command{Pan(1, 1), Zoom(-1), Pan(5, 5)})
	if !errors.Is(err, viewport.ErrInvalidScale) {
		t.Fatalf("ApplyAll error = %v, want ErrInvalidScale", err)
	}
	if v := e.Viewport(); v.OffsetX != 1 || v.OffsetY != 1 {
		t.Errorf("commands after the failure ran: %+v", v)
	}

	if err := e.Apply(Command{Kind: CommandKind(99)}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestCommandKindString(t *testing.T) {
	if got := CmdSetPaletteColor.String(); got != "set_palette_color" {
		t.Errorf("String() = %q", got)
	}
	if got := CmdInspect.String(); got != "inspect" {
		t.Errorf("String() = %q", got)
	}
	if got := CommandKind(42).String(); got != "CommandKind(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestApplyInspect(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.Use(zap.New(core))
	defer logger.Nop()

	opts := DefaultOptions(2, 2)
	opts.PaletteSize = 4
	e, err := New(opts, &render.Recorder{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_ = e.SetPaletteColor(0, 0, 0, 255)

	// Clicks inside and outside the canvas both succeed; only the first
	// reports a pixel.
	if err := e.ApplyAll([]Command{Inspect(1.5, 0.2), Inspect(-3, 0)}); err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	entries := logs.FilterMessage("pixel inspected").All()
	if len(entries) != 1 {
		t.Fatalf("expected one 'pixel inspected' log entry, got %d", len(entries))
	}
	if c := entries[0].ContextMap()["color"]; c != "rgb(0,0,255)" {
		t.Errorf("color = %v, want rgb(0,0,255)", c)
	}

	l, _ := e.Layers().At(0)
	l.Fill(200)
	if err := e.Apply(Inspect(0, 0)); !errors.Is(err, palette.ErrIndexOutOfRange) {
		t.Errorf("Apply(Inspect) error = %v, want ErrIndexOutOfRange", err)
	}
}
