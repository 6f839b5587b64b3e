package main

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/tilepaint/surface"
)

// previewTerminal shows the flattened surface in the terminal until a key
// is pressed. Each character cell carries two pixels with the half-block
// trick: foreground colors the upper pixel, background the lower.
func previewTerminal(s *surface.Surface) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	draw := func() {
		screen.Clear()
		cols, rows := screen.Size()
		img, err := s.Preview(cols, rows*2)
		if err != nil {
			return
		}
		drawHalfBlocks(screen, img)
		screen.Show()
	}
	draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
				return nil
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return nil
				}
			}
		case *tcell.EventResize:
			screen.Sync()
			draw()
		}
	}
}

func drawHalfBlocks(screen tcell.Screen, img *image.RGBA) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			upper := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			lower := upper
			if y+1 < b.Dy() {
				lower = img.RGBAAt(b.Min.X+x, b.Min.Y+y+1)
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
				Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
			screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
}
