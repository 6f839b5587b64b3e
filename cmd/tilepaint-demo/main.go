// Command tilepaint-demo paints a few brush strokes onto a tiled surface
// and writes the result as a PNG, optionally previewing it in the
// terminal. It exercises the dab renderer, the blend-mode compositor and
// the surface assembly end to end.
package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/gogpu/tilepaint"
	"github.com/gogpu/tilepaint/surface"
)

func main() {
	app := cli.NewApp()
	app.Name = "tilepaint-demo"
	app.Description = "Paints brush strokes on a tiled surface and saves a PNG"
	app.Usage = "tilepaint-demo [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Usage: "Canvas width in pixels",
			Value: 1024,
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "Canvas height in pixels",
			Value: 640,
		},
		cli.StringFlag{
			Name:  "out",
			Usage: "Output PNG path",
			Value: "tilepaint.png",
		},
		cli.StringFlag{
			Name:  "background",
			Usage: "Background color (hex)",
			Value: "#f4f0e8",
		},
		cli.Float64Flag{
			Name:  "radius",
			Usage: "Brush radius in pixels",
			Value: 26,
		},
		cli.Float64Flag{
			Name:  "hardness",
			Usage: "Brush hardness in (0, 1]",
			Value: 0.6,
		},
		cli.Float64Flag{
			Name:  "opacity",
			Usage: "Per-dab opacity in [0, 1]",
			Value: 0.5,
		},
		cli.StringFlag{
			Name:  "mode",
			Usage: "Blend mode for merging the stroke layer (normal, multiply, screen, ...)",
			Value: "normal",
		},
		cli.Float64Flag{
			Name:  "layer-opacity",
			Usage: "Opacity of the stroke layer when merged",
			Value: 1.0,
		},
		cli.BoolFlag{
			Name:  "preview",
			Usage: "Show the result in the terminal after painting",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
	app.Action = runDemo

	if err := app.Run(os.Args); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

// strokeColors are cycled across the demo strokes.
var strokeColors = []string{"#1c6ee8", "#e8431c", "#23a047"}

func runDemo(c *cli.Context) error {
	if c.Bool("verbose") {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		tilepaint.SetLogger(slog.New(handler))
	}

	mode, err := parseMode(c.String("mode"))
	if err != nil {
		return err
	}

	width, height := c.Int("width"), c.Int("height")
	base, err := surface.New(width, height)
	if err != nil {
		return err
	}
	bgR, bgG, bgB, err := parseBrushColor(c.String("background"))
	if err != nil {
		return err
	}
	if err := base.SetBackground(bgR, bgG, bgB); err != nil {
		return err
	}

	// Strokes go on their own layer so the merge can use any blend mode.
	layer, err := surface.New(width, height)
	if err != nil {
		return err
	}

	brush := &Brush{
		Radius:   c.Float64("radius"),
		Hardness: c.Float64("hardness"),
		Opacity:  c.Float64("opacity"),
	}
	if err := paintStrokes(layer, brush, width, height); err != nil {
		return err
	}

	mergeLayer(layer, base, float32(c.Float64("layer-opacity")), mode)

	img := base.RenderOpaque()
	out := c.String("out")
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("saved", "path", out, "width", width, "height", height,
		"tiles", base.TileCount())

	if c.Bool("preview") {
		return previewTerminal(base)
	}
	return nil
}

// paintStrokes draws one wavy stroke per color plus an eraser pass
// through the middle.
func paintStrokes(s *surface.Surface, brush *Brush, width, height int) error {
	for i, hex := range strokeColors {
		r, g, b, err := parseBrushColor(hex)
		if err != nil {
			return err
		}
		brush.R, brush.G, brush.B = r, g, b
		brush.Eraser = false

		var points [][2]float64
		baseY := float64(height) * float64(i+1) / (float64(len(strokeColors)) + 1)
		amp := float64(height) / 8
		for x := 0.0; x <= float64(width); x += 8 {
			phase := x/float64(width)*4*math.Pi + float64(i)
			points = append(points, [2]float64{x, baseY + amp*math.Sin(phase)})
		}
		if err := brush.Stroke(s, points); err != nil {
			return err
		}
	}

	// A vertical eraser stroke to show paint removal.
	brush.Eraser = true
	return brush.Stroke(s, [][2]float64{
		{float64(width) / 2, 0},
		{float64(width) / 2, float64(height)},
	})
}

// mergeLayer composites every painted tile of src over dst.
func mergeLayer(src, dst *surface.Surface, opacity float32, mode tilepaint.BlendMode) {
	grid := src.TileBounds()
	for ty := grid.Min.Y; ty < grid.Max.Y; ty++ {
		for tx := grid.Min.X; tx < grid.Max.X; tx++ {
			c := surface.TileCoord{X: tx, Y: ty}
			srcTile := src.Peek(c)
			if srcTile == nil {
				continue
			}
			dstTile, err := dst.Tile(c)
			if err != nil {
				continue
			}
			tilepaint.Composite(srcTile, dstTile, true, opacity, mode)
		}
	}
}

func parseMode(name string) (tilepaint.BlendMode, error) {
	for m := tilepaint.BlendNormal; m.Valid(); m++ {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown blend mode %q", name)
}
