package tilepaint

import (
	"math/rand/v2"
	"testing"

	"github.com/gogpu/tilepaint/internal/fix15"
)

// randomTile fills a tile with valid premultiplied pixels from a
// deterministic source.
func randomTile(seed uint64) *Tile {
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	t := new(Tile)
	for i := 0; i < len(t); i += 4 {
		a := uint16(rng.IntN(fix15.One + 1))
		t[i+0] = uint16(rng.IntN(int(a) + 1))
		t[i+1] = uint16(rng.IntN(int(a) + 1))
		t[i+2] = uint16(rng.IntN(int(a) + 1))
		t[i+3] = a
	}
	return t
}

// opaqueTile fills a tile with a flat opaque color.
func opaqueTile(r, g, b uint16) *Tile {
	t := new(Tile)
	t.Fill(r, g, b, fix15.One)
	return t
}

func TestTileFillAndPixel(t *testing.T) {
	tile := new(Tile)
	tile.Fill(100, 200, 300, 400)
	r, g, b, a := tile.Pixel(TileSize-1, TileSize-1)
	if r != 100 || g != 200 || b != 300 || a != 400 {
		t.Fatalf("Pixel = (%d,%d,%d,%d), want (100,200,300,400)", r, g, b, a)
	}
}

func TestTileCopyAndClear(t *testing.T) {
	src := randomTile(1)
	dst := new(Tile)
	dst.CopyFrom(src)
	if *dst != *src {
		t.Fatal("CopyFrom is not byte-identical")
	}
	dst.Clear()
	for i, v := range dst {
		if v != 0 {
			t.Fatalf("Clear left value %d at %d", v, i)
		}
	}
}

func TestTileValidate(t *testing.T) {
	tile := randomTile(2)
	if err := tile.Validate(); err != nil {
		t.Fatalf("random premultiplied tile failed validation: %v", err)
	}

	tile.SetPixel(3, 4, 0, 0, 0, fix15.One+1)
	if err := tile.Validate(); err == nil {
		t.Error("out-of-range alpha not detected")
	}

	tile.SetPixel(3, 4, 500, 0, 0, 400)
	if err := tile.Validate(); err == nil {
		t.Error("color above alpha not detected")
	}
}
