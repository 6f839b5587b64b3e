package tilepaint

import (
	"testing"

	"github.com/gogpu/tilepaint/internal/fix15"
)

var allBlendModes = []BlendMode{
	BlendNormal, BlendMultiply, BlendScreen, BlendOverlay, BlendDarken,
	BlendLighten, BlendHardLight, BlendSoftLight, BlendColorDodge,
	BlendColorBurn, BlendDifference, BlendExclusion, BlendHue,
	BlendSaturation, BlendColor, BlendLuminosity,
}

// TestCompositeZeroOpacityIsNoop: opacity rounding to zero must leave the
// destination bit-identical for every mode and both alpha policies.
func TestCompositeZeroOpacityIsNoop(t *testing.T) {
	src := randomTile(10)
	for _, mode := range allBlendModes {
		for _, hasAlpha := range []bool{true, false} {
			dst := randomTile(11)
			want := *dst
			Composite(src, dst, hasAlpha, 0, mode)
			if *dst != want {
				t.Errorf("%v hasAlpha=%v: zero opacity changed the destination", mode, hasAlpha)
			}
			Composite(src, dst, hasAlpha, 1e-9, mode)
			if *dst != want {
				t.Errorf("%v hasAlpha=%v: sub-ULP opacity changed the destination", mode, hasAlpha)
			}
		}
	}
}

// TestCompositeNormalOntoTransparent: Normal mode at full opacity over a
// fully transparent destination reproduces the source exactly.
func TestCompositeNormalOntoTransparent(t *testing.T) {
	src := randomTile(12)
	dst := new(Tile)
	Composite(src, dst, true, 1, BlendNormal)
	if *dst != *src {
		t.Fatal("Normal composite onto transparent destination is not the source")
	}
}

// TestCompositeOntoTransparent: the transparent-destination shortcut
// holds for every mode, not just Normal.
func TestCompositeOntoTransparent(t *testing.T) {
	src := randomTile(13)
	for _, mode := range allBlendModes {
		dst := new(Tile)
		Composite(src, dst, true, 1, mode)
		if *dst != *src {
			t.Errorf("%v composite onto transparent destination is not the source", mode)
		}
	}
}

// TestCompositeOpaquePolicyPreservesAlpha: with dstHasAlpha=false only
// color channels may be written.
func TestCompositeOpaquePolicyPreservesAlpha(t *testing.T) {
	src := randomTile(14)
	for _, mode := range allBlendModes {
		dst := opaqueTile(9000, 12000, 15000)
		dst.Fill(9000, 12000, 15000, 23456) // nonstandard alpha, must survive
		Composite(src, dst, false, 0.7, mode)
		for i := 3; i < len(dst); i += 4 {
			if dst[i] != 23456 {
				t.Fatalf("%v: opaque policy changed alpha at %d to %d", mode, i/4, dst[i])
			}
		}
	}
}

// TestCompositeUpholdsInvariant: every mode keeps the result a valid
// premultiplied tile at full and partial opacity.
func TestCompositeUpholdsInvariant(t *testing.T) {
	src := randomTile(15)
	for _, mode := range allBlendModes {
		for _, opacity := range []float32{0.33, 1} {
			dst := randomTile(16)
			Composite(src, dst, true, opacity, mode)
			if err := dst.Validate(); err != nil {
				t.Errorf("%v opacity=%v: %v", mode, opacity, err)
			}
		}
	}
}

// TestCompositeNormalSourceOver spot-checks the source-over arithmetic
// against hand-computed values.
func TestCompositeNormalSourceOver(t *testing.T) {
	src := new(Tile)
	src.Fill(fix15.Half, 0, 0, fix15.Half) // 50% opaque pure red
	dst := new(Tile)
	dst.Fill(0, fix15.One, 0, fix15.One) // opaque pure green
	Composite(src, dst, true, 1, BlendNormal)

	r, g, b, a := dst.Pixel(0, 0)
	if a != fix15.One {
		t.Errorf("alpha = %d, want %d", a, fix15.One)
	}
	if r != fix15.Half {
		t.Errorf("r = %d, want %d", r, fix15.Half)
	}
	if g != fix15.Half {
		t.Errorf("g = %d, want %d", g, fix15.Half)
	}
	if b != 0 {
		t.Errorf("b = %d, want 0", b)
	}
}

// TestCompositeMultiplyDarkens: multiplying an opaque destination by an
// opaque darker source never brightens any channel.
func TestCompositeMultiplyDarkens(t *testing.T) {
	src := opaqueTile(10000, 20000, 30000)
	dst := randomTile(17)
	// Force destination opaque so un-premultiplied colors are the raw
	// channels.
	for i := 0; i < len(dst); i += 4 {
		dst[i+3] = fix15.One
	}
	want := *dst
	Composite(src, dst, true, 1, BlendMultiply)
	for i := 0; i < len(dst); i += 4 {
		for c := 0; c < 3; c++ {
			if dst[i+c] > want[i+c] {
				t.Fatalf("Multiply brightened channel %d at %d: %d > %d",
					c, i/4, dst[i+c], want[i+c])
			}
		}
	}
}

// TestCompositeOpacityScales: half opacity must land strictly between
// no-op and full application for a solid source over a differing solid
// destination.
func TestCompositeOpacityScales(t *testing.T) {
	src := opaqueTile(fix15.One, fix15.One, fix15.One)
	full := opaqueTile(0, 0, 0)
	half := opaqueTile(0, 0, 0)
	Composite(src, full, true, 1, BlendNormal)
	Composite(src, half, true, 0.5, BlendNormal)

	fr, _, _, _ := full.Pixel(0, 0)
	hr, _, _, _ := half.Pixel(0, 0)
	if fr != fix15.One {
		t.Fatalf("full-opacity white over black = %d, want %d", fr, fix15.One)
	}
	if hr <= 0 || hr >= fix15.One {
		t.Fatalf("half-opacity white over black = %d, want interior value", hr)
	}
	if diff := int(hr) - fix15.Half; diff < -1 || diff > 1 {
		t.Fatalf("half-opacity white over black = %d, want ~%d", hr, fix15.Half)
	}
}
