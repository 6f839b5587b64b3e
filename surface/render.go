package surface

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/tilepaint"
)

// Render exports the painted content, without the background, as a
// straight-alpha image. Output is dithered through the storage converter.
func (s *Surface) Render() *image.NRGBA {
	img := image.NewNRGBA(s.Bounds())
	var store tilepaint.StorageTile
	var empty tilepaint.Tile
	s.eachTile(func(c TileCoord, px, py int) {
		t := s.tiles[c]
		if t == nil {
			t = &empty
		}
		tilepaint.ToStorage(t, &store)
		blitStorage(&store, img.Pix, img.Stride, px, py, s.width, s.height)
	})
	return img
}

// RenderOpaque exports the surface as seen: painted tiles flattened over
// the background.
func (s *Surface) RenderOpaque() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	var flat tilepaint.Tile
	var store tilepaint.StorageTile
	s.eachTile(func(c TileCoord, px, py int) {
		s.Flattened(c, &flat)
		tilepaint.ToStorageOpaque(&flat, &store)
		blitStorage(&store, img.Pix, img.Stride, px, py, s.width, s.height)
	})
	tilepaint.Logger().Debug("surface rendered",
		"width", s.width, "height", s.height, "tiles", len(s.tiles))
	return img
}

// Preview renders the flattened surface scaled to fit within maxW x maxH,
// preserving aspect ratio. Useful for thumbnails and terminal display.
func (s *Surface) Preview(maxW, maxH int) (*image.RGBA, error) {
	if maxW <= 0 || maxH <= 0 {
		return nil, ErrBadSize
	}
	full := s.RenderOpaque()

	w, h := s.width, s.height
	if w > maxW {
		h = h * maxW / w
		w = maxW
	}
	if h > maxH {
		w = w * maxH / h
		h = maxH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == s.width && h == s.height {
		return full, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), full, full.Bounds(), draw.Over, nil)
	return out, nil
}

// eachTile visits every grid coordinate with its top-left pixel position.
func (s *Surface) eachTile(fn func(c TileCoord, px, py int)) {
	for ty := 0; ty < s.tilesH; ty++ {
		for tx := 0; tx < s.tilesW; tx++ {
			fn(TileCoord{tx, ty}, tx*tilepaint.TileSize, ty*tilepaint.TileSize)
		}
	}
}

// blitStorage copies a storage tile into an RGBA-ordered pixel buffer at
// pixel offset (px, py), cropping at (w, h).
func blitStorage(t *tilepaint.StorageTile, pix []uint8, stride, px, py, w, h int) {
	rows := tilepaint.TileSize
	if py+rows > h {
		rows = h - py
	}
	cols := tilepaint.TileSize
	if px+cols > w {
		cols = w - px
	}
	for y := 0; y < rows; y++ {
		src := t[y*tilepaint.TileSize*4 : y*tilepaint.TileSize*4+cols*4]
		dst := pix[(py+y)*stride+px*4:]
		copy(dst, src)
	}
}
