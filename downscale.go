package tilepaint

// Downscale writes the half-resolution reduction of src into the quadrant
// of dst starting at pixel offset (dstX, dstY). Each destination pixel is
// the box-filtered average of a 2x2 source block, per channel, truncating
// the division by 4; constant input reproduces exactly. The offsets must
// address a 32x32 quadrant inside dst (0 or TileSize/2).
//
// Mipmap levels are built by downscaling the four child tiles of a level
// into the four quadrants of their parent tile.
func Downscale(src, dst *Tile, dstX, dstY int) {
	assertValid(src)
	const half = TileSize / 2
	const rowWords = TileSize * 4
	for y := 0; y < half; y++ {
		sp := 2 * y * rowWords
		dp := ((y+dstY)*TileSize + dstX) * 4
		for x := 0; x < half; x++ {
			for c := 0; c < 4; c++ {
				sum := uint32(src[sp+c]) + uint32(src[sp+4+c]) +
					uint32(src[sp+rowWords+c]) + uint32(src[sp+rowWords+4+c])
				dst[dp+c] = uint16(sum / 4)
			}
			sp += 8
			dp += 4
		}
	}
}
