// Package tilepaint is the pixel-level compositing and brush-rendering
// core of a tile-based raster image editor.
//
// The package operates on fixed-size 64x64 RGBA tiles in two encodings: a
// working encoding (unsigned 15-bit fixed point, premultiplied alpha) that
// every compositing and painting operation consumes, and an 8-bit straight
// alpha storage encoding exchanged at the load/save/display boundary. On
// top of the tile model it provides:
//
//   - a tile compositing engine with a library of named blend strategies
//     (Composite)
//   - a brush dab renderer painting RLE-masked dabs for live strokes
//     (DrawDab, DrawDabEraser, DrawDabLockAlpha, ColorAccumulator)
//   - bit-depth converters with dithering between the working and storage
//     encodings (ToStorage, ToStorageOpaque, FromStorage)
//   - flatten/unflatten transforms against an opaque background
//     (Flatten, Unflatten)
//   - a 2x box mipmap downscaler (Downscale)
//   - a perceptual stroke-change detector for building pick maps
//     (StrokeChanges)
//
// Every operation is a synchronous single-pass scan over caller-owned
// buffers. Tiles are not internally synchronized: callers must serialize
// access per tile, while distinct tiles may be processed in parallel. The
// only process-wide state is the read-only dithering noise table, built
// once on first use behind a sync.Once.
package tilepaint
