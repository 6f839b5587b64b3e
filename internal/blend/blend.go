// Package blend implements the named per-pixel blend strategies used by
// the tile compositing engine.
//
// All functions operate on un-premultiplied channel values in the 15-bit
// fixed-point domain [0, fix15.One]. The compositing engine is responsible
// for un-premultiplying its inputs, applying the strategy, and folding the
// result back into the standard source-over alpha formula; the strategies
// themselves are pure and carry no state across pixels.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - PDF Blend Modes: Addendum (ISO 32000-1:2008)
package blend

// Mode identifies one strategy from the closed set of blend modes.
type Mode int

const (
	// Normal selects the source color.
	Normal Mode = iota
	// Multiply multiplies source and destination.
	Multiply
	// Screen multiplies the complements and complements the result.
	Screen
	// Overlay multiplies or screens depending on the destination value.
	Overlay
	// Darken selects the darker channel value.
	Darken
	// Lighten selects the lighter channel value.
	Lighten
	// HardLight multiplies or screens depending on the source value.
	HardLight
	// SoftLight darkens or lightens, a diffuse variant of HardLight.
	SoftLight
	// ColorDodge brightens the destination to reflect the source.
	ColorDodge
	// ColorBurn darkens the destination to reflect the source.
	ColorBurn
	// Difference subtracts the darker channel from the lighter one.
	Difference
	// Exclusion is a lower-contrast variant of Difference.
	Exclusion
	// Hue takes the source hue with destination saturation and luminosity.
	Hue
	// Saturation takes the source saturation with destination hue and
	// luminosity.
	Saturation
	// Color takes the source hue and saturation with destination
	// luminosity.
	Color
	// Luminosity takes the source luminosity with destination hue and
	// saturation.
	Luminosity

	numModes
)

var modeNames = [numModes]string{
	"Normal", "Multiply", "Screen", "Overlay", "Darken", "Lighten",
	"HardLight", "SoftLight", "ColorDodge", "ColorBurn", "Difference",
	"Exclusion", "Hue", "Saturation", "Color", "Luminosity",
}

func (m Mode) String() string {
	if m < 0 || m >= numModes {
		return "Unknown"
	}
	return modeNames[m]
}

// Valid reports whether m names one of the defined strategies.
func (m Mode) Valid() bool {
	return m >= 0 && m < numModes
}

// Separable reports whether m blends each of R, G, B independently.
// Non-separable modes operate on the whole RGB triple via its HSL
// decomposition.
func (m Mode) Separable() bool {
	return m < Hue
}

// SeparableFunc is a per-channel blend function B(s, d) over
// un-premultiplied fixed-point values.
type SeparableFunc func(s, d uint32) uint32

// NonSeparableFunc is a blend function over whole un-premultiplied RGB
// triples.
type NonSeparableFunc func(sr, sg, sb, dr, dg, db uint32) (uint32, uint32, uint32)

var separableFuncs = [numModes]SeparableFunc{
	Normal:     blendNormal,
	Multiply:   blendMultiply,
	Screen:     blendScreen,
	Overlay:    blendOverlay,
	Darken:     blendDarken,
	Lighten:    blendLighten,
	HardLight:  blendHardLight,
	SoftLight:  blendSoftLight,
	ColorDodge: blendColorDodge,
	ColorBurn:  blendColorBurn,
	Difference: blendDifference,
	Exclusion:  blendExclusion,
}

var nonSeparableFuncs = [numModes]NonSeparableFunc{
	Hue:        blendHue,
	Saturation: blendSaturation,
	Color:      blendColor,
	Luminosity: blendLuminosity,
}

// Func returns m's per-channel function, or nil if m is non-separable.
// Callers hoist the lookup out of their pixel loops.
func (m Mode) Func() SeparableFunc {
	if !m.Valid() {
		return blendNormal
	}
	return separableFuncs[m]
}

// TripleFunc returns m's RGB-triple function, or nil if m is separable.
func (m Mode) TripleFunc() NonSeparableFunc {
	if !m.Valid() {
		return nil
	}
	return nonSeparableFuncs[m]
}
