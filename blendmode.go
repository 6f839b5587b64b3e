package tilepaint

import "github.com/gogpu/tilepaint/internal/blend"

// BlendMode selects the compositing strategy for Composite. The
// implementations live in internal/blend; the alias and constants below
// are the public face of the closed mode set.
type BlendMode = blend.Mode

// The named blend strategies. All modes share the source-over resulting
// alpha rule; they differ in how source and destination colors combine.
const (
	BlendNormal     BlendMode = blend.Normal
	BlendMultiply   BlendMode = blend.Multiply
	BlendScreen     BlendMode = blend.Screen
	BlendOverlay    BlendMode = blend.Overlay
	BlendDarken     BlendMode = blend.Darken
	BlendLighten    BlendMode = blend.Lighten
	BlendHardLight  BlendMode = blend.HardLight
	BlendSoftLight  BlendMode = blend.SoftLight
	BlendColorDodge BlendMode = blend.ColorDodge
	BlendColorBurn  BlendMode = blend.ColorBurn
	BlendDifference BlendMode = blend.Difference
	BlendExclusion  BlendMode = blend.Exclusion
	BlendHue        BlendMode = blend.Hue
	BlendSaturation BlendMode = blend.Saturation
	BlendColor      BlendMode = blend.Color
	BlendLuminosity BlendMode = blend.Luminosity
)
