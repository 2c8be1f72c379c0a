package parameter

// Wall shading distance bands, in grid units. Nearer walls draw with
// denser glyphs and brighter colors.
const (
	ShadeNearDist = 3.0
	ShadeMidDist  = 7.0
	ShadeFarDist  = 12.0
)

// SpriteScale converts sprite depth to apparent height:
// height = SpriteScale / depth
const SpriteScale = float64(ViewportHeight)
