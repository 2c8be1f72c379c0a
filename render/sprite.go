package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termstrike/component"
	"github.com/lixenwraith/termstrike/parameter"
	"github.com/lixenwraith/termstrike/vmath"
)

// Sprite is a world object the compositor can draw
type Sprite struct {
	Pos   vmath.Vec2
	Glyph rune
	Style tcell.Style
}

// visibleSprite is a sprite after the view transform
type visibleSprite struct {
	Sprite
	dist      float64
	screenCol int
}

// Compositor projects world sprites into screen columns and clips
// them against the depth buffer so walls occlude correctly.
type Compositor struct {
	depth *DepthBuffer

	// scratch reused across frames to avoid per-frame allocation
	visible []visibleSprite
}

// NewCompositor creates a compositor reading occlusion from depth
func NewCompositor(depth *DepthBuffer) *Compositor {
	return &Compositor{depth: depth}
}

// Compose draws all sprites visible from pose into buf. Sprites sort
// far to near so closer sprites overwrite farther ones where their
// columns overlap; each column draws only if the sprite is nearer
// than the wall recorded in the depth buffer.
func (c *Compositor) Compose(buf *Buffer, pose component.Pose, sprites []Sprite) {
	c.visible = c.visible[:0]
	width := buf.Width()

	for _, s := range sprites {
		dist := vmath.Dist(pose.Pos, s.Pos)
		if dist < parameter.MinDepth || dist > parameter.MaxDepth {
			continue
		}

		// Angle offset within the view frame; positive = left of center
		rel := vmath.AngleDiff(vmath.Angle(pose.Pos, s.Pos), pose.Angle)
		if rel > parameter.FOV/2 || rel < -parameter.FOV/2 {
			continue
		}

		col := int((parameter.FOV/2 - rel) / parameter.FOV * float64(width))
		c.visible = append(c.visible, visibleSprite{
			Sprite:    s,
			dist:      dist,
			screenCol: col,
		})
	}

	sort.Slice(c.visible, func(i, j int) bool {
		return c.visible[i].dist > c.visible[j].dist
	})

	height := buf.Height()
	for _, v := range c.visible {
		spriteHeight := int(parameter.SpriteScale / v.dist)
		if spriteHeight > height {
			spriteHeight = height
		}
		if spriteHeight < 1 {
			spriteHeight = 1
		}
		spriteWidth := spriteHeight / 2
		if spriteWidth < 1 {
			spriteWidth = 1
		}

		drawStart := (height - spriteHeight) / 2
		drawEnd := (height + spriteHeight) / 2

		for col := v.screenCol - spriteWidth/2; col <= v.screenCol+spriteWidth/2; col++ {
			if col < 0 || col >= width {
				continue
			}
			// Occlusion test against the wall at this column
			if v.dist >= c.depth.At(col).Dist {
				continue
			}
			for y := drawStart; y < drawEnd; y++ {
				buf.Set(col, y, v.Glyph, v.Style)
			}
		}
	}
}
