package perspective

import (
	"github.com/MobRulesGames/mathgl"
)

// Faces holds the screen polygons of the three visible faces of one tile.
// Top is the diamond the tile's floor paints; Left and Right are the side
// walls dropping from the diamond's lower edges down to the ground plane.
type Faces struct {
	Top   mathgl.Poly
	Left  mathgl.Poly
	Right mathgl.Poly
}

// TileFaces builds the face polygons for the tile at window coordinate
// (wx, wy) with the given height.
func (t *Transform) TileFaces(wx, wy float64, height int) Faces {
	ax, ay := t.Project(wx, wy, height)
	s := CellSize * t.cam.Zoom
	drop := float32(float64(height) * HeightUnit * t.cam.Zoom)

	left := mathgl.Vec2{X: float32(ax), Y: float32(ay + s/4)}
	top := mathgl.Vec2{X: float32(ax + s/2), Y: float32(ay)}
	right := mathgl.Vec2{X: float32(ax + s), Y: float32(ay + s/4)}
	bottom := mathgl.Vec2{X: float32(ax + s/2), Y: float32(ay + s/2)}

	groundLeft := mathgl.Vec2{X: left.X, Y: left.Y + drop}
	groundBottom := mathgl.Vec2{X: bottom.X, Y: bottom.Y + drop}
	groundRight := mathgl.Vec2{X: right.X, Y: right.Y + drop}

	return Faces{
		Top:   mathgl.Poly{left, top, right, bottom},
		Left:  mathgl.Poly{left, bottom, groundBottom, groundLeft},
		Right: mathgl.Poly{bottom, right, groundRight, groundBottom},
	}
}

// TopContains reports whether the screen point lies on the tile's top-face
// diamond. The diamond is split into two triangles sharing the vertical
// diagonal so containment stays exact along the seam.
func (f *Faces) TopContains(px, py float64) bool {
	p := mathgl.Vec2{X: float32(px), Y: float32(py)}
	left, top, right, bottom := f.Top[0], f.Top[1], f.Top[2], f.Top[3]
	return pointInTriangle(p, top, left, bottom) || pointInTriangle(p, top, bottom, right)
}

// TopBounds returns the axis-aligned bounding box of the top-face diamond.
func (f *Faces) TopBounds() (minX, minY, maxX, maxY float64) {
	left, top, right, bottom := f.Top[0], f.Top[1], f.Top[2], f.Top[3]
	return float64(left.X), float64(top.Y), float64(right.X), float64(bottom.Y)
}

func pointInTriangle(p, a, b, c mathgl.Vec2) bool {
	d := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if d > -1e-9 && d < 1e-9 {
		return false
	}
	u := ((b.Y-c.Y)*(p.X-c.X) + (c.X-b.X)*(p.Y-c.Y)) / d
	v := ((c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y)) / d
	w := 1 - u - v
	return u >= 0 && v >= 0 && w >= 0
}
