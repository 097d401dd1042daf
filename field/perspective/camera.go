package perspective

import (
	"math"

	"github.com/MobRulesGames/gridmadness/logging"
)

const (
	// CellSize is the width in pixels of a tile's top-face diamond at zoom 1.
	// The diamond is half as tall as it is wide.
	CellSize = 16

	// HeightUnit is how many pixels one height step lifts a tile at zoom 1.
	HeightUnit = 5

	// RotationSteps is the number of discrete camera headings; one step is
	// 360/RotationSteps degrees about the window's vertical axis.
	RotationSteps = 24

	MinZoom = 0.3
	MaxZoom = 3.0

	// ZoomStep is the multiplicative increment applied per zoom command.
	ZoomStep = 1.1
)

// Camera is the full description of how the visible window is presented:
// which of the discrete headings is active, the zoom factor, the pixel pan
// offset, and where on screen the window's origin lands. It is a plain value
// so that a snapshot of it can key cached per-window geometry.
type Camera struct {
	RotationStep int
	Zoom         float64
	PanX, PanY   float64

	// Screen point that window coordinate (0, 0) projects to before panning.
	CenterX, CenterY float64
}

func MakeCamera(centerX, centerY float64) Camera {
	return Camera{
		Zoom:    1.0,
		CenterX: centerX,
		CenterY: centerY,
	}
}

// Angle returns the camera's heading in radians.
func (c *Camera) Angle() float64 {
	return float64(c.RotationStep) * (2 * math.Pi / RotationSteps)
}

func (c *Camera) RotateCW() {
	c.RotationStep = (c.RotationStep + 1) % RotationSteps
}

func (c *Camera) RotateCCW() {
	c.RotationStep = (c.RotationStep + RotationSteps - 1) % RotationSteps
}

// ZoomBy scales the zoom factor, clamping silently at the legal bounds.
func (c *Camera) ZoomBy(factor float64) {
	z := c.Zoom * factor
	if z < MinZoom {
		logging.Debug("zoom clamped", "requested", z, "min", MinZoom)
		z = MinZoom
	}
	if z > MaxZoom {
		logging.Debug("zoom clamped", "requested", z, "max", MaxZoom)
		z = MaxZoom
	}
	c.Zoom = z
}

func (c *Camera) ZoomIn() {
	c.ZoomBy(ZoomStep)
}

func (c *Camera) ZoomOut() {
	c.ZoomBy(1 / ZoomStep)
}

func (c *Camera) Pan(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
}
