package perspective

import (
	"github.com/MobRulesGames/mathgl"
)

// depthHeightWeight pulls taller tiles slightly toward the viewer so that a
// raised tile paints over its flat neighbours at equal grid depth.
const depthHeightWeight = 0.1

// Transform bakes a Camera and a window size into the matrices needed to map
// window coordinates through the rotate, project, and camera stages. Build
// one per frame (or per cached window) and reuse it for every tile.
type Transform struct {
	cam  Camera
	rot  mathgl.Mat3
	irot mathgl.Mat3
}

func MakeTransform(cam Camera, windowSize int) Transform {
	center := float32(windowSize) / 2
	angle := float32(cam.Angle())
	return Transform{
		cam:  cam,
		rot:  rotationAbout(center, angle),
		irot: rotationAbout(center, -angle),
	}
}

// rotationAbout builds the matrix rotating window coordinates by angle about
// the point (center, center).
func rotationAbout(center, angle float32) mathgl.Mat3 {
	var run, m mathgl.Mat3
	run.Identity()
	m.Translation(center, center)
	run.Multiply(&m)
	m.RotationZ(angle)
	run.Multiply(&m)
	m.Translation(-center, -center)
	run.Multiply(&m)
	return run
}

func (t *Transform) Camera() Camera {
	return t.cam
}

// Rotated applies only the rotation stage to a window coordinate. The
// rotated coordinates feed both the isometric projection and the painter
// depth ordering.
func (t *Transform) Rotated(wx, wy float64) (float64, float64) {
	v := mathgl.Vec2{X: float32(wx), Y: float32(wy)}
	v.Transform(&t.rot)
	return float64(v.X), float64(v.Y)
}

// DepthKey orders tiles back to front: larger keys draw later and therefore
// closer to the viewer.
func (t *Transform) DepthKey(wx, wy float64, height int) float64 {
	rx, ry := t.Rotated(wx, wy)
	return rx + ry - depthHeightWeight*float64(height)
}

// Project maps a window coordinate and height to the tile's screen anchor,
// the top-left corner of the bounding box of its top-face diamond.
func (t *Transform) Project(wx, wy float64, height int) (float64, float64) {
	rx, ry := t.Rotated(wx, wy)
	isoX := (rx - ry) * (CellSize / 2)
	isoY := (rx+ry)*(CellSize/4) - float64(height)*HeightUnit
	sx := t.cam.CenterX + isoX*t.cam.Zoom + t.cam.PanX
	sy := t.cam.CenterY + isoY*t.cam.Zoom + t.cam.PanY
	return sx, sy
}

// Center returns the screen position of the middle of the tile's top face.
func (t *Transform) Center(wx, wy float64, height int) (float64, float64) {
	ax, ay := t.Project(wx, wy, height)
	s := CellSize * t.cam.Zoom
	return ax + s/2, ay + s/4
}

// Unproject inverts the camera and projection stages for a point on the
// height-zero plane, returning fractional window coordinates. Points over
// raised tiles land short of the tile that drew them, so callers that need
// an exact answer should test actual face geometry instead.
func (t *Transform) Unproject(sx, sy float64) (float64, float64) {
	isoX := (sx - t.cam.CenterX - t.cam.PanX) / t.cam.Zoom
	isoY := (sy - t.cam.CenterY - t.cam.PanY) / t.cam.Zoom
	rx := (isoX/(CellSize/2) + isoY/(CellSize/4)) / 2
	ry := (isoY/(CellSize/4) - isoX/(CellSize/2)) / 2
	v := mathgl.Vec2{X: float32(rx), Y: float32(ry)}
	v.Transform(&t.irot)
	return float64(v.X), float64(v.Y)
}
