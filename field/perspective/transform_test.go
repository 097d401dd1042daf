package perspective_test

import (
	"testing"

	"github.com/MobRulesGames/gridmadness/field/perspective"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTransform(t *testing.T) {
	Convey("Transform", t, func() {
		cam := perspective.MakeCamera(320, 240)

		Convey("with no rotation the projection is plain isometric", func() {
			tr := perspective.MakeTransform(cam, 16)

			rx, ry := tr.Rotated(3, 7)
			So(rx, ShouldAlmostEqual, 3, 1e-4)
			So(ry, ShouldAlmostEqual, 7, 1e-4)

			sx, sy := tr.Project(3, 7, 0)
			So(sx, ShouldAlmostEqual, 320+(3-7)*perspective.CellSize/2, 1e-3)
			So(sy, ShouldAlmostEqual, 240+(3+7)*perspective.CellSize/4, 1e-3)
		})

		Convey("height lifts the anchor straight up", func() {
			tr := perspective.MakeTransform(cam, 16)
			x0, y0 := tr.Project(5, 5, 0)
			x4, y4 := tr.Project(5, 5, 4)
			So(x4, ShouldAlmostEqual, x0, 1e-4)
			So(y4, ShouldAlmostEqual, y0-4*perspective.HeightUnit, 1e-3)
		})

		Convey("the window center is a fixed point of rotation", func() {
			for step := 0; step < perspective.RotationSteps; step++ {
				cam.RotationStep = step
				tr := perspective.MakeTransform(cam, 16)
				rx, ry := tr.Rotated(8, 8)
				So(rx, ShouldAlmostEqual, 8, 1e-3)
				So(ry, ShouldAlmostEqual, 8, 1e-3)
			}
		})

		Convey("projection is deterministic per camera state", func() {
			for step := 0; step < perspective.RotationSteps; step++ {
				for _, zoom := range []float64{0.3, 1.0, 3.0} {
					cam.RotationStep = step
					cam.Zoom = zoom
					a := perspective.MakeTransform(cam, 16)
					b := perspective.MakeTransform(cam, 16)
					ax, ay := a.Project(2, 11, 6)
					bx, by := b.Project(2, 11, 6)
					So(ax, ShouldEqual, bx)
					So(ay, ShouldEqual, by)
				}
			}
		})

		Convey("Unproject inverts Project on the ground plane", func() {
			for step := 0; step < perspective.RotationSteps; step++ {
				for _, zoom := range []float64{0.3, 1.0, 3.0} {
					cam.RotationStep = step
					cam.Zoom = zoom
					cam.PanX, cam.PanY = -6, 16
					tr := perspective.MakeTransform(cam, 16)
					sx, sy := tr.Project(4, 12, 0)
					wx, wy := tr.Unproject(sx, sy)
					So(wx, ShouldAlmostEqual, 4, 1e-2)
					So(wy, ShouldAlmostEqual, 12, 1e-2)
				}
			}
		})
	})
}

func TestFaces(t *testing.T) {
	Convey("Faces", t, func() {
		cam := perspective.MakeCamera(320, 240)

		Convey("the top face center hits its own diamond", func() {
			for step := 0; step < perspective.RotationSteps; step++ {
				for _, zoom := range []float64{0.3, 1.0, 3.0} {
					cam.RotationStep = step
					cam.Zoom = zoom
					tr := perspective.MakeTransform(cam, 16)
					faces := tr.TileFaces(9, 3, 7)
					cx, cy := tr.Center(9, 3, 7)
					So(faces.TopContains(cx, cy), ShouldBeTrue)
				}
			}
		})

		Convey("the diamond lies inside its bounding box", func() {
			tr := perspective.MakeTransform(cam, 16)
			faces := tr.TileFaces(9, 3, 7)
			minX, minY, maxX, maxY := faces.TopBounds()
			cx, cy := tr.Center(9, 3, 7)
			So(cx, ShouldBeBetween, minX, maxX)
			So(cy, ShouldBeBetween, minY, maxY)
			So(maxX-minX, ShouldAlmostEqual, float64(perspective.CellSize)*cam.Zoom, 1e-3)
			So(maxY-minY, ShouldAlmostEqual, float64(perspective.CellSize)*cam.Zoom/2, 1e-3)
		})

		Convey("points just outside the diamond miss", func() {
			tr := perspective.MakeTransform(cam, 16)
			faces := tr.TileFaces(9, 3, 7)
			minX, minY, _, _ := faces.TopBounds()
			So(faces.TopContains(minX+0.01, minY+0.01), ShouldBeFalse)
		})

		Convey("side faces drop by the tile's lift", func() {
			tr := perspective.MakeTransform(cam, 16)
			faces := tr.TileFaces(9, 3, 7)
			top := faces.Top[0]
			ground := faces.Left[3]
			So(float64(ground.Y-top.Y), ShouldAlmostEqual, 7*perspective.HeightUnit, 1e-3)
			So(ground.X, ShouldEqual, top.X)
		})
	})
}
