package field_test

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/MobRulesGames/gridmadness/field"
	"github.com/MobRulesGames/gridmadness/field/perspective"
	. "github.com/smartystreets/goconvey/convey"
)

func givenAViewer(gridSize int, seed int64) *field.FieldViewer {
	g := givenAFilledGrid(gridSize, seed)
	cam := perspective.MakeCamera(320, 240)
	return field.MakeFieldViewer(g, field.DefaultWindowSize, cam)
}

func visibleAt(fv *field.FieldViewer, row, col int) (field.TransformedTile, bool) {
	for _, tt := range fv.GetVisibleTiles() {
		if tt.MapRow == row && tt.MapCol == col {
			return tt, true
		}
	}
	return field.TransformedTile{}, false
}

func TestFieldViewer(t *testing.T) {
	Convey("FieldViewer", t, func() {
		fv := givenAViewer(field.DefaultGridSize, 11)

		Convey("starts centered on the map", func() {
			row, col := fv.ViewportPosition()
			So(row, ShouldEqual, (field.DefaultGridSize-field.DefaultWindowSize)/2)
			So(col, ShouldEqual, row)
		})

		Convey("always exposes a full window of tiles", func() {
			So(len(fv.GetVisibleTiles()), ShouldEqual, field.DefaultWindowSize*field.DefaultWindowSize)
		})

		Convey("visible tiles mirror the grid", func() {
			row, col := fv.ViewportPosition()
			tt, ok := visibleAt(fv, row+3, col+5)
			So(ok, ShouldBeTrue)
			So(tt.Tile.Defname, ShouldEqual, fv.Grid().At(row+3, col+5).Defname)
		})

		Convey("viewport positions clamp to the map edge", func() {
			fv.SetViewportPosition(-5, 300)
			row, col := fv.ViewportPosition()
			So(row, ShouldEqual, 0)
			So(col, ShouldEqual, field.DefaultGridSize-field.DefaultWindowSize)

			_, ok := visibleAt(fv, 0, field.DefaultGridSize-1)
			So(ok, ShouldBeTrue)
		})

		Convey("moving the viewport shifts the window", func() {
			row, col := fv.ViewportPosition()
			fv.MoveViewport(1, 0)
			newRow, newCol := fv.ViewportPosition()
			So(newRow, ShouldEqual, row+1)
			So(newCol, ShouldEqual, col)
		})

		Convey("tiles come out in back-to-front order", func() {
			tiles := fv.GetVisibleTiles()
			for i := 1; i < len(tiles); i++ {
				So(tiles[i-1].Depth, ShouldBeLessThanOrEqualTo, tiles[i].Depth)
			}
		})

		Convey("revisiting a position serves identical geometry", func() {
			before := fv.GetVisibleTiles()
			fv.MoveViewport(0, 5)
			fv.MoveViewport(0, -5)
			So(fv.GetVisibleTiles(), ShouldResemble, before)
		})

		Convey("camera changes show up in the projection", func() {
			row, col := fv.ViewportPosition()
			before, _ := visibleAt(fv, row+1, col+1)
			fv.RotateCW()
			after, _ := visibleAt(fv, row+1, col+1)
			So(after.ScreenX, ShouldNotEqual, before.ScreenX)

			Convey("and rotating back restores it", func() {
				fv.RotateCCW()
				restored, _ := visibleAt(fv, row+1, col+1)
				So(restored.ScreenX, ShouldEqual, before.ScreenX)
				So(restored.ScreenY, ShouldEqual, before.ScreenY)
			})
		})

		Convey("ResetCamera returns to the initial state", func() {
			fv.RotateCW()
			fv.ZoomIn()
			fv.Pan(10, -4)
			fv.ResetCamera()
			cam := fv.Camera()
			So(cam.RotationStep, ShouldEqual, 0)
			So(cam.Zoom, ShouldEqual, 1.0)
			So(cam.PanX, ShouldEqual, 0)
		})
	})
}

func TestViewerCache(t *testing.T) {
	Convey("the transformed tile cache", t, func() {
		fv := givenAViewer(field.DefaultGridSize, 23)

		Convey("retains at most its capacity", func() {
			for i := 0; i < 150; i++ {
				fv.SetViewportPosition(i, i)
			}
			So(fv.CacheLen(), ShouldBeLessThanOrEqualTo, 100)
		})

		Convey("InvalidateRegion forces edited tiles to reproject", func() {
			row, col := fv.ViewportPosition()
			target := fv.Grid().At(row+5, col+5)
			stale, _ := visibleAt(fv, row+5, col+5)
			So(stale.Tile.Height, ShouldEqual, target.Height)

			target.Height += 2
			if target.Height > field.MaxHeight {
				target.Height = field.MinHeight
			}
			fv.Grid().Set(row+5, col+5, target)
			fv.InvalidateRegion(row+5, col+5, row+5, col+5)

			fresh, ok := visibleAt(fv, row+5, col+5)
			So(ok, ShouldBeTrue)
			So(fresh.Tile.Height, ShouldEqual, target.Height)
			So(fresh.ScreenY, ShouldNotEqual, stale.ScreenY)
		})

		Convey("InvalidateRegion outside the window leaves it alone", func() {
			before := fv.GetVisibleTiles()
			fv.InvalidateRegion(0, 0, 2, 2)
			So(fv.GetVisibleTiles(), ShouldResemble, before)
		})

		Convey("ClearCache reprojects from the live grid", func() {
			row, col := fv.ViewportPosition()
			target := fv.Grid().At(row, col)
			target.Height = field.MaxHeight
			fv.Grid().Set(row, col, target)

			fv.ClearCache()
			So(fv.CacheLen(), ShouldEqual, 1)
			fresh, _ := visibleAt(fv, row, col)
			So(fresh.Tile.Height, ShouldEqual, field.MaxHeight)
		})

		Convey("StepHeights immediately shows new heights", func() {
			row, col := fv.ViewportPosition()
			before := fv.Grid().At(row+2, col+2).Height
			fv.StepHeights()
			fresh, _ := visibleAt(fv, row+2, col+2)
			So(fresh.Tile.Height, ShouldNotEqual, before)
		})

		Convey("RegenerateField resets the cache", func() {
			for i := 0; i < 10; i++ {
				fv.SetViewportPosition(i, i)
			}
			fv.RegenerateField(rand.New(rand.NewSource(99)))
			So(fv.CacheLen(), ShouldEqual, 1)
			So(len(fv.GetVisibleTiles()), ShouldEqual, field.DefaultWindowSize*field.DefaultWindowSize)
		})

		Convey("LoadMap failure leaves the view untouched", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "bad.json")
			smaller := givenAFilledGrid(8, 1)
			So(field.SaveGrid(path, smaller), ShouldBeNil)

			before := fv.GetVisibleTiles()
			err := fv.LoadMap(path)
			So(err, ShouldNotBeNil)
			So(fv.GetVisibleTiles(), ShouldResemble, before)
		})

		Convey("SaveMap then LoadMap round-trips through the viewer", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "field.json")
			So(fv.SaveMap(path), ShouldBeNil)

			fv.StepHeights()
			So(fv.LoadMap(path), ShouldBeNil)

			row, col := fv.ViewportPosition()
			tt, _ := visibleAt(fv, row, col)
			So(tt.Tile.Height, ShouldEqual, fv.Grid().At(row, col).Height)
		})
	})
}
