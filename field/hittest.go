package field

import (
	"github.com/MobRulesGames/gridmadness/field/perspective"
)

// HitTest maps a screen point to the tile whose top face is drawn under it.
// Tiles are checked nearest first, so when raised tiles overlap the one the
// user actually sees wins. Returns ok == false when the point misses every
// visible tile.
func (fv *FieldViewer) HitTest(sx, sy float64) (row, col int, ok bool) {
	tr := perspective.MakeTransform(fv.cam, fv.windowSize)
	s := perspective.CellSize * fv.cam.Zoom

	// current is in back-to-front paint order, walk it in reverse. The
	// bounding box of each diamond follows from its stored anchor, so almost
	// every tile is culled without building its face geometry.
	for i := len(fv.current) - 1; i >= 0; i-- {
		tt := &fv.current[i]
		if sx < tt.ScreenX || sx > tt.ScreenX+s || sy < tt.ScreenY || sy > tt.ScreenY+s/2 {
			continue
		}
		faces := tr.TileFaces(float64(tt.WindowCol), float64(tt.WindowRow), tt.Tile.Height)
		if faces.TopContains(sx, sy) {
			return tt.MapRow, tt.MapCol, true
		}
	}
	return 0, 0, false
}
