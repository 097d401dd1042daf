package field

import (
	"sort"
)

// TransformedTile is one grid tile carried through the rotation and
// projection stages, ready to draw.
type TransformedTile struct {
	// Position of the tile on the full map.
	MapRow, MapCol int

	// Position of the tile within the visible window.
	WindowRow, WindowCol int

	Tile Tile

	// Screen anchor of the top-face diamond's bounding box.
	ScreenX, ScreenY float64

	// Painter key, larger means nearer the viewer.
	Depth float64
}

// OrderTiles sorts tiles back to front for painting. Depth ties break on map
// position so the ordering is total and two identical inputs always come out
// in the same order.
func OrderTiles(tiles []TransformedTile) {
	sort.Slice(tiles, func(i, j int) bool {
		a, b := &tiles[i], &tiles[j]
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		if a.MapRow != b.MapRow {
			return a.MapRow < b.MapRow
		}
		return a.MapCol < b.MapCol
	})
}
