package field

import (
	"math/rand"

	"github.com/MobRulesGames/GoLLRB/llrb"
	"github.com/MobRulesGames/gridmadness/field/perspective"
	"github.com/MobRulesGames/gridmadness/logging"
)

const (
	// DefaultWindowSize is the edge length of the visible window, in tiles.
	DefaultWindowSize = 16

	// cacheCapacity bounds how many transformed windows are kept around.
	cacheCapacity = 100
)

// cacheKey identifies one transformed window: where the window sits on the
// map and the exact camera state it was projected with.
type cacheKey struct {
	ViewRow, ViewCol int
	Cam              perspective.Camera
}

type cacheEntry struct {
	key      cacheKey
	lastUsed int64
	tiles    []TransformedTile
}

// FieldViewer presents a sliding window onto a Grid. It owns the camera and
// keeps the transformed tiles for recently shown (position, camera) pairs so
// revisiting one costs a map lookup instead of a reprojection. Every path
// that changes what should be on screen refreshes eagerly, which leaves
// GetVisibleTiles as a pure read the frame loop can call at will.
type FieldViewer struct {
	grid       *Grid
	windowSize int

	cam        perspective.Camera
	initialCam perspective.Camera

	viewRow, viewCol int

	entries map[cacheKey]*cacheEntry
	byAge   *llrb.Tree
	tick    int64

	current []TransformedTile
}

func MakeFieldViewer(grid *Grid, windowSize int, cam perspective.Camera) *FieldViewer {
	fv := &FieldViewer{
		grid:       grid,
		windowSize: windowSize,
		cam:        cam,
		initialCam: cam,
	}
	fv.entries = make(map[cacheKey]*cacheEntry)
	fv.byAge = llrb.New(entryLess)
	fv.viewRow, fv.viewCol = fv.clampView((grid.Size()-windowSize)/2, (grid.Size()-windowSize)/2)
	fv.refresh(true)
	return fv
}

func entryLess(a, b interface{}) bool {
	return a.(*cacheEntry).lastUsed < b.(*cacheEntry).lastUsed
}

func (fv *FieldViewer) WindowSize() int {
	return fv.windowSize
}

func (fv *FieldViewer) Grid() *Grid {
	return fv.grid
}

func (fv *FieldViewer) Camera() perspective.Camera {
	return fv.cam
}

func (fv *FieldViewer) ViewportPosition() (row, col int) {
	return fv.viewRow, fv.viewCol
}

// GetVisibleTiles returns the current window's tiles in back-to-front paint
// order. The slice is shared; callers must not modify it.
func (fv *FieldViewer) GetVisibleTiles() []TransformedTile {
	return fv.current
}

// CacheLen reports how many transformed windows are currently retained.
func (fv *FieldViewer) CacheLen() int {
	return len(fv.entries)
}

func (fv *FieldViewer) clampView(row, col int) (int, int) {
	max := fv.grid.Size() - fv.windowSize
	if row < 0 {
		row = 0
	}
	if row > max {
		row = max
	}
	if col < 0 {
		col = 0
	}
	if col > max {
		col = max
	}
	return row, col
}

// SetViewportPosition moves the window's top-left corner to (row, col),
// clamped so the window stays on the map.
func (fv *FieldViewer) SetViewportPosition(row, col int) {
	row, col = fv.clampView(row, col)
	if row == fv.viewRow && col == fv.viewCol {
		return
	}
	fv.viewRow, fv.viewCol = row, col
	fv.refresh(false)
}

func (fv *FieldViewer) MoveViewport(drow, dcol int) {
	fv.SetViewportPosition(fv.viewRow+drow, fv.viewCol+dcol)
}

func (fv *FieldViewer) RotateCW() {
	fv.cam.RotateCW()
	fv.refresh(false)
}

func (fv *FieldViewer) RotateCCW() {
	fv.cam.RotateCCW()
	fv.refresh(false)
}

func (fv *FieldViewer) ZoomIn() {
	fv.cam.ZoomIn()
	fv.refresh(false)
}

func (fv *FieldViewer) ZoomOut() {
	fv.cam.ZoomOut()
	fv.refresh(false)
}

func (fv *FieldViewer) Pan(dx, dy float64) {
	fv.cam.Pan(dx, dy)
	fv.refresh(false)
}

func (fv *FieldViewer) ResetCamera() {
	fv.cam = fv.initialCam
	fv.refresh(false)
}

// ClearCache drops every retained window and reprojects the current one from
// the grid as it stands now.
func (fv *FieldViewer) ClearCache() {
	fv.entries = make(map[cacheKey]*cacheEntry)
	fv.byAge = llrb.New(entryLess)
	fv.refresh(true)
}

// InvalidateRegion drops every cached window that overlaps the given map
// rectangle, bounds inclusive. Call it after editing tiles so stale
// projections cannot be served. If the region touches the current window it
// is reprojected immediately.
func (fv *FieldViewer) InvalidateRegion(rowMin, colMin, rowMax, colMax int) {
	for key, e := range fv.entries {
		if windowOverlaps(key, fv.windowSize, rowMin, colMin, rowMax, colMax) {
			fv.byAge.Delete(e)
			delete(fv.entries, key)
		}
	}
	here := cacheKey{ViewRow: fv.viewRow, ViewCol: fv.viewCol, Cam: fv.cam}
	if windowOverlaps(here, fv.windowSize, rowMin, colMin, rowMax, colMax) {
		fv.refresh(true)
	}
}

func windowOverlaps(key cacheKey, windowSize, rowMin, colMin, rowMax, colMax int) bool {
	return key.ViewRow <= rowMax && key.ViewRow+windowSize-1 >= rowMin &&
		key.ViewCol <= colMax && key.ViewCol+windowSize-1 >= colMin
}

// RegenerateField refills the whole grid at random and resets the cache.
func (fv *FieldViewer) RegenerateField(rng *rand.Rand) {
	fv.grid.RandomFill(rng)
	fv.ClearCache()
}

// StepHeights advances every tile's height and resets the cache.
func (fv *FieldViewer) StepHeights() {
	fv.grid.StepHeights()
	fv.ClearCache()
}

// LoadMap replaces the grid's contents from a map file. On error the grid
// and the cache are untouched.
func (fv *FieldViewer) LoadMap(path string) error {
	if err := LoadGrid(path, fv.grid); err != nil {
		return err
	}
	logging.Info("loaded map", "path", path)
	fv.ClearCache()
	return nil
}

func (fv *FieldViewer) SaveMap(path string) error {
	return SaveGrid(path, fv.grid)
}

// refresh makes fv.current reflect the viewer's position and camera. With
// force set the window is reprojected even if a cached copy exists, and the
// cached copy is overwritten.
func (fv *FieldViewer) refresh(force bool) {
	key := cacheKey{ViewRow: fv.viewRow, ViewCol: fv.viewCol, Cam: fv.cam}
	if !force {
		if e, ok := fv.entries[key]; ok {
			fv.touch(e)
			fv.current = e.tiles
			return
		}
	}

	tiles := fv.project()
	e, ok := fv.entries[key]
	if ok {
		fv.byAge.Delete(e)
		e.tiles = tiles
	} else {
		e = &cacheEntry{key: key, tiles: tiles}
		fv.entries[key] = e
	}
	fv.tick++
	e.lastUsed = fv.tick
	fv.byAge.ReplaceOrInsert(e)
	fv.evict()
	fv.current = tiles
}

// touch re-keys the entry to the newest tick. The tree orders by lastUsed so
// the entry has to come out before the tick changes.
func (fv *FieldViewer) touch(e *cacheEntry) {
	fv.byAge.Delete(e)
	fv.tick++
	e.lastUsed = fv.tick
	fv.byAge.ReplaceOrInsert(e)
}

func (fv *FieldViewer) evict() {
	for len(fv.entries) > cacheCapacity {
		oldest := fv.byAge.DeleteMin().(*cacheEntry)
		delete(fv.entries, oldest.key)
		logging.Trace("evicted cached window", "row", oldest.key.ViewRow, "col", oldest.key.ViewCol)
	}
}

// project transforms every tile in the window and orders them for painting.
func (fv *FieldViewer) project() []TransformedTile {
	tr := perspective.MakeTransform(fv.cam, fv.windowSize)
	tiles := make([]TransformedTile, 0, fv.windowSize*fv.windowSize)
	for wrow := 0; wrow < fv.windowSize; wrow++ {
		for wcol := 0; wcol < fv.windowSize; wcol++ {
			t := fv.grid.At(fv.viewRow+wrow, fv.viewCol+wcol)
			wx, wy := float64(wcol), float64(wrow)
			sx, sy := tr.Project(wx, wy, t.Height)
			tiles = append(tiles, TransformedTile{
				MapRow:    fv.viewRow + wrow,
				MapCol:    fv.viewCol + wcol,
				WindowRow: wrow,
				WindowCol: wcol,
				Tile:      t,
				ScreenX:   sx,
				ScreenY:   sy,
				Depth:     tr.DepthKey(wx, wy, t.Height),
			})
		}
	}
	OrderTiles(tiles)
	return tiles
}
