package field

import (
	"math/rand"

	"github.com/MobRulesGames/gridmadness/logging"
)

// DefaultGridSize is the edge length of the full map.
const DefaultGridSize = 256

// Grid is the complete square map. Tiles are stored flat in row-major order.
type Grid struct {
	size  int
	tiles []Tile
}

func MakeGrid(size int) *Grid {
	return &Grid{
		size:  size,
		tiles: make([]Tile, size*size),
	}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

func (g *Grid) At(row, col int) Tile {
	if !g.InBounds(row, col) {
		logging.Error("grid read out of bounds", "row", row, "col", col, "size", g.size)
		return Tile{}
	}
	return g.tiles[row*g.size+col]
}

func (g *Grid) Set(row, col int, t Tile) {
	if !g.InBounds(row, col) {
		logging.Error("grid write out of bounds", "row", row, "col", col, "size", g.size)
		return
	}
	g.tiles[row*g.size+col] = t
}

// RandomFill replaces every tile with a uniformly random floor, height and
// level. The floor registry must be populated first.
func (g *Grid) RandomFill(rng *rand.Rand) {
	floors := GetAllFloorNames()
	if len(floors) == 0 {
		logging.Error("cannot fill grid, no floors are registered")
		return
	}
	for i := range g.tiles {
		g.tiles[i] = MakeTile(
			floors[rng.Intn(len(floors))],
			MinHeight+rng.Intn(MaxHeight-MinHeight+1),
			MinLevel+rng.Intn(MaxLevel-MinLevel+1),
		)
	}
}

// StepHeights raises every tile by two height units, wrapping back to the
// minimum once a tile passes the maximum.
func (g *Grid) StepHeights() {
	for i := range g.tiles {
		h := g.tiles[i].Height + 2
		if h > MaxHeight {
			h = MinHeight
		}
		g.tiles[i].Height = h
	}
}

// ReplaceFrom copies other's tiles into g. The sizes must match.
func (g *Grid) ReplaceFrom(other *Grid) {
	if g.size != other.size {
		logging.Error("grid size mismatch", "dst", g.size, "src", other.size)
		return
	}
	copy(g.tiles, other.tiles)
}
