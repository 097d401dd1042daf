package field

import (
	"image/color"

	"github.com/MobRulesGames/gridmadness/base"
)

const (
	MinHeight = 1
	MaxHeight = 15

	MinLevel = 1
	MaxLevel = 3
)

func init() {
	base.RegisterRegistry("floors", make(map[string]*FloorDef))
}

// FloorDef is the immutable data shared by every tile with the same ground
// type. The face colors are RGBA quads so the defs can live in plain json.
type FloorDef struct {
	Name string

	Top   [4]uint8
	Left  [4]uint8
	Right [4]uint8
}

type TileInst struct {
	// Height of the tile's top face above the ground plane, in height units.
	Height int

	// Level is a gameplay tier, independent of Height.
	Level int
}

// Tile is one cell of the grid. As with all registry-backed objects the
// Defname is the persistent reference and the embedded def is looked up from
// it, so maps on disk stay valid when a floor's colors change.
type Tile struct {
	Defname string
	*FloorDef
	TileInst
}

// MakeTile builds a tile of the named floor type. The floor must have been
// registered already.
func MakeTile(floor string, height, level int) Tile {
	t := Tile{
		Defname:  floor,
		TileInst: TileInst{Height: height, Level: level},
	}
	base.GetObject("floors", &t)
	return t
}

func (t *Tile) TopColor() color.RGBA {
	return rgba(t.Top)
}

func (t *Tile) LeftColor() color.RGBA {
	return rgba(t.Left)
}

func (t *Tile) RightColor() color.RGBA {
	return rgba(t.Right)
}

func rgba(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// LoadAllFloorsInDir registers every floor def found under dir.
func LoadAllFloorsInDir(dir string) {
	base.RemoveRegistry("floors")
	base.RegisterRegistry("floors", make(map[string]*FloorDef))
	base.RegisterAllObjectsInDir("floors", dir, ".json")
}

// GetAllFloorNames returns the names of all registered floors, sorted.
func GetAllFloorNames() []string {
	return base.GetAllNamesInRegistry("floors")
}

func FloorExists(name string) bool {
	return base.HasObject("floors", name)
}
