package field

import (
	"fmt"
	"os"

	"github.com/MobRulesGames/gridmadness/base"
)

// MapFormatError reports a map file that could not be used. The grid a load
// was aimed at is left exactly as it was.
type MapFormatError struct {
	Path   string
	Reason string
}

func (e *MapFormatError) Error() string {
	return fmt.Sprintf("malformed map file %q: %s", e.Path, e.Reason)
}

type mapFileTile struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Floor  string `json:"floor"`
	Height int    `json:"height"`
	Level  int    `json:"level"`
}

type mapFile struct {
	Size  int           `json:"size"`
	Tiles []mapFileTile `json:"tiles"`
}

// LoadGrid reads the map file at path into g. Every tile is validated before
// anything is committed, so a bad file never leaves g partially overwritten.
func LoadGrid(path string, g *Grid) error {
	var mf mapFile
	if err := base.LoadJson(path, &mf); err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return &MapFormatError{Path: path, Reason: err.Error()}
	}

	if mf.Size != g.Size() {
		return &MapFormatError{
			Path:   path,
			Reason: fmt.Sprintf("declares size %d but this field is %d", mf.Size, g.Size()),
		}
	}
	if len(mf.Tiles) != mf.Size*mf.Size {
		return &MapFormatError{
			Path:   path,
			Reason: fmt.Sprintf("has %d tiles, want %d", len(mf.Tiles), mf.Size*mf.Size),
		}
	}

	scratch := MakeGrid(mf.Size)
	seen := make([]bool, mf.Size*mf.Size)
	for _, mt := range mf.Tiles {
		if !scratch.InBounds(mt.Row, mt.Col) {
			return &MapFormatError{
				Path:   path,
				Reason: fmt.Sprintf("tile coordinate (%d, %d) is out of bounds", mt.Row, mt.Col),
			}
		}
		idx := mt.Row*mf.Size + mt.Col
		if seen[idx] {
			return &MapFormatError{
				Path:   path,
				Reason: fmt.Sprintf("duplicate tile at (%d, %d)", mt.Row, mt.Col),
			}
		}
		seen[idx] = true
		if !FloorExists(mt.Floor) {
			return &MapFormatError{
				Path:   path,
				Reason: fmt.Sprintf("tile (%d, %d) references unknown floor %q", mt.Row, mt.Col, mt.Floor),
			}
		}
		if mt.Height < MinHeight || mt.Height > MaxHeight {
			return &MapFormatError{
				Path:   path,
				Reason: fmt.Sprintf("tile (%d, %d) has height %d outside [%d, %d]", mt.Row, mt.Col, mt.Height, MinHeight, MaxHeight),
			}
		}
		if mt.Level < MinLevel || mt.Level > MaxLevel {
			return &MapFormatError{
				Path:   path,
				Reason: fmt.Sprintf("tile (%d, %d) has level %d outside [%d, %d]", mt.Row, mt.Col, mt.Level, MinLevel, MaxLevel),
			}
		}
		scratch.Set(mt.Row, mt.Col, MakeTile(mt.Floor, mt.Height, mt.Level))
	}

	g.ReplaceFrom(scratch)
	return nil
}

// SaveGrid writes g to path in the same format LoadGrid reads.
func SaveGrid(path string, g *Grid) error {
	mf := mapFile{
		Size:  g.Size(),
		Tiles: make([]mapFileTile, 0, g.Size()*g.Size()),
	}
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			t := g.At(row, col)
			mf.Tiles = append(mf.Tiles, mapFileTile{
				Row:    row,
				Col:    col,
				Floor:  t.Defname,
				Height: t.Height,
				Level:  t.Level,
			})
		}
	}
	return base.SaveJson(path, mf)
}
