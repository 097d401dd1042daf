package field_test

import (
	"math/rand"

	"github.com/MobRulesGames/gridmadness/field"
)

func givenLoadedFloors() {
	field.LoadAllFloorsInDir("testdata/floors")
}

func givenAFilledGrid(size int, seed int64) *field.Grid {
	givenLoadedFloors()
	g := field.MakeGrid(size)
	g.RandomFill(rand.New(rand.NewSource(seed)))
	return g
}
