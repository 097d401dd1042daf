package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/MobRulesGames/gridmadness/base"
	"github.com/MobRulesGames/gridmadness/field"
	"github.com/MobRulesGames/gridmadness/field/perspective"
	"github.com/MobRulesGames/gridmadness/game"
	"github.com/MobRulesGames/gridmadness/logging"
)

const (
	wdx = 640
	wdy = 480
)

var (
	datadir = flag.String("datadir", "data", "directory holding floor defs")
	mapPath = flag.String("map", "", "map file to load, save to, and watch for changes")
	seed    = flag.Int64("seed", 100, "seed used to generate the field")
)

func ensureDirectory(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

func openLogFile(dir string) (*os.File, error) {
	logFileName := filepath.Join(dir, "logs", "gridmadness.log")

	if err := ensureDirectory(logFileName); err != nil {
		return nil, fmt.Errorf("couldn't create dir for %q: %w", logFileName, err)
	}

	f, err := os.Create(logFileName)
	if err != nil {
		return nil, fmt.Errorf("couldn't os.Create %q: %w", logFileName, err)
	}
	return f, nil
}

func onGridmadnessPanic(recoveredValue interface{}) {
	stack := debug.Stack()
	logging.Error("PANIC", "val", recoveredValue, "stack", stack)
	fmt.Printf("PANIC: %v\n", recoveredValue)
	fmt.Printf("PANIC: %s\n", string(stack))
}

func initializeDependencies() func() {
	base.SetDatadir(*datadir)

	logFile, err := openLogFile(base.GetDataDir())
	if err != nil {
		fmt.Printf("warning: couldn't open logfile in %q\nlogging to stderr instead\n", base.GetDataDir())
		logging.Info("setting datadir", "datadir", base.GetDataDir())
		return func() {}
	}

	logging.SetupLogger(logFile)
	logging.Info("setting datadir", "datadir", base.GetDataDir())
	return func() {
		logFile.Close()
	}
}

func main() {
	flag.Parse()

	cleanup := initializeDependencies()
	defer cleanup()

	defer func() {
		if r := recover(); r != nil {
			onGridmadnessPanic(r)
			panic(r)
		}
	}()

	field.LoadAllFloorsInDir(filepath.Join(base.GetDataDir(), "floors"))
	if len(field.GetAllFloorNames()) == 0 {
		panic(fmt.Errorf("no floors found under %q", base.GetDataDir()))
	}

	rng := rand.New(rand.NewSource(*seed))
	grid := field.MakeGrid(field.DefaultGridSize)
	grid.RandomFill(rng)

	cam := perspective.MakeCamera(wdx/2, wdy/2-60)
	viewer := field.MakeFieldViewer(grid, field.DefaultWindowSize, cam)

	var watcher *field.MapWatcher
	if *mapPath != "" {
		if err := viewer.LoadMap(*mapPath); err != nil {
			logging.Warn("starting from a generated field", "path", *mapPath, "err", err)
		}
		var err error
		watcher, err = field.WatchMap(*mapPath)
		if err != nil {
			logging.Warn("map file will not be watched", "path", *mapPath, "err", err)
		} else {
			defer watcher.Close()
		}
	}

	panel := game.MakePanel(viewer, rng, *mapPath, watcher, wdx, wdy)

	ebiten.SetWindowSize(wdx, wdy)
	ebiten.SetWindowTitle("Grid Madness")
	if err := ebiten.RunGame(panel); err != nil {
		panic(fmt.Errorf("game loop failed: %w", err))
	}
}
