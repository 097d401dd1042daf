package game

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/MobRulesGames/gridmadness/field"
	"github.com/MobRulesGames/gridmadness/logging"
)

// tileRef names one tile on the map, used for hover and selection state.
type tileRef struct {
	row, col int
	on       bool
}

// Panel is the ebiten.Game that drives a FieldViewer. Update applies every
// queued command before Draw reads the visible tiles, so a frame never mixes
// stale and fresh projections.
type Panel struct {
	viewer  *field.FieldViewer
	rng     *rand.Rand
	mapPath string
	watcher *field.MapWatcher

	screenDx, screenDy int

	hovered  tileRef
	selected tileRef

	white    *ebiten.Image
	whiteSub *ebiten.Image
}

// MakePanel wires a panel to its viewer. mapPath and watcher may be empty
// when no map file is in play.
func MakePanel(viewer *field.FieldViewer, rng *rand.Rand, mapPath string, watcher *field.MapWatcher, dx, dy int) *Panel {
	return &Panel{
		viewer:   viewer,
		rng:      rng,
		mapPath:  mapPath,
		watcher:  watcher,
		screenDx: dx,
		screenDy: dy,
	}
}

func (p *Panel) Update() error {
	p.pollWatcher()

	for _, cmd := range readCommands() {
		if cmd.op == opQuit {
			return ebiten.Termination
		}
		p.apply(cmd)
	}

	mx, my := ebiten.CursorPosition()
	p.hover(float64(mx), float64(my))
	return nil
}

func (p *Panel) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenDx, p.screenDy
}

func (p *Panel) pollWatcher() {
	if p.watcher == nil {
		return
	}
	select {
	case <-p.watcher.Changed():
		if err := p.viewer.LoadMap(p.mapPath); err != nil {
			logging.Warn("rejected changed map file", "path", p.mapPath, "err", err)
		}
	default:
	}
}

// apply executes one command against the viewer.
func (p *Panel) apply(cmd command) {
	switch cmd.op {
	case opMoveViewport:
		p.viewer.MoveViewport(cmd.drow, cmd.dcol)
	case opPan:
		p.viewer.Pan(cmd.dx, cmd.dy)
	case opRotateCW:
		p.viewer.RotateCW()
	case opRotateCCW:
		p.viewer.RotateCCW()
	case opZoomIn:
		p.viewer.ZoomIn()
	case opZoomOut:
		p.viewer.ZoomOut()
	case opResetCamera:
		p.viewer.ResetCamera()
	case opRecenter:
		center := (p.viewer.Grid().Size() - p.viewer.WindowSize()) / 2
		p.viewer.SetViewportPosition(center, center)
	case opRegenerate:
		p.viewer.RegenerateField(p.rng)
		p.selected.on = false
	case opStepHeights:
		p.viewer.StepHeights()
	case opSaveMap:
		if p.mapPath == "" {
			logging.Warn("no map path to save to")
			return
		}
		if err := p.viewer.SaveMap(p.mapPath); err != nil {
			logging.Error("save failed", "path", p.mapPath, "err", err)
		}
	case opLoadMap:
		if p.mapPath == "" {
			logging.Warn("no map path to load from")
			return
		}
		if err := p.viewer.LoadMap(p.mapPath); err != nil {
			logging.Warn("load failed", "path", p.mapPath, "err", err)
		}
		p.selected.on = false
	case opSelect:
		if row, col, ok := p.viewer.HitTest(cmd.dx, cmd.dy); ok {
			p.selected = tileRef{row: row, col: col, on: true}
		} else {
			p.selected.on = false
		}
	}
}

func (p *Panel) hover(sx, sy float64) {
	if row, col, ok := p.viewer.HitTest(sx, sy); ok {
		p.hovered = tileRef{row: row, col: col, on: true}
	} else {
		p.hovered.on = false
	}
}
