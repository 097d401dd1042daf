package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type op int

const (
	opMoveViewport op = iota
	opPan
	opRotateCW
	opRotateCCW
	opZoomIn
	opZoomOut
	opResetCamera
	opRecenter
	opRegenerate
	opStepHeights
	opSaveMap
	opLoadMap
	opSelect
	opQuit
)

type command struct {
	op         op
	drow, dcol int
	dx, dy     float64
}

// panSpeed is how many screen pixels a held pan key moves per frame.
const panSpeed = 2

// readCommands polls the keyboard and mouse and returns this frame's
// commands. Discrete actions fire on the initial key press; panning repeats
// while its key is held.
func readCommands() []command {
	var cmds []command

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return []command{{op: opQuit}}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		cmds = append(cmds, command{op: opMoveViewport, drow: -1})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		cmds = append(cmds, command{op: opMoveViewport, drow: 1})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		cmds = append(cmds, command{op: opMoveViewport, dcol: -1})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		cmds = append(cmds, command{op: opMoveViewport, dcol: 1})
	}

	if ebiten.IsKeyPressed(ebiten.KeyI) {
		cmds = append(cmds, command{op: opPan, dy: -panSpeed})
	}
	if ebiten.IsKeyPressed(ebiten.KeyK) {
		cmds = append(cmds, command{op: opPan, dy: panSpeed})
	}
	if ebiten.IsKeyPressed(ebiten.KeyJ) {
		cmds = append(cmds, command{op: opPan, dx: -panSpeed})
	}
	if ebiten.IsKeyPressed(ebiten.KeyL) {
		cmds = append(cmds, command{op: opPan, dx: panSpeed})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		cmds = append(cmds, command{op: opRotateCCW})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		cmds = append(cmds, command{op: opRotateCW})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		cmds = append(cmds, command{op: opZoomIn})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		cmds = append(cmds, command{op: opZoomOut})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		cmds = append(cmds, command{op: opResetCamera})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		cmds = append(cmds, command{op: opRecenter})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		cmds = append(cmds, command{op: opRegenerate})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		cmds = append(cmds, command{op: opStepHeights})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		cmds = append(cmds, command{op: opSaveMap})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		cmds = append(cmds, command{op: opLoadMap})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		cmds = append(cmds, command{op: opSelect, dx: float64(mx), dy: float64(my)})
	}

	return cmds
}
