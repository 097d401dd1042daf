package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/MobRulesGames/mathgl"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/MobRulesGames/gridmadness/field/perspective"
)

var background = color.RGBA{R: 24, G: 24, B: 32, A: 255}

func (p *Panel) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	cam := p.viewer.Camera()
	tr := perspective.MakeTransform(cam, p.viewer.WindowSize())

	tiles := p.viewer.GetVisibleTiles()
	for i := range tiles {
		tt := &tiles[i]
		faces := tr.TileFaces(float64(tt.WindowCol), float64(tt.WindowRow), tt.Tile.Height)

		topColor := tt.Tile.TopColor()
		if p.selected.on && tt.MapRow == p.selected.row && tt.MapCol == p.selected.col {
			topColor = color.RGBA{R: 255, G: 220, B: 80, A: 255}
		} else if p.hovered.on && tt.MapRow == p.hovered.row && tt.MapCol == p.hovered.col {
			topColor = lighten(topColor)
		}

		p.fillQuad(screen, faces.Left, tt.Tile.LeftColor())
		p.fillQuad(screen, faces.Right, tt.Tile.RightColor())
		p.fillQuad(screen, faces.Top, topColor)
		strokeQuad(screen, faces.Top, color.RGBA{R: 230, G: 230, B: 230, A: 255})
	}

	p.drawCompass(screen, &tr)
	p.drawHud(screen)
}

// fillQuad paints a convex quad. The quad splits into two triangles sharing
// the 0-2 diagonal, colored through a white source pixel the way ebiten's
// shape drawing does it.
func (p *Panel) fillQuad(dst *ebiten.Image, quad mathgl.Poly, clr color.RGBA) {
	if p.whiteSub == nil {
		p.white = ebiten.NewImage(3, 3)
		p.white.Fill(color.White)
		p.whiteSub = p.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255

	vs := make([]ebiten.Vertex, len(quad))
	for i, v := range quad {
		vs[i] = ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, p.whiteSub, &ebiten.DrawTrianglesOptions{})
}

func strokeQuad(dst *ebiten.Image, quad mathgl.Poly, clr color.RGBA) {
	for i := range quad {
		a := quad[i]
		b := quad[(i+1)%len(quad)]
		vector.StrokeLine(dst, a.X, a.Y, b.X, b.Y, 1, clr, false)
	}
}

func lighten(c color.RGBA) color.RGBA {
	bump := func(v uint8) uint8 {
		if v > 205 {
			return 255
		}
		return v + 50
	}
	return color.RGBA{R: bump(c.R), G: bump(c.G), B: bump(c.B), A: c.A}
}

// drawCompass labels the window's four grid corners. The labels are attached
// to the grid, so they swing around the screen as the camera rotates.
func (p *Panel) drawCompass(screen *ebiten.Image, tr *perspective.Transform) {
	edge := float64(p.viewer.WindowSize() - 1)
	corners := []struct {
		wx, wy float64
		label  string
	}{
		{0, 0, "N"},
		{edge, 0, "E"},
		{edge, edge, "S"},
		{0, edge, "W"},
	}
	// Lift the labels clear of the tallest possible tile.
	const labelLift = 18
	for _, c := range corners {
		cx, cy := tr.Center(c.wx, c.wy, labelLift)
		ebitenutil.DebugPrintAt(screen, c.label, int(cx)-3, int(cy)-6)
	}
}

func (p *Panel) drawHud(screen *ebiten.Image) {
	cam := p.viewer.Camera()
	row, col := p.viewer.ViewportPosition()
	hud := fmt.Sprintf("view (%d, %d)  heading %d deg  zoom %.2f",
		row, col, cam.RotationStep*360/perspective.RotationSteps, cam.Zoom)
	ebitenutil.DebugPrintAt(screen, hud, 4, 4)

	if p.hovered.on {
		t := p.viewer.Grid().At(p.hovered.row, p.hovered.col)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("hover (%d, %d) %s h%d l%d",
			p.hovered.row, p.hovered.col, t.Defname, t.Height, t.Level), 4, 18)
	}
	if p.selected.on {
		t := p.viewer.Grid().At(p.selected.row, p.selected.col)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("selected (%d, %d) %s h%d l%d",
			p.selected.row, p.selected.col, t.Defname, t.Height, t.Level), 4, 32)
	}
}
