package loop

import (
	"github.com/Hect0r3rd/waterdrop/internal/draw"
	"github.com/Hect0r3rd/waterdrop/internal/game"
)

// Can body height in field units. Purely cosmetic; the catch test only uses
// the horizontal extent.
const canHeight = 30.0

// drawField renders the playing field: border, live drops, the can and the
// splash particles.
func drawField(ui *uiState, canvas *draw.Canvas) {
	canvas.RectOutline(1, 1, game.FieldWidth-2, game.FieldHeight-2)

	for _, d := range ui.session.Drops() {
		drawDrop(canvas, d)
	}

	drawCan(canvas, ui.session.CatcherX())

	for _, p := range ui.particles {
		canvas.SetFloat(p.x, p.y)
	}
}

// drawDrop renders one drop: clean drops are filled, polluted ones hollow
// so they read differently in a monochrome terminal.
func drawDrop(canvas *draw.Canvas, d *game.Drop) {
	r := d.Size / 2
	cx := d.CenterX()
	cy := d.Y() - r
	if cy < r {
		cy = r
	}

	if d.Kind == game.DropClean {
		canvas.FillCircle(cx, cy, r)
		return
	}
	canvas.CircleOutline(cx, cy, r)
	// Cross the hollow circle so small polluted drops stay recognizable.
	canvas.DrawLine(draw.Point{X: cx - r*0.6, Y: cy - r*0.6}, draw.Point{X: cx + r*0.6, Y: cy + r*0.6})
	canvas.DrawLine(draw.Point{X: cx - r*0.6, Y: cy + r*0.6}, draw.Point{X: cx + r*0.6, Y: cy - r*0.6})
}

// drawCan renders the water can at the bottom of the field: an open body
// with a little spout on the right.
func drawCan(canvas *draw.Canvas, x float64) {
	top := game.FieldHeight - canHeight - 2

	canvas.FillRect(x, top+canHeight*0.4, game.CatcherWidth, canHeight*0.6)
	// Rim
	canvas.DrawLine(draw.Point{X: x, Y: top}, draw.Point{X: x, Y: top + canHeight*0.4})
	canvas.DrawLine(draw.Point{X: x + game.CatcherWidth, Y: top}, draw.Point{X: x + game.CatcherWidth, Y: top + canHeight*0.4})
	// Spout
	canvas.DrawLine(
		draw.Point{X: x + game.CatcherWidth, Y: top + canHeight*0.5},
		draw.Point{X: x + game.CatcherWidth + 14, Y: top + canHeight*0.2},
	)
}
