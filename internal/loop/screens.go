package loop

import (
	"fmt"

	"github.com/Hect0r3rd/waterdrop/internal/draw"
)

// drawTitleScreen renders the difficulty selector and start prompt.
func drawTitleScreen(ui *uiState, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	title := "W A T E R   D R O P"
	cw.WriteAt(centerX-len(title)/2, centerY-5, title)

	sub := "Catch the clean drops. Dodge the dark ones."
	cw.WriteAt(centerX-len(sub)/2, centerY-3, sub)

	p := ui.session.Profile()
	sel := fmt.Sprintf("Difficulty: %s   (1 Easy / 2 Normal / 3 Hard)", ui.session.Difficulty())
	cw.WriteAt(centerX-len(sel)/2, centerY-1, sel)

	goal := fmt.Sprintf("Goal: %d drops in %d seconds", p.WinThreshold, p.TimeLimit)
	cw.WriteAt(centerX-len(goal)/2, centerY+1, goal)

	prompt := "Press SPACE to start"
	cw.WriteAt(centerX-len(prompt)/2, centerY+4, prompt)

	controls := "A/D or arrows to move, M to mute, Q to quit"
	cw.WriteAt(centerX-len(controls)/2, centerY+6, controls)
}

// drawPlayingOverlay renders the HUD, milestone banner and score popups on
// top of the rendered canvas.
func drawPlayingOverlay(ui *uiState, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	s := ui.session
	termWidth := canvas.TerminalWidth()

	score := fmt.Sprintf(" Score: %d / %d ", s.Score(), s.Profile().WinThreshold)
	cw.WriteAt(2, 1, score)

	clock := fmt.Sprintf(" Time: %ds ", s.TimeRemaining())
	cw.WriteAt(termWidth-len(clock)-1, 1, clock)

	if ui.banner != "" {
		cw.WriteAt(termWidth/2-len(ui.banner)/2, 3, ui.banner)
	}

	for _, p := range ui.popups {
		col, row := canvas.LogicalToTerminal(p.x, p.y)
		text := fmt.Sprintf("+%d", p.delta)
		if p.delta < 0 {
			text = fmt.Sprintf("%d", p.delta)
		}
		cw.WriteAt(col, row, text)
	}
}

// drawEndScreen renders the outcome overlay over the frozen field.
func drawEndScreen(ui *uiState, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	e := ui.end
	if e == nil {
		return
	}

	title := "YOU WIN!"
	if !e.won {
		title = "TIME'S UP"
	}
	cw.WriteAt(centerX-len(title)/2, centerY-3, title)

	cw.WriteAt(centerX-len(e.message)/2, centerY-1, e.message)

	score := fmt.Sprintf("Final score: %d (goal %d)", e.score, e.threshold)
	cw.WriteAt(centerX-len(score)/2, centerY+1, score)

	prompt := "SPACE to play again, 1/2/3 to change difficulty, Q to quit"
	cw.WriteAt(centerX-len(prompt)/2, centerY+3, prompt)
}
