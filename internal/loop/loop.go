package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/Hect0r3rd/waterdrop/internal/audio"
	"github.com/Hect0r3rd/waterdrop/internal/config"
	"github.com/Hect0r3rd/waterdrop/internal/draw"
	"github.com/Hect0r3rd/waterdrop/internal/game"
	"github.com/Hect0r3rd/waterdrop/internal/input"
)

const targetFPS = 30
const targetFrameTime = time.Second / targetFPS

// Maximum render resolution; larger terminals get a centered play area
// with a border around it.
const (
	maxTermCols = 140
	maxTermRows = 44
)

// Options configures a terminal game run.
type Options struct {
	// TermSize reports the terminal dimensions each frame. Nil means the
	// local stdout size.
	TermSize draw.TermSizeFunc
	// Audio plays the sound effects. Nil disables sound.
	Audio *audio.Manager
	// Prefs persists the difficulty selection. The zero value disables
	// persistence.
	Prefs config.Prefs
	// Rand seeds the simulation. Nil means time-seeded.
	Rand *rand.Rand
}

// Run starts the game loop, cycling input, simulation advance and draw at a
// fixed rate, and blocks until the player quits or the input stream closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSize
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	ui := newUIState()
	ui.stream = input.StartStream(r)

	presenter := &termPresenter{ui: ui, sound: opts.Audio}

	prefs := opts.Prefs
	startDiff := game.ParseDifficulty(prefs.Difficulty())
	ui.session = game.NewSession(presenter, startDiff, game.Options{
		Rand: opts.Rand,
		SavePreference: func(d game.Difficulty) {
			_ = prefs.SaveDifficulty(d.String())
		},
	})

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewScaledCanvas(termWidth, termHeight, game.FieldWidth, game.FieldHeight)
	cw := draw.NewChunkWriter(w, 0, 0)

	lastTime := time.Now()

	for ui.running {
		frameStart := time.Now()
		ui.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		processInput(ui, opts.Audio)

		if err := fitCanvas(canvas, cw, sizeFunc); err != nil {
			return err
		}

		ui.session.Advance(ui.delta)
		ui.update(ui.delta.Seconds())

		if err := drawFrame(ui, cw, canvas); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// processInput reads pending keys and applies them to the current screen.
func processInput(ui *uiState, snd *audio.Manager) {
	ui.in = input.ReadInput(ui.stream)

	if ui.in.Quit {
		ui.running = false
		return
	}
	if ui.in.Mute && snd != nil {
		snd.ToggleMute()
		input.ResetKeyInput(ui.stream)
	}

	s := ui.session
	switch s.State() {
	case game.StateIdle:
		applyDifficultyKeys(ui)
		if ui.in.Space || ui.in.Enter {
			input.ResetKeyInput(ui.stream)
			ui.end = nil
			s.Start(s.Difficulty())
		}
	case game.StateRunning:
		dt := ui.delta.Seconds()
		if ui.in.Left {
			s.MoveCatcher(-catcherSpeed * dt)
		}
		if ui.in.Right {
			s.MoveCatcher(catcherSpeed * dt)
		}
	case game.StateEnded:
		applyDifficultyKeys(ui)
		if ui.in.Space || ui.in.Enter {
			input.ResetKeyInput(ui.stream)
			ui.end = nil
			s.Reset()
		}
	}
}

// applyDifficultyKeys maps 1/2/3 to the difficulty selector.
func applyDifficultyKeys(ui *uiState) {
	switch ui.in.Number {
	case 1:
		ui.session.SetDifficulty(game.Easy)
	case 2:
		ui.session.SetDifficulty(game.Normal)
	case 3:
		ui.session.SetDifficulty(game.Hard)
	}
}

// fitCanvas tracks terminal resizes, clamps to the max render resolution
// and keeps the play area centered.
func fitCanvas(canvas *draw.Canvas, cw *draw.ChunkWriter, sizeFunc draw.TermSizeFunc) error {
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}

	renderW, renderH := termWidth, termHeight-1 // bottom row reserved for the HUD hint line
	if renderW > maxTermCols {
		renderW = maxTermCols
	}
	if renderH > maxTermRows {
		renderH = maxTermRows
	}
	if renderW < 20 {
		renderW = 20
	}
	if renderH < 10 {
		renderH = 10
	}

	canvas.Resize(renderW, renderH)
	offCol := (termWidth - renderW) / 2
	offRow := (termHeight - renderH) / 2
	if offCol < 0 {
		offCol = 0
	}
	if offRow < 0 {
		offRow = 0
	}
	canvas.SetOffset(offCol, offRow)
	cw.SetOffset(offCol, offRow)
	return nil
}

// drawFrame clears the screen, renders the canvas layer, then the text
// overlay for the current screen.
func drawFrame(ui *uiState, cw *draw.ChunkWriter, canvas *draw.Canvas) error {
	draw.ClearScreen(cw)
	canvas.Clear()

	switch ui.session.State() {
	case game.StateIdle:
		drawTitleScreen(ui, cw, canvas)
	case game.StateRunning:
		drawField(ui, canvas)
		canvas.Render(cw)
		drawPlayingOverlay(ui, cw, canvas)
	case game.StateEnded:
		drawField(ui, canvas)
		canvas.Render(cw)
		drawEndScreen(ui, cw, canvas)
	}

	return cw.Flush()
}
