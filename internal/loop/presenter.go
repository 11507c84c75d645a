package loop

import (
	"math"
	"math/rand"

	"github.com/Hect0r3rd/waterdrop/internal/audio"
	"github.com/Hect0r3rd/waterdrop/internal/game"
)

// termPresenter feeds simulation events into the terminal UI state and the
// speaker.
type termPresenter struct {
	ui    *uiState
	sound *audio.Manager
}

// The frame loop renders live drops straight off the session, so the spawn
// and removal notifications need no bookkeeping here.
func (p *termPresenter) DropSpawned(game.Drop) {}
func (p *termPresenter) DropRemoved(int)       {}

func (p *termPresenter) ScoreChanged(int) {}
func (p *termPresenter) TimeChanged(int)  {}

func (p *termPresenter) ScorePopup(x, y float64, delta int) {
	p.ui.popups = append(p.ui.popups, popupFX{x: x, y: y, delta: delta, ttl: popupSeconds})
	if delta > 0 {
		p.splash(x, y)
	}
}

// splash scatters a handful of short-lived flecks from the catch point.
func (p *termPresenter) splash(x, y float64) {
	for i := 0; i < 8; i++ {
		angle := math.Pi + rand.Float64()*math.Pi // upward half
		speed := 120 + rand.Float64()*160
		p.ui.particles = append(p.ui.particles, particleFX{
			x:   x,
			y:   y,
			vx:  math.Cos(angle+math.Pi/2) * speed,
			vy:  -math.Abs(math.Sin(angle)) * speed,
			ttl: 0.3 + rand.Float64()*0.4,
		})
	}
}

func (p *termPresenter) MilestoneReached(msg string) {
	p.ui.banner = msg
	p.ui.bannerTTL = bannerSeconds
}

func (p *termPresenter) DifficultyChanged(game.Difficulty, game.Profile) {
	// The title screen redraws the preview from the session every frame.
}

func (p *termPresenter) SessionEnded(won bool, score, threshold int, _ game.Difficulty, msg string) {
	p.ui.end = &endInfo{won: won, score: score, threshold: threshold, message: msg}
}

func (p *termPresenter) Sound(kind game.SoundKind) {
	if p.sound == nil {
		return
	}
	switch kind {
	case game.SoundCollect:
		p.sound.PlayCollect()
	case game.SoundMiss:
		p.sound.PlayMiss()
	case game.SoundButton:
		p.sound.PlayButton()
	case game.SoundWin:
		p.sound.PlayWin()
	}
}

var _ game.Presenter = (*termPresenter)(nil)
