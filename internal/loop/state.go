// Package loop runs the terminal front-end: a fixed-timestep
// input / advance / draw cycle around the drop simulation.
package loop

import (
	"time"

	"github.com/Hect0r3rd/waterdrop/internal/game"
	"github.com/Hect0r3rd/waterdrop/internal/input"
)

// How fast the can moves, in field units per second of held key.
const catcherSpeed = 700.0

// Transient UI element lifetimes.
const (
	bannerSeconds = 2.5
	popupSeconds  = 1.0
)

// popupFX is a rising +N/-N marker shown after a catch.
type popupFX struct {
	x, y  float64 // field coordinates
	delta int
	ttl   float64
}

// particleFX is a splash fleck spawned on a successful catch.
type particleFX struct {
	x, y   float64
	vx, vy float64
	ttl    float64
}

// endInfo is the frozen outcome shown on the end overlay.
type endInfo struct {
	won       bool
	score     int
	threshold int
	message   string
}

// uiState holds everything the terminal front-end layers on top of the
// simulation: transient banners, popups, splash particles and the latest
// end-of-run outcome.
type uiState struct {
	session *game.Session

	banner    string
	bannerTTL float64

	popups    []popupFX
	particles []particleFX

	end *endInfo

	in      input.Input
	stream  *input.Stream
	running bool
	delta   time.Duration
}

func newUIState() *uiState {
	return &uiState{running: true}
}

// update ages the transient effects by dt seconds.
func (u *uiState) update(dt float64) {
	if u.bannerTTL > 0 {
		u.bannerTTL -= dt
		if u.bannerTTL <= 0 {
			u.banner = ""
		}
	}

	kept := u.popups[:0]
	for _, p := range u.popups {
		p.ttl -= dt
		p.y -= 60 * dt // drift upward
		if p.ttl > 0 {
			kept = append(kept, p)
		}
	}
	u.popups = kept

	keptFX := u.particles[:0]
	for _, p := range u.particles {
		p.ttl -= dt
		p.x += p.vx * dt
		p.y += p.vy * dt
		p.vy += 400 * dt // gravity
		if p.ttl > 0 {
			keptFX = append(keptFX, p)
		}
	}
	u.particles = keptFX
}
