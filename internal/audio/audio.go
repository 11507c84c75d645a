// Package audio synthesizes the game's short sound effects and plays them
// through the system speaker. Playback failures are swallowed: if the audio
// device cannot be opened the manager runs in silent mode and every Play
// call is a safe no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and mixes the effect streamers into it.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewManager creates a manager in silent mode; call Init to open the speaker.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Returns the speaker error for logging, but the
// manager stays usable (silently) either way.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops all playing sounds.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

// ToggleMute flips the mute state and reports whether sound is now on.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	return !m.muted
}

// Muted reports the mute state.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// play queues a finite streamer on the mixer.
func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || m.muted || s == nil {
		return
	}
	m.mixer.Add(s)
}

// PlayCollect plays the bright two-tone ding for a clean catch.
func (m *Manager) PlayCollect() {
	m.play(collectSound())
}

// PlayMiss plays the low buzz for catching a polluted drop.
func (m *Manager) PlayMiss() {
	m.play(missSound())
}

// PlayButton plays the short click for menu actions.
func (m *Manager) PlayButton() {
	m.play(buttonSound())
}

// PlayWin plays the ascending chime for a winning run.
func (m *Manager) PlayWin() {
	m.play(winSound())
}
