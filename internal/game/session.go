package game

import (
	"math/rand"
	"time"
)

// State is the session lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateEnded
)

// Options tunes session construction. The zero value is usable.
type Options struct {
	// Rand supplies the randomness for spawning and message selection.
	// Nil means a time-seeded source.
	Rand *rand.Rand
	// SavePreference, if set, is called whenever the selected difficulty
	// changes so the choice survives restarts. Errors are the hook's problem.
	SavePreference func(Difficulty)
}

// Session owns one player's run: score, clock, catcher, live drops and
// milestone state. It is not safe for concurrent use; a single goroutine
// must drive Advance and the input methods.
type Session struct {
	state      State
	difficulty Difficulty
	profile    Profile

	score         int
	timeRemaining int
	catcherX      float64

	drops  []*Drop
	nextID int

	milestones milestoneState

	// Tick accumulators. Disarmed (state != StateRunning) ticks are no-ops,
	// so a stale Advance after end cannot mutate anything.
	spawnAccum     time.Duration
	countdownAccum time.Duration
	spawning       bool

	rng       *rand.Rand
	presenter Presenter
	savePref  func(Difficulty)
}

// NewSession creates an idle session with the given difficulty selected.
func NewSession(p Presenter, d Difficulty, opts Options) *Session {
	if p == nil {
		p = NopPresenter{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		state:      StateIdle,
		difficulty: d,
		profile:    ProfileFor(d),
		rng:        rng,
		presenter:  p,
		savePref:   opts.SavePreference,
	}
}

// State returns the lifecycle phase.
func (s *Session) State() State { return s.state }

// Difficulty returns the currently selected difficulty.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Profile returns the tuning of the selected difficulty.
func (s *Session) Profile() Profile { return s.profile }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// TimeRemaining returns the seconds left in the run.
func (s *Session) TimeRemaining() int { return s.timeRemaining }

// CatcherX returns the catcher's left edge.
func (s *Session) CatcherX() float64 { return s.catcherX }

// Drops returns the live drop set. The slice is owned by the session and
// only valid until the next Advance.
func (s *Session) Drops() []*Drop { return s.drops }

// Start begins a run. It is a no-op unless the session is idle.
func (s *Session) Start(d Difficulty) {
	if s.state != StateIdle {
		return
	}
	s.difficulty = d
	s.profile = ProfileFor(d)
	s.score = 0
	s.timeRemaining = s.profile.TimeLimit
	s.catcherX = (FieldWidth - CatcherWidth) / 2
	s.milestones = milestoneState{}
	s.drops = s.drops[:0]
	s.spawnAccum = 0
	s.countdownAccum = 0
	s.spawning = true
	s.state = StateRunning

	s.presenter.Sound(SoundButton)
	s.presenter.ScoreChanged(s.score)
	s.presenter.TimeChanged(s.timeRemaining)
}

// Advance drives the simulation by dt. It fires any spawn and countdown
// ticks that have come due and moves every live drop; drops that finish
// falling get landing resolution. Outside of a run this does nothing.
func (s *Session) Advance(dt time.Duration) {
	if s.state != StateRunning {
		return
	}

	s.countdownAccum += dt
	s.spawnAccum += dt

	for s.state == StateRunning && s.countdownAccum >= time.Second {
		s.countdownAccum -= time.Second
		s.countdownTick()
	}
	for s.state == StateRunning && s.spawning && s.spawnAccum >= s.profile.SpawnInterval {
		s.spawnAccum -= s.profile.SpawnInterval
		s.spawnTick()
	}
	if s.state == StateRunning {
		s.advanceDrops(dt.Seconds())
	}
}

// countdownTick runs once per simulated second.
func (s *Session) countdownTick() {
	s.timeRemaining--
	s.presenter.TimeChanged(s.timeRemaining)

	if s.timeRemaining == spawnCutoffSeconds {
		s.spawning = false
	}
	if s.timeRemaining <= 0 {
		s.end()
	}
}

// advanceDrops moves live drops and resolves any that reach the bottom.
func (s *Session) advanceDrops(dt float64) {
	kept := s.drops[:0]
	for _, d := range s.drops {
		d.elapsed += dt
		if d.elapsed >= d.FallDuration {
			s.resolveLanding(d)
			s.presenter.DropRemoved(d.ID)
			continue
		}
		kept = append(kept, d)
	}
	s.drops = kept
}

// ActivateDrop resolves a drop the player hit directly (a click or tap on
// the drop itself). Always counts as a catch. No-op outside a run or for an
// already-resolved drop.
func (s *Session) ActivateDrop(id int) {
	if s.state != StateRunning {
		return
	}
	kept := s.drops[:0]
	var found *Drop
	for _, d := range s.drops {
		if d.ID == id && found == nil {
			found = d
			continue
		}
		kept = append(kept, d)
	}
	s.drops = kept
	if found == nil {
		return
	}
	s.applyCatch(found)
	s.presenter.DropRemoved(found.ID)
}

// MoveCatcher shifts the catcher by delta field units, clamped to the field.
func (s *Session) MoveCatcher(delta float64) {
	s.SetCatcher(s.catcherX + delta)
}

// SetCatcher places the catcher's left edge at x, clamped to the field.
// No-op unless a run is active.
func (s *Session) SetCatcher(x float64) {
	if s.state != StateRunning {
		return
	}
	max := FieldWidth - CatcherWidth
	if x < 0 {
		x = 0
	} else if x > max {
		x = max
	}
	s.catcherX = x
}

// SetDifficulty changes the selected difficulty between runs and previews
// the new goal and time limit. Ignored while a run is active.
func (s *Session) SetDifficulty(d Difficulty) {
	if s.state == StateRunning {
		return
	}
	if d == s.difficulty {
		return
	}
	s.difficulty = d
	s.profile = ProfileFor(d)
	s.presenter.Sound(SoundButton)
	s.presenter.DifficultyChanged(d, s.profile)
	if s.savePref != nil {
		s.savePref(d)
	}
}

// Reset abandons the current run (live drops included) and immediately
// starts a fresh one with the selected difficulty.
func (s *Session) Reset() {
	for _, d := range s.drops {
		s.presenter.DropRemoved(d.ID)
	}
	s.drops = s.drops[:0]
	s.state = StateIdle
	s.Start(s.difficulty)
}

// end finishes the run: disarms both tick processes, discards leftover
// drops and reports the outcome.
func (s *Session) end() {
	s.state = StateEnded
	s.spawning = false

	for _, d := range s.drops {
		s.presenter.DropRemoved(d.ID)
	}
	s.drops = s.drops[:0]

	won := s.score >= s.profile.WinThreshold
	msg := endMessage(s.rng, won)
	if won {
		s.presenter.Sound(SoundWin)
	}
	s.presenter.SessionEnded(won, s.score, s.profile.WinThreshold, s.difficulty, msg)
}
