package game

// Overlaps reports whether the half-open horizontal intervals
// [aLeft, aRight) and [bLeft, bRight) intersect. Pure so the catch decision
// is testable without a display.
func Overlaps(aLeft, aRight, bLeft, bRight float64) bool {
	return aRight > bLeft && aLeft < bRight
}

// resolveLanding decides hit or miss for a drop whose fall just completed.
// A miss is silent: the drop disappears with no score change.
func (s *Session) resolveLanding(d *Drop) {
	caught := Overlaps(d.X, d.X+d.Size, s.catcherX, s.catcherX+CatcherWidth)
	if !caught {
		return
	}
	s.applyCatch(d)
}

// applyCatch scores a caught drop: clean drops add points, polluted drops
// subtract them, and the score never goes below zero. Fires the popup,
// sound and milestone check for the resolution.
func (s *Session) applyCatch(d *Drop) {
	delta := d.Points
	sound := SoundCollect
	if d.Kind == DropPolluted {
		delta = -delta
		sound = SoundMiss
	}

	s.score += delta
	if s.score < 0 {
		s.score = 0
	}

	s.presenter.ScoreChanged(s.score)
	s.presenter.ScorePopup(d.CenterX(), d.Y(), delta)
	s.presenter.Sound(sound)
	s.checkMilestones()
}
