package game

// SoundKind identifies one of the synthesized sound effects.
type SoundKind int

const (
	SoundCollect SoundKind = iota
	SoundMiss
	SoundButton
	SoundWin
)

// Presenter is the outbound boundary of the simulation. The session calls it
// synchronously from whatever goroutine drives Advance; implementations must
// not call back into the session. All calls are fire-and-forget: a presenter
// failure must never affect session state, so none of these return errors.
type Presenter interface {
	// DropSpawned announces a new drop to render and animate.
	DropSpawned(d Drop)
	// DropRemoved announces that a drop was resolved or discarded.
	DropRemoved(id int)

	ScoreChanged(score int)
	TimeChanged(secondsLeft int)

	// ScorePopup requests a transient +N/-N marker at a field position.
	ScorePopup(x, y float64, delta int)
	// MilestoneReached requests a transient banner.
	MilestoneReached(message string)

	// DifficultyChanged previews the goal and time limit for a newly selected
	// difficulty while no run is active.
	DifficultyChanged(d Difficulty, p Profile)

	// SessionEnded reports the outcome of a finished run.
	SessionEnded(won bool, score, threshold int, d Difficulty, message string)

	Sound(kind SoundKind)
}

// NopPresenter discards every event. Useful for tests and headless runs.
type NopPresenter struct{}

func (NopPresenter) DropSpawned(Drop)                                {}
func (NopPresenter) DropRemoved(int)                                 {}
func (NopPresenter) ScoreChanged(int)                                {}
func (NopPresenter) TimeChanged(int)                                 {}
func (NopPresenter) ScorePopup(float64, float64, int)                {}
func (NopPresenter) MilestoneReached(string)                         {}
func (NopPresenter) DifficultyChanged(Difficulty, Profile)           {}
func (NopPresenter) SessionEnded(bool, int, int, Difficulty, string) {}
func (NopPresenter) Sound(SoundKind)                                 {}

var _ Presenter = NopPresenter{}
