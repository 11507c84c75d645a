// Package game implements the drop simulation: session lifecycle, spawn
// policy, catch evaluation and milestone tracking. It is renderer-agnostic;
// front-ends drive it through Advance and the input methods and observe it
// through a Presenter.
package game

// Logical field dimensions. Front-ends scale these to their own coordinate
// space (terminal canvas, browser pixels).
const (
	FieldWidth  = 800.0
	FieldHeight = 600.0

	CatcherWidth = 80.0

	BaseDropSize    = 60.0
	BaseFallSeconds = 2.4
	MinFallSeconds  = 0.8
)

// Difficulty selects one of the built-in profiles.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// String returns the display name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Hard:
		return "Hard"
	default:
		return "Normal"
	}
}

// ParseDifficulty maps a stored/display name back to a Difficulty.
// Unknown names default to Normal.
func ParseDifficulty(name string) Difficulty {
	switch name {
	case "Easy", "easy":
		return Easy
	case "Hard", "hard":
		return Hard
	default:
		return Normal
	}
}

// DropKind distinguishes scoring drops from penalizing ones.
type DropKind int

const (
	DropClean    DropKind = iota // catch for points
	DropPolluted                 // catching costs points
)

// SizeClass buckets a drop by its size multiplier.
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

// Drop is a single falling scoring unit. Size and X are fixed at spawn time
// and stay authoritative for the drop's whole lifetime.
type Drop struct {
	ID           int
	Kind         DropKind
	Class        SizeClass
	Size         float64 // diameter in field units
	X            float64 // left edge
	FallDuration float64 // seconds from top to bottom
	Points       int

	elapsed float64 // seconds fallen so far
}

// Progress reports how far the drop has fallen, in [0, 1].
func (d *Drop) Progress() float64 {
	if d.FallDuration <= 0 {
		return 1
	}
	p := d.elapsed / d.FallDuration
	if p > 1 {
		return 1
	}
	return p
}

// Y returns the drop's current vertical position in field units.
func (d *Drop) Y() float64 {
	return d.Progress() * FieldHeight
}

// CenterX returns the drop's horizontal center.
func (d *Drop) CenterX() float64 {
	return d.X + d.Size/2
}
