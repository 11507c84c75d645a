package game

import "time"

// Milestone is a score threshold that fires a one-time banner and permanently
// raises the hazard chance for the rest of the run.
type Milestone struct {
	Score   int
	Message string
}

// Profile holds the per-difficulty tuning. Profiles are immutable; a session
// takes a copy at start.
type Profile struct {
	SpawnInterval      time.Duration
	WinThreshold       int
	TimeLimit          int // seconds
	MaxActiveDrops     int
	BaseHazardChance   float64
	MilestoneBump      float64
	MaxTimeHazardBonus float64
	Milestones         []Milestone
}

// Caps applied on top of profile tuning.
const (
	maxHazardChance   = 0.95
	maxMilestoneBonus = 0.5
)

// How many seconds before the end spawning stops, so the last drops can
// finish falling before the overlay appears.
const spawnCutoffSeconds = 2

var profiles = map[Difficulty]Profile{
	Easy: {
		SpawnInterval:      1000 * time.Millisecond,
		WinThreshold:       12,
		TimeLimit:          60,
		MaxActiveDrops:     5,
		BaseHazardChance:   0.20,
		MilestoneBump:      0.05,
		MaxTimeHazardBonus: 0.15,
		Milestones: []Milestone{
			{Score: 4, Message: "Nice catching! Watch for pollution..."},
			{Score: 8, Message: "Almost there! The water is getting murky!"},
		},
	},
	Normal: {
		SpawnInterval:      800 * time.Millisecond,
		WinThreshold:       20,
		TimeLimit:          45,
		MaxActiveDrops:     6,
		BaseHazardChance:   0.28,
		MilestoneBump:      0.06,
		MaxTimeHazardBonus: 0.20,
		Milestones: []Milestone{
			{Score: 5, Message: "Good start! Keep that can moving!"},
			{Score: 10, Message: "Halfway to the goal! More pollution incoming!"},
			{Score: 20, Message: "Goal reached! Every extra drop counts!"},
		},
	},
	Hard: {
		SpawnInterval:      600 * time.Millisecond,
		WinThreshold:       28,
		TimeLimit:          35,
		MaxActiveDrops:     8,
		BaseHazardChance:   0.34,
		MilestoneBump:      0.07,
		MaxTimeHazardBonus: 0.25,
		Milestones: []Milestone{
			{Score: 7, Message: "Fast hands! It only gets dirtier from here!"},
			{Score: 14, Message: "Halfway! The pollution is thickening!"},
			{Score: 21, Message: "So close! Don't catch the dark ones!"},
		},
	},
}

// ProfileFor returns the tuning for a difficulty.
func ProfileFor(d Difficulty) Profile {
	p, ok := profiles[d]
	if !ok {
		p = profiles[Normal]
	}
	return p
}
