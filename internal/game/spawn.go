package game

import "math"

// hazardChance is the probability that the next spawned drop is polluted.
// It grows with the milestone bonus and smoothly over the run's elapsed
// time, capped at maxHazardChance.
func (s *Session) hazardChance() float64 {
	elapsed := 1 - float64(s.timeRemaining)/float64(s.profile.TimeLimit)
	if elapsed < 0 {
		elapsed = 0
	} else if elapsed > 1 {
		elapsed = 1
	}
	p := s.profile.BaseHazardChance + s.milestones.hazardBonus + s.profile.MaxTimeHazardBonus*elapsed
	return math.Min(maxHazardChance, p)
}

// spawnTick runs once per spawn interval while spawning is enabled.
// Skips the tick entirely when the live-drop cap is reached.
func (s *Session) spawnTick() {
	if len(s.drops) >= s.profile.MaxActiveDrops {
		return
	}
	d := s.newDrop()
	s.drops = append(s.drops, d)
	s.presenter.DropSpawned(*d)
}

// newDrop rolls kind, size, position and fall speed for a fresh drop.
func (s *Session) newDrop() *Drop {
	kind := DropClean
	if s.rng.Float64() < s.hazardChance() {
		kind = DropPolluted
	}

	// Size multiplier in [0.5, 1.8) relative to the base drop.
	mult := 0.5 + s.rng.Float64()*1.3
	size := BaseDropSize * mult

	class, points := classify(mult)

	x := s.rng.Float64() * (FieldWidth - size)

	// Bigger drops fall faster.
	dur := math.Max(MinFallSeconds, BaseFallSeconds*BaseDropSize/size)

	s.nextID++
	return &Drop{
		ID:           s.nextID,
		Kind:         kind,
		Class:        class,
		Size:         size,
		X:            x,
		FallDuration: dur,
		Points:       points,
	}
}

// classify buckets a size multiplier into a size class and point value.
func classify(mult float64) (SizeClass, int) {
	switch {
	case mult > 1.3:
		return SizeLarge, 3
	case mult > 0.9:
		return SizeMedium, 2
	default:
		return SizeSmall, 1
	}
}
