package game

import (
	"math/rand"
	"testing"
)

func TestHazardChanceMonotoneAndCapped(t *testing.T) {
	for d := Easy; d <= Hard; d++ {
		t.Run(d.String(), func(t *testing.T) {
			s := newTestSession(d, nil)
			s.Start(d)

			prev := -1.0
			for left := s.Profile().TimeLimit; left >= 0; left-- {
				s.timeRemaining = left
				p := s.hazardChance()
				if p < prev {
					t.Fatalf("hazard chance dropped over time: %f -> %f at %ds left", prev, p, left)
				}
				if p > maxHazardChance {
					t.Fatalf("hazard chance %f exceeds cap %f", p, maxHazardChance)
				}
				prev = p
			}
		})
	}
}

func TestHazardChanceCapWithMilestoneBonus(t *testing.T) {
	s := newTestSession(Hard, nil)
	s.Start(Hard)
	s.timeRemaining = 0
	s.milestones.hazardBonus = maxMilestoneBonus

	if p := s.hazardChance(); p != maxHazardChance {
		t.Errorf("fully loaded hazard chance = %f, want the %f cap", p, maxHazardChance)
	}
}

func TestSpawnRespectsActiveCap(t *testing.T) {
	rec := &recorder{}
	s := newTestSession(Normal, rec)
	s.Start(Normal)

	limit := s.Profile().MaxActiveDrops
	for i := 0; i < limit*3; i++ {
		s.spawnTick()
	}

	if len(s.Drops()) != limit {
		t.Errorf("live drops = %d, want cap %d", len(s.Drops()), limit)
	}
	if len(rec.spawned) != limit {
		t.Errorf("spawn events = %d, want %d", len(rec.spawned), limit)
	}
}

func TestNewDropProperties(t *testing.T) {
	s := NewSession(nil, Normal, Options{Rand: rand.New(rand.NewSource(42))})
	s.Start(Normal)

	for i := 0; i < 500; i++ {
		d := s.newDrop()

		mult := d.Size / BaseDropSize
		if mult < 0.5 || mult >= 1.8 {
			t.Fatalf("size multiplier %f outside [0.5, 1.8)", mult)
		}

		wantClass, wantPoints := SizeSmall, 1
		switch {
		case mult > 1.3:
			wantClass, wantPoints = SizeLarge, 3
		case mult > 0.9:
			wantClass, wantPoints = SizeMedium, 2
		}
		if d.Class != wantClass || d.Points != wantPoints {
			t.Fatalf("multiplier %f classified as (%v, %d points), want (%v, %d)",
				mult, d.Class, d.Points, wantClass, wantPoints)
		}

		if d.X < 0 || d.X > FieldWidth-d.Size {
			t.Fatalf("drop x = %f outside [0, %f] for size %f", d.X, FieldWidth-d.Size, d.Size)
		}

		if d.FallDuration < MinFallSeconds {
			t.Fatalf("fall duration %f below floor %f", d.FallDuration, MinFallSeconds)
		}
	}
}

func TestLargerDropsFallFaster(t *testing.T) {
	small := &Drop{Size: BaseDropSize * 0.6}
	large := &Drop{Size: BaseDropSize * 1.7}

	durSmall := BaseFallSeconds * BaseDropSize / small.Size
	durLarge := BaseFallSeconds * BaseDropSize / large.Size
	if durLarge >= durSmall {
		t.Errorf("large drop duration %f not shorter than small drop duration %f", durLarge, durSmall)
	}
}

func TestDropIDsAreUnique(t *testing.T) {
	s := newTestSession(Easy, nil)
	s.Start(Easy)

	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		d := s.newDrop()
		if seen[d.ID] {
			t.Fatalf("duplicate drop ID %d", d.ID)
		}
		seen[d.ID] = true
	}
}
