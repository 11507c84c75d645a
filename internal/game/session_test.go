package game

import (
	"math/rand"
	"testing"
	"time"
)

func newTestSession(d Difficulty, p Presenter) *Session {
	return NewSession(p, d, Options{Rand: rand.New(rand.NewSource(1))})
}

func TestStartInitializesProfile(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		threshold  int
		timeLimit  int
	}{
		{Easy, 12, 60},
		{Normal, 20, 45},
		{Hard, 28, 35},
	}

	for _, tc := range cases {
		t.Run(tc.difficulty.String(), func(t *testing.T) {
			s := newTestSession(tc.difficulty, nil)
			s.Start(tc.difficulty)

			if s.State() != StateRunning {
				t.Fatalf("state after Start = %v, want StateRunning", s.State())
			}
			if s.Score() != 0 {
				t.Errorf("score after Start = %d, want 0", s.Score())
			}
			if s.TimeRemaining() != tc.timeLimit {
				t.Errorf("timeRemaining = %d, want %d", s.TimeRemaining(), tc.timeLimit)
			}
			if s.Profile().WinThreshold != tc.threshold {
				t.Errorf("winThreshold = %d, want %d", s.Profile().WinThreshold, tc.threshold)
			}
			wantCenter := (FieldWidth - CatcherWidth) / 2
			if s.CatcherX() != wantCenter {
				t.Errorf("catcherX = %f, want %f", s.CatcherX(), wantCenter)
			}
		})
	}
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	s := newTestSession(Normal, nil)
	s.Start(Normal)
	s.score = 7
	s.Start(Hard)

	if s.Score() != 7 {
		t.Errorf("second Start reset score to %d", s.Score())
	}
	if s.Difficulty() != Normal {
		t.Errorf("second Start changed difficulty to %v", s.Difficulty())
	}
}

func TestMoveCatcherClamps(t *testing.T) {
	s := newTestSession(Normal, nil)
	s.Start(Normal)

	s.MoveCatcher(-10 * FieldWidth)
	if s.CatcherX() != 0 {
		t.Errorf("catcherX after huge left move = %f, want 0", s.CatcherX())
	}

	s.MoveCatcher(10 * FieldWidth)
	if want := FieldWidth - CatcherWidth; s.CatcherX() != want {
		t.Errorf("catcherX after huge right move = %f, want %f", s.CatcherX(), want)
	}
}

func TestMoveCatcherIgnoredWhileIdle(t *testing.T) {
	s := newTestSession(Normal, nil)
	before := s.CatcherX()
	s.MoveCatcher(50)
	if s.CatcherX() != before {
		t.Errorf("idle MoveCatcher moved the catcher: %f -> %f", before, s.CatcherX())
	}
}

func TestCountdownDecrementsAndEnds(t *testing.T) {
	rec := &recorder{}
	s := newTestSession(Hard, rec)
	s.Start(Hard)

	s.Advance(3 * time.Second)
	if s.TimeRemaining() != 32 {
		t.Fatalf("timeRemaining after 3s = %d, want 32", s.TimeRemaining())
	}

	s.Advance(40 * time.Second)
	if s.State() != StateEnded {
		t.Fatalf("state after clock ran out = %v, want StateEnded", s.State())
	}
	if len(rec.ends) != 1 {
		t.Fatalf("got %d end reports, want 1", len(rec.ends))
	}
}

func TestSpawningStopsNearEnd(t *testing.T) {
	s := newTestSession(Normal, nil)
	s.Start(Normal)

	// Walk the clock down to the cutoff one second at a time.
	for s.TimeRemaining() > spawnCutoffSeconds {
		s.countdownTick()
	}
	if s.spawning {
		t.Fatalf("spawning still enabled at %d seconds remaining", s.TimeRemaining())
	}

	before := len(s.Drops())
	s.spawnAccum = s.profile.SpawnInterval
	s.Advance(0)
	if len(s.Drops()) != before {
		t.Errorf("drop spawned after cutoff: %d -> %d live drops", before, len(s.Drops()))
	}
}

func TestEndReportsOutcome(t *testing.T) {
	cases := []struct {
		name  string
		score int
		won   bool
	}{
		{name: "win", score: 25, won: true},
		{name: "lose", score: 15, won: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			s := newTestSession(Normal, rec)
			s.Start(Normal)
			s.score = tc.score
			s.end()

			if len(rec.ends) != 1 {
				t.Fatalf("got %d end reports, want 1", len(rec.ends))
			}
			e := rec.ends[0]
			if e.won != tc.won {
				t.Errorf("won = %v, want %v", e.won, tc.won)
			}
			if e.score != tc.score || e.threshold != 20 {
				t.Errorf("reported score/threshold = %d/%d, want %d/20", e.score, e.threshold, tc.score)
			}

			set := loseMessages
			if tc.won {
				set = winMessages
			}
			ok := false
			for _, m := range set {
				if m == e.message {
					ok = true
					break
				}
			}
			if !ok {
				t.Errorf("end message %q not taken from the %s set", e.message, tc.name)
			}
		})
	}
}

func TestNoMutationAfterEnd(t *testing.T) {
	s := newTestSession(Hard, nil)
	s.Start(Hard)
	s.Advance(time.Duration(s.Profile().TimeLimit+1) * time.Second)
	if s.State() != StateEnded {
		t.Fatalf("setup: session did not end")
	}

	score, left := s.Score(), s.TimeRemaining()

	// A stale tick that was "scheduled" before end must be a no-op.
	s.Advance(5 * time.Second)
	s.MoveCatcher(100)
	s.ActivateDrop(1)

	if s.Score() != score || s.TimeRemaining() != left {
		t.Errorf("state mutated after end: score %d->%d, time %d->%d",
			score, s.Score(), left, s.TimeRemaining())
	}
}

func TestResetDiscardsDropsAndRestarts(t *testing.T) {
	rec := &recorder{}
	s := newTestSession(Easy, rec)
	s.Start(Easy)
	for i := 0; i < 50; i++ {
		s.Advance(100 * time.Millisecond)
	}
	s.score = 9

	live := len(s.Drops())
	if live == 0 {
		t.Fatalf("setup: expected live drops after 5s")
	}

	s.Reset()

	if s.State() != StateRunning {
		t.Fatalf("state after Reset = %v, want StateRunning", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("score after Reset = %d, want 0", s.Score())
	}
	if s.TimeRemaining() != s.Profile().TimeLimit {
		t.Errorf("timeRemaining after Reset = %d, want %d", s.TimeRemaining(), s.Profile().TimeLimit)
	}
	if len(s.Drops()) != 0 {
		t.Errorf("%d live drops survived Reset", len(s.Drops()))
	}
	if len(rec.removed) < live {
		t.Errorf("only %d DropRemoved events for %d discarded drops", len(rec.removed), live)
	}
}

func TestSetDifficultyOnlyBetweenRuns(t *testing.T) {
	rec := &recorder{}
	s := newTestSession(Normal, rec)

	s.SetDifficulty(Hard)
	if s.Difficulty() != Hard {
		t.Fatalf("idle SetDifficulty ignored")
	}
	if len(rec.previews) != 1 || rec.previews[0] != Hard {
		t.Fatalf("expected one difficulty preview for Hard, got %v", rec.previews)
	}

	s.Start(Hard)
	s.SetDifficulty(Easy)
	if s.Difficulty() != Hard {
		t.Errorf("SetDifficulty changed difficulty mid-run")
	}
}

func TestSetDifficultyPersistsPreference(t *testing.T) {
	var saved []Difficulty
	s := NewSession(nil, Normal, Options{
		Rand:           rand.New(rand.NewSource(1)),
		SavePreference: func(d Difficulty) { saved = append(saved, d) },
	})

	s.SetDifficulty(Easy)
	s.SetDifficulty(Easy) // same value, no save
	s.SetDifficulty(Hard)

	if len(saved) != 2 || saved[0] != Easy || saved[1] != Hard {
		t.Errorf("saved preferences = %v, want [Easy Hard]", saved)
	}
}
