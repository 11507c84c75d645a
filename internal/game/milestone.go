package game

import "math"

// milestoneState advances monotonically through the profile's thresholds
// within a run. Reset wholesale at session start.
type milestoneState struct {
	next        int
	hazardBonus float64
}

// checkMilestones fires every threshold the current score has crossed, in
// ascending order. Looping (rather than a single test) means one large score
// jump that clears several thresholds still fires each of them exactly once.
func (s *Session) checkMilestones() {
	ms := s.profile.Milestones
	for s.milestones.next < len(ms) && s.score >= ms[s.milestones.next].Score {
		m := ms[s.milestones.next]
		s.milestones.hazardBonus = math.Min(maxMilestoneBonus, s.milestones.hazardBonus+s.profile.MilestoneBump)
		s.milestones.next++
		s.presenter.MilestoneReached(m.Message)
	}
}
