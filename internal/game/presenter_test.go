package game

// recorder is a Presenter that remembers every event for assertions.
type recorder struct {
	spawned    []Drop
	removed    []int
	scores     []int
	times      []int
	popups     []popup
	milestones []string
	previews   []Difficulty
	ends       []ending
	sounds     []SoundKind
}

type popup struct {
	x, y  float64
	delta int
}

type ending struct {
	won        bool
	score      int
	threshold  int
	difficulty Difficulty
	message    string
}

func (r *recorder) DropSpawned(d Drop)     { r.spawned = append(r.spawned, d) }
func (r *recorder) DropRemoved(id int)     { r.removed = append(r.removed, id) }
func (r *recorder) ScoreChanged(score int) { r.scores = append(r.scores, score) }
func (r *recorder) TimeChanged(left int)   { r.times = append(r.times, left) }

func (r *recorder) ScorePopup(x, y float64, delta int) {
	r.popups = append(r.popups, popup{x: x, y: y, delta: delta})
}

func (r *recorder) MilestoneReached(msg string) { r.milestones = append(r.milestones, msg) }

func (r *recorder) DifficultyChanged(d Difficulty, _ Profile) {
	r.previews = append(r.previews, d)
}

func (r *recorder) SessionEnded(won bool, score, threshold int, d Difficulty, msg string) {
	r.ends = append(r.ends, ending{won: won, score: score, threshold: threshold, difficulty: d, message: msg})
}

func (r *recorder) Sound(kind SoundKind) { r.sounds = append(r.sounds, kind) }
