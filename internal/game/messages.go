package game

import "math/rand"

var winMessages = []string{
	"You did it! Clean water for everyone!",
	"Amazing! The village celebrates your catch!",
	"Champion catcher! Not a drop wasted!",
	"Incredible run! The well is full!",
}

var loseMessages = []string{
	"So close! Give it another try!",
	"The drops got away this time...",
	"Don't give up! The well still needs you!",
	"Practice makes perfect. One more round?",
}

// endMessage picks one message uniformly from the win or lose set.
func endMessage(rng *rand.Rand, won bool) string {
	set := loseMessages
	if won {
		set = winMessages
	}
	return set[rng.Intn(len(set))]
}
