// Package rewards draws the small surprise shown after a finished session.
package rewards

import (
	"math/rand/v2"
)

// Kind is the category of a drawn reward.
type Kind string

const (
	KindQuote Kind = "quote"
	KindGif   Kind = "gif"
	KindBonus Kind = "bonus"
)

// Reward is one drawn reward. Only the fields matching Kind are set; Points
// is zero unless Kind is KindBonus.
type Reward struct {
	Kind   Kind
	Quote  string
	Author string
	GifURL string
	Points int
}

var celebrationQuotes = []struct {
	text   string
	author string
}{
	{"The only bad workout is the one that didn't happen.", "Unknown"},
	{"Strength does not come from winning. Your struggles develop your strengths.", "Arnold Schwarzenegger"},
	{"Take care of your body. It's the only place you have to live.", "Jim Rohn"},
	{"The pain you feel today will be the strength you feel tomorrow.", "Unknown"},
	{"Success is the sum of small efforts repeated day in and day out.", "Robert Collier"},
	{"Motivation is what gets you started. Habit is what keeps you going.", "Jim Ryun"},
	{"You don't have to be extreme, just consistent.", "Unknown"},
	{"A year from now you may wish you had started today.", "Karen Lamb"},
}

var celebrationGifs = []string{
	"https://media.giphy.com/media/g9582DNuQppxC/giphy.gif",
	"https://media.giphy.com/media/111ebonMs90YLu/giphy.gif",
	"https://media.giphy.com/media/LSNqpYqGRqwrS/giphy.gif",
	"https://media.giphy.com/media/l0MYt5jPR6QX5pnqM/giphy.gif",
	"https://media.giphy.com/media/3oz8xAFtqoOUUrsh7W/giphy.gif",
	"https://media.giphy.com/media/xT8qBsOjMOcdeGJIU8/giphy.gif",
}

var bonusAmounts = []int{5, 10}

// Selector draws rewards with a fixed 40/40/20 split between quotes, gifs and
// bonus points.
type Selector struct {
	rng *rand.Rand
}

// NewSelector wires a selector onto the given source of randomness.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Draw picks one reward. Repeated draws are independent.
func (s *Selector) Draw() Reward {
	roll := s.rng.Float64()
	switch {
	case roll < 0.4:
		quote := celebrationQuotes[s.rng.IntN(len(celebrationQuotes))]
		return Reward{Kind: KindQuote, Quote: quote.text, Author: quote.author}
	case roll < 0.8:
		return Reward{Kind: KindGif, GifURL: celebrationGifs[s.rng.IntN(len(celebrationGifs))]}
	default:
		return Reward{Kind: KindBonus, Points: bonusAmounts[s.rng.IntN(len(bonusAmounts))]}
	}
}
