package workout

// Default targets for a first-ever session, and the floors and step sizes by
// which difficulty moves between sessions.
var (
	defaultTargets = Targets{BarHang: 60, Plank: 60, Pushups: 20}
	minimumTargets = Targets{BarHang: 10, Plank: 10, Pushups: 5}
	stepSizes      = Targets{BarHang: 10, Plank: 10, Pushups: 3}
)

// DefaultTargets returns the targets used when no history exists.
func DefaultTargets() Targets {
	return defaultTargets
}

// NextTargets derives the targets for the upcoming session from the most
// recent record. A nil record means no history and yields the defaults.
// Ratings 1-2 felt easy and raise the target by one step, 3 keeps it, and 4-5
// felt hard and lower it by one step but never below the minimum. Each
// exercise adjusts independently.
func NextTargets(last *Record) Targets {
	if last == nil {
		return defaultTargets
	}
	return Targets{
		BarHang: adjust(last.BarHangTarget, last.BarHangRating, minimumTargets.BarHang, stepSizes.BarHang),
		Plank:   adjust(last.PlankTarget, last.PlankRating, minimumTargets.Plank, stepSizes.Plank),
		Pushups: adjust(last.PushupsTarget, last.PushupsRating, minimumTargets.Pushups, stepSizes.Pushups),
	}
}

func adjust(current, rating, minimum, step int) int {
	switch {
	case rating <= 2:
		return current + step
	case rating >= 4:
		return max(minimum, current-step)
	default:
		return current
	}
}
