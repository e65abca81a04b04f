package workout

// RankTier is one level of the long-term progression ladder. Thresholds are
// total workout counts, morning sessions and external workouts alike.
type RankTier struct {
	Title     string
	Threshold int
	Color     string
}

var rankTiers = []RankTier{
	{Title: "Novice", Threshold: 0, Color: "#A0A0A0"},
	{Title: "Apprentice", Threshold: 10, Color: "#4CAF50"},
	{Title: "Warrior", Threshold: 25, Color: "#2196F3"},
	{Title: "Elite", Threshold: 50, Color: "#9C27B0"},
	{Title: "Legend", Threshold: 100, Color: "#FFD700"},
}

// RankStatus describes where a workout total sits on the ladder.
type RankStatus struct {
	Current RankTier
	// Next is the zero RankTier when the top tier has been reached.
	Next RankTier
	// Progress is the percentage towards Next, floored and clamped to 100.
	Progress int
	// Remaining is the number of workouts still needed to reach Next.
	Remaining int
}

// AtTop reports whether there is no further tier to climb to.
func (s RankStatus) AtTop() bool {
	return s.Next.Title == ""
}

// RankFor maps a total workout count to its rank status.
func RankFor(totalWorkouts int) RankStatus {
	current := rankTiers[0]
	var next RankTier
	for i, tier := range rankTiers {
		if totalWorkouts >= tier.Threshold {
			current = tier
			if i+1 < len(rankTiers) {
				next = rankTiers[i+1]
			} else {
				next = RankTier{}
			}
		}
	}
	status := RankStatus{Current: current, Next: next}
	if status.AtTop() {
		status.Progress = 100
		return status
	}
	span := next.Threshold - current.Threshold
	status.Progress = min(100, (totalWorkouts-current.Threshold)*100/span)
	status.Remaining = max(0, next.Threshold-totalWorkouts)
	return status
}
