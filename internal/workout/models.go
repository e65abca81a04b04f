package workout

import (
	"time"
)

// Kind tells how an exercise is measured during a session.
type Kind string

const (
	// KindTimer counts elapsed seconds until the user stops or skips.
	KindTimer Kind = "timer"
	// KindCounter asks the user to submit a repetition count.
	KindCounter Kind = "counter"
)

// Exercise describes one slot of the fixed morning routine.
type Exercise struct {
	Key                  string
	Name                 string
	Kind                 Kind
	Unit                 string
	Icon                 string
	InstructionsMarkdown string
}

// Routine returns the fixed three-exercise sequence of a session.
func Routine() [3]Exercise {
	return [3]Exercise{
		{
			Key:  "bar_hang",
			Name: "Bar Hang",
			Kind: KindTimer,
			Unit: "s",
			Icon: "🏋️",
			InstructionsMarkdown: `## Bar Hang

1. Grip the bar slightly wider than shoulder width.
2. Hang with straight arms and relaxed shoulders.
3. Keep breathing and hold until the timer target.

Stop immediately if your grip starts slipping uncontrollably.`,
		},
		{
			Key:  "plank",
			Name: "Plank",
			Kind: KindTimer,
			Unit: "s",
			Icon: "🧘",
			InstructionsMarkdown: `## Plank

1. Forearms on the floor, elbows under shoulders.
2. Form a straight line from head to heels.
3. Brace your core and hold.

Don't let the hips sag below the line.`,
		},
		{
			Key:  "pushups",
			Name: "Push-ups",
			Kind: KindCounter,
			Unit: "reps",
			Icon: "💪",
			InstructionsMarkdown: `## Push-ups

1. Hands slightly wider than shoulders.
2. Lower your chest close to the floor.
3. Push back up with a straight body line.

Count only full-range repetitions.`,
		},
	}
}

// Targets holds the prescribed amounts for one session: seconds for bar hang
// and plank, repetitions for push-ups.
type Targets struct {
	BarHang int
	Plank   int
	Pushups int
}

// Record is one completed session as persisted in the history log. It is
// filled field by field while the session progresses and never mutated after
// it has been appended to the store.
type Record struct {
	Date             time.Time
	BarHangTarget    int
	BarHangCompleted int
	BarHangRating    int
	PlankTarget      int
	PlankCompleted   int
	PlankRating      int
	PushupsTarget    int
	PushupsCompleted int
	PushupsRating    int
	Bonus            int
}

// ExternalRecord is a workout logged from a photo of an external workout
// summary screen, e.g. a rowing machine display. External workouts never feed
// the difficulty adjustment.
type ExternalRecord struct {
	Date            time.Time
	Type            string
	DurationMinutes int
	Calories        int
	Distance        *string
	Points          int
	ImageLink       string
	RawAnalysis     string
}

// CivilDate truncates t to its calendar day as seen in t's location,
// normalized to UTC. Store dates parse in UTC while the clock runs in server
// local time; without one canonical zone the same day would never compare
// equal.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
