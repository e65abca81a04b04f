package workout

import (
	"errors"

	"github.com/myrjola/morningapp/internal/rewards"
)

// Phase is one screen of the guided morning session.
type Phase string

const (
	PhaseWelcome   Phase = "welcome"
	PhaseExercise1 Phase = "exercise_1"
	PhaseRating1   Phase = "rating_1"
	PhaseExercise2 Phase = "exercise_2"
	PhaseRating2   Phase = "rating_2"
	PhaseExercise3 Phase = "exercise_3"
	PhaseRating3   Phase = "rating_3"
	PhaseComplete  Phase = "complete"
	PhaseExternal  Phase = "external"
)

// ErrInvalidPhase is returned when an operation does not apply to the current
// phase, e.g. submitting a rating while an exercise timer is running.
var ErrInvalidPhase = errors.New("operation not valid in current phase")

// ErrInvalidRating is returned for ratings outside 1 to 5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// session is the in-memory state of one ongoing guided workout. It is not
// safe for concurrent use; Service serialises access.
type session struct {
	phase   Phase
	targets Targets
	bests   PersonalBests
	record  Record

	timer   *ticker
	running bool

	// reward survives failed finalisation attempts so retrying the final
	// rating submission cannot re-roll a better reward.
	reward *rewards.Reward

	// external is set instead of reward when the session completed through
	// external workout logging.
	external *ExternalRecord

	// externalDraft holds analysed photo stats awaiting the user's review.
	// Nothing is persisted until the draft is confirmed.
	externalDraft *ExternalRecord
}

// exerciseIndex maps the current phase to a routine slot, 0 to 2.
func (s *session) exerciseIndex() (int, bool) {
	switch s.phase {
	case PhaseExercise1, PhaseRating1:
		return 0, true
	case PhaseExercise2, PhaseRating2:
		return 1, true
	case PhaseExercise3, PhaseRating3:
		return 2, true
	default:
		return 0, false
	}
}

func (s *session) inExercise() bool {
	switch s.phase {
	case PhaseExercise1, PhaseExercise2, PhaseExercise3:
		return true
	default:
		return false
	}
}

func (s *session) inRating() bool {
	switch s.phase {
	case PhaseRating1, PhaseRating2, PhaseRating3:
		return true
	default:
		return false
	}
}

// target returns the prescribed amount for routine slot i.
func (s *session) target(i int) int {
	switch i {
	case 0:
		return s.targets.BarHang
	case 1:
		return s.targets.Plank
	default:
		return s.targets.Pushups
	}
}

// ghost returns the personal best for routine slot i.
func (s *session) ghost(i int) int {
	switch i {
	case 0:
		return s.bests.BarHang
	case 1:
		return s.bests.Plank
	default:
		return s.bests.Pushups
	}
}

// setCompleted stores the achieved value for routine slot i.
func (s *session) setCompleted(i, completed int) {
	switch i {
	case 0:
		s.record.BarHangTarget = s.targets.BarHang
		s.record.BarHangCompleted = completed
	case 1:
		s.record.PlankTarget = s.targets.Plank
		s.record.PlankCompleted = completed
	default:
		s.record.PushupsTarget = s.targets.Pushups
		s.record.PushupsCompleted = completed
	}
}

// setRating stores the difficulty rating for routine slot i.
func (s *session) setRating(i, rating int) {
	switch i {
	case 0:
		s.record.BarHangRating = rating
	case 1:
		s.record.PlankRating = rating
	default:
		s.record.PushupsRating = rating
	}
}

// ratingPhaseFor returns the rating phase following exercise slot i.
func ratingPhaseFor(i int) Phase {
	switch i {
	case 0:
		return PhaseRating1
	case 1:
		return PhaseRating2
	default:
		return PhaseRating3
	}
}

// exercisePhaseAfter returns the phase following rating slot i.
func exercisePhaseAfter(i int) Phase {
	switch i {
	case 0:
		return PhaseExercise2
	case 1:
		return PhaseExercise3
	default:
		return PhaseComplete
	}
}
