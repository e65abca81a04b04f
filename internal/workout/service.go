// Package workout implements the guided morning session: the fixed
// three-exercise routine, its difficulty adjustment, the progress metrics
// derived from the history log, and the single-user session state machine.
package workout

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/myrjola/morningapp/internal/errors"
	"github.com/myrjola/morningapp/internal/rewards"
	"golang.org/x/sync/errgroup"
)

// externalBonusPoints is the flat score awarded for a logged external
// workout.
const externalBonusPoints = 50

// HistoryStore persists workout records. Appends are atomic per record and
// reads return records ordered oldest first.
type HistoryStore interface {
	Append(ctx context.Context, record Record) error
	AppendExternal(ctx context.Context, record ExternalRecord) error
	ReadAll(ctx context.Context) ([]Record, error)
	ReadAllExternal(ctx context.Context) ([]ExternalRecord, error)
	ReadLatest(ctx context.Context) (*Record, error)
}

// RewardSource draws the post-session reward.
type RewardSource interface {
	Draw() rewards.Reward
}

// ContentCycler plays motivational content while an exercise timer runs.
type ContentCycler interface {
	// Reset clears the played log at the start of a session.
	Reset()
	// Activate starts cycling, always beginning with a quote.
	Activate()
	// Deactivate stops cycling before the current item finishes.
	Deactivate()
}

// Service drives the single-user workout session. All methods are safe for
// concurrent use; the session itself advances strictly one transition at a
// time.
type Service struct {
	mu      sync.Mutex
	session session

	store        HistoryStore
	rewards      RewardSource
	cycler       ContentCycler
	logger       *slog.Logger
	now          func() time.Time
	tickInterval time.Duration
}

// NewService wires a session service. cycler may be nil when no speech
// output is configured.
func NewService(store HistoryStore, rewardSource RewardSource, cycler ContentCycler, logger *slog.Logger) *Service {
	return &Service{
		session:      session{phase: PhaseWelcome},
		store:        store,
		rewards:      rewardSource,
		cycler:       cycler,
		logger:       logger,
		now:          time.Now,
		tickInterval: time.Second,
	}
}

// Phase returns the current session phase.
func (s *Service) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.phase
}

// WelcomeData is everything the welcome screen shows.
type WelcomeData struct {
	Targets Targets
	Streak  int
	Rank    RankStatus
	Bests   PersonalBests
	Last    *Record
}

// Welcome assembles the welcome screen from the history log. It does not
// change session state.
func (s *Service) Welcome(ctx context.Context) (WelcomeData, error) {
	records, externals, err := s.History(ctx)
	if err != nil {
		return WelcomeData{}, errors.Wrap(err, "read history")
	}
	var last *Record
	if len(records) > 0 {
		last = &records[len(records)-1]
	}
	return WelcomeData{
		Targets: NextTargets(last),
		Streak:  Streak(records, s.now()),
		Rank:    RankFor(len(records) + len(externals)),
		Bests:   Bests(records),
		Last:    last,
	}, nil
}

// History reads the full session and external logs concurrently.
func (s *Service) History(ctx context.Context) ([]Record, []ExternalRecord, error) {
	var (
		records   []Record
		externals []ExternalRecord
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		if records, err = s.store.ReadAll(groupCtx); err != nil {
			return errors.Wrap(err, "read workout log")
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if externals, err = s.store.ReadAllExternal(groupCtx); err != nil {
			return errors.Wrap(err, "read external workout log")
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return records, externals, nil
}

// Begin starts a new guided session from the welcome screen. Targets derive
// from the latest record, ghost targets from the personal bests.
func (s *Service) Begin(ctx context.Context) error {
	latest, err := s.store.ReadLatest(ctx)
	if err != nil {
		return errors.Wrap(err, "read latest record")
	}
	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return errors.Wrap(err, "read workout log")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.phase != PhaseWelcome {
		return ErrInvalidPhase
	}
	s.session = session{
		phase:   PhaseExercise1,
		targets: NextTargets(latest),
		bests:   Bests(records),
		record:  Record{Date: CivilDate(s.now())},
	}
	if s.cycler != nil {
		s.cycler.Reset()
	}
	return nil
}

// ExerciseView is the state of the exercise screen.
type ExerciseView struct {
	Exercise Exercise
	Number   int
	Total    int
	Target   int
	Ghost    int
	Running  bool
	Elapsed  int
	Overtime bool
}

// CurrentExercise describes the exercise on screen. It is only valid during
// an exercise or rating phase.
func (s *Service) CurrentExercise() (ExerciseView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.session.exerciseIndex()
	if !ok {
		return ExerciseView{}, ErrInvalidPhase
	}
	routine := Routine()
	elapsed := 0
	if s.session.timer != nil {
		elapsed = s.session.timer.Elapsed()
	}
	target := s.session.target(i)
	return ExerciseView{
		Exercise: routine[i],
		Number:   i + 1,
		Total:    len(routine),
		Target:   target,
		Ghost:    s.session.ghost(i),
		Running:  s.session.running,
		Elapsed:  elapsed,
		Overtime: routine[i].Kind == KindTimer && elapsed >= target,
	}, nil
}

// StartTimer begins counting a timer exercise. The count runs up past the
// target; passing it only flags overtime, the exercise ends on an explicit
// stop or skip.
func (s *Service) StartTimer() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.session.exerciseIndex()
	if !ok || !s.session.inExercise() || s.session.running {
		return ErrInvalidPhase
	}
	if Routine()[i].Kind != KindTimer {
		return ErrInvalidPhase
	}
	s.session.timer = newTicker(s.tickInterval, nil)
	s.session.running = true
	if s.cycler != nil {
		s.cycler.Activate()
	}
	return nil
}

// StopTimer ends a running timer exercise. The elapsed seconds become the
// completed value whether or not the target was reached, and the session
// moves to the rating screen.
func (s *Service) StopTimer() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.session.exerciseIndex()
	if !ok || !s.session.inExercise() || !s.session.running {
		return ErrInvalidPhase
	}
	s.finishExercise(i, s.session.timer.Stop())
	return nil
}

// Skip abandons the current exercise. A running or paused timer records its
// elapsed seconds, a counter exercise records zero.
func (s *Service) Skip() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.session.exerciseIndex()
	if !ok || !s.session.inExercise() {
		return ErrInvalidPhase
	}
	completed := 0
	if s.session.timer != nil {
		completed = s.session.timer.Stop()
	}
	if Routine()[i].Kind == KindCounter {
		completed = 0
	}
	s.finishExercise(i, completed)
	return nil
}

// SubmitCount records the repetition count of a counter exercise and moves to
// its rating screen.
func (s *Service) SubmitCount(count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.session.exerciseIndex()
	if !ok || !s.session.inExercise() {
		return ErrInvalidPhase
	}
	if Routine()[i].Kind != KindCounter {
		return ErrInvalidPhase
	}
	if count < 0 {
		count = 0
	}
	s.finishExercise(i, count)
	return nil
}

// finishExercise stores the completed value and advances to the rating
// phase. Callers hold s.mu.
func (s *Service) finishExercise(i, completed int) {
	s.session.setCompleted(i, completed)
	s.session.timer = nil
	s.session.running = false
	s.session.phase = ratingPhaseFor(i)
	if s.cycler != nil {
		s.cycler.Deactivate()
	}
}

// SubmitRating records the difficulty rating for the exercise just finished.
// The third rating finalises the session: the reward is drawn, the record is
// appended to the history log and the session completes. If the append
// fails the session stays on the rating screen so the submission can be
// retried without losing the record; the drawn reward is kept so a retry
// cannot re-roll it.
func (s *Service) SubmitRating(ctx context.Context, rating int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.session.exerciseIndex()
	if !ok || !s.session.inRating() {
		return ErrInvalidPhase
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	s.session.setRating(i, rating)
	if s.session.phase != PhaseRating3 {
		s.session.phase = exercisePhaseAfter(i)
		return nil
	}
	return s.finalize(ctx)
}

// finalize draws the reward, applies any bonus points and appends the
// record. Callers hold s.mu.
func (s *Service) finalize(ctx context.Context) error {
	if s.session.reward == nil {
		reward := s.rewards.Draw()
		s.session.reward = &reward
	}
	s.session.record.Bonus = s.session.reward.Points
	if err := s.store.Append(ctx, s.session.record); err != nil {
		return errors.Wrap(err, "append workout record")
	}
	s.session.phase = PhaseComplete
	return nil
}

// CompletionData is everything the completion screen shows.
type CompletionData struct {
	Record Record
	// Reward is nil after an external workout.
	Reward   *rewards.Reward
	External *ExternalRecord
	Streak   int
	Rank     RankStatus
}

// Completion assembles the completion screen. Metrics are recomputed from
// the history log so the just-appended record counts.
func (s *Service) Completion(ctx context.Context) (CompletionData, error) {
	s.mu.Lock()
	if s.session.phase != PhaseComplete {
		s.mu.Unlock()
		return CompletionData{}, ErrInvalidPhase
	}
	data := CompletionData{
		Record:   s.session.record,
		Reward:   s.session.reward,
		External: s.session.external,
	}
	s.mu.Unlock()

	records, externals, err := s.History(ctx)
	if err != nil {
		return CompletionData{}, errors.Wrap(err, "read history")
	}
	data.Streak = Streak(records, s.now())
	data.Rank = RankFor(len(records) + len(externals))
	return data, nil
}

// Acknowledge returns from the completion screen to the welcome screen and
// discards the finished session state.
func (s *Service) Acknowledge() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.phase != PhaseComplete {
		return ErrInvalidPhase
	}
	s.session = session{phase: PhaseWelcome}
	return nil
}

// BeginExternal switches from the welcome screen to external workout
// logging.
func (s *Service) BeginExternal() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.phase != PhaseWelcome {
		return ErrInvalidPhase
	}
	s.session = session{phase: PhaseExternal}
	return nil
}

// CancelExternal abandons external logging and returns to the welcome
// screen.
func (s *Service) CancelExternal() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.phase != PhaseExternal {
		return ErrInvalidPhase
	}
	s.session = session{phase: PhaseWelcome}
	return nil
}

// SetExternalDraft stores analysed photo stats for the user to review and
// edit before anything is saved.
func (s *Service) SetExternalDraft(record ExternalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.phase != PhaseExternal {
		return ErrInvalidPhase
	}
	s.session.externalDraft = &record
	return nil
}

// ExternalDraft returns the pending analysed stats, or nil when no photo has
// been analysed this session.
func (s *Service) ExternalDraft() *ExternalRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.phase != PhaseExternal || s.session.externalDraft == nil {
		return nil
	}
	draft := *s.session.externalDraft
	return &draft
}

// LogExternal appends the confirmed external workout to the log. The stats
// come from the submitted form so the user's edits win over the analysed
// draft; the draft still contributes the archived photo link and the raw
// analysis. The record always earns the flat bonus and the session completes
// without a reward draw.
func (s *Service) LogExternal(ctx context.Context, record ExternalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.phase != PhaseExternal {
		return ErrInvalidPhase
	}
	if draft := s.session.externalDraft; draft != nil {
		if record.ImageLink == "" {
			record.ImageLink = draft.ImageLink
		}
		if record.RawAnalysis == "" {
			record.RawAnalysis = draft.RawAnalysis
		}
	}
	record.Date = CivilDate(s.now())
	record.Points = externalBonusPoints
	if err := s.store.AppendExternal(ctx, record); err != nil {
		return errors.Wrap(err, "append external workout record")
	}
	s.session.external = &record
	s.session.externalDraft = nil
	s.session.record = Record{Date: record.Date, Bonus: record.Points}
	s.session.phase = PhaseComplete
	return nil
}
