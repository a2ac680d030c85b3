package challenge

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tatumgames/tatumtech/internal/questionbank"
	"github.com/tatumgames/tatumtech/internal/store"
)

// Phase is the session engine's state.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota // a question is displayed, waiting for an answer
	PhaseAdvancing                   // answer recorded, waiting for Advance
	PhaseLimitReached                // today's cap is met for this track
	PhaseShowingResults              // all questions answered
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseAdvancing:
		return "advancing"
	case PhaseLimitReached:
		return "limit-reached"
	case PhaseShowingResults:
		return "showing-results"
	}
	return "unknown"
}

// Config holds the collaborators and knobs for a Session.
type Config struct {
	// Answers is the append-only record store. Required.
	Answers store.AnswerRepo

	// Source supplies question lists. Required.
	Source questionbank.Source

	// Platform scopes the daily cap, e.g. "Mobile".
	Platform string

	// Now returns the current time. Nil means time.Now.
	Now func() time.Time

	// Location is the timezone for calendar-day bucketing.
	// Nil means time.Local.
	Location *time.Location
}

// Session drives the user through an ordered question list one question at
// a time, enforcing the per-day answer cap scoped to (language, level,
// platform). A Session is driven by a single caller; its methods must not
// be invoked concurrently.
type Session struct {
	id       string
	answers  store.AnswerRepo
	source   questionbank.Source
	platform string

	language string
	level    string

	questions []questionbank.Question
	index     int
	chosen    map[string]string
	correct   int
	phase     Phase

	now func() time.Time
	loc *time.Location
}

// NewSession creates a Session. Questions must be loaded with LoadQuestions
// before answers can be submitted.
func NewSession(cfg Config) *Session {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &Session{
		id:       uuid.New().String(),
		answers:  cfg.Answers,
		source:   cfg.Source,
		platform: cfg.Platform,
		chosen:   make(map[string]string),
		now:      now,
		loc:      loc,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Phase returns the current engine state.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the 0-based index of the current question.
func (s *Session) Index() int { return s.index }

// QuestionCount returns the number of loaded questions.
func (s *Session) QuestionCount() int { return len(s.questions) }

// CorrectCount returns the number of correct answers so far.
func (s *Session) CorrectCount() int { return s.correct }

// Language returns the loaded language, empty before LoadQuestions.
func (s *Session) Language() string { return s.language }

// Level returns the loaded level, empty before LoadQuestions.
func (s *Session) Level() string { return s.level }

// CurrentQuestion returns the question at the current index, or false when
// no questions are loaded or the session is past the last question.
func (s *Session) CurrentQuestion() (questionbank.Question, bool) {
	if len(s.questions) == 0 || s.index >= len(s.questions) {
		return questionbank.Question{}, false
	}
	return s.questions[s.index], true
}

// ChosenAnswer returns the answer submitted for a question in this session.
func (s *Session) ChosenAnswer(questionID string) (string, bool) {
	answer, ok := s.chosen[questionID]
	return answer, ok
}

// LoadQuestions fetches the ordered question list for the given language and
// level and resets the session to the first question. Returns
// ErrEmptyQuestionSet when the bank has nothing for that combination.
func (s *Session) LoadQuestions(ctx context.Context, language, level string) error {
	questions, err := s.source.LoadQuestions(ctx, language, level)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	if len(questions) == 0 {
		return ErrEmptyQuestionSet
	}

	s.language = language
	s.level = level
	s.questions = questions
	s.index = 0
	s.chosen = make(map[string]string)
	s.correct = 0
	s.phase = PhaseAwaitingAnswer
	return nil
}

// SubmitOutcome reports the result of an accepted answer.
type SubmitOutcome struct {
	Question questionbank.Question
	Correct  bool

	// RemainingToday is the number of answers still allowed today for
	// this track after this submission.
	RemainingToday int
}

// SubmitAnswer records an answer for the current question. Valid only in
// PhaseAwaitingAnswer.
//
// The daily cap is checked first: if today's record count for the session's
// track is already at the cap, the session moves to PhaseLimitReached,
// nothing is written, and ErrDailyLimitReached is returned. A persistence
// failure leaves the session in PhaseAwaitingAnswer with no state change;
// the submission can be retried.
func (s *Session) SubmitAnswer(ctx context.Context, answer string) (SubmitOutcome, error) {
	if len(s.questions) == 0 {
		return SubmitOutcome{}, ErrEmptyQuestionSet
	}
	if s.phase != PhaseAwaitingAnswer {
		return SubmitOutcome{}, ErrNotAwaitingAnswer
	}

	now := s.now()
	count, err := s.answers.CountSince(ctx, s.language, s.level, s.platform, startOfDay(now, s.loc))
	if err != nil {
		return SubmitOutcome{}, fmt.Errorf("check daily cap: %w", err)
	}

	limit := DailyCap(s.level)
	if count >= limit {
		s.phase = PhaseLimitReached
		return SubmitOutcome{}, ErrDailyLimitReached
	}

	q := s.questions[s.index]
	correct := answer == q.Answer

	err = s.answers.Append(ctx, store.AnswerRecordData{
		SessionID:  s.id,
		QuestionID: q.ID,
		Language:   s.language,
		Level:      s.level,
		Platform:   s.platform,
		AnswerText: answer,
		Correct:    correct,
		Timestamp:  now,
	})
	if err != nil {
		// The answer was not durably saved; stay in AwaitingAnswer so
		// the caller can retry.
		return SubmitOutcome{}, fmt.Errorf("record answer: %w", err)
	}

	s.chosen[q.ID] = answer
	if correct {
		s.correct++
	}
	s.phase = PhaseAdvancing

	return SubmitOutcome{
		Question:       q,
		Correct:        correct,
		RemainingToday: limit - count - 1,
	}, nil
}

// Advance moves to the next question, or to PhaseShowingResults after the
// last one. It has no effect in PhaseLimitReached or PhaseShowingResults.
// Returns the resulting phase.
func (s *Session) Advance() Phase {
	switch s.phase {
	case PhaseLimitReached, PhaseShowingResults:
		return s.phase
	}

	if s.index+1 < len(s.questions) {
		s.index++
		s.phase = PhaseAwaitingAnswer
	} else {
		s.phase = PhaseShowingResults
	}
	return s.phase
}

// ResetForNewDay returns the session to the first question with a fresh
// answer map and correct count. Persisted answer records are untouched.
func (s *Session) ResetForNewDay() {
	s.index = 0
	s.chosen = make(map[string]string)
	s.correct = 0
	s.phase = PhaseAwaitingAnswer
}

// CanAnswerMoreToday reports whether another answer may be submitted today
// for the given (language, level, platform) combination. The check is
// independent of the session's loaded track, so callers can probe other
// tracks after hitting a limit.
func (s *Session) CanAnswerMoreToday(ctx context.Context, language, level, platform string) (bool, error) {
	count, err := s.answers.CountSince(ctx, language, level, platform, startOfDay(s.now(), s.loc))
	if err != nil {
		return false, fmt.Errorf("check daily cap: %w", err)
	}
	return count < DailyCap(level), nil
}

// Summary holds the results of a completed session.
type Summary struct {
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
}

// BuildSummary creates a Summary from the session's in-memory state.
func (s *Session) BuildSummary() Summary {
	total := len(s.chosen)
	var accuracy float64
	if total > 0 {
		accuracy = float64(s.correct) / float64(total)
	}
	return Summary{
		TotalQuestions: total,
		TotalCorrect:   s.correct,
		Accuracy:       accuracy,
	}
}

// startOfDay returns midnight of t's calendar day in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
