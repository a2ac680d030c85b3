package challenge

import "errors"

var (
	// ErrDailyLimitReached signals that today's answer cap for the
	// session's (language, level, platform) combination is already met.
	// It is a control signal rather than a failure: the caller shows the
	// limit message, and the user waits for the next calendar day or
	// switches track. No record is written.
	ErrDailyLimitReached = errors.New("daily answer limit reached")

	// ErrEmptyQuestionSet signals that the question bank has no questions
	// for the requested language and level.
	ErrEmptyQuestionSet = errors.New("no questions available")

	// ErrNotAwaitingAnswer signals a SubmitAnswer call in a phase that
	// does not accept answers.
	ErrNotAwaitingAnswer = errors.New("session is not awaiting an answer")
)
