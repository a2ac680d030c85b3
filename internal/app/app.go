// Package app wires the store, question source, and session engine together
// and drives one interactive challenge session over plain line-oriented
// terminal I/O.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tatumgames/tatumtech/internal/challenge"
	"github.com/tatumgames/tatumtech/internal/questionbank"
	"github.com/tatumgames/tatumtech/internal/store"
)

// Options holds the collaborators for a session run.
type Options struct {
	Answers  store.AnswerRepo
	Source   questionbank.Source
	Platform string
	Location *time.Location

	// In and Out default to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer
}

// Run drives one challenge session for the given language and level until
// the question list is exhausted, the daily limit is hit, or input ends.
func Run(ctx context.Context, opts Options, language, level string) error {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	session := challenge.NewSession(challenge.Config{
		Answers:  opts.Answers,
		Source:   opts.Source,
		Platform: opts.Platform,
		Location: opts.Location,
	})

	err := session.LoadQuestions(ctx, language, level)
	if errors.Is(err, challenge.ErrEmptyQuestionSet) {
		fmt.Fprintf(out, "No questions available for %s %s. Import a question bank first.\n", language, level)
		return nil
	}
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for session.Phase() == challenge.PhaseAwaitingAnswer {
		q, ok := session.CurrentQuestion()
		if !ok {
			break
		}

		fmt.Fprintf(out, "\nQuestion %d of %d\n%s\n", session.Index()+1, session.QuestionCount(), q.Prompt)
		for i, choice := range q.Choices {
			fmt.Fprintf(out, "  %d) %s\n", i+1, choice)
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			// Input ended; abandon the session. Records already
			// written remain valid.
			fmt.Fprintln(out)
			return scanner.Err()
		}
		answer := resolveChoice(strings.TrimSpace(scanner.Text()), q.Choices)

		outcome, err := session.SubmitAnswer(ctx, answer)
		if errors.Is(err, challenge.ErrDailyLimitReached) {
			fmt.Fprintf(out, "\nDaily limit reached for %s %s. Come back tomorrow or switch track.\n", language, level)
			return nil
		}
		if err != nil {
			return fmt.Errorf("submit answer: %w", err)
		}

		if outcome.Correct {
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Incorrect. The answer is: %s\n", outcome.Question.Answer)
		}
		if outcome.Question.Explanation != "" {
			fmt.Fprintln(out, outcome.Question.Explanation)
		}
		fmt.Fprintf(out, "Answers left today: %d\n", outcome.RemainingToday)

		session.Advance()
	}

	if session.Phase() == challenge.PhaseShowingResults {
		summary := session.BuildSummary()
		fmt.Fprintf(out, "\nSession complete: %d/%d correct (%.0f%%)\n",
			summary.TotalCorrect, summary.TotalQuestions, summary.Accuracy*100)
	}
	return nil
}

// resolveChoice maps a 1-based option number to its choice text. Any other
// input is treated as the answer text itself.
func resolveChoice(input string, choices []string) string {
	n, err := strconv.Atoi(input)
	if err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1]
	}
	return input
}
