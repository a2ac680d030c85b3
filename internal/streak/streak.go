// Package streak computes the consecutive-day answer streak from the
// append-only answer record log.
package streak

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/tatumgames/tatumtech/internal/store"
)

// Calculator derives the streak from persisted answer records across all
// languages, levels, and platforms.
type Calculator struct {
	answers store.AnswerRepo
	loc     *time.Location
}

// NewCalculator creates a Calculator bucketing days in loc.
// A nil loc means time.Local.
func NewCalculator(answers store.AnswerRepo, loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.Local
	}
	return &Calculator{answers: answers, loc: loc}
}

// Current returns the number of consecutive calendar days with at least one
// answer, ending at the most recent such day. The run is reported as-is
// even when the most recent answer day is in the past; it is not
// re-anchored to today.
func (c *Calculator) Current(ctx context.Context) (int, error) {
	records, err := c.answers.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load answer records: %w", err)
	}

	times := make([]time.Time, 0, len(records))
	for _, rec := range records {
		times = append(times, rec.Timestamp)
	}
	return FromTimes(times, c.loc), nil
}

// FromTimes computes the streak over raw answer timestamps: bucket each
// into its calendar day in loc, de-duplicate, then count backward from the
// most recent day while the days are consecutive.
func FromTimes(times []time.Time, loc *time.Location) int {
	if len(times) == 0 {
		return 0
	}

	seen := make(map[Day]struct{}, len(times))
	for _, t := range times {
		seen[DayOf(t, loc)] = struct{}{}
	}

	days := make([]Day, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	// Most recent first.
	slices.SortFunc(days, func(a, b Day) int {
		switch {
		case b.Before(a):
			return -1
		case a.Before(b):
			return 1
		}
		return 0
	})

	streak := 1
	for i := 1; i < len(days); i++ {
		// A diff of 0 cannot occur after de-duplication.
		if days[i-1].Sub(days[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}
