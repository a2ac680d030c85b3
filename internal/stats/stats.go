// Package stats aggregates answer records into the numbers shown by the
// stats command: totals, accuracy, per-track breakdowns, and the current
// streak.
package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/tatumgames/tatumtech/internal/store"
	"github.com/tatumgames/tatumtech/internal/streak"
)

// Track identifies a (language, level) combination.
type Track struct {
	Language string
	Level    string
}

// TrackStats holds per-track aggregates.
type TrackStats struct {
	Answered int
	Correct  int
	Accuracy float64
}

// Summary holds the aggregates across all answer records.
type Summary struct {
	TotalAnswered int
	TotalCorrect  int
	Accuracy      float64
	Streak        int
	ByTrack       map[Track]TrackStats
}

// Tracks returns the summary's tracks sorted by language then level, for
// stable display.
func (s Summary) Tracks() []Track {
	tracks := make([]Track, 0, len(s.ByTrack))
	for tr := range s.ByTrack {
		tracks = append(tracks, tr)
	}
	sort.Slice(tracks, func(i, j int) bool {
		if tracks[i].Language != tracks[j].Language {
			return tracks[i].Language < tracks[j].Language
		}
		return tracks[i].Level < tracks[j].Level
	})
	return tracks
}

// Service computes summaries from the record store.
type Service struct {
	answers store.AnswerRepo
	streaks *streak.Calculator
}

// NewService creates a stats Service.
func NewService(answers store.AnswerRepo, streaks *streak.Calculator) *Service {
	return &Service{answers: answers, streaks: streaks}
}

// Summary loads all answer records and aggregates them.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	records, err := s.answers.All(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load answer records: %w", err)
	}

	summary := Compute(records)
	summary.Streak, err = s.streaks.Current(ctx)
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}

// Compute aggregates a record list. The Streak field is left zero; it is
// filled in by Service.Summary.
func Compute(records []store.AnswerRecord) Summary {
	summary := Summary{ByTrack: make(map[Track]TrackStats)}

	for _, rec := range records {
		summary.TotalAnswered++
		track := Track{Language: rec.Language, Level: rec.Level}
		ts := summary.ByTrack[track]
		ts.Answered++
		if rec.Correct {
			summary.TotalCorrect++
			ts.Correct++
		}
		summary.ByTrack[track] = ts
	}

	if summary.TotalAnswered > 0 {
		summary.Accuracy = float64(summary.TotalCorrect) / float64(summary.TotalAnswered)
	}
	for track, ts := range summary.ByTrack {
		ts.Accuracy = float64(ts.Correct) / float64(ts.Answered)
		summary.ByTrack[track] = ts
	}
	return summary
}
