package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tatumgames/tatumtech/internal/stats"
	"github.com/tatumgames/tatumtech/internal/store"
	"github.com/tatumgames/tatumtech/internal/streak"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show challenge statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		answers := st.AnswerRepo()
		service := stats.NewService(answers, streak.NewCalculator(answers, loc))
		summary, err := service.Summary(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Answered: %d  Correct: %d  Accuracy: %.0f%%  Streak: %d day(s)\n",
			summary.TotalAnswered, summary.TotalCorrect, summary.Accuracy*100, summary.Streak)
		for _, track := range summary.Tracks() {
			ts := summary.ByTrack[track]
			fmt.Printf("  %s %s: %d answered, %d correct (%.0f%%)\n",
				track.Language, track.Level, ts.Answered, ts.Correct, ts.Accuracy*100)
		}
		return nil
	},
}
