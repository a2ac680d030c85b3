package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tatumgames/tatumtech/internal/app"
	"github.com/tatumgames/tatumtech/internal/challenge"
	"github.com/tatumgames/tatumtech/internal/questionbank"
	"github.com/tatumgames/tatumtech/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a challenge session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

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

		language, _ := cmd.Flags().GetString("language")
		level, _ := cmd.Flags().GetString("level")

		opts := app.Options{
			Answers:  st.AnswerRepo(),
			Source:   questionbank.NewStoreSource(st.QuestionRepo()),
			Platform: cfg.Challenge.Platform,
			Location: loc,
		}
		return app.Run(ctx, opts, language, level)
	},
}

func init() {
	playCmd.Flags().String("language", "Kotlin", "Question language, e.g. Kotlin or Go")
	playCmd.Flags().String("level", challenge.LevelBeginner, "Beginner, Intermediate, or Advanced")
}
