package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tatumgames/tatumtech/internal/store"
	"github.com/tatumgames/tatumtech/internal/streak"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current answer streak",
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

		calc := streak.NewCalculator(st.AnswerRepo(), loc)
		current, err := calc.Current(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Current streak: %d day(s)\n", current)
		return nil
	},
}
