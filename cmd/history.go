package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tatumgames/tatumtech/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recent answer timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
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

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := st.AnswerRepo().Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No answers yet.")
			return nil
		}

		for _, rec := range records {
			mark := "✗"
			if rec.Correct {
				mark = "✓"
			}
			fmt.Printf("%s  %s  %s %s  %s\n",
				rec.Timestamp.Local().Format("2006-01-02 15:04"),
				mark, rec.Language, rec.Level, rec.AnswerText)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of records to show")
}
