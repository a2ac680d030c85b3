package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tatumgames/tatumtech/internal/questionbank"
	"github.com/tatumgames/tatumtech/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <bank.json>",
	Short: "Import a question-bank asset file",
	Args:  cobra.ExactArgs(1),
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

		importer := questionbank.NewImporter(st.QuestionRepo())
		result, err := importer.ImportFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d question(s), skipped %d already present.\n", result.Imported, result.Skipped)
		return nil
	},
}
