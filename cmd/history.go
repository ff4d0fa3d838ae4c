package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"plucheck/storage"
)

var (
	historyDBPath    string
	historyDeleteRun int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored check runs",
	Long:  `List every run stored in the history database, oldest first.`,
	Example: `
  # List stored runs
  plucheck history

  # List runs from a custom database
  plucheck history --db ./archive.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(historyDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.ListRuns()
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs stored yet.")
			return nil
		}

		for _, run := range runs {
			fmt.Printf("#%d  %s  schema=%s  rows=%d  findings=%d  %s\n",
				run.ID,
				run.CreatedAt.Format("2006-01-02 15:04"),
				run.SchemaName,
				run.RowsLoaded,
				run.Findings,
				run.UploadFile,
			)
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete one stored run and its findings",
	Example: `
  # Delete run 3
  plucheck history delete --run 3
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(historyDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.DeleteRun(historyDeleteRun)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("run #%d not found", historyDeleteRun)
		}
		fmt.Printf("Deleted run #%d\n", historyDeleteRun)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyDeleteCmd)

	historyCmd.PersistentFlags().StringVar(&historyDBPath, "db", "./plucheck.db", "Path to the history database")

	historyDeleteCmd.Flags().Int64Var(&historyDeleteRun, "run", 0, "Run ID to delete")
	_ = historyDeleteCmd.MarkFlagRequired("run")
}
