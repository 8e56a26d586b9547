package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tradelens/internal/importer"
	"tradelens/internal/logging"
)

// addImportCommand adds the CSV import command.
func addImportCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import trades from a CSV export",
		Long: `Import closed trades from a CSV file into the journal.

Expected columns: id, symbol, side, qty, entry_price, exit_price,
placing_time, closing_time, net_profit, strategy_id, setup_id, notes.
Rows with a missing symbol or non-positive quantity are skipped.`,
		Example: `  tradelens import trades.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}

			result, err := importer.ImportCSV(ctx, app.Store, args[0], app.Logger)
			if err != nil {
				output.Error("Import failed: %v", err)
				return err
			}

			logging.LogImport(app.Logger, args[0], result.Imported, result.Skipped)

			if output.IsJSON() {
				return output.JSON(map[string]int{
					"imported": result.Imported,
					"skipped":  result.Skipped,
				})
			}
			output.Success("Imported %d trade(s), skipped %d row(s)", result.Imported, result.Skipped)
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}
