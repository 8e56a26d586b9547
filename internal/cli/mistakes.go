package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// addMistakesCommand adds the mistakes command: the distinct mistake
// tags extracted from trade notes, with occurrence counts.
func addMistakesCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "mistakes",
		Short: "List mistake tags found in trade notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized. No trade data available.")
				return nil
			}

			analyzer, err := app.loadAnalyzer(ctx)
			if err != nil {
				output.Error("Failed to load trades: %v", err)
				return err
			}

			counts := make(map[string]int)
			for _, t := range analyzer.Trades() {
				for _, m := range t.Mistakes {
					counts[m]++
				}
			}
			tags := analyzer.MistakeOptions()

			if output.IsJSON() {
				payload := make([]map[string]interface{}, 0, len(tags))
				for _, tag := range tags {
					payload = append(payload, map[string]interface{}{
						"tag":   tag,
						"count": counts[tag],
					})
				}
				return output.JSON(payload)
			}

			if len(tags) == 0 {
				output.Info("No mistake tags recorded yet.")
				return nil
			}

			output.Bold("Mistake tags")
			table := NewTable(output, "Tag", "Count")
			for _, tag := range tags {
				table.AddRow(TruncateString(tag, 40), fmt.Sprintf("%d", counts[tag]))
			}
			table.Render()
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}
