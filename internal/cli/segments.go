package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tradelens/internal/analysis"
	"tradelens/internal/models"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// addSegmentsCommand adds the segments command: the per-option profit
// breakdown of one filter dimension. The breakdown always runs over
// the full journal, independent of any active filter, so each option
// shows its standalone contribution.
func addSegmentsCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "segments <dimension>",
		Short: "Per-option profit breakdown of one dimension",
		Long: `Break the journal down by one filter dimension and show each option's
total net profit and profit as a percentage of committed capital.

Dimensions: mistakes, strategies, setups, months, weekdays, hours,
symbols, directions.`,
		Example: `  tradelens segments mistakes
  tradelens segments weekdays
  tradelens segments strategies --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized. No trade data available.")
				return nil
			}

			dim := models.Dimension(args[0])
			analyzer, err := app.loadAnalyzer(ctx)
			if err != nil {
				output.Error("Failed to load trades: %v", err)
				return err
			}

			options, labels, err := app.segmentOptions(ctx, analyzer, dim)
			if err != nil {
				return err
			}

			stats := analyzer.Segments(dim, options)

			if output.IsJSON() {
				payload := make([]map[string]interface{}, 0, len(stats))
				for i, st := range stats {
					payload = append(payload, map[string]interface{}{
						"option":         st.OptionID,
						"label":          labels[i],
						"total_profit":   st.TotalProfit,
						"profit_percent": st.ProfitPercent,
					})
				}
				return output.JSON(payload)
			}

			output.Bold("Segment breakdown: %s", string(dim))
			if len(stats) == 0 {
				output.Dim("  No options for this dimension yet.")
				return nil
			}
			table := NewTable(output, "Option", "Total Profit", "Profit %")
			for i, st := range stats {
				table.AddRow(
					TruncateString(labels[i], 30),
					output.FormatPnL(st.TotalProfit),
					output.FormatPercent(st.ProfitPercent),
				)
			}
			table.Render()
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}

// segmentOptions returns the candidate option ids for a dimension plus
// display labels of the same length. String dimensions are discovered
// from the snapshot or the store; the time dimensions enumerate their
// full ranges.
func (app *App) segmentOptions(ctx context.Context, analyzer *analysis.Analyzer, dim models.Dimension) ([]string, []string, error) {
	switch dim {
	case models.DimMistakes:
		opts := analyzer.MistakeOptions()
		return opts, opts, nil
	case models.DimSymbols:
		opts := analyzer.SymbolOptions()
		return opts, opts, nil
	case models.DimStrategies:
		strategies, err := app.Store.GetStrategies(ctx)
		if err != nil {
			return nil, nil, err
		}
		ids := make([]string, len(strategies))
		labels := make([]string, len(strategies))
		for i, s := range strategies {
			ids[i] = s.ID
			labels[i] = s.Name
		}
		return ids, labels, nil
	case models.DimSetups:
		setups, err := app.Store.GetSetups(ctx)
		if err != nil {
			return nil, nil, err
		}
		ids := make([]string, len(setups))
		labels := make([]string, len(setups))
		for i, s := range setups {
			ids[i] = s.ID
			labels[i] = s.Name
		}
		return ids, labels, nil
	case models.DimMonths:
		return indexOptions(12, monthNames)
	case models.DimWeekdays:
		return indexOptions(7, weekdayNames)
	case models.DimHours:
		ids := make([]string, 24)
		labels := make([]string, 24)
		for i := 0; i < 24; i++ {
			ids[i] = strconv.Itoa(i)
			labels[i] = fmt.Sprintf("%02d:00", i)
		}
		return ids, labels, nil
	case models.DimDirections:
		opts := []string{string(models.DirectionBuy), string(models.DirectionSell)}
		return opts, opts, nil
	}
	return nil, nil, fmt.Errorf("unknown dimension %q", string(dim))
}

func indexOptions(n int, names []string) ([]string, []string, error) {
	ids := make([]string, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = strconv.Itoa(i)
		labels[i] = names[i]
	}
	return ids, labels, nil
}
