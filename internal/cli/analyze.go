package cli

import (
	"context"
	"math"
	"time"

	"github.com/spf13/cobra"

	"tradelens/internal/models"
)

// addAnalyzeCommand adds the analyze command: filtered equity curve
// plus performance statistics.
func addAnalyzeCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze filtered trades",
		Long: `Apply filters to the journal and show the daily equity curve and
performance statistics of the matching trades.

With --compare, the curve of all trades is shown alongside the
filtered curve for what-if analysis.`,
		Example: `  tradelens analyze
  tradelens analyze --mistake "chased entry" --weekday 1
  tradelens analyze --strategy breakout --compare`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized. No trade data available.")
				return nil
			}

			criteria, err := criteriaFromFlags(cmd)
			if err != nil {
				return err
			}
			compare, _ := cmd.Flags().GetBool("compare")

			analyzer, err := app.loadAnalyzer(ctx)
			if err != nil {
				output.Error("Failed to load trades: %v", err)
				return err
			}

			metrics := analyzer.Metrics(criteria)

			if output.IsJSON() {
				payload := map[string]interface{}{
					"metrics": metricsJSON(metrics),
				}
				if compare {
					baseline, filtered := analyzer.Compare(criteria)
					payload["series"] = []interface{}{seriesJSON(baseline), seriesJSON(filtered)}
				} else {
					payload["series"] = []interface{}{seriesJSON(analyzer.Equity(criteria))}
				}
				return output.JSON(payload)
			}

			renderMetrics(output, metrics)
			output.Println()

			if compare {
				baseline, filtered := analyzer.Compare(criteria)
				renderSeries(output, baseline)
				output.Println()
				renderSeries(output, filtered)
			} else {
				renderSeries(output, analyzer.Equity(criteria))
			}

			return nil
		},
	}

	addCriteriaFlags(cmd)
	cmd.Flags().Bool("compare", false, "show all-trades curve next to the filtered curve")

	rootCmd.AddCommand(cmd)
}

func renderMetrics(output *Output, m models.PerformanceMetrics) {
	output.Bold("Performance")
	output.Printf("  Trades:       %d\n", m.TradeCount)
	output.Printf("  Total Return: %s\n", output.FormatPnL(m.TotalReturn))
	output.Printf("  Win Rate:     %s\n", FormatPercent(m.WinRate))
	output.Printf("  Sharpe Ratio: %s\n", FormatMetric(m.SharpeRatio))
	output.Printf("  Z-Score:      %s\n", FormatMetric(m.ZScore))
	output.Printf("  Expectancy:   %s\n", FormatMetric(m.Expectancy))
}

func renderSeries(output *Output, s models.Series) {
	output.Bold("Equity curve (%s)", s.Name)
	if len(s.Points) == 0 {
		output.Dim("  No dated trades match.")
		return
	}
	table := NewTable(output, "Date", "Day P&L", "Cumulative")
	for _, p := range s.Points {
		table.AddRow(
			FormatDate(p.Date),
			output.FormatPnL(p.NetProfit),
			output.FormatPnL(p.Cumulative),
		)
	}
	table.Render()
}

func metricsJSON(m models.PerformanceMetrics) map[string]interface{} {
	return map[string]interface{}{
		"trade_count":  m.TradeCount,
		"total_return": m.TotalReturn,
		"win_rate":     jsonNumber(m.WinRate),
		"sharpe_ratio": jsonNumber(m.SharpeRatio),
		"z_score":      jsonNumber(m.ZScore),
		"expectancy":   jsonNumber(m.Expectancy),
	}
}

func seriesJSON(s models.Series) map[string]interface{} {
	points := make([]map[string]interface{}, 0, len(s.Points))
	for _, p := range s.Points {
		points = append(points, map[string]interface{}{
			"date":       p.Date.Format("2006-01-02"),
			"net_profit": p.NetProfit,
			"cumulative": p.Cumulative,
		})
	}
	return map[string]interface{}{"name": s.Name, "points": points}
}

// jsonNumber maps NaN to null so undefined metrics survive JSON
// encoding.
func jsonNumber(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
