package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradelens/internal/models"
	"tradelens/internal/store"
)

// addTradeCommands adds trade management commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "trades",
		Short: "Manage journal trades",
		Long:  "List, add, and delete the closed trades in your journal.",
	}

	cmd.AddCommand(newTradesListCmd(app))
	cmd.AddCommand(newTradesAddCmd(app))
	cmd.AddCommand(newTradesDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newTradesListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal trades",
		Example: `  tradelens trades list
  tradelens trades list --symbol EURUSD --direction Sell
  tradelens trades list --from 2026-01-01 --to 2026-06-30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized. No trade data available.")
				return nil
			}

			filter, err := tradeFilterFromFlags(cmd)
			if err != nil {
				return err
			}

			trades, err := app.Store.GetTrades(ctx, filter)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades recorded.")
				output.Dim("Tip: use 'tradelens import <file.csv>' to load a broker export.")
				return nil
			}

			table := NewTable(output, "ID", "Symbol", "Side", "Qty", "Entry", "Exit", "Closed", "P&L", "Strategy")
			for _, t := range trades {
				table.AddRow(
					TruncateString(t.ID, 12),
					t.Symbol,
					string(t.Side),
					fmt.Sprintf("%g", t.Qty),
					fmt.Sprintf("%.2f", t.EntryPrice),
					fmt.Sprintf("%.2f", t.ExitPrice),
					FormatDateTime(t.ClosingTime),
					output.FormatPnL(t.NetProfit),
					TruncateString(t.StrategyID, 15),
				)
			}
			table.Render()
			output.Printf("\n  %d trade(s)\n", len(trades))
			return nil
		},
	}

	cmd.Flags().String("symbol", "", "filter by symbol")
	cmd.Flags().String("direction", "", "filter by direction: Buy or Sell")
	cmd.Flags().String("strategy", "", "filter by strategy id")
	cmd.Flags().String("from", "", "start of closing date range (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "end of closing date range (YYYY-MM-DD)")
	cmd.Flags().Int("limit", 0, "maximum rows")

	return cmd
}

func tradeFilterFromFlags(cmd *cobra.Command) (store.TradeFilter, error) {
	var filter store.TradeFilter

	filter.Symbol, _ = cmd.Flags().GetString("symbol")
	filter.StrategyID, _ = cmd.Flags().GetString("strategy")
	filter.Limit, _ = cmd.Flags().GetInt("limit")

	if d, _ := cmd.Flags().GetString("direction"); d != "" {
		switch models.Direction(d) {
		case models.DirectionBuy, models.DirectionSell:
			filter.Side = models.Direction(d)
		default:
			return filter, fmt.Errorf("invalid direction %q (use Buy or Sell)", d)
		}
	}
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid --from date: %w", err)
		}
		filter.StartDate = t
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return filter, fmt.Errorf("invalid --to date: %w", err)
		}
		filter.EndDate = t.Add(24*time.Hour - time.Second)
	}

	return filter, nil
}

func newTradesAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a closed trade",
		Example: `  tradelens trades add --symbol EURUSD --side Buy --qty 10000 \
    --entry 1.0850 --exit 1.0912 --profit 62.0 \
    --closed "2026-08-21 15:30:00"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}

			symbol, _ := cmd.Flags().GetString("symbol")
			side, _ := cmd.Flags().GetString("side")
			qty, _ := cmd.Flags().GetFloat64("qty")
			entry, _ := cmd.Flags().GetFloat64("entry")
			exit, _ := cmd.Flags().GetFloat64("exit")
			profit, _ := cmd.Flags().GetFloat64("profit")
			strategyID, _ := cmd.Flags().GetString("strategy")
			setupID, _ := cmd.Flags().GetString("setup")
			notes, _ := cmd.Flags().GetString("notes")

			if symbol == "" || qty <= 0 {
				return fmt.Errorf("--symbol and a positive --qty are required")
			}
			direction := models.Direction(side)
			if direction != models.DirectionBuy && direction != models.DirectionSell {
				return fmt.Errorf("invalid --side %q (use Buy or Sell)", side)
			}

			var placed, closed time.Time
			if v, _ := cmd.Flags().GetString("placed"); v != "" {
				t, err := time.ParseInLocation("2006-01-02 15:04:05", v, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --placed: %w", err)
				}
				placed = t
			}
			if v, _ := cmd.Flags().GetString("closed"); v != "" {
				t, err := time.ParseInLocation("2006-01-02 15:04:05", v, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --closed: %w", err)
				}
				closed = t
			}

			trade := models.Trade{
				ID:          fmt.Sprintf("%s-%d", symbol, time.Now().UnixMilli()),
				Symbol:      symbol,
				Side:        direction,
				Qty:         qty,
				EntryPrice:  entry,
				ExitPrice:   exit,
				PlacingTime: placed,
				ClosingTime: closed,
				NetProfit:   profit,
				StrategyID:  strategyID,
				SetupID:     setupID,
				Notes:       notes,
			}

			if err := app.Store.SaveTrade(ctx, &trade); err != nil {
				output.Error("Failed to save trade: %v", err)
				return err
			}

			output.Success("Recorded trade %s (%s %s, P&L %s)", trade.ID, trade.Side, trade.Symbol, FormatCurrency(trade.NetProfit))
			return nil
		},
	}

	cmd.Flags().String("symbol", "", "traded symbol (required)")
	cmd.Flags().String("side", "Buy", "direction: Buy or Sell")
	cmd.Flags().Float64("qty", 0, "quantity (required)")
	cmd.Flags().Float64("entry", 0, "entry price")
	cmd.Flags().Float64("exit", 0, "exit price")
	cmd.Flags().Float64("profit", 0, "realized net profit")
	cmd.Flags().String("placed", "", "placing time (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().String("closed", "", "closing time (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().String("strategy", "", "strategy id")
	cmd.Flags().String("setup", "", "setup id")
	cmd.Flags().String("notes", "", "notes document (JSON) or plain text")

	return cmd
}

func newTradesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}

			if err := app.Store.DeleteTrade(ctx, args[0]); err != nil {
				output.Error("Failed to delete trade: %v", err)
				return err
			}
			output.Success("Deleted trade %s", args[0])
			return nil
		},
	}
}
