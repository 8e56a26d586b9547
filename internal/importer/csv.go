// Package importer loads trade records from CSV exports into the
// journal store.
package importer

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"tradelens/internal/errors"
	"tradelens/internal/models"
	"tradelens/internal/store"
)

// csvTime parses the timestamp formats commonly found in broker
// exports. An unparseable value decodes to the zero time; such trades
// are kept but excluded from time-based analytics downstream.
type csvTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-2006 15:04",
}

func (ct *csvTime) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			ct.Time = t
			return nil
		}
	}
	// Tolerated: the trade still participates in non-time analytics.
	return nil
}

// csvTrade is one row of a trade export.
type csvTrade struct {
	ID          string  `csv:"id"`
	Symbol      string  `csv:"symbol"`
	Side        string  `csv:"side"`
	Qty         float64 `csv:"qty"`
	EntryPrice  float64 `csv:"entry_price"`
	ExitPrice   float64 `csv:"exit_price"`
	PlacingTime csvTime `csv:"placing_time"`
	ClosingTime csvTime `csv:"closing_time"`
	NetProfit   float64 `csv:"net_profit"`
	StrategyID  string  `csv:"strategy_id"`
	SetupID     string  `csv:"setup_id"`
	Notes       string  `csv:"notes"`
}

// Result summarizes one import run.
type Result struct {
	Imported int
	Skipped  int
}

// ImportCSV reads a trade CSV and saves the rows into the store. Rows
// without a symbol or with a quantity <= 0 are skipped and counted,
// not fatal. Returns the summary and the first fatal error (open,
// parse, or storage failure).
func ImportCSV(ctx context.Context, dataStore store.DataStore, path string, logger zerolog.Logger) (Result, error) {
	var result Result

	f, err := os.Open(path)
	if err != nil {
		return result, errors.Wrapf(errors.ErrImportFailed, "opening %s: %v", path, err)
	}
	defer f.Close()

	var rows []*csvTrade
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return result, errors.Wrapf(errors.ErrImportFailed, "parsing %s: %v", path, err)
	}

	trades := make([]models.Trade, 0, len(rows))
	for i, row := range rows {
		trade, ok := rowToTrade(row, i)
		if !ok {
			result.Skipped++
			logger.Warn().Int("row", i+1).Str("symbol", row.Symbol).Msg("Skipping invalid trade row")
			continue
		}
		trades = append(trades, trade)
	}

	if err := dataStore.SaveTrades(ctx, trades); err != nil {
		return result, errors.Wrap(err, "saving imported trades")
	}
	result.Imported = len(trades)

	return result, nil
}

func rowToTrade(row *csvTrade, index int) (models.Trade, bool) {
	if strings.TrimSpace(row.Symbol) == "" || row.Qty <= 0 {
		return models.Trade{}, false
	}

	side := models.DirectionBuy
	if strings.EqualFold(row.Side, "sell") {
		side = models.DirectionSell
	}

	id := strings.TrimSpace(row.ID)
	if id == "" {
		id = fmt.Sprintf("%s-%d-%d", row.Symbol, row.ClosingTime.UnixMilli(), index)
	}

	return models.Trade{
		ID:          id,
		Symbol:      strings.ToUpper(strings.TrimSpace(row.Symbol)),
		Side:        side,
		Qty:         row.Qty,
		EntryPrice:  row.EntryPrice,
		ExitPrice:   row.ExitPrice,
		PlacingTime: row.PlacingTime.Time,
		ClosingTime: row.ClosingTime.Time,
		NetProfit:   row.NetProfit,
		StrategyID:  strings.TrimSpace(row.StrategyID),
		SetupID:     strings.TrimSpace(row.SetupID),
		Notes:       row.Notes,
	}, true
}
