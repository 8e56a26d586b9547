package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelens/internal/models"
	"tradelens/internal/store"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trades.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newImportStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

const csvHeader = "id,symbol,side,qty,entry_price,exit_price,placing_time,closing_time,net_profit,strategy_id,setup_id,notes\n"

func TestImportCSV(t *testing.T) {
	path := writeCSV(t, csvHeader+
		"t1,eurusd,buy,2,1.085,1.09,2026-03-02 08:00:00,2026-03-02 15:30:00,100,breakout,,\n"+
		"t2,XAUUSD,SELL,1,2400,2390,,2026-03-03 10:00:00,-10,,,moved stop late\n")

	s := newImportStore(t)
	res, err := ImportCSV(context.Background(), s, path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 0, res.Skipped)

	trades, err := s.GetTrades(context.Background(), store.TradeFilter{})
	require.NoError(t, err)
	require.Len(t, trades, 2)

	assert.Equal(t, "EURUSD", trades[0].Symbol)
	assert.Equal(t, models.DirectionBuy, trades[0].Side)
	assert.Equal(t, models.DirectionSell, trades[1].Side)
	assert.Equal(t, "moved stop late", trades[1].Notes)
}

func TestImportCSVSkipsInvalidRows(t *testing.T) {
	path := writeCSV(t, csvHeader+
		",,buy,1,1,1,,2026-03-02 15:30:00,5,,,\n"+ // no symbol
		"t2,EURUSD,buy,0,1,1,,2026-03-02 15:30:00,5,,,\n"+ // qty zero
		"t3,EURUSD,buy,1,1,1,,2026-03-02 15:30:00,5,,,\n")

	s := newImportStore(t)
	res, err := ImportCSV(context.Background(), s, path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 2, res.Skipped)
}

func TestImportCSVGeneratesIDs(t *testing.T) {
	path := writeCSV(t, csvHeader+
		",EURUSD,buy,1,1,1,,2026-03-02 15:30:00,5,,,\n"+
		",EURUSD,buy,1,1,1,,2026-03-02 15:30:00,5,,,\n")

	s := newImportStore(t)
	res, err := ImportCSV(context.Background(), s, path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)

	// Generated ids embed the row index, so identical rows must not
	// collapse into one record.
	trades, err := s.GetTrades(context.Background(), store.TradeFilter{})
	require.NoError(t, err)
	assert.Len(t, trades, 2)
	assert.NotEqual(t, trades[0].ID, trades[1].ID)
}

func TestImportCSVToleratesBadTimestamps(t *testing.T) {
	path := writeCSV(t, csvHeader+
		"t1,EURUSD,buy,1,1,1,,not a timestamp,5,,,\n")

	s := newImportStore(t)
	res, err := ImportCSV(context.Background(), s, path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)

	trades, err := s.GetTrades(context.Background(), store.TradeFilter{})
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.False(t, trades[0].HasClosingTime())
}

func TestImportCSVMissingFile(t *testing.T) {
	s := newImportStore(t)
	_, err := ImportCSV(context.Background(), s, filepath.Join(t.TempDir(), "nope.csv"), zerolog.Nop())
	assert.Error(t, err)
}
