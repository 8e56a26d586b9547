package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelens/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetTrade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	closing := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)
	trade := &models.Trade{
		ID:          "t1",
		Symbol:      "EURUSD",
		Side:        models.DirectionBuy,
		Qty:         2,
		EntryPrice:  1.0850,
		ExitPrice:   1.0900,
		PlacingTime: closing.Add(-2 * time.Hour),
		ClosingTime: closing,
		NetProfit:   100,
		StrategyID:  "breakout",
		SetupID:     "london-open",
		Notes:       `{"preTrade": {"text": "clean setup", "mistakes": []}}`,
	}
	require.NoError(t, s.SaveTrade(ctx, trade))

	got, err := s.GetTrades(ctx, TradeFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "EURUSD", got[0].Symbol)
	assert.Equal(t, models.DirectionBuy, got[0].Side)
	assert.Equal(t, 100.0, got[0].NetProfit)
	assert.Equal(t, "breakout", got[0].StrategyID)
	assert.True(t, got[0].ClosingTime.Equal(closing))
	assert.Equal(t, trade.Notes, got[0].Notes)
}

func TestSaveTradeUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	trade := &models.Trade{ID: "t1", Symbol: "EURUSD", Side: models.DirectionBuy, Qty: 1, NetProfit: 10}
	require.NoError(t, s.SaveTrade(ctx, trade))

	trade.NetProfit = -25
	require.NoError(t, s.SaveTrade(ctx, trade))

	got, err := s.GetTrades(ctx, TradeFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, -25.0, got[0].NetProfit)
}

func TestSaveTradesBatchAndOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
	}
	trades := []models.Trade{
		{ID: "late", Symbol: "EURUSD", Side: models.DirectionBuy, Qty: 1, ClosingTime: day(9), NetProfit: 3},
		{ID: "early", Symbol: "EURUSD", Side: models.DirectionSell, Qty: 1, ClosingTime: day(2), NetProfit: 1},
		{ID: "mid", Symbol: "XAUUSD", Side: models.DirectionBuy, Qty: 1, ClosingTime: day(5), NetProfit: 2},
	}
	require.NoError(t, s.SaveTrades(ctx, trades))

	got, err := s.GetTrades(ctx, TradeFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)
	assert.Equal(t, "late", got[2].ID)
}

func TestGetTradesFilterPushdown(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
	}
	require.NoError(t, s.SaveTrades(ctx, []models.Trade{
		{ID: "a", Symbol: "EURUSD", Side: models.DirectionBuy, Qty: 1, ClosingTime: day(2), StrategyID: "breakout"},
		{ID: "b", Symbol: "EURUSD", Side: models.DirectionSell, Qty: 1, ClosingTime: day(5)},
		{ID: "c", Symbol: "XAUUSD", Side: models.DirectionBuy, Qty: 1, ClosingTime: day(9)},
	}))

	bySymbol, err := s.GetTrades(ctx, TradeFilter{Symbol: "XAUUSD"})
	require.NoError(t, err)
	require.Len(t, bySymbol, 1)
	assert.Equal(t, "c", bySymbol[0].ID)

	bySide, err := s.GetTrades(ctx, TradeFilter{Side: models.DirectionSell})
	require.NoError(t, err)
	require.Len(t, bySide, 1)
	assert.Equal(t, "b", bySide[0].ID)

	byStrategy, err := s.GetTrades(ctx, TradeFilter{StrategyID: "breakout"})
	require.NoError(t, err)
	require.Len(t, byStrategy, 1)
	assert.Equal(t, "a", byStrategy[0].ID)

	byRange, err := s.GetTrades(ctx, TradeFilter{StartDate: day(3), EndDate: day(8)})
	require.NoError(t, err)
	require.Len(t, byRange, 1)
	assert.Equal(t, "b", byRange[0].ID)

	limited, err := s.GetTrades(ctx, TradeFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestNullColumnsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// No closing time, no strategy, no notes. All land as NULL and come
	// back as zero values.
	require.NoError(t, s.SaveTrade(ctx, &models.Trade{
		ID: "open", Symbol: "EURUSD", Side: models.DirectionBuy, Qty: 1,
	}))

	got, err := s.GetTrades(ctx, TradeFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].ClosingTime.IsZero())
	assert.Empty(t, got[0].StrategyID)
	assert.Empty(t, got[0].Notes)
	assert.False(t, got[0].HasClosingTime())
}

func TestDeleteTrade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTrade(ctx, &models.Trade{ID: "t1", Symbol: "EURUSD", Side: models.DirectionBuy, Qty: 1}))
	require.NoError(t, s.DeleteTrade(ctx, "t1"))

	got, err := s.GetTrades(ctx, TradeFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.Error(t, s.DeleteTrade(ctx, "t1"))
}

func TestStrategiesAndSetups(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveStrategy(ctx, &models.Strategy{ID: "s2", Name: "Reversal"}))
	require.NoError(t, s.SaveStrategy(ctx, &models.Strategy{ID: "s1", Name: "Breakout"}))
	require.NoError(t, s.SaveSetup(ctx, &models.Setup{ID: "u1", Name: "London open", StrategyID: "s1"}))

	strategies, err := s.GetStrategies(ctx)
	require.NoError(t, err)
	require.Len(t, strategies, 2)
	assert.Equal(t, "Breakout", strategies[0].Name)
	assert.Equal(t, "Reversal", strategies[1].Name)

	setups, err := s.GetSetups(ctx)
	require.NoError(t, err)
	require.Len(t, setups, 1)
	assert.Equal(t, "s1", setups[0].StrategyID)
}
