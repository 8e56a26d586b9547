package analysis

import (
	"testing"
	"time"

	"tradelens/internal/models"
)

func TestBreakdownByMistake(t *testing.T) {
	trades := []models.Trade{
		{ID: "a", Qty: 2, EntryPrice: 100, NetProfit: 30, Mistakes: []string{"moved stop"}},
		{ID: "b", Qty: 1, EntryPrice: 100, NetProfit: -10, Mistakes: []string{"moved stop", "oversized"}},
		{ID: "c", Qty: 1, EntryPrice: 50, NetProfit: 5},
	}

	stats := Breakdown(trades, models.DimMistakes, []string{"moved stop", "oversized", "fomo entry"}, time.UTC)
	if len(stats) != 3 {
		t.Fatalf("got %d stats, want 3", len(stats))
	}

	// moved stop: trades a+b, profit 20, committed 300 -> 6.6667%.
	if stats[0].TotalProfit != 20 {
		t.Errorf("moved stop profit = %v, want 20", stats[0].TotalProfit)
	}
	if !almostEqual(stats[0].ProfitPercent, 20.0/300*100) {
		t.Errorf("moved stop percent = %v, want %v", stats[0].ProfitPercent, 20.0/300*100)
	}

	// oversized: trade b only, profit -10, committed 100 -> -10%.
	if stats[1].TotalProfit != -10 || !almostEqual(stats[1].ProfitPercent, -10) {
		t.Errorf("oversized = {%v, %v}, want {-10, -10}", stats[1].TotalProfit, stats[1].ProfitPercent)
	}

	// fomo entry matches nothing: zeros, never NaN.
	if stats[2].TotalProfit != 0 || stats[2].ProfitPercent != 0 {
		t.Errorf("empty option = {%v, %v}, want {0, 0}", stats[2].TotalProfit, stats[2].ProfitPercent)
	}
}

func TestBreakdownIgnoresActiveFilterSemantics(t *testing.T) {
	// The breakdown always runs over the set it is handed; handing it
	// the full set while a filter is active elsewhere is the caller's
	// contract. Verify per-option independence.
	trades := []models.Trade{
		{ID: "a", Symbol: "EURUSD", Qty: 1, EntryPrice: 100, NetProfit: 10},
		{ID: "b", Symbol: "XAUUSD", Qty: 1, EntryPrice: 200, NetProfit: -20},
	}

	stats := Breakdown(trades, models.DimSymbols, []string{"EURUSD", "XAUUSD"}, time.UTC)
	if !almostEqual(stats[0].ProfitPercent, 10) {
		t.Errorf("EURUSD percent = %v, want 10", stats[0].ProfitPercent)
	}
	if !almostEqual(stats[1].ProfitPercent, -10) {
		t.Errorf("XAUUSD percent = %v, want -10", stats[1].ProfitPercent)
	}
}

func TestBreakdownTimeDimension(t *testing.T) {
	trades := []models.Trade{
		tradeAt("mon", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), 15),
		tradeAt("tue", time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC), -5),
	}

	stats := Breakdown(trades, models.DimWeekdays, []string{"1", "2", "3"}, time.UTC)
	if stats[0].TotalProfit != 15 {
		t.Errorf("Monday profit = %v, want 15", stats[0].TotalProfit)
	}
	if stats[1].TotalProfit != -5 {
		t.Errorf("Tuesday profit = %v, want -5", stats[1].TotalProfit)
	}
	if stats[2].TotalProfit != 0 || stats[2].ProfitPercent != 0 {
		t.Errorf("Wednesday = {%v, %v}, want {0, 0}", stats[2].TotalProfit, stats[2].ProfitPercent)
	}
}

func TestBreakdownBadIndexOptionMatchesNothing(t *testing.T) {
	trades := []models.Trade{
		tradeAt("mon", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), 15),
	}

	stats := Breakdown(trades, models.DimMonths, []string{"not-a-month"}, time.UTC)
	if stats[0].TotalProfit != 0 || stats[0].ProfitPercent != 0 {
		t.Errorf("bad option = {%v, %v}, want {0, 0}", stats[0].TotalProfit, stats[0].ProfitPercent)
	}
}

func TestBreakdownZeroCommittedCapital(t *testing.T) {
	// Entry price 0 means zero committed capital; the percentage is
	// reported as 0 rather than infinity since it renders inline.
	trades := []models.Trade{
		{ID: "a", Symbol: "FREE", Qty: 1, EntryPrice: 0, NetProfit: 10},
	}

	stats := Breakdown(trades, models.DimSymbols, []string{"FREE"}, time.UTC)
	if stats[0].TotalProfit != 10 {
		t.Errorf("profit = %v, want 10", stats[0].TotalProfit)
	}
	if stats[0].ProfitPercent != 0 {
		t.Errorf("percent = %v, want 0", stats[0].ProfitPercent)
	}
}
