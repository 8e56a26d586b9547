package analysis

import (
	"math"
	"testing"

	"tradelens/internal/models"
)

func tradesWithProfits(profits ...float64) []models.Trade {
	trades := make([]models.Trade, len(profits))
	for i, p := range profits {
		trades[i] = models.Trade{NetProfit: p}
	}
	return trades
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeMetricsKnownSet(t *testing.T) {
	// Two wins of 10, one loss of 10.
	m := ComputeMetrics(tradesWithProfits(10, 10, -10))

	if m.TradeCount != 3 {
		t.Errorf("TradeCount = %d, want 3", m.TradeCount)
	}
	if !almostEqual(m.TotalReturn, 10) {
		t.Errorf("TotalReturn = %v, want 10", m.TotalReturn)
	}
	if !almostEqual(m.WinRate, 200.0/3) {
		t.Errorf("WinRate = %v, want 66.67", m.WinRate)
	}

	// mean 10/3, population sigma sqrt(800/9).
	sigma := math.Sqrt(800.0 / 9)
	if !almostEqual(m.SharpeRatio, (10.0/3)/sigma) {
		t.Errorf("SharpeRatio = %v, want %v", m.SharpeRatio, (10.0/3)/sigma)
	}
	if !almostEqual(m.ZScore, (10.0/3)/(sigma/math.Sqrt(3))) {
		t.Errorf("ZScore = %v, want %v", m.ZScore, (10.0/3)/(sigma/math.Sqrt(3)))
	}

	// expectancy = 2/3*10 - 1/3*|-10| = 10/3
	if !almostEqual(m.Expectancy, 10.0/3) {
		t.Errorf("Expectancy = %v, want %v", m.Expectancy, 10.0/3)
	}
}

func TestComputeMetricsEmptySet(t *testing.T) {
	m := ComputeMetrics(nil)

	if m.TradeCount != 0 {
		t.Errorf("TradeCount = %d, want 0", m.TradeCount)
	}
	if m.TotalReturn != 0 {
		t.Errorf("TotalReturn = %v, want 0", m.TotalReturn)
	}
	for name, v := range map[string]float64{
		"WinRate":     m.WinRate,
		"SharpeRatio": m.SharpeRatio,
		"ZScore":      m.ZScore,
		"Expectancy":  m.Expectancy,
	} {
		if !math.IsNaN(v) {
			t.Errorf("%s = %v, want NaN", name, v)
		}
	}
}

func TestComputeMetricsZeroVariance(t *testing.T) {
	m := ComputeMetrics(tradesWithProfits(5, 5, 5))

	if !math.IsNaN(m.SharpeRatio) {
		t.Errorf("SharpeRatio = %v, want NaN for zero variance", m.SharpeRatio)
	}
	if !math.IsNaN(m.ZScore) {
		t.Errorf("ZScore = %v, want NaN for zero variance", m.ZScore)
	}
	if !almostEqual(m.WinRate, 100) {
		t.Errorf("WinRate = %v, want 100", m.WinRate)
	}
}

func TestComputeMetricsSingleTrade(t *testing.T) {
	m := ComputeMetrics(tradesWithProfits(42))

	if !almostEqual(m.TotalReturn, 42) {
		t.Errorf("TotalReturn = %v, want 42", m.TotalReturn)
	}
	// One trade has zero deviation, so both ratios are undefined.
	if !math.IsNaN(m.SharpeRatio) || !math.IsNaN(m.ZScore) {
		t.Errorf("ratios = %v/%v, want NaN/NaN", m.SharpeRatio, m.ZScore)
	}
}

func TestComputeMetricsBreakevenFallsInLossBucket(t *testing.T) {
	// The loss average is the mean of the complement of the winners,
	// so the breakeven trade dilutes it to zero here.
	m := ComputeMetrics(tradesWithProfits(5, 0))

	if !almostEqual(m.WinRate, 50) {
		t.Errorf("WinRate = %v, want 50", m.WinRate)
	}
	// avgWin 5, avgLoss (5-5)/1 = 0, expectancy 0.5*5 - 0.5*0 = 2.5.
	if !almostEqual(m.Expectancy, 2.5) {
		t.Errorf("Expectancy = %v, want 2.5", m.Expectancy)
	}
}

func TestComputeMetricsNoLosers(t *testing.T) {
	m := ComputeMetrics(tradesWithProfits(10, 20))

	if !almostEqual(m.WinRate, 100) {
		t.Errorf("WinRate = %v, want 100", m.WinRate)
	}
	// With no losers the loss average is undefined and expectancy
	// inherits that.
	if !math.IsNaN(m.Expectancy) {
		t.Errorf("Expectancy = %v, want NaN", m.Expectancy)
	}
}

func TestComputeMetricsAllLosers(t *testing.T) {
	m := ComputeMetrics(tradesWithProfits(-10, -20))

	if !almostEqual(m.WinRate, 0) {
		t.Errorf("WinRate = %v, want 0", m.WinRate)
	}
	if !math.IsNaN(m.Expectancy) {
		t.Errorf("Expectancy = %v, want NaN (no winners)", m.Expectancy)
	}
	if !almostEqual(m.TotalReturn, -30) {
		t.Errorf("TotalReturn = %v, want -30", m.TotalReturn)
	}
}
