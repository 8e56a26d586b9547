package analysis

import (
	"math"

	"tradelens/internal/models"
)

// ComputeMetrics computes the portfolio statistics over a trade set.
// Metrics whose definition requires dividing by the trade count, the
// standard deviation, or the winner/loser counts come back as NaN when
// that divisor is zero; callers render NaN as a dash. TotalReturn and
// TradeCount are always defined.
func ComputeMetrics(trades []models.Trade) models.PerformanceMetrics {
	n := len(trades)
	m := models.PerformanceMetrics{
		TradeCount:  n,
		WinRate:     math.NaN(),
		SharpeRatio: math.NaN(),
		ZScore:      math.NaN(),
		Expectancy:  math.NaN(),
	}

	var wins int
	var winSum float64
	for _, t := range trades {
		m.TotalReturn += t.NetProfit
		if t.IsWin() {
			wins++
			winSum += t.NetProfit
		}
	}
	if n == 0 {
		return m
	}

	m.WinRate = float64(wins) / float64(n) * 100
	mean := m.TotalReturn / float64(n)

	// Population standard deviation: squared deviations over n, not n-1.
	var sumSq float64
	for _, t := range trades {
		d := t.NetProfit - mean
		sumSq += d * d
	}
	stdDev := math.Sqrt(sumSq / float64(n))

	if stdDev > 0 {
		m.SharpeRatio = mean / stdDev
		m.ZScore = mean / (stdDev / math.Sqrt(float64(n)))
	}

	// avgLoss is the mean of the complement of the winners, so exact
	// breakeven trades fall into the loss bucket.
	avgWin := math.NaN()
	if wins > 0 {
		avgWin = winSum / float64(wins)
	}
	avgLoss := math.NaN()
	if losers := n - wins; losers > 0 {
		avgLoss = (m.TotalReturn - winSum) / float64(losers)
	}

	p := m.WinRate / 100
	m.Expectancy = p*avgWin - (1-p)*math.Abs(avgLoss)

	return m
}
