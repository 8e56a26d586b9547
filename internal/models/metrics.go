package models

import "time"

// DailyPoint is one bucket of the aggregated equity curve: all trades
// closed on the same calendar day merged into a single point.
type DailyPoint struct {
	Date       time.Time
	NetProfit  float64
	Cumulative float64
}

// Series is a named sequence of daily points, ascending by date with
// no duplicate days.
type Series struct {
	Name   string
	Points []DailyPoint
}

// PerformanceMetrics holds the portfolio statistics computed over one
// trade set. Metrics that are undefined for the set (empty set, zero
// variance, no winners or no losers) are NaN; render them as a dash.
type PerformanceMetrics struct {
	TotalReturn float64
	WinRate     float64
	TradeCount  int
	SharpeRatio float64
	ZScore      float64
	Expectancy  float64
}

// SegmentStat is the standalone contribution of one filter option,
// always computed over the full trade set regardless of the active
// criteria.
type SegmentStat struct {
	OptionID      string
	TotalProfit   float64
	ProfitPercent float64
}
