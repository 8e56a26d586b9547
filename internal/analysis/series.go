package analysis

import (
	"sort"
	"time"

	"tradelens/internal/models"
)

// Series names used by the aggregator.
const (
	SeriesEquity   = "equity"
	SeriesBaseline = "all trades"
	SeriesFiltered = "filtered"
)

// Aggregate buckets a trade set by calendar day of closing time and
// returns the equity curve: per-day net profit plus a running
// cumulative total seeded at 0. Trades without a closing time are
// skipped. An empty input yields an empty series, not a zero point.
func Aggregate(name string, trades []models.Trade, loc *time.Location) models.Series {
	eligible := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.HasClosingTime() {
			eligible = append(eligible, t)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].ClosingTime.Before(eligible[j].ClosingTime)
	})

	series := models.Series{Name: name}
	var cumulative float64
	for _, t := range eligible {
		day := dayOf(t.ClosingTime, loc)
		cumulative += t.NetProfit

		n := len(series.Points)
		if n > 0 && series.Points[n-1].Date.Equal(day) {
			series.Points[n-1].NetProfit += t.NetProfit
			series.Points[n-1].Cumulative = cumulative
			continue
		}
		series.Points = append(series.Points, models.DailyPoint{
			Date:       day,
			NetProfit:  t.NetProfit,
			Cumulative: cumulative,
		})
	}
	return series
}

// Comparison aggregates the full and the filtered trade sets
// independently for what-if analysis. The two series are bucketed from
// their own trades and need not share date keys.
func Comparison(all, filtered []models.Trade, loc *time.Location) (models.Series, models.Series) {
	baseline := Aggregate(SeriesBaseline, all, loc)
	subset := Aggregate(SeriesFiltered, filtered, loc)
	return baseline, subset
}

// dayOf truncates a timestamp to its calendar day in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
