package analysis

import (
	"math"
	"time"

	"tradelens/internal/models"
)

// Breakdown computes, for every candidate option of one dimension, the
// aggregate profit of the trades matching just that option over the
// full trade set. The active filter criteria are deliberately ignored
// so each option shows its standalone contribution while a filter is
// being built up.
//
// ProfitPercent normalizes the profit by the capital committed to the
// matching trades (|sum of entry price x qty|). An option matching no
// trades reports 0, never NaN: these values render inline next to list
// items. The same applies when the committed capital sums to zero.
func Breakdown(trades []models.Trade, dim models.Dimension, options []string, loc *time.Location) []models.SegmentStat {
	stats := make([]models.SegmentStat, 0, len(options))
	for _, opt := range options {
		stats = append(stats, breakdownOne(trades, dim, opt, loc))
	}
	return stats
}

func breakdownOne(trades []models.Trade, dim models.Dimension, option string, loc *time.Location) models.SegmentStat {
	c := criteriaFor(dim, option)

	stat := models.SegmentStat{OptionID: option}
	var committed float64
	var matched int
	for _, t := range trades {
		if !matches(&t, c, loc) {
			continue
		}
		matched++
		stat.TotalProfit += t.NetProfit
		committed += t.Committed()
	}

	if matched == 0 {
		return stat
	}
	if denom := math.Abs(committed); denom > 0 {
		stat.ProfitPercent = stat.TotalProfit / denom * 100
	}
	return stat
}
