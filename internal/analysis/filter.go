// Package analysis implements the journal analytics engine: trade
// filtering, equity-curve aggregation, performance statistics, and
// per-option segment breakdowns. Every function here is a pure
// transformation over a snapshot of trades; nothing retains state
// between calls except the analyzer's memo cache.
package analysis

import (
	"strconv"
	"time"

	"tradelens/internal/models"
)

// Apply returns the ordered subset of trades matching every constrained
// dimension of the criteria. Within a dimension the allow-list is an OR;
// across dimensions the match is an AND. The filter is stable: output
// preserves input order, and filtering an already-filtered set with the
// same criteria returns the identical set.
//
// Month, weekday, and hour are components of the closing time in loc.
// A trade without a closing time never matches those three dimensions
// but is unaffected by the others.
func Apply(trades []models.Trade, c models.FilterCriteria, loc *time.Location) []models.Trade {
	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if matches(&t, c, loc) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t *models.Trade, c models.FilterCriteria, loc *time.Location) bool {
	if len(c.Mistakes) > 0 && !intersects(t.Mistakes, c.Mistakes) {
		return false
	}
	if len(c.Strategies) > 0 && !containsString(c.Strategies, t.StrategyID) {
		return false
	}
	if len(c.Setups) > 0 && !containsString(c.Setups, t.SetupID) {
		return false
	}
	if len(c.Symbols) > 0 && !containsString(c.Symbols, t.Symbol) {
		return false
	}
	if len(c.Directions) > 0 && !containsDirection(c.Directions, t.Side) {
		return false
	}

	if len(c.Months) > 0 || len(c.Weekdays) > 0 || len(c.Hours) > 0 {
		if !t.HasClosingTime() {
			return false
		}
		ct := t.ClosingTime.In(loc)
		if len(c.Months) > 0 && !containsInt(c.Months, int(ct.Month())-1) {
			return false
		}
		if len(c.Weekdays) > 0 && !containsInt(c.Weekdays, int(ct.Weekday())) {
			return false
		}
		if len(c.Hours) > 0 && !containsInt(c.Hours, ct.Hour()) {
			return false
		}
	}

	return true
}

// criteriaFor builds criteria constraining a single dimension to a
// single option value. Used by the segment breakdown so that option
// matching and filter matching can never drift apart. Options for the
// integer dimensions that fail to parse yield criteria matching no
// trade.
func criteriaFor(dim models.Dimension, option string) models.FilterCriteria {
	switch dim {
	case models.DimMistakes:
		return models.FilterCriteria{Mistakes: []string{option}}
	case models.DimStrategies:
		return models.FilterCriteria{Strategies: []string{option}}
	case models.DimSetups:
		return models.FilterCriteria{Setups: []string{option}}
	case models.DimMonths:
		return models.FilterCriteria{Months: []int{parseIndex(option)}}
	case models.DimWeekdays:
		return models.FilterCriteria{Weekdays: []int{parseIndex(option)}}
	case models.DimHours:
		return models.FilterCriteria{Hours: []int{parseIndex(option)}}
	case models.DimSymbols:
		return models.FilterCriteria{Symbols: []string{option}}
	case models.DimDirections:
		return models.FilterCriteria{Directions: []models.Direction{models.Direction(option)}}
	}
	return models.FilterCriteria{Symbols: []string{""}}
}

func parseIndex(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, n := range list {
		if n == v {
			return true
		}
	}
	return false
}

func containsDirection(list []models.Direction, v models.Direction) bool {
	for _, d := range list {
		if d == v {
			return true
		}
	}
	return false
}
