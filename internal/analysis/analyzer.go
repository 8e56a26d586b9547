package analysis

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tradelens/internal/journal"
	"tradelens/internal/models"
)

// Analyzer orchestrates the engine over one snapshot of trades. It owns
// no persistent state: the caller supplies a consistent snapshot, and
// every derivation is recomputed in full from it. Segment breakdowns
// are memoized per snapshot since the full trade set is typically
// stable across filter changes.
type Analyzer struct {
	logger   zerolog.Logger
	loc      *time.Location
	trades   []models.Trade
	segCache map[string][]models.SegmentStat
}

// NewAnalyzer creates an analyzer bucketing times in loc. A nil loc
// falls back to the local time zone.
func NewAnalyzer(logger zerolog.Logger, loc *time.Location) *Analyzer {
	if loc == nil {
		loc = time.Local
	}
	return &Analyzer{
		logger:   logger,
		loc:      loc,
		segCache: make(map[string][]models.SegmentStat),
	}
}

// SetTrades replaces the snapshot, enriching each trade with the
// mistake tags extracted from its notes. Decode failures are logged
// for diagnostics and treated as "no tags".
func (a *Analyzer) SetTrades(trades []models.Trade) {
	enriched := make([]models.Trade, len(trades))
	for i, t := range trades {
		if doc, ok := journal.Decode(t.Notes); ok {
			t.Mistakes = doc.AllMistakes()
		} else if strings.TrimSpace(t.Notes) != "" {
			a.logger.Debug().Str("trade_id", t.ID).Msg("Notes not decodable, treating as untagged")
		}
		enriched[i] = t
	}
	a.trades = enriched
	a.segCache = make(map[string][]models.SegmentStat)
}

// Trades returns the enriched snapshot.
func (a *Analyzer) Trades() []models.Trade {
	return a.trades
}

// Filtered applies the criteria to the snapshot.
func (a *Analyzer) Filtered(c models.FilterCriteria) []models.Trade {
	return Apply(a.trades, c, a.loc)
}

// Equity returns the single-mode equity curve of the filtered set.
func (a *Analyzer) Equity(c models.FilterCriteria) models.Series {
	return Aggregate(SeriesEquity, a.Filtered(c), a.loc)
}

// Compare returns the baseline (all trades) and filtered equity curves
// for side-by-side rendering.
func (a *Analyzer) Compare(c models.FilterCriteria) (models.Series, models.Series) {
	return Comparison(a.trades, a.Filtered(c), a.loc)
}

// Metrics computes the portfolio statistics of the filtered set.
func (a *Analyzer) Metrics(c models.FilterCriteria) models.PerformanceMetrics {
	return ComputeMetrics(a.Filtered(c))
}

// Segments returns the per-option breakdown for one dimension over the
// full snapshot, memoized until the snapshot changes.
func (a *Analyzer) Segments(dim models.Dimension, options []string) []models.SegmentStat {
	key := string(dim) + "\x00" + strings.Join(options, "\x00")
	if cached, ok := a.segCache[key]; ok {
		return cached
	}
	stats := Breakdown(a.trades, dim, options, a.loc)
	a.segCache[key] = stats
	return stats
}

// MistakeOptions returns the distinct mistake tags across the snapshot
// in first-seen order. These are the candidate options for the
// mistakes dimension.
func (a *Analyzer) MistakeOptions() []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, t := range a.trades {
		for _, m := range t.Mistakes {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			tags = append(tags, m)
		}
	}
	return tags
}

// SymbolOptions returns the distinct symbols across the snapshot in
// first-seen order.
func (a *Analyzer) SymbolOptions() []string {
	seen := make(map[string]struct{})
	var symbols []string
	for _, t := range a.trades {
		if _, ok := seen[t.Symbol]; ok {
			continue
		}
		seen[t.Symbol] = struct{}{}
		symbols = append(symbols, t.Symbol)
	}
	return symbols
}
