// Package models defines the core data types for the journal analytics engine.
package models

import "time"

// Direction is the side of a closed trade.
type Direction string

const (
	DirectionBuy  Direction = "Buy"
	DirectionSell Direction = "Sell"
)

// Trade represents one closed position as recorded in the journal.
// Trades are immutable once loaded; edits happen through the store,
// and the analytics engine always works on a fresh snapshot.
type Trade struct {
	ID          string
	Symbol      string
	Side        Direction
	Qty         float64
	EntryPrice  float64
	ExitPrice   float64
	PlacingTime time.Time
	ClosingTime time.Time
	NetProfit   float64
	StrategyID  string
	SetupID     string

	// Notes holds the raw notes document as stored. Decode it with
	// the journal package; malformed content is tolerated.
	Notes string

	// Mistakes is derived from Notes during enrichment. It is not
	// persisted separately.
	Mistakes []string
}

// HasClosingTime reports whether the trade carries a usable closing
// timestamp. Trades without one are excluded from time bucketing and
// never match month/weekday/hour filters.
func (t *Trade) HasClosingTime() bool {
	return !t.ClosingTime.IsZero()
}

// Committed returns the capital committed to the trade (entry price
// times quantity).
func (t *Trade) Committed() float64 {
	return t.EntryPrice * t.Qty
}

// IsWin reports whether the trade closed with a strictly positive
// net profit.
func (t *Trade) IsWin() bool {
	return t.NetProfit > 0
}
