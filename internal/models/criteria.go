package models

// Dimension identifies one filterable attribute of a trade.
type Dimension string

const (
	DimMistakes   Dimension = "mistakes"
	DimStrategies Dimension = "strategies"
	DimSetups     Dimension = "setups"
	DimMonths     Dimension = "months"
	DimWeekdays   Dimension = "weekdays"
	DimHours      Dimension = "hours"
	DimSymbols    Dimension = "symbols"
	DimDirections Dimension = "directions"
)

// Dimensions lists all filter dimensions in display order.
var Dimensions = []Dimension{
	DimMistakes, DimStrategies, DimSetups, DimMonths,
	DimWeekdays, DimHours, DimSymbols, DimDirections,
}

// FilterCriteria is an immutable set of allow-lists, one per dimension.
// An empty list leaves that dimension unconstrained. Criteria values are
// replaced wholesale on each change, never mutated in place.
//
// Months are 0-11, weekdays 0-6 with Sunday = 0, hours 0-23, matching
// the components of the trade's closing time.
type FilterCriteria struct {
	Mistakes   []string
	Strategies []string
	Setups     []string
	Months     []int
	Weekdays   []int
	Hours      []int
	Symbols    []string
	Directions []Direction
}

// IsEmpty reports whether no dimension is constrained.
func (c FilterCriteria) IsEmpty() bool {
	return len(c.Mistakes) == 0 && len(c.Strategies) == 0 &&
		len(c.Setups) == 0 && len(c.Months) == 0 &&
		len(c.Weekdays) == 0 && len(c.Hours) == 0 &&
		len(c.Symbols) == 0 && len(c.Directions) == 0
}
