package models

// Strategy is a user-defined trading strategy referenced by trades.
// The analytics engine treats the id as opaque and performs no
// referential validation.
type Strategy struct {
	ID   string
	Name string
}

// Setup is a named entry setup belonging to a strategy.
type Setup struct {
	ID         string
	Name       string
	StrategyID string
}
