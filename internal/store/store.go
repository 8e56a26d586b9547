// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"tradelens/internal/models"
)

// DataStore defines the interface for journal persistence. It is the
// trade record supplier for the analytics engine: the engine always
// consumes a full snapshot returned by GetTrades and never reaches
// back into the store mid-computation.
type DataStore interface {
	// Trades
	SaveTrade(ctx context.Context, trade *models.Trade) error
	SaveTrades(ctx context.Context, trades []models.Trade) error
	GetTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error)
	DeleteTrade(ctx context.Context, id string) error

	// Strategies & setups
	SaveStrategy(ctx context.Context, strategy *models.Strategy) error
	GetStrategies(ctx context.Context) ([]models.Strategy, error)
	SaveSetup(ctx context.Context, setup *models.Setup) error
	GetSetups(ctx context.Context) ([]models.Setup, error)

	// Lifecycle
	Close() error
}

// TradeFilter represents coarse filters pushed down to the store when
// querying trades. Fine-grained multi-dimension filtering is done
// in-process by the analysis package.
type TradeFilter struct {
	Symbol     string
	Side       models.Direction
	StrategyID string
	SetupID    string
	StartDate  time.Time
	EndDate    time.Time
	Limit      int
}
