// Package store provides data persistence implementations.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"tradelens/internal/models"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Trades table for closed positions
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		symbol TEXT NOT NULL,
		side TEXT NOT NULL,
		qty REAL NOT NULL,
		entry_price REAL NOT NULL,
		exit_price REAL NOT NULL,
		placing_time DATETIME,
		closing_time DATETIME,
		net_profit REAL NOT NULL,
		strategy_id TEXT,
		setup_id TEXT,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Strategies table
	CREATE TABLE IF NOT EXISTS strategies (
		strategy_id TEXT PRIMARY KEY,
		strategy_name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Setups table
	CREATE TABLE IF NOT EXISTS setups (
		id TEXT PRIMARY KEY,
		setup_name TEXT NOT NULL,
		strategy_id TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (strategy_id) REFERENCES strategies(strategy_id)
	);

	CREATE INDEX IF NOT EXISTS idx_trades_closing_time ON trades(closing_time);
	CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol);
	CREATE INDEX IF NOT EXISTS idx_trades_strategy ON trades(strategy_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveTrade inserts or replaces one trade.
func (s *SQLiteStore) SaveTrade(ctx context.Context, trade *models.Trade) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO trades
		(id, symbol, side, qty, entry_price, exit_price, placing_time, closing_time, net_profit, strategy_id, setup_id, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trade.ID, trade.Symbol, string(trade.Side), trade.Qty,
		trade.EntryPrice, trade.ExitPrice,
		nullableTime(trade.PlacingTime), nullableTime(trade.ClosingTime),
		trade.NetProfit, nullableString(trade.StrategyID),
		nullableString(trade.SetupID), nullableString(trade.Notes),
	)
	if err != nil {
		return fmt.Errorf("failed to save trade %s: %w", trade.ID, err)
	}
	return nil
}

// SaveTrades inserts a batch of trades in one transaction.
func (s *SQLiteStore) SaveTrades(ctx context.Context, trades []models.Trade) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO trades
		(id, symbol, side, qty, entry_price, exit_price, placing_time, closing_time, net_profit, strategy_id, setup_id, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, t := range trades {
		if _, err := stmt.ExecContext(ctx,
			t.ID, t.Symbol, string(t.Side), t.Qty,
			t.EntryPrice, t.ExitPrice,
			nullableTime(t.PlacingTime), nullableTime(t.ClosingTime),
			t.NetProfit, nullableString(t.StrategyID),
			nullableString(t.SetupID), nullableString(t.Notes),
		); err != nil {
			return fmt.Errorf("failed to save trade %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// GetTrades returns trades matching the coarse filter, ascending by
// closing time.
func (s *SQLiteStore) GetTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error) {
	query := "SELECT id, symbol, side, qty, entry_price, exit_price, placing_time, closing_time, net_profit, strategy_id, setup_id, notes FROM trades WHERE 1=1"
	args := []interface{}{}

	if filter.Symbol != "" {
		query += " AND symbol = ?"
		args = append(args, filter.Symbol)
	}
	if filter.Side != "" {
		query += " AND side = ?"
		args = append(args, string(filter.Side))
	}
	if filter.StrategyID != "" {
		query += " AND strategy_id = ?"
		args = append(args, filter.StrategyID)
	}
	if filter.SetupID != "" {
		query += " AND setup_id = ?"
		args = append(args, filter.SetupID)
	}
	if !filter.StartDate.IsZero() {
		query += " AND closing_time >= ?"
		args = append(args, filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query += " AND closing_time <= ?"
		args = append(args, filter.EndDate)
	}

	query += " ORDER BY closing_time ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		var t models.Trade
		var side string
		var placing, closing sql.NullTime
		var strategyID, setupID, notes sql.NullString

		if err := rows.Scan(&t.ID, &t.Symbol, &side, &t.Qty, &t.EntryPrice, &t.ExitPrice,
			&placing, &closing, &t.NetProfit, &strategyID, &setupID, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}

		t.Side = models.Direction(side)
		if placing.Valid {
			t.PlacingTime = placing.Time
		}
		if closing.Valid {
			t.ClosingTime = closing.Time
		}
		t.StrategyID = strategyID.String
		t.SetupID = setupID.String
		t.Notes = notes.String
		trades = append(trades, t)
	}

	return trades, rows.Err()
}

// DeleteTrade removes one trade by id.
func (s *SQLiteStore) DeleteTrade(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM trades WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete trade %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("trade %s not found", id)
	}
	return nil
}

// SaveStrategy inserts or replaces a strategy.
func (s *SQLiteStore) SaveStrategy(ctx context.Context, strategy *models.Strategy) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO strategies (strategy_id, strategy_name) VALUES (?, ?)",
		strategy.ID, strategy.Name)
	if err != nil {
		return fmt.Errorf("failed to save strategy %s: %w", strategy.ID, err)
	}
	return nil
}

// GetStrategies returns all strategies ordered by name.
func (s *SQLiteStore) GetStrategies(ctx context.Context) ([]models.Strategy, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT strategy_id, strategy_name FROM strategies ORDER BY strategy_name")
	if err != nil {
		return nil, fmt.Errorf("failed to query strategies: %w", err)
	}
	defer rows.Close()

	var strategies []models.Strategy
	for rows.Next() {
		var st models.Strategy
		if err := rows.Scan(&st.ID, &st.Name); err != nil {
			return nil, fmt.Errorf("failed to scan strategy: %w", err)
		}
		strategies = append(strategies, st)
	}
	return strategies, rows.Err()
}

// SaveSetup inserts or replaces a setup.
func (s *SQLiteStore) SaveSetup(ctx context.Context, setup *models.Setup) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO setups (id, setup_name, strategy_id) VALUES (?, ?, ?)",
		setup.ID, setup.Name, setup.StrategyID)
	if err != nil {
		return fmt.Errorf("failed to save setup %s: %w", setup.ID, err)
	}
	return nil
}

// GetSetups returns all setups ordered by name.
func (s *SQLiteStore) GetSetups(ctx context.Context) ([]models.Setup, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, setup_name, strategy_id FROM setups ORDER BY setup_name")
	if err != nil {
		return nil, fmt.Errorf("failed to query setups: %w", err)
	}
	defer rows.Close()

	var setups []models.Setup
	for rows.Next() {
		var st models.Setup
		if err := rows.Scan(&st.ID, &st.Name, &st.StrategyID); err != nil {
			return nil, fmt.Errorf("failed to scan setup: %w", err)
		}
		setups = append(setups, st)
	}
	return setups, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
