package cli

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tradelens/internal/analysis"
	"tradelens/internal/config"
	"tradelens/internal/logging"
	"tradelens/internal/store"
)

// Version information
const (
	Version   = "0.3.0"
	BuildDate = "2026-08-30"
)

// App holds the application dependencies.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Store    store.DataStore
	Location *time.Location
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid timezone, falling back to local")
		loc = time.Local
	}
	app.Location = loc

	dataStore, err := store.NewSQLiteStore(cfg.Journal.DatabasePath)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, journal commands unavailable")
	} else {
		app.Store = dataStore
		logger.Debug().Str("path", cfg.Journal.DatabasePath).Msg("SQLite store initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "tradelens",
		Short: "tradelens - trade journal analytics CLI",
		Long: `tradelens analyzes your trading journal: import closed trades,
slice them across mistakes, strategies, setups, time-of-day and more,
and review equity curves, performance statistics, and per-option
profit breakdowns.

Use 'tradelens help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/tradelens)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	addTradeCommands(rootCmd, app)
	addImportCommand(rootCmd, app)
	addAnalyzeCommand(rootCmd, app)
	addSegmentsCommand(rootCmd, app)
	addMistakesCommand(rootCmd, app)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
				return
			}
			output.Printf("tradelens %s (built %s)\n", Version, BuildDate)
		},
	}
}

// loadAnalyzer fetches the full trade snapshot from the store and
// wraps it in an analyzer. All analytics commands go through this so
// they operate on one consistent snapshot.
func (app *App) loadAnalyzer(ctx context.Context) (*analysis.Analyzer, error) {
	trades, err := app.Store.GetTrades(ctx, store.TradeFilter{})
	if err != nil {
		return nil, err
	}
	analyzer := analysis.NewAnalyzer(app.Logger, app.Location)
	analyzer.SetTrades(trades)
	return analyzer, nil
}
