package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firetrack/fire-tracker/internal/calculation"
	"github.com/firetrack/fire-tracker/internal/config"
	"github.com/firetrack/fire-tracker/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "firetrack",
	Short: "A FIRE planning and progress tracking tool",
	Long: `Firetrack projects the path to financial independence and tracks
progress against it.

It provides tools for:
  - Computing FIRE and Coast FIRE targets from yearly expenses
  - Projecting portfolio growth year by year until retirement
  - Recording contributions to tracked assets
  - Comparing actual savings against the required trajectory`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	flagConfig  string
	flagUser    string
	flagDataDir string
	flagStore   string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "firetrack.yaml", "path to the application config file")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "user name (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "base data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "store backend, csv or sqlite (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
}

// appEnv bundles the per-invocation stores and logger. Close releases the
// backing database when the sqlite store is in use.
type appEnv struct {
	cfg     *config.AppConfig
	userCtx store.UserContext
	sims    store.SimulationStore
	ledger  store.ContributionLedger
	profile *store.ProfileStore
	colors  *store.AssetColorRegistry
	logger  calculation.Logger
	closer  func() error
}

func (e *appEnv) Close() error {
	if e.closer != nil {
		return e.closer()
	}
	return nil
}

func openEnv() (*appEnv, error) {
	cfg, err := config.LoadAppConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagUser != "" {
		cfg.User = flagUser
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagStore != "" {
		cfg.Store = flagStore
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	userCtx := store.NewUserContext(cfg.User, cfg.DataDir)
	if err := userCtx.EnsureDir(); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	env := &appEnv{
		cfg:     cfg,
		userCtx: userCtx,
		profile: store.NewProfileStore(userCtx.ProfilePath()),
		colors:  store.NewAssetColorRegistry(userCtx.AssetColorsPath()),
		logger:  calculation.NopLogger{},
	}
	if cfg.Verbose {
		env.logger = &calculation.StdLogger{Verbose: true}
	}

	switch cfg.Store {
	case config.StoreSQLite:
		db, err := store.OpenSQLite(userCtx.DatabasePath())
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		env.sims = db.Simulations()
		env.ledger = db.Contributions()
		env.closer = db.Close
	default:
		env.sims = store.NewSimulationCSV(userCtx.SimulationsPath())
		env.ledger = store.NewContributionCSV(userCtx.ContributionsPath())
	}

	if err := env.sims.Init(); err != nil {
		return nil, err
	}
	if err := env.ledger.Init(); err != nil {
		return nil, err
	}
	return env, nil
}
