// Command gymsim forecasts gym stat growth for what-if training regimes.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/talgya/gymsim/internal/engine"
	"github.com/talgya/gymsim/internal/gym"
	"github.com/talgya/gymsim/internal/logger"
	"github.com/talgya/gymsim/internal/report"
	"github.com/talgya/gymsim/internal/scenario"
	"github.com/talgya/gymsim/internal/store"
)

var (
	logLevel    string
	logFile     string
	dbPath      string
	catalogPath string

	runCSV      string
	runSessions bool
	runSave     string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gymsim",
		Short:         "Day-by-day gym stat growth forecasting",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(logLevel, logFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also log to a rotated file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "data/gymsim.db", "regime database path")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "venue catalog YAML (default: built-in)")

	runCmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Simulate one scenario and print the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&runCSV, "csv", "", "write snapshots to a CSV file")
	runCmd.Flags().BoolVar(&runSessions, "sessions", false, "expand CSV to one row per training session")
	runCmd.Flags().StringVar(&runSave, "save", "", "save the result as a named regime")

	compareCmd := &cobra.Command{
		Use:   "compare <a.yaml> <b.yaml> [more...]",
		Short: "Run several scenarios and compare final stats",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runCompare,
	}

	regimeCmd := &cobra.Command{
		Use:   "regime",
		Short: "Inspect saved regimes",
	}
	regimeCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved regimes",
			Args:  cobra.NoArgs,
			RunE:  runRegimeList,
		},
		&cobra.Command{
			Use:   "show <name>",
			Short: "Show a saved regime",
			Args:  cobra.ExactArgs(1),
			RunE:  runRegimeShow,
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a saved regime",
			Args:  cobra.ExactArgs(1),
			RunE:  runRegimeDelete,
		},
	)

	rootCmd.AddCommand(runCmd, compareCmd, regimeCmd)
	return rootCmd
}

func loadCatalog() (gym.Catalog, error) {
	if catalogPath == "" {
		return gym.DefaultCatalog(), nil
	}
	return gym.LoadCatalog(catalogPath)
}

// simulateFile loads one scenario file and runs it.
func simulateFile(catalog gym.Catalog, path string) (engine.Config, *engine.Result, error) {
	file, err := scenario.Load(path)
	if err != nil {
		return engine.Config{}, nil, err
	}
	configs, err := file.Configs(catalog)
	if err != nil {
		return engine.Config{}, nil, err
	}

	if len(configs) == 1 && configs[0].StartDay == 0 {
		res, err := engine.Simulate(catalog, configs[0])
		return configs[0], res, err
	}
	res, err := engine.SimulateChained(catalog, configs)
	return configs[0], res, err
}

func runScenario(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	cfg, res, err := simulateFile(catalog, args[0])
	if err != nil {
		slog.Error("simulation failed", "scenario", args[0], "error", err)
		return err
	}

	fmt.Print(report.Text(cfg.Initial, res))

	if runCSV != "" {
		f, err := os.Create(runCSV)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		if err := report.WriteCSV(f, res, runSessions); err != nil {
			return err
		}
		slog.Info("csv written", "path", runCSV, "snapshots", len(res.Snapshots))
	}

	if runSave != "" {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.SaveRegime(runSave, cfg, res); err != nil {
			return err
		}
		slog.Info("regime saved", "name", runSave, "db", dbPath)
	}
	return nil
}

// runCompare simulates each scenario concurrently; runs are independent and
// share only the read-only catalog.
func runCompare(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	rows := make([]report.CompareRow, len(args))
	errs := make([]error, len(args))

	var wg sync.WaitGroup
	for i, path := range args {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			_, res, err := simulateFile(catalog, path)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
				return
			}
			name := filepath.Base(path)
			rows[i] = report.CompareRow{Name: name, Final: res.Final}
		}(i, path)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	fmt.Print(report.Compare(rows))
	return nil
}

func openStore() (*store.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	return store.Open(dbPath)
}

func runRegimeList(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	regimes, err := db.ListRegimes()
	if err != nil {
		return err
	}
	if len(regimes) == 0 {
		fmt.Println("no saved regimes")
		return nil
	}
	for _, r := range regimes {
		fmt.Printf("%-24s %s\n", r.Name, r.CreatedAt)
	}
	return nil
}

func runRegimeShow(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	cfg, res, err := db.LoadRegime(args[0])
	if err != nil {
		return err
	}
	fmt.Print(report.Text(cfg.Initial, res))
	return nil
}

func runRegimeDelete(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteRegime(args[0]); err != nil {
		return err
	}
	slog.Info("regime deleted", "name", args[0])
	return nil
}
