package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/trackerhq/tracker/internal/engine"
	"github.com/trackerhq/tracker/internal/prefs"
	"github.com/trackerhq/tracker/internal/store"
)

var (
	dbPath    string
	prefsPath string
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Habit and event tracker",
	Long: `Track habits recurring on a weekly schedule and one-off events,
organized into categories, with per-day completion marks and simple
statistics.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath(),
		"path to the tracker database")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", prefs.DefaultPath(),
		"path to the preferences file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(trackerCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(uncompleteCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(versionCmd)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "tracker.db")
	}
	return filepath.Join(home, ".local", "share", "tracker", "tracker.db")
}

// openService wires the store, preferences, and engine together. The
// returned close func must be called when the command finishes.
func openService() (*engine.Service, *prefs.Store, func(), error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, nil, fmt.Errorf("creating data directory %s: %w", dir, err)
		}
	}

	st, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}

	pf, err := prefs.Load(prefsPath)
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}

	if pf.FirstLaunch() {
		fmt.Println("Welcome! Create a category with `tracker category add`, then add trackers to it.")
		if err := pf.MarkLaunched(); err != nil {
			fmt.Fprintf(os.Stderr, "saving preferences: %v\n", err)
		}
	}

	svc := engine.NewService(st, pf, time.Now)
	closeFn := func() {
		if err := st.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing store: %v\n", err)
		}
	}
	return svc, pf, closeFn, nil
}

// parseDay parses a YYYY-MM-DD argument, defaulting to today when empty.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return day, nil
}
