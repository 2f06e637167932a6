package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nubicola/fortuna/internal/adapters/driven/config/file"
	"github.com/Nubicola/fortuna/internal/adapters/driven/storage/sqlite"
	"github.com/Nubicola/fortuna/internal/core/services"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scan runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Replay a saved run's events",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

// ensureHistoryService opens the SQLite history store unless a service was
// already injected.
func ensureHistoryService(cfg file.Config) error {
	if historyService != nil {
		return nil
	}
	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	historyService = services.NewHistoryService(store)
	return nil
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := ensureHistoryService(cfg); err != nil {
		return err
	}

	runs, err := historyService.List(context.Background())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		cmd.Println("No saved runs.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s  %d day(s) from %s  orb %s  houses %s  %d event(s)\n",
			run.ID,
			run.CreatedAt.UTC().Format("2006-01-02 15:04"),
			run.Request.Window.Days,
			run.Request.Window.Start.UTC().Format("2006-01-02 15:04"),
			run.Request.Orb,
			run.Request.System,
			run.EventCount,
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := ensureHistoryService(cfg); err != nil {
		return err
	}

	run, events, err := historyService.Show(context.Background(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Run %s, saved %s\n", run.ID, run.CreatedAt.UTC().Format(time.RFC3339))
	cmd.Printf("Location %.4f, %.4f; %d day(s) from %s; orb %s; houses %s\n",
		run.Request.Location.Latitude,
		run.Request.Location.Longitude,
		run.Request.Window.Days,
		run.Request.Window.Start.UTC().Format("2006-01-02 15:04"),
		run.Request.Orb,
		run.Request.System.Description(),
	)

	styled := styledOutput(cmd)
	for _, ev := range events {
		cmd.Println(formatEvent(ev, styled))
	}
	return nil
}
