package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nubicola/fortuna/internal/adapters/driven/config/file"
	"github.com/Nubicola/fortuna/internal/adapters/driven/ephemeris/meeus"
	"github.com/Nubicola/fortuna/internal/adapters/driven/ephemeris/memory"
	"github.com/Nubicola/fortuna/internal/core/domain"
	"github.com/Nubicola/fortuna/internal/core/ports/driven"
	"github.com/Nubicola/fortuna/internal/core/services"
	"github.com/Nubicola/fortuna/internal/logger"
)

const (
	dateLayout  = "2006-01-02"
	timeLayout  = "15:04"
	startLayout = dateLayout + " " + timeLayout
)

var (
	scanLat       float64
	scanLon       float64
	scanStartDate string
	scanStartTime string
	scanDuration  int
	scanExact     bool
	scanSystem    string
	scanEphePath  string
	scanJSON      bool
	scanSave      bool
	scanDemo      bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a time window for Part of Fortune conjunctions",
	Long: `Walks the window at one-minute resolution and prints one line per
minute at which a reference body lies within orb of the Part of Fortune.
The wide orb is 6 degrees; --exact narrows it to 1 degree.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Float64Var(&scanLat, "lat", 0, "latitude in signed degrees, north positive (default from config)")
	scanCmd.Flags().Float64Var(&scanLon, "lon", 0, "longitude in signed degrees, east positive (default from config)")
	scanCmd.Flags().StringVar(&scanStartDate, "start-date", "", "start date, YYYY-MM-DD (default today, UTC)")
	scanCmd.Flags().StringVar(&scanStartTime, "start-time", "00:00", "start time, HH:MM, UTC")
	scanCmd.Flags().IntVar(&scanDuration, "duration", 1, "scan duration in whole days")
	scanCmd.Flags().BoolVar(&scanExact, "exact", false, "only exact conjunctions (orb 1 degree instead of 6)")
	scanCmd.Flags().StringVar(&scanSystem, "house-system", "", "house system code: W, E or O (default from config)")
	scanCmd.Flags().StringVar(&scanEphePath, "ephe-path", "", "VSOP87 data directory (default from config)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output events as JSON, one object per line")
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "save the run to the history database")
	scanCmd.Flags().BoolVar(&scanDemo, "demo", false, "use the deterministic built-in ephemeris instead of data files")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req, err := buildRequest(cmd, cfg)
	if err != nil {
		return err
	}

	if scanService == nil {
		provider, err := buildProvider(cfg, req)
		if err != nil {
			return err
		}
		scanService = services.NewScanService(provider)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	styled := styledOutput(cmd)

	var saved []domain.ConjunctionEvent
	count, err := scanService.Scan(ctx, req, func(ev domain.ConjunctionEvent) error {
		if scanSave {
			saved = append(saved, ev)
		}
		return printEvent(cmd, ev, styled)
	})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if count == 0 && !scanJSON {
		cmd.Println("No conjunctions found.")
	}

	if scanSave {
		if err := ensureHistoryService(cfg); err != nil {
			return err
		}
		run, err := historyService.Save(ctx, req, saved)
		if err != nil {
			return err
		}
		cmd.Printf("Saved run %s (%d events)\n", run.ID, run.EventCount)
	}
	return nil
}

// buildRequest assembles the scan request from flags, falling back to the
// configuration for location and house system.
func buildRequest(cmd *cobra.Command, cfg file.Config) (domain.ScanRequest, error) {
	lat, lon := cfg.Latitude, cfg.Longitude
	if cmd.Flags().Changed("lat") {
		lat = scanLat
	}
	if cmd.Flags().Changed("lon") {
		lon = scanLon
	}

	system := cfg.HouseSystem
	if scanSystem != "" {
		system = scanSystem
	}

	date := scanStartDate
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	}
	start, err := time.ParseInLocation(startLayout, date+" "+scanStartTime, time.UTC)
	if err != nil {
		return domain.ScanRequest{}, fmt.Errorf("parsing start %q %q: %w", date, scanStartTime, err)
	}

	orb := domain.OrbWide
	if scanExact {
		orb = domain.OrbExact
	}

	return domain.ScanRequest{
		Location: domain.Location{Latitude: lat, Longitude: lon},
		Window:   domain.Window{Start: start, Days: scanDuration},
		Orb:      orb,
		System:   domain.HouseSystem(system),
	}.Normalized(), nil
}

// buildProvider picks the ephemeris: the VSOP87-backed one by default, the
// deterministic in-memory one under --demo.
func buildProvider(cfg file.Config, req domain.ScanRequest) (driven.EphemerisProvider, error) {
	if scanDemo {
		logger.Info("Using deterministic demo ephemeris")
		return memory.NewProvider(req.Window.Start), nil
	}

	path := cfg.EphemerisPath
	if scanEphePath != "" {
		path = scanEphePath
	}
	provider, err := meeus.NewProvider(path)
	if err != nil {
		return nil, fmt.Errorf("ephemeris: %w", err)
	}
	return provider, nil
}

// eventJSON is the wire form of an event under --json.
type eventJSON struct {
	Moment        string  `json:"moment"`
	SunSign       string  `json:"sun_sign"`
	MoonSign      string  `json:"moon_sign"`
	FortunaDegree float64 `json:"fortuna_degree"`
	FortunaSign   string  `json:"fortuna_sign"`
	House         int     `json:"house"`
	Body          string  `json:"body"`
	BodyDegree    float64 `json:"body_degree"`
	BodySign      string  `json:"body_sign"`
}

func printEvent(cmd *cobra.Command, ev domain.ConjunctionEvent, styled bool) error {
	if !scanJSON {
		cmd.Println(formatEvent(ev, styled))
		return nil
	}

	data, err := json.Marshal(eventJSON{
		Moment:        ev.Moment.UTC().Format(time.RFC3339),
		SunSign:       ev.SunSign.String(),
		MoonSign:      ev.MoonSign.String(),
		FortunaDegree: ev.Fortuna.Degree,
		FortunaSign:   ev.Fortuna.Sign.String(),
		House:         ev.House,
		Body:          ev.Body.String(),
		BodyDegree:    ev.BodyPlacement.Degree,
		BodySign:      ev.BodyPlacement.Sign.String(),
	})
	if err != nil {
		return fmt.Errorf("marshalling event: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
