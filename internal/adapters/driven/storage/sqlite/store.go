// Package sqlite persists scan history in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Nubicola/fortuna/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/Nubicola/fortuna/internal/core/domain"
	"github.com/Nubicola/fortuna/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RunStore = (*Store)(nil)

// Moments are stored as RFC3339 UTC strings so replayed runs format
// identically to the original output.
const momentFormat = time.RFC3339

// Store is a SQLite-backed run store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a run store at the specified data directory.
// If dataDir is empty, defaults to ~/.fortuna/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".fortuna", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveRun stores a run and its events in one transaction.
func (s *Store) SaveRun(ctx context.Context, run domain.Run, events []domain.ConjunctionEvent) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, latitude, longitude, start, days, orb_mode, house_system, event_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.UTC().Format(momentFormat),
		run.Request.Location.Latitude,
		run.Request.Location.Longitude,
		run.Request.Window.Start.UTC().Format(momentFormat),
		run.Request.Window.Days,
		string(run.Request.Orb),
		string(run.Request.System),
		run.EventCount,
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	for i, ev := range events {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO events (run_id, position, moment, sun_sign, moon_sign, fortuna_longitude, house, body, body_longitude)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			i,
			ev.Moment.UTC().Format(momentFormat),
			int(ev.SunSign),
			int(ev.MoonSign),
			ev.Fortuna.Longitude,
			ev.House,
			string(ev.Body),
			ev.BodyPlacement.Longitude,
		)
		if err != nil {
			return fmt.Errorf("inserting event %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns all saved runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]domain.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, latitude, longitude, start, days, orb_mode, house_system, event_count
		FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns one run by ID, or domain.ErrRunNotFound.
func (s *Store) GetRun(ctx context.Context, id string) (domain.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, latitude, longitude, start, days, orb_mode, house_system, event_count
		FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Run{}, domain.ErrRunNotFound
	}
	return run, err
}

// RunEvents returns a run's events in emission order.
func (s *Store) RunEvents(ctx context.Context, id string) ([]domain.ConjunctionEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT moment, sun_sign, moon_sign, fortuna_longitude, house, body, body_longitude
		FROM events WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []domain.ConjunctionEvent
	for rows.Next() {
		var (
			moment             string
			sunSign, moonSign  int
			fortunaLon, bodyLon float64
			house              int
			body               string
		)
		if err := rows.Scan(&moment, &sunSign, &moonSign, &fortunaLon, &house, &body, &bodyLon); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}

		t, err := time.Parse(momentFormat, moment)
		if err != nil {
			return nil, fmt.Errorf("parsing event moment: %w", err)
		}

		events = append(events, domain.ConjunctionEvent{
			Moment:        t,
			SunSign:       domain.Sign(sunSign),
			MoonSign:      domain.Sign(moonSign),
			Fortuna:       domain.PlacementOf(fortunaLon),
			House:         house,
			Body:          domain.Body(body),
			BodyPlacement: domain.PlacementOf(bodyLon),
		})
	}
	return events, rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(r rowScanner) (domain.Run, error) {
	var (
		run              domain.Run
		createdAt, start string
		orb, system      string
	)
	err := r.Scan(&run.ID, &createdAt,
		&run.Request.Location.Latitude, &run.Request.Location.Longitude,
		&start, &run.Request.Window.Days, &orb, &system, &run.EventCount)
	if err != nil {
		return domain.Run{}, err
	}

	run.CreatedAt, err = time.Parse(momentFormat, createdAt)
	if err != nil {
		return domain.Run{}, fmt.Errorf("parsing run created_at: %w", err)
	}
	run.Request.Window.Start, err = time.Parse(momentFormat, start)
	if err != nil {
		return domain.Run{}, fmt.Errorf("parsing run start: %w", err)
	}

	run.Request.Orb = domain.OrbMode(orb)
	run.Request.System = domain.HouseSystem(system)
	return run, nil
}

// migrate applies any pending SQL migrations, ordered by their numeric
// filename prefix.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("listing migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		version, err := strconv.Atoi(strings.SplitN(name, "_", 2)[0])
		if err != nil {
			return fmt.Errorf("migration %s: bad version prefix: %w", name, err)
		}
		if version <= current {
			continue
		}

		ddl, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(ddl)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}
