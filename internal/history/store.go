// Package history persists solved equations in a SQLite database under
// the lineq data directory.
package history

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
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/katalvlaran/lineq/equation"
	"github.com/katalvlaran/lineq/internal/history/migrations"
	"github.com/katalvlaran/lineq/logger"
)

// ErrNotFound is returned when a requested entry does not exist.
var ErrNotFound = errors.New("history: entry not found")

// Entry is one persisted solve.
type Entry struct {
	// ID is a UUID, assigned on Save when empty.
	ID string `json:"id"`

	// Equation is the raw input text as the user typed it.
	Equation string `json:"equation"`

	// Outcome names the classification kind, e.g. "UniqueSolution".
	Outcome string `json:"outcome"`

	// Result is the canonical rendering shown to the user, e.g. "x=2".
	Result string `json:"result"`

	// X is the root; meaningful only when Outcome is "UniqueSolution".
	X int64 `json:"x"`

	// Variable is the letter the equation was solved in.
	Variable string `json:"variable"`

	// SolvedAt is when the solve happened, UTC.
	SolvedAt time.Time `json:"solved_at"`
}

// NewEntry builds an Entry from a solved equation.
func NewEntry(input string, sol equation.Solution) Entry {
	variable := sol.Variable
	if variable == 0 {
		variable = 'x'
	}
	return Entry{
		Equation: input,
		Outcome:  sol.Outcome.String(),
		Result:   sol.String(),
		X:        sol.X,
		Variable: string(variable),
		SolvedAt: time.Now().UTC(),
	}
}

// Store is a SQLite-backed history log.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a history store at the specified data directory.
// If dataDir is empty, defaults to ~/.lineq/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lineq")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err = s.migrate(migrations.FS); err != nil {
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

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err = row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	log := logger.Logger()
	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err = fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err = s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		log.Debug().Str("migration", name).Msg("history schema migration applied")
	}

	return nil
}

// Save appends one solve to the log, assigning a UUID when the entry
// has none. The solved-at timestamp defaults to now.
func (s *Store) Save(ctx context.Context, entry Entry) (Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.SolvedAt.IsZero() {
		entry.SolvedAt = time.Now().UTC()
	}

	var x any
	if entry.Outcome == equation.UniqueSolution.String() {
		x = entry.X
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO solves (id, equation, outcome, result, x, variable, solved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Equation, entry.Outcome, entry.Result, x, entry.Variable, entry.SolvedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("inserting solve: %w", err)
	}

	return entry, nil
}

// Get retrieves one entry by ID.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, equation, outcome, result, x, variable, solved_at
		FROM solves WHERE id = ?
	`, id)

	entry, err := scanEntry(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("scanning solve: %w", err)
	}
	return entry, nil
}

// List returns entries newest first. A limit <= 0 returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, equation, outcome, result, x, variable, solved_at
		FROM solves
		ORDER BY solved_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying solves: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning solve: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating solves: %w", err)
	}

	return entries, nil
}

// Count reports the number of stored entries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM solves")
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("counting solves: %w", err)
	}
	return n, nil
}

// Clear deletes every stored entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM solves"); err != nil {
		return fmt.Errorf("clearing solves: %w", err)
	}
	return nil
}

// scanEntry maps one row onto an Entry via the given scan function.
func scanEntry(scan func(dest ...any) error) (Entry, error) {
	var entry Entry
	var x sql.NullInt64
	var solvedAt sql.NullTime
	if err := scan(&entry.ID, &entry.Equation, &entry.Outcome, &entry.Result,
		&x, &entry.Variable, &solvedAt); err != nil {
		return Entry{}, err
	}

	entry.X = x.Int64
	if solvedAt.Valid {
		entry.SolvedAt = solvedAt.Time
	}
	return entry, nil
}
