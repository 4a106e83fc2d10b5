package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/cinematicwebworks/seokit/internal/model"
)

// FileName is the database file created inside the database directory.
const FileName = "seokit.db"

// storedTimeFormat is fixed-width so stored timestamps sort lexically.
const storedTimeFormat = "2006-01-02T15:04:05.000000000Z"

// ErrInvalidRun is returned when a run cannot be stored.
var ErrInvalidRun = errors.New("invalid audit run")

// HistoryDB stores audit runs in SQLite.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file, mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Path returns the database file path.
func (hdb *HistoryDB) Path() string {
	return hdb.dbPath
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- One row per audit invocation
	CREATE TABLE IF NOT EXISTS audit_runs (
		id TEXT PRIMARY KEY,
		base_url TEXT NOT NULL,
		started_at TEXT NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		pages INTEGER NOT NULL DEFAULT 0,
		successful INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0,
		avg_performance INTEGER NOT NULL DEFAULT 0,
		avg_accessibility INTEGER NOT NULL DEFAULT 0,
		avg_best_practices INTEGER NOT NULL DEFAULT 0,
		avg_seo INTEGER NOT NULL DEFAULT 0,
		run_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON audit_runs(started_at);

	-- Per-page scores for trend queries
	CREATE TABLE IF NOT EXISTS audit_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES audit_runs(id) ON DELETE CASCADE,
		page TEXT NOT NULL,
		url TEXT NOT NULL,
		succeeded INTEGER NOT NULL,
		performance INTEGER,
		accessibility INTEGER,
		best_practices INTEGER,
		seo INTEGER,
		error TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_results_page ON audit_results(page);
	CREATE INDEX IF NOT EXISTS idx_results_run ON audit_results(run_id);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveAuditRun stores run and its per-page results in one transaction.
func (hdb *HistoryDB) SaveAuditRun(ctx context.Context, run *model.AuditRun) error {
	if run == nil || run.ID == "" {
		return fmt.Errorf("%w: missing run ID", ErrInvalidRun)
	}

	runJSON, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to serialize audit run: %w", err)
	}

	tx, err := hdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	s := run.Summary
	_, err = tx.ExecContext(ctx, `
	INSERT INTO audit_runs (id, base_url, started_at, duration_ms, pages, successful, failed,
		avg_performance, avg_accessibility, avg_best_practices, avg_seo, run_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.BaseURL,
		run.StartedAt.UTC().Format(storedTimeFormat),
		run.Duration.Milliseconds(),
		s.Total,
		s.Successful,
		s.Failed,
		s.AvgPerformance,
		s.AvgAccessibility,
		s.AvgBestPractices,
		s.AvgSEO,
		string(runJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit run: %w", err)
	}

	for _, r := range run.Results {
		var perf, a11y, bp, seo sql.NullInt64
		if r.Succeeded() {
			perf = sql.NullInt64{Int64: int64(r.Scores.Performance), Valid: true}
			a11y = sql.NullInt64{Int64: int64(r.Scores.Accessibility), Valid: true}
			bp = sql.NullInt64{Int64: int64(r.Scores.BestPractices), Valid: true}
			seo = sql.NullInt64{Int64: int64(r.Scores.SEO), Valid: true}
		}
		_, err = tx.ExecContext(ctx, `
		INSERT INTO audit_results (run_id, page, url, succeeded, performance, accessibility, best_practices, seo, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			run.ID, r.Page, r.URL, r.Succeeded(), perf, a11y, bp, seo, r.Error,
		)
		if err != nil {
			return fmt.Errorf("failed to insert audit result for %s: %w", r.Page, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit audit run: %w", err)
	}
	return nil
}

// ListAuditRuns returns up to limit runs, newest first. A limit of 0 or
// less returns every run.
func (hdb *HistoryDB) ListAuditRuns(ctx context.Context, limit int) ([]*model.AuditRun, error) {
	query := `SELECT run_json FROM audit_runs ORDER BY started_at DESC, id`
	args := make([]any, 0, 1)
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit runs: %w", err)
	}
	defer rows.Close()

	runs := make([]*model.AuditRun, 0)
	for rows.Next() {
		var runJSON string
		if err := rows.Scan(&runJSON); err != nil {
			return nil, fmt.Errorf("failed to scan audit run: %w", err)
		}
		var run model.AuditRun
		if err := json.Unmarshal([]byte(runJSON), &run); err != nil {
			return nil, fmt.Errorf("failed to parse audit run: %w", err)
		}
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// GetAuditRun retrieves a run by ID. It returns nil when no run matches.
func (hdb *HistoryDB) GetAuditRun(ctx context.Context, id string) (*model.AuditRun, error) {
	var runJSON string
	err := hdb.db.QueryRowContext(ctx, `SELECT run_json FROM audit_runs WHERE id = ?`, id).Scan(&runJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audit run: %w", err)
	}

	var run model.AuditRun
	if err := json.Unmarshal([]byte(runJSON), &run); err != nil {
		return nil, fmt.Errorf("failed to parse audit run: %w", err)
	}
	return &run, nil
}

// PageScore is one page's result within a saved run.
type PageScore struct {
	RunID     string
	StartedAt time.Time
	Page      string
	Succeeded bool

	// Scores is nil when the page failed in that run.
	Scores *model.Scores
	Error  string
}

// PageHistory returns up to limit results for page, newest first.
func (hdb *HistoryDB) PageHistory(ctx context.Context, page string, limit int) ([]PageScore, error) {
	query := `
	SELECT r.run_id, a.started_at, r.page, r.succeeded, r.performance, r.accessibility, r.best_practices, r.seo, r.error
	FROM audit_results r
	JOIN audit_runs a ON a.id = r.run_id
	WHERE r.page = ?
	ORDER BY a.started_at DESC
	`
	args := []any{page}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query page history: %w", err)
	}
	defer rows.Close()

	out := make([]PageScore, 0)
	for rows.Next() {
		var ps PageScore
		var startedAt string
		var perf, a11y, bp, seo sql.NullInt64
		var errText sql.NullString
		if err := rows.Scan(&ps.RunID, &startedAt, &ps.Page, &ps.Succeeded,
			&perf, &a11y, &bp, &seo, &errText); err != nil {
			return nil, fmt.Errorf("failed to scan page history: %w", err)
		}
		ps.StartedAt = parseTimestamp(startedAt)
		ps.Error = errText.String
		if ps.Succeeded {
			ps.Scores = &model.Scores{
				Performance:   int(perf.Int64),
				Accessibility: int(a11y.Int64),
				BestPractices: int(bp.Int64),
				SEO:           int(seo.Int64),
			}
		}
		out = append(out, ps)
	}

	return out, rows.Err()
}

// DeleteRunsBefore removes runs started before cutoff and returns how many
// were deleted.
func (hdb *HistoryDB) DeleteRunsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ts := cutoff.UTC().Format(storedTimeFormat)

	tx, err := hdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM audit_results WHERE run_id IN (SELECT id FROM audit_runs WHERE started_at < ?)`, ts); err != nil {
		return 0, fmt.Errorf("failed to delete audit results: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM audit_runs WHERE started_at < ?`, ts)
	if err != nil {
		return 0, fmt.Errorf("failed to delete audit runs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit delete: %w", err)
	}
	return res.RowsAffected()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	storedTimeFormat,          // format written by this package
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
