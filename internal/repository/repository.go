package repository

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ftpbot/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("not found")

var sortColumns = map[string]string{
	"":             "created_at",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
	"started_at":   "started_at",
	"completed_at": "completed_at",
	"status":       "status",
	"id":           "id",
}

type Repository struct {
	db *sql.DB
}

func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_journal_mode=WAL&_timeout=5000&_cache_size=2000&_foreign_keys=on", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
	}
	db.SetConnMaxLifetime(time.Hour)

	repo := &Repository{db: db}

	if err := repo.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return repo, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := r.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// Run operations
func (r *Repository) CreateRun(run *models.Run) error {
	query := `
		INSERT INTO runs (triggered_by, status, error_message, stats, created_at, updated_at, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = now
	}
	if run.UpdatedAt.IsZero() {
		run.UpdatedAt = now
	}

	result, err := r.db.Exec(query,
		run.Trigger, run.Status, run.ErrorMessage, run.Stats,
		run.CreatedAt, run.UpdatedAt, run.StartedAt, run.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get run ID: %w", err)
	}

	run.ID = id
	return nil
}

func (r *Repository) UpdateRun(run *models.Run) error {
	query := `
		UPDATE runs SET
			status = ?, error_message = ?, stats = ?,
			updated_at = ?, started_at = ?, completed_at = ?
		WHERE id = ?
	`

	run.UpdatedAt = time.Now()
	result, err := r.db.Exec(query,
		run.Status, run.ErrorMessage, run.Stats,
		run.UpdatedAt, run.StartedAt, run.CompletedAt, run.ID)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("run %d %w", run.ID, ErrNotFound)
	}

	return nil
}

const runColumns = `id, triggered_by, status, error_message, stats, created_at, updated_at, started_at, completed_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*models.Run, error) {
	var run models.Run
	var errorMessage sql.NullString
	var startedAt, completedAt sql.NullTime

	err := s.Scan(&run.ID, &run.Trigger, &run.Status, &errorMessage, &run.Stats,
		&run.CreatedAt, &run.UpdatedAt, &startedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	if errorMessage.Valid {
		run.ErrorMessage = errorMessage.String
	}
	if startedAt.Valid {
		run.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}

	return &run, nil
}

// GetRun returns a run together with its transfer records.
func (r *Repository) GetRun(id int64) (*models.Run, error) {
	row := r.db.QueryRow("SELECT "+runColumns+" FROM runs WHERE id = ?", id)

	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run %d %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	transfers, err := r.GetTransfers(id)
	if err != nil {
		return nil, err
	}
	run.Transfers = transfers

	return run, nil
}

func (r *Repository) GetRuns(filter models.RunFilter) ([]*models.Run, error) {
	query := "SELECT " + runColumns + " FROM runs"

	var conditions []string
	var args []interface{}

	if len(filter.Status) > 0 {
		placeholders := strings.Repeat("?,", len(filter.Status))
		placeholders = placeholders[:len(placeholders)-1]
		conditions = append(conditions, fmt.Sprintf("status IN (%s)", placeholders))
		for _, status := range filter.Status {
			args = append(args, status)
		}
	}

	if filter.Trigger != "" {
		conditions = append(conditions, "triggered_by = ?")
		args = append(args, filter.Trigger)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	sortBy, ok := sortColumns[filter.SortBy]
	if !ok {
		return nil, fmt.Errorf("unsupported sort column %q", filter.SortBy)
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, id %s", sortBy, sortOrder, sortOrder)

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	} else if filter.Offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

func (r *Repository) GetRunSummary() (*models.RunSummary, error) {
	query := `
		SELECT
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN status = 'running' THEN 1 ELSE 0 END), 0) as running,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) as completed,
			COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0) as failed,
			COALESCE(SUM(JSON_EXTRACT(stats, '$.uploaded')), 0) as uploaded,
			COALESCE(SUM(JSON_EXTRACT(stats, '$.downloaded')), 0) as downloaded,
			COALESCE(SUM(JSON_EXTRACT(stats, '$.skipped')), 0) as skipped,
			COALESCE(SUM(JSON_EXTRACT(stats, '$.bytes_uploaded')), 0) as bytes_uploaded,
			COALESCE(SUM(JSON_EXTRACT(stats, '$.bytes_downloaded')), 0) as bytes_downloaded
		FROM runs
	`

	var summary models.RunSummary
	err := r.db.QueryRow(query).Scan(
		&summary.TotalRuns, &summary.RunningRuns, &summary.CompletedRuns, &summary.FailedRuns,
		&summary.FilesUploaded, &summary.FilesDownloaded, &summary.FilesSkipped,
		&summary.BytesUploaded, &summary.BytesDownloaded)
	if err != nil {
		return nil, fmt.Errorf("failed to get run summary: %w", err)
	}

	return &summary, nil
}

// Transfer operations
func (r *Repository) CreateTransfer(record *models.TransferRecord) error {
	query := `
		INSERT INTO transfers (run_id, direction, name, outcome, bytes, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	result, err := r.db.Exec(query,
		record.RunID, record.Direction, record.Name, record.Outcome,
		record.Bytes, record.ErrorMessage, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transfer record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get transfer ID: %w", err)
	}

	record.ID = id
	return nil
}

func (r *Repository) GetTransfers(runID int64) ([]models.TransferRecord, error) {
	query := `
		SELECT id, run_id, direction, name, outcome, bytes, error_message, created_at
		FROM transfers WHERE run_id = ? ORDER BY id ASC
	`

	rows, err := r.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	var records []models.TransferRecord
	for rows.Next() {
		var record models.TransferRecord
		var errorMessage sql.NullString

		err := rows.Scan(&record.ID, &record.RunID, &record.Direction, &record.Name,
			&record.Outcome, &record.Bytes, &errorMessage, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer: %w", err)
		}

		if errorMessage.Valid {
			record.ErrorMessage = errorMessage.String
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfers: %w", err)
	}

	return records, nil
}

// Cleanup operations

// CleanupOldRuns deletes finished runs, and their transfers, that completed
// before the given time. Running runs are never removed.
func (r *Repository) CleanupOldRuns(before time.Time) (int, error) {
	query := `
		DELETE FROM runs
		WHERE status IN ('completed', 'failed') AND completed_at < ?
	`

	result, err := r.db.Exec(query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old runs: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	slog.Info("cleaned up old runs", "count", rowsAffected)
	return int(rowsAffected), nil
}
