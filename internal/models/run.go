package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Trigger records what started a run.
type Trigger string

const (
	TriggerStartup  Trigger = "startup"
	TriggerInterval Trigger = "interval"
	TriggerWatch    Trigger = "watch"
	TriggerAPI      Trigger = "api"
)

type Run struct {
	ID           int64            `json:"id" db:"id"`
	Trigger      Trigger          `json:"trigger" db:"trigger"`
	Status       RunStatus        `json:"status" db:"status"`
	ErrorMessage string           `json:"error_message,omitempty" db:"error_message"`
	Stats        RunStats         `json:"stats" db:"stats"`
	Transfers    []TransferRecord `json:"transfers,omitempty"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at" db:"updated_at"`
	StartedAt    *time.Time       `json:"started_at,omitempty" db:"started_at"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty" db:"completed_at"`
}

type RunStats struct {
	Uploaded        int   `json:"uploaded"`
	Downloaded      int   `json:"downloaded"`
	Skipped         int   `json:"skipped"`
	BytesUploaded   int64 `json:"bytes_uploaded"`
	BytesDownloaded int64 `json:"bytes_downloaded"`
}

// Database value methods for custom types
func (rs RunStats) Value() (driver.Value, error) {
	return json.Marshal(rs)
}

func (rs *RunStats) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into RunStats", value)
	}

	return json.Unmarshal(bytes, rs)
}

func NewRun(trigger Trigger) *Run {
	now := time.Now()
	return &Run{
		Trigger:   trigger,
		Status:    RunStatusRunning,
		CreatedAt: now,
		UpdatedAt: now,
		StartedAt: &now,
	}
}

// Helper methods
func (r *Run) IsActive() bool {
	return r.Status == RunStatusRunning
}

func (r *Run) IsCompleted() bool {
	return r.Status == RunStatusCompleted || r.Status == RunStatusFailed
}

// Apply folds a finished pass into the run's counters and transfer list.
func (r *Run) Apply(report *PassReport) {
	if report == nil {
		return
	}

	for _, record := range report.Records {
		record.RunID = r.ID
		r.Transfers = append(r.Transfers, record)
	}

	switch report.Direction {
	case DirectionUpload:
		r.Stats.Uploaded += report.Count(OutcomeSucceeded)
		r.Stats.BytesUploaded += report.Bytes()
	case DirectionDownload:
		r.Stats.Downloaded += report.Count(OutcomeSucceeded)
		r.Stats.BytesDownloaded += report.Bytes()
	}
	r.Stats.Skipped += report.Count(OutcomeSkipped)
	r.UpdatedAt = time.Now()
}

func (r *Run) MarkCompleted() {
	now := time.Now()
	r.Status = RunStatusCompleted
	r.CompletedAt = &now
	r.UpdatedAt = now
}

func (r *Run) MarkFailed(errorMsg string) {
	now := time.Now()
	r.Status = RunStatusFailed
	r.ErrorMessage = errorMsg
	r.CompletedAt = &now
	r.UpdatedAt = now
}

func (r *Run) Duration() time.Duration {
	if r.StartedAt == nil {
		return 0
	}
	if r.CompletedAt == nil {
		return time.Since(*r.StartedAt)
	}
	return r.CompletedAt.Sub(*r.StartedAt)
}

// RunFilter represents filtering options for run history queries
type RunFilter struct {
	Status    []RunStatus `json:"status,omitempty"`
	Trigger   Trigger     `json:"trigger,omitempty"`
	Limit     int         `json:"limit,omitempty"`
	Offset    int         `json:"offset,omitempty"`
	SortBy    string      `json:"sort_by,omitempty"`
	SortOrder string      `json:"sort_order,omitempty"`
}

// RunSummary represents aggregated run statistics
type RunSummary struct {
	TotalRuns       int   `json:"total_runs"`
	RunningRuns     int   `json:"running_runs"`
	CompletedRuns   int   `json:"completed_runs"`
	FailedRuns      int   `json:"failed_runs"`
	FilesUploaded   int   `json:"files_uploaded"`
	FilesDownloaded int   `json:"files_downloaded"`
	FilesSkipped    int   `json:"files_skipped"`
	BytesUploaded   int64 `json:"bytes_uploaded"`
	BytesDownloaded int64 `json:"bytes_downloaded"`
}
