package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRun(t *testing.T) {
	run := NewRun(TriggerStartup)

	assert.Equal(t, TriggerStartup, run.Trigger)
	assert.Equal(t, RunStatusRunning, run.Status)
	assert.NotNil(t, run.StartedAt)
	assert.Nil(t, run.CompletedAt)
	assert.True(t, run.IsActive())
	assert.False(t, run.IsCompleted())
}

func TestRun_Apply(t *testing.T) {
	run := NewRun(TriggerInterval)
	run.ID = 7

	upload := NewPassReport(DirectionUpload, "/outbox", "remote/files")
	upload.Add("a.txt", OutcomeSkipped, 0, nil)
	upload.Add("b.txt", OutcomeSucceeded, 128, nil)

	download := NewPassReport(DirectionDownload, "local", "/inbox")
	download.Add("c.txt", OutcomeSkipped, 0, nil)
	download.Add("d.txt", OutcomeSucceeded, 64, nil)
	download.Add("e.txt", OutcomeSucceeded, 32, nil)

	run.Apply(upload)
	run.Apply(download)
	run.Apply(nil)

	assert.Equal(t, 1, run.Stats.Uploaded)
	assert.Equal(t, 2, run.Stats.Downloaded)
	assert.Equal(t, 2, run.Stats.Skipped)
	assert.Equal(t, int64(128), run.Stats.BytesUploaded)
	assert.Equal(t, int64(96), run.Stats.BytesDownloaded)

	require.Len(t, run.Transfers, 5)
	for _, record := range run.Transfers {
		assert.Equal(t, int64(7), record.RunID)
	}
	assert.Equal(t, DirectionUpload, run.Transfers[0].Direction)
	assert.Equal(t, "e.txt", run.Transfers[4].Name)
}

func TestRun_MarkCompleted(t *testing.T) {
	run := NewRun(TriggerAPI)
	run.MarkCompleted()

	assert.Equal(t, RunStatusCompleted, run.Status)
	assert.NotNil(t, run.CompletedAt)
	assert.True(t, run.IsCompleted())
	assert.False(t, run.IsActive())
	assert.GreaterOrEqual(t, run.Duration(), time.Duration(0))
}

func TestRun_MarkFailed(t *testing.T) {
	run := NewRun(TriggerWatch)
	run.MarkFailed("connectivity error: cwd failed")

	assert.Equal(t, RunStatusFailed, run.Status)
	assert.Equal(t, "connectivity error: cwd failed", run.ErrorMessage)
	assert.NotNil(t, run.CompletedAt)
	assert.True(t, run.IsCompleted())
}

func TestRunStats_ValueScan(t *testing.T) {
	stats := RunStats{Uploaded: 3, Downloaded: 2, Skipped: 1, BytesUploaded: 10, BytesDownloaded: 20}

	value, err := stats.Value()
	require.NoError(t, err)

	var fromBytes RunStats
	require.NoError(t, fromBytes.Scan(value))
	assert.Equal(t, stats, fromBytes)

	var fromString RunStats
	require.NoError(t, fromString.Scan(string(value.([]byte))))
	assert.Equal(t, stats, fromString)

	var fromNil RunStats
	assert.NoError(t, fromNil.Scan(nil))

	var bad RunStats
	err = bad.Scan(42)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot scan int into RunStats")
}

func TestPassReport_Counters(t *testing.T) {
	report := NewPassReport(DirectionUpload, "/outbox", "remote")
	report.Add("a.txt", OutcomeSkipped, 0, nil)
	report.Add("b.txt", OutcomeSucceeded, 10, nil)
	failed := report.Add("c.txt", OutcomeFailed, 0, errors.New("boom"))

	assert.Equal(t, "boom", failed.ErrorMessage)
	assert.Equal(t, 1, report.Count(OutcomeSkipped))
	assert.Equal(t, 1, report.Count(OutcomeSucceeded))
	assert.Equal(t, 1, report.Count(OutcomeFailed))
	assert.Equal(t, []string{"b.txt"}, report.Names(OutcomeSucceeded))
	assert.Equal(t, int64(10), report.Bytes())
}
