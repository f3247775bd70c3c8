package testutil

import (
	"time"

	"ftpbot/internal/models"
)

// CreateTestRun creates a finished test run with default values
func CreateTestRun(overrides ...func(*models.Run)) *models.Run {
	started := time.Now().Add(-time.Minute)
	completed := time.Now()

	run := &models.Run{
		Trigger:     models.TriggerInterval,
		Status:      models.RunStatusCompleted,
		StartedAt:   &started,
		CompletedAt: &completed,
		Stats: models.RunStats{
			Uploaded:      1,
			BytesUploaded: 11,
		},
	}

	for _, override := range overrides {
		override(run)
	}

	return run
}
