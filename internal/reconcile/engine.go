// Package reconcile brings a destination directory up to date with a source
// directory, one file at a time, and commits each transfer (archive or
// delete) only after it has fully succeeded.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"ftpbot/internal/models"
)

// pass holds the direction-specific steps of a reconciliation pass. The
// engine drives every file through
//
//	CANDIDATE -> SKIPPED
//	CANDIDATE -> TRANSFERRING -> COMMITTED
//	CANDIDATE -> TRANSFERRING -> FATAL_ABORT
//
// and stops at the first error.
type pass struct {
	direction   models.Direction
	source      string
	destination string

	// prepare reports whether the pass has anything to do. A false result
	// with a nil error is a clean no-op.
	prepare func() (bool, error)
	// list returns the source side's candidates in processing order.
	list func() ([]models.FileEntry, error)
	// exists reports a name collision at the destination.
	exists func(name string) (bool, error)
	// transfer copies one file and returns the bytes moved.
	transfer func(name string) (int64, error)
	// commit finalizes a successful transfer.
	commit func(name string) error
}

func run(ctx context.Context, p pass) (*models.PassReport, error) {
	report := models.NewPassReport(p.direction, p.source, p.destination)
	logger := slog.With("direction", p.direction, "source", p.source, "destination", p.destination)

	ready, err := p.prepare()
	if err != nil {
		return report, err
	}
	if !ready {
		return report, nil
	}

	entries, err := p.list()
	if err != nil {
		return report, err
	}
	if len(entries) == 0 {
		logger.Debug("nothing to transfer")
		return report, nil
	}

	logger.Info("reconciliation pass started", "candidates", len(entries), "location", entries[0].Location)

	for _, entry := range entries {
		name := entry.Name
		if err := ctx.Err(); err != nil {
			logger.Warn("reconciliation pass interrupted", "file", name, "error", err)
			return report, fmt.Errorf("%s pass interrupted before %s: %w", p.direction, name, err)
		}

		exists, err := p.exists(name)
		if err != nil {
			report.Add(name, models.OutcomeFailed, 0, err)
			logger.Error("failed to check destination", "file", name, "error", err)
			return report, err
		}
		if exists {
			report.Add(name, models.OutcomeSkipped, 0, nil)
			logger.Warn("file already exists at destination, skipping", "file", name)
			continue
		}

		n, err := p.transfer(name)
		if err != nil {
			report.Add(name, models.OutcomeFailed, n, err)
			logger.Error("transfer failed", "file", name, "error", err)
			return report, err
		}

		if err := p.commit(name); err != nil {
			report.Add(name, models.OutcomeFailed, n, err)
			logger.Error("failed to commit transfer", "file", name, "error", err)
			return report, err
		}

		report.Add(name, models.OutcomeSucceeded, n, nil)
		logger.Info("file transferred", "file", name, "bytes", n)
	}

	logger.Info("reconciliation pass finished",
		"transferred", report.Count(models.OutcomeSucceeded),
		"skipped", report.Count(models.OutcomeSkipped))

	return report, nil
}
