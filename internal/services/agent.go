package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ftpbot/internal/config"
	"ftpbot/internal/interfaces"
	"ftpbot/internal/models"
	"ftpbot/internal/reconcile"
)

// Agent runs the upload pass followed by the download pass over one remote
// session. Runs never overlap.
type Agent struct {
	config     *config.Config
	factory    interfaces.SessionFactory
	repository interfaces.RunRepository
	gatekeeper interfaces.Gatekeeper

	triggers chan models.Trigger

	runMu   sync.Mutex
	mu      sync.RWMutex
	lastRun *models.Run
}

// NewAgent wires an agent. repo and gatekeeper may be nil: without a
// repository no history is recorded, without a gatekeeper downloads are
// always allowed.
func NewAgent(cfg *config.Config, factory interfaces.SessionFactory, repo interfaces.RunRepository, gatekeeper interfaces.Gatekeeper) *Agent {
	return &Agent{
		config:     cfg,
		factory:    factory,
		repository: repo,
		gatekeeper: gatekeeper,
		triggers:   make(chan models.Trigger, 1),
	}
}

// RunOnce performs one complete run and returns it together with the first
// fatal error, if any.
func (a *Agent) RunOnce(ctx context.Context, trigger models.Trigger) (*models.Run, error) {
	a.runMu.Lock()
	defer a.runMu.Unlock()

	run := models.NewRun(trigger)
	a.recordStart(run)

	logger := slog.With("run_id", run.ID, "trigger", trigger)
	logger.Info("run started", "server", a.factory.Name())

	err := a.execute(ctx, run)
	if err != nil {
		run.MarkFailed(err.Error())
		logger.Error("run failed", "error", err, "duration", run.Duration())
	} else {
		run.MarkCompleted()
		logger.Info("run completed",
			"uploaded", run.Stats.Uploaded,
			"downloaded", run.Stats.Downloaded,
			"skipped", run.Stats.Skipped,
			"duration", run.Duration())
	}

	a.recordFinish(run)

	a.mu.Lock()
	a.lastRun = run
	a.mu.Unlock()

	return run, err
}

func (a *Agent) execute(ctx context.Context, run *models.Run) error {
	session, err := a.factory.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			slog.Warn("failed to close remote session", "error", err)
		}
	}()

	uploadReport, err := reconcile.NewUploader(session, a.config.Upload).Run(ctx)
	a.recordPass(run, uploadReport)
	if err != nil {
		return err
	}

	if a.gatekeeper != nil {
		decision := a.gatekeeper.CanDownload(a.config.Download.LocalPath)
		if !decision.Allowed {
			slog.Warn("download pass skipped", "reason", decision.Reason, "details", decision.Details)
			return nil
		}
	}

	downloadReport, err := reconcile.NewDownloader(session, a.config.Download).Run(ctx)
	a.recordPass(run, downloadReport)
	return err
}

// Start runs immediately and then on every tick and every queued trigger
// until ctx is done. A failed run is logged and the scheduler keeps going.
func (a *Agent) Start(ctx context.Context) error {
	interval := a.config.Schedule.Interval
	if interval <= 0 {
		return fmt.Errorf("%w: scheduled mode requires a positive schedule.interval", models.ErrConfig)
	}

	slog.Info("scheduler started", "interval", interval)
	a.runScheduled(ctx, models.TriggerStartup)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped")
			return nil
		case <-ticker.C:
			a.runScheduled(ctx, models.TriggerInterval)
		case trigger := <-a.triggers:
			a.runScheduled(ctx, trigger)
		}
	}
}

func (a *Agent) runScheduled(ctx context.Context, trigger models.Trigger) {
	if ctx.Err() != nil {
		return
	}
	if _, err := a.RunOnce(ctx, trigger); err != nil {
		slog.Warn("waiting for the next scheduled run", "interval", a.config.Schedule.Interval)
	}
}

// Trigger queues an extra run without blocking. It returns false when a
// run request is already pending.
func (a *Agent) Trigger(trigger models.Trigger) bool {
	select {
	case a.triggers <- trigger:
		slog.Debug("run requested", "trigger", trigger)
		return true
	default:
		return false
	}
}

func (a *Agent) LastRun() *models.Run {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastRun
}

// RecoverInterruptedRuns marks runs left in the running state by a previous
// process as failed.
func (a *Agent) RecoverInterruptedRuns() error {
	if a.repository == nil {
		return nil
	}

	runs, err := a.repository.GetRuns(models.RunFilter{
		Status: []models.RunStatus{models.RunStatusRunning},
	})
	if err != nil {
		return fmt.Errorf("failed to get running runs: %w", err)
	}

	if len(runs) == 0 {
		return nil
	}

	slog.Info("recovering interrupted runs", "count", len(runs))

	for _, run := range runs {
		run.MarkFailed("interrupted before completion")
		if err := a.repository.UpdateRun(run); err != nil {
			slog.Error("failed to recover run", "run_id", run.ID, "error", err)
		}
	}

	return nil
}

// History writes are best effort; a failing database never aborts a run.

func (a *Agent) recordStart(run *models.Run) {
	if a.repository == nil {
		return
	}
	if err := a.repository.CreateRun(run); err != nil {
		slog.Error("failed to record run", "error", err)
	}
}

func (a *Agent) recordPass(run *models.Run, report *models.PassReport) {
	start := len(run.Transfers)
	run.Apply(report)

	if a.repository == nil || run.ID == 0 {
		return
	}
	for i := start; i < len(run.Transfers); i++ {
		if err := a.repository.CreateTransfer(&run.Transfers[i]); err != nil {
			slog.Error("failed to record transfer", "run_id", run.ID, "file", run.Transfers[i].Name, "error", err)
		}
	}
}

func (a *Agent) recordFinish(run *models.Run) {
	if a.repository == nil || run.ID == 0 {
		return
	}
	if err := a.repository.UpdateRun(run); err != nil {
		slog.Error("failed to update run", "run_id", run.ID, "error", err)
		return
	}

	if retention := a.config.Database.Retention; retention > 0 {
		if _, err := a.repository.CleanupOldRuns(time.Now().Add(-retention)); err != nil {
			slog.Error("failed to prune run history", "error", err)
		}
	}
}
