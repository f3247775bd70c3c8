package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"ftpbot/internal/config"
	"ftpbot/internal/interfaces"
	"ftpbot/internal/models"

	"github.com/fsnotify/fsnotify"
)

// UploadWatcher requests a run once the upload directory has been quiet for
// the debounce period after a file was created or written.
type UploadWatcher struct {
	path       string
	archiveDir string
	debounce   time.Duration
	agent      interfaces.Agent
}

func NewUploadWatcher(cfg *config.Config, agent interfaces.Agent) *UploadWatcher {
	return &UploadWatcher{
		path:       cfg.Upload.LocalPath,
		archiveDir: cfg.Upload.ArchiveDir,
		debounce:   cfg.Schedule.WatchDebounce,
		agent:      agent,
	}
}

// Run blocks until ctx is done. It fails only when the watch cannot be set up.
func (w *UploadWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create upload watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.path); err != nil {
		return fmt.Errorf("failed to watch upload directory %s: %w", w.path, err)
	}

	slog.Info("watching upload directory", "path", w.path, "debounce", w.debounce)

	var quiet <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if filepath.Base(event.Name) == w.archiveDir {
				continue
			}
			slog.Debug("upload directory changed", "file", event.Name, "op", event.Op.String())
			quiet = time.After(w.debounce)

		case <-quiet:
			quiet = nil
			if w.agent.Trigger(models.TriggerWatch) {
				slog.Info("run triggered by new upload files", "path", w.path)
			} else {
				slog.Debug("run already pending", "path", w.path)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("upload watcher error", "error", err)
		}
	}
}
