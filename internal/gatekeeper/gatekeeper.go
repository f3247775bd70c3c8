// Package gatekeeper decides whether a download pass may write into its
// local directory.
package gatekeeper

import (
	"fmt"
	"log/slog"

	"ftpbot/internal/config"
	"ftpbot/internal/interfaces"

	"golang.org/x/sys/unix"
)

// Gatekeeper enforces the free-space floor of the download directory.
type Gatekeeper struct {
	minFreeBytes uint64
	statfs       func(path string, stat *unix.Statfs_t) error
}

func New(cfg config.DownloadConfig) *Gatekeeper {
	return &Gatekeeper{
		minFreeBytes: cfg.MinFreeBytes,
		statfs:       unix.Statfs,
	}
}

// CanDownload blocks a download pass when the filesystem holding localPath
// has less than the configured free space. A zero floor always allows, and
// so does a failed stat: the pass itself reports an unusable directory.
func (g *Gatekeeper) CanDownload(localPath string) interfaces.GateDecision {
	if g.minFreeBytes == 0 {
		return interfaces.GateDecision{
			Allowed: true,
			Reason:  "No free space limit configured",
		}
	}

	available, err := g.availableBytes(localPath)
	if err != nil {
		slog.Warn("failed to check free space, allowing download", "path", localPath, "error", err)
		return interfaces.GateDecision{
			Allowed: true,
			Reason:  "Unable to verify disk space",
		}
	}

	if available < g.minFreeBytes {
		return interfaces.GateDecision{
			Allowed: false,
			Reason:  "Not enough free disk space",
			Details: map[string]interface{}{
				"available_bytes": available,
				"min_free_bytes":  g.minFreeBytes,
			},
		}
	}

	return interfaces.GateDecision{
		Allowed: true,
		Reason:  "All checks passed",
		Details: map[string]interface{}{
			"available_bytes": available,
		},
	}
}

func (g *Gatekeeper) availableBytes(path string) (uint64, error) {
	var stat unix.Statfs_t
	if err := g.statfs(path, &stat); err != nil {
		return 0, fmt.Errorf("failed to stat filesystem: %w", err)
	}

	return stat.Bavail * uint64(stat.Bsize), nil
}
