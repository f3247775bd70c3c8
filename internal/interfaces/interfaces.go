package interfaces

import (
	"context"
	"io"
	"time"

	"ftpbot/internal/models"
)

// RemoteSession is an authenticated connection to the remote server. Names
// passed to Exists, Store, Retrieve and Delete are relative to the directory
// entered by the last successful ChangeDir.
type RemoteSession interface {
	// ChangeDir confirms the session is alive, moves to the server root and
	// then into path. Both failures wrap models.ErrConnectivity.
	ChangeDir(path string) error
	// ListFiles returns the names of regular files in path ("" for the
	// current directory). Directories and links are excluded.
	ListFiles(path string) ([]string, error)
	Exists(name string) (bool, error)
	Store(name string, r io.Reader) error
	Retrieve(name string, w io.Writer) (int64, error)
	Delete(name string) error
	Close() error
}

// SessionFactory opens remote sessions for one configured server.
type SessionFactory interface {
	Connect(ctx context.Context) (RemoteSession, error)
	Name() string
}

// RunRepository provides database access for run history
type RunRepository interface {
	CreateRun(run *models.Run) error
	UpdateRun(run *models.Run) error
	GetRun(id int64) (*models.Run, error)
	GetRuns(filter models.RunFilter) ([]*models.Run, error)
	CreateTransfer(record *models.TransferRecord) error
	GetRunSummary() (*models.RunSummary, error)
	CleanupOldRuns(before time.Time) (int, error)
}

// GateDecision represents whether an operation is allowed
type GateDecision struct {
	Allowed bool                   `json:"allowed"`
	Reason  string                 `json:"reason,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Gatekeeper decides whether a download pass may write into a directory.
type Gatekeeper interface {
	CanDownload(localPath string) GateDecision
}

// Agent runs reconciliation passes and accepts extra run requests.
type Agent interface {
	RunOnce(ctx context.Context, trigger models.Trigger) (*models.Run, error)
	Trigger(trigger models.Trigger) bool
	LastRun() *models.Run
}
