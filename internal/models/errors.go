package models

import "errors"

// Error kinds. Callers wrap them together with the underlying cause, e.g.
// fmt.Errorf("%w: failed to store %s: %w", ErrTransfer, name, err), so both
// the kind and the cause are reachable through errors.Is.
var (
	// ErrConfig marks a missing or invalid configuration file.
	ErrConfig = errors.New("config error")

	// ErrConnectivity marks a dead session, a failed connect or login, or a
	// remote directory that cannot be entered.
	ErrConnectivity = errors.New("connectivity error")

	// ErrTransfer marks a failed store, retrieve or remote delete.
	ErrTransfer = errors.New("transfer error")

	// ErrFilesystem marks a local filesystem failure while reading, writing
	// or archiving a file.
	ErrFilesystem = errors.New("filesystem error")
)
