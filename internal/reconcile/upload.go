package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"ftpbot/internal/config"
	"ftpbot/internal/interfaces"
	"ftpbot/internal/models"
)

// Uploader stores new local files on the server and moves each stored file
// into the archive subdirectory of its source directory.
type Uploader struct {
	session    interfaces.RemoteSession
	localPath  string
	remotePath string
	archiveDir string
}

func NewUploader(session interfaces.RemoteSession, cfg config.UploadConfig) *Uploader {
	archiveDir := cfg.ArchiveDir
	if archiveDir == "" {
		archiveDir = "archive"
	}

	return &Uploader{
		session:    session,
		localPath:  cfg.LocalPath,
		remotePath: cfg.RemotePath,
		archiveDir: archiveDir,
	}
}

func (u *Uploader) Run(ctx context.Context) (*models.PassReport, error) {
	return run(ctx, pass{
		direction:   models.DirectionUpload,
		source:      u.localPath,
		destination: u.remotePath,
		prepare:     u.prepare,
		list:        u.list,
		exists:      u.exists,
		transfer:    u.transfer,
		commit:      u.archive,
	})
}

func (u *Uploader) prepare() (bool, error) {
	info, err := os.Stat(u.localPath)
	if err != nil {
		slog.Error("upload directory is not accessible", "path", u.localPath, "error", err)
		return false, nil
	}
	if !info.IsDir() {
		slog.Error("upload path is not a directory", "path", u.localPath)
		return false, nil
	}
	return true, nil
}

// list returns regular files directly inside the upload directory, in
// directory-listing order. Symlinks count when they point at regular files.
func (u *Uploader) list() ([]models.FileEntry, error) {
	entries, err := os.ReadDir(u.localPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read upload directory %s: %w", models.ErrFilesystem, u.localPath, err)
	}

	var files []models.FileEntry
	for _, e := range entries {
		info, err := os.Stat(filepath.Join(u.localPath, e.Name()))
		if err != nil {
			slog.Warn("skipping unreadable entry", "path", u.localPath, "file", e.Name(), "error", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if e.Name() == u.archiveDir {
			slog.Warn("file shares the archive directory name, not uploading", "path", u.localPath, "file", e.Name())
			continue
		}
		files = append(files, models.FileEntry{Name: e.Name(), Location: models.LocationLocal})
	}

	if len(files) == 0 {
		slog.Debug("upload directory is empty", "path", u.localPath)
	}

	return files, nil
}

// exists re-enters the remote directory and re-reads its name list for
// every file, so the check always reflects the server's current state.
func (u *Uploader) exists(name string) (bool, error) {
	if err := u.session.ChangeDir(u.remotePath); err != nil {
		return false, err
	}
	return u.session.Exists(name)
}

func (u *Uploader) transfer(name string) (int64, error) {
	localFile := filepath.Join(u.localPath, name)

	f, err := os.Open(localFile)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to open %s: %w", models.ErrFilesystem, localFile, err)
	}
	defer f.Close()

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	if err := u.session.Store(name, f); err != nil {
		return 0, err
	}

	slog.Info("file uploaded", "file", localFile, "remote", u.remotePath+"/"+name)
	return size, nil
}

// archive moves an uploaded file to <localPath>/<archiveDir>/<name>,
// creating the archive directory on first use.
func (u *Uploader) archive(name string) error {
	archivePath := filepath.Join(u.localPath, u.archiveDir)

	info, err := os.Stat(archivePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.Mkdir(archivePath, 0755); err != nil {
			return fmt.Errorf("%w: failed to create archive directory %s: %w", models.ErrFilesystem, archivePath, err)
		}
		slog.Info("archive directory created", "path", archivePath)
	case err != nil:
		return fmt.Errorf("%w: failed to check archive directory %s: %w", models.ErrFilesystem, archivePath, err)
	case !info.IsDir():
		return fmt.Errorf("%w: archive path %s exists and is not a directory", models.ErrFilesystem, archivePath)
	}

	source := filepath.Join(u.localPath, name)
	destination := filepath.Join(archivePath, name)

	if err := os.Rename(source, destination); err != nil {
		return fmt.Errorf("%w: failed to archive %s (%s): %w", models.ErrFilesystem, source, describeFSError(err), err)
	}

	slog.Info("file archived", "file", source, "archive", destination)
	return nil
}

func describeFSError(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "file not found"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	default:
		return "move failed"
	}
}
