package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"ftpbot/internal/config"
	"ftpbot/internal/interfaces"
	"ftpbot/internal/models"
)

// Downloader fetches new remote files into a local directory and deletes each
// remote file once its local copy is complete.
type Downloader struct {
	session    interfaces.RemoteSession
	localPath  string
	remotePath string
}

func NewDownloader(session interfaces.RemoteSession, cfg config.DownloadConfig) *Downloader {
	return &Downloader{
		session:    session,
		localPath:  cfg.LocalPath,
		remotePath: cfg.RemotePath,
	}
}

func (d *Downloader) Run(ctx context.Context) (*models.PassReport, error) {
	return run(ctx, pass{
		direction:   models.DirectionDownload,
		source:      d.remotePath,
		destination: d.localPath,
		prepare:     d.prepare,
		list:        d.list,
		exists:      d.exists,
		transfer:    d.transfer,
		commit:      d.session.Delete,
	})
}

func (d *Downloader) prepare() (bool, error) {
	info, err := os.Stat(d.localPath)
	if err != nil {
		slog.Error("download directory is not accessible", "path", d.localPath, "error", err)
		return false, nil
	}
	if !info.IsDir() {
		slog.Error("download path is not a directory", "path", d.localPath)
		return false, nil
	}

	if err := d.session.ChangeDir(d.remotePath); err != nil {
		return false, err
	}
	return true, nil
}

func (d *Downloader) list() ([]models.FileEntry, error) {
	names, err := d.session.ListFiles("")
	if err != nil {
		return nil, err
	}

	files := make([]models.FileEntry, 0, len(names))
	for _, name := range names {
		if !safeName(name) {
			slog.Warn("skipping remote file with unsafe name", "path", d.remotePath, "file", name)
			continue
		}
		files = append(files, models.FileEntry{Name: name, Location: models.LocationRemote})
	}

	return files, nil
}

func (d *Downloader) exists(name string) (bool, error) {
	_, err := os.Lstat(filepath.Join(d.localPath, name))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: failed to check local %s: %w", models.ErrFilesystem, name, err)
	}
}

// transfer retrieves into a hidden temporary file and renames it into place
// only after the remote side confirmed the whole transfer.
func (d *Downloader) transfer(name string) (int64, error) {
	localFile := filepath.Join(d.localPath, name)

	tmp, err := os.CreateTemp(d.localPath, ".ftpbot-*.part")
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create temporary file for %s: %w", models.ErrFilesystem, name, err)
	}
	tmpName := tmp.Name()

	n, err := d.session.Retrieve(name, tmp)
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return n, err
	}

	if err := finishFile(tmp); err != nil {
		os.Remove(tmpName)
		return n, fmt.Errorf("%w: failed to write %s: %w", models.ErrFilesystem, localFile, err)
	}

	// A file may have appeared while the transfer was running.
	if _, err := os.Lstat(localFile); err == nil {
		os.Remove(tmpName)
		return n, fmt.Errorf("%w: %s appeared during transfer, keeping the existing file", models.ErrFilesystem, localFile)
	}

	if err := os.Rename(tmpName, localFile); err != nil {
		os.Remove(tmpName)
		return n, fmt.Errorf("%w: failed to move %s into place: %w", models.ErrFilesystem, localFile, err)
	}

	slog.Info("file downloaded", "file", name, "local", localFile)
	return n, nil
}

func finishFile(f *os.File) error {
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(0644); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func safeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
