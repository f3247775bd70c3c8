package reconcile

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"ftpbot/internal/config"
	"ftpbot/internal/mocks"
	"ftpbot/internal/models"
	"ftpbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const remoteUploadPath = "remote/files"

func newTestUploader(t *testing.T, localPath string) (*Uploader, *mocks.MockRemoteSession) {
	t.Helper()
	session := mocks.NewMockRemoteSession(t)
	uploader := NewUploader(session, config.UploadConfig{
		LocalPath:  localPath,
		RemotePath: remoteUploadPath,
		ArchiveDir: "archive",
	})
	return uploader, session
}

func TestUploader_SkipsExistingAndArchivesUploaded(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"a.txt": "already remote",
		"b.txt": "new content",
	})
	uploader, session := newTestUploader(t, dir)

	stored := map[string]string{}

	session.EXPECT().ChangeDir(remoteUploadPath).Return(nil).Times(2)
	session.EXPECT().Exists("a.txt").Return(true, nil).Once()
	session.EXPECT().Exists("b.txt").Return(false, nil).Once()
	session.EXPECT().
		Store("b.txt", mock.Anything).
		RunAndReturn(func(name string, r io.Reader) error {
			data, err := io.ReadAll(r)
			stored[name] = string(data)
			return err
		}).
		Once()

	report, err := uploader.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt"}, report.Names(models.OutcomeSkipped))
	assert.Equal(t, []string{"b.txt"}, report.Names(models.OutcomeSucceeded))
	assert.Equal(t, int64(len("new content")), report.Bytes())
	assert.Equal(t, map[string]string{"b.txt": "new content"}, stored)

	// a.txt stays in the source directory and is not archived
	assert.FileExists(t, filepath.Join(dir, "a.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "archive", "a.txt"))

	// b.txt moved into the archive
	assert.NoFileExists(t, filepath.Join(dir, "b.txt"))
	testutil.AssertFileContent(t, filepath.Join(dir, "archive", "b.txt"), "new content")
}

func TestUploader_RerunIsIdempotent(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"a.txt": "x"})
	uploader, session := newTestUploader(t, dir)

	session.EXPECT().ChangeDir(remoteUploadPath).Return(nil)
	session.EXPECT().Exists("a.txt").Return(true, nil)

	for i := 0; i < 2; i++ {
		report, err := uploader.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.Count(models.OutcomeSkipped))
		assert.Equal(t, 0, report.Count(models.OutcomeSucceeded))
	}

	session.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	assert.FileExists(t, filepath.Join(dir, "a.txt"))
}

func TestUploader_MissingDirectoryIsNoOp(t *testing.T) {
	uploader, _ := newTestUploader(t, filepath.Join(t.TempDir(), "does-not-exist"))

	report, err := uploader.Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report.Records)
}

func TestUploader_PathIsFileIsNoOp(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"not-a-dir": "x"})
	uploader, _ := newTestUploader(t, filepath.Join(dir, "not-a-dir"))

	report, err := uploader.Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report.Records)
}

func TestUploader_EmptyDirectoryIsNoOp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))
	uploader, _ := newTestUploader(t, dir)

	report, err := uploader.Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report.Records)
}

func TestUploader_IgnoresSubdirectories(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"archive/old.txt": "archived earlier",
		"nested/deep.txt": "not recursed",
		"c.txt":           "top level",
	})
	uploader, session := newTestUploader(t, dir)

	session.EXPECT().ChangeDir(remoteUploadPath).Return(nil).Once()
	session.EXPECT().Exists("c.txt").Return(false, nil).Once()
	session.EXPECT().Store("c.txt", mock.Anything).Return(nil).Once()

	report, err := uploader.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"c.txt"}, report.Names(models.OutcomeSucceeded))
	assert.FileExists(t, filepath.Join(dir, "nested", "deep.txt"))
	assert.FileExists(t, filepath.Join(dir, "archive", "old.txt"))
	assert.FileExists(t, filepath.Join(dir, "archive", "c.txt"))
}

func TestUploader_SkipsFileNamedLikeArchive(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"archive": "a plain file"})
	uploader, _ := newTestUploader(t, dir)

	report, err := uploader.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.Records)
	testutil.AssertFileContent(t, filepath.Join(dir, "archive"), "a plain file")
}

func TestUploader_ArchivePathIsFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"archive": "a plain file",
		"c.txt":   "top level",
	})
	uploader, session := newTestUploader(t, dir)

	session.EXPECT().ChangeDir(remoteUploadPath).Return(nil).Once()
	session.EXPECT().Exists("c.txt").Return(false, nil).Once()
	session.EXPECT().Store("c.txt", mock.Anything).Return(nil).Once()

	report, err := uploader.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrFilesystem)
	assert.Contains(t, err.Error(), "is not a directory")
	assert.Equal(t, []string{"c.txt"}, report.Names(models.OutcomeFailed))
	session.AssertNotCalled(t, "Store", "archive", mock.Anything)
	testutil.AssertFileContent(t, filepath.Join(dir, "c.txt"), "top level")
}

func TestUploader_ChangeDirFailureIsFatal(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"a.txt": "x", "b.txt": "y"})
	uploader, session := newTestUploader(t, dir)

	cwdErr := errors.Join(models.ErrConnectivity, errors.New("550 no such directory"))
	session.EXPECT().ChangeDir(remoteUploadPath).Return(cwdErr).Once()

	report, err := uploader.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConnectivity)
	assert.Equal(t, []string{"a.txt"}, report.Names(models.OutcomeFailed))
	assert.FileExists(t, filepath.Join(dir, "a.txt"))
	assert.FileExists(t, filepath.Join(dir, "b.txt"))
	assert.NoDirExists(t, filepath.Join(dir, "archive"))
}

func TestUploader_StoreFailureLeavesFileInPlace(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"a.txt": "x", "b.txt": "y"})
	uploader, session := newTestUploader(t, dir)

	storeErr := errors.Join(models.ErrTransfer, errors.New("552 quota exceeded"))
	session.EXPECT().ChangeDir(remoteUploadPath).Return(nil).Once()
	session.EXPECT().Exists("a.txt").Return(false, nil).Once()
	session.EXPECT().Store("a.txt", mock.Anything).Return(storeErr).Once()

	report, err := uploader.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrTransfer)
	assert.Equal(t, []string{"a.txt"}, report.Names(models.OutcomeFailed))
	assert.FileExists(t, filepath.Join(dir, "a.txt"))
	assert.NoDirExists(t, filepath.Join(dir, "archive"))

	// b.txt was never attempted
	session.AssertNotCalled(t, "Exists", "b.txt")
}

func TestUploader_ArchiveFailureIsFatal(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"a.txt": "x", "b.txt": "y"})
	uploader, session := newTestUploader(t, dir)

	session.EXPECT().ChangeDir(remoteUploadPath).Return(nil).Once()
	session.EXPECT().Exists("a.txt").Return(false, nil).Once()
	// The local file vanishes between the upload and the archive move.
	session.EXPECT().
		Store("a.txt", mock.Anything).
		RunAndReturn(func(name string, r io.Reader) error {
			return os.Remove(filepath.Join(dir, name))
		}).
		Once()

	report, err := uploader.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrFilesystem)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "file not found")
	assert.Equal(t, []string{"a.txt"}, report.Names(models.OutcomeFailed))
	assert.FileExists(t, filepath.Join(dir, "b.txt"))
}

func TestUploader_CancelledContextStopsBeforeNextFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"a.txt": "x", "b.txt": "y"})
	uploader, session := newTestUploader(t, dir)

	ctx, cancel := context.WithCancel(context.Background())

	session.EXPECT().ChangeDir(remoteUploadPath).Return(nil).Once()
	session.EXPECT().Exists("a.txt").Return(false, nil).Once()
	session.EXPECT().
		Store("a.txt", mock.Anything).
		RunAndReturn(func(string, io.Reader) error {
			cancel()
			return nil
		}).
		Once()

	report, err := uploader.Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"a.txt"}, report.Names(models.OutcomeSucceeded))
	assert.FileExists(t, filepath.Join(dir, "archive", "a.txt"))
	assert.FileExists(t, filepath.Join(dir, "b.txt"))
}

func TestNewUploader_DefaultArchiveDir(t *testing.T) {
	uploader := NewUploader(mocks.NewMockRemoteSession(t), config.UploadConfig{LocalPath: "/outbox"})
	assert.Equal(t, "archive", uploader.archiveDir)
}

func TestUploader_ListReturnsLocalEntries(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"a.txt": "a", "b.txt": "b", "archive/old.txt": "old"})
	uploader, _ := newTestUploader(t, dir)

	entries, err := uploader.list()
	require.NoError(t, err)

	assert.Equal(t, []models.FileEntry{
		{Name: "a.txt", Location: models.LocationLocal},
		{Name: "b.txt", Location: models.LocationLocal},
	}, entries)
}
