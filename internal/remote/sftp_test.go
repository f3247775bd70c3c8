package remote

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ftpbot/internal/config"
	"ftpbot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// localFS serves sftpFS calls from a directory on disk, treating root as "/".
type localFS struct {
	root    string
	wdErr   error
	closed  bool
	removed []string
}

func (l *localFS) real(p string) string {
	return filepath.Join(l.root, filepath.FromSlash(p))
}

func (l *localFS) Getwd() (string, error) {
	if l.wdErr != nil {
		return "", l.wdErr
	}
	return "/", nil
}

func (l *localFS) Stat(p string) (os.FileInfo, error)      { return os.Stat(l.real(p)) }
func (l *localFS) OpenReader(p string) (io.ReadCloser, error) { return os.Open(l.real(p)) }
func (l *localFS) CreateWriter(p string) (io.WriteCloser, error) {
	return os.Create(l.real(p))
}

func (l *localFS) ReadDir(p string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(l.real(p))
	if err != nil {
		return nil, err
	}
	infos := make([]os.FileInfo, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (l *localFS) Remove(p string) error {
	l.removed = append(l.removed, p)
	return os.Remove(l.real(p))
}

func (l *localFS) Close() error {
	l.closed = true
	return nil
}

func newLocalFS(t *testing.T) *localFS {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "local", "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "local", "c.txt"), []byte("c"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "local", "d.txt"), []byte("dd"), 0644))
	return &localFS{root: root}
}

func TestSFTPSession_ChangeDirAndList(t *testing.T) {
	fs := newLocalFS(t)
	session := newSFTPSession(fs)

	require.NoError(t, session.ChangeDir("local"))
	assert.Equal(t, "/local", session.cwd)

	files, err := session.ListFiles("")
	require.NoError(t, err)
	assert.Equal(t, []string{"c.txt", "d.txt"}, files)

	exists, err := session.Exists("nested")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = session.Exists("e.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSFTPSession_ChangeDir_Errors(t *testing.T) {
	fs := newLocalFS(t)
	session := newSFTPSession(fs)

	err := session.ChangeDir("missing")
	assert.ErrorIs(t, err, models.ErrConnectivity)

	err = session.ChangeDir("local/c.txt")
	assert.ErrorIs(t, err, models.ErrConnectivity)
	assert.Contains(t, err.Error(), "not a directory")

	fs.wdErr = errors.New("EOF")
	err = session.ChangeDir("local")
	assert.ErrorIs(t, err, models.ErrConnectivity)
	assert.Contains(t, err.Error(), "not alive")
}

func TestSFTPSession_StoreRetrieveDelete(t *testing.T) {
	fs := newLocalFS(t)
	session := newSFTPSession(fs)
	require.NoError(t, session.ChangeDir("local"))

	require.NoError(t, session.Store("b.txt", strings.NewReader("payload")))
	data, err := os.ReadFile(filepath.Join(fs.root, "local", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	var buf bytes.Buffer
	n, err := session.Retrieve("d.txt", &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, "dd", buf.String())

	require.NoError(t, session.Delete("d.txt"))
	assert.Equal(t, []string{"/local/d.txt"}, fs.removed)
	assert.NoFileExists(t, filepath.Join(fs.root, "local", "d.txt"))

	err = session.Delete("d.txt")
	assert.ErrorIs(t, err, models.ErrTransfer)

	require.NoError(t, session.Close())
	assert.True(t, fs.closed)
}

func TestNewSessionFactory(t *testing.T) {
	factory, err := NewSessionFactory(config.FTPConfig{Protocol: config.ProtocolFTP})
	require.NoError(t, err)
	assert.Equal(t, "ftp", factory.Name())
	assert.IsType(t, &FTPFactory{}, factory)

	factory, err = NewSessionFactory(config.FTPConfig{Protocol: config.ProtocolSFTP})
	require.NoError(t, err)
	assert.Equal(t, "sftp", factory.Name())
	assert.IsType(t, &SFTPFactory{}, factory)

	_, err = NewSessionFactory(config.FTPConfig{Protocol: "gopher"})
	assert.ErrorIs(t, err, models.ErrConfig)
}

func TestSFTPFactory_BadKnownHosts(t *testing.T) {
	factory := NewSFTPFactory(config.FTPConfig{
		Protocol:   config.ProtocolSFTP,
		Host:       "127.0.0.1",
		KnownHosts: filepath.Join(t.TempDir(), "missing_known_hosts"),
	})

	_, err := factory.hostKeyCallback()
	assert.ErrorIs(t, err, models.ErrConfig)
}
