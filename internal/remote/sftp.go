package remote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path"

	"ftpbot/internal/config"
	"ftpbot/internal/interfaces"
	"ftpbot/internal/models"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// sftpFS is the subset of *sftp.Client the session needs, with file handles
// narrowed to plain readers and writers.
type sftpFS interface {
	Getwd() (string, error)
	Stat(p string) (os.FileInfo, error)
	ReadDir(p string) ([]os.FileInfo, error)
	OpenReader(p string) (io.ReadCloser, error)
	CreateWriter(p string) (io.WriteCloser, error)
	Remove(p string) error
	Close() error
}

type sftpClientFS struct {
	client *sftp.Client
	conn   *ssh.Client
}

func (c *sftpClientFS) Getwd() (string, error)                  { return c.client.Getwd() }
func (c *sftpClientFS) Stat(p string) (os.FileInfo, error)      { return c.client.Stat(p) }
func (c *sftpClientFS) ReadDir(p string) ([]os.FileInfo, error) { return c.client.ReadDir(p) }
func (c *sftpClientFS) Remove(p string) error                   { return c.client.Remove(p) }

func (c *sftpClientFS) OpenReader(p string) (io.ReadCloser, error) {
	f, err := c.client.Open(p)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (c *sftpClientFS) CreateWriter(p string) (io.WriteCloser, error) {
	f, err := c.client.Create(p)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (c *sftpClientFS) Close() error {
	err := c.client.Close()
	if connErr := c.conn.Close(); err == nil {
		err = connErr
	}
	return err
}

type SFTPFactory struct {
	config config.FTPConfig
}

func NewSFTPFactory(cfg config.FTPConfig) *SFTPFactory {
	return &SFTPFactory{config: cfg}
}

func (f *SFTPFactory) Name() string {
	return config.ProtocolSFTP
}

func (f *SFTPFactory) Connect(ctx context.Context) (interfaces.RemoteSession, error) {
	addr := f.config.Address()
	slog.Debug("connecting to sftp server", "addr", addr)

	hostKeyCallback, err := f.hostKeyCallback()
	if err != nil {
		return nil, err
	}

	clientConfig := &ssh.ClientConfig{
		User:            f.config.User,
		Auth:            []ssh.AuthMethod{ssh.Password(f.config.Password)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         f.config.Timeout,
	}

	dialer := &net.Dialer{Timeout: f.config.Timeout}
	netConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to %s: %w", models.ErrConnectivity, addr, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(netConn, addr, clientConfig)
	if err != nil {
		netConn.Close()
		return nil, fmt.Errorf("%w: ssh handshake with %s failed: %w", models.ErrConnectivity, addr, err)
	}
	conn := ssh.NewClient(sshConn, chans, reqs)

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: failed to start sftp subsystem: %w", models.ErrConnectivity, err)
	}

	slog.Info("sftp session established", "addr", addr, "user", f.config.User)
	return newSFTPSession(&sftpClientFS{client: client, conn: conn}), nil
}

func (f *SFTPFactory) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if f.config.KnownHosts == "" {
		slog.Warn("no known_hosts file configured, accepting any sftp host key", "host", f.config.Host)
		return ssh.InsecureIgnoreHostKey(), nil
	}

	callback, err := knownhosts.New(f.config.KnownHosts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load known_hosts %s: %w", models.ErrConfig, f.config.KnownHosts, err)
	}
	return callback, nil
}

// SFTPSession emulates a working directory, which the SFTP protocol lacks.
type SFTPSession struct {
	fs  sftpFS
	cwd string
}

func newSFTPSession(fs sftpFS) *SFTPSession {
	return &SFTPSession{fs: fs, cwd: "/"}
}

func (s *SFTPSession) ChangeDir(dir string) error {
	if _, err := s.fs.Getwd(); err != nil {
		return fmt.Errorf("%w: sftp session is not alive: %w", models.ErrConnectivity, err)
	}
	slog.Debug("sftp session alive")

	target := path.Join("/", dir)
	info, err := s.fs.Stat(target)
	if err != nil {
		return fmt.Errorf("%w: failed to enter remote directory %s: %w", models.ErrConnectivity, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: remote path %s is not a directory", models.ErrConnectivity, dir)
	}

	s.cwd = target
	return nil
}

func (s *SFTPSession) ListFiles(dir string) ([]string, error) {
	target := s.resolve(dir)

	infos, err := s.fs.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list %s: %w", models.ErrTransfer, target, err)
	}

	var files []string
	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, info.Name())
	}

	return files, nil
}

func (s *SFTPSession) Exists(name string) (bool, error) {
	infos, err := s.fs.ReadDir(s.cwd)
	if err != nil {
		return false, fmt.Errorf("%w: failed to list names in %s: %w", models.ErrTransfer, s.cwd, err)
	}

	for _, info := range infos {
		if info.Name() == name {
			return true, nil
		}
	}

	return false, nil
}

func (s *SFTPSession) Store(name string, r io.Reader) error {
	target := s.resolve(name)

	w, err := s.fs.CreateWriter(target)
	if err != nil {
		return fmt.Errorf("%w: failed to create remote %s: %w", models.ErrTransfer, name, err)
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("%w: failed to store %s: %w", models.ErrTransfer, name, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: failed to finish storing %s: %w", models.ErrTransfer, name, err)
	}

	return nil
}

func (s *SFTPSession) Retrieve(name string, w io.Writer) (int64, error) {
	r, err := s.fs.OpenReader(s.resolve(name))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to retrieve %s: %w", models.ErrTransfer, name, err)
	}
	defer r.Close()

	n, err := io.Copy(w, r)
	if err != nil {
		return n, fmt.Errorf("%w: failed to read %s: %w", models.ErrTransfer, name, err)
	}

	return n, nil
}

func (s *SFTPSession) Delete(name string) error {
	if err := s.fs.Remove(s.resolve(name)); err != nil {
		return fmt.Errorf("%w: failed to delete remote %s: %w", models.ErrTransfer, name, err)
	}
	return nil
}

func (s *SFTPSession) Close() error {
	return s.fs.Close()
}

func (s *SFTPSession) resolve(p string) string {
	if p == "" {
		return s.cwd
	}
	if path.IsAbs(p) {
		return p
	}
	return path.Join(s.cwd, p)
}
