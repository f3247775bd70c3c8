package remote

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/textproto"
	"path"

	"ftpbot/internal/config"
	"ftpbot/internal/interfaces"
	"ftpbot/internal/models"

	"github.com/jlaffaye/ftp"
)

// ftpConn is the subset of *ftp.ServerConn the session needs.
type ftpConn interface {
	NoOp() error
	ChangeDir(path string) error
	NameList(path string) ([]string, error)
	List(path string) ([]*ftp.Entry, error)
	Stor(path string, r io.Reader) error
	Retr(path string) (io.ReadCloser, error)
	Delete(path string) error
	Quit() error
}

// serverConn adapts *ftp.ServerConn to ftpConn.
type serverConn struct {
	*ftp.ServerConn
}

func (c serverConn) Retr(path string) (io.ReadCloser, error) {
	resp, err := c.ServerConn.Retr(path)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

type FTPFactory struct {
	config config.FTPConfig
}

func NewFTPFactory(cfg config.FTPConfig) *FTPFactory {
	return &FTPFactory{config: cfg}
}

func (f *FTPFactory) Name() string {
	return config.ProtocolFTP
}

// Connect dials the server, waits for the 220 greeting and logs in. A server
// that never greets fails here, before any directory operation.
func (f *FTPFactory) Connect(ctx context.Context) (interfaces.RemoteSession, error) {
	addr := f.config.Address()
	slog.Debug("connecting to ftp server", "addr", addr, "tls", f.config.TLS)

	options := []ftp.DialOption{
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(f.config.Timeout),
	}

	switch f.config.TLS {
	case config.TLSExplicit:
		options = append(options, ftp.DialWithExplicitTLS(f.tlsConfig(addr)))
	case config.TLSImplicit:
		options = append(options, ftp.DialWithTLS(f.tlsConfig(addr)))
	}

	c, err := ftp.Dial(addr, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to %s: %w", models.ErrConnectivity, addr, err)
	}

	if err := c.Login(f.config.User, f.config.Password); err != nil {
		c.Quit() // Close connection on login failure
		return nil, fmt.Errorf("%w: failed to log in as %s: %w", models.ErrConnectivity, f.config.User, err)
	}

	slog.Info("ftp session established", "addr", addr, "user", f.config.User)
	return newFTPSession(serverConn{c}), nil
}

func (f *FTPFactory) tlsConfig(addr string) *tls.Config {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = f.config.Host
	}
	return &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: f.config.InsecureSkipVerify,
	}
}

type FTPSession struct {
	conn ftpConn
	cwd  string
}

func newFTPSession(conn ftpConn) *FTPSession {
	return &FTPSession{conn: conn, cwd: "/"}
}

func (s *FTPSession) ChangeDir(dir string) error {
	if err := s.conn.NoOp(); err != nil {
		return fmt.Errorf("%w: ftp session is not alive: %w", models.ErrConnectivity, err)
	}
	slog.Debug("ftp session alive")

	if err := s.conn.ChangeDir("/"); err != nil {
		return fmt.Errorf("%w: failed to enter remote root: %w", models.ErrConnectivity, err)
	}
	s.cwd = "/"

	if err := s.conn.ChangeDir(dir); err != nil {
		return fmt.Errorf("%w: failed to enter remote directory %s: %w", models.ErrConnectivity, dir, err)
	}
	s.cwd = path.Join("/", dir)

	return nil
}

func (s *FTPSession) ListFiles(dir string) ([]string, error) {
	target := s.resolve(dir)

	entries, err := s.conn.List(target)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list %s: %w", models.ErrTransfer, target, err)
	}

	var files []string
	for _, e := range entries {
		if e.Type != ftp.EntryTypeFile {
			continue
		}
		files = append(files, path.Base(e.Name))
	}

	return files, nil
}

func (s *FTPSession) Exists(name string) (bool, error) {
	names, err := s.conn.NameList(s.cwd)
	if isEmptyListing(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: failed to list names in %s: %w", models.ErrTransfer, s.cwd, err)
	}

	// Some servers answer NLST with full paths.
	for _, n := range names {
		if path.Base(n) == name {
			return true, nil
		}
	}

	return false, nil
}

// isEmptyListing reports whether err is the 450/550 reply some servers
// send to NLST on an empty directory.
func isEmptyListing(err error) bool {
	var protoErr *textproto.Error
	if !errors.As(err, &protoErr) {
		return false
	}
	return protoErr.Code == ftp.StatusFileActionIgnored || protoErr.Code == ftp.StatusFileUnavailable
}

func (s *FTPSession) Store(name string, r io.Reader) error {
	if err := s.conn.Stor(name, r); err != nil {
		return fmt.Errorf("%w: failed to store %s: %w", models.ErrTransfer, name, err)
	}
	return nil
}

func (s *FTPSession) Retrieve(name string, w io.Writer) (int64, error) {
	r, err := s.conn.Retr(name)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to retrieve %s: %w", models.ErrTransfer, name, err)
	}

	n, copyErr := io.Copy(w, r)
	// Close reads the final transfer status from the control connection.
	closeErr := r.Close()

	if copyErr != nil {
		return n, fmt.Errorf("%w: failed to read %s: %w", models.ErrTransfer, name, copyErr)
	}
	if closeErr != nil {
		return n, fmt.Errorf("%w: transfer of %s did not complete: %w", models.ErrTransfer, name, closeErr)
	}

	return n, nil
}

func (s *FTPSession) Delete(name string) error {
	if err := s.conn.Delete(name); err != nil {
		return fmt.Errorf("%w: failed to delete remote %s: %w", models.ErrTransfer, name, err)
	}
	return nil
}

func (s *FTPSession) Close() error {
	return s.conn.Quit()
}

func (s *FTPSession) resolve(dir string) string {
	if dir == "" {
		return s.cwd
	}
	if path.IsAbs(dir) {
		return dir
	}
	return path.Join(s.cwd, dir)
}
