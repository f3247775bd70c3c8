package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"ftpbot/internal/models"

	"github.com/goccy/go-yaml"
)

const (
	ProtocolFTP  = "ftp"
	ProtocolSFTP = "sftp"

	TLSNone     = "none"
	TLSExplicit = "explicit"
	TLSImplicit = "implicit"
)

// Config is loaded once and treated as read-only afterwards. Components
// receive the sections they need at construction time.
type Config struct {
	FTP      FTPConfig      `yaml:"ftp"`
	Upload   UploadConfig   `yaml:"upload"`
	Download DownloadConfig `yaml:"download"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type FTPConfig struct {
	Protocol           string        `yaml:"protocol"`
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Timeout            time.Duration `yaml:"timeout"`
	TLS                string        `yaml:"tls"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify"`
	KnownHosts         string        `yaml:"known_hosts"`
}

type UploadConfig struct {
	LocalPath  string `yaml:"local_path"`
	RemotePath string `yaml:"remote_path"`
	ArchiveDir string `yaml:"archive_dir"`
}

type DownloadConfig struct {
	LocalPath    string `yaml:"local_path"`
	RemotePath   string `yaml:"remote_path"`
	MinFreeBytes uint64 `yaml:"min_free_bytes"`
}

type ScheduleConfig struct {
	Interval       time.Duration `yaml:"interval"`
	WatchUploadDir bool          `yaml:"watch_upload_dir"`
	WatchDebounce  time.Duration `yaml:"watch_debounce"`
}

type DatabaseConfig struct {
	Path      string        `yaml:"path"`
	Retention time.Duration `yaml:"retention"`
}

type ServerConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   *bool  `yaml:"compress"`
}

// Load reads configuration from file with environment variable expansion.
// Every failure wraps models.ErrConfig.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("%w: no configuration file given", models.ErrConfig)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %w", models.ErrConfig, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML content, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	// Expand environment variables
	content := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal config: %w", models.ErrConfig, err)
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("%w: config validation failed: %w", models.ErrConfig, err)
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.FTP.Protocol == "" {
		c.FTP.Protocol = ProtocolFTP
	}
	c.FTP.Protocol = strings.ToLower(c.FTP.Protocol)
	if c.FTP.Timeout == 0 {
		c.FTP.Timeout = 30 * time.Second
	}
	if c.FTP.TLS == "" {
		c.FTP.TLS = TLSNone
	}
	c.FTP.TLS = strings.ToLower(c.FTP.TLS)

	if c.Upload.LocalPath == "" {
		c.Upload.LocalPath = "./outbox"
	}
	if c.Upload.RemotePath == "" {
		c.Upload.RemotePath = "remote/files"
	}
	if c.Upload.ArchiveDir == "" {
		c.Upload.ArchiveDir = "archive"
	}

	if c.Download.LocalPath == "" {
		c.Download.LocalPath = "./inbox"
	}
	if c.Download.RemotePath == "" {
		c.Download.RemotePath = "local"
	}

	if c.Schedule.WatchDebounce == 0 {
		c.Schedule.WatchDebounce = 2 * time.Second
	}

	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	c.Logging.Format = strings.ToLower(c.Logging.Format)
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 10
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 5
	}
	if c.Logging.Compress == nil {
		compress := true
		c.Logging.Compress = &compress
	}
}

func (c *Config) validate() error {
	switch c.FTP.Protocol {
	case ProtocolFTP, ProtocolSFTP:
	default:
		return fmt.Errorf("unsupported ftp.protocol: %q", c.FTP.Protocol)
	}

	if strings.TrimSpace(c.FTP.Host) == "" {
		return fmt.Errorf("ftp.host is required")
	}

	if strings.TrimSpace(c.FTP.User) == "" {
		return fmt.Errorf("ftp.user is required")
	}

	if c.FTP.Port < 0 || c.FTP.Port > 65535 {
		return fmt.Errorf("invalid ftp.port: %d", c.FTP.Port)
	}

	if c.FTP.Timeout < 0 {
		return fmt.Errorf("ftp.timeout cannot be negative")
	}

	switch c.FTP.TLS {
	case TLSNone, TLSExplicit, TLSImplicit:
	default:
		return fmt.Errorf("unsupported ftp.tls mode: %q", c.FTP.TLS)
	}

	if c.FTP.Protocol == ProtocolSFTP && c.FTP.TLS != TLSNone {
		return fmt.Errorf("ftp.tls applies to the ftp protocol only")
	}

	if strings.ContainsAny(c.Upload.ArchiveDir, `/\`) || c.Upload.ArchiveDir == "." || c.Upload.ArchiveDir == ".." {
		return fmt.Errorf("upload.archive_dir must be a single directory name: %q", c.Upload.ArchiveDir)
	}

	if c.Schedule.Interval < 0 {
		return fmt.Errorf("schedule.interval cannot be negative")
	}

	if c.Schedule.WatchDebounce < 0 {
		return fmt.Errorf("schedule.watch_debounce cannot be negative")
	}

	if c.Database.Retention < 0 {
		return fmt.Errorf("database.retention cannot be negative")
	}

	if c.Server.Enabled {
		if c.Schedule.Interval <= 0 {
			return fmt.Errorf("server.enabled requires schedule.interval")
		}
		if c.Database.Path == "" {
			return fmt.Errorf("server.enabled requires database.path")
		}
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			return fmt.Errorf("invalid server port: %d", c.Server.Port)
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported logging.level: %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported logging.format: %q", c.Logging.Format)
	}

	return nil
}

// Address returns host:port for the configured protocol. A port embedded in
// ftp.host wins over the default.
func (c FTPConfig) Address() string {
	if _, _, err := net.SplitHostPort(c.Host); err == nil {
		return c.Host
	}

	port := c.Port
	if port == 0 {
		port = 21
		if c.Protocol == ProtocolSFTP {
			port = 22
		}
	}

	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// WithPassword returns a copy of the configuration carrying the given
// password. The receiver is left untouched.
func (c *Config) WithPassword(password string) *Config {
	clone := *c
	clone.FTP.Password = password
	return &clone
}

// Scheduled reports whether the agent runs repeatedly instead of once.
func (c *Config) Scheduled() bool {
	return c.Schedule.Interval > 0
}
