package remote

import (
	"fmt"

	"ftpbot/internal/config"
	"ftpbot/internal/interfaces"
	"ftpbot/internal/models"
)

// NewSessionFactory returns the session factory for the configured protocol.
func NewSessionFactory(cfg config.FTPConfig) (interfaces.SessionFactory, error) {
	switch cfg.Protocol {
	case config.ProtocolFTP, "":
		return NewFTPFactory(cfg), nil
	case config.ProtocolSFTP:
		return NewSFTPFactory(cfg), nil
	default:
		return nil, fmt.Errorf("%w: no session factory for protocol %q", models.ErrConfig, cfg.Protocol)
	}
}
