package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"ftpbot/internal/api"
	"ftpbot/internal/config"
	"ftpbot/internal/gatekeeper"
	"ftpbot/internal/interfaces"
	"ftpbot/internal/logging"
	"ftpbot/internal/models"
	"ftpbot/internal/remote"
	"ftpbot/internal/repository"
	"ftpbot/internal/services"

	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitConfig  = 2
)

const defaultConfigPath = "./config.yaml"

var errUsage = errors.New("usage error")

var helpTokens = map[string]bool{
	"help":   true,
	"h":      true,
	"-h":     true,
	"--help": true,
	"-help":  true,
	"--h":    true,
}

// deps holds everything the command touches outside the process.
type deps struct {
	stdout            io.Writer
	stderr            io.Writer
	getenv            func(string) string
	setupLogging      func(config.LoggingConfig) (io.Closer, error)
	promptPassword    func(user, address string) (string, error)
	newSessionFactory func(config.FTPConfig) (interfaces.SessionFactory, error)
	notifyContext     func(context.Context) (context.Context, context.CancelFunc)
}

func defaultDeps() *deps {
	return &deps{
		stdout:            os.Stdout,
		stderr:            os.Stderr,
		getenv:            os.Getenv,
		setupLogging:      logging.Setup,
		promptPassword:    promptPassword,
		newSessionFactory: remote.NewSessionFactory,
		notifyContext: func(ctx context.Context) (context.Context, context.CancelFunc) {
			return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		},
	}
}

func newRootCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ftpbot [config.yaml]",
		Short:   "Two-way FTP/SFTP file transfer agent",
		Version: Version,
		Long: `ftpbot keeps a local outbox and inbox in step with a remote server.

Each run uploads every file in the upload directory that the server does not
have yet and moves it into the archive subdirectory, then downloads every
remote file that is missing locally and deletes it from the server. Files
whose name already exists on the other side are skipped and left untouched.

The optional argument is the path to the YAML configuration. Without it
$FTPBOT_CONFIG is used, then ./config.yaml.

With schedule.interval set, ftpbot keeps running and repeats the transfer on
that interval until it receives SIGINT or SIGTERM.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("%w: accepts at most one config path, received %d arguments", errUsage, len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAgent(cmd.Context(), resolveConfigPath(args, d.getenv), d)
		},
	}

	cmd.SetOut(d.stdout)
	cmd.SetErr(d.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	return cmd
}

// execute runs the command line and returns the process exit code.
func execute(args []string, d *deps) int {
	cmd := newRootCmd(d)
	cmd.SetArgs(normalizeArgs(args))

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return exitOK
	}

	slog.Error("ftpbot failed", "error", err)
	if errors.Is(err, errUsage) {
		fmt.Fprintln(d.stderr, cmd.UsageString())
		return exitConfig
	}
	if errors.Is(err, models.ErrConfig) {
		return exitConfig
	}
	return exitFailure
}

// normalizeArgs maps every accepted help spelling onto --help, which cobra
// answers with the usage text.
func normalizeArgs(args []string) []string {
	if len(args) == 1 && helpTokens[strings.ToLower(args[0])] {
		return []string{"--help"}
	}
	return args
}

func resolveConfigPath(args []string, getenv func(string) string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if path := getenv("FTPBOT_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

func runAgent(ctx context.Context, configPath string, d *deps) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logCloser, err := d.setupLogging(cfg.Logging)
	if err != nil {
		return fmt.Errorf("%w: failed to set up logging: %w", models.ErrConfig, err)
	}
	defer logCloser.Close()

	slog.Info("configuration loaded",
		"config_path", configPath,
		"protocol", cfg.FTP.Protocol,
		"server", cfg.FTP.Address(),
		"upload", cfg.Upload.LocalPath,
		"download", cfg.Download.LocalPath)

	if cfg.FTP.Password == "" {
		password, err := d.promptPassword(cfg.FTP.User, cfg.FTP.Address())
		if err != nil {
			return fmt.Errorf("%w: failed to read password: %w", models.ErrConfig, err)
		}
		cfg = cfg.WithPassword(password)
	}

	factory, err := d.newSessionFactory(cfg.FTP)
	if err != nil {
		return err
	}

	var history interfaces.RunRepository
	if cfg.Database.Path != "" {
		repo, err := repository.New(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("%w: failed to initialize database: %w", models.ErrFilesystem, err)
		}
		defer repo.Close()
		history = repo
		slog.Info("run history enabled", "path", cfg.Database.Path)
	}

	agent := services.NewAgent(cfg, factory, history, gatekeeper.New(cfg.Download))
	if err := agent.RecoverInterruptedRuns(); err != nil {
		slog.Warn("failed to recover interrupted runs", "error", err)
	}

	ctx, stop := d.notifyContext(ctx)
	defer stop()

	if !cfg.Scheduled() {
		_, err := agent.RunOnce(ctx, models.TriggerStartup)
		return err
	}

	return runScheduled(ctx, cfg, agent, history)
}

// runScheduled drives the scheduler until ctx is done, with the status API
// and the upload watcher alongside when configured.
func runScheduled(ctx context.Context, cfg *config.Config, agent *services.Agent, history interfaces.RunRepository) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	serverErr := make(chan error, 1)

	if cfg.Server.Enabled {
		handlers := api.NewHandlers(agent, history, Version)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := api.Serve(ctx, cfg.Server, handlers); err != nil {
				serverErr <- err
				cancel()
			}
		}()
	}

	if cfg.Schedule.WatchUploadDir {
		watcher := services.NewUploadWatcher(cfg, agent)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := watcher.Run(ctx); err != nil {
				slog.Error("upload watcher stopped, continuing on the interval only", "error", err)
			}
		}()
	}

	err := agent.Start(ctx)
	cancel()
	wg.Wait()

	if err != nil {
		return err
	}

	select {
	case err := <-serverErr:
		return err
	default:
	}

	slog.Info("shutdown completed")
	return nil
}
