// Package cli holds the cobra command tree of cinegrip.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cinegrip/internal/config"
	"cinegrip/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cinegrip",
		Short: "Browse movies, TV shows and people from the terminal",
		Long: `cinegrip is a terminal front-end for The Movie Database.

Press / to search; suggestions for movies, TV shows and people appear as you
type. Enter opens the highlighted suggestion, or the full result list when
nothing is highlighted.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	cmd.AddCommand(
		newSearchCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func (o *rootOptions) service() config.ConfigService {
	return config.NewConfigService(o.configPath)
}

// load reads the config file, falling back to defaults plus environment
func (o *rootOptions) load() (config.ConfigService, *config.Config, error) {
	svc := o.service()
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return svc, cfg, nil
}

// loadValid is load plus the credential checks every TMDB command needs
func (o *rootOptions) loadValid() (config.ConfigService, *config.Config, error) {
	svc, cfg, err := o.load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w (config: %s, see `cinegrip config init`)", err, svc.Path())
	}
	return svc, cfg, nil
}

func newLogger(cfg *config.Config) (*logrus.Logger, func(), error) {
	logger, closeFn, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closeFn() }, nil
}
