package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"cinegrip/internal/eventbus"
	"cinegrip/internal/logging"
	"cinegrip/internal/metrics"
	"cinegrip/internal/search"
	"cinegrip/internal/tmdb"
	"cinegrip/internal/ui"
)

// uiEvents are the bus events shown on the status line
var uiEvents = []eventbus.EventType{
	eventbus.EventLookupFailed,
	eventbus.EventError,
	eventbus.EventConfigSaved,
}

func runTUI(ctx context.Context, opts *rootOptions) error {
	svc, cfg, err := opts.loadValid()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logging.For(logger, "main")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr, reg, logging.For(logger, "metrics")); err != nil {
				log.WithError(err).Error("metrics server stopped")
			}
		}()
	}

	bus := eventbus.New(logrus.NewEntry(logger))
	defer bus.Close()

	client := tmdb.NewClient(cfg.TMDB,
		tmdb.WithLogger(logging.For(logger, "tmdb")),
		tmdb.WithMaxSuggestions(cfg.Search.MaxSuggestions),
	)
	var lookup search.Lookup = client
	if cfg.Search.CacheSize > 0 {
		lookup = tmdb.NewCachedLookup(client, cfg.Search.CacheSize, cfg.Search.CacheExpiry(), m)
	}

	model := ui.NewModel(ui.Deps{
		Config:  cfg,
		Catalog: client,
		Lookup:  lookup,
		Bus:     bus,
		Metrics: m,
		Log:     logrus.NewEntry(logger),
	})
	defer model.Close()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, progOpts...)
	model.SetProgram(p)

	for _, et := range uiEvents {
		unsubscribe := bus.Subscribe(et, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
		defer unsubscribe()
	}

	log.WithField("config", svc.Path()).Info("starting cinegrip")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("cinegrip stopped")
	return nil
}
