package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"countryexplorer/internal/config"
	"countryexplorer/internal/countries"
	"countryexplorer/internal/eventbus"
	"countryexplorer/internal/platform/httpserver"
	"countryexplorer/internal/platform/logger"
	"countryexplorer/internal/platform/metrics"
	"countryexplorer/internal/ui"
	"countryexplorer/internal/ui/coordinator"
	"countryexplorer/internal/ui/services/sorting"
)

type options struct {
	configPath  string
	apiURL      string
	debounce    time.Duration
	timeout     time.Duration
	region      string
	metricsAddr string
	logFile     string
	debug       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to the config file")
	flag.StringVar(&opts.apiURL, "api-url", "", "REST Countries base URL")
	flag.DurationVar(&opts.debounce, "debounce", 0, "Search debounce window (e.g. 300ms)")
	flag.DurationVar(&opts.timeout, "timeout", 0, "Per-request timeout (e.g. 10s)")
	flag.StringVar(&opts.region, "region", "", "Region to show at startup")
	flag.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve /metrics and /healthz on this address")
	flag.StringVar(&opts.logFile, "log", "", "Log file path")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	configSvc := config.NewConfigService()
	if opts.configPath != "" {
		configSvc = config.NewConfigServiceAt(opts.configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		return err
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	log, closer, err := logger.New(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	defer bus.Close()
	configSvc = config.WithBus(configSvc, bus)

	m := metrics.New()
	subscribe(bus, m, log)

	client := countries.New(cfg.API.BaseURL,
		countries.WithTimeout(cfg.Timeout()),
		countries.WithLogger(log),
		countries.WithObserver(m),
	)

	coord := coordinator.NewCoordinator(client, bus, coordinator.Options{
		Debounce: cfg.Debounce(),
		Sort:     sorting.ParseMode(cfg.UISettings.Sort),
	})

	model := ui.NewModel(coord, cfg, configSvc)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)
	coord.SetSender(p.Send)

	// Events that change what the user sees go to the program
	for _, t := range []eventbus.EventType{eventbus.EventError, eventbus.EventConfigChanged} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddr != "" {
		ln, err := net.Listen("tcp", cfg.MetricsAddr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", cfg.MetricsAddr, err)
		}
		srv := httpserver.New(cfg.MetricsAddr, httpserver.NewDebugRouter(m.Handler()))
		g.Go(func() error {
			if err := httpserver.Run(gctx, srv, ln, log); err != nil {
				bus.Publish(eventbus.ErrorEvent{Message: "metrics server", Err: err})
				log.Error("debug server failed", "error", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer stop()
		log.Info("starting UI", "api", cfg.API.BaseURL, "region", cfg.UISettings.Region)
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	err = g.Wait()
	coord.Dispose()
	log.Info("UI exited", "error", err)
	return err
}

// applyFlags lets explicit command line flags override the config file
func applyFlags(cfg *config.Config, opts options) {
	if opts.apiURL != "" {
		cfg.API.BaseURL = opts.apiURL
	}
	if opts.debounce > 0 {
		cfg.UISettings.DebounceMS = int(opts.debounce / time.Millisecond)
	}
	if opts.timeout > 0 {
		cfg.API.TimeoutMS = int(opts.timeout / time.Millisecond)
	}
	if opts.region != "" {
		cfg.UISettings.Region = opts.region
	}
	if opts.metricsAddr != "" {
		cfg.MetricsAddr = opts.metricsAddr
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
}

// subscribe records query lifecycle events in the log and the metrics
func subscribe(bus eventbus.EventBus, m *metrics.Metrics, log *slog.Logger) {
	bus.Subscribe(eventbus.EventQueryStarted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.QueryStartedEvent); ok {
			log.Debug("query started", "seq", ev.Seq, "kind", ev.Kind, "value", ev.Value)
		}
	})
	bus.Subscribe(eventbus.EventQueryCommitted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.QueryCommittedEvent); ok {
			m.IncrementCommitted(ev.Kind)
			log.Info("query committed", "seq", ev.Seq, "kind", ev.Kind, "value", ev.Value, "count", ev.Count)
		}
	})
	bus.Subscribe(eventbus.EventQueryFailed, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.QueryFailedEvent); ok {
			m.IncrementFailed(ev.ErrorKind)
			log.Warn("query failed", "seq", ev.Seq, "kind", ev.Kind, "value", ev.Value, "error_kind", ev.ErrorKind, "error", ev.Err)
		}
	})
	bus.Subscribe(eventbus.EventResultDiscarded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ResultDiscardedEvent); ok {
			m.IncrementDiscarded(ev.Source)
			log.Debug("stale result discarded", "source", ev.Source, "seq", ev.Seq, "latest", ev.Latest)
		}
	})
	bus.Subscribe(eventbus.EventDetailResolved, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.DetailResolvedEvent); ok {
			m.IncrementDetailResolved(ev.Status)
			log.Info("detail resolved", "code", ev.Code, "status", ev.Status, "error", ev.Err)
		}
	})
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigChangedEvent); ok {
			log.Info("config saved", "region", ev.Region)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			log.Error(ev.Message, "error", ev.Err)
		}
	})
}
