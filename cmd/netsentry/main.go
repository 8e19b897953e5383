package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Hara602/netSentry/internal/collector"
	"github.com/Hara602/netSentry/internal/config"
	"github.com/Hara602/netSentry/internal/metrics"
	"github.com/Hara602/netSentry/internal/monitor"
	"github.com/Hara602/netSentry/internal/sysutil"
	"github.com/Hara602/netSentry/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "netsentry: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "Path to YAML configuration (optional)")
		logFile     = flag.String("log-file", sysutil.DefaultLogFile, "Path to the network activity log file")
		interval    = flag.Duration("interval", time.Second, "Refresh interval")
		headless    = flag.Bool("headless", false, "Run without the terminal table, logging only")
		metricsAddr = flag.String("metrics-addr", "", "Address for Prometheus metrics (e.g. :9100), empty to disable")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	// 命令行显式给出的参数覆盖配置文件
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-file":
			cfg.LogFile = *logFile
		case "interval":
			cfg.Interval = *interval
		case "headless":
			cfg.Headless = *headless
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := sysutil.NewActivityLogger(cfg.LogFile, cfg.LogTag)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("Network activity logging enabled")
	if !sysutil.IsPrivileged() {
		logger.Warn("Not running with elevated privileges, processes of other users may fail to resolve")
	}

	reg := prometheus.NewRegistry()
	metrics.Register(reg)
	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, reg, logger)
		defer srv.Shutdown(context.Background())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	coll := collector.New(logger.SugaredLogger)

	if cfg.Headless {
		r := monitor.NewRenderer(coll, monitor.DiscardView{}, logger.SugaredLogger, cfg.Interval)
		if err := r.Start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		logger.Info("Shutting down...")
		r.Stop()
		return nil
	}

	a := &app{ctx: ctx, logFile: cfg.LogFile, log: logger}
	prog := tui.NewProgram(a, tea.WithAltScreen(), tea.WithContext(ctx))
	a.renderer = monitor.NewRenderer(coll, prog, logger.SugaredLogger, cfg.Interval)

	err = prog.Run()
	logger.Info("Shutting down...")
	a.renderer.Stop()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *sysutil.ActivityLogger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Infof("Prometheus metrics listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Metrics HTTP server: %v", err)
		}
	}()
	return srv
}
