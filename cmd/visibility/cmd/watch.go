package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/go-drift/visibility/cmd/visibility/internal/config"
	visibilityerrors "github.com/go-drift/visibility/pkg/errors"
	"github.com/go-drift/visibility/pkg/host/terminal"
	"github.com/go-drift/visibility/pkg/telemetry"
	"github.com/go-drift/visibility/pkg/visibility"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Track this terminal's focus as visibility",
		Long: `Track whether this terminal is visible to the user. The terminal must
support focus reporting; focus-in counts as visible and focus-out as hidden.

Keys:
  s        start tracking
  p        pause tracking
  d        destroy the tracker (s starts it again)
  q, ^C    quit

Flags:
  --config FILE         Config file or directory (default: ./visibility.yaml)
  --metrics-addr ADDR   Serve Prometheus metrics on ADDR at /metrics`,
		Usage: "visibility watch [--config FILE] [--metrics-addr ADDR]",
		Run:   runWatch,
	})
}

type watchOptions struct {
	configPath  string
	metricsAddr string
}

func parseWatchArgs(args []string) (watchOptions, error) {
	opts := watchOptions{configPath: "."}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--config requires a file path")
			}
			opts.configPath = args[i+1]
			i++
		case "--metrics-addr":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--metrics-addr requires an address")
			}
			opts.metricsAddr = args[i+1]
			i++
		default:
			return opts, fmt.Errorf("unexpected argument %q", args[i])
		}
	}
	return opts, nil
}

func runWatch(args []string) error {
	opts, err := parseWatchArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return err
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Addr = opts.metricsAddr
	}

	logger, err := newLogger(cfg.Log, nil)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	visibilityerrors.SetLogger(logger)

	host, err := terminal.New()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	hostCfg := host.Config()
	hostCfg.EventNames = visibility.EventNames{Update: cfg.Events.Update}
	hostCfg.Logger = logger
	tracker := visibility.New(hostCfg)

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg)
	metrics.Observe("terminal", tracker)

	var srv *http.Server
	if cfg.Metrics.Addr != "" {
		srv = serveMetrics(cfg.Metrics.Addr, reg, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := newWatcher(host, tracker)
	w.tracker.Start()
	w.draw()
	runErr := host.Run(ctx, w.handleKey)

	tracker.Destroy()
	host.Fini()

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown failed", zap.Error(err))
		}
	}

	fmt.Fprintf(stdout, "final state=%s changes=%d\n", tracker.State(), tracker.StateChangeCount())
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.String("addr", addr), zap.Error(err))
		}
	}()
	logger.Info("serving metrics", zap.String("addr", addr))
	return srv
}

const historySize = 10

// watcher renders tracker state on the terminal and maps keys to lifecycle
// calls. All methods run on the host's event goroutine.
type watcher struct {
	host    *terminal.Host
	tracker *visibility.Tracker
	history []string
	started time.Time
}

func newWatcher(host *terminal.Host, tracker *visibility.Tracker) *watcher {
	w := &watcher{host: host, tracker: tracker, started: time.Now()}
	tracker.OnUpdate(func(state visibility.State) {
		ts, _ := tracker.LastStateChangeTime()
		w.record(fmt.Sprintf("%s  %s", ts.Format("15:04:05.000"), state))
	})
	return w
}

func (w *watcher) record(line string) {
	w.history = append(w.history, line)
	if len(w.history) > historySize {
		w.history = w.history[len(w.history)-historySize:]
	}
	w.draw()
}

func (w *watcher) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
		return false
	case ev.Rune() == 's':
		w.tracker.Start()
	case ev.Rune() == 'p':
		w.tracker.Pause()
	case ev.Rune() == 'd':
		w.tracker.Destroy()
	}
	w.draw()
	return true
}

func (w *watcher) lines() []string {
	status := "stopped"
	switch {
	case w.tracker.IsStarted():
		status = "started"
	case w.tracker.IsPaused():
		status = "paused"
	}

	lines := []string{
		"visibility watch    [s]tart  [p]ause  [d]estroy  [q]uit",
		"",
		fmt.Sprintf("state:    %s", w.tracker.State()),
		fmt.Sprintf("tracker:  %s (%s)", status, w.tracker.Strategy()),
		fmt.Sprintf("changes:  %d", w.tracker.StateChangeCount()),
		fmt.Sprintf("uptime:   %s", time.Since(w.started).Truncate(time.Second)),
		"",
	}
	return append(lines, w.history...)
}

func (w *watcher) draw() {
	screen := w.host.Screen()
	screen.Clear()
	for y, line := range w.lines() {
		for x, r := range []rune(line) {
			screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		}
	}
	screen.Show()
}
