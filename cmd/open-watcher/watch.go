package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/khmm12/open-watcher/internal/adapter/hostaddr"
	"github.com/khmm12/open-watcher/internal/adapter/httpsrv"
	"github.com/khmm12/open-watcher/internal/adapter/mdns"
	"github.com/khmm12/open-watcher/internal/adapter/notifier"
	"github.com/khmm12/open-watcher/internal/adapter/prometheus"
	"github.com/khmm12/open-watcher/internal/adapter/tcp"
	"github.com/khmm12/open-watcher/internal/adapter/worker"
	"github.com/khmm12/open-watcher/internal/common/logging"
	"github.com/khmm12/open-watcher/internal/domain"
	"github.com/khmm12/open-watcher/internal/ports"
	"github.com/khmm12/open-watcher/internal/usecase"
)

const maxInterval = 24 * time.Hour

type Probe struct {
	DialTimeout time.Duration `name:"dial-timeout" env:"PROBE_DIAL_TIMEOUT" default:"5s" help:"The maximum duration of a single connection attempt. 0 leaves it to the operating system."`
	Deadline    time.Duration `name:"deadline" env:"PROBE_DEADLINE" default:"0s" help:"Give up on a server which stays closed this long and move on. 0 (default) waits forever."`
}

type Notify struct {
	Sound   string `name:"sound" env:"NOTIFY_SOUND" default:"open.flac" type:"path" help:"FLAC file played when a server opens."`
	Silent  bool   `name:"silent" env:"NOTIFY_SILENT" help:"Do not play a sound."`
	NoAlert bool   `name:"no-alert" env:"NOTIFY_NO_ALERT" help:"Do not raise a desktop alert."`
}

type Resolve struct {
	MDNS        bool          `name:"mdns" env:"RESOLVE_MDNS" help:"Resolve .local server addresses with mDNS."`
	MDNSTimeout time.Duration `name:"mdns-timeout" env:"RESOLVE_MDNS_TIMEOUT" default:"5s" help:"The maximum duration to wait for an mDNS answer."`
	UseIPv4     bool          `name:"mdns-ipv4" env:"RESOLVE_MDNS_IPV4" default:"true" negatable:"" help:"Query mDNS over IPv4."`
	IPv4Addr    string        `name:"mdns-ipv4-addr" env:"RESOLVE_MDNS_IPV4_ADDR" default:"224.0.0.0:5353" help:"IPv4 address to bind to for mDNS queries."`
	UseIPv6     bool          `name:"mdns-ipv6" env:"RESOLVE_MDNS_IPV6" negatable:"" help:"Query mDNS over IPv6."`
	IPv6Addr    string        `name:"mdns-ipv6-addr" env:"RESOLVE_MDNS_IPV6_ADDR" default:"[FF02::]:5353" help:"IPv6 address to bind to for mDNS queries."`
}

type Metrics struct {
	Addr string `name:"addr" env:"METRICS_ADDR" help:"HTTP address to bind Prometheus metrics to (e.g. 127.0.0.1:8080). Disabled when empty."`
	Path string `name:"path" env:"METRICS_PATH" default:"/metrics" help:"Path to serve Prometheus metrics"`
}

type Watch struct {
	Servers  []string `name:"server" short:"s" env:"WATCH_SERVERS" required:"" sep:"," help:"Name of a server to watch. Repeat to watch several servers; they are watched in the given order."`
	Interval uint64   `name:"interval" short:"i" env:"WATCH_INTERVAL" default:"100" help:"Milliseconds to wait between connection attempts."`

	Probe   Probe   `embed:"" prefix:"probe."`
	Notify  Notify  `embed:"" prefix:"notify."`
	Resolve Resolve `embed:"" prefix:"resolve."`
	Metrics Metrics `embed:"" prefix:"metrics."`
}

func (w *Watch) Run(g *Globals) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger, err := g.newLogger()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Starting",
		slog.Any("servers", w.Servers),
		slog.Duration("interval", w.interval()),
	)

	resolver, err := w.newHostResolver(logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create host resolver", logging.Error(err))
		return err
	}

	defer func() {
		_ = resolver.Close()
	}()

	exporter, err := prometheus.NewExporter()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create prometheus exporter", logging.Error(err))
		return err
	}

	publisher := prometheus.NewWatchStatePublisher(logger, exporter)

	n, closeNotifier := w.newNotifier(ctx, logger)
	defer closeNotifier()

	uc := usecase.NewWatchEndpointsUseCase(
		logger,
		g.newFetcher(logger),
		usecase.NewResolveEndpointsUseCase(logger, resolver),
		usecase.NewProbeEndpointUseCase(logger, tcp.NewDialer(w.Probe.DialTimeout), publisher),
		n,
		publisher,
	)

	session := worker.NewWorker(logger, newTask(logger, uc, usecase.WatchEndpointsCommand{
		Servers:  w.Servers,
		Interval: w.interval(),
		Deadline: w.Probe.Deadline,
	}))

	var srv *httpsrv.Server
	if w.Metrics.Addr != "" {
		srv = httpsrv.NewServer(w.Metrics.Addr, httpsrv.ServerOptions{
			MetricsHandler: exporter.Handler(),
			MetricsPath:    w.Metrics.Path,
			Progress:       exporter.Progress,
		})
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if serr := session.Shutdown(shutdownCtx); serr != nil {
			logger.ErrorContext(ctx, "Failed to stop watch session", logging.Error(serr))
		}

		if srv != nil {
			if serr := srv.Shutdown(shutdownCtx); serr != nil {
				logger.ErrorContext(ctx, "Failed to stop HTTP Server", logging.Error(serr))
			}
		}
	}()

	eg, egCtx := errgroup.WithContext(ctx)

	if srv != nil {
		eg.Go(func() error {
			logger.InfoContext(ctx, "Start HTTP Server", slog.String("address", srv.ListenAddr()))

			if err := srv.Start(); err != nil {
				return fmt.Errorf("failed to start HTTP server: %w", err)
			}

			return nil
		})
	}

	eg.Go(func() error {
		err := session.Start(egCtx)

		// The metrics server only lives as long as the watch session.
		if srv != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			_ = srv.Shutdown(shutdownCtx)
		}

		return err
	})

	err = eg.Wait()
	report(ctx, logger, err)

	return err
}

func (w *Watch) interval() time.Duration {
	return time.Duration(w.Interval) * time.Millisecond
}

type closableResolver struct {
	ports.HostResolver
	close func() error
}

func (r closableResolver) Close() error {
	if r.close == nil {
		return nil
	}

	return r.close()
}

func (w *Watch) newHostResolver(logger *slog.Logger) (closableResolver, error) {
	if !w.Resolve.MDNS {
		return closableResolver{HostResolver: hostaddr.NewResolver(nil)}, nil
	}

	client, err := mdns.New(logger, mdns.Options{
		UseIPv4:     w.Resolve.UseIPv4,
		UseIPv6:     w.Resolve.UseIPv6,
		IPv4Addr:    w.Resolve.IPv4Addr,
		IPv6Addr:    w.Resolve.IPv6Addr,
		Concurrency: 1,
	})
	if err != nil {
		return closableResolver{}, err
	}

	return closableResolver{
		HostResolver: hostaddr.NewResolver(mdns.NewResolver(client, w.Resolve.MDNSTimeout)),
		close:        client.Close,
	}, nil
}

func (w *Watch) newNotifier(ctx context.Context, logger *slog.Logger) (*notifier.Fanout, func()) {
	fanout := notifier.NewFanout()
	closer := func() {}

	if !w.Notify.Silent {
		sound, err := notifier.LoadSound(w.Notify.Sound)
		if err != nil {
			logger.WarnContext(ctx, "Notifications will be silent", slog.String("sound", w.Notify.Sound), logging.Error(err))
		} else {
			fanout.Add("sound", sound)
			closer = sound.Close
		}
	}

	if !w.Notify.NoAlert {
		fanout.Add("alert", notifier.NewDesktop())
	}

	if len(fanout.Channels()) == 0 {
		logger.WarnContext(ctx, "All notification channels are disabled, opened servers are only logged")
	} else {
		logger.DebugContext(ctx, "Notification channels", slog.Any("channels", fanout.Channels()))
	}

	return fanout, closer
}

func report(ctx context.Context, logger *slog.Logger, err error) {
	var (
		unknownErr *domain.UnknownEndpointError
		configErr  *domain.ConfigurationError
	)

	switch {
	case err == nil:
		logger.InfoContext(ctx, "All servers are open")
	case errors.Is(err, context.Canceled):
		logger.InfoContext(ctx, "Interrupted")
	case errors.As(err, &unknownErr):
		logger.ErrorContext(ctx, "Server does not exist", slog.String("server", unknownErr.Name))
	case errors.As(err, &configErr):
		logger.ErrorContext(ctx, "Server has an invalid address", slog.String("server", configErr.Name), logging.Error(err))
	default:
		logger.ErrorContext(ctx, "Failed to watch servers", logging.Error(err))
	}
}

type taskUC interface {
	Execute(ctx context.Context, cmd usecase.WatchEndpointsCommand) error
}

type task struct {
	logger *slog.Logger
	uc     taskUC
	cmd    usecase.WatchEndpointsCommand
}

func newTask(logger *slog.Logger, uc taskUC, cmd usecase.WatchEndpointsCommand) *task {
	return &task{
		logger: logger,
		uc:     uc,
		cmd:    cmd,
	}
}

func (t *task) Execute(ctx context.Context) error {
	now := time.Now()

	t.logger.InfoContext(ctx, "Run watch session", slog.Int("servers", len(t.cmd.Servers)))

	err := t.uc.Execute(ctx, t.cmd)
	if err != nil {
		return err
	}

	t.logger.InfoContext(ctx, "Finished watch session", slog.Duration("duration", time.Since(now)))

	return nil
}

func (w *Watch) Validate() error {
	var errs []error

	for _, server := range w.Servers {
		if strings.TrimSpace(server) == "" {
			errs = append(errs, errors.New("--server: must not be empty"))
			break
		}
	}

	if w.Interval > uint64(maxInterval/time.Millisecond) {
		errs = append(errs, fmt.Errorf("--interval: must not exceed %d", maxInterval/time.Millisecond))
	}

	if w.Probe.DialTimeout < 0 {
		errs = append(errs, errors.New("--probe.dial-timeout: must not be negative"))
	}

	if w.Probe.Deadline < 0 {
		errs = append(errs, errors.New("--probe.deadline: must not be negative"))
	}

	errs = append(errs, w.Resolve.validate()...)

	if w.Metrics.Addr != "" && !isTCPAddr(w.Metrics.Addr) {
		errs = append(errs, errors.New("--metrics.addr: must be a valid tcp listening address (e.g. 127.0.0.1:8080)"))
	}

	if !strings.HasPrefix(w.Metrics.Path, "/") {
		errs = append(errs, errors.New("--metrics.path: must start with /"))
	}

	return errors.Join(errs...)
}

func (r *Resolve) validate() []error {
	if !r.MDNS {
		return nil
	}

	var errs []error

	if r.MDNSTimeout <= 0 {
		errs = append(errs, errors.New("--resolve.mdns-timeout: must be greater than zero"))
	}

	if !r.UseIPv4 && !r.UseIPv6 {
		errs = append(errs, errors.New("at least one of --resolve.mdns-ipv4 or --resolve.mdns-ipv6 must be enabled"))
	}

	if r.UseIPv4 && !isUDP4AddrResolvable(r.IPv4Addr) {
		errs = append(errs, errors.New("--resolve.mdns-ipv4-addr: must be a valid UDP IPv4 address e.g. 224.0.0.0:5353"))
	}

	if r.UseIPv6 && !isUDP6AddrResolvable(r.IPv6Addr) {
		errs = append(errs, errors.New("--resolve.mdns-ipv6-addr: must be a valid UDP IPv6 address e.g. [FF02::]:5353"))
	}

	return errs
}
