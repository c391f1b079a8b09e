package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/khmm12/open-watcher/internal/adapter/directory"
	"github.com/khmm12/open-watcher/internal/common/logging"
)

type Directory struct {
	URL     string        `name:"url" env:"DIRECTORY_URL" default:"http://jx3comm.xoyocdn.com/jx3hd/zhcn_hd/serverlist/serverlist.ini" help:"URL of the GBK encoded server list."`
	Timeout time.Duration `name:"timeout" env:"DIRECTORY_TIMEOUT" default:"30s" help:"Timeout for downloading the server list (e.g., 10s, 1m)."`
}

type Globals struct {
	Directory Directory `embed:"" prefix:"directory."`
	LogLevel  string    `name:"log.level" env:"LOG_LEVEL" default:"info" help:"Log level (debug, info, warn, error)"`
}

func (g *Globals) newLogger() (*slog.Logger, error) {
	logLevel, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse to log level: %w", err)
	}

	return slog.New(logging.NewEnhancedHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: logLevel,
		}),
	)).With(logging.NewProgramAttr()), nil
}

func (g *Globals) newFetcher(logger *slog.Logger) *directory.Fetcher {
	return directory.NewFetcher(logger, g.Directory.URL, g.Directory.Timeout)
}

func (g *Globals) Validate() error {
	var errs []error

	if !isHTTPURL(g.Directory.URL) {
		errs = append(errs, fmt.Errorf("--directory.url: must be an absolute http or https URL"))
	}

	if g.Directory.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("--directory.timeout: must be greater than zero"))
	}

	if !isLogLevel(g.LogLevel) {
		errs = append(errs, fmt.Errorf("--log.level: must be one of debug, info, warn, error"))
	}

	return errors.Join(errs...)
}
