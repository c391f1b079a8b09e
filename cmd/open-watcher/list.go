package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/khmm12/open-watcher/internal/common/logging"
)

type List struct{}

func (l *List) Run(g *Globals) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger, err := g.newLogger()
	if err != nil {
		return err
	}

	dir, err := g.newFetcher(logger).Fetch(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch directory", logging.Error(err))
		return err
	}

	for _, name := range dir.Names() {
		entry, _ := dir.Lookup(name)
		fmt.Printf("%s\t%s:%d\n", entry.Name, entry.Address, entry.Port)
	}

	return nil
}
