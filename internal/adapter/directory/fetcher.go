package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/khmm12/open-watcher/internal/domain"
)

const maxPayloadSize = 8 << 20

var ErrPayloadTooLarge = errors.New("payload too large")

// Fetcher downloads the server list and decodes it into a directory. It never retries.
type Fetcher struct {
	logger *slog.Logger
	client *http.Client
	url    string
	limit  int64
}

func NewFetcher(logger *slog.Logger, url string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		logger: logger,
		client: &http.Client{Timeout: timeout},
		url:    url,
		limit:  maxPayloadSize,
	}
}

func (f *Fetcher) Fetch(ctx context.Context) (domain.Directory, error) {
	payload, err := f.download(ctx)
	if err != nil {
		return nil, &domain.TransportError{URL: f.url, Err: err}
	}

	f.logger.DebugContext(ctx, "Downloaded directory", slog.Int("bytes", len(payload)))

	text, err := decodeGBK(payload)
	if err != nil {
		return nil, &domain.DecodeError{Err: err}
	}

	return Parse(text)
}

func (f *Fetcher) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, f.limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	// A truncated list could still parse, so oversize bodies are rejected whole.
	if int64(len(payload)) > f.limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrPayloadTooLarge, f.limit)
	}

	return payload, nil
}
