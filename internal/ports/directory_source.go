package ports

import (
	"context"

	"github.com/khmm12/open-watcher/internal/domain"
)

type DirectorySource interface {
	Fetch(ctx context.Context) (domain.Directory, error)
}
