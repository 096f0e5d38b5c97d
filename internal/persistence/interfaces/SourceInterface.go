package interfaces

import (
	"context"
	"skilld/internal/models"
)

// SourceInterface loads the full player set. Sources are read only.
type SourceInterface interface {
	Load(ctx context.Context) (map[string]*models.Snapshot, error)
	Name() string
	Close() error
}
