package stories

import (
	"context"

	"github.com/dmitrijs2005/storykeeper/internal/client/models"
)

// Repository is the local cache of synced stories. The cache mirrors the
// server feed and is replaced wholesale on each successful refresh.
type Repository interface {
	// Insert adds a story to the cache, overwriting any row with the same id.
	Insert(ctx context.Context, story *models.Story) error

	// GetAll returns every cached story.
	GetAll(ctx context.Context) ([]models.Story, error)

	// GetByID returns a cached story or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Story, error)

	// DeleteAll empties the cache before a wholesale refresh.
	DeleteAll(ctx context.Context) error
}
