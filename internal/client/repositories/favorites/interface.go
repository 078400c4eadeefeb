package favorites

import (
	"context"

	"github.com/dmitrijs2005/storykeeper/internal/client/models"
)

// Repository holds story copies the user bookmarked. A favorite is keyed by
// the originating story's id; it may outlive the story on the server, which
// is acceptable for a local bookmark.
type Repository interface {
	// Add stores a copy of the story. Re-adding an existing favorite is not
	// an error.
	Add(ctx context.Context, story *models.Story) error

	// Remove deletes a favorite by story id. Removing a missing id is a no-op.
	Remove(ctx context.Context, id string) error

	// GetAll returns every favorite.
	GetAll(ctx context.Context) ([]models.Story, error)
}
