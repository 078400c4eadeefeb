package pending

import (
	"context"

	"github.com/dmitrijs2005/storykeeper/internal/client/models"
)

// Repository is the queue of stories authored while offline. Records are
// independent; no ordering is guaranteed or required by the sync drain.
// There is no TTL; an unsynced record stays until it uploads.
type Repository interface {
	// Insert queues a pending story under its TempID.
	Insert(ctx context.Context, story *models.PendingStory) error

	// GetAll returns every queued record, in unspecified order. A freshly
	// migrated store yields an empty slice, not an error.
	GetAll(ctx context.Context) ([]models.PendingStory, error)

	// DeleteByID removes a record by TempID. Deleting a missing key is a
	// no-op, so a drain retried after a partial failure stays idempotent.
	DeleteByID(ctx context.Context, tempID string) error
}
