package client

import (
	"context"

	"github.com/dmitrijs2005/storykeeper/internal/client/models"
)

// CreateStoryRequest is the payload of a story upload. IdempotencyKey is the
// client-generated key carried as a request header so a retried upload can be
// deduplicated; for queued stories it is the pending record's TempID.
type CreateStoryRequest struct {
	Description    string
	Photo          []byte
	PhotoName      string
	Lat            *float64
	Lon            *float64
	IdempotencyKey string
}

// Client is the stateless wrapper over the remote story API. Login is pure:
// it returns the session data and leaves persisting it to the caller.
type Client interface {
	Close() error
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (*models.Session, error)
	ListStories(ctx context.Context) ([]models.Story, error)
	CreateStory(ctx context.Context, req CreateStoryRequest) error
	Subscribe(ctx context.Context, sub *models.PushSubscription) error
	Unsubscribe(ctx context.Context, endpoint string) error
	Ping(ctx context.Context) error
}
