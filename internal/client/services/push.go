package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/storykeeper/internal/client/client"
	"github.com/dmitrijs2005/storykeeper/internal/client/models"
	"github.com/dmitrijs2005/storykeeper/internal/client/repositories/metadata"
	"github.com/google/uuid"
)

// PushService manages the push subscription lifecycle: build a descriptor,
// register it with the notification endpoint, and keep it in the metadata
// collection so unsubscribe can reference the same endpoint later.
type PushService interface {
	Subscribe(ctx context.Context) (*models.PushSubscription, error)
	Unsubscribe(ctx context.Context) error
	Subscription(ctx context.Context) (*models.PushSubscription, error)
}

type pushService struct {
	client       client.Client
	db           *sql.DB
	endpointBase string
}

// NewPushService constructs a PushService. endpointBase is the delivery
// endpoint prefix under which per-client subscription endpoints are minted.
func NewPushService(client client.Client, db *sql.DB, endpointBase string) PushService {
	return &pushService{client: client, db: db, endpointBase: endpointBase}
}

// Subscribe builds a fresh subscription descriptor and registers it.
// Subscribing while already subscribed re-registers the stored descriptor.
func (s *pushService) Subscribe(ctx context.Context) (*models.PushSubscription, error) {
	sub, err := s.Subscription(ctx)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		sub, err = s.newSubscription()
		if err != nil {
			return nil, err
		}
	}

	if err := s.client.Subscribe(ctx, sub); err != nil {
		return nil, fmt.Errorf("subscribe error: %w", err)
	}

	raw, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("encode subscription: %w", err)
	}
	if err := metadata.NewSQLiteRepository(s.db).Set(ctx, metadata.KeyPushSubscription, raw); err != nil {
		return nil, err
	}
	return sub, nil
}

// Unsubscribe removes the stored subscription from the server and locally.
// With no stored subscription it is a no-op.
func (s *pushService) Unsubscribe(ctx context.Context) error {
	sub, err := s.Subscription(ctx)
	if err != nil {
		return err
	}
	if sub == nil {
		return nil
	}

	if err := s.client.Unsubscribe(ctx, sub.Endpoint); err != nil {
		return fmt.Errorf("unsubscribe error: %w", err)
	}
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, metadata.KeyPushSubscription)
}

// Subscription returns the stored descriptor, or nil when not subscribed.
func (s *pushService) Subscription(ctx context.Context) (*models.PushSubscription, error) {
	raw, err := metadata.NewSQLiteRepository(s.db).Get(ctx, metadata.KeyPushSubscription)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var sub models.PushSubscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, fmt.Errorf("decode subscription: %w", err)
	}
	return &sub, nil
}

func (s *pushService) newSubscription() (*models.PushSubscription, error) {
	// uncompressed P-256 point size and standard auth secret size
	p256dh := make([]byte, 65)
	auth := make([]byte, 16)
	if _, err := rand.Read(p256dh); err != nil {
		return nil, fmt.Errorf("generate keys: %w", err)
	}
	if _, err := rand.Read(auth); err != nil {
		return nil, fmt.Errorf("generate keys: %w", err)
	}

	return &models.PushSubscription{
		Endpoint: s.endpointBase + "/" + uuid.NewString(),
		Keys: models.SubscriptionKeys{
			P256dh: base64.RawURLEncoding.EncodeToString(p256dh),
			Auth:   base64.RawURLEncoding.EncodeToString(auth),
		},
	}, nil
}
