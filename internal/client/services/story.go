package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/storykeeper/internal/client/client"
	"github.com/dmitrijs2005/storykeeper/internal/client/models"
	"github.com/dmitrijs2005/storykeeper/internal/client/repositories/favorites"
	"github.com/dmitrijs2005/storykeeper/internal/client/repositories/pending"
	"github.com/dmitrijs2005/storykeeper/internal/client/repositories/stories"
	"github.com/dmitrijs2005/storykeeper/internal/client/validate"
	"github.com/dmitrijs2005/storykeeper/internal/dbx"
	"github.com/google/uuid"
)

// AddResult reports how a submission ended: uploaded directly, or queued
// locally because the server was unreachable.
type AddResult struct {
	Queued bool
	TempID string
}

type StoryService interface {
	// List returns the story feed: live from the API when reachable
	// (refreshing the local cache wholesale), otherwise from the cache.
	// fromCache tells the caller which source served the feed.
	List(ctx context.Context) (result []models.Story, fromCache bool, err error)

	// Search filters the cached feed by a case-insensitive substring match
	// over author name and description.
	Search(ctx context.Context, query string) ([]models.Story, error)

	// Get returns a single story from the local cache.
	Get(ctx context.Context, id string) (*models.Story, error)

	// Add validates and submits a story. When the server is unreachable the
	// story is queued as a PendingStory instead; no other failure queues.
	Add(ctx context.Context, description string, photo []byte, photoName string, lat, lon *float64) (*AddResult, error)

	// Favorite bookkeeping, keyed by story id.
	AddFavorite(ctx context.Context, story *models.Story) error
	RemoveFavorite(ctx context.Context, id string) error
	Favorites(ctx context.Context) ([]models.Story, error)
	IsFavorite(ctx context.Context, id string) (bool, error)

	// ListPending exposes the offline queue for display.
	ListPending(ctx context.Context) ([]models.PendingStory, error)
}

type storyService struct {
	client client.Client
	db     *sql.DB
}

// NewStoryService constructs a StoryService over the API client and the
// embedded database.
func NewStoryService(client client.Client, db *sql.DB) StoryService {
	return &storyService{client: client, db: db}
}

func (s *storyService) List(ctx context.Context) ([]models.Story, bool, error) {
	remote, err := s.client.ListStories(ctx)
	if err != nil {
		if !errors.Is(err, client.ErrUnavailable) {
			return nil, false, err
		}
		cached, cacheErr := stories.NewSQLiteRepository(s.db).GetAll(ctx)
		if cacheErr != nil {
			return nil, false, fmt.Errorf("offline feed error: %w", cacheErr)
		}
		return cached, true, nil
	}

	// replace the cache wholesale so it mirrors the server feed
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := stories.NewSQLiteRepository(tx)
		if err := repo.DeleteAll(ctx); err != nil {
			return err
		}
		for i := range remote {
			if err := repo.Insert(ctx, &remote[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("cache refresh error: %w", err)
	}

	return remote, false, nil
}

func (s *storyService) Search(ctx context.Context, query string) ([]models.Story, error) {
	all, err := stories.NewSQLiteRepository(s.db).GetAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	result := make([]models.Story, 0, len(all))
	for _, story := range all {
		if strings.Contains(strings.ToLower(story.Name), q) ||
			strings.Contains(strings.ToLower(story.Description), q) {
			result = append(result, story)
		}
	}
	return result, nil
}

func (s *storyService) Get(ctx context.Context, id string) (*models.Story, error) {
	return stories.NewSQLiteRepository(s.db).GetByID(ctx, id)
}

func (s *storyService) Add(ctx context.Context, description string, photo []byte, photoName string, lat, lon *float64) (*AddResult, error) {
	if err := validate.Description(description); err != nil {
		return nil, err
	}
	if err := validate.Photo(photo); err != nil {
		return nil, err
	}
	if err := validate.Location(lat, lon); err != nil {
		return nil, err
	}

	tempID := uuid.NewString()
	req := client.CreateStoryRequest{
		Description:    description,
		Photo:          photo,
		PhotoName:      photoName,
		Lat:            lat,
		Lon:            lon,
		IdempotencyKey: tempID,
	}

	err := s.client.CreateStory(ctx, req)
	if err == nil {
		return &AddResult{}, nil
	}
	if !errors.Is(err, client.ErrUnavailable) {
		return nil, err
	}

	// offline: queue the submission for the next sync drain
	p := &models.PendingStory{
		TempID:      tempID,
		Description: description,
		Photo:       photo,
		PhotoName:   photoName,
		Lat:         lat,
		Lon:         lon,
		CreatedAt:   time.Now().UTC(),
	}
	if err := pending.NewSQLiteRepository(s.db).Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("queueing error: %w", err)
	}
	return &AddResult{Queued: true, TempID: tempID}, nil
}

func (s *storyService) AddFavorite(ctx context.Context, story *models.Story) error {
	return favorites.NewSQLiteRepository(s.db).Add(ctx, story)
}

func (s *storyService) RemoveFavorite(ctx context.Context, id string) error {
	return favorites.NewSQLiteRepository(s.db).Remove(ctx, id)
}

func (s *storyService) Favorites(ctx context.Context) ([]models.Story, error) {
	return favorites.NewSQLiteRepository(s.db).GetAll(ctx)
}

// IsFavorite scans the favorites collection. Fine at bookmark scale; the
// collection is not indexed for membership checks.
func (s *storyService) IsFavorite(ctx context.Context, id string) (bool, error) {
	all, err := favorites.NewSQLiteRepository(s.db).GetAll(ctx)
	if err != nil {
		return false, err
	}
	for _, fav := range all {
		if fav.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *storyService) ListPending(ctx context.Context) ([]models.PendingStory, error) {
	return pending.NewSQLiteRepository(s.db).GetAll(ctx)
}
