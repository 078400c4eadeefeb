package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/storykeeper/internal/client/client"
	"github.com/dmitrijs2005/storykeeper/internal/client/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// fakeClient records calls and serves preset results.
type fakeClient struct {
	RegisterCalls int
	RegisterErr   error

	LoginCalls   int
	LoginSession *models.Session
	LoginErr     error

	ListStoriesCalls  int
	ListStoriesResult []models.Story
	ListStoriesErr    error

	CreateStoryReqs []client.CreateStoryRequest
	CreateStoryErr  error
	// per-record failures keyed by idempotency key, overriding CreateStoryErr
	CreateStoryErrByKey map[string]error

	SubscribeCalls   int
	SubscribedSubs   []*models.PushSubscription
	SubscribeErr     error
	UnsubscribeCalls int
	UnsubscribedEPs  []string
	UnsubscribeErr   error

	PingErr error
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Register(ctx context.Context, name, email, password string) error {
	f.RegisterCalls++
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	f.LoginCalls++
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return f.LoginSession, nil
}

func (f *fakeClient) ListStories(ctx context.Context) ([]models.Story, error) {
	f.ListStoriesCalls++
	if f.ListStoriesErr != nil {
		return nil, f.ListStoriesErr
	}
	return f.ListStoriesResult, nil
}

func (f *fakeClient) CreateStory(ctx context.Context, req client.CreateStoryRequest) error {
	f.CreateStoryReqs = append(f.CreateStoryReqs, req)
	if err, ok := f.CreateStoryErrByKey[req.IdempotencyKey]; ok {
		return err
	}
	return f.CreateStoryErr
}

func (f *fakeClient) Subscribe(ctx context.Context, sub *models.PushSubscription) error {
	f.SubscribeCalls++
	f.SubscribedSubs = append(f.SubscribedSubs, sub)
	return f.SubscribeErr
}

func (f *fakeClient) Unsubscribe(ctx context.Context, endpoint string) error {
	f.UnsubscribeCalls++
	f.UnsubscribedEPs = append(f.UnsubscribedEPs, endpoint)
	return f.UnsubscribeErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE stories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  photo_url TEXT NOT NULL,
  lat REAL,
  lon REAL,
  created_at TEXT NOT NULL
);

CREATE TABLE favorites (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  photo_url TEXT NOT NULL,
  lat REAL,
  lon REAL,
  created_at TEXT NOT NULL
);

CREATE TABLE pending_stories (
  temp_id TEXT PRIMARY KEY,
  description TEXT NOT NULL,
  photo BLOB NOT NULL,
  photo_name TEXT NOT NULL,
  lat REAL,
  lon REAL,
  created_at TEXT NOT NULL,
  synced INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}
