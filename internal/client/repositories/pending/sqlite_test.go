package pending

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/storykeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
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
`)
	require.NoError(t, err)

	return db
}

func TestGetAll_FreshStoreIsEmpty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestInsertAndGetAll(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	lat := -2.5
	lon := 118.0
	p := &models.PendingStory{
		TempID:      "temp-1",
		Description: "A wonderful trip to the mountains",
		Photo:       []byte{0xFF, 0xD8, 0xFF},
		PhotoName:   "trip.jpg",
		Lat:         &lat,
		Lon:         &lon,
		CreatedAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, r.Insert(ctx, p))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "temp-1", got[0].TempID)
	assert.Equal(t, p.Description, got[0].Description)
	assert.Equal(t, p.Photo, got[0].Photo)
	assert.Equal(t, "trip.jpg", got[0].PhotoName)
	require.NotNil(t, got[0].Lat)
	require.NotNil(t, got[0].Lon)
	assert.Equal(t, lat, *got[0].Lat)
	assert.Equal(t, lon, *got[0].Lon)
	assert.False(t, got[0].Synced)
	assert.True(t, p.CreatedAt.Equal(got[0].CreatedAt))
}

func TestInsert_WithoutLocation(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	p := &models.PendingStory{
		TempID:      "temp-2",
		Description: "queued without coordinates",
		Photo:       []byte{0x01},
		PhotoName:   "p.png",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, r.Insert(ctx, p))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Lat)
	assert.Nil(t, got[0].Lon)
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	p := &models.PendingStory{
		TempID:      "temp-3",
		Description: "to be removed after upload",
		Photo:       []byte{0x01},
		PhotoName:   "p.png",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, r.Insert(ctx, p))
	require.NoError(t, r.DeleteByID(ctx, "temp-3"))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteByID_MissingKeyIsNoop(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	assert.NoError(t, r.DeleteByID(context.Background(), "never-existed"))
}
