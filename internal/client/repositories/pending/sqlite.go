package pending

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storykeeper/internal/client/models"
	"github.com/dmitrijs2005/storykeeper/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, p *models.PendingStory) error {
	query := `INSERT INTO pending_stories (temp_id, description, photo, photo_name, lat, lon, created_at, synced)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.TempID, p.Description, p.Photo, p.PhotoName,
		nullFloat(p.Lat), nullFloat(p.Lon),
		p.CreatedAt.UTC().Format(time.RFC3339Nano), boolToInt(p.Synced))
	if err != nil {
		return fmt.Errorf("failed to insert pending story: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.PendingStory, error) {
	query := `SELECT temp_id, description, photo, photo_name, lat, lon, created_at, synced FROM pending_stories`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select pending stories: %w", err)
	}
	defer rows.Close()

	result := make([]models.PendingStory, 0)
	for rows.Next() {
		var (
			p         models.PendingStory
			lat, lon  sql.NullFloat64
			createdAt string
			synced    int
		)
		if err := rows.Scan(&p.TempID, &p.Description, &p.Photo, &p.PhotoName, &lat, &lon, &createdAt, &synced); err != nil {
			return nil, err
		}
		p.Lat = floatPtr(lat)
		p.Lon = floatPtr(lon)
		p.Synced = synced != 0

		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("bad created_at %q: %w", createdAt, err)
		}
		p.CreatedAt = ts
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, tempID string) error {
	// intentionally ignores rows-affected: removing a missing key is a no-op
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pending_stories WHERE temp_id = ?`, tempID); err != nil {
		return fmt.Errorf("failed to delete pending story: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
