package favorites

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

func (r *SQLiteRepository) Add(ctx context.Context, s *models.Story) error {
	query := `INSERT INTO favorites (id, name, description, photo_url, lat, lon, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Description, s.PhotoURL, nullFloat(s.Lat), nullFloat(s.Lon),
		s.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Story, error) {
	query := `SELECT id, name, description, photo_url, lat, lon, created_at FROM favorites`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select favorites: %w", err)
	}
	defer rows.Close()

	var result []models.Story
	for rows.Next() {
		var (
			s         models.Story
			lat, lon  sql.NullFloat64
			createdAt string
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.PhotoURL, &lat, &lon, &createdAt); err != nil {
			return nil, err
		}
		s.Lat = floatPtr(lat)
		s.Lon = floatPtr(lon)

		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("bad created_at %q: %w", createdAt, err)
		}
		s.CreatedAt = ts
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
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
