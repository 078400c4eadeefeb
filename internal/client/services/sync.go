package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/storykeeper/internal/client/client"
	"github.com/dmitrijs2005/storykeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/storykeeper/internal/client/repositories/pending"
	"github.com/dmitrijs2005/storykeeper/internal/logging"
)

// SyncResult summarizes a drain so the caller can report it and refresh the
// affected views, instead of a blanket reload.
type SyncResult struct {
	Synced int
	Failed int
}

// SyncService drains the offline queue opportunistically. Delivery is
// at-least-once: a retried upload after a lost success response may create a
// duplicate server-side. Each record carries its idempotency key so a future
// server (or ledger) can deduplicate.
type SyncService interface {
	Drain(ctx context.Context) (SyncResult, error)
}

type syncService struct {
	client client.Client
	db     *sql.DB
	log    logging.Logger
}

// NewSyncService constructs a SyncService over the API client, the embedded
// database and a logger for per-record failures.
func NewSyncService(client client.Client, db *sql.DB, log logging.Logger) SyncService {
	return &syncService{client: client, db: db, log: log}
}

// Drain lists every pending record and attempts one upload per record,
// strictly sequentially. A successful upload deletes the record; a failure
// is logged and the drain moves on, so one bad record never blocks the rest.
// No backoff, no reordering, no early abort. Draining an empty queue is a
// no-op.
func (s *syncService) Drain(ctx context.Context) (SyncResult, error) {
	pendingRepo := pending.NewSQLiteRepository(s.db)

	records, err := pendingRepo.GetAll(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	var result SyncResult
	for _, record := range records {
		req := client.CreateStoryRequest{
			Description:    record.Description,
			Photo:          record.Photo,
			PhotoName:      record.PhotoName,
			Lat:            record.Lat,
			Lon:            record.Lon,
			IdempotencyKey: record.TempID,
		}

		if err := s.client.CreateStory(ctx, req); err != nil {
			s.log.Warn(ctx, "pending story upload failed", "temp_id", record.TempID, "error", err)
			result.Failed++
			continue
		}

		if err := pendingRepo.DeleteByID(ctx, record.TempID); err != nil {
			// record was uploaded but not dequeued; the next drain will
			// retry it with the same idempotency key
			s.log.Error(ctx, "failed to dequeue synced story", "temp_id", record.TempID, "error", err)
			result.Failed++
			continue
		}

		s.log.Info(ctx, "synced pending story", "temp_id", record.TempID)
		result.Synced++
	}

	if result.Synced > 0 {
		now := time.Now().UTC().Format(time.RFC3339)
		if err := metadata.NewSQLiteRepository(s.db).Set(ctx, metadata.KeyLastSync, []byte(now)); err != nil {
			s.log.Warn(ctx, "failed to record last sync time", "error", err)
		}
	}

	return result, nil
}
