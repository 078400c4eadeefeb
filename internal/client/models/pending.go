package models

import "time"

// PendingStory is a story authored while offline, queued in the local store
// until the sync drain uploads it. TempID is a client-generated UUID; it
// doubles as the idempotency key sent with the upload. Synced is always
// false while the record exists; successful uploads delete the record
// instead of flipping the flag.
type PendingStory struct {
	TempID      string
	Description string
	Photo       []byte
	PhotoName   string
	Lat         *float64
	Lon         *float64
	CreatedAt   time.Time
	Synced      bool
}
