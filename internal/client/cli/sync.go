package cli

import (
	"context"
	"fmt"
)

// drainPending runs a sync drain and reports the outcome to the user.
// It is invoked on startup when the API is reachable and on every
// offline-to-online transition.
func (a *App) drainPending(ctx context.Context) {
	result, err := a.syncService.Drain(ctx)
	if err != nil {
		printlnFn("Sync error:", err.Error())
		return
	}
	if result.Synced > 0 {
		printlnFn(fmt.Sprintf("%d pending stories synced", result.Synced))
	}
	if result.Failed > 0 {
		printlnFn(fmt.Sprintf("%d pending stories failed to sync, will retry later", result.Failed))
	}
}

// Sync drains the offline queue on demand.
func (a *App) Sync(ctx context.Context) error {
	result, err := a.syncService.Drain(ctx)
	if err != nil {
		printlnFn("Sync error:", err.Error())
		return err
	}
	if result.Synced == 0 && result.Failed == 0 {
		printlnFn("Nothing to sync")
		return nil
	}
	printlnFn(fmt.Sprintf("Synced: %d, failed: %d", result.Synced, result.Failed))
	return nil
}
