package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/storykeeper/internal/client/client"
)

// Subscribe registers this client for push notifications.
func (a *App) Subscribe(ctx context.Context) error {
	sub, err := a.pushService.Subscribe(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			printlnFn("Server unreachable, try subscribing when back online")
		} else {
			printlnFn("Subscribe error:", err.Error())
		}
		return err
	}
	printlnFn("Subscribed to notifications (" + sub.Endpoint + ")")
	return nil
}

// Unsubscribe removes the push subscription, if any.
func (a *App) Unsubscribe(ctx context.Context) error {
	if err := a.pushService.Unsubscribe(ctx); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			printlnFn("Server unreachable, try unsubscribing when back online")
		} else {
			printlnFn("Unsubscribe error:", err.Error())
		}
		return err
	}
	printlnFn("Unsubscribed from notifications")
	return nil
}
