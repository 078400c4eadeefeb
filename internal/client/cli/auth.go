package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/storykeeper/internal/client/client"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and attempts to create a new
// account. Validation failures are printed next to the prompt flow and never
// reach the network.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.authService.Register(ctx, name, email, password); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Registered! You can now log in.")
	return nil
}

// Login prompts for credentials and authenticates. On success the service
// has already persisted the session; the connectivity mode flips to online.
// A transport failure flips to offline instead so the user can keep working
// against local data.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.authService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			printlnFn("Server unavailable, staying offline")
			a.setMode(ctx, ModeOffline)
		} else {
			printlnFn(err.Error())
		}
		return err
	}

	printlnFn("Welcome, " + sess.User.Name + "!")
	a.setMode(ctx, ModeOnline)
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}
