// Package services contains the application services of the StoryKeeper
// client: authentication, story browsing/submission, pending-queue sync and
// push subscriptions. Services sit between the CLI and the API client /
// local repositories.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storykeeper/internal/client/client"
	"github.com/dmitrijs2005/storykeeper/internal/client/models"
	"github.com/dmitrijs2005/storykeeper/internal/client/session"
	"github.com/dmitrijs2005/storykeeper/internal/client/validate"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: validate fields client-side, then create the account.
//   - Login: validate, authenticate, and explicitly persist the returned
//     session in the session store. The API client itself never touches
//     session state.
//   - Logout: clear the persisted session.
//   - Ping: check API reachability.
//
// Validation failures are returned before any network call is made.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client client.Client, session *session.Store) AuthService {
	return &authService{client: client, session: session}
}

// Register creates a new account. The returned profile is assembled
// client-side; the register endpoint responds with a message only.
func (a *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := validate.Name(name); err != nil {
		return nil, err
	}
	if err := validate.Email(email); err != nil {
		return nil, err
	}
	if err := validate.Password(password); err != nil {
		return nil, err
	}

	if err := a.client.Register(ctx, name, email, password); err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return &models.User{Name: name, Email: email}, nil
}

// Login authenticates and then persists the session as a separate, explicit
// step. A persistence failure after a successful login is surfaced so the
// user knows the session will not survive a restart.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if err := validate.Email(email); err != nil {
		return nil, err
	}
	if err := validate.Password(password); err != nil {
		return nil, err
	}

	sess, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.session.SetToken(sess.Token); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	if err := a.session.SetUser(&sess.User); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return sess, nil
}

// Logout clears the persisted token and profile.
func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear()
}

// Ping proxies a reachability check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
