package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storykeeper/internal/client/models"
	"github.com/dmitrijs2005/storykeeper/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionStore(t *testing.T) *session.Store {
	t.Helper()
	s := session.NewStore(t.TempDir())
	require.NoError(t, s.Load())
	return s
}

func TestLogin_ShortPasswordRejectedBeforeNetwork(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, newSessionStore(t))

	_, err := svc.Login(context.Background(), "user@test.com", "short")
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters", err.Error())
	assert.Zero(t, fc.LoginCalls)
}

func TestLogin_BadEmailRejectedBeforeNetwork(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, newSessionStore(t))

	_, err := svc.Login(context.Background(), "not-an-email", "password123")
	require.Error(t, err)
	assert.Equal(t, "Invalid email format", err.Error())
	assert.Zero(t, fc.LoginCalls)
}

func TestLogin_PersistsSessionExplicitly(t *testing.T) {
	fc := &fakeClient{
		LoginSession: &models.Session{
			Token: "tok-abc",
			User:  models.User{ID: "u1", Name: "Dina", Email: "user@test.com"},
		},
	}
	store := newSessionStore(t)
	svc := NewAuthService(fc, store)

	sess, err := svc.Login(context.Background(), "user@test.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", sess.Token)

	// session state was written by the service, not by the client
	assert.Equal(t, "tok-abc", store.Token())
	assert.True(t, store.IsAuthenticated())

	u := store.User()
	require.NotNil(t, u)
	assert.Equal(t, "Dina", u.Name)
}

func TestRegister_ValidatesFields(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, newSessionStore(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, "ab", "user@test.com", "password123")
	require.Error(t, err)
	assert.Equal(t, "Name must be at least 3 characters", err.Error())

	_, err = svc.Register(ctx, "Dina", "bad-email", "password123")
	require.Error(t, err)
	assert.Equal(t, "Invalid email format", err.Error())

	_, err = svc.Register(ctx, "Dina", "user@test.com", "short")
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters", err.Error())

	assert.Zero(t, fc.RegisterCalls)
}

func TestRegister_ReturnsProfile(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, newSessionStore(t))

	u, err := svc.Register(context.Background(), "Dina", "user@test.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 1, fc.RegisterCalls)
	assert.Equal(t, "Dina", u.Name)
	assert.Equal(t, "user@test.com", u.Email)
}

func TestLogout_ClearsSession(t *testing.T) {
	store := newSessionStore(t)
	require.NoError(t, store.SetToken("tok"))

	svc := NewAuthService(&fakeClient{}, store)
	require.NoError(t, svc.Logout(context.Background()))

	assert.False(t, store.IsAuthenticated())
}
