package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPushBase = "https://push.example/send"

func TestSubscribe_RegistersAndStoresDescriptor(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{}
	svc := NewPushService(fc, db, testPushBase)
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx)
	require.NoError(t, err)
	require.NotNil(t, sub)

	assert.Equal(t, 1, fc.SubscribeCalls)
	assert.Contains(t, sub.Endpoint, testPushBase+"/")
	assert.NotEmpty(t, sub.Keys.P256dh)
	assert.NotEmpty(t, sub.Keys.Auth)

	stored, err := svc.Subscription(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, sub.Endpoint, stored.Endpoint)
}

func TestSubscribe_TwiceReusesDescriptor(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{}
	svc := NewPushService(fc, db, testPushBase)
	ctx := context.Background()

	first, err := svc.Subscribe(ctx)
	require.NoError(t, err)
	second, err := svc.Subscribe(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Endpoint, second.Endpoint)
	assert.Equal(t, 2, fc.SubscribeCalls)
}

func TestUnsubscribe_RemovesServerAndLocalState(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{}
	svc := NewPushService(fc, db, testPushBase)
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(ctx))
	assert.Equal(t, 1, fc.UnsubscribeCalls)
	require.Len(t, fc.UnsubscribedEPs, 1)
	assert.Equal(t, sub.Endpoint, fc.UnsubscribedEPs[0])

	stored, err := svc.Subscription(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestUnsubscribe_WithoutSubscriptionIsNoop(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{}
	svc := NewPushService(fc, db, testPushBase)

	require.NoError(t, svc.Unsubscribe(context.Background()))
	assert.Zero(t, fc.UnsubscribeCalls)
}
