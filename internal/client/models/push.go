package models

// SubscriptionKeys are the base64url-encoded key material of a push
// subscription, in the shape the notification endpoint expects.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// PushSubscription is the descriptor sent to the notification endpoint on
// subscribe and referenced by endpoint on unsubscribe.
type PushSubscription struct {
	Endpoint string           `json:"endpoint"`
	Keys     SubscriptionKeys `json:"keys"`
}
