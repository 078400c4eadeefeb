package metadata

import "context"

// Repository is a small key/value collection inside the embedded database
// for client state that is not a record collection of its own: the push
// subscription descriptor and the last successful sync instant.
type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Well-known keys.
const (
	KeyPushSubscription = "push_subscription"
	KeyLastSync         = "last_sync"
)
