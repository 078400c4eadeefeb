package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// outbound API requests.
const AuthorizationHeaderName = "Authorization"

// IdempotencyKeyHeaderName carries the client-generated key attached to each
// pending story upload so a retried upload can be deduplicated.
const IdempotencyKeyHeaderName = "X-Idempotency-Key"
