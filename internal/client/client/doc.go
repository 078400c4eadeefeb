// Package client wraps the remote story API behind the Client interface and
// owns opening the embedded local database. The HTTP implementation issues
// plain REST calls against the fixed contract; non-success responses become
// typed sentinel errors matched with errors.Is.
package client
