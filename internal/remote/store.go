// Package remote implements the client for the remote document store: a
// schema-less key-path HTTP store holding JSON documents. The store carries
// no business logic; callers own all read-check-write sequencing.
package remote

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable indicates a transport-level failure (connection error,
	// timeout, or an unexpected HTTP status). Always retryable at the
	// caller's discretion.
	ErrUnavailable = errors.New("remote store unavailable")
)

// Store abstracts GET/PUT/DELETE of JSON documents addressed by hierarchical
// path, e.g. "applications/{secret}/{appName}/users/{username}".
//
// Contract:
//   - Get returns (nil, nil) for an absent document; it never treats a
//     missing path as an error.
//   - Put replaces the full document at path (not a merge patch).
//   - All transport failures wrap ErrUnavailable.
type Store interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Put(ctx context.Context, path string, doc any) error
	Delete(ctx context.Context, path string) error
}
