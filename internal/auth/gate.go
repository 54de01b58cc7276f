package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// fetchApplication loads the ApplicationRecord fresh from the store. No
// caching on purpose: the pause flag and version can change between calls.
func (e *Engine) fetchApplication(ctx context.Context) (*ApplicationRecord, error) {
	body, err := e.store.Get(ctx, e.appPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if body == nil {
		return nil, ErrAppNotFound
	}

	var app ApplicationRecord
	if err := json.Unmarshal(body, &app); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAppParse, err)
	}
	return &app, nil
}

// CheckVersion is the version gate: it rejects a paused application and any
// stored version that differs from the client's (exact string compare after
// trimming, no semantic versioning). Login and registration re-run this
// check themselves, so a caller skipping the gate still cannot operate
// against a paused or incompatible application.
func (e *Engine) CheckVersion(ctx context.Context) error {
	app, err := e.fetchApplication(ctx)
	if err != nil {
		return err
	}

	if app.Paused {
		return ErrAppPaused
	}

	if fetched := strings.TrimSpace(app.Version); fetched != e.version {
		return fmt.Errorf("%w: server has %q, client has %q", ErrVersionMismatch, fetched, e.version)
	}
	return nil
}
