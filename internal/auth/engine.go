package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tenzodev/tenzoauth/internal/config"
	"github.com/tenzodev/tenzoauth/internal/expiry"
	"github.com/tenzodev/tenzoauth/internal/hwid"
	"github.com/tenzodev/tenzoauth/internal/logging"
	"github.com/tenzodev/tenzoauth/internal/remote"
)

// Engine validates the application, authenticates users, redeems licenses,
// and caches remote variables. One instance per logical session; the mutex
// guards the session identity and the variable cache when an instance is
// shared across goroutines. Remote operations never retry; callers own
// retry policy.
type Engine struct {
	appName string
	secret  string
	version string
	hwid    string

	store remote.Store
	log   logging.Logger
	now   func() time.Time

	mu      sync.Mutex
	session *Session
	vars    map[string]string
}

// New wires an Engine from validated configuration, a remote store, and a
// hardware id provider.
func New(cfg *config.Config, store remote.Store, hw hwid.Provider, log logging.Logger) *Engine {
	return &Engine{
		appName: cfg.AppName,
		secret:  cfg.Secret,
		version: cfg.Version,
		hwid:    hw.ID(),
		store:   store,
		log:     log,
		now:     time.Now,
		vars:    make(map[string]string),
	}
}

// Document paths, per the store's key grammar. Everything is case-sensitive
// except the username, which the callers lowercase before lookup.

func (e *Engine) appPath() string {
	return fmt.Sprintf("applications/%s/%s", e.secret, e.appName)
}

func (e *Engine) userPath(lowered string) string {
	return e.appPath() + "/users/" + lowered
}

func (e *Engine) licensePath(key string) string {
	return e.appPath() + "/licenses/" + key
}

func (e *Engine) varsPath() string {
	return e.appPath() + "/variables"
}

func (e *Engine) varPath(name string) string {
	return e.varsPath() + "/" + name
}

// Version returns the client version string the engine presents to the gate.
func (e *Engine) Version() string { return e.version }

// Session returns the current session identity, if any.
func (e *Engine) Session() (Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// IsLoggedIn reports whether a login or registration has succeeded.
func (e *Engine) IsLoggedIn() bool {
	_, ok := e.Session()
	return ok
}

// Logout drops the session identity. The variable cache is kept; it is
// application-scoped, not user-scoped.
func (e *Engine) Logout() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = nil
}

func (e *Engine) setSession(username string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = &Session{Username: username, AppName: e.appName, Secret: e.secret}
}

// ExpiryDate reads the authenticated user's expiry sentinel from the store.
// An absent or unreadable value means "lifetime" (out-of-band accounts may
// have no expiry at all).
func (e *Engine) ExpiryDate(ctx context.Context) (string, error) {
	s, ok := e.Session()
	if !ok {
		return "", ErrNotLoggedIn
	}

	body, err := e.store.Get(ctx, e.userPath(strings.ToLower(s.Username))+"/expiry")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if body == nil {
		return expiry.Lifetime, nil
	}

	var sentinel string
	if err := json.Unmarshal(body, &sentinel); err != nil || sentinel == "" {
		return expiry.Lifetime, nil
	}
	return sentinel, nil
}
