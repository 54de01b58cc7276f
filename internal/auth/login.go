package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tenzodev/tenzoauth/internal/expiry"
)

// Login runs the login state machine: application gate, account lookup,
// ban/password/expiry/HWID checks, in that order, short-circuiting on the
// first failure. On success the session identity is set and the account's
// public fields are returned.
//
// Two deliberate side effects happen on the success path only:
//   - first-bind: an hwid-locked account with no bound hardware id gets the
//     local id written back (best-effort; a failed write does not fail the
//     already-decided login);
//   - a one-time account is deleted after success is recorded, consuming the
//     session (a failed delete does not revoke the granted session).
func (e *Engine) Login(ctx context.Context, username, password string) (*UserInfo, error) {
	if err := e.CheckVersion(ctx); err != nil {
		return nil, err
	}

	lowered := strings.ToLower(username)
	path := e.userPath(lowered)

	body, err := e.store.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	if body == nil {
		return nil, ErrUserNotFound
	}

	var user UserRecord
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("%w: user %s: %v", ErrParse, lowered, err)
	}
	user.normalize()

	if user.Banned {
		return nil, ErrUserBanned
	}

	if user.Password != password {
		return nil, ErrInvalidPassword
	}

	expired, perr := expiry.IsExpired(user.Expiry, e.now())
	if expired {
		if perr != nil {
			e.log.Warn(ctx, "unparsable expiry on user record, denying",
				"user", lowered, "expiry", user.Expiry)
		}
		return nil, ErrSubscriptionExpired
	}

	if user.HwidLock && user.BoundHwid != "" && user.BoundHwid != e.hwid {
		return nil, ErrHwidMismatch
	}

	// First-bind: the account is hwid-locked but no device has claimed it
	// yet. Write back the record with the local id. The login outcome was
	// decided on the read state, so a failed write only warns.
	if user.HwidLock && user.BoundHwid == "" {
		bound := user
		bound.BoundHwid = e.hwid
		if err := e.store.Put(ctx, path, bound); err != nil {
			e.log.Warn(ctx, "first-bind write failed", "user", lowered, "err", err)
		} else {
			user = bound
		}
	}

	e.setSession(username)

	if user.OneTime {
		if err := e.store.Delete(ctx, path); err != nil {
			e.log.Warn(ctx, "one-time account delete failed", "user", lowered, "err", err)
		}
	}

	e.prefetchUserVariables(ctx, lowered, user.Subscription)

	return &UserInfo{
		Username:     username,
		Subscription: user.Subscription,
		Expiry:       user.Expiry,
	}, nil
}

// prefetchUserVariables warms the cache with the user-scoped settings that
// most callers read right after login. Best-effort.
func (e *Engine) prefetchUserVariables(ctx context.Context, lowered, subscription string) {
	if _, err := e.GetVariable(ctx, "user_"+lowered+"_settings"); err != nil {
		e.log.Debug(ctx, "no user settings variable", "user", lowered)
	}
	if subscription != "" {
		if _, err := e.GetVariable(ctx, "permissions_"+subscription); err != nil {
			e.log.Debug(ctx, "no permissions variable", "subscription", subscription)
		}
	}
}
